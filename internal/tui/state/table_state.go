package state

// TableState holds the rows of one table and the selected row. It is the
// TableView the list controllers write into.
type TableState[T any] struct {
	items    []T
	selected int
}

// NewTableState creates an empty table
func NewTableState[T any]() *TableState[T] {
	return &TableState[T]{}
}

// SetItems replaces every row, keeping the selection in range
func (s *TableState[T]) SetItems(items []T) {
	s.items = items
	s.clamp()
}

// Items returns all rows
func (s *TableState[T]) Items() []T {
	return s.items
}

// Len returns the row count
func (s *TableState[T]) Len() int {
	return len(s.items)
}

// Selected returns the selected row index
func (s *TableState[T]) Selected() int {
	return s.selected
}

// Current returns the selected row, if any
func (s *TableState[T]) Current() (T, bool) {
	var zero T
	if s.selected < 0 || s.selected >= len(s.items) {
		return zero, false
	}
	return s.items[s.selected], true
}

// MoveDown selects the next row
func (s *TableState[T]) MoveDown() {
	s.selected++
	s.clamp()
}

// MoveUp selects the previous row
func (s *TableState[T]) MoveUp() {
	s.selected--
	s.clamp()
}

func (s *TableState[T]) clamp() {
	if s.selected >= len(s.items) {
		s.selected = len(s.items) - 1
	}
	if s.selected < 0 {
		s.selected = 0
	}
}
