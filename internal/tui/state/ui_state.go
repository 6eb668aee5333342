package state

// Mode represents the current interaction mode of the TUI.
// Each mode determines which keyboard shortcuts are active and what UI is displayed.
type Mode int

const (
	ListMode    Mode = iota // Default navigation over the active table
	FormMode                // A create/edit form is open
	ConfirmMode             // Waiting for a yes/no answer
	ErrorMode               // Showing a blocking error dialog
	HelpMode                // Displaying help screen
)

func (m Mode) String() string {
	switch m {
	case ListMode:
		return "list"
	case FormMode:
		return "form"
	case ConfirmMode:
		return "confirm"
	case ErrorMode:
		return "error"
	case HelpMode:
		return "help"
	default:
		return "unknown"
	}
}

// Tab identifies one of the entity tables
type Tab int

const (
	DepartmentsTab Tab = iota
	SellersTab
)

// Tabs lists the tabs in display order
var Tabs = []Tab{DepartmentsTab, SellersTab}

func (t Tab) String() string {
	if t == SellersTab {
		return "Sellers"
	}
	return "Departments"
}

// UIState manages the user interface state: terminal dimensions, the
// active tab and the current interaction mode.
type UIState struct {
	width  int
	height int
	mode   Mode
	tab    Tab
}

// NewUIState creates a new UIState with default values.
func NewUIState() *UIState {
	return &UIState{
		mode: ListMode,
		tab:  DepartmentsTab,
	}
}

// Width returns the terminal width
func (s *UIState) Width() int { return s.width }

// Height returns the terminal height
func (s *UIState) Height() int { return s.height }

// SetWindowSize records the terminal dimensions
func (s *UIState) SetWindowSize(width, height int) {
	s.width = width
	s.height = height
}

// Mode returns the current interaction mode
func (s *UIState) Mode() Mode { return s.mode }

// SetMode switches the interaction mode
func (s *UIState) SetMode(mode Mode) { s.mode = mode }

// Tab returns the active tab
func (s *UIState) Tab() Tab { return s.tab }

// SetTab activates a tab
func (s *UIState) SetTab(tab Tab) { s.tab = tab }

// NextTab cycles forward through the tabs
func (s *UIState) NextTab() {
	s.tab = Tabs[(int(s.tab)+1)%len(Tabs)]
}

// PrevTab cycles backward through the tabs
func (s *UIState) PrevTab() {
	s.tab = Tabs[(int(s.tab)+len(Tabs)-1)%len(Tabs)]
}
