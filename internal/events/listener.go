// Package events implements the change notification used by forms to tell
// their parent lists that data was saved.
package events

// DataChangeListener is notified after a form commits a change
type DataChangeListener interface {
	OnDataChanged()
}

// DataChangeFunc adapts a plain function to DataChangeListener
type DataChangeFunc func()

// OnDataChanged calls f
func (f DataChangeFunc) OnDataChanged() {
	f()
}

// Compile-time verification that DataChangeFunc implements DataChangeListener
var _ DataChangeListener = DataChangeFunc(nil)
