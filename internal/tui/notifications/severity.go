package notifications

import "github.com/thenoetrevino/staffdesk/internal/tui/state"

// Severity picks the icon and colors of a notification
type Severity int

const (
	Info Severity = iota
	Warning
	Error
)

// SeverityOf maps a stored notification level to its severity
func SeverityOf(level state.NotificationLevel) Severity {
	switch level {
	case state.LevelWarning:
		return Warning
	case state.LevelError:
		return Error
	default:
		return Info
	}
}
