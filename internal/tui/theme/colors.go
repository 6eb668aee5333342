package theme

import "github.com/thenoetrevino/staffdesk/internal/config/colors"

// Colors holds the current theme colors, initialized by Init
var (
	Highlight     string
	Subtle        string
	Normal        string
	Title         string
	Create        string
	Edit          string
	Delete        string
	TableBorder   string
	HeaderFg      string
	SelectedFg    string
	SelectedBg    string
	InfoFg        string
	InfoBg        string
	WarningFg     string
	WarningBg     string
	ErrorFg       string
	ErrorBg       string
	StatusBarBg   string
	StatusBarText string
)

func init() {
	Init(*colors.Default())
}

// Init initializes the theme colors from the given color scheme
func Init(c colors.ColorScheme) {
	Highlight = c.Accent
	Subtle = c.Subtle
	Normal = c.Normal
	Title = c.Title
	Create = c.Create
	Edit = c.Edit
	Delete = c.Delete
	TableBorder = c.TableBorder
	HeaderFg = c.HeaderFg
	SelectedFg = c.SelectedFg
	SelectedBg = c.SelectedBg
	InfoFg = c.InfoFg
	InfoBg = c.InfoBg
	WarningFg = c.WarningFg
	WarningBg = c.WarningBg
	ErrorFg = c.ErrorFg
	ErrorBg = c.ErrorBg
	StatusBarBg = c.StatusBarBg
	StatusBarText = c.StatusBarText
}
