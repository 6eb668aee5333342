package config

// KeyMappings defines all configurable key bindings
type KeyMappings struct {
	// Rows
	NewItem    string `yaml:"new_item"`
	EditItem   string `yaml:"edit_item"`
	RemoveItem string `yaml:"remove_item"`
	PrevRow    string `yaml:"prev_row"`
	NextRow    string `yaml:"next_row"`
	Refresh    string `yaml:"refresh"`

	// Forms
	SaveForm string `yaml:"save_form"`

	// Tabs
	NextTab string `yaml:"next_tab"`
	PrevTab string `yaml:"prev_tab"`

	// Other
	ShowHelp string `yaml:"show_help"`
	Quit     string `yaml:"quit"`
}

// DefaultKeyMappings returns the default key mappings
func DefaultKeyMappings() KeyMappings {
	return KeyMappings{
		NewItem:    "n",
		EditItem:   "e",
		RemoveItem: "d",
		PrevRow:    "k",
		NextRow:    "j",
		Refresh:    "r",

		SaveForm: "ctrl+s",

		NextTab: "l",
		PrevTab: "h",

		ShowHelp: "?",
		Quit:     "q",
	}
}

// applyDefaults fills in missing key mappings with defaults
func (k *KeyMappings) applyDefaults() {
	defaults := DefaultKeyMappings()

	fill := func(dst *string, def string) {
		if *dst == "" {
			*dst = def
		}
	}

	fill(&k.NewItem, defaults.NewItem)
	fill(&k.EditItem, defaults.EditItem)
	fill(&k.RemoveItem, defaults.RemoveItem)
	fill(&k.PrevRow, defaults.PrevRow)
	fill(&k.NextRow, defaults.NextRow)
	fill(&k.Refresh, defaults.Refresh)
	fill(&k.SaveForm, defaults.SaveForm)
	fill(&k.NextTab, defaults.NextTab)
	fill(&k.PrevTab, defaults.PrevTab)
	fill(&k.ShowHelp, defaults.ShowHelp)
	fill(&k.Quit, defaults.Quit)
}
