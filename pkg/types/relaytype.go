package types

// RelayType describes one kind of relay in the settings workbook: where its
// tables live and how its files are formatted
type RelayType struct {
	Key           string `json:"key" yaml:"key"`
	Label         string `json:"label" yaml:"label"`
	Sheet         string `json:"sheet" yaml:"sheet"`
	ClassTable    string `json:"class_table" yaml:"class_table"`
	SettingsTable string `json:"settings_table" yaml:"settings_table"`
	Family        string `json:"family" yaml:"family"`
	Identity      string `json:"identity" yaml:"identity"`
	Regions       string `json:"regions,omitempty" yaml:"regions,omitempty"`
}

// Region maps a user-facing region label to its file group tag
type Region struct {
	Label string `json:"label" yaml:"label"`
	Group string `json:"group" yaml:"group"`
}
