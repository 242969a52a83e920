package types

import "strings"

// Column positions of the settings table. The Float flag column is located
// by its header name instead.
const (
	SettingColElement     = 0
	SettingColValue       = 1
	SettingColComment     = 2
	SettingColClassFilter = 5
	SettingColLogicFilter = 6
	SettingColGroup       = 8

	// FloatHeader names the column holding the two-decimal formatting flag
	FloatHeader = "Float"
)

// Setting is one configurable element of the settings table
type Setting struct {
	Element     Cell `json:"element" yaml:"element"`
	Value       Cell `json:"value" yaml:"value"`
	Comment     Cell `json:"comment" yaml:"comment"`
	ClassFilter Cell `json:"class_filter" yaml:"class_filter"`
	LogicFilter Cell `json:"logic_filter" yaml:"logic_filter"`
	Group       Cell `json:"group" yaml:"group"`
	Float       Cell `json:"float" yaml:"float"`
}

// SettingsTable is the parsed settings table in source order
type SettingsTable struct {
	// FloatColumn is the index of the Float column found in the header row
	FloatColumn int
	Rows        []Setting
}

// SettingFromRow translates a positional settings row using the Float
// column index found in the header. Missing trailing cells read as Null.
func SettingFromRow(row []Cell, floatColumn int) Setting {
	return Setting{
		Element:     cellAt(row, SettingColElement),
		Value:       cellAt(row, SettingColValue),
		Comment:     cellAt(row, SettingColComment),
		ClassFilter: cellAt(row, SettingColClassFilter),
		LogicFilter: cellAt(row, SettingColLogicFilter),
		Group:       cellAt(row, SettingColGroup),
		Float:       cellAt(row, floatColumn),
	}
}

// LogicTokens splits the logic-class filter into its class tokens.
// A null filter yields no tokens.
func (s Setting) LogicTokens() map[string]struct{} {
	tokens := make(map[string]struct{})
	if s.LogicFilter.IsNull() {
		return tokens
	}
	for _, part := range splitComma(s.LogicFilter) {
		tokens[part] = struct{}{}
	}
	return tokens
}

func splitComma(c Cell) []string {
	parts := strings.Split(c.String(), ",")
	for i, part := range parts {
		parts[i] = Text(part).Token()
	}
	return parts
}
