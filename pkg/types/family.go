package types

import (
	"sort"
	"strings"
)

// QuickSetSeparator is the ASCII file separator placed after the quoted
// value in QuickSet import files
const QuickSetSeparator = "\x1c"

// Reserved prefixes cleared by the extra F1 pass
var extraClearPrefixes = []string{"DP_NAM", "DP_SIZE"}

// ExtraClearGroup is the file group handled by the extra clearing pass
const ExtraClearGroup = "F1"

// Family holds the formatting and clearing rules of a relay family.
// It is resolved once from configuration and never mutated afterwards.
type Family struct {
	Name string `json:"name" yaml:"name"`

	// ClearValue replaces the value of unmatched lines in clear groups,
	// quotes included (for example `"NA"`)
	ClearValue string `json:"clear_value" yaml:"clear_value"`

	ClearGroups []string `json:"clear_groups" yaml:"clear_groups"`

	// ExtraClearSection enables clearing of DP_NAM/DP_SIZE fields in F1
	ExtraClearSection bool `json:"extra_clear_section" yaml:"extra_clear_section"`

	// FieldSeparator follows the quoted value; empty for the plain-comma format
	FieldSeparator string `json:"field_separator" yaml:"field_separator"`

	// Encoding names the single-byte text encoding of written files
	Encoding string `json:"encoding" yaml:"encoding"`
}

// ClearsGroup reports whether unmatched lines of the group are cleared
func (f Family) ClearsGroup(group FileGroup) bool {
	if !group.Known {
		return false
	}
	for _, g := range f.ClearGroups {
		if g == group.Name {
			return true
		}
	}
	return false
}

// ClearsExtraSection reports whether the F1 pass runs for the group
func (f Family) ClearsExtraSection(group FileGroup) bool {
	return f.ExtraClearSection && group.Known && group.Name == ExtraClearGroup
}

// IsExtraClearElement reports whether an element key is reserved for the F1 pass
func IsExtraClearElement(key string) bool {
	for _, prefix := range extraClearPrefixes {
		if strings.HasPrefix(key, prefix) {
			return true
		}
	}
	return false
}

// SortedClearGroups returns the clear groups in a stable order for display
func (f Family) SortedClearGroups() []string {
	out := append([]string(nil), f.ClearGroups...)
	sort.Strings(out)
	return out
}
