package types

import "strings"

// UnknownGroup is the sentinel name of files without a group segment
const UnknownGroup = "UNKNOWN"

// FileGroup is the settings group encoded in a template file name
type FileGroup struct {
	Name string `json:"name" yaml:"name"`

	// Known is false for names without a "_" separator
	Known bool `json:"known" yaml:"known"`
}

// GroupFromFileName derives the group from the second "_" segment of the
// name, cut at its first period: "SET_1.TXT" is group "1".
func GroupFromFileName(name string) FileGroup {
	parts := strings.Split(name, "_")
	if len(parts) < 2 {
		return FileGroup{Name: UnknownGroup}
	}
	return FileGroup{Name: StripQualifier(parts[1]), Known: true}
}

// String returns the group name
func (g FileGroup) String() string {
	return g.Name
}

// In reports whether the group is listed. Unknown groups are never listed.
func (g FileGroup) In(groups []string) bool {
	if !g.Known {
		return false
	}
	for _, name := range groups {
		if name == g.Name {
			return true
		}
	}
	return false
}
