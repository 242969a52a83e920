// Package display holds the view models handed to the renderers. Each
// command builds one of these and the selected renderer decides how it
// looks.
package display

import (
	"github.com/marioIncandeza/relay-settings/pkg/config"
	"github.com/marioIncandeza/relay-settings/pkg/generate"
	"github.com/marioIncandeza/relay-settings/pkg/types"
)

// RelayTypes lists the configured relay types
type RelayTypes struct {
	Items []types.RelayType `json:"relay_types" yaml:"relay_types"`
}

// Families lists the configured device families
type Families struct {
	Items []types.Family `json:"families" yaml:"families"`
}

// Regions lists the selectable regions of one relay type
type Regions struct {
	RelayType string         `json:"relay_type" yaml:"relay_type"`
	Items     []types.Region `json:"regions" yaml:"regions"`
}

// TemplateInfo is the [INFO] section of a template directory
type TemplateInfo struct {
	Dir  string            `json:"dir" yaml:"dir"`
	Info map[string]string `json:"info" yaml:"info"`
}

// Keys returns the info keys in display order
func (t TemplateInfo) Keys() []string {
	return sortedKeys(t.Info)
}

// WordBits is a word-bit preview for one or more relays
type WordBits struct {
	RelayType string                   `json:"relay_type" yaml:"relay_type"`
	Relays    []generate.RelayWordBits `json:"relays" yaml:"relays"`
}

// ConfigDump is the effective configuration with the files it came from
type ConfigDump struct {
	Sources []string       `json:"sources" yaml:"sources"`
	Config  *config.Config `json:"config" yaml:"config"`
}

// ConfigWritten reports a freshly written user config file
type ConfigWritten struct {
	Path string `json:"path" yaml:"path"`
}

// Version is the build information of the binary
type Version struct {
	Version string `json:"version" yaml:"version"`
	Commit  string `json:"commit" yaml:"commit"`
	Date    string `json:"date" yaml:"date"`
}
