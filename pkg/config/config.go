package config

import (
	"sort"
	"strings"
	"time"

	"github.com/marioIncandeza/relay-settings/pkg/errors"
	"github.com/marioIncandeza/relay-settings/pkg/textenc"
	"github.com/marioIncandeza/relay-settings/pkg/types"
)

// Config is the effective relaygen configuration
type Config struct {
	Generate   GenerateConfig            `koanf:"generate" toml:"generate" yaml:"generate" json:"generate"`
	Template   TemplateConfig            `koanf:"template" toml:"template" yaml:"template" json:"template"`
	Watch      WatchConfig               `koanf:"watch" toml:"watch" yaml:"watch" json:"watch"`
	Families   map[string]FamilyConfig   `koanf:"families" toml:"families" yaml:"families" json:"families"`
	Relays     map[string]RelayConfig    `koanf:"relays" toml:"relays" yaml:"relays" json:"relays"`
	RegionSets map[string][]RegionConfig `koanf:"region_sets" toml:"region_sets" yaml:"region_sets" json:"region_sets"`
}

// GenerateConfig holds the defaults of the generate command
type GenerateConfig struct {
	Pattern         string   `koanf:"pattern" toml:"pattern" yaml:"pattern" json:"pattern"`
	Jobs            int      `koanf:"jobs" toml:"jobs" yaml:"jobs" json:"jobs"`
	IncludeComments bool     `koanf:"include_comments" toml:"include_comments" yaml:"include_comments" json:"include_comments"`
	IncludePMU      bool     `koanf:"include_pmu" toml:"include_pmu" yaml:"include_pmu" json:"include_pmu"`
	IncludeIP       bool     `koanf:"include_ip" toml:"include_ip" yaml:"include_ip" json:"include_ip"`
	Exclude         []string `koanf:"exclude" toml:"exclude" yaml:"exclude" json:"exclude"`
	Source          string   `koanf:"source" toml:"source" yaml:"source" json:"source"`
	Format          string   `koanf:"format" toml:"format" yaml:"format" json:"format"`
}

// TemplateConfig controls how template directories are copied
type TemplateConfig struct {
	Skip []string `koanf:"skip" toml:"skip" yaml:"skip" json:"skip"`
}

// WatchConfig controls watch mode
type WatchConfig struct {
	Debounce time.Duration `koanf:"debounce" toml:"debounce" yaml:"debounce" json:"debounce"`
}

// FamilyConfig is the configured form of a device family
type FamilyConfig struct {
	ClearValue        string   `koanf:"clear_value" toml:"clear_value" yaml:"clear_value" json:"clear_value"`
	ClearGroups       []string `koanf:"clear_groups" toml:"clear_groups" yaml:"clear_groups" json:"clear_groups"`
	ExtraClearSection bool     `koanf:"extra_clear_section" toml:"extra_clear_section" yaml:"extra_clear_section" json:"extra_clear_section"`
	FieldSeparator    string   `koanf:"field_separator" toml:"field_separator" yaml:"field_separator" json:"field_separator"`
	Encoding          string   `koanf:"encoding" toml:"encoding" yaml:"encoding" json:"encoding"`
}

// RelayConfig is the configured form of a relay type
type RelayConfig struct {
	Label         string `koanf:"label" toml:"label" yaml:"label" json:"label"`
	Sheet         string `koanf:"sheet" toml:"sheet" yaml:"sheet" json:"sheet"`
	ClassTable    string `koanf:"class_table" toml:"class_table" yaml:"class_table" json:"class_table"`
	SettingsTable string `koanf:"settings_table" toml:"settings_table" yaml:"settings_table" json:"settings_table"`
	Family        string `koanf:"family" toml:"family" yaml:"family" json:"family"`
	Identity      string `koanf:"identity" toml:"identity" yaml:"identity" json:"identity"`
	Regions       string `koanf:"regions" toml:"regions" yaml:"regions" json:"regions"`
}

// RegionConfig maps a human region label to its group tag
type RegionConfig struct {
	Label string `koanf:"label" toml:"label" yaml:"label" json:"label"`
	Group string `koanf:"group" toml:"group" yaml:"group" json:"group"`
}

// RelayKeys returns the configured relay type keys in sorted order
func (c *Config) RelayKeys() []string {
	return sortedKeys(c.Relays)
}

// FamilyNames returns the configured family names in sorted order
func (c *Config) FamilyNames() []string {
	return sortedKeys(c.Families)
}

// RelayType resolves a relay type by key
func (c *Config) RelayType(key string) (types.RelayType, error) {
	rc, ok := c.Relays[key]
	if !ok {
		return types.RelayType{}, errors.Newf(errors.ErrUnknownRelay, "unknown relay type %q", key).
			WithDetail("known", c.RelayKeys())
	}
	identity := rc.Identity
	if identity == "" {
		identity = types.IdentityRelay
	}
	if !types.ValidIdentity(identity) {
		return types.RelayType{}, errors.Newf(errors.ErrConfigValid,
			"relay type %q has invalid identity %q", key, rc.Identity)
	}
	return types.RelayType{
		Key:           key,
		Label:         rc.Label,
		Sheet:         rc.Sheet,
		ClassTable:    rc.ClassTable,
		SettingsTable: rc.SettingsTable,
		Family:        rc.Family,
		Identity:      identity,
		Regions:       rc.Regions,
	}, nil
}

// Family resolves a device family by name
func (c *Config) Family(name string) (types.Family, error) {
	fc, ok := c.Families[name]
	if !ok {
		return types.Family{}, errors.Newf(errors.ErrUnknownFamily, "unknown device family %q", name).
			WithDetail("known", c.FamilyNames())
	}
	encoding := fc.Encoding
	if encoding == "" {
		encoding = "ascii"
	}
	return types.Family{
		Name:              name,
		ClearValue:        fc.ClearValue,
		ClearGroups:       append([]string(nil), fc.ClearGroups...),
		ExtraClearSection: fc.ExtraClearSection,
		FieldSeparator:    fc.FieldSeparator,
		Encoding:          encoding,
	}, nil
}

// Regions returns the region set used by a relay type. Relay types without
// a region set yield nil.
func (c *Config) Regions(relayKey string) ([]types.Region, error) {
	rt, err := c.RelayType(relayKey)
	if err != nil {
		return nil, err
	}
	if rt.Regions == "" {
		return nil, nil
	}
	set, ok := c.RegionSets[rt.Regions]
	if !ok {
		return nil, errors.Newf(errors.ErrConfigValid,
			"relay type %q references missing region set %q", relayKey, rt.Regions)
	}
	out := make([]types.Region, 0, len(set))
	for _, r := range set {
		out = append(out, types.Region{Label: r.Label, Group: r.Group})
	}
	return out, nil
}

// ResolveExclusions merges explicit group tags with groups named by region
// label. Labels are matched case-insensitively against the relay type's
// region set.
func (c *Config) ResolveExclusions(relayKey string, groups, labels []string) ([]string, error) {
	seen := make(map[string]bool)
	var out []string
	add := func(g string) {
		g = strings.TrimSpace(g)
		if g == "" || seen[g] {
			return
		}
		seen[g] = true
		out = append(out, g)
	}
	for _, g := range groups {
		add(g)
	}
	if len(labels) == 0 {
		return out, nil
	}

	regions, err := c.Regions(relayKey)
	if err != nil {
		return nil, err
	}
	for _, label := range labels {
		found := false
		for _, r := range regions {
			if strings.EqualFold(r.Label, strings.TrimSpace(label)) {
				add(r.Group)
				found = true
				break
			}
		}
		if !found {
			return nil, errors.Newf(errors.ErrUnknownRegion, "unknown region %q for relay type %q", label, relayKey)
		}
	}
	return out, nil
}

// Validate checks cross references between relay types, families and
// region sets.
func (c *Config) Validate() error {
	for _, key := range c.RelayKeys() {
		rt, err := c.RelayType(key)
		if err != nil {
			return err
		}
		if _, ok := c.Families[rt.Family]; !ok {
			return errors.Newf(errors.ErrConfigValid,
				"relay type %q references unknown family %q", key, rt.Family)
		}
		if rt.Regions != "" {
			if _, ok := c.RegionSets[rt.Regions]; !ok {
				return errors.Newf(errors.ErrConfigValid,
					"relay type %q references missing region set %q", key, rt.Regions)
			}
		}
	}
	for _, name := range c.FamilyNames() {
		if _, err := textenc.LookupSingleByte(c.Families[name].Encoding); err != nil {
			return errors.Wrapf(err, errors.ErrConfigValid, "family %q has an unusable encoding", name)
		}
	}
	if c.Generate.Jobs < 1 {
		return errors.Newf(errors.ErrConfigValid, "generate.jobs must be at least 1, got %d", c.Generate.Jobs)
	}
	return nil
}

func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
