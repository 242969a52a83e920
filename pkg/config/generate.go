package config

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"github.com/spf13/afero"

	"github.com/marioIncandeza/relay-settings/pkg/errors"
)

// GenerateConfigContent generates the configuration file content with commented values
func GenerateConfigContent() string {
	return commentOutConfigValues(string(userConfigTemplate))
}

// commentOutConfigValues takes the TOML content and comments out all non-comment, non-blank lines
// that contain configuration values (assignments)
func commentOutConfigValues(content string) string {
	lines := strings.Split(content, "\n")
	var result []string

	for _, line := range lines {
		trimmed := strings.TrimSpace(line)

		// Keep blank lines as-is
		if trimmed == "" {
			result = append(result, line)
			continue
		}

		// Keep lines that are already comments
		if strings.HasPrefix(trimmed, "#") {
			result = append(result, line)
			continue
		}

		// Keep section headers (e.g., [generate], [families.standard]) as-is
		if strings.HasPrefix(trimmed, "[") && strings.HasSuffix(trimmed, "]") {
			result = append(result, line)
			continue
		}

		// Comment out configuration value lines
		result = append(result, "# "+line)
	}

	return strings.Join(result, "\n")
}

// WriteUserConfig writes the commented starter config to path. An existing
// file is only replaced when force is set.
func WriteUserConfig(fs afero.Fs, path string, force bool) error {
	if _, err := fs.Stat(path); err == nil && !force {
		return errors.Newf(errors.ErrInvalidInput, "config file %s already exists (use --force to overwrite)", path)
	} else if err != nil && !os.IsNotExist(err) {
		return errors.Wrapf(err, errors.ErrConfigLoad, "cannot stat %s", path)
	}

	if err := fs.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return errors.Wrapf(err, errors.ErrConfigLoad, "cannot create %s", filepath.Dir(path))
	}
	if err := afero.WriteFile(fs, path, []byte(GenerateConfigContent()), 0644); err != nil {
		return errors.Wrapf(err, errors.ErrConfigLoad, "cannot write %s", path)
	}
	return nil
}

type shownConfig struct {
	Generate   GenerateConfig            `toml:"generate"`
	Template   TemplateConfig            `toml:"template"`
	Watch      shownWatch                `toml:"watch"`
	Families   map[string]FamilyConfig   `toml:"families"`
	Relays     map[string]RelayConfig    `toml:"relays"`
	RegionSets map[string][]RegionConfig `toml:"region_sets"`
}

type shownWatch struct {
	Debounce string `toml:"debounce"`
}

// RenderTOML renders the effective configuration as TOML
func (c *Config) RenderTOML() ([]byte, error) {
	view := shownConfig{
		Generate:   c.Generate,
		Template:   c.Template,
		Watch:      shownWatch{Debounce: c.Watch.Debounce.String()},
		Families:   c.Families,
		Relays:     c.Relays,
		RegionSets: c.RegionSets,
	}
	out, err := toml.Marshal(view)
	if err != nil {
		return nil, errors.Wrap(err, errors.ErrInternal, "failed to render configuration")
	}
	return out, nil
}
