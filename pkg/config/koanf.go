package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/knadh/koanf/parsers/toml"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"

	"github.com/marioIncandeza/relay-settings/pkg/errors"
	"github.com/marioIncandeza/relay-settings/pkg/logging"
	"github.com/marioIncandeza/relay-settings/pkg/paths"
)

// EnvPrefix is the prefix of environment overrides. Levels are separated
// by a double underscore: RELAYGEN_GENERATE__JOBS=4 sets generate.jobs.
const EnvPrefix = "RELAYGEN_"

// NewKoanf loads the configuration layers without decoding them
func NewKoanf(opts LoadOptions) (*koanf.Koanf, []string, error) {
	k := koanf.New(".")
	var loaded []string

	// 1. Load built-in defaults
	if err := k.Load(&rawBytesProvider{bytes: defaultConfig}, toml.Parser()); err != nil {
		return nil, nil, errors.Wrap(err, errors.ErrConfigParse, "failed to load defaults")
	}

	if opts.DefaultsOnly {
		if err := loadOverrides(k, opts.Overrides); err != nil {
			return nil, nil, err
		}
		return k, nil, nil
	}

	// 2. Load user config files
	files, err := configFiles(opts)
	if err != nil {
		return nil, nil, err
	}
	for _, path := range files {
		if err := k.Load(file.Provider(path), parserFor(path)); err != nil {
			return nil, nil, errors.Wrapf(err, errors.ErrConfigParse, "failed to load config from %s", path)
		}
		logger := logging.GetLogger("config")
		logger.Debug().Str("path", path).Msg("Loaded config file")
		loaded = append(loaded, path)
	}

	// 3. Load env vars
	err = k.Load(env.Provider(EnvPrefix, ".", envKey), nil)
	if err != nil {
		return nil, nil, errors.Wrap(err, errors.ErrConfigLoad, "failed to load env vars")
	}

	// 4. Command-line flags
	if err := loadOverrides(k, opts.Overrides); err != nil {
		return nil, nil, err
	}

	return k, loaded, nil
}

func loadOverrides(k *koanf.Koanf, overrides map[string]interface{}) error {
	if len(overrides) == 0 {
		return nil
	}
	if err := k.Load(confmap.Provider(overrides, "."), nil); err != nil {
		return errors.Wrap(err, errors.ErrConfigLoad, "failed to apply command-line overrides")
	}
	return nil
}

func envKey(s string) string {
	return strings.ReplaceAll(strings.ToLower(strings.TrimPrefix(s, EnvPrefix)), "__", ".")
}

func configFiles(opts LoadOptions) ([]string, error) {
	if opts.File != "" {
		if _, err := os.Stat(opts.File); err != nil {
			return nil, errors.Wrapf(err, errors.ErrConfigLoad, "config file %s not readable", opts.File)
		}
		return []string{opts.File}, nil
	}

	workDir := opts.WorkDir
	if workDir == "" {
		workDir = "."
	}

	var out []string
	for _, path := range paths.ConfigCandidates(workDir) {
		if _, err := os.Stat(path); err == nil {
			out = append(out, path)
		}
	}
	return out, nil
}

func parserFor(path string) koanf.Parser {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return yaml.Parser()
	default:
		return toml.Parser()
	}
}

// describeSources renders the loaded layers for log output
func describeSources(files []string) string {
	if len(files) == 0 {
		return "defaults"
	}
	return fmt.Sprintf("defaults + %s", strings.Join(files, " + "))
}
