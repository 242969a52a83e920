package config

import (
	"github.com/go-viper/mapstructure/v2"
	"github.com/knadh/koanf/v2"

	"github.com/marioIncandeza/relay-settings/pkg/errors"
	"github.com/marioIncandeza/relay-settings/pkg/logging"
)

// LoadOptions selects the configuration files to layer over the defaults
type LoadOptions struct {
	// File is an explicit config path. When set, no other file is read.
	File string

	// WorkDir is searched for relaygen.toml/yaml. Defaults to ".".
	WorkDir string

	// DefaultsOnly skips config files and the environment
	DefaultsOnly bool

	// Overrides are flat dotted keys ("generate.jobs") applied last,
	// typically from command-line flags
	Overrides map[string]interface{}
}

// Load builds the effective configuration
func Load(opts LoadOptions) (*Config, error) {
	cfg, _, err := LoadWithSources(opts)
	return cfg, err
}

// LoadWithSources builds the effective configuration and also returns the
// config files it read, in load order
func LoadWithSources(opts LoadOptions) (*Config, []string, error) {
	k, files, err := NewKoanf(opts)
	if err != nil {
		return nil, nil, err
	}

	cfg, err := decode(k)
	if err != nil {
		return nil, nil, err
	}

	if err := cfg.Validate(); err != nil {
		return nil, nil, err
	}

	logger := logging.GetLogger("config")

	logger.Debug().Str("sources", describeSources(files)).Msg("Configuration loaded")
	return cfg, files, nil
}

// Default returns the built-in configuration
func Default() (*Config, error) {
	return Load(LoadOptions{DefaultsOnly: true})
}

func decode(k *koanf.Koanf) (*Config, error) {
	var cfg Config
	unmarshalConf := koanf.UnmarshalConf{
		Tag: "koanf",
		DecoderConfig: &mapstructure.DecoderConfig{
			Result:           &cfg,
			WeaklyTypedInput: true,
			DecodeHook: mapstructure.ComposeDecodeHookFunc(
				mapstructure.StringToTimeDurationHookFunc(),
				mapstructure.StringToSliceHookFunc(","),
			),
		},
	}
	if err := k.UnmarshalWithConf("", &cfg, unmarshalConf); err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigParse, "failed to unmarshal configuration")
	}
	return &cfg, nil
}
