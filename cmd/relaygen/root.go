package relaygen

import (
	"embed"
	"io/fs"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/marioIncandeza/relay-settings/internal/version"
	"github.com/marioIncandeza/relay-settings/pkg/cobrax/topics"
	"github.com/marioIncandeza/relay-settings/pkg/config"
	"github.com/marioIncandeza/relay-settings/pkg/errors"
	"github.com/marioIncandeza/relay-settings/pkg/logging"
	"github.com/marioIncandeza/relay-settings/pkg/ui"
)

//go:embed topics/*.md
var topicFiles embed.FS

// globalOptions are the persistent flags shared by every command
type globalOptions struct {
	verbosity  int
	configFile string
	format     string
}

// loadConfig builds the effective configuration. overrides holds flag
// values keyed by config path; the --format flag is added here.
func (o *globalOptions) loadConfig(cmd *cobra.Command, overrides map[string]interface{}) (*config.Config, error) {
	cfg, _, err := o.loadConfigWithSources(cmd, overrides)
	return cfg, err
}

func (o *globalOptions) loadConfigWithSources(cmd *cobra.Command, overrides map[string]interface{}) (*config.Config, []string, error) {
	if overrides == nil {
		overrides = make(map[string]interface{})
	}
	if cmd.Flags().Changed("format") {
		overrides["generate.format"] = o.format
	}
	return config.LoadWithSources(config.LoadOptions{
		File:      o.configFile,
		Overrides: overrides,
	})
}

// renderer picks the output renderer from the configured format
func (o *globalOptions) renderer(cmd *cobra.Command, cfg *config.Config) (ui.Renderer, error) {
	name := o.format
	if !cmd.Flags().Changed("format") && cfg != nil {
		name = cfg.Generate.Format
	}
	format, err := ui.ParseFormat(name)
	if err != nil {
		return nil, err
	}
	return ui.NewRenderer(format, cmd.OutOrStdout())
}

// NewRootCmd creates and returns the root command
func NewRootCmd() *cobra.Command {
	initTemplateFormatting()

	opts := &globalOptions{}

	rootCmd := &cobra.Command{
		Use:     "relaygen",
		Short:   MsgRootShort,
		Long:    MsgRootLong,
		Version: version.Version,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			logging.SetupLogger(opts.verbosity)
			log.Debug().Str("command", cmd.CommandPath()).Msg("Command started")
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			_ = cmd.Help()
			return errors.New(errors.ErrInvalidInput, "no command specified")
		},
		SilenceUsage:      true,
		SilenceErrors:     true,
		DisableAutoGenTag: true,
	}

	pf := rootCmd.PersistentFlags()
	pf.CountVarP(&opts.verbosity, "verbose", "v", MsgFlagVerbose)
	pf.StringVarP(&opts.configFile, "config", "c", "", MsgFlagConfig)
	pf.StringVarP(&opts.format, "format", "f", "auto", MsgFlagFormat)
	_ = rootCmd.RegisterFlagCompletionFunc("format", fixedCompletion(ui.Formats...))

	rootCmd.AddGroup(&cobra.Group{ID: "core", Title: "COMMANDS:"})
	rootCmd.AddGroup(&cobra.Group{ID: "info", Title: "CATALOG:"})
	rootCmd.AddGroup(&cobra.Group{ID: "misc", Title: "MISC:"})

	rootCmd.SetUsageTemplate(MsgUsageTemplate)

	rootCmd.AddCommand(newGenerateCmd(opts))
	rootCmd.AddCommand(newWordBitsCmd(opts))
	rootCmd.AddCommand(newRelaysCmd(opts))
	rootCmd.AddCommand(newFamiliesCmd(opts))
	rootCmd.AddCommand(newRegionsCmd(opts))
	rootCmd.AddCommand(newTemplateCmd(opts))
	rootCmd.AddCommand(newConfigCmd(opts))
	rootCmd.AddCommand(newTopicsCmd())
	rootCmd.AddCommand(newVersionCmd(opts))
	rootCmd.AddCommand(newCompletionCmd())

	topicsFS, err := fs.Sub(topicFiles, "topics")
	if err == nil {
		err = topics.InitializeWithOptions(rootCmd, topicsFS, topics.Options{
			Extensions: []string{".md"},
			Renderer:   topics.NewGlamourRenderer(),
		})
	}
	if err != nil {
		log.Warn().Err(err).Msg("Help topics unavailable")
	}

	return rootCmd
}

// fixedCompletion completes a flag from a fixed list of values
func fixedCompletion(values ...string) func(*cobra.Command, []string, string) ([]string, cobra.ShellCompDirective) {
	return func(*cobra.Command, []string, string) ([]string, cobra.ShellCompDirective) {
		return values, cobra.ShellCompDirectiveNoFileComp
	}
}

// relayTypeCompletion completes relay type keys from the configuration
func relayTypeCompletion(opts *globalOptions) func(*cobra.Command, []string, string) ([]string, cobra.ShellCompDirective) {
	return func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
		cfg, err := config.Load(config.LoadOptions{File: opts.configFile})
		if err != nil {
			return nil, cobra.ShellCompDirectiveError
		}
		return cfg.RelayKeys(), cobra.ShellCompDirectiveNoFileComp
	}
}
