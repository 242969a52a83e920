package relaygen

import (
	"github.com/spf13/cobra"

	"github.com/marioIncandeza/relay-settings/pkg/config"
	"github.com/marioIncandeza/relay-settings/pkg/filesystem"
	"github.com/marioIncandeza/relay-settings/pkg/paths"
	"github.com/marioIncandeza/relay-settings/pkg/ui/display"
)

func newConfigCmd(opts *globalOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "config",
		Short:   MsgConfigShort,
		Long:    MsgConfigLong,
		GroupID: "misc",
	}

	var (
		force bool
		path  string
	)
	initCmd := &cobra.Command{
		Use:   "init",
		Short: MsgConfigInitShort,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			r, err := opts.renderer(cmd, nil)
			if err != nil {
				return err
			}
			target := firstNonEmpty(path, paths.UserConfigPath())
			if err := config.WriteUserConfig(filesystem.NewOS(), target, force); err != nil {
				return err
			}
			return r.RenderResult(display.ConfigWritten{Path: target})
		},
	}
	initCmd.Flags().BoolVar(&force, "force", false, MsgFlagForce)
	initCmd.Flags().StringVar(&path, "path", "", MsgFlagPath)

	showCmd := &cobra.Command{
		Use:   "show",
		Short: MsgConfigShowShort,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, sources, err := opts.loadConfigWithSources(cmd, nil)
			if err != nil {
				return err
			}
			r, err := opts.renderer(cmd, cfg)
			if err != nil {
				return err
			}
			return r.RenderResult(display.ConfigDump{Sources: sources, Config: cfg})
		},
	}

	cmd.AddCommand(initCmd, showCmd)
	return cmd
}
