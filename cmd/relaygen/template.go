package relaygen

import (
	"github.com/spf13/cobra"

	"github.com/marioIncandeza/relay-settings/pkg/config"
	"github.com/marioIncandeza/relay-settings/pkg/errors"
	"github.com/marioIncandeza/relay-settings/pkg/filesystem"
	"github.com/marioIncandeza/relay-settings/pkg/templateinfo"
	"github.com/marioIncandeza/relay-settings/pkg/ui/display"
)

func newTemplateCmd(opts *globalOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "template",
		Short:   MsgTemplateShort,
		GroupID: "info",
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "info <template-dir>",
		Short: MsgTemplateInfoShort,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withConfig(cmd, opts, func(*config.Config) (interface{}, error) {
				fs := filesystem.NewOS()
				if !filesystem.IsDir(fs, args[0]) {
					return nil, errors.Newf(errors.ErrNotFound, "template directory %s not found", args[0])
				}
				info, err := templateinfo.Read(fs, args[0])
				if err != nil {
					return nil, err
				}
				return display.TemplateInfo{Dir: args[0], Info: info}, nil
			})
		},
	})

	return cmd
}
