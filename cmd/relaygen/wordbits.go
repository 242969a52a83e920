package relaygen

import (
	"github.com/spf13/cobra"

	"github.com/marioIncandeza/relay-settings/pkg/generate"
	"github.com/marioIncandeza/relay-settings/pkg/ui/display"
	"github.com/marioIncandeza/relay-settings/pkg/wordbits"
	"github.com/marioIncandeza/relay-settings/pkg/workbook"
)

type wordBitsFlags struct {
	tableFlags

	ids        []string
	noComments bool
	noPMU      bool
	noIP       bool
}

func newWordBitsCmd(opts *globalOptions) *cobra.Command {
	f := &wordBitsFlags{}

	cmd := &cobra.Command{
		Use:     "wordbits",
		Short:   MsgWordBitsShort,
		Long:    MsgWordBitsLong,
		Example: MsgWordBitsExample,
		GroupID: "core",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			overrides := f.overrides(cmd)
			if cmd.Flags().Changed("no-comments") {
				overrides["generate.include_comments"] = !f.noComments
			}
			if cmd.Flags().Changed("no-pmu") {
				overrides["generate.include_pmu"] = !f.noPMU
			}
			if cmd.Flags().Changed("no-ip") {
				overrides["generate.include_ip"] = !f.noIP
			}

			cfg, err := opts.loadConfig(cmd, overrides)
			if err != nil {
				return err
			}
			rt, ref, kind, err := f.resolve(cfg)
			if err != nil {
				return err
			}
			r, err := opts.renderer(cmd, cfg)
			if err != nil {
				return err
			}

			src, err := workbook.Open(kind, f.workbook)
			if err != nil {
				return err
			}
			defer func() { _ = src.Close() }()

			relays, err := generate.Preview(cmd.Context(), src, ref, wordbits.Options{
				Identity:          rt.Identity,
				IncludeIP:         cfg.Generate.IncludeIP,
				IncludePMUStation: cfg.Generate.IncludePMU,
				IncludeComments:   cfg.Generate.IncludeComments,
			}, f.ids)
			if err != nil {
				return err
			}
			return r.RenderResult(display.WordBits{RelayType: rt.Key, Relays: relays})
		},
	}

	f.tableFlags.register(cmd, opts)
	flags := cmd.Flags()
	flags.StringSliceVar(&f.ids, "id", nil, MsgFlagID)
	flags.BoolVar(&f.noComments, "no-comments", false, MsgFlagNoComments)
	flags.BoolVar(&f.noPMU, "no-pmu", false, MsgFlagNoPMU)
	flags.BoolVar(&f.noIP, "no-ip", false, MsgFlagNoIP)

	return cmd
}
