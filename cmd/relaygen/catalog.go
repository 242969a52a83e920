package relaygen

import (
	"github.com/spf13/cobra"

	"github.com/marioIncandeza/relay-settings/pkg/config"
	"github.com/marioIncandeza/relay-settings/pkg/types"
	"github.com/marioIncandeza/relay-settings/pkg/ui/display"
)

func newRelaysCmd(opts *globalOptions) *cobra.Command {
	return &cobra.Command{
		Use:     "relays",
		Short:   MsgRelaysShort,
		GroupID: "info",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return withConfig(cmd, opts, func(cfg *config.Config) (interface{}, error) {
				view := display.RelayTypes{}
				for _, key := range cfg.RelayKeys() {
					rt, err := cfg.RelayType(key)
					if err != nil {
						return nil, err
					}
					view.Items = append(view.Items, rt)
				}
				return view, nil
			})
		},
	}
}

func newFamiliesCmd(opts *globalOptions) *cobra.Command {
	return &cobra.Command{
		Use:     "families",
		Short:   MsgFamiliesShort,
		GroupID: "info",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return withConfig(cmd, opts, func(cfg *config.Config) (interface{}, error) {
				view := display.Families{}
				for _, name := range cfg.FamilyNames() {
					fam, err := cfg.Family(name)
					if err != nil {
						return nil, err
					}
					view.Items = append(view.Items, fam)
				}
				return view, nil
			})
		},
	}
}

func newRegionsCmd(opts *globalOptions) *cobra.Command {
	return &cobra.Command{
		Use:               "regions <relay-type>",
		Short:             MsgRegionsShort,
		GroupID:           "info",
		Args:              cobra.ExactArgs(1),
		ValidArgsFunction: relayTypeCompletion(opts),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withConfig(cmd, opts, func(cfg *config.Config) (interface{}, error) {
				regions, err := cfg.Regions(args[0])
				if err != nil {
					return nil, err
				}
				if regions == nil {
					regions = []types.Region{}
				}
				return display.Regions{RelayType: args[0], Items: regions}, nil
			})
		},
	}
}

// withConfig loads the configuration, builds a view from it and renders it
func withConfig(cmd *cobra.Command, opts *globalOptions, build func(*config.Config) (interface{}, error)) error {
	cfg, err := opts.loadConfig(cmd, nil)
	if err != nil {
		return err
	}
	r, err := opts.renderer(cmd, cfg)
	if err != nil {
		return err
	}
	view, err := build(cfg)
	if err != nil {
		return err
	}
	return r.RenderResult(view)
}
