package relaygen

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/marioIncandeza/relay-settings/pkg/config"
	"github.com/marioIncandeza/relay-settings/pkg/filesystem"
	"github.com/marioIncandeza/relay-settings/pkg/generate"
	"github.com/marioIncandeza/relay-settings/pkg/logging"
	"github.com/marioIncandeza/relay-settings/pkg/types"
	"github.com/marioIncandeza/relay-settings/pkg/ui"
	"github.com/marioIncandeza/relay-settings/pkg/watch"
	"github.com/marioIncandeza/relay-settings/pkg/wordbits"
	"github.com/marioIncandeza/relay-settings/pkg/workbook"
)

// tableFlags locate the workbook and its tables; shared by generate and
// wordbits
type tableFlags struct {
	relay         string
	workbook      string
	source        string
	sheet         string
	classTable    string
	settingsTable string
}

func (f *tableFlags) register(cmd *cobra.Command, opts *globalOptions) {
	flags := cmd.Flags()
	flags.StringVarP(&f.relay, "relay", "r", "", MsgFlagRelay)
	flags.StringVarP(&f.workbook, "workbook", "w", "", MsgFlagWorkbook)
	flags.StringVar(&f.source, "source", "", MsgFlagSource)
	flags.StringVar(&f.sheet, "sheet", "", MsgFlagSheet)
	flags.StringVar(&f.classTable, "class-table", "", MsgFlagClassTable)
	flags.StringVar(&f.settingsTable, "settings-table", "", MsgFlagSettingsTable)

	_ = cmd.MarkFlagRequired("relay")
	_ = cmd.MarkFlagRequired("workbook")
	_ = cmd.RegisterFlagCompletionFunc("relay", relayTypeCompletion(opts))
	_ = cmd.RegisterFlagCompletionFunc("source", fixedCompletion("xlsx", "csv", "sqlite"))
	_ = cmd.MarkFlagFilename("workbook", "xlsx", "xlsm", "db", "sqlite", "sqlite3")
}

// resolve looks up the relay type and applies the table overrides
func (f *tableFlags) resolve(cfg *config.Config) (types.RelayType, workbook.TableRef, workbook.Kind, error) {
	rt, err := cfg.RelayType(f.relay)
	if err != nil {
		return types.RelayType{}, workbook.TableRef{}, "", err
	}
	ref := workbook.TableRef{
		Sheet:         firstNonEmpty(f.sheet, rt.Sheet),
		ClassTable:    firstNonEmpty(f.classTable, rt.ClassTable),
		SettingsTable: firstNonEmpty(f.settingsTable, rt.SettingsTable),
	}
	kind, err := workbook.ParseKind(cfg.Generate.Source)
	if err != nil {
		return types.RelayType{}, workbook.TableRef{}, "", err
	}
	return rt, ref, kind, nil
}

// overrides maps the changed flags onto config keys
func (f *tableFlags) overrides(cmd *cobra.Command) map[string]interface{} {
	out := make(map[string]interface{})
	if cmd.Flags().Changed("source") {
		out["generate.source"] = f.source
	}
	return out
}

type generateFlags struct {
	tableFlags

	template      string
	output        string
	exclude       []string
	excludeRegion []string
	noComments    bool
	noPMU         bool
	noIP          bool
	jobs          int
	family        string
	watch         bool
}

func newGenerateCmd(opts *globalOptions) *cobra.Command {
	f := &generateFlags{}

	cmd := &cobra.Command{
		Use:     "generate",
		Short:   MsgGenerateShort,
		Long:    MsgGenerateLong,
		Example: MsgGenerateExample,
		GroupID: "core",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runGenerate(cmd, opts, f)
		},
	}

	f.tableFlags.register(cmd, opts)
	flags := cmd.Flags()
	flags.StringVarP(&f.template, "template", "t", "", MsgFlagTemplate)
	flags.StringVarP(&f.output, "output", "o", "", MsgFlagOutput)
	flags.StringSliceVarP(&f.exclude, "exclude", "x", nil, MsgFlagExclude)
	flags.StringArrayVar(&f.excludeRegion, "exclude-region", nil, MsgFlagExcludeRegion)
	flags.BoolVar(&f.noComments, "no-comments", false, MsgFlagNoComments)
	flags.BoolVar(&f.noPMU, "no-pmu", false, MsgFlagNoPMU)
	flags.BoolVar(&f.noIP, "no-ip", false, MsgFlagNoIP)
	flags.IntVarP(&f.jobs, "jobs", "j", 1, MsgFlagJobs)
	flags.StringVar(&f.family, "family", "", MsgFlagFamily)
	flags.BoolVar(&f.watch, "watch", false, MsgFlagWatch)

	_ = cmd.MarkFlagRequired("template")
	_ = cmd.MarkFlagRequired("output")
	_ = cmd.MarkFlagDirname("template")
	_ = cmd.MarkFlagDirname("output")

	return cmd
}

func (f *generateFlags) overrides(cmd *cobra.Command) map[string]interface{} {
	out := f.tableFlags.overrides(cmd)
	changed := cmd.Flags().Changed
	if changed("exclude") {
		out["generate.exclude"] = f.exclude
	}
	if changed("no-comments") {
		out["generate.include_comments"] = !f.noComments
	}
	if changed("no-pmu") {
		out["generate.include_pmu"] = !f.noPMU
	}
	if changed("no-ip") {
		out["generate.include_ip"] = !f.noIP
	}
	if changed("jobs") {
		out["generate.jobs"] = f.jobs
	}
	return out
}

// buildRequest turns flags and configuration into a batch request. The
// workbook source is opened per batch.
func (f *generateFlags) buildRequest(cfg *config.Config) (generate.Request, workbook.Kind, error) {
	rt, ref, kind, err := f.resolve(cfg)
	if err != nil {
		return generate.Request{}, "", err
	}
	family, err := cfg.Family(firstNonEmpty(f.family, rt.Family))
	if err != nil {
		return generate.Request{}, "", err
	}
	excluded, err := cfg.ResolveExclusions(rt.Key, cfg.Generate.Exclude, f.excludeRegion)
	if err != nil {
		return generate.Request{}, "", err
	}

	return generate.Request{
		FS:          filesystem.NewOS(),
		RelayType:   rt,
		Tables:      ref,
		Family:      family,
		TemplateDir: f.template,
		OutputDir:   f.output,
		Excluded:    excluded,
		WordBits: wordbits.Options{
			Identity:          rt.Identity,
			IncludeIP:         cfg.Generate.IncludeIP,
			IncludePMUStation: cfg.Generate.IncludePMU,
			IncludeComments:   cfg.Generate.IncludeComments,
		},
		Pattern: cfg.Generate.Pattern,
		Skip:    cfg.Template.Skip,
		Jobs:    cfg.Generate.Jobs,
	}, kind, nil
}

func runGenerate(cmd *cobra.Command, opts *globalOptions, f *generateFlags) error {
	logger := logging.GetLogger("cmd.generate")

	cfg, err := opts.loadConfig(cmd, f.overrides(cmd))
	if err != nil {
		return err
	}
	req, kind, err := f.buildRequest(cfg)
	if err != nil {
		return err
	}
	r, err := opts.renderer(cmd, cfg)
	if err != nil {
		return err
	}

	logger.Info().
		Str("relay_type", req.RelayType.Key).
		Str("family", req.Family.Name).
		Str("workbook", f.workbook).
		Strs("excluded", req.Excluded).
		Int("jobs", req.Jobs).
		Msg("Starting generate")

	batch := func(ctx context.Context) error {
		report, err := runBatch(ctx, req, kind, f.workbook)
		if err != nil {
			return err
		}
		return r.RenderResult(report)
	}

	if !f.watch {
		return batch(cmd.Context())
	}
	return watchBatches(cmd, r, cfg, f, batch)
}

func runBatch(ctx context.Context, req generate.Request, kind workbook.Kind, path string) (*generate.Report, error) {
	src, err := workbook.Open(kind, path)
	if err != nil {
		return nil, err
	}
	defer func() { _ = src.Close() }()

	req.Source = src
	return generate.Run(ctx, req)
}

func watchBatches(cmd *cobra.Command, r ui.Renderer, cfg *config.Config, f *generateFlags, batch watch.RunFunc) error {
	wopts := watch.Options{
		Dirs:     []string{f.template},
		Ignore:   []string{f.output},
		Debounce: cfg.Watch.Debounce,
		OnError:  func(err error) { _ = r.RenderError(err) },
	}
	if filesystem.IsDir(filesystem.NewOS(), f.workbook) {
		wopts.Dirs = append(wopts.Dirs, f.workbook)
	} else {
		wopts.Files = []string{f.workbook}
	}

	w, err := watch.New(wopts)
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	fmt.Fprintf(cmd.ErrOrStderr(), MsgWatching+"\n", f.workbook, f.template)
	err = w.Run(ctx, batch)
	fmt.Fprintln(cmd.ErrOrStderr(), MsgStopWatching)
	return err
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
