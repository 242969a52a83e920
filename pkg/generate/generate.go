package generate

import (
	"context"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/spf13/afero"
	"golang.org/x/sync/errgroup"

	"github.com/marioIncandeza/relay-settings/pkg/errors"
	"github.com/marioIncandeza/relay-settings/pkg/filesystem"
	"github.com/marioIncandeza/relay-settings/pkg/logging"
	"github.com/marioIncandeza/relay-settings/pkg/rdb"
	"github.com/marioIncandeza/relay-settings/pkg/types"
	"github.com/marioIncandeza/relay-settings/pkg/wordbits"
	"github.com/marioIncandeza/relay-settings/pkg/workbook"
)

// Request describes one batch
type Request struct {
	FS     afero.Fs
	Source workbook.Source

	RelayType types.RelayType
	Tables    workbook.TableRef
	Family    types.Family

	TemplateDir string
	OutputDir   string

	// Excluded groups are left as plain template copies
	Excluded []string

	WordBits wordbits.Options

	// Pattern selects template files to rewrite; empty means *.txt
	Pattern string

	// Skip lists doublestar patterns left out of each template copy
	Skip []string

	// Jobs is the number of relays processed at once; values below 2 run
	// the batch sequentially
	Jobs int
}

// Run executes the batch. Relays finished before a failure stay on disk;
// the partial report is returned with the error.
func Run(ctx context.Context, req Request) (*Report, error) {
	start := time.Now()
	report := &Report{
		RunID:     uuid.NewString(),
		RelayType: req.RelayType.Key,
		Family:    req.Family.Name,
		Template:  req.TemplateDir,
		Output:    req.OutputDir,
		Excluded:  req.Excluded,
		Jobs:      max(req.Jobs, 1),
		Started:   start,
	}
	logger := logging.GetLogger("generate").With().Str("run", report.RunID).Str("relay_type", report.RelayType).Logger()
	defer func() { report.Duration = time.Since(start) }()

	if err := filesystem.ValidatePatterns(req.Skip); err != nil {
		return report, err
	}
	if !filesystem.IsDir(req.FS, req.TemplateDir) {
		return report, errors.Newf(errors.ErrTemplateCopy, "template directory %s does not exist", req.TemplateDir)
	}

	relays, settings, err := workbook.Load(ctx, req.Source, req.Tables)
	if err != nil {
		return report, err
	}
	logger.Info().Int("relays", len(relays)).Int("settings", len(settings.Rows)).Msg("Workbook loaded")

	if err := req.FS.MkdirAll(req.OutputDir, 0755); err != nil {
		return report, errors.Wrapf(err, errors.ErrTemplateCopy, "cannot create output directory %s", req.OutputDir)
	}

	jobs := report.Jobs
	if jobs > 1 && hasDuplicateIDs(relays) {
		logger.Warn().Msg("Duplicate relay identifiers share an output directory, running sequentially")
		jobs = 1
	}

	results := make([]RelayResult, len(relays))
	done := make([]bool, len(relays))
	if jobs == 1 {
		err = runSequential(ctx, req, relays, settings, results, done)
	} else {
		err = runParallel(ctx, req, relays, settings, jobs, results, done)
	}

	for i := range results {
		if done[i] {
			report.Relays = append(report.Relays, results[i])
		}
	}
	if err != nil {
		logger.Error().Err(err).Int("completed", len(report.Relays)).Msg("Batch stopped")
		return report, err
	}
	logger.Info().Int("relays", len(report.Relays)).Dur("duration", time.Since(start)).Msg("Batch complete")
	return report, nil
}

func runSequential(ctx context.Context, req Request, relays []types.Relay, settings *types.SettingsTable, results []RelayResult, done []bool) error {
	for i, relay := range relays {
		if err := ctx.Err(); err != nil {
			return err
		}
		res, err := processRelay(req, relay, settings)
		if err != nil {
			return err
		}
		results[i], done[i] = res, true
	}
	return nil
}

func runParallel(ctx context.Context, req Request, relays []types.Relay, settings *types.SettingsTable, jobs int, results []RelayResult, done []bool) error {
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(jobs)

	for i, relay := range relays {
		if gctx.Err() != nil {
			break
		}
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			res, err := processRelay(req, relay, settings)
			if err != nil {
				return err
			}
			// each goroutine owns index i
			results[i], done[i] = res, true
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return err
	}
	return ctx.Err()
}

// processRelay copies the template for one relay and rewrites the copy
func processRelay(req Request, relay types.Relay, settings *types.SettingsTable) (RelayResult, error) {
	start := time.Now()
	name := relay.Name()
	dir := filepath.Join(req.OutputDir, name)
	res := RelayResult{ID: name, Dir: dir}
	if !validDirName(name) {
		return res, errors.Newf(errors.ErrInvalidInput, "relay identifier %q cannot be used as a directory name", name).
			WithDetail("relay", name)
	}

	logger := logging.GetLogger("generate").With().Str("relay", name).Logger()
	defer logging.LogOperationStart(logger, "relay")()
	logger.Debug().Str("dir", dir).Msg("Processing relay")

	if err := filesystem.ReplaceDir(req.FS, req.TemplateDir, dir, req.Skip); err != nil {
		return res, relayError(err, name)
	}

	bits := wordbits.Extract(relay, settings, req.WordBits)
	res.WordBits = len(bits)

	rw := &rdb.Rewriter{FS: req.FS, Family: req.Family, Pattern: req.Pattern}
	summary, err := rw.Rewrite(dir, bits, req.Excluded)
	if err != nil {
		return res, relayError(err, name)
	}
	res.Files = summary.Files
	res.Duration = time.Since(start)

	matched, cleared, _ := summary.Totals()
	logger.Info().
		Int("files", len(summary.Files)).
		Int("matched", matched).
		Int("cleared", cleared).
		Msg("Relay settings complete")
	return res, nil
}

func relayError(err error, relay string) error {
	return errors.Wrapf(err, errors.GetErrorCode(err), "relay %s", relay).WithDetail("relay", relay)
}

// validDirName reports whether id names a single entry directly inside
// the output directory
func validDirName(id string) bool {
	if id == "" || id == "." || id == ".." {
		return false
	}
	return filepath.Base(id) == id && !strings.ContainsAny(id, `/\`)
}

func hasDuplicateIDs(relays []types.Relay) bool {
	seen := make(map[string]bool, len(relays))
	for _, r := range relays {
		if seen[r.Name()] {
			return true
		}
		seen[r.Name()] = true
	}
	return false
}
