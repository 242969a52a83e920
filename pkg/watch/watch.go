// Package watch re-runs a batch whenever its inputs change on disk.
package watch

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/rs/zerolog"
	"github.com/spf13/afero"

	"github.com/marioIncandeza/relay-settings/pkg/errors"
	"github.com/marioIncandeza/relay-settings/pkg/logging"
)

// DefaultDebounce is the quiet period after the last change before a run
const DefaultDebounce = 500 * time.Millisecond

// RunFunc runs one complete batch
type RunFunc func(ctx context.Context) error

// Options configures a watcher
type Options struct {
	// Files are watched individually through their parent directory, so
	// editors that replace a file on save still trigger a run.
	Files []string

	// Dirs are watched recursively.
	Dirs []string

	// Ignore lists path prefixes whose events are dropped, typically the
	// output directory.
	Ignore []string

	Debounce time.Duration

	// OnError receives batch failures. The watcher keeps going after
	// reporting them.
	OnError func(error)
}

// Watcher runs a batch once and again after every settled change
type Watcher struct {
	opts    Options
	fsw     *fsnotify.Watcher
	files   map[string]bool
	watched map[string]bool
	log     zerolog.Logger
}

// New creates a watcher over the given inputs
func New(opts Options) (*Watcher, error) {
	if opts.Debounce <= 0 {
		opts.Debounce = DefaultDebounce
	}
	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, errors.Wrap(err, errors.ErrInternal, "cannot start file watcher")
	}
	w := &Watcher{
		opts:    opts,
		fsw:     fsw,
		files:   make(map[string]bool),
		watched: make(map[string]bool),
		log:     logging.GetLogger("watch"),
	}

	for _, f := range opts.Files {
		abs, err := filepath.Abs(f)
		if err != nil {
			_ = fsw.Close()
			return nil, errors.Wrapf(err, errors.ErrInvalidInput, "cannot resolve %s", f)
		}
		w.files[abs] = true
		if err := w.add(filepath.Dir(abs)); err != nil {
			_ = fsw.Close()
			return nil, err
		}
	}
	for _, d := range opts.Dirs {
		if err := w.addTree(d); err != nil {
			_ = fsw.Close()
			return nil, err
		}
	}
	return w, nil
}

func (w *Watcher) add(dir string) error {
	if w.watched[dir] {
		return nil
	}
	if err := w.fsw.Add(dir); err != nil {
		return errors.Wrapf(err, errors.ErrInvalidInput, "cannot watch %s", dir)
	}
	w.watched[dir] = true
	w.log.Debug().Str("dir", dir).Msg("Watching")
	return nil
}

func (w *Watcher) addTree(root string) error {
	abs, err := filepath.Abs(root)
	if err != nil {
		return errors.Wrapf(err, errors.ErrInvalidInput, "cannot resolve %s", root)
	}
	return afero.Walk(afero.NewOsFs(), abs, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return errors.Wrapf(err, errors.ErrInvalidInput, "cannot walk %s", path)
		}
		if !info.IsDir() {
			return nil
		}
		if w.ignored(path) {
			return filepath.SkipDir
		}
		return w.add(path)
	})
}

// Relevant reports whether an event should trigger a run
func (w *Watcher) Relevant(ev fsnotify.Event) bool {
	if ev.Op == fsnotify.Chmod {
		return false
	}
	path, err := filepath.Abs(ev.Name)
	if err != nil || w.ignored(path) {
		return false
	}
	// siblings of a watched file share its directory watch and are noise
	return w.files[path] || w.inTree(path)
}

func (w *Watcher) inTree(path string) bool {
	for _, d := range w.opts.Dirs {
		abs, err := filepath.Abs(d)
		if err == nil && within(path, abs) {
			return true
		}
	}
	return false
}

func (w *Watcher) ignored(path string) bool {
	for _, p := range w.opts.Ignore {
		abs, err := filepath.Abs(p)
		if err == nil && within(path, abs) {
			return true
		}
	}
	return false
}

func within(path, root string) bool {
	return path == root || strings.HasPrefix(path, root+string(filepath.Separator))
}

// Run executes fn once, then again after each settled burst of changes,
// until ctx is done. fn always runs to completion: cancellation is only
// observed between runs.
func (w *Watcher) Run(ctx context.Context, fn RunFunc) error {
	defer func() { _ = w.fsw.Close() }()

	run := func() {
		if err := fn(context.WithoutCancel(ctx)); err != nil {
			w.log.Warn().Err(err).Msg("Batch failed")
			if w.opts.OnError != nil {
				w.opts.OnError(err)
			}
		}
	}
	run()

	timer := time.NewTimer(w.opts.Debounce)
	timer.Stop()

	for {
		select {
		case <-ctx.Done():
			timer.Stop()
			return nil
		case ev, ok := <-w.fsw.Events:
			if !ok {
				return nil
			}
			if ev.Has(fsnotify.Create) {
				if info, err := os.Stat(ev.Name); err == nil && info.IsDir() && w.inTree(ev.Name) {
					if err := w.addTree(ev.Name); err != nil {
						w.log.Warn().Err(err).Str("dir", ev.Name).Msg("Cannot watch new directory")
					}
				}
			}
			if !w.Relevant(ev) {
				continue
			}
			w.log.Debug().Str("path", ev.Name).Str("op", ev.Op.String()).Msg("Change detected")
			timer.Reset(w.opts.Debounce)
		case err, ok := <-w.fsw.Errors:
			if !ok {
				return nil
			}
			w.log.Warn().Err(err).Msg("Watcher error")
		case <-timer.C:
			run()
		}
	}
}

// Close stops watching without running
func (w *Watcher) Close() error {
	return w.fsw.Close()
}
