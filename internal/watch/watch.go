// Package watch regenerates the document whenever the project tree changes.
package watch

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"

	"git.home.luguber.info/inful/readmegen/internal/logfields"
	"git.home.luguber.info/inful/readmegen/internal/pipeline"
	"git.home.luguber.info/inful/readmegen/internal/source"
)

// DefaultDebounce is the quiet period after the last change before regenerating.
const DefaultDebounce = 300 * time.Millisecond

// Watcher regenerates root's document on file changes.
type Watcher struct {
	gen      *pipeline.Generator
	root     string
	output   string
	debounce time.Duration
	// onWrite is called after every regeneration attempt.
	onWrite func(res *pipeline.Result, changed bool, err error)
}

// Option configures a Watcher.
type Option func(*Watcher)

// WithDebounce overrides DefaultDebounce.
func WithDebounce(d time.Duration) Option {
	return func(w *Watcher) { w.debounce = d }
}

// WithOnWrite registers a callback invoked after each regeneration.
func WithOnWrite(fn func(res *pipeline.Result, changed bool, err error)) Option {
	return func(w *Watcher) { w.onWrite = fn }
}

// New prepares a watcher for root. The generator's own output file is never
// treated as a change.
func New(gen *pipeline.Generator, root string, opts ...Option) (*Watcher, error) {
	abs, err := filepath.Abs(root)
	if err != nil {
		return nil, err
	}
	output, err := gen.OutputPath(abs)
	if err != nil {
		return nil, err
	}
	w := &Watcher{gen: gen, root: abs, output: output, debounce: DefaultDebounce}
	for _, opt := range opts {
		opt(w)
	}
	return w, nil
}

// Run writes the document once, then again after every debounced burst of
// changes, until ctx is cancelled.
func (w *Watcher) Run(ctx context.Context) error {
	// An invalid root fails here rather than inside the loop.
	if _, err := source.Open(w.root); err != nil {
		return err
	}
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("fsnotify: %w", err)
	}
	defer func() { _ = watcher.Close() }()
	w.addDirsRecursive(watcher, w.root)

	rebuildReq, trigger, stop := debouncer(w.debounce)
	defer stop()

	w.regenerate(ctx)
	slog.Info("Watching for changes", logfields.Root(w.root), logfields.File(w.output))
	for {
		select {
		case <-ctx.Done():
			slog.Info("Watcher stopped", logfields.Root(w.root))
			return nil
		case ev, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			w.handleEvent(watcher, ev, trigger)
		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			slog.Warn("Watcher error", logfields.Error(err))
		case <-rebuildReq:
			w.regenerate(ctx)
		}
	}
}

func (w *Watcher) regenerate(ctx context.Context) {
	res, changed, err := w.gen.Write(ctx, w.root)
	switch {
	case err != nil:
		slog.Warn("Regeneration failed", logfields.Root(w.root), logfields.Error(err))
	case changed:
		slog.Info("Document updated", logfields.File(w.output))
	default:
		slog.Debug("Document unchanged", logfields.File(w.output))
	}
	if w.onWrite != nil {
		w.onWrite(res, changed, err)
	}
}

func (w *Watcher) handleEvent(watcher *fsnotify.Watcher, ev fsnotify.Event, trigger func()) {
	if w.ignore(ev.Name) {
		return
	}
	if ev.Op&fsnotify.Create == fsnotify.Create {
		if fi, err := os.Stat(ev.Name); err == nil && fi.IsDir() {
			w.addDirsRecursive(watcher, ev.Name)
		}
	}
	slog.Debug("File change detected", logfields.Path(ev.Name), slog.String("op", ev.Op.String()))
	trigger()
}

// ignore reports whether a change to name cannot affect the document.
func (w *Watcher) ignore(name string) bool {
	if name == w.output || name == w.output+".tmp" {
		return true
	}
	rel, err := filepath.Rel(w.root, name)
	if err != nil {
		return true
	}
	for _, part := range strings.Split(filepath.ToSlash(rel), "/") {
		if slices.Contains(source.DefaultPrune, part) {
			return true
		}
	}
	base := filepath.Base(name)
	return strings.HasSuffix(base, "~") ||
		strings.HasSuffix(base, ".swp") ||
		strings.HasSuffix(base, ".swx") ||
		strings.HasPrefix(base, ".#") ||
		base == ".DS_Store"
}

func (w *Watcher) addDirsRecursive(watcher *fsnotify.Watcher, root string) {
	_ = filepath.WalkDir(root, func(path string, d os.DirEntry, err error) error {
		if err != nil || !d.IsDir() {
			return nil
		}
		if path != w.root && slices.Contains(source.DefaultPrune, d.Name()) {
			return filepath.SkipDir
		}
		if err := watcher.Add(path); err != nil {
			slog.Warn("Watch add failed", logfields.Path(path), logfields.Error(err))
		}
		return nil
	})
}

// debouncer returns a channel that receives once per quiet period after the
// last trigger call.
func debouncer(d time.Duration) (<-chan struct{}, func(), func()) {
	var mu sync.Mutex
	var timer *time.Timer
	req := make(chan struct{}, 1)

	trigger := func() {
		mu.Lock()
		defer mu.Unlock()
		if timer != nil {
			timer.Stop()
		}
		timer = time.AfterFunc(d, func() {
			select {
			case req <- struct{}{}:
			default:
			}
		})
	}
	stop := func() {
		mu.Lock()
		defer mu.Unlock()
		if timer != nil {
			timer.Stop()
		}
	}
	return req, trigger, stop
}
