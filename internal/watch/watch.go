// internal/watch/watch.go
// Package watch rebuilds a chart whenever its records file changes.
package watch

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/fsnotify/fsnotify"

	"github.com/mwiater/accuracycharts/internal/logging"
	"github.com/mwiater/accuracycharts/internal/plotdata"
	"github.com/mwiater/accuracycharts/internal/records"
)

// Loader reads the records at path.
type Loader func(path string) ([]plotdata.MetricRecord, error)

// Watcher reloads a records file into a chart on every write. Reloads run
// on the goroutine that called Run, one at a time.
type Watcher struct {
	path    string
	chart   *plotdata.Chart
	load    Loader
	onTable func(plotdata.PlotTable)
	onError func(error)
}

// Option configures a Watcher.
type Option func(*Watcher)

// WithLoader replaces records.Load.
func WithLoader(load Loader) Option {
	return func(w *Watcher) { w.load = load }
}

// OnTable is called with every rebuilt table, including the first.
func OnTable(fn func(plotdata.PlotTable)) Option {
	return func(w *Watcher) { w.onTable = fn }
}

// OnError is called when a reload fails. Watching continues.
func OnError(fn func(error)) Option {
	return func(w *Watcher) { w.onError = fn }
}

// New returns a watcher for path feeding chart.
func New(path string, chart *plotdata.Chart, opts ...Option) *Watcher {
	w := &Watcher{
		path:    path,
		chart:   chart,
		load:    records.Load,
		onTable: func(plotdata.PlotTable) {},
		onError: func(err error) { logging.LogEvent("reload failed: %v", err) },
	}
	for _, opt := range opts {
		opt(w)
	}
	return w
}

// Run loads the file once, then reloads on change until ctx is done. It
// watches the parent directory so editors that replace the file by rename
// are still picked up.
func (w *Watcher) Run(ctx context.Context) error {
	target, err := filepath.Abs(w.path)
	if err != nil {
		return fmt.Errorf("unable to resolve %s: %w", w.path, err)
	}

	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("unable to start file watcher: %w", err)
	}
	defer fsw.Close()

	if err := fsw.Add(filepath.Dir(target)); err != nil {
		return fmt.Errorf("unable to watch %s: %w", filepath.Dir(target), err)
	}

	w.reload()

	for {
		select {
		case <-ctx.Done():
			return nil
		case event, ok := <-fsw.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(event.Name) != target {
				continue
			}
			if event.Has(fsnotify.Write) || event.Has(fsnotify.Create) {
				logging.LogDebug("records changed: %s %s", event.Op, event.Name)
				w.reload()
			}
		case err, ok := <-fsw.Errors:
			if !ok {
				return nil
			}
			w.onError(fmt.Errorf("file watcher: %w", err))
		}
	}
}

func (w *Watcher) reload() {
	recs, err := w.load(w.path)
	if err != nil {
		w.onError(err)
		return
	}
	table := w.chart.SetData(recs)
	logging.LogTable(w.path, table, w.chart.Options())
	w.onTable(table)
}
