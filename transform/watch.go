package transform

import (
	"context"
	"fmt"
	"io"
	"path/filepath"
	"sort"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/maruel/natural"
	"go.uber.org/zap"
)

// settle is how long watcher waits after the last change before processing,
// editors tend to produce several events for a single save.
const settle = 100 * time.Millisecond

// watch re-runs filter for changed sources until ctx is cancelled. src is a
// single file or a directory, dst has the same meaning as for the initial run.
func (p *processor) watch(ctx context.Context, src string, dir bool, dst string, stdout io.Writer) error {
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("unable to create file watcher: %w", err)
	}
	defer w.Close()

	// watching parent directory survives editors replacing files on save
	watched := src
	if !dir {
		watched = filepath.Dir(src)
	}
	if err := w.Add(watched); err != nil {
		return fmt.Errorf("unable to watch %s: %w", watched, err)
	}
	p.log.Info("Watching for changes", zap.String("path", src))

	wanted := func(name string) bool {
		abs, err := filepath.Abs(name)
		if err != nil {
			return false
		}
		if _, ours := p.written[abs]; ours {
			return false
		}
		if !dir {
			return abs == src
		}
		return filepath.Dir(abs) == src && isSource(abs)
	}

	var (
		pending = make(map[string]struct{})
		timer   = time.NewTimer(settle)
	)
	timer.Stop()

	for {
		select {
		case <-ctx.Done():
			p.log.Info("Watching stopped")
			return nil

		case event, ok := <-w.Events:
			if !ok {
				return fmt.Errorf("watcher events channel closed")
			}
			if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) {
				continue
			}
			if !wanted(event.Name) {
				continue
			}
			p.log.Debug("Change detected", zap.String("file", event.Name), zap.Stringer("op", event.Op))
			pending[event.Name] = struct{}{}
			timer.Reset(settle)

		case err, ok := <-w.Errors:
			if !ok {
				return fmt.Errorf("watcher errors channel closed")
			}
			p.log.Warn("File watcher error", zap.Error(err))

		case <-timer.C:
			names := make([]string, 0, len(pending))
			for name := range pending {
				names = append(names, name)
			}
			clear(pending)
			sort.Sort(natural.StringSlice(names))

			for _, name := range names {
				before := p.stats
				if err := p.processFile(name, dst, stdout); err != nil {
					p.log.Error("Unable to process file", zap.String("file", name), zap.Error(err))
					continue
				}
				p.log.Info("Stylesheet updated", zap.String("file", name), zap.Int("changed", p.stats.Changed()-before.Changed()))
			}
		}
	}
}
