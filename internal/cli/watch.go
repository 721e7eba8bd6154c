package cli

import (
	"context"
	"fmt"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
)

// watchDebounce coalesces the burst of events editors emit for a single save.
const watchDebounce = 100 * time.Millisecond

// Watch runs the pipeline once, then again after every change to the config
// file, until ctx is cancelled. A failed iteration is logged and the previous
// artifacts stay in place.
func Watch(ctx context.Context, p *Pipeline) error {
	absPath, err := filepath.Abs(p.opts.ConfigPath)
	if err != nil {
		return fmt.Errorf("invalid config path: %w", err)
	}

	w, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("failed to create watcher: %w", err)
	}
	defer w.Close()

	// Watch the directory: editors often replace the file instead of writing it.
	if err := w.Add(filepath.Dir(absPath)); err != nil {
		return fmt.Errorf("failed to watch %s: %w", filepath.Dir(absPath), err)
	}

	p.logger.Info("Starting Watcher", "path", absPath)
	p.runLogged(ctx)
	printSystemMessage(p.out, "Waiting for changes...")

	var timer *time.Timer
	var fire <-chan time.Time
	for {
		select {
		case <-ctx.Done():
			p.logger.Info("Stopping watcher")
			return nil

		case event, ok := <-w.Events:
			if !ok {
				return nil
			}
			if !isConfigEvent(event, absPath) {
				continue
			}
			p.logger.Debug("Change detected", "event", event.Op.String(), "path", event.Name)
			if timer == nil {
				timer = time.NewTimer(watchDebounce)
			} else {
				timer.Reset(watchDebounce)
			}
			fire = timer.C

		case err, ok := <-w.Errors:
			if !ok {
				return nil
			}
			p.logger.Error("Watcher error", "err", err)

		case <-fire:
			fire = nil
			printSystemMessage(p.out, "Change detected in '%s'.", filepath.Base(absPath))
			p.runLogged(ctx)
			printSystemMessage(p.out, "Waiting for changes...")
		}
	}
}

func (p *Pipeline) runLogged(ctx context.Context) {
	if _, err := p.Run(ctx); err != nil {
		p.logger.Error("Generation failed", "err", err)
	}
}

func isConfigEvent(event fsnotify.Event, path string) bool {
	if filepath.Clean(event.Name) != path {
		return false
	}
	return event.Has(fsnotify.Write) || event.Has(fsnotify.Create) || event.Has(fsnotify.Rename)
}
