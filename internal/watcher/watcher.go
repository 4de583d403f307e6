package watcher

import (
	"context"
	"fmt"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/pkg/errors"

	"favicongen/internal/ui"
)

// DefaultDebounce is how long the logo must stay quiet before a rebuild.
const DefaultDebounce = 500 * time.Millisecond

// Watcher calls OnChange whenever a single file is written or replaced.
type Watcher struct {
	path     string
	debounce time.Duration
	onChange func()
	con      *ui.Console
	watcher  *fsnotify.Watcher
}

// NewWatcher starts watching the directory containing path. Watching the
// directory rather than the file survives editors that save by rename.
func NewWatcher(path string, debounce time.Duration, onChange func(), con *ui.Console) (*Watcher, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, errors.Wrap(err, "resolving watched file")
	}

	fsWatcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, errors.Wrap(err, "failed to create fsnotify watcher")
	}

	dir := filepath.Dir(abs)
	if err := fsWatcher.Add(dir); err != nil {
		fsWatcher.Close()
		return nil, errors.Wrapf(err, "failed to watch folder %s", dir)
	}

	if debounce <= 0 {
		debounce = DefaultDebounce
	}

	return &Watcher{
		path:     abs,
		debounce: debounce,
		onChange: onChange,
		con:      con,
		watcher:  fsWatcher,
	}, nil
}

// Run blocks until ctx is done. OnChange is never called concurrently.
func (w *Watcher) Run(ctx context.Context) error {
	var timer *time.Timer
	var fire <-chan time.Time
	defer func() {
		if timer != nil {
			timer.Stop()
		}
	}()

	for {
		select {
		case <-ctx.Done():
			return nil

		case event, ok := <-w.watcher.Events:
			if !ok {
				return nil
			}
			if !w.relevant(event) {
				continue
			}
			if timer == nil {
				timer = time.NewTimer(w.debounce)
			} else {
				timer.Reset(w.debounce)
			}
			fire = timer.C

		case <-fire:
			fire = nil
			w.onChange()

		case err, ok := <-w.watcher.Errors:
			if !ok {
				return nil
			}
			w.con.Warning(fmt.Sprintf("Watcher error: %v", err))
		}
	}
}

func (w *Watcher) relevant(event fsnotify.Event) bool {
	if filepath.Clean(event.Name) != w.path {
		return false
	}
	return event.Has(fsnotify.Write) || event.Has(fsnotify.Create)
}

// Stop releases the underlying fsnotify watcher
func (w *Watcher) Stop() error {
	return w.watcher.Close()
}
