package tui

import (
	"fmt"
	"path/filepath"
	"time"

	tea "charm.land/bubbletea/v2"
	"github.com/fsnotify/fsnotify"

	corebrief "github.com/colonyops/citeview/internal/core/brief"
)

// briefChangedMsg is sent when the watched brief file changes on disk.
type briefChangedMsg struct {
	brief *corebrief.Brief
	err   error
}

// BriefWatcher watches a brief file for changes. The parent directory is
// watched rather than the file so editors that save by rename are seen.
type BriefWatcher struct {
	watcher     *fsnotify.Watcher
	path        string
	debounceDur time.Duration
}

// NewBriefWatcher creates a watcher for the brief at path.
func NewBriefWatcher(path string) (*BriefWatcher, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("resolve brief path: %w", err)
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}

	if err := watcher.Add(filepath.Dir(abs)); err != nil {
		watcher.Close()
		return nil, fmt.Errorf("watch %s: %w", filepath.Dir(abs), err)
	}

	return &BriefWatcher{
		watcher:     watcher,
		path:        abs,
		debounceDur: 100 * time.Millisecond,
	}, nil
}

// Path returns the absolute path of the watched brief.
func (w *BriefWatcher) Path() string {
	return w.path
}

// Start returns a command that waits for the next change and reloads the
// brief.
func (w *BriefWatcher) Start() tea.Cmd {
	return func() tea.Msg {
		for {
			select {
			case event, ok := <-w.watcher.Events:
				if !ok {
					return nil
				}
				if !w.relevant(event) {
					continue
				}

				// Debounce: wait for changes to settle
				time.Sleep(w.debounceDur)

				drained := false
				for !drained {
					select {
					case <-w.watcher.Events:
					default:
						drained = true
					}
				}

				b, err := corebrief.Load(w.path)
				return briefChangedMsg{brief: b, err: err}

			case _, ok := <-w.watcher.Errors:
				if !ok {
					return nil
				}
				// Ignore errors, continue watching
			}
		}
	}
}

func (w *BriefWatcher) relevant(event fsnotify.Event) bool {
	if filepath.Clean(event.Name) != w.path {
		return false
	}
	return event.Has(fsnotify.Write) || event.Has(fsnotify.Create) || event.Has(fsnotify.Rename)
}

// Close stops the watcher.
func (w *BriefWatcher) Close() error {
	return w.watcher.Close()
}
