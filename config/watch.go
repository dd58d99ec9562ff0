package config

import (
	"log"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
)

// TunablesWatcher reloads a tunables file whenever it changes on disk. The
// newest valid value waits in a slot until the game loop takes it.
type TunablesWatcher struct {
	path    string
	watcher *fsnotify.Watcher
	closeCh chan struct{}
	once    sync.Once

	mu      sync.Mutex
	pending *Tunables
}

// WatchTunables watches the directory of path, since editors often replace
// files instead of writing them in place.
func WatchTunables(path string) (*TunablesWatcher, error) {
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	if err := w.Add(filepath.Dir(path)); err != nil {
		_ = w.Close()
		return nil, err
	}

	tw := &TunablesWatcher{
		path:    filepath.Clean(path),
		watcher: w,
		closeCh: make(chan struct{}),
	}
	go tw.run()
	return tw, nil
}

func (tw *TunablesWatcher) run() {
	var last time.Time
	for {
		select {
		case event, ok := <-tw.watcher.Events:
			if !ok {
				return
			}
			if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) == 0 {
				continue
			}
			if filepath.Clean(event.Name) != tw.path {
				continue
			}
			now := time.Now()
			if now.Sub(last) < 100*time.Millisecond {
				continue
			}
			last = now
			tw.reload()
		case err, ok := <-tw.watcher.Errors:
			if !ok {
				return
			}
			log.Printf("Warning: tunables watcher: %v", err)
		case <-tw.closeCh:
			return
		}
	}
}

func (tw *TunablesWatcher) reload() {
	data, err := os.ReadFile(tw.path)
	if err != nil {
		log.Printf("Warning: Could not reload tunables: %v", err)
		return
	}
	// Parse on top of the shipped defaults so removed keys revert.
	t, err := ParseTunables(data, Defaults())
	if err != nil {
		log.Printf("Warning: Could not reload tunables: %v", err)
		return
	}
	tw.Offer(t)
}

// Offer places t in the slot, replacing any value not yet taken.
func (tw *TunablesWatcher) Offer(t Tunables) {
	tw.mu.Lock()
	defer tw.mu.Unlock()
	tw.pending = &t
}

// Take empties the slot.
func (tw *TunablesWatcher) Take() (Tunables, bool) {
	tw.mu.Lock()
	defer tw.mu.Unlock()
	if tw.pending == nil {
		return Tunables{}, false
	}
	t := *tw.pending
	tw.pending = nil
	return t, true
}

func (tw *TunablesWatcher) Close() error {
	var err error
	tw.once.Do(func() {
		close(tw.closeCh)
		err = tw.watcher.Close()
	})
	return err
}
