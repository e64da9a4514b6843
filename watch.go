package main

import (
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
)

// MapWatcher reports changes to the map CSV files so the game can reload
// them without restarting. Events are debounced because editors tend to
// fire several writes per save.
type MapWatcher struct {
	watcher *fsnotify.Watcher
	Events  chan string
	Errors  chan error
	closeCh chan struct{}
	once    sync.Once
}

// NewMapWatcher watches the directories containing the given files and
// reports events for exactly those files.
func NewMapWatcher(paths ...string) (*MapWatcher, error) {
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}

	dirs := make(map[string]struct{})
	for _, p := range paths {
		dirs[filepath.Dir(p)] = struct{}{}
	}
	for dir := range dirs {
		if err := w.Add(dir); err != nil {
			_ = w.Close()
			return nil, err
		}
	}

	watched := make(map[string]struct{}, len(paths))
	for _, p := range paths {
		watched[filepath.Clean(p)] = struct{}{}
	}

	mw := &MapWatcher{
		watcher: w,
		Events:  make(chan string, 16),
		Errors:  make(chan error, 1),
		closeCh: make(chan struct{}),
	}
	go mw.run(watched)
	return mw, nil
}

// Close stops the watcher. The run goroutine owns the Events and Errors
// channels and closes them on its way out, so closing here would race a
// blocked send.
func (mw *MapWatcher) Close() error {
	var err error
	mw.once.Do(func() {
		close(mw.closeCh)
		err = mw.watcher.Close()
	})
	return err
}

func (mw *MapWatcher) run(watched map[string]struct{}) {
	defer close(mw.Errors)
	defer close(mw.Events)

	last := make(map[string]time.Time)
	for {
		select {
		case event, ok := <-mw.watcher.Events:
			if !ok {
				return
			}
			if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) == 0 {
				continue
			}
			name := filepath.Clean(event.Name)
			if _, ok := watched[name]; !ok {
				continue
			}
			now := time.Now()
			if t, ok := last[name]; ok && now.Sub(t) < 100*time.Millisecond {
				continue
			}
			last[name] = now
			select {
			case mw.Events <- name:
			case <-mw.closeCh:
				return
			}
		case err, ok := <-mw.watcher.Errors:
			if !ok {
				return
			}
			select {
			case mw.Errors <- err:
			case <-mw.closeCh:
				return
			}
		case <-mw.closeCh:
			return
		}
	}
}
