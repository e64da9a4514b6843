package main

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestWatcher(t *testing.T) (*MapWatcher, string) {
	t.Helper()
	dir := t.TempDir()
	tilePath := filepath.Join(dir, "tilemap.csv")
	require.NoError(t, os.WriteFile(tilePath, []byte("0,1\n"), 0o644))

	w, err := NewMapWatcher(tilePath)
	require.NoError(t, err)
	return w, tilePath
}

// collectEvents drains events until the window elapses or the channel closes.
func collectEvents(w *MapWatcher, window time.Duration) []string {
	var got []string
	deadline := time.After(window)
	for {
		select {
		case name, ok := <-w.Events:
			if !ok {
				return got
			}
			got = append(got, name)
		case <-deadline:
			return got
		}
	}
}

func TestMapWatcherReportsWatchedFile(t *testing.T) {
	w, tilePath := newTestWatcher(t)
	defer w.Close()

	require.NoError(t, os.WriteFile(tilePath, []byte("2,3\n"), 0o644))

	select {
	case name := <-w.Events:
		assert.Equal(t, filepath.Clean(tilePath), name)
	case err := <-w.Errors:
		t.Fatalf("unexpected watcher error: %v", err)
	case <-time.After(5 * time.Second):
		t.Fatal("no event for a watched file write")
	}
}

func TestMapWatcherIgnoresUnwatchedFiles(t *testing.T) {
	w, tilePath := newTestWatcher(t)
	defer w.Close()

	other := filepath.Join(filepath.Dir(tilePath), "notes.csv")
	require.NoError(t, os.WriteFile(other, []byte("scratch"), 0o644))

	assert.Empty(t, collectEvents(w, 300*time.Millisecond))
}

func TestMapWatcherDebouncesRapidWrites(t *testing.T) {
	w, tilePath := newTestWatcher(t)
	defer w.Close()

	// several writes inside one debounce window collapse to a single event
	for i := 0; i < 5; i++ {
		require.NoError(t, os.WriteFile(tilePath, []byte("1\n"), 0o644))
	}

	assert.Len(t, collectEvents(w, 400*time.Millisecond), 1)
}

// Shutdown must not crash when events arrive around Close, even with the
// channel buffer full and the run goroutine blocked mid-send.
func TestMapWatcherCloseWithPendingEvents(t *testing.T) {
	w, tilePath := newTestWatcher(t)

	// nothing drains Events here; spacing the writes past the debounce
	// window makes each one a distinct event, overfilling the buffer
	for i := 0; i < 20; i++ {
		require.NoError(t, os.WriteFile(tilePath, []byte("1\n"), 0o644))
		time.Sleep(110 * time.Millisecond)
	}

	require.NoError(t, w.Close())

	// the run goroutine still exits and closes its channel
	for {
		select {
		case _, ok := <-w.Events:
			if !ok {
				return
			}
		case <-time.After(5 * time.Second):
			t.Fatal("Events channel never closed after Close")
		}
	}
}

func TestMapWatcherCloseIsIdempotent(t *testing.T) {
	w, _ := newTestWatcher(t)
	require.NoError(t, w.Close())
	assert.NoError(t, w.Close())
}

func TestNewMapWatcherMissingDirectory(t *testing.T) {
	_, err := NewMapWatcher(filepath.Join(t.TempDir(), "missing", "tilemap.csv"))
	assert.Error(t, err)
}
