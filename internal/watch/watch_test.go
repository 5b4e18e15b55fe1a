package watch

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWatcher_RebuildOnDescriptorChange(t *testing.T) {
	dir := t.TempDir()
	rebuilt := make(chan struct{}, 1)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	done := make(chan error, 1)
	go func() {
		done <- NewWithDebounce(20 * time.Millisecond).Run(ctx, dir, func() error {
			select {
			case rebuilt <- struct{}{}:
			default:
			}
			return nil
		})
	}()

	// Give the watcher a moment to register before writing.
	time.Sleep(100 * time.Millisecond)
	require.NoError(t, os.WriteFile(filepath.Join(dir, "plugin.json"), []byte("{}"), 0644))

	select {
	case <-rebuilt:
	case <-time.After(5 * time.Second):
		t.Fatal("expected a rebuild after descriptor write")
	}

	cancel()
	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("watcher did not stop on cancel")
	}
}

func TestWatcher_IgnoresNonDescriptorFiles(t *testing.T) {
	dir := t.TempDir()
	rebuilt := make(chan struct{}, 1)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	go func() {
		_ = NewWithDebounce(20 * time.Millisecond).Run(ctx, dir, func() error {
			select {
			case rebuilt <- struct{}{}:
			default:
			}
			return nil
		})
	}()

	time.Sleep(100 * time.Millisecond)
	require.NoError(t, os.WriteFile(filepath.Join(dir, "notes.txt"), []byte("x"), 0644))

	select {
	case <-rebuilt:
		t.Fatal("non-descriptor file should not trigger a rebuild")
	case <-time.After(500 * time.Millisecond):
	}
}

func TestWatcher_MissingDirectory(t *testing.T) {
	err := New().Run(context.Background(), filepath.Join(t.TempDir(), "nope"), func() error { return nil })
	assert.Error(t, err)
}

func TestRelevant(t *testing.T) {
	assert.True(t, relevant(fsnotify.Event{Name: "a.json", Op: fsnotify.Write}))
	assert.True(t, relevant(fsnotify.Event{Name: "B.JSON", Op: fsnotify.Create}))
	assert.False(t, relevant(fsnotify.Event{Name: "a.txt", Op: fsnotify.Write}))
	assert.False(t, relevant(fsnotify.Event{Name: "a.json", Op: fsnotify.Chmod}))
}
