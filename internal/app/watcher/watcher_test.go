package watcher

import (
	"io"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"fnav/internal/app/errors"
	"fnav/internal/app/fs"
	"fnav/internal/config"
	"fnav/internal/config/logger"
)

func newTestWatcher(t *testing.T) Watcher {
	t.Helper()

	cfg := config.DefaultConfig()
	cfg.Watch.Debounce = 20 * time.Millisecond

	w, err := NewWatcher(cfg, logger.NewLoggerWithOutput(cfg, io.Discard, nil))
	require.NoError(t, err)
	t.Cleanup(w.Close)

	return w
}

func tempDir(t *testing.T) string {
	t.Helper()

	dir, err := fs.Canonical(t.TempDir())
	require.NoError(t, err)

	return dir
}

func waitChange(t *testing.T, w Watcher) Change {
	t.Helper()

	select {
	case change, ok := <-w.Changes():
		require.True(t, ok)
		return change
	case <-time.After(2 * time.Second):
		t.Fatal("timed out waiting for change")
	}

	return Change{}
}

func Test_NewWatcher_InvalidIgnore(t *testing.T) {
	cfg := config.DefaultConfig()
	cfg.Watch.Ignore = []string{"[unclosed"}

	w, err := NewWatcher(cfg, logger.NewLoggerWithOutput(cfg, io.Discard, nil))

	assert.Nil(t, w)
	assert.ErrorIs(t, err, errors.ErrInvalidWatchIgnore)
}

func Test_Watcher_ReportsChanges(t *testing.T) {
	w := newTestWatcher(t)
	dir := tempDir(t)

	require.NoError(t, w.Watch(dir))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "new.txt"), []byte("x"), 0o644))

	change := waitChange(t, w)
	assert.Equal(t, dir, change.Dir)
	assert.Contains(t, change.Names, "new.txt")
}

func Test_Watcher_IgnoresMatchingNames(t *testing.T) {
	w := newTestWatcher(t)
	dir := tempDir(t)

	require.NoError(t, w.Watch(dir))
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".notes.swp"), []byte("x"), 0o644))

	assert.Never(t, func() bool {
		select {
		case <-w.Changes():
			return true
		default:
			return false
		}
	}, 200*time.Millisecond, 20*time.Millisecond)
}

func Test_Watcher_SwitchesDirectory(t *testing.T) {
	w := newTestWatcher(t)
	first := tempDir(t)
	second := tempDir(t)

	require.NoError(t, w.Watch(first))
	require.NoError(t, w.Watch(second))

	require.NoError(t, os.WriteFile(filepath.Join(first, "ignored.txt"), []byte("x"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(second, "seen.txt"), []byte("x"), 0o644))

	change := waitChange(t, w)
	assert.Equal(t, second, change.Dir)
	assert.Equal(t, []string{"seen.txt"}, change.Names)
}

func Test_Watcher_MissingDirectory(t *testing.T) {
	w := newTestWatcher(t)

	err := w.Watch(filepath.Join(t.TempDir(), "missing"))
	assert.ErrorIs(t, err, errors.ErrWatchFailed)
}

func Test_Watcher_Close(t *testing.T) {
	cfg := config.DefaultConfig()
	w, err := NewWatcher(cfg, logger.NewLoggerWithOutput(cfg, io.Discard, nil))
	require.NoError(t, err)

	w.Close()
	w.Close()

	_, ok := <-w.Changes()
	assert.False(t, ok)
	assert.NoError(t, w.Watch(t.TempDir()))
}

func Test_NewWatcher_Disabled(t *testing.T) {
	cfg := config.DefaultConfig()
	cfg.Watch.Enabled = false
	cfg.Watch.Ignore = []string{"["}

	w, err := NewWatcher(cfg, logger.NewLoggerWithOutput(cfg, io.Discard, nil))
	require.NoError(t, err)

	assert.IsType(t, &disabled{}, w)
	assert.NoError(t, w.Watch(tempDir(t)))

	_, ok := <-w.Changes()
	assert.False(t, ok)

	w.Close()
	w.Close()
}
