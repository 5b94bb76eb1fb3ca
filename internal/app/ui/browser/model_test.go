package browser

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"fnav/internal/app/actions"
	"fnav/internal/app/dispatch"
	"fnav/internal/app/fs"
	"fnav/internal/app/monitor"
	"fnav/internal/app/navigation"
	"fnav/internal/config"
	"fnav/internal/config/logger"
)

type fakeMonitor struct {
	stats monitor.Stats
}

func (f fakeMonitor) Sample(ctx context.Context) (monitor.Stats, error) {
	return f.stats, nil
}

type fixture struct {
	root   string
	engine navigation.Engine
	sink   *logger.Sink
	model  Model
}

// newFixture creates root/{alpha/inner.txt, beta/, zeta.txt} and a model over it
func newFixture(t *testing.T) fixture {
	t.Helper()

	root, err := fs.Canonical(t.TempDir())
	require.NoError(t, err)

	require.NoError(t, os.Mkdir(filepath.Join(root, "alpha"), 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(root, "alpha", "inner.txt"), []byte("x"), 0o644))
	require.NoError(t, os.Mkdir(filepath.Join(root, "beta"), 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(root, "zeta.txt"), []byte("x"), 0o644))

	return newFixtureAt(t, root)
}

func newFixtureAt(t *testing.T, root string) fixture {
	t.Helper()

	return newFixtureWith(t, root, config.DefaultConfig())
}

func newFixtureWith(t *testing.T, root string, cfg *config.Config) fixture {
	t.Helper()

	ctx := context.Background()
	sink := logger.NewSink()
	log := logger.NewLoggerWithOutput(cfg, io.Discard, sink)

	engine := navigation.NewEngine(cfg, fs.NewLister(), log)
	require.NoError(t, engine.Initialize(ctx, root))

	registry, err := actions.NewRegistry(cfg)
	require.NoError(t, err)

	m, err := NewModel(ctx, Params{
		Config:     cfg,
		Engine:     engine,
		Dispatcher: dispatch.NewDispatcher(registry, engine, log),
		Registry:   registry,
		Monitor:    fakeMonitor{},
		Sink:       sink,
		Logger:     log,
	})
	require.NoError(t, err)

	return fixture{root: root, engine: engine, sink: sink, model: m}
}

func update(t *testing.T, m Model, msgs ...tea.Msg) Model {
	t.Helper()

	for _, msg := range msgs {
		updated, _ := m.Update(msg)
		m = updated.(Model)
	}

	return m
}

func key(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func size(w, h int) tea.WindowSizeMsg {
	return tea.WindowSizeMsg{Width: w, Height: h}
}

func selectEntry(t *testing.T, f fixture, m Model, name string) Model {
	t.Helper()

	for i := 0; i < 10; i++ {
		snap, _ := f.engine.Snapshot()
		if snap.Selected.Name == name {
			return m
		}

		m = update(t, m, key("j"))
	}

	t.Fatalf("entry %s not found", name)

	return m
}

func Test_NewModel_InvalidHighlight(t *testing.T) {
	cfg := config.DefaultConfig()
	cfg.Highlight = []config.HighlightRule{{Pattern: "[oops", Color: "red"}}

	registry, err := actions.NewRegistry(cfg)
	require.NoError(t, err)

	_, err = NewModel(context.Background(), Params{
		Config:   cfg,
		Registry: registry,
		Logger:   logger.NewLoggerWithOutput(cfg, io.Discard, nil),
	})
	assert.Error(t, err)
}

func Test_View_BeforeResize(t *testing.T) {
	f := newFixture(t)

	assert.Equal(t, "Initializing…", f.model.View())
}

func Test_View_TooSmall(t *testing.T) {
	f := newFixture(t)

	m := update(t, f.model, size(config.MinTerminalWidth-1, config.MinTerminalHeight))

	assert.Contains(t, m.View(), "Terminal too small")
}

func Test_View_ListsEntries(t *testing.T) {
	f := newFixture(t)

	m := update(t, f.model, size(100, 30))
	view := m.View()

	assert.Contains(t, view, "alpha/")
	assert.Contains(t, view, "beta/")
	assert.Contains(t, view, "zeta.txt")
	assert.Contains(t, view, "3 items")
	assert.Contains(t, view, "Modified: ")
	assert.Contains(t, view, "[?] Help")
	assert.Contains(t, view, filepath.Base(f.root))
}

func Test_Update_DescendAndAscend(t *testing.T) {
	f := newFixture(t)

	m := update(t, f.model, size(100, 30))
	m = selectEntry(t, f, m, "alpha")
	m = update(t, m, key("l"))

	assert.Contains(t, m.View(), "inner.txt")

	snap, _ := f.engine.Snapshot()
	assert.Equal(t, filepath.Join(f.root, "alpha"), snap.Path)

	m = update(t, m, tea.KeyMsg{Type: tea.KeyLeft})

	snap, _ = f.engine.Snapshot()
	assert.Equal(t, f.root, snap.Path)
	assert.Equal(t, "alpha", snap.Selected.Name)
	assert.Contains(t, m.View(), "zeta.txt")
}

func Test_Update_EmptyDirectory(t *testing.T) {
	f := newFixture(t)

	m := update(t, f.model, size(100, 30))
	m = selectEntry(t, f, m, "beta")
	m = update(t, m, tea.KeyMsg{Type: tea.KeyRight})

	view := m.View()
	assert.Contains(t, view, "(empty)")
	assert.Contains(t, view, "0 items")
	assert.NotContains(t, view, "Modified:")

	m = update(t, m, key("j"), key("k"), tea.KeyMsg{Type: tea.KeyEnter})
	assert.Contains(t, m.View(), "(empty)")
}

func Test_Update_Quit(t *testing.T) {
	tests := []struct {
		name string
		msg  tea.KeyMsg
	}{
		{name: "q", msg: key("q")},
		{name: "ctrl+c", msg: tea.KeyMsg{Type: tea.KeyCtrlC}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t)

			_, cmd := f.model.Update(tt.msg)
			require.NotNil(t, cmd)
			assert.IsType(t, tea.QuitMsg{}, cmd())
		})
	}
}

func Test_Update_UnboundKey(t *testing.T) {
	f := newFixture(t)

	before, _ := f.engine.Snapshot()
	_, cmd := f.model.Update(key("x"))
	after, _ := f.engine.Snapshot()

	assert.Nil(t, cmd)
	assert.Equal(t, before, after)
}

func Test_Update_ToggleHelp(t *testing.T) {
	f := newFixture(t)

	m := update(t, f.model, size(100, 40), key("?"))
	view := m.View()

	assert.Contains(t, view, "Commands")
	assert.Contains(t, view, "Reload Directory")
	assert.Contains(t, view, "Cursor Go To Parent")

	m = update(t, m, key("?"))
	assert.NotContains(t, m.View(), "Reload Directory")
}

func Test_Update_ToggleLog(t *testing.T) {
	f := newFixture(t)

	m := update(t, f.model, size(120, 40), key("D"))

	assert.Contains(t, m.View(), `msg="Navigator initialized"`)

	m = update(t, m, key("D"))
	assert.NotContains(t, m.View(), `msg="Navigator initialized"`)
}

func Test_Update_Select(t *testing.T) {
	f := newFixture(t)

	m := update(t, f.model, size(100, 30))
	m = selectEntry(t, f, m, "zeta.txt")
	m = update(t, m, tea.KeyMsg{Type: tea.KeyEnter})

	assert.Contains(t, m.View(), "Selected: zeta.txt")
}

func Test_Update_ListingFailure(t *testing.T) {
	if os.Geteuid() == 0 {
		t.Skip("permission checks do not apply to root")
	}

	f := newFixture(t)
	locked := filepath.Join(f.root, "alpha")
	require.NoError(t, os.Chmod(locked, 0o000))
	t.Cleanup(func() { _ = os.Chmod(locked, 0o755) })

	m := update(t, f.model, size(100, 30))
	m = selectEntry(t, f, m, "alpha")

	before, _ := f.engine.Snapshot()
	m = update(t, m, key("l"))
	after, _ := f.engine.Snapshot()

	assert.Equal(t, before, after)
	assert.Contains(t, m.View(), "cannot list directory")
}

func Test_Update_Refresh(t *testing.T) {
	f := newFixture(t)

	m := update(t, f.model, size(100, 30))
	require.NoError(t, os.WriteFile(filepath.Join(f.root, "added.txt"), []byte("x"), 0o644))

	m = update(t, m, key("r"))

	view := m.View()
	assert.Contains(t, view, "added.txt")
	assert.Contains(t, view, "Reloaded")
	assert.Contains(t, view, "4 items")
}

func Test_Update_DirectoryChange(t *testing.T) {
	f := newFixture(t)

	m := update(t, f.model, size(100, 30))
	require.NoError(t, os.WriteFile(filepath.Join(f.root, "watched.txt"), []byte("x"), 0o644))

	m = update(t, m, changeMsg{Dir: filepath.Join(f.root, "elsewhere"), Names: []string{"watched.txt"}})
	assert.NotContains(t, m.View(), "watched.txt")

	m = update(t, m, changeMsg{Dir: f.root, Names: []string{"watched.txt"}})
	assert.Contains(t, m.View(), "watched.txt")
}

func Test_Update_Stats(t *testing.T) {
	f := newFixture(t)

	m := update(t, f.model, size(100, 30), statsMsg(monitor.Stats{CPU: 1.5, MEM: 12.3}))

	assert.Contains(t, m.View(), "CPU 1.5% · MEM 12.3MB")
}

func Test_Update_Tick(t *testing.T) {
	f := newFixture(t)

	m := update(t, f.model, size(100, 30))
	_, cmd := m.Update(tickMsg(time.Now()))

	assert.NotNil(t, cmd)
}

func Test_Update_ScrollsToCursor(t *testing.T) {
	root, err := fs.Canonical(t.TempDir())
	require.NoError(t, err)

	for i := 0; i < 40; i++ {
		require.NoError(t, os.WriteFile(filepath.Join(root, fmt.Sprintf("file%02d.txt", i)), nil, 0o644))
	}

	f := newFixtureAt(t, root)
	m := update(t, f.model, size(100, 30))

	snap, _ := f.engine.Snapshot()
	first := snap.Entries[0].Name
	last := snap.Entries[len(snap.Entries)-1].Name

	assert.Contains(t, m.View(), first)
	assert.NotContains(t, m.View(), last)

	m = update(t, m, key("k"))

	assert.Contains(t, m.View(), last)
	assert.NotContains(t, m.View(), first)
}

func Test_FormatRecord(t *testing.T) {
	line := formatRecord(logger.Record{
		Time:      time.Date(2024, 1, 2, 3, 4, 5, 0, time.UTC),
		Level:     "warn",
		Component: "ENGINE",
		Message:   "Failed to list directory",
		Fields:    []logger.Field{{Key: "path", Value: "/a b"}},
	})

	assert.Contains(t, line, "03:04:05")
	assert.Contains(t, line, "WAR")
	assert.Contains(t, line, `component=ENGINE msg="Failed to list directory" path="/a b"`)
}

func Test_View_HelpHintFollowsKeyOverride(t *testing.T) {
	root, err := fs.Canonical(t.TempDir())
	require.NoError(t, err)
	require.NoError(t, os.WriteFile(filepath.Join(root, "notes.txt"), []byte("x"), 0o644))

	cfg := config.DefaultConfig()
	cfg.Keys["toggle_help"] = []string{"H"}

	f := newFixtureWith(t, root, cfg)
	view := update(t, f.model, size(100, 30)).View()

	assert.Contains(t, view, "[H] Help")
	assert.NotContains(t, view, "[?] Help")
}
