package navigation

//go:generate mockgen -source=engine.go -destination=engine_mock.go -package=navigation

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/looplab/fsm"

	"fnav/internal/app/errors"
	"fnav/internal/app/fs"
	"fnav/internal/app/selection"
	"fnav/internal/config"
	"fnav/internal/config/logger"
)

// Engine defines the navigation state engine.
// Failed reads return an error and leave the state exactly as it was.
type Engine interface {
	Initialize(ctx context.Context, root string) error
	Descend(ctx context.Context) error
	Ascend(ctx context.Context) error
	Refresh(ctx context.Context) error
	Next()
	Previous()
	Select(i int)
	ToggleLog()
	ToggleHelp()
	State() string
	Snapshot() (Snapshot, bool)
	History() map[string]int
}

type engine struct {
	lister       fs.Lister
	alphabetical bool
	showLog      bool
	showHelp     bool
	fsm          *fsm.FSM
	state        *active
	log          logger.Logger
}

// NewEngine creates an uninitialized engine
func NewEngine(cfg *config.Config, lister fs.Lister, log logger.Logger) Engine {
	e := &engine{
		lister:       lister,
		alphabetical: cfg.Sort.Alphabetical,
		showLog:      cfg.UI.ShowLog,
		showHelp:     cfg.UI.ShowHelp,
		log:          log.WithComponent("ENGINE"),
	}
	e.fsm = newEngineFSM(e, e.log)

	return e
}

// Initialize lists root and activates the engine
func (e *engine) Initialize(ctx context.Context, root string) error {
	if !e.fsm.Can(Initialize) {
		return errors.ErrAlreadyInitialized
	}

	path, err := fs.Canonical(root)
	if err != nil {
		e.log.Error().Err(err).Str("path", root).Msg("Failed to resolve root")
		return err
	}

	entries, err := e.read(ctx, path)
	if err != nil {
		return err
	}

	st := &active{
		list:     selection.New(entries),
		path:     path,
		history:  map[string]int{path: 0},
		showLog:  e.showLog,
		showHelp: e.showHelp,
	}

	if err := e.fsm.Event(ctx, Initialize, st); err != nil {
		return fmt.Errorf("initialize: %w", err)
	}

	e.log.Info().Str("path", path).Int("entries", len(entries)).Msg("Navigator initialized")

	return nil
}

// Descend enters the selected directory, restoring the cursor from visit history
func (e *engine) Descend(ctx context.Context) error {
	st, err := e.active()
	if err != nil {
		return err
	}

	entry, ok := st.list.Current()
	if !ok || !entry.IsDir {
		return nil
	}

	target := filepath.Clean(entry.Path)

	entries, err := e.read(ctx, target)
	if err != nil {
		return err
	}

	e.remember(st)

	st.list.Replace(entries)

	if idx, ok := st.history[target]; ok {
		st.list.Select(idx)
	}

	st.path = target

	e.log.Debug().Str("path", target).Int("entries", len(entries)).Msg("Descended")

	return nil
}

// Ascend moves to the parent directory and selects the directory just left
func (e *engine) Ascend(ctx context.Context) error {
	st, err := e.active()
	if err != nil {
		return err
	}

	parent, ok := fs.Parent(st.path)
	if !ok {
		return nil
	}

	entries, err := e.read(ctx, parent)
	if err != nil {
		return err
	}

	e.remember(st)

	left := fs.BaseName(st.path)

	st.path = parent
	st.list.Replace(entries)
	st.list.Select(indexOf(entries, left))

	e.log.Debug().Str("path", parent).Str("left", left).Msg("Ascended")

	return nil
}

// Refresh re-lists the current directory, keeping the selected entry when it still exists
func (e *engine) Refresh(ctx context.Context) error {
	st, err := e.active()
	if err != nil {
		return err
	}

	entries, err := e.read(ctx, st.path)
	if err != nil {
		return err
	}

	selected, hadSelection := st.list.Current()
	cursor, _ := st.list.Cursor()

	st.list.Replace(entries)

	if hadSelection {
		if idx, found := find(entries, selected.Name); found {
			st.list.Select(idx)
		} else {
			st.list.Select(cursor)
		}
	}

	e.log.Debug().Str("path", st.path).Int("entries", len(entries)).Msg("Refreshed")

	return nil
}

// Next moves the cursor down
func (e *engine) Next() {
	if e.state != nil {
		e.state.list.Next()
	}
}

// Previous moves the cursor up
func (e *engine) Previous() {
	if e.state != nil {
		e.state.list.Previous()
	}
}

// Select moves the cursor to index i
func (e *engine) Select(i int) {
	if e.state != nil {
		e.state.list.Select(i)
	}
}

// ToggleLog flips the log panel flag
func (e *engine) ToggleLog() {
	if e.state != nil {
		e.state.showLog = !e.state.showLog
	}
}

// ToggleHelp flips the help overlay flag
func (e *engine) ToggleHelp() {
	if e.state != nil {
		e.state.showHelp = !e.state.showHelp
	}
}

// State returns the lifecycle state name
func (e *engine) State() string {
	return e.fsm.Current()
}

// Snapshot returns a copy of the active state
func (e *engine) Snapshot() (Snapshot, bool) {
	st := e.state
	if st == nil {
		return Snapshot{}, false
	}

	snap := Snapshot{
		Path:     st.path,
		Entries:  st.list.Items(),
		ShowLog:  st.showLog,
		ShowHelp: st.showHelp,
	}

	snap.Cursor, snap.HasCursor = st.list.Cursor()
	snap.Selected, snap.HasSelection = st.list.Current()

	return snap, true
}

// History returns a copy of the visit history
func (e *engine) History() map[string]int {
	if e.state == nil {
		return nil
	}

	out := make(map[string]int, len(e.state.history))
	for k, v := range e.state.history {
		out[k] = v
	}

	return out
}

func (e *engine) active() (*active, error) {
	if e.state == nil {
		return nil, errors.ErrNotInitialized
	}

	return e.state, nil
}

// read lists and sorts dir
func (e *engine) read(ctx context.Context, dir string) ([]fs.Entry, error) {
	entries, err := e.lister.List(ctx, dir)
	if err != nil {
		e.log.Error().Err(err).Str("path", dir).Msg("Failed to list directory")
		return nil, err
	}

	return fs.Sort(entries, e.alphabetical), nil
}

// remember records the cursor of the directory being left. Descended paths are
// joined lexically from the parent, so a directory reached through a symlink and
// through its target keeps two separate entries.
func (e *engine) remember(st *active) {
	if cursor, ok := st.list.Cursor(); ok {
		st.history[st.path] = cursor
	}
}

// find returns the index of the entry named name
func find(entries []fs.Entry, name string) (int, bool) {
	for i, entry := range entries {
		if entry.Name == name {
			return i, true
		}
	}

	return 0, false
}

// indexOf returns the index of the entry named name, or 0
func indexOf(entries []fs.Entry, name string) int {
	idx, _ := find(entries, name)
	return idx
}
