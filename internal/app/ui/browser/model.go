package browser

import (
	"context"
	"math/rand/v2"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"

	"fnav/internal/app/actions"
	"fnav/internal/app/dispatch"
	"fnav/internal/app/monitor"
	"fnav/internal/app/navigation"
	"fnav/internal/app/ui/components"
	"fnav/internal/app/watcher"
	"fnav/internal/config"
	"fnav/internal/config/logger"
)

// Params contains the collaborators of the browser model
type Params struct {
	Config     *config.Config
	Engine     navigation.Engine
	Dispatcher *dispatch.Dispatcher
	Registry   *actions.Registry
	Watcher    watcher.Watcher
	Monitor    monitor.Monitor
	Sink       *logger.Sink
	Logger     logger.Logger
}

// Model represents the Bubble Tea model of the directory browser
type Model struct {
	ctx         context.Context
	engine      navigation.Engine
	dispatcher  *dispatch.Dispatcher
	watcher     watcher.Watcher
	monitor     monitor.Monitor
	sink        *logger.Sink
	highlighter *components.Highlighter
	keys        actions.KeyMap

	state struct {
		status     string
		statusErr  bool
		stats      monitor.Stats
		watchedDir string
		logSerial  uint64
	}

	ui struct {
		width     int
		height    int
		tick      time.Duration
		fps       int
		tickCount int
		tipOffset int
		helpHint  string
		help      help.Model
		list      viewport.Model
		logs      viewport.Model
		blink     *components.Blink
	}

	log logger.Logger
}

// NewModel creates a browser model over an initialized engine. A nil watcher disables auto refresh.
func NewModel(ctx context.Context, p Params) (Model, error) {
	highlighter, err := components.NewHighlighter(p.Config.Highlight)
	if err != nil {
		return Model{}, err
	}

	m := Model{
		ctx:         ctx,
		engine:      p.Engine,
		dispatcher:  p.Dispatcher,
		watcher:     p.Watcher,
		monitor:     p.Monitor,
		sink:        p.Sink,
		highlighter: highlighter,
		keys:        p.Registry.KeyMap(),
		log:         p.Logger.WithComponent("UI"),
	}

	m.ui.tick = p.Config.UI.TickInterval
	m.ui.fps = components.TicksPerSecond(m.ui.tick)
	m.ui.tipOffset = rand.IntN(len(components.Tips)) //nolint:gosec // not security-critical
	m.ui.helpHint = components.HelpHint(p.Registry.KeysFor(actions.ToggleHelp))
	m.ui.help = help.New()
	m.ui.list = viewport.New(0, 0)
	m.ui.logs = viewport.New(0, config.LogPanelHeight)
	m.ui.blink = components.NewBlink(m.ui.fps)

	m.syncWatch()

	m.log.Debug().Msg("Created browser model")

	return m, nil
}

// Init starts the tick, the stats sampler and the change listener
func (m Model) Init() tea.Cmd {
	cmds := []tea.Cmd{
		tickCmd(m.ui.tick),
		statsCmd(m.ctx, m.monitor),
	}

	if m.watcher != nil {
		cmds = append(cmds, waitForChangeCmd(m.watcher.Changes()))
	}

	return tea.Batch(cmds...)
}

// syncWatch points the watcher at the displayed directory
func (m *Model) syncWatch() {
	if m.watcher == nil {
		return
	}

	snap, ok := m.engine.Snapshot()
	if !ok || snap.Path == m.state.watchedDir {
		return
	}

	if err := m.watcher.Watch(snap.Path); err != nil {
		m.log.Warn().Err(err).Msg("Auto refresh unavailable")
		m.state.watchedDir = ""

		return
	}

	m.state.watchedDir = snap.Path
}

// setStatus shows a transient message in the status line
func (m *Model) setStatus(res dispatch.Result) {
	if res.Status == "" {
		return
	}

	m.state.status = res.Status
	m.state.statusErr = res.Err != nil
}

// listHeight returns the rows available to the entry list
func (m Model) listHeight(showLog bool) int {
	h := m.ui.height - components.HeaderHeight - components.DetailsHeight - components.StatusHeight - components.FooterHeight
	if showLog {
		h -= config.LogPanelHeight + 1
	}

	if h < components.MinListHeight {
		h = components.MinListHeight
	}

	return h
}

// tooSmall reports whether the terminal is below the minimum size
func (m Model) tooSmall() bool {
	return m.ui.width < config.MinTerminalWidth || m.ui.height < config.MinTerminalHeight
}
