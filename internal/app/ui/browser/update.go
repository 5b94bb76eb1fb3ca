package browser

import (
	tea "github.com/charmbracelet/bubbletea"

	"fnav/internal/app/actions"
	"fnav/internal/app/dispatch"
	"fnav/internal/app/monitor"
)

// Update handles messages and updates the model
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKeyPress(msg)

	case tea.WindowSizeMsg:
		m.ui.width = msg.Width
		m.ui.height = msg.Height
		m.ui.help.Width = msg.Width
		m.updateContent()

		return m, nil

	case tickMsg:
		return m.handleTick()

	case statsMsg:
		m.state.stats = monitor.Stats(msg)
		return m, nil

	case changeMsg:
		return m.handleChange(msg)

	case changesClosedMsg:
		m.log.Debug().Msg("Change channel closed")
		m.watcher = nil

		return m, nil
	}

	return m, nil
}

// handleKeyPress resolves the key through the dispatcher
func (m Model) handleKeyPress(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	res := m.dispatcher.Dispatch(m.ctx, dispatch.Key(msg.String()))
	if !res.Handled {
		return m, nil
	}

	if res.Outcome == dispatch.Exit {
		return m, tea.Quit
	}

	m.setStatus(res)

	if res.Command == actions.Refresh && res.Err == nil {
		m.ui.blink.Pulse()
	}

	m.syncWatch()
	m.updateContent()

	return m, nil
}

// handleTick advances animations and periodically samples self stats
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	m.dispatcher.Dispatch(m.ctx, dispatch.Tick())

	m.ui.tickCount++
	m.ui.blink.Update()

	if m.sink != nil && m.sink.Serial() != m.state.logSerial {
		m.updateLogs()
	}

	cmds := []tea.Cmd{tickCmd(m.ui.tick)}
	if m.ui.tickCount%m.ui.fps == 0 {
		cmds = append(cmds, statsCmd(m.ctx, m.monitor))
	}

	return m, tea.Batch(cmds...)
}

// handleChange reloads the listing when the displayed directory changed on disk
func (m Model) handleChange(msg changeMsg) (tea.Model, tea.Cmd) {
	var next tea.Cmd
	if m.watcher != nil {
		next = waitForChangeCmd(m.watcher.Changes())
	}

	snap, ok := m.engine.Snapshot()
	if !ok || snap.Path != msg.Dir {
		return m, next
	}

	m.log.Debug().Strs("names", msg.Names).Msgf("Directory changed: %s", msg.Dir)

	res := m.dispatcher.Run(m.ctx, actions.Refresh)
	if res.Err != nil {
		m.setStatus(res)
	} else {
		m.ui.blink.Pulse()
	}

	m.syncWatch()
	m.updateContent()

	return m, next
}
