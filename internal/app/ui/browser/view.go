package browser

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"

	"fnav/internal/app/monitor"
	"fnav/internal/app/navigation"
	"fnav/internal/app/ui/components"
	"fnav/internal/config"
)

// View renders the UI
func (m Model) View() string {
	if m.ui.width == 0 {
		return "Initializing…"
	}

	if m.tooSmall() {
		return components.RenderTooSmall(m.ui.width, m.ui.height)
	}

	snap, ok := m.engine.Snapshot()
	if !ok {
		return "Initializing…"
	}

	sections := []string{
		components.RenderHeader(m.ui.width, snap.Path, m.renderInfo(snap)),
		m.renderBody(snap),
		m.renderDetails(snap),
		m.renderStatus(),
	}

	if snap.ShowLog {
		sections = append(sections, m.renderLogs())
	}

	sections = append(sections, components.RenderFooter(m.ui.width, m.ui.help.View(m.keys)))

	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

// renderInfo renders the activity indicator and entry count
func (m Model) renderInfo(snap navigation.Snapshot) string {
	return fmt.Sprintf("%s %d items", m.ui.blink.Render(components.IndicatorStyle), len(snap.Entries))
}

// renderBody renders the help overlay, the empty state or the entry list
func (m Model) renderBody(snap navigation.Snapshot) string {
	height := m.listHeight(snap.ShowLog)

	if snap.ShowHelp {
		return lipgloss.Place(m.ui.width, height, lipgloss.Center, lipgloss.Center, m.renderHelpOverlay())
	}

	if snap.Empty() {
		empty := components.EmptyStateStyle.Render(components.EmptyDirectory)
		return lipgloss.Place(m.ui.width, height, lipgloss.Left, lipgloss.Top, components.IndicatorNone+empty)
	}

	return lipgloss.NewStyle().Height(height).MaxHeight(height).Render(m.ui.list.View())
}

// renderDetails renders the modification time of the selected entry and the help hint
func (m Model) renderDetails(snap navigation.Snapshot) string {
	left := ""
	if modified, ok := snap.Modified(); ok {
		left = "Modified: " + modified.Format(components.ModifiedLayout)
	}

	return components.RenderDetails(m.ui.width, left, m.ui.helpHint)
}

// renderStatus renders the transient status message and self stats
func (m Model) renderStatus() string {
	stats := ""
	if m.state.stats != (monitor.Stats{}) {
		stats = components.StatusStyle.Render(m.state.stats.String())
	}

	statsWidth := lipgloss.Width(stats)
	text := components.Truncate(m.state.status, m.ui.width-statsWidth-1)

	style := components.StatusStyle
	if m.state.statusErr {
		style = components.StatusErrorStyle
	}

	status := style.Render(text)

	gap := m.ui.width - lipgloss.Width(status) - statsWidth
	if gap < 1 {
		gap = 1
	}

	return status + strings.Repeat(" ", gap) + stats
}

// renderLogs renders the log panel with its title line
func (m Model) renderLogs() string {
	title := components.RenderLine(components.SeparatorWidth) + " log " +
		components.RenderLine(m.ui.width-components.SeparatorWidth-5)

	body := lipgloss.NewStyle().Height(config.LogPanelHeight).MaxHeight(config.LogPanelHeight).Render(m.ui.logs.View())

	return lipgloss.JoinVertical(lipgloss.Left, title, body)
}

// renderHelpOverlay lists every registered command and its keys
func (m Model) renderHelpOverlay() string {
	bindings := m.keys.FullHelp()[0]

	keyWidth := 0
	for _, b := range bindings {
		if w := lipgloss.Width(b.Help().Key); w > keyWidth {
			keyWidth = w
		}
	}

	lines := make([]string, 0, len(bindings)+3)
	lines = append(lines, components.HeaderStyle.Render("Commands"), "")

	for _, b := range bindings {
		lines = append(lines, components.HelpKeyStyle.Render(components.PadRight(b.Help().Key, keyWidth))+"  "+
			components.HelpDescStyle.Render(b.Help().Desc))
	}

	tip := components.TipAt(m.ui.tipOffset, m.ui.tick*time.Duration(m.ui.tickCount))
	lines = append(lines, "", tip)

	return components.HelpPanelStyle.Render(strings.Join(lines, "\n"))
}
