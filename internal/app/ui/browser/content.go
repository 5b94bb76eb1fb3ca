package browser

import (
	"strings"

	"github.com/go-logfmt/logfmt"

	"fnav/internal/app/navigation"
	"fnav/internal/app/ui/components"
	"fnav/internal/config/logger"
)

// updateContent rebuilds the entry list and keeps the cursor visible
func (m *Model) updateContent() {
	snap, ok := m.engine.Snapshot()
	if !ok {
		m.ui.list.SetContent("")
		return
	}

	m.ui.list.Width = m.ui.width
	m.ui.list.Height = m.listHeight(snap.ShowLog)
	m.ui.list.SetContent(m.renderEntries(snap))

	if snap.HasCursor {
		m.scrollTo(snap.Cursor)
	}

	if snap.ShowLog {
		m.updateLogs()
	}
}

// scrollTo moves the list viewport so that row is visible
func (m *Model) scrollTo(row int) {
	top := m.ui.list.YOffset
	bottom := top + m.ui.list.Height - 1

	switch {
	case row < top:
		m.ui.list.SetYOffset(row)
	case row > bottom:
		m.ui.list.SetYOffset(row - m.ui.list.Height + 1)
	}
}

// renderEntries renders one row per entry
func (m Model) renderEntries(snap navigation.Snapshot) string {
	rows := make([]string, len(snap.Entries))
	labelWidth := m.ui.width - len(components.IndicatorNone)

	for i, entry := range snap.Entries {
		style := m.highlighter.Style(entry)
		label := components.Truncate(components.Label(entry), labelWidth)

		if snap.HasCursor && i == snap.Cursor {
			row := components.PadRight(components.IndicatorSelected+label, m.ui.width)
			rows[i] = style.Inherit(components.SelectedRowStyle).Render(row)

			continue
		}

		rows[i] = components.IndicatorNone + style.Render(label)
	}

	return strings.Join(rows, "\n")
}

// updateLogs renders the most recent sink records into the log panel
func (m *Model) updateLogs() {
	if m.sink == nil {
		return
	}

	records := m.sink.Records()
	lines := make([]string, len(records))

	for i, r := range records {
		lines[i] = components.Truncate(formatRecord(r), m.ui.width)
	}

	m.ui.logs.Width = m.ui.width
	m.ui.logs.SetContent(strings.Join(lines, "\n"))
	m.ui.logs.GotoBottom()
	m.state.logSerial = m.sink.Serial()
}

// formatRecord renders a record as "15:04:05 LEVEL key=value ..."
func formatRecord(r logger.Record) string {
	keyvals := make([]interface{}, 0, 4+2*len(r.Fields))

	if r.Component != "" {
		keyvals = append(keyvals, "component", r.Component)
	}

	keyvals = append(keyvals, "msg", r.Message)

	for _, f := range r.Fields {
		keyvals = append(keyvals, f.Key, f.Value)
	}

	line, err := logfmt.MarshalKeyvals(keyvals...)
	if err != nil {
		line = []byte(r.Message)
	}

	return r.Time.Format("15:04:05") + " " + levelStyle(r.Level) + " " + string(line)
}

func levelStyle(level string) string {
	label := strings.ToUpper(level)
	if len(label) > 3 {
		label = label[:3]
	}

	switch level {
	case "error", "fatal", "panic":
		return components.LogLevelErrorStyle.Render(label)
	case "warn":
		return components.LogLevelWarnStyle.Render(label)
	case "info":
		return components.LogLevelInfoStyle.Render(label)
	default:
		return components.LogLevelDebugStyle.Render(label)
	}
}
