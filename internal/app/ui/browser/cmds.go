package browser

import (
	"context"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"fnav/internal/app/monitor"
	"fnav/internal/app/watcher"
)

// tickMsg signals a UI tick
type tickMsg time.Time

// statsMsg carries a self stats sample
type statsMsg monitor.Stats

// changeMsg carries a debounced directory change
type changeMsg watcher.Change

// changesClosedMsg signals the watcher channel has closed
type changesClosedMsg struct{}

func tickCmd(interval time.Duration) tea.Cmd {
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

func statsCmd(ctx context.Context, mon monitor.Monitor) tea.Cmd {
	if mon == nil {
		return nil
	}

	return func() tea.Msg {
		stats, err := mon.Sample(ctx)
		if err != nil {
			return nil
		}

		return statsMsg(stats)
	}
}

func waitForChangeCmd(ch <-chan watcher.Change) tea.Cmd {
	return func() tea.Msg {
		change, ok := <-ch
		if !ok {
			return changesClosedMsg{}
		}

		return changeMsg(change)
	}
}
