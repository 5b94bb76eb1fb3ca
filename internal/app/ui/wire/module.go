package wire

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/fx"

	"fnav/internal/app/actions"
	"fnav/internal/app/dispatch"
	"fnav/internal/app/monitor"
	"fnav/internal/app/navigation"
	"fnav/internal/app/ui/browser"
	"fnav/internal/app/watcher"
	"fnav/internal/config"
	"fnav/internal/config/logger"
)

// UI creates a Bubble Tea program for the TUI
type UI func(ctx context.Context) (*tea.Program, error)

// Module aggregates all UI modules and provides the UI factory
var Module = fx.Options(
	fx.Provide(NewUI),
)

// UIParams contains dependencies for creating the UI factory
type UIParams struct {
	fx.In

	Config     *config.Config
	Engine     navigation.Engine
	Dispatcher *dispatch.Dispatcher
	Registry   *actions.Registry
	Watcher    watcher.Watcher
	Monitor    monitor.Monitor
	Sink       *logger.Sink
	Logger     logger.Logger
}

// NewUI creates a factory function for constructing Bubble Tea programs
func NewUI(params UIParams) UI {
	return func(ctx context.Context) (*tea.Program, error) {
		w := params.Watcher
		if !params.Config.Watch.Enabled {
			w = nil
		}

		model, err := browser.NewModel(ctx, browser.Params{
			Config:     params.Config,
			Engine:     params.Engine,
			Dispatcher: params.Dispatcher,
			Registry:   params.Registry,
			Watcher:    w,
			Monitor:    params.Monitor,
			Sink:       params.Sink,
			Logger:     params.Logger,
		})
		if err != nil {
			return nil, err
		}

		opts := []tea.ProgramOption{tea.WithContext(ctx)}
		if params.Config.UI.AltScreen {
			opts = append(opts, tea.WithAltScreen())
		}

		p := tea.NewProgram(model, opts...)

		params.Logger.Debug().Msg("TUI: Program created via factory")

		return p, nil
	}
}
