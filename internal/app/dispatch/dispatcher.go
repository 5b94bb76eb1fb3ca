package dispatch

import (
	"context"
	"fmt"

	"fnav/internal/app/actions"
	"fnav/internal/app/errors"
	"fnav/internal/app/navigation"
	"fnav/internal/config/logger"
)

// Dispatcher resolves input events to commands and runs them against the engine
type Dispatcher struct {
	registry *actions.Registry
	engine   navigation.Engine
	log      logger.Logger
}

// NewDispatcher creates a new dispatcher
func NewDispatcher(registry *actions.Registry, engine navigation.Engine, log logger.Logger) *Dispatcher {
	return &Dispatcher{
		registry: registry,
		engine:   engine,
		log:      log.WithComponent("DISPATCH"),
	}
}

// Dispatch processes one event to completion. Engine failures become a status message, never an exit.
func (d *Dispatcher) Dispatch(ctx context.Context, ev Event) Result {
	if ev.Type == EventTick {
		return Result{Outcome: Continue}
	}

	cmd, ok := d.registry.Resolve(ev.Key)
	if !ok {
		return Result{Outcome: Continue}
	}

	return d.Run(ctx, cmd)
}

// Run executes cmd against the engine
func (d *Dispatcher) Run(ctx context.Context, cmd actions.Command) Result {
	res := Result{Outcome: Continue, Command: cmd, Handled: true}

	switch cmd {
	case actions.Quit:
		d.log.Info().Msg("Quit requested")
		res.Outcome = Exit
	case actions.Next:
		d.engine.Next()
	case actions.Previous:
		d.engine.Previous()
	case actions.Select:
		res.Status = d.selected()
	case actions.Back:
		res.Err = d.engine.Ascend(ctx)
	case actions.Forward:
		res.Err = d.engine.Descend(ctx)
	case actions.ToggleLog:
		d.engine.ToggleLog()
	case actions.ToggleHelp:
		d.engine.ToggleHelp()
	case actions.Refresh:
		res.Err = d.engine.Refresh(ctx)
		if res.Err == nil {
			res.Status = "Reloaded"
		}
	default:
		res.Err = fmt.Errorf("%w: %d", errors.ErrUnknownCommand, cmd)
	}

	if res.Err != nil {
		d.log.Error().Err(res.Err).Str("command", cmd.String()).Msg("Command failed")
		res.Status = res.Err.Error()
	}

	return res
}

func (d *Dispatcher) selected() string {
	snap, ok := d.engine.Snapshot()
	if !ok || !snap.HasSelection {
		return ""
	}

	d.log.Info().Str("name", snap.Selected.Name).Str("path", snap.Selected.Path).Msg("Selected")

	return fmt.Sprintf("Selected: %s", snap.Selected.Name)
}
