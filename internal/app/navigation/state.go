package navigation

import (
	"context"

	"github.com/looplab/fsm"

	"fnav/internal/app/fs"
	"fnav/internal/app/selection"
	"fnav/internal/config/logger"
)

// FSM states
const (
	Uninitialized = "uninitialized"
	Active        = "active"
)

// FSM events
const (
	Initialize = "initialize"
)

// FSM callbacks
const (
	OnActive = "enter_active"
)

// active holds the navigation data that exists only once a directory was listed
type active struct {
	list     *selection.List[fs.Entry]
	path     string
	history  map[string]int
	showLog  bool
	showHelp bool
}

// newEngineFSM creates the lifecycle state machine; entering active installs the prepared state
func newEngineFSM(e *engine, log logger.Logger) *fsm.FSM {
	return fsm.NewFSM(
		Uninitialized,
		fsm.Events{
			{Name: Initialize, Src: []string{Uninitialized}, Dst: Active},
		},
		fsm.Callbacks{
			"after_event": func(ctx context.Context, ev *fsm.Event) {
				log.Debug().Msgf("STATE %s → %s (trigger: %s)", ev.Src, ev.Dst, ev.Event)
			},
			OnActive: func(ctx context.Context, ev *fsm.Event) {
				if len(ev.Args) == 0 {
					return
				}

				if st, ok := ev.Args[0].(*active); ok {
					e.state = st
				}
			},
		},
	)
}
