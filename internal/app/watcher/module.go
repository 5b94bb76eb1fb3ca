package watcher

import (
	"context"

	"go.uber.org/fx"
)

// Module provides the watcher and its dependencies
var Module = fx.Options(
	fx.Provide(NewWatcher),
	fx.Invoke(registerClose),
)

func registerClose(lifecycle fx.Lifecycle, w Watcher) {
	lifecycle.Append(fx.Hook{
		OnStop: func(context.Context) error {
			w.Close()
			return nil
		},
	})
}
