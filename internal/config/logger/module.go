package logger

import (
	"context"
	"io"

	"go.uber.org/fx"
)

// Module provides the fx dependency injection options for the logger package
var Module = fx.Options(
	fx.Provide(NewSink),
	fx.Provide(NewLogger),
	fx.Invoke(registerClose),
)

// registerClose closes the log file when the application stops
func registerClose(lifecycle fx.Lifecycle, log Logger) {
	lifecycle.Append(fx.Hook{
		OnStop: func(ctx context.Context) error {
			if closer, ok := log.(io.Closer); ok {
				return closer.Close()
			}

			return nil
		},
	})
}
