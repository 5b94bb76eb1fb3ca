package app

import (
	"context"
	"fmt"
	"time"

	"github.com/getsentry/sentry-go"
	"go.uber.org/fx"

	"fnav/internal/app/cli"
	"fnav/internal/config/logger"
)

// PanicExitCode is returned when the navigator goroutine panics
const PanicExitCode = 2

// flushTimeout bounds how long pending crash reports are sent for
const flushTimeout = 2 * time.Second

// App represents the main application container
type App struct {
	cli        cli.CLI
	shutdowner fx.Shutdowner
	log        logger.Logger
	done       chan struct{}
}

// NewApp creates a new application instance with its dependencies
func NewApp(cli cli.CLI, shutdowner fx.Shutdowner, log logger.Logger) *App {
	return &App{
		cli:        cli,
		shutdowner: shutdowner,
		log:        log,
		done:       make(chan struct{}),
	}
}

// Run executes the application and asks fx to shut down with the resulting exit code
func (a *App) Run() {
	exitCode := a.execute()
	close(a.done)

	if err := a.shutdowner.Shutdown(fx.ExitCode(exitCode)); err != nil {
		a.log.Error().Err(err).Msg("Failed to request shutdown")
	}
}

// execute runs the CLI and returns exit code - extracted for testing
func (a *App) execute() (exitCode int) {
	defer func() {
		if r := recover(); r != nil {
			sentry.CurrentHub().Recover(r)
			sentry.Flush(flushTimeout)

			a.log.Error().Str("panic", fmt.Sprint(r)).Msg("Navigator panicked")

			exitCode = PanicExitCode
		}
	}()

	exitCode, err := a.cli.Execute()
	if err != nil {
		sentry.CaptureException(err)
	}

	return exitCode
}

// Register registers the application's lifecycle hooks with fx
func Register(lifecycle fx.Lifecycle, app *App) {
	lifecycle.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			go app.Run()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			select {
			case <-app.done:
				return nil
			case <-ctx.Done():
				return ctx.Err()
			}
		},
	})
}
