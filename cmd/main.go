package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/getsentry/sentry-go"
	"go.uber.org/fx"
	"go.uber.org/fx/fxevent"

	"fnav/internal/app"
	"fnav/internal/app/cli"
	"fnav/internal/config"
	"fnav/internal/config/logger"
)

const flushTimeout = 2 * time.Second

// main is the entry point for the application
func main() {
	os.Exit(runApp(os.Args[1:], os.Stderr))
}

// runApp contains the main application logic and returns the exit code
func runApp(args []string, stderr io.Writer) int {
	opts, cfg, err := prepare(args)
	if err != nil {
		fmt.Fprintln(stderr, cli.RenderError(err))
		return 1
	}

	if cfg.Telemetry.DSN != "" {
		if err := initTelemetry(cfg); err != nil {
			fmt.Fprintln(stderr, cli.RenderError(err))
		}

		defer sentry.Flush(flushTimeout)
	}

	return run(createApp(cfg, opts))
}

// prepare parses the arguments and loads the configuration they refine
func prepare(args []string) (*cli.Options, *config.Config, error) {
	opts, err := cli.Parse(args)
	if err != nil {
		return nil, nil, err
	}

	cfg, err := loadConfig()
	if err != nil {
		return nil, nil, err
	}

	opts.Apply(cfg)

	if err := cfg.Validate(); err != nil {
		return nil, nil, err
	}

	return opts, cfg, nil
}

// loadConfig wraps config.Load for easier testing
func loadConfig() (*config.Config, error) {
	return config.Load()
}

// initTelemetry configures crash reporting for the configured DSN
func initTelemetry(cfg *config.Config) error {
	return sentry.Init(sentry.ClientOptions{
		Dsn:              cfg.Telemetry.DSN,
		Release:          fmt.Sprintf("%s@%s", config.AppName, config.Version),
		AttachStacktrace: true,
	})
}

// createApp creates the FX application with the given config
func createApp(cfg *config.Config, opts *cli.Options) *fx.App {
	return fx.New(
		fx.WithLogger(createFxLogger(cfg)),
		fx.Supply(cfg, opts),
		app.Module,
	)
}

// run starts the application, waits for the navigator to finish and returns its exit code
func run(application *fx.App) int {
	if err := application.Err(); err != nil {
		fmt.Fprintln(os.Stderr, cli.RenderError(err))
		return 1
	}

	startCtx, cancel := context.WithTimeout(context.Background(), application.StartTimeout())
	defer cancel()

	if err := application.Start(startCtx); err != nil {
		fmt.Fprintln(os.Stderr, cli.RenderError(err))
		return 1
	}

	sig := <-application.Wait()

	stopCtx, cancelStop := context.WithTimeout(context.Background(), application.StopTimeout())
	defer cancelStop()

	if err := application.Stop(stopCtx); err != nil {
		fmt.Fprintln(os.Stderr, cli.RenderError(err))
	}

	return sig.ExitCode
}

// createFxLogger returns an FX logger based on the config
func createFxLogger(cfg *config.Config) func() fxevent.Logger {
	return func() fxevent.Logger {
		if cfg.Logging.Level == logger.DebugLevel {
			return &fxevent.ConsoleLogger{W: os.Stderr}
		}

		return fxevent.NopLogger
	}
}
