//go:generate mockgen -source=cli.go -destination=cli_mock.go -package=cli
package cli

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/x/term"

	"fnav/internal/app/actions"
	"fnav/internal/app/errors"
	"fnav/internal/app/navigation"
	"fnav/internal/app/ui/wire"
	"fnav/internal/config"
	"fnav/internal/config/logger"
)

// CLI defines the interface for cli operations
type CLI interface {
	Execute() (int, error)
}

// cli represents the command-line interface for the application
type cli struct {
	options    *Options
	registry   *actions.Registry
	engine     navigation.Engine
	ui         wire.UI
	out        io.Writer
	errOut     io.Writer
	getwd      func() (string, error)
	isTerminal func() bool
	log        logger.Logger
}

// NewCLI creates a new cli instance
func NewCLI(
	options *Options,
	registry *actions.Registry,
	engine navigation.Engine,
	ui wire.UI,
	log logger.Logger,
) CLI {
	return &cli{
		options:  options,
		registry: registry,
		engine:   engine,
		ui:       ui,
		out:      os.Stdout,
		errOut:   os.Stderr,
		getwd:    os.Getwd,
		isTerminal: func() bool {
			return term.IsTerminal(os.Stdout.Fd())
		},
		log: log.WithComponent("CLI"),
	}
}

// Execute runs the parsed command and returns the process exit code
func (c *cli) Execute() (int, error) {
	switch c.options.Type {
	case CommandVersion:
		fmt.Fprintf(c.out, "%s v%s\n", config.AppName, config.Version)
		return 0, nil
	case CommandHelp:
		fmt.Fprint(c.out, RenderUsage(c.registry))
		return 0, nil
	}

	if err := c.browse(context.Background()); err != nil {
		c.log.Error().Err(err).Msg("Navigator stopped with an error")
		fmt.Fprintln(c.errOut, RenderError(err))

		return 1, err
	}

	return 0, nil
}

// browse initializes the engine at the start directory and runs the TUI until quit
func (c *cli) browse(ctx context.Context) error {
	dir, err := c.startDir()
	if err != nil {
		return err
	}

	if !c.isTerminal() {
		return errors.ErrNotATerminal
	}

	if err := c.engine.Initialize(ctx, dir); err != nil {
		return err
	}

	program, err := c.ui(ctx)
	if err != nil {
		return err
	}

	c.log.Info().Str("dir", dir).Msg("Starting navigator")

	if _, err := program.Run(); err != nil {
		return fmt.Errorf("tui: %w", err)
	}

	c.log.Info().Msg("Navigator exited")

	return nil
}

// startDir returns the directory flag or the working directory
func (c *cli) startDir() (string, error) {
	if c.options.Dir != "" {
		return c.options.Dir, nil
	}

	dir, err := c.getwd()
	if err != nil {
		return "", fmt.Errorf("%w: %w", errors.ErrFailedToGetWorkingDir, err)
	}

	return dir, nil
}
