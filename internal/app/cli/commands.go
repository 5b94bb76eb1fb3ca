package cli

import (
	"github.com/spf13/cobra"

	"fnav/internal/config"
)

// CommandType represents the type of CLI command
type CommandType int

// Command type values
const (
	CommandBrowse CommandType = iota
	CommandVersion
	CommandHelp
)

// Options contains the parsed command-line arguments
type Options struct {
	Type        CommandType
	Dir         string
	LogLevel    string
	LogFile     string
	NoAltScreen bool
}

// rootFlags holds flag values for the root command
type rootFlags struct {
	version bool
	dir     string
}

// Parse parses command-line args and returns a Options struct
func Parse(args []string) (*Options, error) {
	result := &Options{Type: CommandBrowse}

	var flags rootFlags

	root := buildRootCommand(result, &flags)
	root.AddCommand(buildVersionCommand(result))

	root.SetArgs(args)

	if err := root.Execute(); err != nil {
		return nil, err
	}

	if flags.version {
		result.Type = CommandVersion
	}

	if flags.dir != "" {
		result.Dir = flags.dir
	}

	return result, nil
}

// Apply overrides configuration values with the flags that were set
func (o *Options) Apply(cfg *config.Config) {
	if o.LogLevel != "" {
		cfg.Logging.Level = o.LogLevel
	}

	if o.LogFile != "" {
		cfg.Logging.File = o.LogFile
	}

	if o.NoAltScreen {
		cfg.UI.AltScreen = false
	}
}

// buildRootCommand creates the root cobra command
func buildRootCommand(result *Options, flags *rootFlags) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "fnav [dir]",
		Short: config.AppDescription,
		Long: `fnav is an interactive file-system navigator for the terminal.
It remembers where the cursor was left in every directory visited during a session.`,
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		Run: func(cmd *cobra.Command, args []string) {
			result.Type = CommandBrowse
			if len(args) > 0 {
				result.Dir = args[0]
			}
		},
	}

	cmd.Flags().BoolVarP(&flags.version, "version", "v", false, "Show version information")
	cmd.Flags().StringVarP(&flags.dir, "dir", "d", "", "Directory to start in (defaults to the working directory)")
	cmd.Flags().StringVar(&result.LogLevel, "log-level", "", "Log level (trace, debug, info, warn, error)")
	cmd.Flags().StringVar(&result.LogFile, "log-file", "", "Log file path")
	cmd.Flags().BoolVar(&result.NoAltScreen, "no-alt-screen", false, "Render inline instead of the alternate screen")

	cmd.SetHelpFunc(func(cmd *cobra.Command, args []string) {
		result.Type = CommandHelp
	})

	return cmd
}

// buildVersionCommand creates the version subcommand
func buildVersionCommand(result *Options) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "version",
		Short: "Show version information",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			result.Type = CommandVersion
		},
	}

	return cmd
}
