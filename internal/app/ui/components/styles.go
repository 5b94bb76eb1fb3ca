package components

import "github.com/charmbracelet/lipgloss"

// Common styles shared across UI components
var (
	HeaderStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(FgPrimary)

	SeparatorStyle = lipgloss.NewStyle().
			Foreground(LogSeparatorColor)

	FooterStyle = lipgloss.NewStyle()

	HelpStyle = lipgloss.NewStyle().
			Foreground(FgBorder)

	SelectedRowStyle = lipgloss.NewStyle().
				Background(BgSelection).
				Bold(true)

	DirectoryStyle = lipgloss.NewStyle().
			Foreground(FgDirectory)

	SymlinkStyle = lipgloss.NewStyle().
			Foreground(FgSymlink)

	FileStyle = lipgloss.NewStyle()

	DetailsStyle = lipgloss.NewStyle().
			Foreground(FgMuted)

	StatusStyle = lipgloss.NewStyle().
			Foreground(FgMuted)

	StatusErrorStyle = lipgloss.NewStyle().
				Foreground(FgStatusError)

	EmptyStateStyle = lipgloss.NewStyle().
			Foreground(FgMuted).
			Italic(true)

	WarningStyle = lipgloss.NewStyle().
			Foreground(FgStatusWarning).
			Bold(true)

	// HelpPanelStyle frames the help overlay
	HelpPanelStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(FgPrimary).
			Padding(0, 1)

	HelpKeyStyle = lipgloss.NewStyle().
			Foreground(FgPrimary).
			Bold(true)

	HelpDescStyle = lipgloss.NewStyle().
			Foreground(FgMuted)

	IndicatorStyle = lipgloss.NewStyle().
			Foreground(FgStatusOK)

	// Log panel level styles
	LogLevelDebugStyle = lipgloss.NewStyle().Foreground(FgBorder)
	LogLevelInfoStyle  = lipgloss.NewStyle().Foreground(FgStatusOK)
	LogLevelWarnStyle  = lipgloss.NewStyle().Foreground(FgStatusWarning)
	LogLevelErrorStyle = lipgloss.NewStyle().Foreground(FgStatusError)
)
