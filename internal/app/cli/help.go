package cli

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"

	"fnav/internal/app/actions"
)

func row(left, right string) string {
	return bodyMedium.Render(fmt.Sprintf("  %-34s %s", left, right))
}

// RenderUsage renders the command-line help with the active key bindings
func RenderUsage(registry *actions.Registry) string {
	usage := lipgloss.JoinVertical(
		lipgloss.Left,
		sectionHeader.Render("Usage:"),
		row(commandName.Render("fnav [dir]"), "Browse dir, or the working directory"),
		row(commandName.Render("fnav version"), "Show version"),
	)

	options := lipgloss.JoinVertical(
		lipgloss.Left,
		sectionHeader.Render("Options:"),
		row(commandName.Render("-d, --dir <path>"), "Directory to start in"),
		row(commandName.Render("--log-level <level>"), "trace, debug, info, warn or error"),
		row(commandName.Render("--log-file <path>"), "Where logs are written"),
		row(commandName.Render("--no-alt-screen"), "Render inline"),
		row(commandName.Render("-v, --version"), "Show version"),
	)

	keys := []string{sectionHeader.Render("Keys:")}

	if registry != nil {
		for _, b := range registry.KeyMap().FullHelp()[0] {
			keys = append(keys, row(exampleCode.Render(b.Help().Key), b.Help().Desc))
		}
	}

	return lipgloss.JoinVertical(
		lipgloss.Left,
		RenderTitle(),
		usage,
		options,
		lipgloss.JoinVertical(lipgloss.Left, keys...),
	) + "\n"
}
