package components

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"

	"fnav/internal/config"
)

// HelpHint renders the details line hint for the first help toggle key
func HelpHint(keys []string) string {
	if len(keys) == 0 {
		return ""
	}

	return fmt.Sprintf(HelpHintFormat, keys[0])
}

// RenderLine renders a horizontal line of the specified width with separator style
func RenderLine(width int) string {
	if width < 0 {
		width = 0
	}

	return SeparatorStyle.Render(strings.Repeat("─", width))
}

// RenderHeader renders the header with format: ─── <title> ─────── <info> ───
func RenderHeader(width int, title, info string) string {
	infoWidth := lipgloss.Width(info)
	fixed := 2*SeparatorWidth + 4

	maxTitleWidth := width - infoWidth - fixed - SeparatorWidth
	title = TruncateLeft(title, maxTitleWidth)

	separatorWidth := width - lipgloss.Width(title) - infoWidth - fixed
	if separatorWidth < SeparatorWidth {
		separatorWidth = SeparatorWidth
	}

	return RenderLine(SeparatorWidth) + " " + HeaderStyle.Render(title) + " " +
		RenderLine(separatorWidth) + " " + info + " " + RenderLine(SeparatorWidth)
}

// RenderFooter renders the footer with version line and help text
func RenderFooter(width int, helpText string) string {
	version := fmt.Sprintf("v%s", config.Version)

	separatorWidth := width - lipgloss.Width(version) - SeparatorWidth - 2
	if separatorWidth < SeparatorWidth {
		separatorWidth = SeparatorWidth
	}

	versionLine := RenderLine(separatorWidth) + " " + version + " " + RenderLine(SeparatorWidth)

	return FooterStyle.Render(lipgloss.JoinVertical(lipgloss.Left, versionLine, HelpStyle.Render(helpText)))
}

// RenderDetails renders the left text and a right aligned hint on one line
func RenderDetails(width int, left, right string) string {
	rightWidth := lipgloss.Width(right)
	left = Truncate(left, width-rightWidth-1)

	gap := width - lipgloss.Width(left) - rightWidth
	if gap < 1 {
		gap = 1
	}

	return DetailsStyle.Render(left + strings.Repeat(" ", gap) + right)
}

// RenderTooSmall renders a centered warning for terminals below the minimum size
func RenderTooSmall(width, height int) string {
	msg := WarningStyle.Render(fmt.Sprintf(
		"Terminal too small: %dx%d (need %dx%d)",
		width, height, config.MinTerminalWidth, config.MinTerminalHeight,
	))

	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, msg)
}

// Truncate shortens s to maxWidth display cells, ending with an ellipsis
func Truncate(s string, maxWidth int) string {
	if maxWidth <= 0 {
		return ""
	}

	if runewidth.StringWidth(s) <= maxWidth {
		return s
	}

	return runewidth.Truncate(s, maxWidth, "…")
}

// TruncateLeft shortens s to maxWidth display cells keeping its end, for paths
func TruncateLeft(s string, maxWidth int) string {
	if maxWidth <= 0 {
		return ""
	}

	if runewidth.StringWidth(s) <= maxWidth {
		return s
	}

	runes := []rune(s)
	for i := 1; i < len(runes); i++ {
		tail := "…" + string(runes[i:])
		if runewidth.StringWidth(tail) <= maxWidth {
			return tail
		}
	}

	return "…"
}

// PadRight pads s with spaces to width display cells
func PadRight(s string, width int) string {
	return runewidth.FillRight(s, width)
}
