package components

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Color palette for the UI with semantic naming
const (
	// Foreground colors - text and elements
	FgPrimary = lipgloss.Color("#7D56F4") // Purple - primary/focus color
	FgMuted   = lipgloss.Color("7")       // Light gray - muted elements
	FgBorder  = lipgloss.Color("8")       // Gray - borders and help text

	// Background colors
	BgSelection = lipgloss.Color("235") // Dark gray - selected background

	// Entry kinds
	FgDirectory = lipgloss.Color("10") // Green - directories
	FgSymlink   = lipgloss.Color("14") // Cyan - symbolic links

	// Status colors
	FgStatusOK      = lipgloss.Color("10") // Green
	FgStatusWarning = lipgloss.Color("11") // Yellow
	FgStatusError   = lipgloss.Color("9")  // Red
)

// LogSeparatorColor is the adaptive color for the log panel separator
var LogSeparatorColor = lipgloss.AdaptiveColor{Light: "#737373", Dark: "#a3a3a3"}

// namedColors maps configuration color names to terminal colors
var namedColors = map[string]lipgloss.TerminalColor{
	"black":   lipgloss.Color("0"),
	"red":     lipgloss.Color("9"),
	"green":   lipgloss.Color("10"),
	"yellow":  lipgloss.Color("11"),
	"blue":    lipgloss.Color("12"),
	"magenta": lipgloss.Color("13"),
	"cyan":    lipgloss.Color("14"),
	"white":   lipgloss.Color("15"),
	"gray":    FgBorder,
	"purple":  FgPrimary,
	"amber":   lipgloss.AdaptiveColor{Light: "#d97706", Dark: "#fbbf24"},
	"pink":    lipgloss.AdaptiveColor{Light: "#db2777", Dark: "#f472b6"},
	"teal":    lipgloss.AdaptiveColor{Light: "#0d9488", Dark: "#2dd4bf"},
	"orange":  lipgloss.AdaptiveColor{Light: "#ea580c", Dark: "#fb923c"},
}

// ParseColor resolves a color name, hex value or ANSI code
func ParseColor(value string) lipgloss.TerminalColor {
	value = strings.ToLower(strings.TrimSpace(value))

	if c, ok := namedColors[value]; ok {
		return c
	}

	return lipgloss.Color(value)
}
