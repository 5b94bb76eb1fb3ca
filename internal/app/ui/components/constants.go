package components

import "time"

// Layout constants
const (
	HeaderHeight   = 1
	DetailsHeight  = 1
	FooterHeight   = 2
	StatusHeight   = 1
	SeparatorWidth = 3
	MinListHeight  = 1
)

// Row constants
const (
	IndicatorNone     = "  "
	IndicatorSelected = "▸ "
	DirectorySuffix   = "/"
	SymlinkSuffix     = "@"
	EmptyDirectory    = "(empty)"
	HelpHintFormat    = "[%s] Help"
)

// Formats
const (
	ModifiedLayout = "02/01/2006 15:04:05"
)

// Tips rotate every TipRotation
const (
	TipRotation = 10 * time.Second
)

// TicksPerSecond derives the animation rate from the UI tick interval
func TicksPerSecond(tick time.Duration) int {
	if tick <= 0 || tick > time.Second {
		return 1
	}

	return int(time.Second / tick)
}
