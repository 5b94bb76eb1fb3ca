package components

import (
	"time"

	"github.com/charmbracelet/lipgloss"
)

// Tip styles
var (
	tipKeyStyle  = lipgloss.NewStyle().Foreground(lipgloss.AdaptiveColor{Light: "#909090", Dark: "#626262"})
	tipDescStyle = lipgloss.NewStyle().Foreground(lipgloss.AdaptiveColor{Light: "#B2B2B2", Dark: "#4A4A4A"})
)

func tipKey(k string) string  { return tipKeyStyle.Render(k) }
func tipDesc(d string) string { return tipDescStyle.Render(d) }

// Tips contains hints displayed in the help overlay
var Tips = []string{
	tipDesc("Open a directory directly with ") + tipKey("fnav ~/src"),
	tipDesc("Rebind keys in the ") + tipKey("keys:") + tipDesc(" section of fnav.yaml"),
	tipDesc("Sort by name inside each group with ") + tipKey("FNAV_SORT_ALPHABETICAL=true"),
	tipDesc("Color entries by pattern in the ") + tipKey("highlight:") + tipDesc(" section"),
	tipDesc("Inspect navigator logs with ") + tipKey("D"),
	tipDesc("Reload the directory with ") + tipKey("r"),
}

// TipAt returns the tip shown at elapsed time since start
func TipAt(offset int, elapsed time.Duration) string {
	rotation := int(elapsed / TipRotation)
	return Tips[(offset+rotation)%len(Tips)]
}
