package components

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
	"github.com/gobwas/glob"

	"fnav/internal/app/errors"
	"fnav/internal/app/fs"
	"fnav/internal/config"
)

type highlightRule struct {
	pattern glob.Glob
	style   lipgloss.Style
}

// Highlighter picks the style of an entry from configured glob rules, then from its kind
type Highlighter struct {
	rules []highlightRule
}

// NewHighlighter compiles the highlight rules in order
func NewHighlighter(rules []config.HighlightRule) (*Highlighter, error) {
	h := &Highlighter{rules: make([]highlightRule, 0, len(rules))}

	for _, r := range rules {
		g, err := glob.Compile(r.Pattern)
		if err != nil {
			return nil, fmt.Errorf("%w '%s': %w", errors.ErrInvalidHighlight, r.Pattern, err)
		}

		h.rules = append(h.rules, highlightRule{
			pattern: g,
			style:   lipgloss.NewStyle().Foreground(ParseColor(r.Color)),
		})
	}

	return h, nil
}

// Style returns the style of entry; the first matching rule wins
func (h *Highlighter) Style(entry fs.Entry) lipgloss.Style {
	for _, r := range h.rules {
		if r.pattern.Match(entry.Name) {
			return r.style
		}
	}

	switch {
	case entry.IsDir:
		return DirectoryStyle
	case entry.IsSymlink:
		return SymlinkStyle
	default:
		return FileStyle
	}
}

// Label returns the entry name with its kind suffix
func Label(entry fs.Entry) string {
	switch {
	case entry.IsDir:
		return entry.Name + DirectorySuffix
	case entry.IsSymlink:
		return entry.Name + SymlinkSuffix
	default:
		return entry.Name
	}
}
