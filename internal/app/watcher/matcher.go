package watcher

import (
	"github.com/gobwas/glob"
	"golang.org/x/text/unicode/norm"
)

// Matcher decides which entry names never trigger a change
type Matcher interface {
	Ignored(name string) bool
}

// matcher implements the Matcher interface
type matcher struct {
	ignores []glob.Glob
}

// NewMatcher creates a Matcher from ignore patterns matched against entry names
func NewMatcher(ignores []string) (Matcher, error) {
	m := &matcher{ignores: make([]glob.Glob, 0, len(ignores))}

	for _, p := range ignores {
		g, err := glob.Compile(p)
		if err != nil {
			return nil, err
		}

		m.ignores = append(m.ignores, g)
	}

	return m, nil
}

// Ignored returns true if name matches any ignore pattern
func (m *matcher) Ignored(name string) bool {
	name = norm.NFC.String(name)

	for _, ignore := range m.ignores {
		if ignore.Match(name) {
			return true
		}
	}

	return false
}
