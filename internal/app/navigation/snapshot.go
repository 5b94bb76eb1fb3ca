package navigation

import (
	"time"

	"fnav/internal/app/fs"
)

// Snapshot is a read-only copy of the active navigation state for rendering
type Snapshot struct {
	Path         string
	Entries      []fs.Entry
	Cursor       int
	HasCursor    bool
	Selected     fs.Entry
	HasSelection bool
	ShowLog      bool
	ShowHelp     bool
}

// Modified returns the modification time of the selected entry
func (s Snapshot) Modified() (time.Time, bool) {
	if !s.HasSelection {
		return time.Time{}, false
	}

	return s.Selected.Modified, true
}

// Empty reports whether the listed directory has no entries
func (s Snapshot) Empty() bool {
	return len(s.Entries) == 0
}
