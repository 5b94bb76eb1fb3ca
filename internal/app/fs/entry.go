package fs

import (
	"os"
	"time"
)

// Entry represents a single file or directory on disk
type Entry struct {
	Name      string
	Path      string
	IsDir     bool
	IsSymlink bool
	Size      int64
	Mode      os.FileMode
	Modified  time.Time
}
