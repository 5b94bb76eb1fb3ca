package fs

import (
	"context"
	"os"
	"path/filepath"

	"golang.org/x/text/unicode/norm"
)

// Lister reads directory entries
//
//go:generate mockgen -source=lister.go -destination=lister_mock.go -package=fs
type Lister interface {
	// List returns the entries of dir in the order the platform enumerates them
	List(ctx context.Context, dir string) ([]Entry, error)
}

type osLister struct{}

// NewLister creates a Lister backed by the operating system
func NewLister() Lister {
	return &osLister{}
}

func (l *osLister) List(ctx context.Context, dir string) ([]Entry, error) {
	if err := ctx.Err(); err != nil {
		return nil, listingError(dir, err)
	}

	info, err := os.Stat(dir)
	if err != nil {
		return nil, resolutionError(dir, err)
	}

	if !info.IsDir() {
		return nil, resolutionError(dir, nil)
	}

	f, err := os.Open(dir)
	if err != nil {
		return nil, listingError(dir, err)
	}
	defer f.Close()

	// ReadDir on the handle keeps enumeration order; os.ReadDir sorts by name
	dirEntries, err := f.ReadDir(-1)
	if err != nil {
		return nil, listingError(dir, err)
	}

	entries := make([]Entry, 0, len(dirEntries))

	for _, e := range dirEntries {
		rawName := e.Name()
		fullPath := filepath.Join(dir, rawName)

		info, err := e.Info()
		if err != nil {
			return nil, metadataError(fullPath, err)
		}

		isDir := e.IsDir()
		isSymlink := info.Mode()&os.ModeSymlink != 0

		if isSymlink {
			if target, err := os.Stat(fullPath); err == nil {
				isDir = target.IsDir()
			}
		}

		entries = append(entries, Entry{
			Name:      norm.NFC.String(rawName),
			Path:      fullPath,
			IsDir:     isDir,
			IsSymlink: isSymlink,
			Size:      info.Size(),
			Mode:      info.Mode(),
			Modified:  info.ModTime(),
		})
	}

	return entries, nil
}
