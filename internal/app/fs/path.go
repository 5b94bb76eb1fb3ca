package fs

import (
	"path/filepath"

	"golang.org/x/text/unicode/norm"
)

// Canonical returns the absolute, cleaned form of path with symlinks resolved
func Canonical(path string) (string, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return "", resolutionError(path, err)
	}

	resolved, err := filepath.EvalSymlinks(abs)
	if err != nil {
		return "", resolutionError(abs, err)
	}

	return filepath.Clean(resolved), nil
}

// Parent returns the parent directory of path, or false at the filesystem root
func Parent(path string) (string, bool) {
	parent := filepath.Dir(path)
	if parent == path {
		return "", false
	}

	return parent, true
}

// BaseName returns the normalized final segment of path, comparable with Entry.Name
func BaseName(path string) string {
	return norm.NFC.String(filepath.Base(path))
}
