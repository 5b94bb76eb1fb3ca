package fs

import (
	"fmt"
	"os"

	"fnav/internal/app/errors"
)

// Error describes a failed filesystem read
type Error struct {
	Kind error
	Path string
	Err  error
}

func (e *Error) Error() string {
	if e.Err == nil {
		return fmt.Sprintf("%s: %s", e.Kind, e.Path)
	}

	return fmt.Sprintf("%s %s: %v", e.Kind, e.Path, e.Err)
}

func (e *Error) Unwrap() error {
	return e.Err
}

// Is matches the failure kind sentinel. A directory that no longer exists
// also matches errors.ErrListingFailure.
func (e *Error) Is(target error) bool {
	if target == e.Kind {
		return true
	}

	return target == errors.ErrListingFailure &&
		e.Kind == errors.ErrPathResolution &&
		errors.Is(e.Err, os.ErrNotExist)
}

func listingError(path string, err error) error {
	return &Error{Kind: errors.ErrListingFailure, Path: path, Err: err}
}

func metadataError(path string, err error) error {
	return &Error{Kind: errors.ErrMetadataFailure, Path: path, Err: err}
}

func resolutionError(path string, err error) error {
	return &Error{Kind: errors.ErrPathResolution, Path: path, Err: err}
}
