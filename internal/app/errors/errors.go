package errors

import (
	"errors"
)

var (
	ErrFailedToReadConfig  = errors.New("failed to read config file")
	ErrFailedToParseConfig = errors.New("failed to parse config file")
	ErrInvalidConfig       = errors.New("invalid configuration")

	ErrInvalidLogLevel     = errors.New("invalid log level")
	ErrInvalidLogFormat    = errors.New("invalid log format")
	ErrInvalidTickInterval = errors.New("tick interval must be positive")
	ErrInvalidDebounce     = errors.New("watch debounce must not be negative")
	ErrInvalidWatchIgnore  = errors.New("invalid watch ignore pattern")
	ErrInvalidHighlight    = errors.New("invalid highlight rule")
	ErrUnknownKeyCommand   = errors.New("unknown command in keys section")

	ErrListingFailure  = errors.New("cannot list directory")
	ErrMetadataFailure = errors.New("cannot read entry metadata")
	ErrPathResolution  = errors.New("cannot resolve path")

	ErrNotInitialized     = errors.New("navigator is not initialized")
	ErrAlreadyInitialized = errors.New("navigator is already initialized")

	ErrKeyConflict    = errors.New("conflicting key bindings")
	ErrEmptyBinding   = errors.New("command has no trigger keys")
	ErrUnknownCommand = errors.New("unknown command")

	ErrFailedToGetWorkingDir = errors.New("failed to get working directory")
	ErrNotATerminal          = errors.New("stdout is not a terminal")
	ErrFailedToOpenLogFile   = errors.New("failed to open log file")

	ErrWatchFailed = errors.New("cannot watch directory")
)

var (
	As  = errors.As
	Is  = errors.Is
	New = errors.New
)
