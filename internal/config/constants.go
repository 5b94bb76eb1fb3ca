package config

import "time"

// app constants
const (
	AppName        = "fnav"
	AppDescription = "Interactive file-system navigator with per-directory cursor memory"

	DefaultLogLevel  = "info"
	DefaultLogFormat = "console"
	DefaultLogFile   = "fnav.log"

	Version = "0.3.0"

	EnvPrefix = "FNAV"
)

// config file constants
const (
	ConfigName = "fnav"
	ConfigType = "yaml"
	ConfigFile = ConfigName + "." + ConfigType
	EnvFile    = ".env"
)

// ui constants
const (
	DefaultTickInterval = 250 * time.Millisecond
	MinTerminalWidth    = 52
	MinTerminalHeight   = 28
	LogPanelHeight      = 10
)

// watch constants
const (
	DefaultDebounce = 200 * time.Millisecond
)
