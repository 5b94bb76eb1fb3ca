package cli

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"fnav/internal/config"
)

func Test_Parse(t *testing.T) {
	tests := []struct {
		name          string
		args          []string
		expected      Options
		expectedError bool
	}{
		{name: "No arguments browses the working directory", args: []string{}, expected: Options{Type: CommandBrowse}},
		{name: "Positional directory", args: []string{"/tmp"}, expected: Options{Type: CommandBrowse, Dir: "/tmp"}},
		{name: "Dir flag", args: []string{"--dir", "/var"}, expected: Options{Type: CommandBrowse, Dir: "/var"}},
		{name: "Short dir flag wins over positional", args: []string{"-d", "/var", "/tmp"}, expected: Options{Type: CommandBrowse, Dir: "/var"}},
		{name: "Version flag", args: []string{"--version"}, expected: Options{Type: CommandVersion}},
		{name: "Short version flag", args: []string{"-v"}, expected: Options{Type: CommandVersion}},
		{name: "Version command", args: []string{"version"}, expected: Options{Type: CommandVersion}},
		{name: "Help flag", args: []string{"--help"}, expected: Options{Type: CommandHelp}},
		{
			name:     "Logging flags",
			args:     []string{"--log-level", "debug", "--log-file", "/tmp/fnav.log"},
			expected: Options{Type: CommandBrowse, LogLevel: "debug", LogFile: "/tmp/fnav.log"},
		},
		{name: "No alt screen flag", args: []string{"--no-alt-screen"}, expected: Options{Type: CommandBrowse, NoAltScreen: true}},
		{name: "Unknown flag", args: []string{"--bogus"}, expectedError: true},
		{name: "Too many arguments", args: []string{"/tmp", "/var"}, expectedError: true},
		{name: "Version command takes no arguments", args: []string{"version", "extra"}, expectedError: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := Parse(tt.args)
			if tt.expectedError {
				assert.Error(t, err)
				assert.Nil(t, result)

				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.expected, *result)
		})
	}
}

func Test_Options_Apply(t *testing.T) {
	tests := []struct {
		name      string
		options   Options
		level     string
		file      string
		altScreen bool
	}{
		{name: "Empty options keep config", options: Options{}, level: "info", file: "/tmp/default.log", altScreen: true},
		{name: "Log level override", options: Options{LogLevel: "trace"}, level: "trace", file: "/tmp/default.log", altScreen: true},
		{name: "Log file override", options: Options{LogFile: "/tmp/other.log"}, level: "info", file: "/tmp/other.log", altScreen: true},
		{name: "Inline rendering", options: Options{NoAltScreen: true}, level: "info", file: "/tmp/default.log", altScreen: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := config.DefaultConfig()
			cfg.Logging.File = "/tmp/default.log"

			tt.options.Apply(cfg)

			assert.Equal(t, tt.level, cfg.Logging.Level)
			assert.Equal(t, tt.file, cfg.Logging.File)
			assert.Equal(t, tt.altScreen, cfg.UI.AltScreen)
		})
	}
}
