package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"fnav/internal/app/errors"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), ConfigFile)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	return path
}

func Test_DefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	assert.Equal(t, DefaultLogLevel, cfg.Logging.Level)
	assert.Equal(t, DefaultLogFormat, cfg.Logging.Format)
	assert.Equal(t, DefaultTickInterval, cfg.UI.TickInterval)
	assert.True(t, cfg.UI.AltScreen)
	assert.False(t, cfg.Sort.Alphabetical)
	assert.True(t, cfg.Watch.Enabled)
	assert.Equal(t, DefaultDebounce, cfg.Watch.Debounce)
	assert.NotEmpty(t, cfg.Watch.Ignore)
	assert.NotNil(t, cfg.Keys)
	assert.Empty(t, cfg.Telemetry.DSN)
	assert.NoError(t, cfg.Validate())
}

func Test_Candidates(t *testing.T) {
	paths := Candidates()

	require.NotEmpty(t, paths)
	assert.Equal(t, ConfigFile, paths[0])
}

func Test_LoadFrom(t *testing.T) {
	t.Chdir(t.TempDir())

	tests := []struct {
		name    string
		content string
		error   error
		check   func(t *testing.T, cfg *Config)
	}{
		{
			name:    "Full config",
			content: "logging:\n  level: DEBUG\n  format: json\nui:\n  tick_interval: 100ms\n  alt_screen: false\n  show_log: true\nsort:\n  alphabetical: true\nwatch:\n  debounce: 1s\n  ignore: [\"*.tmp\"]\nhighlight:\n  - pattern: \"*.go\"\n    color: cyan\ntelemetry:\n  dsn: https://key@example.com/1\n",
			check: func(t *testing.T, cfg *Config) {
				assert.Equal(t, "debug", cfg.Logging.Level)
				assert.Equal(t, "json", cfg.Logging.Format)
				assert.Equal(t, 100*time.Millisecond, cfg.UI.TickInterval)
				assert.False(t, cfg.UI.AltScreen)
				assert.True(t, cfg.UI.ShowLog)
				assert.True(t, cfg.Sort.Alphabetical)
				assert.Equal(t, time.Second, cfg.Watch.Debounce)
				assert.Equal(t, []string{"*.tmp"}, cfg.Watch.Ignore)
				assert.Equal(t, []HighlightRule{{Pattern: "*.go", Color: "cyan"}}, cfg.Highlight)
				assert.Equal(t, "https://key@example.com/1", cfg.Telemetry.DSN)
			},
		},
		{
			name:    "Keys keep file order and are normalized",
			content: "keys:\n  Refresh: [R]\n  quit: [x]\n",
			check: func(t *testing.T, cfg *Config) {
				assert.Equal(t, []string{"refresh", "quit"}, cfg.KeyOrder)
				assert.Equal(t, []string{"R"}, cfg.Keys["refresh"])
				assert.Equal(t, []string{"x"}, cfg.Keys["quit"])
			},
		},
		{
			name:    "Partial config keeps defaults",
			content: "sort:\n  alphabetical: true\n",
			check: func(t *testing.T, cfg *Config) {
				assert.Equal(t, DefaultLogLevel, cfg.Logging.Level)
				assert.True(t, cfg.UI.AltScreen)
				assert.True(t, cfg.Watch.Enabled)
			},
		},
		{
			name:    "Unknown top-level keys are ignored",
			content: "version: 3\nsort:\n  alphabetical: true\n",
			check: func(t *testing.T, cfg *Config) {
				assert.True(t, cfg.Sort.Alphabetical)
			},
		},
		{
			name:    "Malformed yaml",
			content: "keys: [\n",
			error:   errors.ErrFailedToParseConfig,
		},
		{
			name:    "Wrong value type",
			content: "ui:\n  tick_interval: [1, 2]\n",
			error:   errors.ErrFailedToParseConfig,
		},
		{
			name:    "Invalid log level",
			content: "logging:\n  level: loud\n",
			error:   errors.ErrInvalidLogLevel,
		},
		{
			name:    "Non-positive tick interval",
			content: "ui:\n  tick_interval: 0s\n",
			error:   errors.ErrInvalidTickInterval,
		},
		{
			name:    "Negative debounce",
			content: "watch:\n  debounce: -1s\n",
			error:   errors.ErrInvalidDebounce,
		},
		{
			name:    "Invalid ignore pattern",
			content: "watch:\n  ignore: [\"[\"]\n",
			error:   errors.ErrInvalidWatchIgnore,
		},
		{
			name:    "Highlight without color",
			content: "highlight:\n  - pattern: \"*.go\"\n",
			error:   errors.ErrInvalidHighlight,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg, err := LoadFrom(writeConfig(t, tt.content))

			if tt.error != nil {
				assert.ErrorIs(t, err, tt.error)
				assert.Nil(t, cfg)

				return
			}

			require.NoError(t, err)
			tt.check(t, cfg)
		})
	}
}

func Test_LoadFrom_FirstExistingWins(t *testing.T) {
	t.Chdir(t.TempDir())

	missing := filepath.Join(t.TempDir(), "missing.yaml")
	first := writeConfig(t, "logging:\n  level: warn\n")
	second := writeConfig(t, "logging:\n  level: error\n")

	cfg, err := LoadFrom(missing, first, second)

	require.NoError(t, err)
	assert.Equal(t, "warn", cfg.Logging.Level)
}

func Test_LoadFrom_NoFile(t *testing.T) {
	t.Chdir(t.TempDir())

	cfg, err := LoadFrom(filepath.Join(t.TempDir(), "missing.yaml"))

	require.NoError(t, err)
	assert.Equal(t, DefaultConfig().Logging.Level, cfg.Logging.Level)
	assert.Empty(t, cfg.KeyOrder)
}

func Test_LoadFrom_Unreadable(t *testing.T) {
	t.Chdir(t.TempDir())

	cfg, err := LoadFrom(t.TempDir())

	assert.ErrorIs(t, err, errors.ErrFailedToReadConfig)
	assert.Nil(t, cfg)
}

func Test_LoadFrom_EnvOverrides(t *testing.T) {
	t.Chdir(t.TempDir())
	t.Setenv("FNAV_LOGGING_LEVEL", "trace")
	t.Setenv("FNAV_SORT_ALPHABETICAL", "true")

	cfg, err := LoadFrom(writeConfig(t, "logging:\n  level: warn\n"))

	require.NoError(t, err)
	assert.Equal(t, "trace", cfg.Logging.Level)
	assert.True(t, cfg.Sort.Alphabetical)
}

func Test_LoadFrom_DotEnv(t *testing.T) {
	dir := t.TempDir()
	t.Chdir(dir)
	require.NoError(t, os.WriteFile(filepath.Join(dir, EnvFile), []byte("FNAV_TELEMETRY_DSN=https://key@example.com/2\n"), 0o644))
	t.Cleanup(func() { os.Unsetenv("FNAV_TELEMETRY_DSN") })

	cfg, err := LoadFrom()

	require.NoError(t, err)
	assert.Equal(t, "https://key@example.com/2", cfg.Telemetry.DSN)
}
