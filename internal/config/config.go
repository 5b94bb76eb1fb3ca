package config

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/gobwas/glob"
	"github.com/joho/godotenv"
	"github.com/spf13/viper"
	"go.yaml.in/yaml/v3"

	"fnav/internal/app/errors"
)

// Config represents the application configuration
type Config struct {
	Logging struct {
		Level  string `yaml:"level"`
		Format string `yaml:"format"`
		File   string `yaml:"file"`
	}
	UI struct {
		TickInterval time.Duration `yaml:"tick_interval" mapstructure:"tick_interval"`
		AltScreen    bool          `yaml:"alt_screen" mapstructure:"alt_screen"`
		ShowLog      bool          `yaml:"show_log" mapstructure:"show_log"`
		ShowHelp     bool          `yaml:"show_help" mapstructure:"show_help"`
	}
	Sort struct {
		Alphabetical bool `yaml:"alphabetical"`
	}
	Watch struct {
		Enabled  bool          `yaml:"enabled"`
		Debounce time.Duration `yaml:"debounce"`
		Ignore   []string      `yaml:"ignore"`
	}
	Keys      map[string][]string `yaml:"keys"`
	Highlight []HighlightRule     `yaml:"highlight"`
	Telemetry struct {
		DSN string `yaml:"dsn"`
	}

	// KeyOrder lists the commands of the keys section in file order
	KeyOrder []string `yaml:"-" mapstructure:"-"`
}

// HighlightRule colors entries whose name matches a glob pattern
type HighlightRule struct {
	Pattern string `yaml:"pattern"`
	Color   string `yaml:"color"`
}

// DefaultConfig returns the default configuration
func DefaultConfig() *Config {
	cfg := &Config{
		Keys:      make(map[string][]string),
		Highlight: []HighlightRule{},
		KeyOrder:  []string{},
	}

	cfg.Logging.Level = DefaultLogLevel
	cfg.Logging.Format = DefaultLogFormat
	cfg.Logging.File = filepath.Join(os.TempDir(), DefaultLogFile)

	cfg.UI.TickInterval = DefaultTickInterval
	cfg.UI.AltScreen = true

	cfg.Watch.Enabled = true
	cfg.Watch.Debounce = DefaultDebounce
	cfg.Watch.Ignore = []string{"*.swp", "*~", ".#*"}

	return cfg
}

// Load loads the configuration from the first config file found and the environment
func Load() (*Config, error) {
	return LoadFrom(Candidates()...)
}

// Candidates returns the config file locations in lookup order
func Candidates() []string {
	paths := []string{ConfigFile}

	if dir, err := os.UserConfigDir(); err == nil {
		paths = append(paths, filepath.Join(dir, AppName, ConfigFile))
	}

	return paths
}

// LoadFrom loads the configuration from the first existing path, then applies env overrides
func LoadFrom(paths ...string) (*Config, error) {
	cfg := DefaultConfig()

	if err := godotenv.Load(EnvFile); err != nil && !os.IsNotExist(err) {
		return nil, fmt.Errorf("%w: %w", errors.ErrFailedToReadConfig, err)
	}

	v := viper.New()
	v.SetConfigType(ConfigType)
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	setDefaults(v, cfg)

	data, err := readFirst(paths)
	if err != nil {
		return nil, err
	}

	if data != nil {
		order, err := parseKeyOrder(data)
		if err != nil {
			return nil, errors.ErrFailedToParseConfig
		}

		cfg.KeyOrder = order

		if err := v.ReadConfig(bytes.NewReader(data)); err != nil {
			return nil, errors.ErrFailedToReadConfig
		}
	}

	if err := v.Unmarshal(cfg); err != nil {
		return nil, errors.ErrFailedToParseConfig
	}

	cfg.normalize()

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %w", errors.ErrInvalidConfig, err)
	}

	return cfg, nil
}

// readFirst returns the content of the first path that exists, or nil if none does
func readFirst(paths []string) ([]byte, error) {
	for _, path := range paths {
		data, err := os.ReadFile(path)
		if err == nil {
			return data, nil
		}

		if !os.IsNotExist(err) {
			return nil, errors.ErrFailedToReadConfig
		}
	}

	return nil, nil
}

// setDefaults registers every scalar key so env overrides apply without a config file
func setDefaults(v *viper.Viper, cfg *Config) {
	v.SetDefault("logging.level", cfg.Logging.Level)
	v.SetDefault("logging.format", cfg.Logging.Format)
	v.SetDefault("logging.file", cfg.Logging.File)
	v.SetDefault("ui.tick_interval", cfg.UI.TickInterval)
	v.SetDefault("ui.alt_screen", cfg.UI.AltScreen)
	v.SetDefault("ui.show_log", cfg.UI.ShowLog)
	v.SetDefault("ui.show_help", cfg.UI.ShowHelp)
	v.SetDefault("sort.alphabetical", cfg.Sort.Alphabetical)
	v.SetDefault("watch.enabled", cfg.Watch.Enabled)
	v.SetDefault("watch.debounce", cfg.Watch.Debounce)
	v.SetDefault("watch.ignore", cfg.Watch.Ignore)
	v.SetDefault("telemetry.dsn", cfg.Telemetry.DSN)
}

// parseKeyOrder extracts the command order of the keys section
func parseKeyOrder(data []byte) ([]string, error) {
	var root yaml.Node
	if err := yaml.Unmarshal(data, &root); err != nil {
		return nil, err
	}

	order := []string{}

	if root.Kind != yaml.DocumentNode || len(root.Content) == 0 {
		return order, nil
	}

	doc := root.Content[0]
	if doc.Kind != yaml.MappingNode {
		return order, nil
	}

	for i := 0; i < len(doc.Content); i += 2 {
		key := doc.Content[i]
		value := doc.Content[i+1]

		if key.Value != "keys" || value.Kind != yaml.MappingNode {
			continue
		}

		for j := 0; j < len(value.Content); j += 2 {
			order = append(order, normalizeCommand(value.Content[j].Value))
		}
	}

	return order, nil
}

// normalize lowercases command names and log settings
func (c *Config) normalize() {
	keys := make(map[string][]string, len(c.Keys))
	for name, bound := range c.Keys {
		keys[normalizeCommand(name)] = bound
	}

	c.Keys = keys

	c.Logging.Level = strings.ToLower(strings.TrimSpace(c.Logging.Level))
	c.Logging.Format = strings.ToLower(strings.TrimSpace(c.Logging.Format))
}

// Validate validates the configuration
func (c *Config) Validate() error {
	if err := c.validateLogging(); err != nil {
		return err
	}

	if c.UI.TickInterval <= 0 {
		return errors.ErrInvalidTickInterval
	}

	if c.Watch.Debounce < 0 {
		return errors.ErrInvalidDebounce
	}

	for _, pattern := range c.Watch.Ignore {
		if _, err := glob.Compile(pattern); err != nil {
			return fmt.Errorf("%w '%s': %w", errors.ErrInvalidWatchIgnore, pattern, err)
		}
	}

	for i, rule := range c.Highlight {
		if err := rule.validate(); err != nil {
			return fmt.Errorf("highlight %d: %w", i, err)
		}
	}

	return nil
}

// validateLogging validates logging settings
func (c *Config) validateLogging() error {
	switch c.Logging.Level {
	case "trace", "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("%w: '%s'", errors.ErrInvalidLogLevel, c.Logging.Level)
	}

	switch c.Logging.Format {
	case "console", "json":
	default:
		return fmt.Errorf("%w: '%s' (must be 'console' or 'json')", errors.ErrInvalidLogFormat, c.Logging.Format)
	}

	return nil
}

// validate checks the rule has a compilable pattern and a color
func (r HighlightRule) validate() error {
	if r.Pattern == "" || r.Color == "" {
		return fmt.Errorf("%w: pattern and color are required", errors.ErrInvalidHighlight)
	}

	if _, err := glob.Compile(r.Pattern); err != nil {
		return fmt.Errorf("%w: %w", errors.ErrInvalidHighlight, err)
	}

	return nil
}

// normalizeCommand trims whitespace and lowercases a command name
func normalizeCommand(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}
