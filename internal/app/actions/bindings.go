package actions

import (
	"fmt"

	"fnav/internal/app/errors"
	"fnav/internal/config"
)

// DefaultBindings returns the built-in key bindings
func DefaultBindings() []Binding {
	return []Binding{
		{Command: Quit, Keys: []string{"ctrl+c", "q"}},
		{Command: Next, Keys: []string{"down", "j"}},
		{Command: Previous, Keys: []string{"up", "k"}},
		{Command: Select, Keys: []string{"enter"}},
		{Command: Back, Keys: []string{"left", "h", "backspace"}},
		{Command: Forward, Keys: []string{"right", "l"}},
		{Command: ToggleLog, Keys: []string{"D"}},
		{Command: ToggleHelp, Keys: []string{"?"}},
		{Command: Refresh, Keys: []string{"r"}},
	}
}

// BindingsFromConfig applies the keys section of cfg over the defaults
func BindingsFromConfig(cfg *config.Config) ([]Binding, error) {
	bindings := DefaultBindings()

	for _, name := range overrideOrder(cfg) {
		cmd, ok := ParseCommand(name)
		if !ok {
			return nil, fmt.Errorf("%w: '%s'", errors.ErrUnknownKeyCommand, name)
		}

		for i := range bindings {
			if bindings[i].Command == cmd {
				bindings[i].Keys = append([]string(nil), cfg.Keys[name]...)
			}
		}
	}

	return bindings, nil
}

// NewRegistry builds the registry from configuration
func NewRegistry(cfg *config.Config) (*Registry, error) {
	bindings, err := BindingsFromConfig(cfg)
	if err != nil {
		return nil, err
	}

	return Build(bindings)
}

// overrideOrder returns the configured command names, file order first
func overrideOrder(cfg *config.Config) []string {
	seen := make(map[string]bool, len(cfg.Keys))
	order := make([]string, 0, len(cfg.Keys))

	for _, name := range cfg.KeyOrder {
		if _, ok := cfg.Keys[name]; ok && !seen[name] {
			seen[name] = true
			order = append(order, name)
		}
	}

	for _, cmd := range Commands {
		name := cmd.Name()
		if _, ok := cfg.Keys[name]; ok && !seen[name] {
			seen[name] = true
			order = append(order, name)
		}
	}

	for name := range cfg.Keys {
		if !seen[name] {
			order = append(order, name)
		}
	}

	return order
}
