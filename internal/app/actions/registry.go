package actions

import (
	"fmt"
	"strings"

	"fnav/internal/app/errors"
)

// Binding binds a command to its trigger keys
type Binding struct {
	Command Command
	Keys    []string
}

// Conflict is a key bound to more than one command
type Conflict struct {
	Key      string
	Commands []Command
}

// ConflictError reports every ambiguous key of a registry
type ConflictError struct {
	Conflicts []Conflict
}

func (e *ConflictError) Error() string {
	parts := make([]string, len(e.Conflicts))

	for i, c := range e.Conflicts {
		names := make([]string, len(c.Commands))
		for j, cmd := range c.Commands {
			names[j] = cmd.String()
		}

		parts[i] = fmt.Sprintf("key %q bound to %s", c.Key, strings.Join(names, ", "))
	}

	return fmt.Sprintf("%s: %s", errors.ErrKeyConflict, strings.Join(parts, "; "))
}

// Is matches errors.ErrKeyConflict
func (e *ConflictError) Is(target error) bool {
	return target == errors.ErrKeyConflict
}

// Registry maps trigger keys to commands. It is immutable once built.
type Registry struct {
	bindings []Binding
}

// Build validates the bindings and creates a registry
func Build(bindings []Binding) (*Registry, error) {
	owners := make(map[string][]Command)
	order := []string{}

	for _, b := range bindings {
		if len(b.Keys) == 0 {
			return nil, fmt.Errorf("%w: %s", errors.ErrEmptyBinding, b.Command)
		}

		for _, k := range b.Keys {
			if _, seen := owners[k]; !seen {
				order = append(order, k)
			}

			if !contains(owners[k], b.Command) {
				owners[k] = append(owners[k], b.Command)
			}
		}
	}

	conflicts := []Conflict{}

	for _, k := range order {
		if len(owners[k]) > 1 {
			conflicts = append(conflicts, Conflict{Key: k, Commands: owners[k]})
		}
	}

	if len(conflicts) > 0 {
		return nil, &ConflictError{Conflicts: conflicts}
	}

	copied := make([]Binding, len(bindings))
	for i, b := range bindings {
		copied[i] = Binding{Command: b.Command, Keys: append([]string(nil), b.Keys...)}
	}

	return &Registry{bindings: copied}, nil
}

// Resolve returns the command bound to key
func (r *Registry) Resolve(key string) (Command, bool) {
	for _, b := range r.bindings {
		for _, k := range b.Keys {
			if k == key {
				return b.Command, true
			}
		}
	}

	return 0, false
}

// Bindings returns a copy of the registered bindings
func (r *Registry) Bindings() []Binding {
	out := make([]Binding, len(r.bindings))
	for i, b := range r.bindings {
		out[i] = Binding{Command: b.Command, Keys: append([]string(nil), b.Keys...)}
	}

	return out
}

// KeysFor returns the trigger keys of cmd
func (r *Registry) KeysFor(cmd Command) []string {
	for _, b := range r.bindings {
		if b.Command == cmd {
			return append([]string(nil), b.Keys...)
		}
	}

	return nil
}

func contains(cmds []Command, cmd Command) bool {
	for _, c := range cmds {
		if c == cmd {
			return true
		}
	}

	return false
}
