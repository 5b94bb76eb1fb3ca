package actions

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
)

// KeyMap exposes registry bindings to the bubbles help component
type KeyMap struct {
	bindings []key.Binding
	short    []key.Binding
}

var shortHelpCommands = []Command{Previous, Next, Back, Forward, ToggleLog, ToggleHelp, Quit}

// KeyMap builds help bindings from the registry
func (r *Registry) KeyMap() KeyMap {
	km := KeyMap{}

	for _, b := range r.bindings {
		binding := key.NewBinding(
			key.WithKeys(b.Keys...),
			key.WithHelp(helpKeys(b.Keys), b.Command.String()),
		)

		km.bindings = append(km.bindings, binding)

		if contains(shortHelpCommands, b.Command) {
			km.short = append(km.short, binding)
		}
	}

	return km
}

// ShortHelp returns keybindings to be shown in the mini help view
func (k KeyMap) ShortHelp() []key.Binding {
	return k.short
}

// FullHelp returns keybindings for the expanded help view
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{k.bindings}
}

func helpKeys(keys []string) string {
	labels := make([]string, len(keys))

	for i, k := range keys {
		switch k {
		case "up":
			labels[i] = "↑"
		case "down":
			labels[i] = "↓"
		case "left":
			labels[i] = "←"
		case "right":
			labels[i] = "→"
		default:
			labels[i] = k
		}
	}

	return strings.Join(labels, "/")
}
