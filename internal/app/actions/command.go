package actions

// Command is a semantic user action
type Command int

// Commands in dispatch priority order
const (
	Quit Command = iota
	Next
	Previous
	Select
	Back
	Forward
	ToggleLog
	ToggleHelp
	Refresh
)

// Commands lists every command in registration order
var Commands = []Command{Quit, Next, Previous, Select, Back, Forward, ToggleLog, ToggleHelp, Refresh}

var commandNames = map[Command]string{
	Quit:       "quit",
	Next:       "next",
	Previous:   "previous",
	Select:     "select",
	Back:       "back",
	Forward:    "forward",
	ToggleLog:  "toggle_log",
	ToggleHelp: "toggle_help",
	Refresh:    "refresh",
}

// String returns the display name of the command
func (c Command) String() string {
	switch c {
	case Quit:
		return "Quit"
	case Next:
		return "Select Next"
	case Previous:
		return "Select Previous"
	case Select:
		return "Select"
	case Back:
		return "Cursor Go To Parent"
	case Forward:
		return "Cursor Go To Selected Directory"
	case ToggleLog:
		return "Toggle Log"
	case ToggleHelp:
		return "Toggle Help"
	case Refresh:
		return "Reload Directory"
	default:
		return "Unknown"
	}
}

// Name returns the config name of the command
func (c Command) Name() string {
	if name, ok := commandNames[c]; ok {
		return name
	}

	return "unknown"
}

// ParseCommand returns the command with the given config name
func ParseCommand(name string) (Command, bool) {
	for cmd, n := range commandNames {
		if n == name {
			return cmd, true
		}
	}

	return 0, false
}
