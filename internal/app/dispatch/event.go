package dispatch

import "fnav/internal/app/actions"

// EventType identifies the kind of input event
type EventType int

const (
	EventKey EventType = iota
	EventTick
)

// Event is one item of the ordered input stream
type Event struct {
	Type EventType
	Key  string
}

// Key creates a key press event
func Key(key string) Event {
	return Event{Type: EventKey, Key: key}
}

// Tick creates a tick event
func Tick() Event {
	return Event{Type: EventTick}
}

// Outcome tells the driving loop whether to keep running
type Outcome int

const (
	Continue Outcome = iota
	Exit
)

// Result describes how an event was handled
type Result struct {
	Outcome Outcome
	Command actions.Command
	Handled bool
	Status  string
	Err     error
}
