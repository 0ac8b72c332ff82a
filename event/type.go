package event

// EventType represents the type of screen event
// 0 is reserved for the FSM "Tick" trigger
type EventType int

const (
	// EventConfirm is the confirm key's rising edge
	// Trigger: frontend input snapshot | Consumer: screen FSM (Menu, End)
	EventConfirm EventType = iota + 1

	// EventPointScored is raised after a step that scored
	// Trigger: Ingame step | Consumer: screen FSM (unused by default graph), log
	EventPointScored
)
