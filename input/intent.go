package input

// IntentType discriminates what a physical key means to the frontend
type IntentType uint8

const (
	IntentNone IntentType = iota
	IntentKey             // Logical game key, see KeyEntry.Key
	IntentQuit            // Esc, Ctrl+C
)
