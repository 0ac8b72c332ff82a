package input

import "github.com/gdamore/tcell/v2"

// KeyEntry describes what a terminal key does
type KeyEntry struct {
	Intent IntentType
	Key    Key
}

// KeyTable maps terminal keys to intents
// Controls are fixed: P1 W/S, P2 Up/Down, Space confirms
type KeyTable struct {
	SpecialKeys map[tcell.Key]KeyEntry
	Runes       map[rune]KeyEntry
}

// DefaultKeyTable returns the fixed bindings
func DefaultKeyTable() *KeyTable {
	return &KeyTable{
		SpecialKeys: map[tcell.Key]KeyEntry{
			tcell.KeyEscape: {IntentQuit, 0},
			tcell.KeyCtrlC:  {IntentQuit, 0},
			tcell.KeyUp:     {IntentKey, KeyP2Up},
			tcell.KeyDown:   {IntentKey, KeyP2Down},
		},
		Runes: map[rune]KeyEntry{
			'w': {IntentKey, KeyP1Up},
			'W': {IntentKey, KeyP1Up},
			's': {IntentKey, KeyP1Down},
			'S': {IntentKey, KeyP1Down},
			' ': {IntentKey, KeyConfirm},
		},
	}
}

// Lookup resolves a key event, unknown keys return IntentNone
func (t *KeyTable) Lookup(ev *tcell.EventKey) KeyEntry {
	if ev.Key() == tcell.KeyRune {
		return t.Runes[ev.Rune()]
	}
	return t.SpecialKeys[ev.Key()]
}
