package input

// Key is a logical game key, independent of the frontend's physical key codes
type Key uint8

const (
	KeyP1Up Key = iota
	KeyP1Down
	KeyP2Up
	KeyP2Down
	KeyConfirm
	keyCount
)

var keyName = [keyCount]string{
	KeyP1Up:    "p1-up",
	KeyP1Down:  "p1-down",
	KeyP2Up:    "p2-up",
	KeyP2Down:  "p2-down",
	KeyConfirm: "confirm",
}

func (k Key) String() string {
	if k >= keyCount {
		return "unknown"
	}
	return keyName[k]
}

// State is a per-frame snapshot of the logical keys
// Held is level-triggered, Pressed is the rising edge for this frame only
type State struct {
	held    uint8
	pressed uint8
}

func (s State) Held(k Key) bool {
	return s.held&(1<<k) != 0
}

func (s State) Pressed(k Key) bool {
	return s.pressed&(1<<k) != 0
}

func (s *State) SetHeld(k Key, down bool) {
	if down {
		s.held |= 1 << k
	} else {
		s.held &^= 1 << k
	}
}

func (s *State) SetPressed(k Key, pressed bool) {
	if pressed {
		s.pressed |= 1 << k
	} else {
		s.pressed &^= 1 << k
	}
}
