package terminal

import (
	"io"
	"os"

	"golang.org/x/term"
)

var (
	csiMouseOff      = []byte("\x1b[?1000l\x1b[?1002l\x1b[?1003l\x1b[?1006l")
	csiCursorShow    = []byte("\x1b[?25h")
	csiAltScreenExit = []byte("\x1b[?1049l")
	csiSGR0          = []byte("\x1b[0m")
	csiAutoWrapOn    = []byte("\x1b[?7h")
	csiRIS           = []byte("\x1bc") // Reset to Initial State (emergency)
)

// savedState is the cooked tty mode captured before the screen takes over
var savedState *term.State

// SaveState records the current mode of stdin for EmergencyReset
// No-op when stdin is not a terminal
func SaveState() {
	fd := int(os.Stdin.Fd())
	if !term.IsTerminal(fd) {
		return
	}
	if st, err := term.GetState(fd); err == nil {
		savedState = st
	}
}

// EmergencyReset attempts to restore terminal to sane state
// Call this from panic recovery if Fini() cannot be called normally
func EmergencyReset(w io.Writer) {
	w.Write(csiMouseOff)
	w.Write(csiCursorShow)
	w.Write(csiAltScreenExit)
	w.Write(csiSGR0)
	w.Write(csiAutoWrapOn)
	w.Write(csiRIS)

	if f, ok := w.(*os.File); ok {
		f.Sync()
	}

	// Escape sequences alone don't restore termios, best-effort in crash context
	if savedState != nil {
		term.Restore(int(os.Stdin.Fd()), savedState)
	}
}
