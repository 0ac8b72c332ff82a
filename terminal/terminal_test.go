package terminal

import (
	"bytes"
	"context"
	"strings"
	"testing"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lixenwraith/pong/engine"
	"github.com/lixenwraith/pong/status"
	"github.com/lixenwraith/pong/vmath"
)

func newSimScreen(t *testing.T, cols, rows int) tcell.SimulationScreen {
	t.Helper()
	screen := tcell.NewSimulationScreen("UTF-8")
	require.NoError(t, screen.Init())
	screen.SetSize(cols, rows)
	t.Cleanup(screen.Fini)
	return screen
}

// rowText returns the runes of one screen row
func rowText(screen tcell.Screen, row int) string {
	cols, _ := screen.Size()
	var b strings.Builder
	for col := 0; col < cols; col++ {
		mainc, _, _, _ := screen.GetContent(col, row)
		if mainc == 0 {
			mainc = ' '
		}
		b.WriteRune(mainc)
	}
	return b.String()
}

func newTestFrontend(t *testing.T, screen tcell.Screen) (*Frontend, *engine.MockTimeProvider) {
	t.Helper()
	g, err := engine.NewGame(engine.GameConfig{Seed: 3}, status.NewRegistry())
	require.NoError(t, err)
	clock := engine.NewMockTimeProvider(time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC))
	f := New(screen, g, clock, Options{CellWidth: 10, CellHeight: 20, Color: "truecolor", FontSize: 40})
	return f, clock
}

func key(r rune) *tcell.EventKey {
	return tcell.NewEventKey(tcell.KeyRune, r, tcell.ModNone)
}

func TestSurfaceFillRect(t *testing.T) {
	screen := newSimScreen(t, 80, 30)
	s := NewSurface(screen, 10, 20, PaletteFor("auto"))
	s.Clear()

	// Touches columns 5..7 and rows 12..17
	s.FillRect(vmath.NewRect(50, 250, 30, 100))
	screen.Show()

	_, _, style, _ := screen.GetContent(5, 12)
	_, bg, _ := style.Decompose()
	assert.Equal(t, tcell.ColorWhite, bg, "filled cell")

	_, _, style, _ = screen.GetContent(8, 12)
	_, bg, _ = style.Decompose()
	assert.Equal(t, tcell.ColorBlack, bg, "outside the rect")

	_, _, style, _ = screen.GetContent(7, 17)
	_, bg, _ = style.Decompose()
	assert.Equal(t, tcell.ColorWhite, bg, "partially covered cell is painted")
}

func TestSurfaceClipsOffscreen(t *testing.T) {
	screen := newSimScreen(t, 10, 5)
	s := NewSurface(screen, 10, 20, PaletteFor("auto"))

	assert.NotPanics(t, func() {
		s.FillRect(vmath.NewRect(-50, -50, 500, 500))
		s.DrawText("far away", 900, 900, 40)
		s.Line(-10, -10, 300, 300, 5)
	})
}

func TestSurfaceVerticalLine(t *testing.T) {
	screen := newSimScreen(t, 80, 30)
	s := NewSurface(screen, 10, 20, PaletteFor("256"))
	s.Clear()

	s.Line(400, 0, 400, 600, 5)
	screen.Show()

	for row := 0; row < 30; row++ {
		mainc, _, _, _ := screen.GetContent(40, row)
		require.Equal(t, '│', mainc, "row %d", row)
	}
	mainc, _, _, _ := screen.GetContent(41, 10)
	assert.Equal(t, ' ', mainc, "thin line stays one column wide")
}

func TestSurfaceText(t *testing.T) {
	screen := newSimScreen(t, 80, 30)
	s := NewSurface(screen, 10, 20, PaletteFor("auto"))
	s.Clear()

	w, h := s.MeasureText("abc", 40)
	assert.Equal(t, 30.0, w)
	assert.Equal(t, 20.0, h)

	s.DrawText("abc", 100, 50, 40)
	screen.Show()
	assert.Equal(t, "abc", rowText(screen, 2)[10:13])
}

func TestPaletteFor(t *testing.T) {
	assert.Equal(t, tcell.ColorWhite, PaletteFor("auto").Foreground)
	assert.Equal(t, tcell.PaletteColor(15), PaletteFor("256").Foreground)
	assert.Equal(t, tcell.NewRGBColor(255, 255, 255), PaletteFor("truecolor").Foreground)
}

func TestFrontendMenuToIngame(t *testing.T) {
	screen := newSimScreen(t, 80, 30)
	f, clock := newTestFrontend(t, screen)

	v := f.Step()
	assert.Equal(t, engine.ScreenMenu, v.Screen)
	assert.Contains(t, rowText(screen, 14), "Press SPACE to play!")

	require.True(t, f.HandleEvent(key(' ')))
	clock.Advance(16 * time.Millisecond)
	v = f.Step()
	assert.Equal(t, engine.ScreenMenu, v.Screen, "transition shows next frame")

	clock.Advance(16 * time.Millisecond)
	v = f.Step()
	assert.Equal(t, engine.ScreenIngame, v.Screen)
	assert.Equal(t, 800.0, v.Field.Width)
	assert.Equal(t, 600.0, v.Field.Height)
	// "0    0" spans columns 37..42, the divider crosses it at 40
	for col, want := range map[int]rune{37: '0', 38: ' ', 40: '│', 42: '0'} {
		mainc, _, _, _ := screen.GetContent(col, 2)
		assert.Equal(t, want, mainc, "column %d", col)
	}
}

func TestFrontendHeldKeyMovesPaddle(t *testing.T) {
	screen := newSimScreen(t, 80, 30)
	f, clock := newTestFrontend(t, screen)

	f.HandleEvent(key(' '))
	f.Step()
	start := f.game.Match().Left.Rect.Y

	// One press holds the key for the hold window
	f.HandleEvent(key('s'))
	clock.Advance(16 * time.Millisecond)
	f.Step()
	clock.Advance(16 * time.Millisecond)
	f.Step()
	moved := f.game.Match().Left.Rect.Y
	assert.Greater(t, moved, start)

	// Released once the window lapses without repeats
	clock.Advance(time.Second)
	f.Step()
	y := f.game.Match().Left.Rect.Y
	clock.Advance(16 * time.Millisecond)
	f.Step()
	assert.Equal(t, y, f.game.Match().Left.Rect.Y)
}

func TestFrontendReleasesKeysOnFocusLossAndResize(t *testing.T) {
	tests := []struct {
		name string
		ev   tcell.Event
	}{
		{"Focus lost", tcell.NewEventFocus(false)},
		{"Resize", tcell.NewEventResize(80, 30)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			screen := newSimScreen(t, 80, 30)
			f, clock := newTestFrontend(t, screen)
			f.HandleEvent(key(' '))
			f.Step()

			f.HandleEvent(key('s'))
			require.True(t, f.HandleEvent(tt.ev))

			y := f.game.Match().Left.Rect.Y
			clock.Advance(16 * time.Millisecond)
			f.Step()
			assert.Equal(t, y, f.game.Match().Left.Rect.Y, "key released before its hold lapsed")
		})
	}

	t.Run("Focus gained keeps hold", func(t *testing.T) {
		screen := newSimScreen(t, 80, 30)
		f, clock := newTestFrontend(t, screen)
		f.HandleEvent(key(' '))
		f.Step()

		f.HandleEvent(key('s'))
		f.HandleEvent(tcell.NewEventFocus(true))

		y := f.game.Match().Left.Rect.Y
		clock.Advance(16 * time.Millisecond)
		f.Step()
		assert.Greater(t, f.game.Match().Left.Rect.Y, y)
	})
}

func TestFrontendQuitKeys(t *testing.T) {
	screen := newSimScreen(t, 80, 30)
	f, _ := newTestFrontend(t, screen)

	assert.True(t, f.HandleEvent(key('x')), "unbound key ignored")
	assert.False(t, f.HandleEvent(tcell.NewEventKey(tcell.KeyEscape, 0, tcell.ModNone)))
	assert.False(t, f.HandleEvent(tcell.NewEventKey(tcell.KeyCtrlC, 0, tcell.ModCtrl)))
}

func TestFrontendResizeChangesField(t *testing.T) {
	screen := newSimScreen(t, 80, 30)
	f, _ := newTestFrontend(t, screen)

	screen.SetSize(100, 40)
	assert.True(t, f.HandleEvent(tcell.NewEventResize(100, 40)))

	v := f.Step()
	assert.Equal(t, 1000.0, v.Field.Width)
	assert.Equal(t, 800.0, v.Field.Height)
}

func TestFrontendRunStopsOnCancel(t *testing.T) {
	screen := tcell.NewSimulationScreen("UTF-8")
	g, err := engine.NewGame(engine.GameConfig{Seed: 1}, nil)
	require.NoError(t, err)
	f := New(screen, g, engine.NewTimeProvider(), Options{CellWidth: 10, CellHeight: 20, FrameInterval: time.Millisecond, HoldWindow: 10 * time.Millisecond})

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()
	assert.NoError(t, f.Run(ctx))
	assert.Positive(t, g.Status().Counter(status.KeyFrames).Load())
}

func TestEmergencyResetWritesSequences(t *testing.T) {
	var buf bytes.Buffer
	EmergencyReset(&buf)

	out := buf.String()
	assert.Contains(t, out, "\x1b[?25h", "cursor shown")
	assert.Contains(t, out, "\x1b[?1049l", "alt screen left")
	assert.Contains(t, out, "\x1b[0m")
}
