package terminal

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/pong/constant"
	"github.com/lixenwraith/pong/engine"
	"github.com/lixenwraith/pong/game"
	"github.com/lixenwraith/pong/input"
	"github.com/lixenwraith/pong/render"
	"github.com/lixenwraith/pong/status"
)

// Options configures the terminal frontend
type Options struct {
	CellWidth     float64
	CellHeight    float64
	FrameInterval time.Duration
	HoldDelay     time.Duration
	HoldWindow    time.Duration
	Color         string
	FontSize      float64
}

// Frontend runs the game in a terminal through tcell
type Frontend struct {
	screen       tcell.Screen
	game         *engine.Game
	orchestrator *render.RenderOrchestrator
	surface      *Surface
	keys         *input.KeyTable
	hold         *input.HoldTracker
	clock        engine.Clock
	timer        *engine.FrameTimer
	opts         Options

	fps *status.Gauge
}

// New wires a frontend around an uninitialized screen
func New(screen tcell.Screen, g *engine.Game, clock engine.Clock, opts Options) *Frontend {
	if opts.FrameInterval <= 0 {
		opts.FrameInterval = constant.FrameUpdateInterval
	}
	if opts.HoldDelay <= 0 {
		opts.HoldDelay = constant.KeyHoldDelay
	}
	if opts.HoldWindow <= 0 {
		opts.HoldWindow = constant.KeyHoldWindow
	}
	return &Frontend{
		screen:       screen,
		game:         g,
		orchestrator: render.NewDefaultOrchestrator(),
		surface:      NewSurface(screen, opts.CellWidth, opts.CellHeight, PaletteFor(opts.Color)),
		keys:         input.DefaultKeyTable(),
		hold:         input.NewHoldTracker(opts.HoldDelay, opts.HoldWindow),
		clock:        clock,
		timer:        engine.NewFrameTimer(clock),
		opts:         opts,
		fps:          g.Status().Gauge(status.KeyFPS),
	}
}

// Run owns the screen until quit or ctx cancellation
func (f *Frontend) Run(ctx context.Context) error {
	SaveState()
	if err := f.screen.Init(); err != nil {
		return fmt.Errorf("terminal init: %w", err)
	}
	defer f.screen.Fini()
	f.screen.HideCursor()
	f.screen.EnableFocus()

	cols, rows := f.screen.Size()
	log.Printf("terminal: started %dx%d cells, frame %v", cols, rows, f.opts.FrameInterval)
	defer log.Printf("terminal: stopped")

	frameTicker := time.NewTicker(f.opts.FrameInterval)
	defer frameTicker.Stop()

	eventChan := make(chan tcell.Event, constant.EventQueueSize)
	// Input polling interacts directly with the screen
	Go(func() {
		for {
			ev := f.screen.PollEvent()
			// nil after Fini
			if ev == nil {
				return
			}
			eventChan <- ev
		}
	})

	for {
		select {
		case <-ctx.Done():
			return nil
		case ev := <-eventChan:
			if !f.HandleEvent(ev) {
				return nil
			}
		case <-frameTicker.C:
			f.Step()
		}
	}
}

// HandleEvent applies one terminal event, false means quit
func (f *Frontend) HandleEvent(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		entry := f.keys.Lookup(ev)
		switch entry.Intent {
		case input.IntentQuit:
			return false
		case input.IntentKey:
			f.hold.Press(entry.Key, f.clock.Now())
		}
	case *tcell.EventResize:
		f.screen.Sync()
		// Repeat events can be lost while the terminal redraws
		f.hold.Reset()
		cols, rows := ev.Size()
		log.Printf("terminal: resized to %dx%d cells", cols, rows)
	case *tcell.EventFocus:
		// Keys held when focus left will never repeat again
		if !ev.Focused {
			f.hold.Reset()
		}
	}
	return true
}

// Step simulates and draws one frame
func (f *Frontend) Step() engine.View {
	dt := f.timer.Delta()
	keys := f.hold.Snapshot(f.clock.Now())

	w, h := f.surface.FieldSize()
	view := f.game.Frame(dt, game.PlayField{Width: w, Height: h}, keys)

	f.orchestrator.RenderFrame(render.NewRenderContext(view, f.opts.FontSize), f.surface)
	f.screen.Show()
	f.fps.Set(f.timer.FPS())
	return view
}
