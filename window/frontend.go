package window

import (
	"fmt"
	"log"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"

	"github.com/lixenwraith/pong/constant"
	"github.com/lixenwraith/pong/engine"
	"github.com/lixenwraith/pong/game"
	"github.com/lixenwraith/pong/render"
	"github.com/lixenwraith/pong/status"
)

// Options configures the window frontend
type Options struct {
	Width    int
	Height   int
	FontSize float64
}

// Frontend adapts the game to ebiten.Game, the play field is the window's logical size
type Frontend struct {
	game         *engine.Game
	orchestrator *render.RenderOrchestrator
	surface      *Surface
	keys         KeySource
	opts         Options

	field game.PlayField
	view  engine.View

	fps *status.Gauge
}

var _ ebiten.Game = (*Frontend)(nil)

func New(g *engine.Game, font *text.GoTextFaceSource, opts Options) *Frontend {
	if opts.Width <= 0 || opts.Height <= 0 {
		opts.Width, opts.Height = constant.WindowWidth, constant.WindowHeight
	}
	f := &Frontend{
		game:         g,
		orchestrator: render.NewDefaultOrchestrator(),
		surface:      NewSurface(font),
		keys:         ebitenKeys{},
		opts:         opts,
		field:        game.PlayField{Width: float64(opts.Width), Height: float64(opts.Height)},
		fps:          g.Status().Gauge(status.KeyFPS),
	}
	f.view = engine.View{Screen: g.Screen(), Field: f.field}
	return f
}

// Run opens the window and blocks until it is closed
func (f *Frontend) Run() error {
	ebiten.SetWindowSize(f.opts.Width, f.opts.Height)
	ebiten.SetWindowTitle(constant.WindowTitle)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)

	log.Printf("window: started %dx%d at %d TPS", f.opts.Width, f.opts.Height, ebiten.TPS())
	defer log.Printf("window: stopped")

	if err := ebiten.RunGame(f); err != nil {
		return fmt.Errorf("window: %w", err)
	}
	return nil
}

// Update advances the game by one fixed tick
func (f *Frontend) Update() error {
	dt := 1.0 / float64(ebiten.TPS())
	f.view = f.game.Frame(dt, f.field, ReadKeys(f.keys))
	f.fps.Set(ebiten.ActualFPS())
	return nil
}

// Draw renders the view produced by the last Update
func (f *Frontend) Draw(screen *ebiten.Image) {
	f.surface.SetTarget(screen)
	f.orchestrator.RenderFrame(render.NewRenderContext(f.view, f.opts.FontSize), f.surface)
}

// Layout keeps one play-field unit per logical pixel, so resizing grows the field
func (f *Frontend) Layout(outsideWidth, outsideHeight int) (int, int) {
	f.field = game.PlayField{Width: float64(outsideWidth), Height: float64(outsideHeight)}
	return outsideWidth, outsideHeight
}
