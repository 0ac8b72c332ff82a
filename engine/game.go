package engine

import (
	"fmt"
	"log"
	"time"

	"github.com/lixenwraith/pong/asset"
	"github.com/lixenwraith/pong/constant"
	"github.com/lixenwraith/pong/engine/fsm"
	"github.com/lixenwraith/pong/event"
	"github.com/lixenwraith/pong/game"
	"github.com/lixenwraith/pong/input"
	"github.com/lixenwraith/pong/status"
	"github.com/lixenwraith/pong/vmath"
)

// GameConfig holds the rules a Game is created with
type GameConfig struct {
	WinScore          int
	RenormalizeBounce bool
	Seed              uint64 // 0 seeds from the wall clock
	ScreensPath       string // Optional screen graph file, embedded default when empty
}

// frameInput is what the current frame's actions and guards read
type frameInput struct {
	dt    float64
	field game.PlayField
	keys  input.State
	step  game.StepResult
}

// Game owns the screen state machine and the match it drives
// Not safe for concurrent use, the frame loop is its only caller
type Game struct {
	cfg     GameConfig
	machine *fsm.Machine[*Game]
	rng     *vmath.FastRand

	match  *game.Match
	winner string
	frame  frameInput

	status  *status.Registry
	metrics status.GameMetrics
}

// NewGame loads the screen graph and enters its initial state
func NewGame(cfg GameConfig, reg *status.Registry) (*Game, error) {
	if cfg.WinScore <= 0 {
		cfg.WinScore = constant.WinScore
	}
	seed := cfg.Seed
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}
	if reg == nil {
		reg = status.NewRegistry()
	}

	g := &Game{
		cfg:     cfg,
		machine: fsm.NewMachine[*Game](),
		rng:     vmath.NewFastRand(seed),
		status:  reg,
		metrics: reg.Game(),
	}

	g.registerActions()
	if err := fsm.LoadConfigAuto(g.machine, cfg.ScreensPath, asset.DefaultScreenFSMConfig); err != nil {
		return nil, fmt.Errorf("screen graph: %w", err)
	}
	g.machine.OnTransition = g.onTransition
	if err := g.machine.Init(g); err != nil {
		return nil, fmt.Errorf("screen graph init: %w", err)
	}
	g.metrics.Screen.Store(g.machine.CurrentState())

	log.Printf("game: seed=%d win_score=%d renormalize_bounce=%t", seed, cfg.WinScore, cfg.RenormalizeBounce)
	return g, nil
}

func (g *Game) registerActions() {
	g.machine.RegisterAction("StartMatch", func(g *Game, _ map[string]any) {
		g.startMatch()
	})
	g.machine.RegisterAction("StepMatch", func(g *Game, _ map[string]any) {
		g.stepMatch()
	})
	g.machine.RegisterAction("AnnounceWinner", func(g *Game, _ map[string]any) {
		g.announceWinner()
	})
	g.machine.RegisterGuard("MatchFinished", func(g *Game) bool {
		return g.match != nil && g.match.Finished()
	})
}

func (g *Game) startMatch() {
	g.match = game.NewMatch(g.frame.field, g.rng, g.cfg.WinScore, g.cfg.RenormalizeBounce)
	g.winner = ""
	n := g.metrics.Matches.Add(1)
	log.Printf("match %d: started on %.0fx%.0f field", n, g.frame.field.Width, g.frame.field.Height)
}

func (g *Game) stepMatch() {
	if g.match == nil {
		return
	}
	res := g.match.Step(g.frame.dt, g.frame.field, g.frame.keys)
	g.frame.step = res

	if res.LeftHit {
		g.metrics.PaddleHits.Add(1)
	}
	if res.RightHit {
		g.metrics.PaddleHits.Add(1)
	}
	switch res.Scorer {
	case game.SideLeft:
		g.metrics.PointsLeft.Add(1)
	case game.SideRight:
		g.metrics.PointsRight.Add(1)
	default:
		return
	}
	log.Printf("point: %s scores, %d - %d", res.Scorer, g.match.Left.Score, g.match.Right.Score)
}

func (g *Game) announceWinner() {
	if g.match == nil {
		return
	}
	if g.match.Winner() == game.SideLeft {
		g.winner = constant.PlayerOneWin
	} else {
		g.winner = constant.PlayerTwoWin
	}
	log.Printf("match %d: %s (%d - %d) %s", g.metrics.Matches.Load(), g.winner,
		g.match.Left.Score, g.match.Right.Score, g.status.Summary())
}

func (g *Game) onTransition(from, to string) {
	g.metrics.Screen.Store(to)
	log.Printf("screen: %s -> %s", from, to)
}

// Frame advances the game by dt seconds and returns what to draw
// The returned view is of the screen active when the frame began, so a state change shows from the next frame
// At most one screen transition happens per frame
func (g *Game) Frame(dt float64, field game.PlayField, keys input.State) View {
	g.metrics.Frames.Add(1)
	g.frame = frameInput{dt: dt, field: field, keys: keys}

	screen := Screen(g.machine.CurrentState())
	before := g.machine.ActiveStateID()

	g.machine.Update(g, time.Duration(dt*float64(time.Second)))

	if g.machine.ActiveStateID() == before {
		if g.frame.step.Scorer != game.SideNone {
			g.machine.HandleEvent(g, event.EventPointScored)
		}
		if g.machine.ActiveStateID() == before && keys.Pressed(input.KeyConfirm) {
			g.machine.HandleEvent(g, event.EventConfirm)
		}
	}

	return g.view(screen, field)
}

func (g *Game) view(screen Screen, field game.PlayField) View {
	v := View{
		Screen:     screen,
		Field:      field,
		WinnerText: g.winner,
	}
	if g.match != nil {
		v.Left = PaddleView{Rect: g.match.Left.Rect, Score: g.match.Left.Score}
		v.Right = PaddleView{Rect: g.match.Right.Rect, Score: g.match.Right.Score}
		v.Ball = g.match.Ball.Rect
	}
	return v
}

// Screen returns the active screen
func (g *Game) Screen() Screen {
	return Screen(g.machine.CurrentState())
}

// Match returns the current or last match, nil before the first one
func (g *Game) Match() *game.Match {
	return g.match
}

// WinnerText returns the message computed on entering End
func (g *Game) WinnerText() string {
	return g.winner
}

// Status returns the metrics registry the game writes to
func (g *Game) Status() *status.Registry {
	return g.status
}
