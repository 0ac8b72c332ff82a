package render

import (
	"fmt"

	"github.com/lixenwraith/pong/constant"
	"github.com/lixenwraith/pong/engine"
)

// drawCentered places text horizontally centered with its baseline at y
func drawCentered(s Surface, ctx RenderContext, text string, y float64) {
	w, _ := s.MeasureText(text, ctx.FontSize)
	s.DrawText(text, ctx.Field.Width*0.5-w*0.5, y, ctx.FontSize)
}

// drawMiddle centers text on both axes, baseline half the ascent below the middle
func drawMiddle(s Surface, ctx RenderContext, text string) {
	w, h := s.MeasureText(text, ctx.FontSize)
	s.DrawText(text, ctx.Field.Width*0.5-w*0.5, ctx.Field.Height*0.5-h*0.5, ctx.FontSize)
}

// MenuLayer draws the title prompt
type MenuLayer struct{}

func (MenuLayer) IsVisible(ctx RenderContext) bool { return ctx.Screen == engine.ScreenMenu }

func (MenuLayer) Render(ctx RenderContext, s Surface) {
	drawMiddle(s, ctx, constant.MenuText)
}

// ScoreLayer draws both scores near the top
type ScoreLayer struct{}

func (ScoreLayer) IsVisible(ctx RenderContext) bool { return ctx.Screen == engine.ScreenIngame }

func (ScoreLayer) Render(ctx RenderContext, s Surface) {
	drawCentered(s, ctx, ScoreText(ctx.Left.Score, ctx.Right.Score), constant.ScoreTextY)
}

// ScoreText formats the live score line
func ScoreText(left, right int) string {
	return fmt.Sprintf("%d    %d", left, right)
}

// DividerLayer draws the center line
type DividerLayer struct{}

func (DividerLayer) IsVisible(ctx RenderContext) bool { return ctx.Screen == engine.ScreenIngame }

func (DividerLayer) Render(ctx RenderContext, s Surface) {
	x := ctx.Field.Width * 0.5
	s.Line(x, 0, x, ctx.Field.Height, constant.DividerWidth)
}

type PaddleLayer struct{}

func (PaddleLayer) IsVisible(ctx RenderContext) bool { return ctx.Screen == engine.ScreenIngame }

func (PaddleLayer) Render(ctx RenderContext, s Surface) {
	s.FillRect(ctx.Left.Rect)
	s.FillRect(ctx.Right.Rect)
}

type BallLayer struct{}

func (BallLayer) IsVisible(ctx RenderContext) bool { return ctx.Screen == engine.ScreenIngame }

func (BallLayer) Render(ctx RenderContext, s Surface) {
	s.FillRect(ctx.Ball)
}

// WinnerLayer draws the result message computed on entering End
type WinnerLayer struct{}

func (WinnerLayer) IsVisible(ctx RenderContext) bool { return ctx.Screen == engine.ScreenEnd }

func (WinnerLayer) Render(ctx RenderContext, s Surface) {
	drawMiddle(s, ctx, ctx.WinnerText)
}
