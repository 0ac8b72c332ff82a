package render

import (
	"github.com/lixenwraith/pong/constant"
	"github.com/lixenwraith/pong/engine"
)

// RenderContext provides frame state for layers, passed by value
type RenderContext struct {
	engine.View
	FontSize float64
}

// NewRenderContext wraps a frame view, a non-positive font size falls back to the default
func NewRenderContext(v engine.View, fontSize float64) RenderContext {
	if fontSize <= 0 {
		fontSize = constant.FontSize
	}
	return RenderContext{View: v, FontSize: fontSize}
}
