package render

import "github.com/lixenwraith/pong/vmath"

// Surface is a drawing target in play-field units, everything is drawn white on black
type Surface interface {
	// Clear fills the whole target with the background
	Clear()
	FillRect(r vmath.Rect)
	// Line draws a segment of the given thickness centered on the path
	Line(x1, y1, x2, y2, thickness float64)
	// MeasureText returns the advance width and the ascent of s at size
	MeasureText(s string, size float64) (w, h float64)
	// DrawText draws s with its left end at x and its baseline at y
	DrawText(s string, x, y, size float64)
}

// Layer is one pass of the frame, implemented per visual element
type Layer interface {
	Render(ctx RenderContext, s Surface)
}

// VisibilityToggle is optionally implemented for screen-dependent layers
type VisibilityToggle interface {
	IsVisible(ctx RenderContext) bool
}
