package window

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/lixenwraith/pong/vmath"
)

var (
	background = color.Black
	foreground = color.White
)

// Surface draws onto the ebiten image set for the current frame
type Surface struct {
	dst   *ebiten.Image
	font  *text.GoTextFaceSource
	faces map[float64]*text.GoTextFace
}

func NewSurface(font *text.GoTextFaceSource) *Surface {
	return &Surface{
		font:  font,
		faces: make(map[float64]*text.GoTextFace),
	}
}

// SetTarget selects the image drawn on until the next call
func (s *Surface) SetTarget(dst *ebiten.Image) {
	s.dst = dst
}

func (s *Surface) face(size float64) *text.GoTextFace {
	f, ok := s.faces[size]
	if !ok {
		f = &text.GoTextFace{Source: s.font, Size: size}
		s.faces[size] = f
	}
	return f
}

func (s *Surface) Clear() {
	s.dst.Fill(background)
}

func (s *Surface) FillRect(r vmath.Rect) {
	vector.DrawFilledRect(s.dst, float32(r.X), float32(r.Y), float32(r.W), float32(r.H), foreground, false)
}

func (s *Surface) Line(x1, y1, x2, y2, thickness float64) {
	vector.StrokeLine(s.dst, float32(x1), float32(y1), float32(x2), float32(y2), float32(thickness), foreground, false)
}

// MeasureText returns the advance and the ascent of the face
func (s *Surface) MeasureText(str string, size float64) (float64, float64) {
	f := s.face(size)
	w, _ := text.Measure(str, f, 0)
	return w, f.Metrics().HAscent
}

// DrawText positions by baseline, text.Draw anchors at the top of the line box
func (s *Surface) DrawText(str string, x, y, size float64) {
	f := s.face(size)
	op := &text.DrawOptions{}
	op.GeoM.Translate(x, y-f.Metrics().HAscent)
	op.ColorScale.ScaleWithColor(foreground)
	text.Draw(s.dst, str, f, op)
}
