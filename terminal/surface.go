package terminal

import (
	"math"
	"unicode/utf8"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/pong/vmath"
)

// Palette holds the two colors the game is drawn with
type Palette struct {
	Foreground tcell.Color
	Background tcell.Color
}

// PaletteFor resolves the configured color mode: auto, 256 or truecolor
func PaletteFor(mode string) Palette {
	switch mode {
	case "256":
		return Palette{Foreground: tcell.PaletteColor(15), Background: tcell.PaletteColor(0)}
	case "truecolor":
		return Palette{Foreground: tcell.NewRGBColor(255, 255, 255), Background: tcell.NewRGBColor(0, 0, 0)}
	default:
		return Palette{Foreground: tcell.ColorWhite, Background: tcell.ColorBlack}
	}
}

// Surface draws play-field units onto character cells of cellW by cellH units
// Text is one cell per glyph regardless of font size
type Surface struct {
	screen tcell.Screen
	cellW  float64
	cellH  float64

	bg   tcell.Style // empty cell
	fill tcell.Style // solid block
	ink  tcell.Style // lines and text
}

func NewSurface(screen tcell.Screen, cellW, cellH float64, p Palette) *Surface {
	base := tcell.StyleDefault.Background(p.Background)
	return &Surface{
		screen: screen,
		cellW:  cellW,
		cellH:  cellH,
		bg:     base,
		fill:   tcell.StyleDefault.Background(p.Foreground).Foreground(p.Foreground),
		ink:    base.Foreground(p.Foreground),
	}
}

// FieldSize returns the play field covered by the current screen
func (s *Surface) FieldSize() (w, h float64) {
	cols, rows := s.screen.Size()
	return float64(cols) * s.cellW, float64(rows) * s.cellH
}

func (s *Surface) Clear() {
	s.screen.Fill(' ', s.bg)
}

// FillRect paints every cell the rect touches
func (s *Surface) FillRect(r vmath.Rect) {
	c0, c1 := s.span(r.X, r.Right(), s.cellW)
	r0, r1 := s.span(r.Y, r.Bottom(), s.cellH)
	for row := r0; row < r1; row++ {
		for col := c0; col < c1; col++ {
			s.set(col, row, ' ', s.fill)
		}
	}
}

// Line supports axis-aligned segments as box-drawing runes, others are sampled per cell
func (s *Surface) Line(x1, y1, x2, y2, thickness float64) {
	switch {
	case x1 == x2:
		n := max(1, int(math.Round(thickness/s.cellW)))
		col := int(math.Floor(x1/s.cellW)) - (n-1)/2
		r0, r1 := s.span(min(y1, y2), max(y1, y2), s.cellH)
		for row := r0; row < r1; row++ {
			for i := 0; i < n; i++ {
				s.set(col+i, row, '│', s.ink)
			}
		}
	case y1 == y2:
		n := max(1, int(math.Round(thickness/s.cellH)))
		row := int(math.Floor(y1/s.cellH)) - (n-1)/2
		c0, c1 := s.span(min(x1, x2), max(x1, x2), s.cellW)
		for col := c0; col < c1; col++ {
			for i := 0; i < n; i++ {
				s.set(col, row+i, '─', s.ink)
			}
		}
	default:
		dc := math.Abs(x2-x1) / s.cellW
		dr := math.Abs(y2-y1) / s.cellH
		steps := int(math.Ceil(max(dc, dr)))
		for i := 0; i <= steps; i++ {
			t := float64(i) / float64(steps)
			x := x1 + (x2-x1)*t
			y := y1 + (y2-y1)*t
			s.set(int(math.Floor(x/s.cellW)), int(math.Floor(y/s.cellH)), '•', s.ink)
		}
	}
}

func (s *Surface) MeasureText(text string, _ float64) (float64, float64) {
	return float64(utf8.RuneCountInString(text)) * s.cellW, s.cellH
}

// DrawText writes text on the row holding the glyph middle, half a cell above the baseline
func (s *Surface) DrawText(text string, x, y, _ float64) {
	col := int(math.Floor(x / s.cellW))
	row := int(math.Floor((y - s.cellH*0.5) / s.cellH))
	for _, r := range text {
		s.set(col, row, r, s.ink)
		col++
	}
}

// span maps [lo, hi) in units to the covered cell range [first, last)
func (s *Surface) span(lo, hi, cell float64) (int, int) {
	first := int(math.Floor(lo / cell))
	last := int(math.Ceil(hi / cell))
	if last <= first {
		last = first + 1
	}
	return first, last
}

// set clips to the screen
func (s *Surface) set(col, row int, r rune, style tcell.Style) {
	cols, rows := s.screen.Size()
	if col < 0 || row < 0 || col >= cols || row >= rows {
		return
	}
	s.screen.SetContent(col, row, r, nil, style)
}
