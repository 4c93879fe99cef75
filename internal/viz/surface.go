package viz

import (
	"image/color"
	"math"
)

const (
	minDiscAlpha = 0.15
	minLineAlpha = 0.08
)

// Surface draws scene frames onto a braille Canvas. One dot covers
// scale x scale canvas pixels. Opacity is approximated by dot density.
type Surface struct {
	canvas     *Canvas
	scale      float64
	background color.NRGBA
}

// NewSurface draws on c with one dot per scale scene pixels.
func NewSurface(c *Canvas, scale float64) *Surface {
	return &Surface{canvas: c, scale: scale}
}

func (s *Surface) Canvas() *Canvas { return s.canvas }

// WorldSize is the canvas extent in scene pixels.
func (s *Surface) WorldSize() (float64, float64) {
	w, h := s.canvas.Dots()
	return float64(w) * s.scale, float64(h) * s.scale
}

// CellToWorld maps a cell to the scene pixel at its centre.
func (s *Surface) CellToWorld(col, row int) (float64, float64) {
	return (float64(col)*2 + 1) * s.scale, (float64(row)*4 + 2) * s.scale
}

func (s *Surface) Background() color.NRGBA { return s.background }

func (s *Surface) Clear() { s.canvas.Clear() }

// FillRect only records the color; the terminal paints the background.
func (s *Surface) FillRect(x, y, w, h float64, c color.NRGBA) {
	s.background = c
}

func (s *Surface) FillCircle(x, y, r float64, c color.NRGBA) {
	if alpha(c) < minDiscAlpha {
		return
	}
	s.canvas.FillDisc(s.dot(x), s.dot(y), r/s.scale-0.5)
}

func (s *Surface) StrokeLine(x0, y0, x1, y1, width float64, c color.NRGBA) {
	a := alpha(c)
	if a < minLineAlpha {
		return
	}
	s.canvas.DrawLine(s.dot(x0), s.dot(y0), s.dot(x1), s.dot(y1), lineStride(a))
}

func (s *Surface) dot(v float64) int {
	return int(math.Floor(v / s.scale))
}

// lineStride thins faint lines: opaque lines light every dot, faint ones fewer.
func lineStride(a float64) int {
	switch {
	case a > 0.6:
		return 1
	case a > 0.35:
		return 2
	case a > 0.2:
		return 3
	default:
		return 4
	}
}

func alpha(c color.NRGBA) float64 { return float64(c.A) / 255 }
