package export

import (
	"fmt"
	"image/color"
	"strings"
)

// SVG is a render.Surface that collects one frame as SVG elements.
type SVG struct {
	Width, Height float64
	body          strings.Builder
	elements      int
}

// NewSVG returns an empty w x h document.
func NewSVG(w, h float64) *SVG {
	return &SVG{Width: w, Height: h}
}

func (s *SVG) Clear() {
	s.body.Reset()
	s.elements = 0
}

func (s *SVG) FillRect(x, y, w, h float64, c color.NRGBA) {
	s.body.WriteString(fmt.Sprintf(`<rect x="%.1f" y="%.1f" width="%.1f" height="%.1f" fill="%s"%s/>
`, x, y, w, h, hex(c), opacity("fill", c)))
	s.elements++
}

func (s *SVG) FillCircle(x, y, r float64, c color.NRGBA) {
	s.body.WriteString(fmt.Sprintf(`<circle cx="%.1f" cy="%.1f" r="%.1f" fill="%s"%s/>
`, x, y, r, hex(c), opacity("fill", c)))
	s.elements++
}

func (s *SVG) StrokeLine(x0, y0, x1, y1, width float64, c color.NRGBA) {
	s.body.WriteString(fmt.Sprintf(`<line x1="%.1f" y1="%.1f" x2="%.1f" y2="%.1f" stroke="%s" stroke-width="%.2f"%s/>
`, x0, y0, x1, y1, hex(c), width, opacity("stroke", c)))
	s.elements++
}

// Elements is the number of shapes drawn since the last Clear.
func (s *SVG) Elements() int { return s.elements }

// String returns the frame as a complete SVG document.
func (s *SVG) String() string {
	var sb strings.Builder
	sb.WriteString(fmt.Sprintf(`<?xml version="1.0" encoding="UTF-8"?>
<svg xmlns="http://www.w3.org/2000/svg" width="%.0f" height="%.0f" viewBox="0 0 %.0f %.0f">
`, s.Width, s.Height, s.Width, s.Height))
	sb.WriteString(s.body.String())
	sb.WriteString("</svg>")
	return sb.String()
}

func hex(c color.NRGBA) string {
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}

// opacity returns an opacity attribute, or nothing for opaque colors.
func opacity(attr string, c color.NRGBA) string {
	if c.A == 255 {
		return ""
	}
	return fmt.Sprintf(` %s-opacity="%.3f"`, attr, float64(c.A)/255)
}
