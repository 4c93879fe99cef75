package render

import (
	"github.com/san-kum/nodeweb/internal/geom"
	"github.com/san-kum/nodeweb/internal/network"
)

const (
	DefaultLineWidth    = 0.8
	DefaultLinkDistance = 260.0
)

// Style holds the colors and sizes of a frame.
type Style struct {
	Background   RGB
	Node         RGB
	Edge         RGB
	Radius       float64
	LineWidth    float64
	LinkDistance float64
}

// Renderer draws a node set onto a Surface. It never mutates nodes.
type Renderer struct {
	style Style
}

// New returns a renderer drawing in style.
func New(style Style) *Renderer {
	return &Renderer{style: style}
}

func (r *Renderer) Style() Style { return r.style }

// Draw paints one frame of nodes onto s and returns the number of edges drawn.
// nodes is only read.
func (r *Renderer) Draw(s Surface, w, h float64, nodes []network.Node) int {
	s.Clear()
	s.FillRect(0, 0, w, h, r.style.Background.Alpha(1))
	r.drawNodes(s, nodes)
	return r.drawEdges(s, nodes)
}

func (r *Renderer) drawNodes(s Surface, nodes []network.Node) {
	for i := range nodes {
		n := &nodes[i]
		if n.IsPointer() {
			continue
		}
		s.FillCircle(n.X, n.Y, r.style.Radius, r.style.Node.Alpha(n.Opacity))
	}
}

func (r *Renderer) drawEdges(s Surface, nodes []network.Node) int {
	drawn := 0
	for i := 0; i < len(nodes); i++ {
		a := nodes[i].Pos()
		for j := i + 1; j < len(nodes); j++ {
			b := nodes[j].Pos()
			alpha, ok := EdgeAlpha(geom.Distance(a, b), r.style.LinkDistance)
			if !ok {
				continue
			}
			s.StrokeLine(a.X, a.Y, b.X, b.Y, r.style.LineWidth, r.style.Edge.Alpha(alpha))
			drawn++
		}
	}
	return drawn
}

// EdgeAlpha is the opacity of an edge of length d, falling off linearly to
// zero at limit. ok is false when no edge should be drawn.
func EdgeAlpha(d, limit float64) (alpha float64, ok bool) {
	fraction := d / limit
	if fraction >= 1 {
		return 0, false
	}
	return 1 - fraction, true
}

// CountEdges returns how many pairs in nodes are closer than limit.
func CountEdges(nodes []network.Node, limit float64) int {
	n := 0
	for i := 0; i < len(nodes); i++ {
		for j := i + 1; j < len(nodes); j++ {
			if _, ok := EdgeAlpha(geom.Distance(nodes[i].Pos(), nodes[j].Pos()), limit); ok {
				n++
			}
		}
	}
	return n
}
