package network

import (
	"math"

	"github.com/san-kum/nodeweb/internal/geom"
)

// Kind tells ordinary particles apart from the pointer node.
type Kind uint8

const (
	KindParticle Kind = iota
	KindPointer
)

func (k Kind) String() string {
	if k == KindPointer {
		return "pointer"
	}
	return "particle"
}

// Node is one particle, or the pointer. Velocity is fixed for its lifetime
// and Opacity follows |cos(Phase)|.
type Node struct {
	X, Y    float64
	VX, VY  float64
	Radius  float64
	Opacity float64
	Phase   float64
	Kind    Kind
}

func (n *Node) Pos() geom.Point { return geom.Point{X: n.X, Y: n.Y} }

// IsPointer reports whether n tracks the pointer rather than drifting.
func (n *Node) IsPointer() bool { return n.Kind == KindPointer }

// advance moves the node one frame and, for particles, steps the opacity pulse.
func (n *Node) advance(phaseStep float64) {
	n.X += n.VX
	n.Y += n.VY
	if n.Kind == KindPointer {
		return
	}
	n.Phase += phaseStep
	n.Opacity = math.Abs(math.Cos(n.Phase))
}

func (n *Node) within(minX, minY, maxX, maxY float64) bool {
	return n.X >= minX && n.X <= maxX && n.Y >= minY && n.Y <= maxY
}
