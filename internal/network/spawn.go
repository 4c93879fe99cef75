package network

import (
	"fmt"
	"math/rand"

	"github.com/san-kum/nodeweb/internal/geom"
)

// Edge is the canvas side a spawned node enters from.
type Edge int

const (
	Top Edge = iota
	Right
	Bottom
	Left
)

var edges = []Edge{Top, Right, Bottom, Left}

func (e Edge) String() string {
	switch e {
	case Top:
		return "top"
	case Right:
		return "right"
	case Bottom:
		return "bottom"
	case Left:
		return "left"
	}
	return fmt.Sprintf("edge(%d)", int(e))
}

const (
	minSpeed     = -1.0
	maxSpeed     = 1.0
	inwardSpeed  = 0.1
	spawnPhase   = 10.0
	seedPhaseMin = 20.0
	seedPhaseMax = 50.0
)

// edgeVelocity draws a velocity whose component normal to e points onto the canvas.
func edgeVelocity(r *rand.Rand, e Edge) (vx, vy float64) {
	switch e {
	case Right:
		return geom.Range(r, minSpeed, -inwardSpeed), geom.Range(r, minSpeed, maxSpeed)
	case Bottom:
		return geom.Range(r, minSpeed, maxSpeed), geom.Range(r, minSpeed, -inwardSpeed)
	case Left:
		return geom.Range(r, inwardSpeed, maxSpeed), geom.Range(r, minSpeed, maxSpeed)
	default:
		return geom.Range(r, minSpeed, maxSpeed), geom.Range(r, inwardSpeed, maxSpeed)
	}
}

// spawnAt places a node just outside edge e of a w x h canvas.
func spawnAt(r *rand.Rand, e Edge, w, h, radius float64) Node {
	n := Node{
		Radius:  radius,
		Opacity: 1,
		Kind:    KindParticle,
	}
	switch e {
	case Top:
		n.X, n.Y = geom.EdgePos(r, w), -radius
	case Right:
		n.X, n.Y = w+radius, geom.EdgePos(r, h)
	case Bottom:
		n.X, n.Y = geom.EdgePos(r, w), h+radius
	default:
		n.X, n.Y = -radius, geom.EdgePos(r, h)
	}
	n.VX, n.VY = edgeVelocity(r, e)
	n.Phase = geom.Range(r, 0, spawnPhase)
	return n
}

// seedNode places a node anywhere on the canvas for the initial population.
func seedNode(r *rand.Rand, w, h, radius float64) Node {
	n := Node{
		X:       geom.EdgePos(r, w),
		Y:       geom.EdgePos(r, h),
		Radius:  radius,
		Opacity: 1,
		Kind:    KindParticle,
	}
	n.VX, n.VY = edgeVelocity(r, Top)
	n.Phase = geom.Range(r, seedPhaseMin, seedPhaseMax)
	return n
}
