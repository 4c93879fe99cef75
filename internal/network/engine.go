package network

import (
	"math"
	"math/rand"

	"github.com/san-kum/nodeweb/internal/geom"
)

const (
	DefaultRadius          = 2.0
	DefaultDensityDivisor  = 25000.0
	DefaultPhaseStep       = 0.03
	DefaultRetentionMargin = 50.0
)

// Params tunes spawning, density and retention.
type Params struct {
	Radius          float64
	DensityDivisor  float64
	PhaseStep       float64
	RetentionMargin float64
}

// DefaultParams returns the stock radius, density divisor, pulse rate and
// retention margin.
func DefaultParams() Params {
	return Params{
		Radius:          DefaultRadius,
		DensityDivisor:  DefaultDensityDivisor,
		PhaseStep:       DefaultPhaseStep,
		RetentionMargin: DefaultRetentionMargin,
	}
}

// Engine owns the active node set. The pointer pseudo-node, when present,
// lives in the same slice at index pointer.
type Engine struct {
	params        Params
	rng           *rand.Rand
	width, height float64
	nodes         []Node
	pointer       int
	pointerPos    geom.Point
}

// NewEngine returns an empty engine with a zero-sized canvas. Call Resize
// and Seed before stepping it. rng is owned by the engine from then on.
func NewEngine(p Params, rng *rand.Rand) *Engine {
	return &Engine{
		params:  p,
		rng:     rng,
		nodes:   make([]Node, 0, 64),
		pointer: -1,
	}
}

func (e *Engine) Params() Params { return e.params }

// Resize resynchronizes the canvas extent. Existing nodes are not moved.
func (e *Engine) Resize(w, h float64) {
	e.width, e.height = w, h
}

func (e *Engine) Size() (float64, float64) { return e.width, e.height }

// Nodes returns the active set, pointer included. The slice is only valid
// until the next mutating call.
func (e *Engine) Nodes() []Node { return e.nodes }

// Len counts every active entry, pointer included.
func (e *Engine) Len() int { return len(e.nodes) }

// Particles counts ordinary nodes only.
func (e *Engine) Particles() int {
	if e.pointer >= 0 {
		return len(e.nodes) - 1
	}
	return len(e.nodes)
}

// Target is the particle count the canvas area calls for.
func (e *Engine) Target() int {
	if e.params.DensityDivisor <= 0 {
		return 0
	}
	return int(math.Floor(e.width * e.height / e.params.DensityDivisor))
}

// Seed populates the canvas with Target nodes at uniform random positions.
func (e *Engine) Seed() {
	for i := e.Particles(); i < e.Target(); i++ {
		e.Add(seedNode(e.rng, e.width, e.height, e.params.Radius))
	}
}

// Spawn appends a node entering from edge.
func (e *Engine) Spawn(edge Edge) Node {
	n := spawnAt(e.rng, edge, e.width, e.height, e.params.Radius)
	e.Add(n)
	return n
}

// Add appends n as an ordinary particle. Seeding and spawning go through
// it; callers can also place nodes directly.
func (e *Engine) Add(n Node) {
	n.Kind = KindParticle
	e.nodes = append(e.nodes, n)
}

// Step advances every node one frame and drops particles outside the
// retention bound.
func (e *Engine) Step() {
	m := e.params.RetentionMargin
	minX, minY := -m, -m
	maxX, maxY := e.width+m, e.height+m
	step := e.params.PhaseStep
	e.retain(func(n *Node) bool {
		n.advance(step)
		return n.IsPointer() || n.within(minX, minY, maxX, maxY)
	})
}

// Maintain spawns one node from a random edge when below the density target.
// It reports whether a node was added.
func (e *Engine) Maintain() bool {
	if e.Particles() >= e.Target() {
		return false
	}
	e.Spawn(geom.Choice(e.rng, edges))
	return true
}

// HasPointer reports whether the pointer node is in the set.
func (e *Engine) HasPointer() bool { return e.pointer >= 0 }

// Pointer returns the pointer node and whether it is in the active set.
func (e *Engine) Pointer() (Node, bool) {
	if e.pointer < 0 {
		return Node{}, false
	}
	return e.nodes[e.pointer], true
}

// PointerEnter adds the pointer node at the last known pointer position.
// A second enter without a leave is ignored.
func (e *Engine) PointerEnter() {
	if e.pointer >= 0 {
		return
	}
	e.nodes = append(e.nodes, Node{X: e.pointerPos.X, Y: e.pointerPos.Y, Kind: KindPointer})
	e.pointer = len(e.nodes) - 1
}

// PointerMove records the pointer position and moves the pointer node in place.
func (e *Engine) PointerMove(x, y float64) {
	e.pointerPos = geom.Point{X: x, Y: y}
	if e.pointer >= 0 {
		e.nodes[e.pointer].X = x
		e.nodes[e.pointer].Y = y
	}
}

// PointerLeave removes the pointer node and nothing else.
func (e *Engine) PointerLeave() {
	if e.pointer < 0 {
		return
	}
	e.retain(func(n *Node) bool { return !n.IsPointer() })
}

// retain compacts the node slice in place, keeping nodes for which keep
// returns true. keep may mutate the node.
func (e *Engine) retain(keep func(*Node) bool) {
	kept := 0
	e.pointer = -1
	for i := range e.nodes {
		n := &e.nodes[i]
		if !keep(n) {
			continue
		}
		if kept != i {
			e.nodes[kept] = *n
		}
		if e.nodes[kept].IsPointer() {
			e.pointer = kept
		}
		kept++
	}
	clear(e.nodes[kept:])
	e.nodes = e.nodes[:kept]
}
