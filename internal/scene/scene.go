// Package scene builds a network animation from options and runs its frames.
package scene

import (
	"github.com/san-kum/nodeweb/internal/geom"
	"github.com/san-kum/nodeweb/internal/network"
	"github.com/san-kum/nodeweb/internal/render"
)

// Observer sees every frame after it is drawn and before nodes advance.
type Observer interface {
	OnFrame(nodes []network.Node, edges int)
}

// Scene is one network animation: an engine, a renderer and the observers
// that watch its frames. All methods must run on the goroutine driving
// its frames.
type Scene struct {
	opts      Options
	engine    *network.Engine
	renderer  *render.Renderer
	observers []Observer
	started   bool
}

// New validates opts and returns a scene ready to Start. Any invalid option
// fails construction with a *ConfigError.
func New(opts Options) (*Scene, error) {
	nodeColor, bg, err := opts.validate()
	if err != nil {
		return nil, err
	}

	params := network.Params{
		Radius:          opts.NodeRadius,
		DensityDivisor:  opts.DensityDivisor,
		PhaseStep:       opts.PhaseStep,
		RetentionMargin: opts.RetentionMargin,
	}
	style := render.Style{
		Background:   bg,
		Node:         nodeColor,
		Edge:         nodeColor,
		Radius:       opts.NodeRadius,
		LineWidth:    opts.LineWidth,
		LinkDistance: opts.LinkDistance,
	}

	return &Scene{
		opts:     opts,
		engine:   network.NewEngine(params, geom.NewRand(opts.Seed)),
		renderer: render.New(style),
	}, nil
}

func (s *Scene) Options() Options         { return s.opts }
func (s *Scene) Engine() *network.Engine  { return s.engine }
func (s *Scene) Style() render.Style      { return s.renderer.Style() }
func (s *Scene) AddObserver(o Observer)   { s.observers = append(s.observers, o) }
func (s *Scene) Size() (float64, float64) { return s.engine.Size() }

// Started reports whether Start has seeded the nodes.
func (s *Scene) Started() bool { return s.started }

// Start sizes the canvas to its container box and seeds the initial nodes.
// Calling it again only resizes.
func (s *Scene) Start(w, h float64) {
	s.engine.Resize(w, h)
	if s.started {
		return
	}
	s.started = true
	s.engine.Seed()
}

// Frame draws the current nodes onto surf, then advances the simulation and
// tops up density. It returns the number of edges drawn.
func (s *Scene) Frame(surf render.Surface) int {
	nodes := s.engine.Nodes()
	edges := s.Render(surf)
	for _, o := range s.observers {
		o.OnFrame(nodes, edges)
	}
	s.engine.Step()
	s.engine.Maintain()
	return edges
}

// Render draws the current nodes without advancing them. Hosts use it to
// redraw a paused scene.
func (s *Scene) Render(surf render.Surface) int {
	w, h := s.engine.Size()
	return s.renderer.Draw(surf, w, h, s.engine.Nodes())
}

// Resize resynchronizes the canvas with a new container size.
func (s *Scene) Resize(w, h float64) {
	s.engine.Resize(w, h)
}

// PointerEnter adds the pointer node at the last known pointer position.
// The pointer methods do nothing when the scene is not interactive.
func (s *Scene) PointerEnter() {
	if s.opts.Interactive {
		s.engine.PointerEnter()
	}
}

// PointerMove records the pointer position and moves the pointer node.
func (s *Scene) PointerMove(x, y float64) {
	if s.opts.Interactive {
		s.engine.PointerMove(x, y)
	}
}

// PointerLeave removes the pointer node.
func (s *Scene) PointerLeave() {
	if s.opts.Interactive {
		s.engine.PointerLeave()
	}
}
