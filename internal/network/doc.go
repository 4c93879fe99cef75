// Package network simulates the drifting nodes of the animated network.
//
// The package owns the particle state and its lifecycle:
//
//   - [Node]: one particle, or the pointer pseudo-node
//   - [Edge]: the canvas side a particle enters from
//   - [Engine]: the active node set; spawns, advances, prunes and tracks
//     the pointer
//
// # Example
//
//	eng := network.NewEngine(network.DefaultParams(), geom.NewRand(seed))
//	eng.Resize(1280, 720)
//	eng.Seed()
//	for {
//		draw(eng.Nodes())
//		eng.Step()
//		eng.Maintain()
//	}
//
// # Thread Safety
//
// Engine instances are NOT thread-safe. All calls must come from the
// goroutine driving the frame loop; see anim.Loop.Post for handing
// events to that goroutine.
package network
