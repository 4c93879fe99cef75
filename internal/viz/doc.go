// Package viz shows a network scene in the terminal.
//
// Frames are drawn onto a braille [Canvas] through [Surface], one dot per
// [WorldScale] scene pixels, and displayed by a Bubble Tea [Model] next to
// a themed side panel with a node-count chart.
//
// The scene runs on an anim.Loop goroutine. The model posts resize, pointer
// and pause events to the loop and renders the snapshots it sends back.
//
// # Key Bindings
//
//	Space - Pause/Resume
//	T     - Cycle color themes
//	Q     - Quit
//
// Mouse motion over the canvas moves the pointer node; leaving the canvas
// or the terminal losing focus removes it.
package viz
