// Package geom holds the random and distance helpers shared by the
// simulation and the renderer.
package geom

import (
	"math"
	"math/rand"
)

// Point is a position in canvas pixels.
type Point struct {
	X, Y float64
}

// Range returns a uniformly distributed value in [min, max).
func Range(r *rand.Rand, min, max float64) float64 {
	return r.Float64()*(max-min) + min
}

// Choice returns a uniformly chosen element of items. items must not be empty.
func Choice[T any](r *rand.Rand, items []T) T {
	return items[r.Intn(len(items))]
}

// EdgePos returns an integer-valued position in (0, extent] along a canvas edge.
func EdgePos(r *rand.Rand, extent float64) float64 {
	return math.Ceil(r.Float64() * extent)
}

// Distance is the Euclidean distance between a and b.
func Distance(a, b Point) float64 {
	dx, dy := a.X-b.X, a.Y-b.Y
	return math.Sqrt(dx*dx + dy*dy)
}

// NewRand returns a generator seeded with seed, or with the clock when seed is 0.
func NewRand(seed int64) *rand.Rand {
	if seed == 0 {
		seed = rand.Int63()
	}
	return rand.New(rand.NewSource(seed))
}
