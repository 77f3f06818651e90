package terrain

import (
	"github.com/chewxy/math32"
)

// Bounds holds the scalar height bounds of a terrain, used as the
// fallback ground height when no grid coverage exists.
type Bounds struct {
	Min float32
	Max float32
}

// Resolver answers "what is the ground height here" with a guaranteed
// finite result. It delegates to the heightmap when one is present and
// substitutes a fallback height otherwise. The boolean reports whether
// the height came from real terrain.
type Resolver struct {
	grid     *Heightmap
	fallback float32
}

// NewResolver builds a resolver over an optional heightmap. The fallback
// height is the bounds' max when bounds are known, else the floor level.
func NewResolver(grid *Heightmap, bounds *Bounds, floorLevel float32) *Resolver {
	fallback := floorLevel
	if bounds != nil {
		fallback = bounds.Max
	}
	return &Resolver{grid: grid, fallback: fallback}
}

// Sample returns the ground height at (x, z). If the heightmap is absent
// or produces a non-finite value, the fallback height is returned and
// onTerrain is false.
func (r *Resolver) Sample(x, z float32) (height float32, onTerrain bool) {
	if r.grid == nil {
		return r.fallback, false
	}
	h := r.grid.Sample(x, z)
	if math32.IsNaN(h) || math32.IsInf(h, 0) {
		return r.fallback, false
	}
	return h, true
}

// Fallback returns the configured fallback height.
func (r *Resolver) Fallback() float32 {
	return r.fallback
}
