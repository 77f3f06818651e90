// Package terrain provides the heightmap grid, height sampling and
// ground resolution used by the player controller, plus the render
// mesh builder for the demo scene.
package terrain

import (
	"github.com/chewxy/math32"
)

// Heightmap is a row-major grid of terrain heights. Rows run along the
// world Z axis, columns along X. The grid is centered on the origin:
// HalfWidth/HalfDepth shift world coordinates into grid space.
type Heightmap struct {
	Heights []float32 // len == Rows*Cols, row-major: Heights[row*Cols+col]
	Rows    int
	Cols    int

	CellSizeX float32 // world units per column step
	CellSizeZ float32 // world units per row step
	HalfWidth float32 // world-X offset of column 0
	HalfDepth float32 // world-Z offset of row 0
}

// At returns the stored height at a grid vertex. Indices must be in range.
func (h *Heightmap) At(col, row int) float32 {
	return h.Heights[row*h.Cols+col]
}

// Sample returns the bilinearly interpolated height at a world (x, z)
// position. Coordinates outside the grid clamp to the nearest edge cell,
// so the mesh border repeats instead of extrapolating. Non-finite input
// yields NaN; callers fall back through Resolver.
func (h *Heightmap) Sample(x, z float32) float32 {
	if math32.IsNaN(x) || math32.IsInf(x, 0) || math32.IsNaN(z) || math32.IsInf(z, 0) {
		return math32.NaN()
	}

	gx := (x + h.HalfWidth) / h.CellSizeX
	gz := (z + h.HalfDepth) / h.CellSizeZ
	gx = clamp(gx, 0, float32(h.Cols-1))
	gz = clamp(gz, 0, float32(h.Rows-1))

	c0 := int(math32.Floor(gx))
	r0 := int(math32.Floor(gz))
	c1 := c0 + 1
	r1 := r0 + 1
	if c1 > h.Cols-1 {
		c1 = h.Cols - 1
	}
	if r1 > h.Rows-1 {
		r1 = h.Rows - 1
	}

	fx := gx - float32(c0)
	fz := gz - float32(r0)

	south := h.At(c0, r0)*(1-fx) + h.At(c1, r0)*fx
	north := h.At(c0, r1)*(1-fx) + h.At(c1, r1)*fx
	return south*(1-fz) + north*fz
}

// MinMax scans the grid and returns its height bounds.
func (h *Heightmap) MinMax() (min, max float32) {
	min = math32.MaxFloat32
	max = -math32.MaxFloat32
	for _, v := range h.Heights {
		if v < min {
			min = v
		}
		if v > max {
			max = v
		}
	}
	return min, max
}

// Width returns the grid extent along world X.
func (h *Heightmap) Width() float32 {
	return float32(h.Cols-1) * h.CellSizeX
}

// Depth returns the grid extent along world Z.
func (h *Heightmap) Depth() float32 {
	return float32(h.Rows-1) * h.CellSizeZ
}

func clamp(v, lo, hi float32) float32 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
