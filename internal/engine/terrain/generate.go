package terrain

import (
	"github.com/chewxy/math32"
)

// GenerateParams controls the procedural heightfield.
type GenerateParams struct {
	Rows      int
	Cols      int
	CellSize  float32
	Amplitude float32
}

// Generate builds a rolling-hills heightfield so the demo has terrain
// without external assets. Two overlapping sine waves at different
// frequencies give broad hills with smaller ripples on top.
func Generate(p GenerateParams) *Heightmap {
	if p.Rows < 2 {
		p.Rows = 2
	}
	if p.Cols < 2 {
		p.Cols = 2
	}
	if p.CellSize <= 0 {
		p.CellSize = 1
	}

	h := &Heightmap{
		Heights:   make([]float32, p.Rows*p.Cols),
		Rows:      p.Rows,
		Cols:      p.Cols,
		CellSizeX: p.CellSize,
		CellSizeZ: p.CellSize,
		HalfWidth: float32(p.Cols-1) * p.CellSize / 2,
		HalfDepth: float32(p.Rows-1) * p.CellSize / 2,
	}

	for r := 0; r < p.Rows; r++ {
		for c := 0; c < p.Cols; c++ {
			x := float32(c)*p.CellSize - h.HalfWidth
			z := float32(r)*p.CellSize - h.HalfDepth

			broad := math32.Sin(x*0.05) * math32.Cos(z*0.05)
			ripple := math32.Sin(x*0.21+z*0.17) * 0.25
			h.Heights[r*p.Cols+c] = (broad + ripple) * p.Amplitude
		}
	}
	return h
}
