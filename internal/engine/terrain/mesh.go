package terrain

import (
	"github.com/go-gl/mathgl/mgl32"
)

// Vertex is a terrain mesh vertex ready for GPU upload.
type Vertex struct {
	Position [3]float32
	Normal   [3]float32
}

// Mesh holds the terrain render mesh.
type Mesh struct {
	Vertices []Vertex
	Indices  []uint32
}

// BuildMesh converts the heightmap into an indexed triangle mesh.
// Normals come from central differences over neighboring grid vertices.
func BuildMesh(h *Heightmap) *Mesh {
	m := &Mesh{
		Vertices: make([]Vertex, 0, h.Rows*h.Cols),
		Indices:  make([]uint32, 0, (h.Rows-1)*(h.Cols-1)*6),
	}

	for r := 0; r < h.Rows; r++ {
		for c := 0; c < h.Cols; c++ {
			x := float32(c)*h.CellSizeX - h.HalfWidth
			z := float32(r)*h.CellSizeZ - h.HalfDepth

			n := vertexNormal(h, c, r)
			m.Vertices = append(m.Vertices, Vertex{
				Position: [3]float32{x, h.At(c, r), z},
				Normal:   [3]float32{n.X(), n.Y(), n.Z()},
			})
		}
	}

	for r := 0; r < h.Rows-1; r++ {
		for c := 0; c < h.Cols-1; c++ {
			i0 := uint32(r*h.Cols + c)
			i1 := i0 + 1
			i2 := i0 + uint32(h.Cols)
			i3 := i2 + 1
			m.Indices = append(m.Indices, i0, i2, i1, i1, i2, i3)
		}
	}
	return m
}

func vertexNormal(h *Heightmap, c, r int) mgl32.Vec3 {
	cl := c - 1
	if cl < 0 {
		cl = 0
	}
	cr := c + 1
	if cr > h.Cols-1 {
		cr = h.Cols - 1
	}
	rd := r - 1
	if rd < 0 {
		rd = 0
	}
	ru := r + 1
	if ru > h.Rows-1 {
		ru = h.Rows - 1
	}

	dx := (h.At(cr, r) - h.At(cl, r)) / (float32(cr-cl) * h.CellSizeX)
	dz := (h.At(c, ru) - h.At(c, rd)) / (float32(ru-rd) * h.CellSizeZ)
	return mgl32.Vec3{-dx, 1, -dz}.Normalize()
}
