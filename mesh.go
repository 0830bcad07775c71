package hellosphere

import (
	"errors"
	"fmt"
	"math"

	"github.com/kvartborg/vector"
)

// ErrInvalidTessellation is returned when a shape is asked for with too few divisions to enclose any volume.
var ErrInvalidTessellation = errors.New("invalid tessellation")

// Mesh is a collection of vertices and the triangles connecting them.
type Mesh struct {
	Vertices  []vector.Vector
	Triangles []*Triangle
}

// NewMesh returns a new, empty Mesh.
func NewMesh() *Mesh {

	mesh := &Mesh{
		Vertices:  []vector.Vector{},
		Triangles: []*Triangle{},
	}
	return mesh

}

// AddTriangle adds a triangle connecting the vertices at the three given indices, recalculating its normal.
func (mesh *Mesh) AddTriangle(i0, i1, i2 uint16) *Triangle {
	tri := NewTriangle(mesh)
	tri.Indices = [3]uint16{i0, i1, i2}
	tri.RecalculateNormal()
	mesh.Triangles = append(mesh.Triangles, tri)
	return tri
}

// NewSphere returns a unit sphere centered at the origin, built like a globe: slices are the divisions around the Z
// axis (longitude), stacks the divisions from the north pole at +Z to the south pole at -Z (latitude). Triangles wind
// counter-clockwise when seen from outside the sphere.
func NewSphere(slices, stacks int) (*Mesh, error) {

	if slices < 3 || stacks < 2 {
		return nil, fmt.Errorf("sphere with %d slices and %d stacks: %w", slices, stacks, ErrInvalidTessellation)
	}

	vertexCount := (stacks-1)*slices + 2
	if vertexCount > math.MaxUint16+1 {
		return nil, fmt.Errorf("sphere with %d vertices exceeds 16-bit indices: %w", vertexCount, ErrInvalidTessellation)
	}

	mesh := NewMesh()

	north := uint16(0)
	mesh.Vertices = append(mesh.Vertices, vector.Vector{0, 0, 1})

	for stack := 1; stack < stacks; stack++ {

		theta := math.Pi * float64(stack) / float64(stacks)
		sinTheta, cosTheta := math.Sincos(theta)

		for slice := 0; slice < slices; slice++ {
			phi := 2 * math.Pi * float64(slice) / float64(slices)
			sinPhi, cosPhi := math.Sincos(phi)
			mesh.Vertices = append(mesh.Vertices, vector.Vector{sinTheta * cosPhi, sinTheta * sinPhi, cosTheta})
		}

	}

	south := uint16(len(mesh.Vertices))
	mesh.Vertices = append(mesh.Vertices, vector.Vector{0, 0, -1})

	// ringIndex returns the index of the vertex on the given ring (1 to stacks-1) at the given slice.
	ringIndex := func(ring, slice int) uint16 {
		return uint16(1 + (ring-1)*slices + slice%slices)
	}

	// For each band, a and b lie on the upper ring, c and d on the lower one; (a, c, d) and (a, d, b) are both
	// counter-clockwise from outside. The pole bands each lose their degenerate half.

	for slice := 0; slice < slices; slice++ {
		mesh.AddTriangle(north, ringIndex(1, slice), ringIndex(1, slice+1))
	}

	for ring := 1; ring < stacks-1; ring++ {

		for slice := 0; slice < slices; slice++ {

			a := ringIndex(ring, slice)
			b := ringIndex(ring, slice+1)
			c := ringIndex(ring+1, slice)
			d := ringIndex(ring+1, slice+1)

			mesh.AddTriangle(a, c, d)
			mesh.AddTriangle(a, d, b)

		}

	}

	for slice := 0; slice < slices; slice++ {
		mesh.AddTriangle(ringIndex(stacks-1, slice), south, ringIndex(stacks-1, slice+1))
	}

	return mesh, nil

}

// Triangle is a single face of a Mesh.
type Triangle struct {
	Indices [3]uint16
	Normal  vector.Vector
	Mesh    *Mesh
}

// NewTriangle returns a new Triangle belonging to the given Mesh.
func NewTriangle(mesh *Mesh) *Triangle {
	return &Triangle{
		Mesh: mesh,
	}
}

// RecalculateNormal recalculates the Triangle's normal from its vertices' positions.
func (tri *Triangle) RecalculateNormal() {

	tri.Normal = calculateNormal(
		tri.Mesh.Vertices[tri.Indices[0]],
		tri.Mesh.Vertices[tri.Indices[1]],
		tri.Mesh.Vertices[tri.Indices[2]],
	)

}

// Vertices returns the positions of the Triangle's three vertices.
func (tri *Triangle) Vertices() [3]vector.Vector {
	return [3]vector.Vector{
		tri.Mesh.Vertices[tri.Indices[0]],
		tri.Mesh.Vertices[tri.Indices[1]],
		tri.Mesh.Vertices[tri.Indices[2]],
	}
}

// Center returns the average of the Triangle's vertices' positions.
func (tri *Triangle) Center() vector.Vector {
	verts := tri.Vertices()
	return verts[0].Add(verts[1]).Add(verts[2]).Scale(1.0 / 3.0)
}

func calculateNormal(p1, p2, p3 vector.Vector) vector.Vector {

	v0 := p2.Sub(p1)
	v1 := p3.Sub(p2)

	cross, _ := v0.Cross(v1)
	cross = cross.Unit()
	return cross

}
