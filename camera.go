package hellosphere

import (
	"sort"

	"github.com/kvartborg/vector"
)

// RasterState is the pipeline state that decides which triangles of a mesh reach the screen.
type RasterState struct {
	CullFace bool // Whether face culling is enabled
	Face     Face // The faces to cull when CullFace is enabled
}

// ScreenTriangle is a triangle projected into window space, ready to be rasterized.
type ScreenTriangle struct {
	TriangleID int        // Index of the source triangle in its Mesh
	X, Y       [3]float32 // Window coordinates of the vertices, in pixels; (0, 0) is the top-left corner
	Depth      float64    // Window-space depth of the triangle's center, from 0 (near) to 1 (far)
}

// Camera projects meshes onto a window-sized viewport. With an identity Projection (the default), normalized device
// coordinates are used directly: X and Y from -1 to 1 span the viewport, and Z from -1 (near) to 1 (far) is the
// visible depth range.
type Camera struct {
	Width, Height int
	Projection    Matrix4
}

// NewCamera returns a new Camera for a viewport of the given size, with an identity projection.
func NewCamera(w, h int) *Camera {

	cam := &Camera{
		Width:      w,
		Height:     h,
		Projection: NewMatrix4(),
	}

	return cam

}

// Project transforms the mesh by model and then by the Camera's Projection, returning the triangles that survive
// clipping and face culling, in the mesh's order.
func (camera *Camera) Project(mesh *Mesh, model Matrix4, state RasterState) []ScreenTriangle {

	mvp := camera.Projection.Mult(model)

	ndc := make([]vector.Vector, len(mesh.Vertices))

	for i, v := range mesh.Vertices {
		clip := mvp.MultVecW(v)
		w := clip[3]
		if w == 0 {
			w = 0.000001
		}
		ndc[i] = vector.Vector{clip[0] / w, clip[1] / w, clip[2] / w}
	}

	tris := make([]ScreenTriangle, 0, len(mesh.Triangles))

	for id, tri := range mesh.Triangles {

		v0 := ndc[tri.Indices[0]]
		v1 := ndc[tri.Indices[1]]
		v2 := ndc[tri.Indices[2]]

		if outsideClipVolume(v0, v1, v2) {
			continue
		}

		if state.CullFace && culled(signedArea(v0, v1, v2), state.Face) {
			continue
		}

		st := ScreenTriangle{
			TriangleID: id,
			Depth:      ((v0[2]+v1[2]+v2[2])/3 + 1) / 2,
		}

		for i, v := range [3]vector.Vector{v0, v1, v2} {
			x, y := camera.ToWindow(v)
			st.X[i] = float32(x)
			st.Y[i] = float32(y)
		}

		tris = append(tris, st)

	}

	return tris

}

// ToWindow maps a point in normalized device coordinates to window coordinates in pixels, with Y pointing down.
func (camera *Camera) ToWindow(ndc vector.Vector) (float64, float64) {
	width, height := float64(camera.Width), float64(camera.Height)
	return (ndc[0] + 1) / 2 * width, (1 - ndc[1]) / 2 * height
}

// SortByDepth orders triangles from farthest to nearest, so drawing them in order leaves the nearest geometry on top.
// Triangles of equal depth keep their submission order.
func SortByDepth(tris []ScreenTriangle) {
	sort.SliceStable(tris, func(i, j int) bool {
		return tris[i].Depth > tris[j].Depth
	})
}

// signedArea returns twice the area of the triangle's projection onto the XY plane; it's positive when the vertices
// wind counter-clockwise with Y pointing up.
func signedArea(v0, v1, v2 vector.Vector) float64 {
	return (v1[0]-v0[0])*(v2[1]-v0[1]) - (v2[0]-v0[0])*(v1[1]-v0[1])
}

func culled(area float64, face Face) bool {
	switch face {
	case Back:
		return area <= 0
	case Front:
		return area > 0
	}
	return true
}

// outsideClipVolume returns true if all three vertices lie beyond the same face of the [-1, 1] cube.
func outsideClipVolume(v0, v1, v2 vector.Vector) bool {
	for axis := 0; axis < 3; axis++ {
		if v0[axis] < -1 && v1[axis] < -1 && v2[axis] < -1 {
			return true
		}
		if v0[axis] > 1 && v1[axis] > 1 && v2[axis] > 1 {
			return true
		}
	}
	return false
}
