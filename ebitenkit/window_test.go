package ebitenkit

import (
	"image/color"
	"testing"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/solarlune/hellosphere"
	"github.com/solarlune/hellosphere/colors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeSurface records what's drawn into it instead of rasterizing.
type fakeSurface struct {
	name      string
	fills     []color.Color
	triangles [][]ebiten.Vertex
}

func (s *fakeSurface) Fill(clr color.Color) {
	s.fills = append(s.fills, clr)
	s.triangles = nil
}

func (s *fakeSurface) DrawTriangles(vertices []ebiten.Vertex, indices []uint16, img *ebiten.Image, options *ebiten.DrawTrianglesOptions) {
	for i := 0; i+2 < len(indices); i += 3 {
		s.triangles = append(s.triangles, []ebiten.Vertex{vertices[indices[i]], vertices[indices[i+1]], vertices[indices[i+2]]})
	}
}

func newTestWindow(mode hellosphere.DisplayMode) (*Window, *fakeSurface, *fakeSurface) {
	front := &fakeSurface{name: "front"}
	back := &fakeSurface{name: "back"}
	return newWindow(1, mode, hellosphere.WindowWidth, hellosphere.WindowHeight, front, back, nil), front, back
}

func TestWindowDoubleBuffered(t *testing.T) {

	win, front, back := newTestWindow(hellosphere.DefaultDisplayMode)

	hellosphere.RenderScene(win)

	// Everything went to the back buffer, which is now shown.
	assert.Empty(t, front.fills)
	assert.Equal(t, []color.Color{colors.Black()}, back.fills)
	assert.Len(t, back.triangles, 2*hellosphere.SphereSlices*(hellosphere.SphereStacks-1)/2)
	assert.Same(t, back, win.front)
	assert.Same(t, front, win.back)

	hellosphere.RenderScene(win)

	assert.Len(t, front.fills, 1)
	assert.Equal(t, len(back.triangles), len(front.triangles))
	assert.Same(t, front, win.front)

}

func TestWindowSingleBuffered(t *testing.T) {

	win, front, back := newTestWindow(hellosphere.DisplayRGBA | hellosphere.DisplayDepth)

	hellosphere.RenderScene(win)
	hellosphere.RenderScene(win)

	assert.Len(t, front.fills, 2)
	assert.NotEmpty(t, front.triangles)
	assert.Empty(t, back.fills)
	assert.Same(t, front, win.front)
	assert.Same(t, front, win.back)

}

func TestWindowSphereColor(t *testing.T) {

	win, _, back := newTestWindow(hellosphere.DefaultDisplayMode)

	hellosphere.RenderScene(win)

	require.NotEmpty(t, back.triangles)
	for _, tri := range back.triangles {
		for _, v := range tri {
			assert.Equal(t, [4]float32{1, 0, 0, 1}, [4]float32{v.ColorR, v.ColorG, v.ColorB, v.ColorA})
		}
	}

}

func TestWindowDepthOrder(t *testing.T) {

	win, _, back := newTestWindow(hellosphere.DefaultDisplayMode)

	win.Clear(hellosphere.ColorBufferBit | hellosphere.DepthBufferBit)
	win.Enable(hellosphere.DepthTest)

	// Without culling both hemispheres are drawn; the depth test has to put the near one (-Z) last.
	win.SolidSphere(0.5, 8, 4)
	assert.Empty(t, back.triangles, "depth-tested geometry waits for the end of the frame")

	win.SwapBuffers()
	require.Len(t, back.triangles, 2*8*3)

	first := averageY(back.triangles[0])
	last := averageY(back.triangles[len(back.triangles)-1])
	assert.NotEqual(t, first, last)

	mesh, err := hellosphere.NewSphere(8, 4)
	require.NoError(t, err)
	tris := win.camera.Project(mesh, hellosphere.NewMatrix4Scale(0.5, 0.5, 0.5), hellosphere.RasterState{})
	hellosphere.SortByDepth(tris)
	assert.Equal(t, tris[0].Y[0], back.triangles[0][0].DstY)
	assert.Equal(t, tris[len(tris)-1].Y[0], back.triangles[len(back.triangles)-1][0].DstY)

}

func TestWindowWithoutDepthBuffer(t *testing.T) {

	win, front, _ := newTestWindow(hellosphere.DisplayRGBA)

	win.Enable(hellosphere.DepthTest)
	win.SolidSphere(0.5, 8, 4)

	// Without a depth buffer, depth testing does nothing and geometry is drawn immediately.
	assert.Len(t, front.triangles, 2*8*3)

}

func TestWindowColorClearDiscardsQueue(t *testing.T) {

	win, _, back := newTestWindow(hellosphere.DefaultDisplayMode)

	win.Enable(hellosphere.DepthTest)
	win.SolidSphere(0.5, 8, 4)
	win.Clear(hellosphere.ColorBufferBit)
	win.SwapBuffers()

	assert.Empty(t, back.triangles)

}

func TestWindowInvalidSphere(t *testing.T) {

	win, _, back := newTestWindow(hellosphere.DisplayRGBA | hellosphere.DisplayDouble)

	win.SolidSphere(0.25, 2, 50)
	win.SolidSphere(0.25, 50, 1)

	assert.Empty(t, back.triangles)
	assert.Empty(t, win.meshes)

}

func TestWindowBatchesLargeMeshes(t *testing.T) {

	win, _, back := newTestWindow(hellosphere.DisplayRGBA | hellosphere.DisplayDouble)

	// 2 * 200 * 99 triangles is more than one batch.
	win.SolidSphere(0.25, 200, 100)
	assert.Len(t, back.triangles, 2*200*99)

}

func averageY(tri []ebiten.Vertex) float32 {
	return (tri[0].DstY + tri[1].DstY + tri[2].DstY) / 3
}
