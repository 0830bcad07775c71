package ebitenkit

import (
	"image/color"
	"log/slog"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/solarlune/hellosphere"
)

// MaxTriangleCount is the most triangles submitted in a single DrawTriangles() call, keeping vertex indices within
// 16 bits.
const MaxTriangleCount = 21845

// surface is what a Window draws into; *ebiten.Image satisfies it.
type surface interface {
	Fill(clr color.Color)
	DrawTriangles(vertices []ebiten.Vertex, indices []uint16, img *ebiten.Image, options *ebiten.DrawTrianglesOptions)
}

// queuedTriangle is a depth-tested triangle waiting for the end of the frame to be drawn in depth order.
type queuedTriangle struct {
	hellosphere.ScreenTriangle
	color hellosphere.Color
}

// Window is a hellosphere.Window drawing into Ebitengine images. With double buffering, drawing goes to the back
// image and SwapBuffers() exchanges it with the front one, which is what the screen shows; otherwise both are the same
// image.
type Window struct {
	id     int
	mode   hellosphere.DisplayMode
	camera *hellosphere.Camera

	front, back surface
	source      *ebiten.Image // Solid white texture triangles are colored from

	clearColor hellosphere.Color
	color      hellosphere.Color
	depthTest  bool
	cullFace   bool
	face       hellosphere.Face

	queue   []queuedTriangle
	meshes  map[[2]int]*hellosphere.Mesh
	batch   []queuedTriangle
	verts   []ebiten.Vertex
	indices []uint16
}

func newWindow(id int, mode hellosphere.DisplayMode, w, h int, front, back surface, source *ebiten.Image) *Window {

	if !mode.Has(hellosphere.DisplayDouble) {
		back = front
	}

	return &Window{
		id:         id,
		mode:       mode,
		camera:     hellosphere.NewCamera(w, h),
		front:      front,
		back:       back,
		source:     source,
		clearColor: hellosphere.NewColor(0, 0, 0, 0),
		color:      hellosphere.NewColor(1, 1, 1, 1),
		face:       hellosphere.Back,
		meshes:     map[[2]int]*hellosphere.Mesh{},
		verts:      make([]ebiten.Vertex, 0, MaxTriangleCount*3),
		indices:    make([]uint16, 0, MaxTriangleCount*3),
	}

}

// ID returns the window's identifier, starting from 1.
func (win *Window) ID() int {
	return win.id
}

func (win *Window) ClearColor(c hellosphere.Color) {
	win.clearColor = c
}

// Clear resets the selected buffers. Depth-tested geometry drawn so far is flushed before the depth buffer is
// cleared, and discarded if the color buffer is cleared along with it.
func (win *Window) Clear(mask hellosphere.ClearMask) {

	if mask&hellosphere.ColorBufferBit != 0 {
		win.queue = win.queue[:0]
		win.back.Fill(win.clearColor)
	}

	if mask&hellosphere.DepthBufferBit != 0 {
		win.flush()
	}

}

func (win *Window) Enable(capability hellosphere.Capability) {
	win.setCapability(capability, true)
}

func (win *Window) Disable(capability hellosphere.Capability) {
	win.setCapability(capability, false)
}

func (win *Window) setCapability(capability hellosphere.Capability, enabled bool) {
	switch capability {
	case hellosphere.DepthTest:
		win.depthTest = enabled
	case hellosphere.CullFaceCap:
		win.cullFace = enabled
	default:
		slog.Warn("unknown capability", "capability", capability)
	}
}

func (win *Window) CullFace(face hellosphere.Face) {
	win.face = face
}

func (win *Window) Color(c hellosphere.Color) {
	win.color = c
}

// depthTested returns if geometry should currently be ordered by depth; without a depth buffer it never is.
func (win *Window) depthTested() bool {
	return win.depthTest && win.mode.Has(hellosphere.DisplayDepth)
}

func (win *Window) SolidSphere(radius float64, slices, stacks int) {

	mesh, err := win.sphere(slices, stacks)
	if err != nil {
		slog.Debug("sphere not drawn", "err", err)
		return
	}

	tris := win.camera.Project(mesh, hellosphere.NewMatrix4Scale(radius, radius, radius), hellosphere.RasterState{
		CullFace: win.cullFace,
		Face:     win.face,
	})

	if win.depthTested() {
		for _, t := range tris {
			win.queue = append(win.queue, queuedTriangle{ScreenTriangle: t, color: win.color})
		}
		return
	}

	win.batch = win.batch[:0]
	for _, t := range tris {
		win.batch = append(win.batch, queuedTriangle{ScreenTriangle: t, color: win.color})
	}
	win.draw(win.batch)

}

// sphere returns the sphere tessellation for the given divisions, building it the first time it's asked for.
func (win *Window) sphere(slices, stacks int) (*hellosphere.Mesh, error) {

	key := [2]int{slices, stacks}

	if mesh, ok := win.meshes[key]; ok {
		return mesh, nil
	}

	mesh, err := hellosphere.NewSphere(slices, stacks)
	if err != nil {
		return nil, err
	}

	win.meshes[key] = mesh
	return mesh, nil

}

// SwapBuffers draws any depth-tested geometry still waiting, then presents the back buffer.
func (win *Window) SwapBuffers() {

	win.flush()

	if win.mode.Has(hellosphere.DisplayDouble) {
		win.front, win.back = win.back, win.front
	}

}

// flush draws queued depth-tested triangles from farthest to nearest.
func (win *Window) flush() {

	if len(win.queue) == 0 {
		return
	}

	// Queued triangles are renumbered by queue position, so each can find its color again after sorting.
	sorting := make([]hellosphere.ScreenTriangle, len(win.queue))
	for i, q := range win.queue {
		sorting[i] = q.ScreenTriangle
		sorting[i].TriangleID = i
	}

	hellosphere.SortByDepth(sorting)

	win.batch = win.batch[:0]
	for _, t := range sorting {
		win.batch = append(win.batch, queuedTriangle{ScreenTriangle: t, color: win.queue[t.TriangleID].color})
	}

	win.queue = win.queue[:0]

	win.draw(win.batch)

}

// draw rasterizes the triangles onto the back buffer in order, MaxTriangleCount at a time.
func (win *Window) draw(tris []queuedTriangle) {

	for start := 0; start < len(tris); start += MaxTriangleCount {

		end := start + MaxTriangleCount
		if end > len(tris) {
			end = len(tris)
		}

		win.verts = win.verts[:0]
		win.indices = win.indices[:0]

		for _, t := range tris[start:end] {

			r, g, b, a := t.color.R, t.color.G, t.color.B, t.color.A

			for i := 0; i < 3; i++ {
				win.indices = append(win.indices, uint16(len(win.verts)))
				win.verts = append(win.verts, ebiten.Vertex{
					DstX:   t.X[i],
					DstY:   t.Y[i],
					SrcX:   0.5,
					SrcY:   0.5,
					ColorR: r,
					ColorG: g,
					ColorB: b,
					ColorA: a,
				})
			}

		}

		win.back.DrawTriangles(win.verts, win.indices, win.source, nil)

	}

}
