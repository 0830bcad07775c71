//go:build glfw

package glfwkit

import (
	"log/slog"

	"github.com/go-gl/gl/v2.1/gl"
	"github.com/go-gl/glfw/v3.3/glfw"
	"github.com/solarlune/hellosphere"
)

// Window is a hellosphere.Window issuing OpenGL calls into a GLFW window's context.
type Window struct {
	id     int
	mode   hellosphere.DisplayMode
	glw    *glfw.Window
	meshes map[[2]int]*hellosphere.Mesh
}

func newWindow(id int, mode hellosphere.DisplayMode, glw *glfw.Window) *Window {
	return &Window{
		id:     id,
		mode:   mode,
		glw:    glw,
		meshes: map[[2]int]*hellosphere.Mesh{},
	}
}

func (win *Window) ID() int {
	return win.id
}

func (win *Window) ClearColor(c hellosphere.Color) {
	gl.ClearColor(c.R, c.G, c.B, c.A)
}

func (win *Window) Clear(mask hellosphere.ClearMask) {

	var bits uint32

	if mask&hellosphere.ColorBufferBit != 0 {
		bits |= gl.COLOR_BUFFER_BIT
	}

	if mask&hellosphere.DepthBufferBit != 0 {
		bits |= gl.DEPTH_BUFFER_BIT
	}

	gl.Clear(bits)

}

func glCapability(capability hellosphere.Capability) (uint32, bool) {
	switch capability {
	case hellosphere.DepthTest:
		return gl.DEPTH_TEST, true
	case hellosphere.CullFaceCap:
		return gl.CULL_FACE, true
	}
	slog.Warn("unknown capability", "capability", capability)
	return 0, false
}

func (win *Window) Enable(capability hellosphere.Capability) {
	if c, ok := glCapability(capability); ok {
		gl.Enable(c)
	}
}

func (win *Window) Disable(capability hellosphere.Capability) {
	if c, ok := glCapability(capability); ok {
		gl.Disable(c)
	}
}

func (win *Window) CullFace(face hellosphere.Face) {
	switch face {
	case hellosphere.Back:
		gl.CullFace(gl.BACK)
	case hellosphere.Front:
		gl.CullFace(gl.FRONT)
	case hellosphere.FrontAndBack:
		gl.CullFace(gl.FRONT_AND_BACK)
	}
}

func (win *Window) Color(c hellosphere.Color) {
	rgba := c.Array()
	gl.Color4fv(&rgba[0])
}

// SolidSphere submits the sphere's triangles in immediate mode, with each vertex's normal pointing away from the
// center.
func (win *Window) SolidSphere(radius float64, slices, stacks int) {

	key := [2]int{slices, stacks}

	mesh, ok := win.meshes[key]
	if !ok {
		var err error
		mesh, err = hellosphere.NewSphere(slices, stacks)
		if err != nil {
			slog.Debug("sphere not drawn", "err", err)
			return
		}
		win.meshes[key] = mesh
	}

	gl.Begin(gl.TRIANGLES)

	for _, tri := range mesh.Triangles {
		for _, v := range tri.Vertices() {
			gl.Normal3d(v[0], v[1], v[2])
			gl.Vertex3d(v[0]*radius, v[1]*radius, v[2]*radius)
		}
	}

	gl.End()

}

// SwapBuffers presents the back buffer; single-buffered windows just flush their pending commands.
func (win *Window) SwapBuffers() {

	if win.mode.Has(hellosphere.DisplayDouble) {
		win.glw.SwapBuffers()
		return
	}

	gl.Flush()

}
