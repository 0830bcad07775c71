package hellosphere

import "fmt"

// ClearMask selects the buffers Context.Clear() resets.
type ClearMask uint

const (
	ColorBufferBit ClearMask = 1 << iota // Reset every pixel to the clear color
	DepthBufferBit                       // Reset every pixel's depth to the farthest value
)

func (mask ClearMask) String() string {
	switch mask {
	case ColorBufferBit:
		return "COLOR_BUFFER_BIT"
	case DepthBufferBit:
		return "DEPTH_BUFFER_BIT"
	case ColorBufferBit | DepthBufferBit:
		return "COLOR_BUFFER_BIT|DEPTH_BUFFER_BIT"
	case 0:
		return "0"
	}
	return fmt.Sprintf("ClearMask(%d)", uint(mask))
}

// Capability is a pipeline feature that can be turned on and off through Context.Enable() and Context.Disable().
type Capability int

const (
	DepthTest   Capability = iota // Nearer geometry occludes farther geometry drawn in the same frame
	CullFaceCap                   // Faces selected through Context.CullFace() are discarded
)

func (capability Capability) String() string {
	switch capability {
	case DepthTest:
		return "DEPTH_TEST"
	case CullFaceCap:
		return "CULL_FACE"
	}
	return fmt.Sprintf("Capability(%d)", int(capability))
}

// Face selects which polygon faces are culled. A face is a front face if its vertices wind counter-clockwise on screen.
type Face int

const (
	Back Face = iota
	Front
	FrontAndBack
)

func (face Face) String() string {
	switch face {
	case Back:
		return "BACK"
	case Front:
		return "FRONT"
	case FrontAndBack:
		return "FRONT_AND_BACK"
	}
	return fmt.Sprintf("Face(%d)", int(face))
}

// Context is the immediate-mode graphics interface the frame renderer draws through. Calls take effect in the order
// they're made; state set by one call (colors, capabilities) persists until changed.
type Context interface {
	ClearColor(c Color)
	Clear(mask ClearMask)
	Enable(capability Capability)
	Disable(capability Capability)
	CullFace(face Face)
	Color(c Color)
	// SolidSphere draws a sphere of the given radius centered at the origin, tessellated into slices around the Z axis
	// and stacks along it. Invalid tessellation draws nothing.
	SolidSphere(radius float64, slices, stacks int)
	// SwapBuffers presents the back buffer. Afterwards the back buffer's contents are undefined.
	SwapBuffers()
}

// Window is an on-screen window, drawn to through its Context.
type Window interface {
	Context
	ID() int
}

// Toolkit creates windows and runs the event loop that drives their callbacks.
type Toolkit interface {
	// Init consumes the toolkit's own flags from args and returns what remains, in order.
	Init(args []string) ([]string, error)
	InitDisplayMode(mode DisplayMode)
	InitWindowSize(width, height int)
	InitWindowPosition(x, y int)
	CreateWindow(title string) (Window, error)
	// DisplayFunc sets the function called whenever the window needs to be redrawn.
	DisplayFunc(fn func())
	// IdleFunc sets the function called whenever the event loop has nothing else to do.
	IdleFunc(fn func())
	// MainLoop blocks, dispatching callbacks, until the window is closed. It returns nil on normal termination.
	MainLoop() error
}
