package hellosphere

// hellosphere opens a single window and draws a static red sphere into it, once per frame, for as long as the
// process lives. The drawing is expressed against a small immediate-mode graphics interface (Context), and the
// window is set up through a GLUT-shaped Toolkit, so backends (Ebitengine, GLFW + OpenGL) can be swapped freely.

// Window settings.
const (
	WindowTitle  = "Hello, Sphere!"
	WindowWidth  = 500
	WindowHeight = 500

	// WindowX and WindowY are the screen coordinates of the window's top-left corner; (0, 0) is the top-left of the
	// screen and Y increases downward.
	WindowX = 200
	WindowY = 100
)

// Sphere settings, in NDC units with identity modelview and projection matrices.
const (
	SphereRadius = 0.25
	SphereSlices = 50 // Longitudinal divisions
	SphereStacks = 50 // Latitudinal divisions
)

// DisplayMode is a set of flags describing the framebuffer a window should be created with.
type DisplayMode uint

const (
	DisplayRGBA   DisplayMode = 1 << iota // Red, green, blue and alpha color channels
	DisplayDouble                         // Separate front and back buffers, exchanged by SwapBuffers()
	DisplayDepth                          // A depth buffer for depth testing
)

// DefaultDisplayMode is the display mode the sphere window is created with.
const DefaultDisplayMode = DisplayDepth | DisplayDouble | DisplayRGBA

// Has returns if all flags in other are set in the DisplayMode.
func (mode DisplayMode) Has(other DisplayMode) bool {
	return mode&other == other
}

func (mode DisplayMode) String() string {

	str := ""

	for _, f := range []struct {
		flag DisplayMode
		name string
	}{
		{DisplayRGBA, "RGBA"},
		{DisplayDouble, "DOUBLE"},
		{DisplayDepth, "DEPTH"},
	} {
		if mode.Has(f.flag) {
			if str != "" {
				str += "|"
			}
			str += f.name
		}
	}

	if str == "" {
		return "NONE"
	}

	return str

}
