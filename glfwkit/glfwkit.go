//go:build glfw

package glfwkit

// package glfwkit implements hellosphere.Toolkit with GLFW windows and the OpenGL 2.1 fixed-function pipeline, so
// every hellosphere.Context call maps onto the matching OpenGL call. Build with -tags glfw.

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"runtime"

	"github.com/go-gl/gl/v2.1/gl"
	"github.com/go-gl/glfw/v3.3/glfw"
	"github.com/solarlune/hellosphere"
)

// ErrWindowExists is returned by CreateWindow() once a window has been created.
var ErrWindowExists = errors.New("glfwkit: only one window is supported")

// ErrNoWindow is returned by MainLoop() when no window has been created.
var ErrNoWindow = errors.New("glfwkit: no window created")

func init() {
	// GLFW event handling and the GL context must stay on the main thread.
	runtime.LockOSThread()
}

// Toolkit is a hellosphere.Toolkit backed by GLFW.
type Toolkit struct {
	Options hellosphere.ToolkitOptions

	mode                hellosphere.DisplayMode
	width, height, x, y int
	positioned          bool
	edgeRelative        bool

	window  *Window
	context hellosphere.Window

	display, idle func()
	redisplay     bool
}

// New returns a new Toolkit with GLUT's defaults: a 300x300 single-buffered RGBA window placed by the window manager.
func New() *Toolkit {
	return &Toolkit{
		mode:   hellosphere.DisplayRGBA,
		width:  300,
		height: 300,
	}
}

// Init parses the toolkit arguments and initializes GLFW.
func (tk *Toolkit) Init(args []string) ([]string, error) {

	opts, rest, err := hellosphere.ParseToolkitArgs(args)
	if err != nil {
		return nil, err
	}

	tk.Options = opts

	if opts.Display != "" {
		if err := os.Setenv("DISPLAY", opts.Display); err != nil {
			return nil, fmt.Errorf("glfwkit: setting display: %w", err)
		}
	}

	if opts.HasWidth {
		tk.width = opts.Width
	}

	if opts.HasHeight {
		tk.height = opts.Height
	}

	if opts.HasPosition() {
		tk.x, tk.y, tk.positioned = opts.X, opts.Y, true
		tk.edgeRelative = opts.EdgeRelative()
	}

	if opts.GLDebug {
		hellosphere.LogLevel.Set(slog.LevelDebug)
	}

	if err := glfw.Init(); err != nil {
		return nil, fmt.Errorf("glfwkit: failed to initialize glfw: %w", err)
	}

	return rest, nil

}

func (tk *Toolkit) InitDisplayMode(mode hellosphere.DisplayMode) {
	tk.mode = mode
}

func (tk *Toolkit) InitWindowSize(width, height int) {
	tk.width, tk.height = width, height
}

func (tk *Toolkit) InitWindowPosition(x, y int) {
	tk.x, tk.y, tk.positioned = x, y, true
	tk.edgeRelative = false
}

// windowPosition returns where the window's top-left corner goes. -geometry offsets measured from the right or bottom
// edge are resolved against the size screenSize returns.
func (tk *Toolkit) windowPosition(screenSize func() (int, int)) (int, int) {
	if !tk.edgeRelative {
		return tk.x, tk.y
	}
	w, h := screenSize()
	return tk.Options.Position(w, h, tk.width, tk.height)
}

func primaryScreenSize() (int, int) {
	monitor := glfw.GetPrimaryMonitor()
	if monitor == nil {
		return 0, 0
	}
	mode := monitor.GetVideoMode()
	return mode.Width, mode.Height
}

// CreateWindow creates the window with a legacy OpenGL 2.1 context and makes it current.
func (tk *Toolkit) CreateWindow(title string) (hellosphere.Window, error) {

	if tk.window != nil {
		return nil, ErrWindowExists
	}

	glfw.DefaultWindowHints()
	glfw.WindowHint(glfw.ContextVersionMajor, 2)
	glfw.WindowHint(glfw.ContextVersionMinor, 1)

	if tk.mode.Has(hellosphere.DisplayDepth) {
		glfw.WindowHint(glfw.DepthBits, 24)
	} else {
		glfw.WindowHint(glfw.DepthBits, 0)
	}

	if tk.mode.Has(hellosphere.DisplayDouble) {
		glfw.WindowHint(glfw.DoubleBuffer, glfw.True)
	} else {
		glfw.WindowHint(glfw.DoubleBuffer, glfw.False)
	}

	if tk.mode.Has(hellosphere.DisplayRGBA) {
		glfw.WindowHint(glfw.RedBits, 8)
		glfw.WindowHint(glfw.GreenBits, 8)
		glfw.WindowHint(glfw.BlueBits, 8)
		glfw.WindowHint(glfw.AlphaBits, 8)
	}

	if tk.positioned {
		// Shown after it's been moved, so it doesn't jump.
		glfw.WindowHint(glfw.Visible, glfw.False)
	}

	glw, err := glfw.CreateWindow(tk.width, tk.height, title, nil, nil)
	if err != nil {
		return nil, fmt.Errorf("glfwkit: glfw.CreateWindow failed: %w", err)
	}

	if tk.positioned {
		glw.SetPos(tk.windowPosition(primaryScreenSize))
		glw.Show()
	}

	if tk.Options.Iconic {
		glw.Iconify()
	}

	glw.MakeContextCurrent()

	if err := gl.Init(); err != nil {
		glw.Destroy()
		return nil, fmt.Errorf("glfwkit: gl.Init failed: %w", err)
	}

	glw.SetRefreshCallback(func(*glfw.Window) {
		tk.redisplay = true
	})

	glw.SetFramebufferSizeCallback(func(_ *glfw.Window, w, h int) {
		gl.Viewport(0, 0, int32(w), int32(h))
		tk.redisplay = true
	})

	tk.window = newWindow(1, tk.mode, glw)
	tk.context = tk.window

	if tk.Options.GLDebug {
		tk.context = hellosphere.NewTracedWindow(tk.window, slog.Default())
	}

	tk.redisplay = true

	return tk.context, nil

}

func (tk *Toolkit) DisplayFunc(fn func()) {
	tk.display = fn
}

func (tk *Toolkit) IdleFunc(fn func()) {
	tk.idle = fn
}

// MainLoop processes window events and runs the callbacks until the window is asked to close, then terminates GLFW.
func (tk *Toolkit) MainLoop() error {

	if tk.window == nil {
		return ErrNoWindow
	}

	defer glfw.Terminate()

	glw := tk.window.glw

	for !glw.ShouldClose() {

		if tk.idle != nil {
			glfw.PollEvents()
		} else {
			glfw.WaitEvents()
		}

		if tk.redisplay {
			tk.redisplay = false
			if tk.display != nil {
				tk.display()
			}
		}

		if tk.idle != nil {
			tk.idle()
		}

	}

	glw.Destroy()

	return nil

}
