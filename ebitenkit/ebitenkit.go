package ebitenkit

// package ebitenkit implements hellosphere.Toolkit on top of Ebitengine. Ebitengine runs one window per process, so
// only one window can be created.

import (
	"errors"
	"fmt"
	"log/slog"
	"os"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/solarlune/hellosphere"
	"github.com/solarlune/hellosphere/colors"
)

// ErrWindowExists is returned by CreateWindow() once a window has been created.
var ErrWindowExists = errors.New("ebitenkit: only one window is supported")

// ErrNoWindow is returned by MainLoop() when no window has been created.
var ErrNoWindow = errors.New("ebitenkit: no window created")

// Toolkit is a hellosphere.Toolkit backed by Ebitengine's game loop.
type Toolkit struct {
	Options hellosphere.ToolkitOptions

	mode                hellosphere.DisplayMode
	width, height, x, y int
	positioned          bool
	edgeRelative        bool

	window  *Window
	context hellosphere.Window // window, or a traced wrapper around it

	display, idle func()
	redisplay     bool
	started       bool
}

// New returns a new Toolkit with GLUT's defaults: a 300x300 single-buffered RGBA window placed by the window manager.
func New() *Toolkit {
	return &Toolkit{
		mode:   hellosphere.DisplayRGBA,
		width:  300,
		height: 300,
	}
}

func (tk *Toolkit) Init(args []string) ([]string, error) {

	opts, rest, err := hellosphere.ParseToolkitArgs(args)
	if err != nil {
		return nil, err
	}

	tk.Options = opts

	if opts.Display != "" {
		// The window system reads DISPLAY when it starts, which is not before RunGame().
		if err := os.Setenv("DISPLAY", opts.Display); err != nil {
			return nil, fmt.Errorf("ebitenkit: setting display: %w", err)
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

	if opts.Sync || !opts.Direct {
		slog.Debug("ebitenkit: -sync and -indirect have no effect")
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

func (tk *Toolkit) CreateWindow(title string) (hellosphere.Window, error) {

	if tk.window != nil {
		return nil, ErrWindowExists
	}

	ebiten.SetWindowTitle(title)
	ebiten.SetWindowSize(tk.width, tk.height)
	if tk.positioned {
		ebiten.SetWindowPosition(tk.windowPosition(ebiten.ScreenSizeInFullscreen))
	}
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)

	// The idle callback has to keep running when the window isn't focused.
	ebiten.SetRunnableOnUnfocused(true)

	source := ebiten.NewImage(1, 1)
	source.Fill(colors.White())

	var back surface
	if tk.mode.Has(hellosphere.DisplayDouble) {
		back = ebiten.NewImage(tk.width, tk.height)
	}

	tk.window = newWindow(1, tk.mode, tk.width, tk.height, ebiten.NewImage(tk.width, tk.height), back, source)
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

// PostRedisplay marks the window as needing its display callback run before the next frame is shown. The toolkit posts
// one itself whenever the window is resized.
func (tk *Toolkit) PostRedisplay() {
	tk.redisplay = true
}

// MainLoop runs Ebitengine's game loop until the window is closed.
func (tk *Toolkit) MainLoop() error {

	if tk.window == nil {
		return ErrNoWindow
	}

	if err := ebiten.RunGame(newGame(tk)); err != nil {
		return fmt.Errorf("ebitenkit: %w", err)
	}

	return nil

}

// game adapts the Toolkit's callbacks to ebiten.Game.
type game struct {
	toolkit *Toolkit

	present  func(screen *ebiten.Image, front surface) // shows the front buffer on the screen
	minimize func()

	outsideWidth, outsideHeight int
}

func newGame(tk *Toolkit) *game {
	return &game{
		toolkit:  tk,
		present:  presentImage,
		minimize: ebiten.MinimizeWindow,
	}
}

func presentImage(screen *ebiten.Image, front surface) {
	if img, ok := front.(*ebiten.Image); ok {
		screen.DrawImage(img, nil)
	}
}

func (g *game) Update() error {

	tk := g.toolkit

	if !tk.started {
		tk.started = true
		if tk.Options.Iconic {
			g.minimize()
		}
	}

	if tk.idle != nil {
		tk.idle()
	}

	return nil

}

func (g *game) Draw(screen *ebiten.Image) {

	tk := g.toolkit

	if tk.redisplay {
		tk.redisplay = false
		if tk.display != nil {
			tk.display()
		}
	}

	g.present(screen, tk.window.front)

}

// Layout keeps the framebuffer at the size the window was created with; Ebitengine scales it to the window. A change
// in the window's size posts a redisplay, as a reshape does.
func (g *game) Layout(outsideWidth, outsideHeight int) (int, int) {

	if outsideWidth != g.outsideWidth || outsideHeight != g.outsideHeight {
		if g.outsideWidth != 0 || g.outsideHeight != 0 {
			g.toolkit.PostRedisplay()
		}
		g.outsideWidth, g.outsideHeight = outsideWidth, outsideHeight
	}

	return g.toolkit.width, g.toolkit.height

}
