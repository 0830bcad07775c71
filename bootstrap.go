package hellosphere

import (
	"fmt"
	"log/slog"
)

// Bootstrap initializes the toolkit with args, creates the sphere window and registers RenderScene as both its display
// and idle callback. It doesn't enter the event loop.
func Bootstrap(tk Toolkit, args []string) (Window, error) {

	rest, err := tk.Init(args)
	if err != nil {
		return nil, fmt.Errorf("hellosphere: toolkit init: %w", err)
	}

	if len(rest) > 1 {
		slog.Debug("ignoring arguments", "args", rest[1:])
	}

	tk.InitDisplayMode(DefaultDisplayMode)
	tk.InitWindowSize(WindowWidth, WindowHeight)
	tk.InitWindowPosition(WindowX, WindowY)

	win, err := tk.CreateWindow(WindowTitle)
	if err != nil {
		return nil, fmt.Errorf("hellosphere: create window: %w", err)
	}

	slog.Info(fmt.Sprintf("Window with ID %d opened successfully.", win.ID()), "id", win.ID())

	render := func() { RenderScene(win) }

	tk.DisplayFunc(render)
	tk.IdleFunc(render)

	return win, nil

}

// Run bootstraps the sphere window and then blocks in the toolkit's event loop until the window is closed.
func Run(tk Toolkit, args []string) error {

	if _, err := Bootstrap(tk, args); err != nil {
		return err
	}

	return tk.MainLoop()

}
