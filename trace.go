package hellosphere

import (
	"fmt"
	"log/slog"
	"strings"
)

// LogLevel is the level the program's log handler filters at. Toolkits lower it to debug for -gldebug.
var LogLevel = new(slog.LevelVar)

// Call is a single recorded Context call.
type Call struct {
	Op   string
	Args []any
}

func (call Call) String() string {
	args := make([]string, len(call.Args))
	for i, a := range call.Args {
		args[i] = fmt.Sprint(a)
	}
	return call.Op + "(" + strings.Join(args, ", ") + ")"
}

// Recorder is a Context that records every call made to it, optionally logging each one and forwarding it to another
// Context.
type Recorder struct {
	Calls  []Call
	Inner  Context      // If set, calls are forwarded here after being recorded
	Logger *slog.Logger // If set, calls are logged at debug level
}

// NewRecorder returns a new Recorder forwarding to inner, which can be nil.
func NewRecorder(inner Context, logger *slog.Logger) *Recorder {
	return &Recorder{
		Inner:  inner,
		Logger: logger,
	}
}

// Reset forgets all recorded calls.
func (rec *Recorder) Reset() {
	rec.Calls = rec.Calls[:0]
}

// Ops returns the names of the recorded calls, in order.
func (rec *Recorder) Ops() []string {
	ops := make([]string, len(rec.Calls))
	for i, c := range rec.Calls {
		ops[i] = c.Op
	}
	return ops
}

func (rec *Recorder) record(op string, args ...any) {
	call := Call{Op: op, Args: args}
	rec.Calls = append(rec.Calls, call)
	if rec.Logger != nil {
		rec.Logger.Debug("gl", "call", call.String())
	}
}

func (rec *Recorder) ClearColor(c Color) {
	rec.record("ClearColor", c.R, c.G, c.B, c.A)
	if rec.Inner != nil {
		rec.Inner.ClearColor(c)
	}
}

func (rec *Recorder) Clear(mask ClearMask) {
	rec.record("Clear", mask)
	if rec.Inner != nil {
		rec.Inner.Clear(mask)
	}
}

func (rec *Recorder) Enable(capability Capability) {
	rec.record("Enable", capability)
	if rec.Inner != nil {
		rec.Inner.Enable(capability)
	}
}

func (rec *Recorder) Disable(capability Capability) {
	rec.record("Disable", capability)
	if rec.Inner != nil {
		rec.Inner.Disable(capability)
	}
}

func (rec *Recorder) CullFace(face Face) {
	rec.record("CullFace", face)
	if rec.Inner != nil {
		rec.Inner.CullFace(face)
	}
}

func (rec *Recorder) Color(c Color) {
	rec.record("Color", c.R, c.G, c.B, c.A)
	if rec.Inner != nil {
		rec.Inner.Color(c)
	}
}

func (rec *Recorder) SolidSphere(radius float64, slices, stacks int) {
	rec.record("SolidSphere", radius, slices, stacks)
	if rec.Inner != nil {
		rec.Inner.SolidSphere(radius, slices, stacks)
	}
}

func (rec *Recorder) SwapBuffers() {
	rec.record("SwapBuffers")
	if rec.Inner != nil {
		rec.Inner.SwapBuffers()
	}
}

// TracedWindow wraps a Window so every call made through it is logged at debug level before being forwarded.
type TracedWindow struct {
	*Recorder
	window Window
}

// NewTracedWindow returns a new TracedWindow around win. The wrapper doesn't keep its history, only logs it.
func NewTracedWindow(win Window, logger *slog.Logger) *TracedWindow {
	return &TracedWindow{
		Recorder: NewRecorder(win, logger),
		window:   win,
	}
}

func (tw *TracedWindow) ID() int {
	return tw.window.ID()
}

// SwapBuffers forwards the swap and drops the frame's history, so a long-running traced window doesn't grow.
func (tw *TracedWindow) SwapBuffers() {
	tw.Recorder.SwapBuffers()
	tw.Recorder.Reset()
}
