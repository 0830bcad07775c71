package hellosphere_test

import (
	"bytes"
	"log/slog"
	"strings"
	"testing"

	"github.com/solarlune/hellosphere"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestLogger(buf *bytes.Buffer, level slog.Level) *slog.Logger {
	return slog.New(slog.NewTextHandler(buf, &slog.HandlerOptions{Level: level}))
}

func logLines(buf *bytes.Buffer) []string {
	out := strings.TrimSpace(buf.String())
	if out == "" {
		return nil
	}
	return strings.Split(out, "\n")
}

func TestTracedWindow(t *testing.T) {

	var buf bytes.Buffer

	inner := &fakeWindow{Recorder: hellosphere.NewRecorder(nil, nil), id: 7}
	traced := hellosphere.NewTracedWindow(inner, newTestLogger(&buf, slog.LevelDebug))

	assert.Equal(t, 7, traced.ID())

	hellosphere.RenderScene(traced)
	hellosphere.RenderScene(traced)

	// Everything reaches the wrapped window, and the wrapper keeps nothing once a frame is swapped.
	assert.Equal(t, append(append([]string{}, frameOps...), frameOps...), inner.Ops())
	assert.Empty(t, traced.Calls)

	lines := logLines(&buf)
	require.Len(t, lines, 2*len(frameOps))
	assert.Contains(t, lines[0], `msg=gl`)
	assert.Contains(t, lines[0], `call="ClearColor(0, 0, 0, 1)"`)
	assert.Contains(t, lines[6], `call="SolidSphere(0.25, 50, 50)"`)
	assert.Contains(t, lines[15], `call=SwapBuffers()`)

}

func TestTracedWindowKeepsUnswappedCalls(t *testing.T) {

	inner := &fakeWindow{Recorder: hellosphere.NewRecorder(nil, nil), id: 1}
	traced := hellosphere.NewTracedWindow(inner, nil)

	traced.ClearColor(hellosphere.BackgroundColor)
	traced.Clear(hellosphere.ColorBufferBit)

	assert.Equal(t, []string{"ClearColor", "Clear"}, traced.Ops())
	assert.Equal(t, []string{"ClearColor", "Clear"}, inner.Ops())

	traced.SwapBuffers()

	assert.Empty(t, traced.Calls)
	assert.Equal(t, []string{"ClearColor", "Clear", "SwapBuffers"}, inner.Ops())

}

func TestRecorderLogsAtDebugOnly(t *testing.T) {

	var buf bytes.Buffer

	rec := hellosphere.NewRecorder(nil, newTestLogger(&buf, slog.LevelInfo))
	hellosphere.RenderScene(rec)

	assert.Len(t, rec.Calls, len(frameOps))
	assert.Empty(t, logLines(&buf))

}
