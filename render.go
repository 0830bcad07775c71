package hellosphere

// Colors used by RenderScene.
var (
	BackgroundColor = NewColor(0, 0, 0, 1)
	SphereColor     = NewColor(1, 0, 0, 1)
)

// RenderScene draws one complete frame into gc and presents it. It keeps no state between calls, so every call issues
// the same sequence; it has to run every frame, as the back buffer is undefined after a swap.
func RenderScene(gc Context) {

	drawBackground(gc)

	gc.Color(SphereColor)
	drawSphereAtOrigin(gc)

	gc.SwapBuffers()

}

// drawBackground clears the frame and sets up the per-frame pipeline state. Depth testing and culling have to be on
// before any geometry is submitted.
func drawBackground(gc Context) {

	gc.ClearColor(BackgroundColor)

	// Clearing depth keeps geometry from the last frame from occluding this one.
	gc.Clear(ColorBufferBit | DepthBufferBit)

	gc.Enable(DepthTest)

	gc.Enable(CullFaceCap)
	gc.CullFace(Back)

}

func drawSphereAtOrigin(gc Context) {
	gc.SolidSphere(SphereRadius, SphereSlices, SphereStacks)
}
