package appicon

import (
	"image"
	"image/color"
	"testing"

	"dockbar/render"
	"dockbar/wm"
)

func testOpts() Options {
	return Options{
		Indicator:  render.IndLight,
		Background: render.BgGradient,
		Size:       48,
		Orient:     render.OrientUp,
		Scale:      1,
	}
}

func newTestCompositor(opts Options, win wm.App, redraws *int) *Compositor {
	m := NewModel(Application{ID: "term", Name: "Terminal"}, win)
	return NewCompositor(m, opts, func() {
		if redraws != nil {
			*redraws++
		}
	})
}

func redIcon() *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, 32, 32))
	for y := 0; y < 32; y++ {
		for x := 0; x < 32; x++ {
			img.SetNRGBA(x, y, color.NRGBA{R: 230, G: 20, B: 20, A: 255})
		}
	}
	return img
}

func TestBoolMutatorRequestsOneRedraw(t *testing.T) {
	var redraws int
	c := newTestCompositor(testOpts(), nil, &redraws)

	c.SetMouseOver(true)
	c.SetMouseOver(true)
	if redraws != 1 {
		t.Errorf("redraw requests = %d, want 1", redraws)
	}

	c.Redraw()
	c.SetMouseOver(true) // unchanged, no new request
	if redraws != 1 {
		t.Errorf("redraw requests after no-op = %d, want 1", redraws)
	}
	c.SetMouseOver(false)
	if redraws != 2 {
		t.Errorf("redraw requests after real change = %d, want 2", redraws)
	}
}

func TestValueMutatorNoOpGuards(t *testing.T) {
	var redraws int
	c := newTestCompositor(testOpts(), nil, &redraws)
	c.Redraw()

	c.SetProgressValue(0.4)
	c.Redraw()
	c.SetProgressValue(0.4)
	if redraws != 1 {
		t.Errorf("redraw requests = %d, want 1", redraws)
	}

	c.SetCounterValue(2)
	c.Redraw()
	c.SetCounterValue(2)
	if redraws != 2 {
		t.Errorf("redraw requests = %d, want 2", redraws)
	}
}

func TestRedrawCoalescing(t *testing.T) {
	var redraws int
	c := newTestCompositor(testOpts(), nil, &redraws)

	c.SetMouseOver(true)
	c.SetCounterVisible(true)
	c.SetCounterValue(3)
	if redraws != 1 {
		t.Errorf("requests while dirty = %d, want the first only", redraws)
	}
	if !c.Dirty() {
		t.Error("compositor should be dirty before Redraw")
	}
	c.Redraw()
	if c.Dirty() {
		t.Error("Redraw should clear the dirty flag")
	}
}

func TestGeometrySettersIgnoreNoOps(t *testing.T) {
	var redraws int
	c := newTestCompositor(testOpts(), nil, &redraws)

	c.SetDrawingSize(48, render.OrientUp) // construction values
	c.SetScaleFactor(1)
	if redraws != 0 {
		t.Errorf("redraw requests for unchanged geometry = %d, want 0", redraws)
	}
	c.SetDrawingSize(64, render.OrientUp)
	if redraws != 1 {
		t.Errorf("redraw requests after resize = %d, want 1", redraws)
	}
}

func TestNoIndicatorWhileStopped(t *testing.T) {
	c := newTestCompositor(testOpts(), nil, nil)
	img := c.Redraw()

	// the icon sits inset from the panel edge; with the app stopped the
	// edge rows must stay empty
	for x := 0; x < 48; x++ {
		if img.NRGBAAt(x, 46).A != 0 {
			t.Fatalf("indicator pixel at x=%d while app is stopped", x)
		}
	}
}

func TestIndicatorAppearsWhileRunning(t *testing.T) {
	c := newTestCompositor(testOpts(), wm.NewFakeApp(1), nil)
	img := c.Redraw()

	found := false
	for x := 0; x < 48 && !found; x++ {
		for y := 44; y < 48; y++ {
			if img.NRGBAAt(x, y).A != 0 {
				found = true
				break
			}
		}
	}
	if !found {
		t.Error("no indicator pixels on the panel edge for a running app")
	}
}

func TestCanvasSizeSubwayExtra(t *testing.T) {
	opts := testOpts()
	opts.Indicator = render.IndSubway

	c := newTestCompositor(opts, nil, nil)
	if w, h := c.CanvasSize(); w != 52 || h != 48 {
		t.Errorf("horizontal panel canvas = %dx%d, want 52x48", w, h)
	}

	c.SetDrawingSize(48, render.OrientRight)
	if w, h := c.CanvasSize(); w != 48 || h != 52 {
		t.Errorf("vertical panel canvas = %dx%d, want 48x52", w, h)
	}
}

func TestPulseHidesIconAtMidCycle(t *testing.T) {
	c := newTestCompositor(testOpts(), nil, nil)

	before := c.Redraw()
	if before.NRGBAAt(24, 24).A == 0 {
		t.Fatal("icon missing before the pulse")
	}

	c.beginPulse(true, "")
	for i := 0; i < 10; i++ {
		c.stepPulse()
	}
	mid := c.Redraw()
	if got := mid.NRGBAAt(24, 24); got.A != 0 {
		t.Errorf("icon visible at pulse midpoint: %v", got)
	}
}

func TestOneShotPulseStopsAfterOneCycle(t *testing.T) {
	c := newTestCompositor(testOpts(), nil, nil)
	c.beginPulse(true, "")

	for i := 1; i < 20; i++ {
		if !c.stepPulse() {
			t.Fatalf("pulse stopped early at step %d", i)
		}
	}
	if c.stepPulse() {
		t.Error("one-shot pulse survived past a full cycle")
	}
	if c.Pulsing() {
		t.Error("pulsing flag still set after the cycle ended")
	}
}

func TestStartupPulseLoopsWhilePending(t *testing.T) {
	c := newTestCompositor(testOpts(), nil, nil)
	pending := true
	c.startupPending = func(id string) bool { return pending && id == "sn-1" }
	cancelled := ""
	c.cancelStartup = func(id string) { cancelled = id }

	c.beginPulse(false, "sn-1")
	for i := 0; i < 20; i++ {
		if !c.stepPulse() {
			t.Fatal("pulse stopped while startup was still pending")
		}
	}
	if !c.Pulsing() {
		t.Fatal("pulse should loop into a second cycle")
	}

	pending = false
	for i := 0; i < 20; i++ {
		c.stepPulse()
	}
	if c.Pulsing() {
		t.Error("pulse still running after the startup handshake resolved")
	}

	c.finishPulse()
	if cancelled != "sn-1" {
		t.Errorf("startup notification cancelled for %q, want sn-1", cancelled)
	}
}

func TestAttentionBlinkStopsOneTickLate(t *testing.T) {
	c := newTestCompositor(testOpts(), nil, nil)

	c.setNeedsAttention(true)
	if !c.blinkAttention() {
		t.Fatal("blink reported done while attention is wanted")
	}
	c.setNeedsAttention(false)
	if c.blinkAttention() {
		t.Error("blink should report done on the first tick after clearing")
	}
	c.finishAttention()

	img := c.Redraw()
	if img.NRGBAAt(24, 24).A == 0 {
		t.Error("icon not restored after the blink finished")
	}
}

func TestBlinkOffFrameHidesIcon(t *testing.T) {
	c := newTestCompositor(testOpts(), nil, nil)
	c.setNeedsAttention(true)
	c.blinkAttention() // toggles to the off phase

	img := c.Redraw()
	if got := img.NRGBAAt(24, 24); got.A != 0 {
		t.Errorf("icon visible during the blink off phase: %v", got)
	}
}

func TestAttentionBadgeModeDrawsBadgeNotBlink(t *testing.T) {
	opts := testOpts()
	opts.AttentionBadge = true
	c := newTestCompositor(opts, nil, nil)
	c.setNeedsAttention(true)
	c.blinkAttention() // badge mode must ignore the off phase

	img := c.Redraw()
	if img.NRGBAAt(24, 24).A == 0 {
		t.Error("icon hidden although urgency is shown as a badge")
	}
	found := false
	for y := 2; y < 14 && !found; y++ {
		for x := 2; x < 14; x++ {
			if img.NRGBAAt(x, y).A != 0 {
				found = true
				break
			}
		}
	}
	if !found {
		t.Error("attention badge missing from the upper-left corner")
	}
}

func TestSetIconNilKeepsLastGood(t *testing.T) {
	c := newTestCompositor(testOpts(), nil, nil)
	c.SetIcon(redIcon())
	want := c.HighlightColor()

	c.SetIcon(nil)
	if got := c.HighlightColor(); got != want {
		t.Errorf("highlight after nil icon = %v, want the previous %v", got, want)
	}
	if img := c.Redraw(); img.NRGBAAt(24, 24).R < 200 {
		t.Error("previous icon bitmap not kept after a nil update")
	}
}

func TestSetIconNilWithoutHistoryUsesPlaceholder(t *testing.T) {
	c := newTestCompositor(testOpts(), nil, nil)
	c.SetIcon(nil)

	img := c.Redraw()
	if got := img.NRGBAAt(24, 24); got.A == 0 {
		t.Error("placeholder icon missing after a nil update with no history")
	}
}

// failingApp blows up on the running-state query, standing in for a window
// layer fault mid-frame.
type failingApp struct{}

func (failingApp) IsRunning() bool      { panic("window layer gone") }
func (failingApp) Windows() []wm.Window { return nil }

func TestRedrawSurvivesDrawFault(t *testing.T) {
	opts := testOpts()
	opts.Indicator = render.IndSubway
	c := newTestCompositor(opts, failingApp{}, nil)

	// no previous frame exists, so the degraded frame must still match
	// the full canvas including the subway strip
	img := c.Redraw()
	if img == nil {
		t.Fatal("Redraw returned nil after a draw fault")
	}
	if b := img.Bounds(); b.Dx() != 52 || b.Dy() != 48 {
		t.Errorf("degraded frame = %dx%d, want 52x48", b.Dx(), b.Dy())
	}
}

func TestRedrawFaultReturnsPreviousFrame(t *testing.T) {
	c := newTestCompositor(testOpts(), wm.NewFakeApp(1), nil)
	good := c.Redraw()

	c.model.Win = failingApp{}
	c.SetMouseOver(true)
	got := c.Redraw()
	if got != good {
		t.Error("draw fault should fall back to the previous composited frame")
	}
}

func TestDrageeSuppressesEverything(t *testing.T) {
	opts := testOpts()
	c := newTestCompositor(opts, wm.NewFakeApp(2), nil)
	c.SetDragee(true)

	img := c.Redraw()
	for y := 0; y < 48; y++ {
		for x := 0; x < 48; x++ {
			if img.NRGBAAt(x, y).A != 0 {
				t.Fatalf("dragged icon painted pixel at (%d,%d)", x, y)
			}
		}
	}
}
