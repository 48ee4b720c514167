package appicon

import (
	"image"

	"dockbar/animate"
	"dockbar/iconcolor"
	"dockbar/log"
	"dockbar/render"
)

// Options are the per-dock rendering choices, read once at startup and
// shared by every compositor.
type Options struct {
	Indicator      render.IndicatorStyle
	Background     render.BackgroundStyle
	AttentionBadge bool   // urgency as a badge instead of blinking
	MultiInd       bool   // one marker per open window
	Workspace      string // non-empty: count only this workspace's windows
	Size           int
	Orient         render.Orientation
	Scale          int
	Highlight      render.HighlightSource
}

// visualState is the mutually-observable per-app flag set the renderer
// reads. Opacity precedence when several suppressors are set at once is
// pulse > attention > drag, enforced by the redraw switch.
type visualState struct {
	active         bool
	hasMouse       bool
	dragee         bool
	pulsing        bool
	pulseStep      int
	needsAttention bool
	blinkOn        bool
	showProgress   bool
	progress       float64
	showCount      bool
	count          int
	scrollDir      render.ScrollDirection
}

const (
	iconInset      = 3    // icon offset for the default backgrounds
	unityIconScale = 0.75 // icon shrink inside unity tiles
	fillAlpha      = 0.5  // BgAlphaFill opacity
	hoverLighten   = 0.2
	scrollDarken   = 0.5
)

// Compositor owns everything needed to draw one app's icon: visual state,
// the offscreen double buffer, the scaled icon bitmap and its extracted
// accent colour. All methods run on the UI loop; Redraw never runs twice
// concurrently for the same app.
type Compositor struct {
	model *Model
	opts  Options
	st    visualState

	size   int
	orient render.Orientation
	scale  int

	rawIcon   image.Image
	icon      *image.NRGBA // rawIcon scaled for the current geometry
	iconW     int          // device size icon was scaled for, 0 = stale
	highlight render.RGB

	back, front *render.Canvas

	// launch-pulse bookkeeping
	pulseOneShot bool
	startupID    string
	// collaborator hooks, wired by the dock
	startupPending func(id string) bool
	cancelStartup  func(id string)

	queueRedraw func()
	dirty       bool

	bx, by, bw, bh int // allocated bounds for drag hit-testing
}

// NewCompositor builds a compositor for model. queueRedraw is the host's
// redraw request; it must be cheap and may be called many times per frame.
func NewCompositor(model *Model, opts Options, queueRedraw func()) *Compositor {
	if opts.Scale < 1 {
		opts.Scale = 1
	}
	if opts.Size < 16 {
		opts.Size = 16
	}
	c := &Compositor{
		model:       model,
		opts:        opts,
		size:        opts.Size,
		orient:      opts.Orient,
		scale:       opts.Scale,
		highlight:   render.RGBFromBytes(iconcolor.Neutral.R, iconcolor.Neutral.G, iconcolor.Neutral.B),
		queueRedraw: queueRedraw,
	}
	c.st.blinkOn = true
	return c
}

func (c *Compositor) Model() *Model { return c.model }

// SetIcon stores the app's icon bitmap and recomputes the accent colour.
// A nil bitmap keeps the last known good icon, or a neutral placeholder if
// there never was one; rendering always proceeds.
func (c *Compositor) SetIcon(img image.Image) {
	if img == nil {
		if c.rawIcon == nil {
			log.IconFallback(c.model.App.Name, nil)
		}
	} else {
		c.rawIcon = img
	}
	src := c.rawIcon
	if src == nil {
		src = placeholderIcon()
		c.rawIcon = src
	}
	ext := iconcolor.Backlight(src)
	c.highlight = render.RGBFromBytes(ext.R, ext.G, ext.B)
	c.iconW = 0 // force rescale
	c.requestRedraw()
}

// HighlightColor is the accent colour extracted from the current icon.
func (c *Compositor) HighlightColor() render.RGB { return c.highlight }

// SetDrawingSize sets the logical icon size and panel orientation. The
// canvas gains the active indicator style's extra space beside the icon on
// horizontal panels and below it on vertical ones.
func (c *Compositor) SetDrawingSize(size int, orient render.Orientation) {
	if size == c.size && orient == c.orient {
		return
	}
	c.size = size
	c.orient = orient
	c.iconW = 0
	c.requestRedraw()
}

// SetScaleFactor updates the device-pixel scale.
func (c *Compositor) SetScaleFactor(scale int) {
	if scale < 1 {
		scale = 1
	}
	if scale == c.scale {
		return
	}
	c.scale = scale
	c.iconW = 0
	c.requestRedraw()
}

// CanvasSize returns the logical canvas dimensions including indicator
// extra space.
func (c *Compositor) CanvasSize() (w, h int) {
	extra := c.opts.Indicator.ExtraSpace()
	if c.orient.Vertical() {
		return c.size, c.size + extra
	}
	return c.size + extra, c.size
}

// state mutators; each is a no-op when the value does not change, so
// duplicate events never trigger duplicate redraws.

func (c *Compositor) SetActive(v bool)    { c.setBool(&c.st.active, v) }
func (c *Compositor) SetMouseOver(v bool) { c.setBool(&c.st.hasMouse, v) }
func (c *Compositor) SetDragee(v bool)    { c.setBool(&c.st.dragee, v) }

func (c *Compositor) SetCounterVisible(v bool)  { c.setBool(&c.st.showCount, v) }
func (c *Compositor) SetProgressVisible(v bool) { c.setBool(&c.st.showProgress, v) }

func (c *Compositor) SetCounterValue(n int) {
	if n == c.st.count {
		return
	}
	c.st.count = n
	c.requestRedraw()
}

func (c *Compositor) SetProgressValue(v float64) {
	if v < 0 {
		v = 0
	}
	if v > 1 {
		v = 1
	}
	if v == c.st.progress {
		return
	}
	c.st.progress = v
	c.requestRedraw()
}

func (c *Compositor) SetScrollDirection(d render.ScrollDirection) {
	if d == c.st.scrollDir {
		return
	}
	c.st.scrollDir = d
	c.requestRedraw()
}

func (c *Compositor) setBool(field *bool, v bool) {
	if *field == v {
		return
	}
	*field = v
	c.requestRedraw()
}

// SetAllocatedBounds records the compositor's placement in the host
// container for drag-and-drop hit testing.
func (c *Compositor) SetAllocatedBounds(x, y, w, h int) {
	c.bx, c.by, c.bw, c.bh = x, y, w, h
}

// AllocatedBounds returns the last placement set by the host.
func (c *Compositor) AllocatedBounds() (x, y, w, h int) {
	return c.bx, c.by, c.bw, c.bh
}

func (c *Compositor) requestRedraw() {
	if c.dirty {
		return
	}
	c.dirty = true
	if c.queueRedraw != nil {
		c.queueRedraw()
	}
}

// Dirty reports whether state changed since the last Redraw.
func (c *Compositor) Dirty() bool { return c.dirty }

// Redraw composites one frame onto the offscreen canvas and returns it for
// the host to blit. It never fails: a panic in a drawing step is trapped
// and the previous frame (or an empty one) returned instead.
func (c *Compositor) Redraw() (out *image.NRGBA) {
	defer func() {
		if r := recover(); r != nil {
			log.Errorf("redraw %s: %v", c.model.App.Name, r)
			if c.front != nil {
				out = c.front.Image()
			} else {
				w, h := c.CanvasSize()
				out = image.NewNRGBA(image.Rect(0, 0, w*c.scale, h*c.scale))
			}
		}
	}()

	c.dirty = false
	w, h := c.CanvasSize()
	if c.back == nil || c.back.W != w || c.back.H != h || c.back.Scale != c.scale {
		c.back = render.NewCanvas(w, h, c.scale)
	} else {
		c.back.Clear()
	}
	cv := c.back

	st := &c.st
	unity := c.opts.Background.AlwaysDrawn()

	// 1. background
	var bg render.Background
	if !st.dragee && (unity || st.active) {
		bg = render.NewBackground(c.opts.Background, render.BackgroundParams{
			Size:    c.size,
			Orient:  c.orient,
			Color:   c.highlight,
			Alpha:   fillAlpha,
			Running: c.model.IsRunning(),
		})
		bg.Draw(cv)
	}

	// 2. icon opacity by state precedence
	alpha := 1.0
	shine := true
	switch {
	case st.pulsing:
		alpha = animate.PulseAlpha(st.pulseStep)
		shine = false
	case st.needsAttention && !c.opts.AttentionBadge && !st.blinkOn:
		alpha = 0
		shine = false
	case st.dragee:
		alpha = 0
		shine = false
	}

	// 3. icon bitmap
	if icon, ox, oy := c.scaledIcon(unity); icon != nil && alpha > 0 {
		cv.DrawImage(icon, ox, oy, alpha)
	}
	if shine && bg != nil {
		bg.DrawShine(cv)
	}

	// 4. hover feedback
	if st.hasMouse {
		if st.scrollDir == render.ScrollNone {
			cv.Lighten(hoverLighten)
		} else {
			cv.Darken(scrollDarken)
		}
	}

	// 5. running indicators
	if !st.dragee && c.opts.Indicator != render.IndNone && c.model.IsRunning() {
		if ind := render.NewIndicator(c.opts.Indicator, render.IndicatorParams{
			Size:      c.size,
			Orient:    c.orient,
			Count:     c.indicatorCount(),
			Highlight: render.ResolveHighlight(c.opts.Highlight),
			Active:    st.active,
		}); ind != nil {
			ind.Draw(cv)
		}
	}

	// 6. overlays
	if st.showCount {
		render.DrawCountBadge(cv, c.size, st.count, c.highlight)
	}
	if st.showProgress {
		render.DrawProgressBar(cv, c.size, st.progress, c.highlight)
	}
	if c.opts.AttentionBadge && st.needsAttention {
		render.DrawAttentionBadge(cv, c.size, c.highlight)
	}
	if st.hasMouse && st.scrollDir != render.ScrollNone {
		render.DrawScrollArrow(cv, c.size, st.scrollDir)
	}

	// swap the double buffer
	c.front, c.back = c.back, c.front
	return c.front.Image()
}

// indicatorCount is the number of markers to draw: one unless the style
// tracks windows, else the visible-window count clamped to the maximum.
func (c *Compositor) indicatorCount() int {
	if !c.opts.MultiInd && c.opts.Indicator != render.IndSubway {
		return 1
	}
	if !c.opts.Indicator.MultiWindow() {
		return 1
	}
	n := c.model.WindowCount(c.opts.Workspace)
	if n > render.MaxIndicators {
		n = render.MaxIndicators
	}
	return n
}

// scaledIcon returns the icon bitmap scaled to the current geometry plus
// its logical placement offset.
func (c *Compositor) scaledIcon(unity bool) (*image.NRGBA, float64, float64) {
	if c.rawIcon == nil {
		c.rawIcon = placeholderIcon()
	}
	var logical int
	var inset float64
	if unity {
		logical = int(float64(c.size) * unityIconScale)
		inset = (float64(c.size) - float64(logical)) / 2
	} else {
		logical = c.size - 2*iconInset
		inset = iconInset
	}
	dev := logical * c.scale
	if dev < 1 {
		return nil, 0, 0
	}
	if c.icon == nil || c.iconW != dev {
		c.icon = render.ScaleImage(c.rawIcon, dev, dev)
		c.iconW = dev
	}
	return c.icon, inset, inset
}

// animation registry hooks, called by the dock on behalf of the timers

// beginPulse arms the pulse state. oneShot pulses run a single cycle; a
// pulse with a startup id loops until the handshake completes or the timer
// hits its ceiling.
func (c *Compositor) beginPulse(oneShot bool, startupID string) {
	c.pulseOneShot = oneShot
	c.startupID = startupID
	c.st.pulsing = true
	c.st.pulseStep = 0
	c.requestRedraw()
}

func (c *Compositor) stepPulse() bool {
	if !c.st.pulsing {
		return false
	}
	c.st.pulseStep++
	if c.st.pulseStep >= animate.PulseSteps {
		wait := !c.pulseOneShot && c.startupID != "" &&
			c.startupPending != nil && c.startupPending(c.startupID)
		if !wait {
			c.st.pulsing = false
		}
		c.st.pulseStep = 0
	}
	c.requestRedraw()
	return c.st.pulsing
}

func (c *Compositor) finishPulse() {
	c.st.pulsing = false
	c.st.pulseStep = 0
	if c.startupID != "" && c.cancelStartup != nil {
		c.cancelStartup(c.startupID)
	}
	c.startupID = ""
	c.requestRedraw()
}

// setNeedsAttention arms or clears the urgency flag; the dock starts the
// blink timer when it arms.
func (c *Compositor) setNeedsAttention(v bool) {
	if v == c.st.needsAttention {
		return
	}
	c.st.needsAttention = v
	if v {
		c.st.blinkOn = true
	}
	c.requestRedraw()
}

func (c *Compositor) blinkAttention() bool {
	if !c.st.needsAttention {
		return false
	}
	c.st.blinkOn = !c.st.blinkOn
	c.requestRedraw()
	return true
}

func (c *Compositor) finishAttention() {
	c.st.blinkOn = true
	c.requestRedraw()
}

// Pulsing reports whether the launch pulse is active.
func (c *Compositor) Pulsing() bool { return c.st.pulsing }

// NeedsAttention reports whether the urgency flag is set.
func (c *Compositor) NeedsAttention() bool { return c.st.needsAttention }

// placeholderIcon is drawn when an app's real icon cannot be loaded: a
// neutral tile that still gives backgrounds and indicators something to
// composite against.
func placeholderIcon() *image.NRGBA {
	const s = 48
	img := image.NewNRGBA(image.Rect(0, 0, s, s))
	for y := 2; y < s-2; y++ {
		for x := 2; x < s-2; x++ {
			i := img.PixOffset(x, y)
			img.Pix[i], img.Pix[i+1], img.Pix[i+2], img.Pix[i+3] = 128, 128, 128, 255
		}
	}
	return img
}
