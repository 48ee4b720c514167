package render

import (
	"image"
	"strconv"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
)

// ScrollDirection is the armed scroll affordance on a hovered icon.
type ScrollDirection int

const (
	ScrollNone ScrollDirection = iota
	ScrollUp
	ScrollDown
)

// Overlays lay out on a notional 64-unit square and are scaled to the actual
// icon size, so the geometry below never needs to know the real size.
const notionalSize = 64.0

// overlayUnit converts notional units to logical pixels for an icon of the
// given size.
func overlayUnit(size int) float64 {
	return float64(size) / notionalSize
}

// DrawCountBadge draws the window/count pill in the upper-right corner.
// The pill is sized to fit the digits of count within its height budget.
func DrawCountBadge(c *Canvas, size, count int, accent RGB) {
	drawBadge(c, size, strconv.Itoa(count), accent, false)
}

// DrawAttentionBadge draws the urgency pill, same geometry as the count
// badge but anchored upper-left and always containing "!".
func DrawAttentionBadge(c *Canvas, size int, accent RGB) {
	drawBadge(c, size, "!", accent, true)
}

func drawBadge(c *Canvas, size int, text string, accent RGB, left bool) {
	u := overlayUnit(size)
	const badgeH = 16.0 // notional pill height
	const textH = 10.0  // notional glyph height budget

	textW := textH * measureAspect(text)
	badgeW := textW + 8
	if badgeW < badgeH {
		badgeW = badgeH
	}

	var x0 float64
	if left {
		x0 = 2 * u
	} else {
		x0 = (notionalSize - 2 - badgeW) * u
	}
	y0 := 2 * u
	x1 := x0 + badgeW*u
	y1 := y0 + badgeH*u
	rad := badgeH / 2 * u

	contrast := accent.ContrastColor()
	c.FillRoundedRect(x0, y0, x1, y1, rad, accent.NRGBA(1))
	c.StrokeRoundedRect(x0, y0, x1, y1, rad, 1*u, contrast.NRGBA(1))

	tx := x0 + (badgeW-textW)/2*u
	ty := y0 + (badgeH-textH)/2*u
	drawText(c, text, tx, ty, textH*u, contrast)
}

// DrawProgressBar draws the bottom-anchored progress bar with its interior
// filled proportionally to val in [0, 1].
func DrawProgressBar(c *Canvas, size int, val float64, accent RGB) {
	if val < 0 {
		val = 0
	}
	if val > 1 {
		val = 1
	}
	u := overlayUnit(size)
	x0, y0 := 8*u, 52*u
	x1, y1 := 56*u, 60*u
	rad := 4 * u

	contrast := accent.ContrastColor()
	c.FillRoundedRect(x0, y0, x1, y1, rad, accent.NRGBA(1))
	c.StrokeRoundedRect(x0, y0, x1, y1, rad, 1*u, contrast.NRGBA(1))

	// interior inset by the notional border
	ix0, iy0 := x0+2*u, y0+2*u
	ix1, iy1 := x1-2*u, y1-2*u
	fillW := (ix1 - ix0) * val
	if fillW > 0 {
		c.FillRoundedRect(ix0, iy0, ix0+fillW, iy1, rad/2, contrast.NRGBA(1))
	}
}

// DrawScrollArrow draws the directional affordance shown while hovering a
// scrollable window group: a light arrow centred on the icon, pointing in
// the direction the group will cycle.
func DrawScrollArrow(c *Canvas, size int, dir ScrollDirection) {
	if dir == ScrollNone {
		return
	}
	u := overlayUnit(size)
	cx, cy := notionalSize/2*u, notionalSize/2*u
	const half = 10.0
	const depth = 8.0

	var pts [][2]float64
	if dir == ScrollUp {
		pts = [][2]float64{{cx - half*u, cy + depth/2*u}, {cx, cy - depth/2*u}, {cx + half*u, cy + depth/2*u}}
	} else {
		pts = [][2]float64{{cx - half*u, cy - depth/2*u}, {cx, cy + depth/2*u}, {cx + half*u, cy - depth/2*u}}
	}
	shadow := make([][2]float64, len(pts))
	for i, p := range pts {
		shadow[i] = [2]float64{p[0] + 1*u, p[1] + 1*u}
	}
	c.FillPolygon(shadow, RGB{0, 0, 0}.NRGBA(0.6))
	c.FillPolygon(pts, RGB{1, 1, 1}.NRGBA(0.9))
}

// measureAspect returns width/height of text rendered in the badge font.
func measureAspect(text string) float64 {
	face := basicfont.Face7x13
	w := font.MeasureString(face, text).Ceil()
	return float64(w) / float64(face.Height)
}

// drawText renders text with its top-left at logical (x, y), scaled so the
// glyph box is h logical pixels tall. The bitmap face is rendered once at
// its native size and resampled; badge digits are small enough that the
// softness reads as antialiasing.
func drawText(c *Canvas, text string, x, y, h float64, col RGB) {
	face := basicfont.Face7x13
	w := font.MeasureString(face, text).Ceil()
	if w == 0 {
		return
	}
	src := image.NewNRGBA(image.Rect(0, 0, w, face.Height))
	d := font.Drawer{
		Dst:  src,
		Src:  image.NewUniform(col.NRGBA(1)),
		Face: face,
		Dot:  fixed.P(0, face.Ascent),
	}
	d.DrawString(text)

	devH := int(float64(c.Scale)*h + 0.5)
	if devH < 1 {
		devH = 1
	}
	devW := devH * w / face.Height
	if devW < 1 {
		devW = 1
	}
	c.DrawImage(ScaleImage(src, devW, devH), x, y, 1)
}
