package render

import (
	"image"
	"image/color"
	"image/draw"
	"math"

	xdraw "golang.org/x/image/draw"
	"golang.org/x/image/vector"
)

// circle-from-beziers control point offset
const kappa = 0.5522847498

// Canvas is the offscreen surface one icon frame is composited onto. All
// geometry passed to its methods is in logical units; the backing image is
// Scale times larger, so callers never deal with device pixels directly.
type Canvas struct {
	W, H  int // logical size
	Scale int
	img   *image.NRGBA
}

func NewCanvas(w, h, scale int) *Canvas {
	if scale < 1 {
		scale = 1
	}
	return &Canvas{
		W:     w,
		H:     h,
		Scale: scale,
		img:   image.NewNRGBA(image.Rect(0, 0, w*scale, h*scale)),
	}
}

// Image exposes the backing store for blitting onto the real drawable.
func (c *Canvas) Image() *image.NRGBA { return c.img }

// Clear resets every pixel to fully transparent.
func (c *Canvas) Clear() {
	for i := range c.img.Pix {
		c.img.Pix[i] = 0
	}
}

func (c *Canvas) dev(v float64) float32 {
	return float32(v * float64(c.Scale))
}

// fill rasterises the path traced by trace and composites col over the
// canvas. trace works in device coordinates (use c.dev).
func (c *Canvas) fill(col color.NRGBA, trace func(r *vector.Rasterizer)) {
	r := vector.NewRasterizer(c.img.Rect.Dx(), c.img.Rect.Dy())
	trace(r)
	r.Draw(c.img, c.img.Rect, image.NewUniform(col), image.Point{})
}

// FillRect fills the axis-aligned rectangle (x0,y0)-(x1,y1).
func (c *Canvas) FillRect(x0, y0, x1, y1 float64, col color.NRGBA) {
	c.fill(col, func(r *vector.Rasterizer) {
		r.MoveTo(c.dev(x0), c.dev(y0))
		r.LineTo(c.dev(x1), c.dev(y0))
		r.LineTo(c.dev(x1), c.dev(y1))
		r.LineTo(c.dev(x0), c.dev(y1))
		r.ClosePath()
	})
}

// FillPolygon fills the closed polygon described by pts (logical units,
// x/y pairs).
func (c *Canvas) FillPolygon(pts [][2]float64, col color.NRGBA) {
	if len(pts) < 3 {
		return
	}
	c.fill(col, func(r *vector.Rasterizer) {
		r.MoveTo(c.dev(pts[0][0]), c.dev(pts[0][1]))
		for _, p := range pts[1:] {
			r.LineTo(c.dev(p[0]), c.dev(p[1]))
		}
		r.ClosePath()
	})
}

func circlePath(r *vector.Rasterizer, cx, cy, rad float32) {
	k := rad * kappa
	r.MoveTo(cx+rad, cy)
	r.CubeTo(cx+rad, cy+k, cx+k, cy+rad, cx, cy+rad)
	r.CubeTo(cx-k, cy+rad, cx-rad, cy+k, cx-rad, cy)
	r.CubeTo(cx-rad, cy-k, cx-k, cy-rad, cx, cy-rad)
	r.CubeTo(cx+k, cy-rad, cx+rad, cy-k, cx+rad, cy)
	r.ClosePath()
}

// FillCircle fills a circle centred at (cx,cy).
func (c *Canvas) FillCircle(cx, cy, rad float64, col color.NRGBA) {
	c.fill(col, func(r *vector.Rasterizer) {
		circlePath(r, c.dev(cx), c.dev(cy), c.dev(rad))
	})
}

func roundedRectPath(r *vector.Rasterizer, x0, y0, x1, y1, rad float32) {
	if rad*2 > x1-x0 {
		rad = (x1 - x0) / 2
	}
	if rad*2 > y1-y0 {
		rad = (y1 - y0) / 2
	}
	k := rad * kappa
	r.MoveTo(x0+rad, y0)
	r.LineTo(x1-rad, y0)
	r.CubeTo(x1-rad+k, y0, x1, y0+rad-k, x1, y0+rad)
	r.LineTo(x1, y1-rad)
	r.CubeTo(x1, y1-rad+k, x1-rad+k, y1, x1-rad, y1)
	r.LineTo(x0+rad, y1)
	r.CubeTo(x0+rad-k, y1, x0, y1-rad+k, x0, y1-rad)
	r.LineTo(x0, y0+rad)
	r.CubeTo(x0, y0+rad-k, x0+rad-k, y0, x0+rad, y0)
	r.ClosePath()
}

// FillRoundedRect fills a rounded rectangle with corner radius rad.
func (c *Canvas) FillRoundedRect(x0, y0, x1, y1, rad float64, col color.NRGBA) {
	c.fill(col, func(r *vector.Rasterizer) {
		roundedRectPath(r, c.dev(x0), c.dev(y0), c.dev(x1), c.dev(y1), c.dev(rad))
	})
}

// StrokeRoundedRect draws a rounded-rectangle outline of the given line
// width by filling the ring between two rounded rects.
func (c *Canvas) StrokeRoundedRect(x0, y0, x1, y1, rad, width float64, col color.NRGBA) {
	c.fill(col, func(r *vector.Rasterizer) {
		roundedRectPath(r, c.dev(x0), c.dev(y0), c.dev(x1), c.dev(y1), c.dev(rad))
		// inner path wound the opposite way so only the ring has coverage
		innerRoundedRectPathReversed(r, c.dev(x0+width), c.dev(y0+width), c.dev(x1-width), c.dev(y1-width), c.dev(rad-width))
	})
}

func innerRoundedRectPathReversed(r *vector.Rasterizer, x0, y0, x1, y1, rad float32) {
	if x1 <= x0 || y1 <= y0 {
		return
	}
	if rad < 0 {
		rad = 0
	}
	if rad*2 > x1-x0 {
		rad = (x1 - x0) / 2
	}
	if rad*2 > y1-y0 {
		rad = (y1 - y0) / 2
	}
	k := rad * kappa
	r.MoveTo(x0+rad, y0)
	r.CubeTo(x0+rad-k, y0, x0, y0+rad-k, x0, y0+rad)
	r.LineTo(x0, y1-rad)
	r.CubeTo(x0, y1-rad+k, x0+rad-k, y1, x0+rad, y1)
	r.LineTo(x1-rad, y1)
	r.CubeTo(x1-rad+k, y1, x1, y1-rad+k, x1, y1-rad)
	r.LineTo(x1, y0+rad)
	r.CubeTo(x1, y0+rad-k, x1-rad+k, y0, x1-rad, y0)
	r.ClosePath()
}

// RadialDot draws a soft dot: solid core colour out to inner, fading to the
// edge colour at zero alpha by outer. Used by the default running indicator.
func (c *Canvas) RadialDot(cx, cy, inner, outer float64, core, edge RGB) {
	s := float64(c.Scale)
	cxd, cyd := cx*s, cy*s
	ind, outd := inner*s, outer*s
	minX := int(cxd - outd - 1)
	maxX := int(cxd + outd + 1)
	minY := int(cyd - outd - 1)
	maxY := int(cyd + outd + 1)
	b := c.img.Rect
	for y := max(minY, b.Min.Y); y <= min(maxY, b.Max.Y-1); y++ {
		for x := max(minX, b.Min.X); x <= min(maxX, b.Max.X-1); x++ {
			dx := float64(x) + 0.5 - cxd
			dy := float64(y) + 0.5 - cyd
			d := dx*dx + dy*dy
			var col RGB
			var a float64
			switch {
			case d <= ind*ind:
				col, a = core, 1
			case d <= outd*outd:
				t := (math.Sqrt(d) - ind) / (outd - ind)
				col = RGB{
					core.R + (edge.R-core.R)*t,
					core.G + (edge.G-core.G)*t,
					core.B + (edge.B-core.B)*t,
				}
				a = 1 - t
			default:
				continue
			}
			c.blendPixel(x, y, col, a)
		}
	}
}

// LinearFade fills the logical square (0,0)-(size,size) with col fading from
// full alpha at the panel edge to transparent at the far side.
func (c *Canvas) LinearFade(size int, orient Orientation, col RGB) {
	s := c.Scale
	n := size * s
	for y := 0; y < n; y++ {
		for x := 0; x < n; x++ {
			var t float64
			switch orient {
			case OrientRight:
				t = float64(x) / float64(n)
			case OrientLeft:
				t = float64(n-1-x) / float64(n)
			case OrientDown:
				t = float64(y) / float64(n)
			default: // OrientUp
				t = float64(n-1-y) / float64(n)
			}
			c.blendPixel(x, y, col, 1-t)
		}
	}
}

// blendPixel source-over composites col at alpha a onto one device pixel.
func (c *Canvas) blendPixel(x, y int, col RGB, a float64) {
	if a <= 0 || !(image.Point{x, y}).In(c.img.Rect) {
		return
	}
	i := c.img.PixOffset(x, y)
	p := c.img.Pix[i : i+4 : i+4]
	sa := a
	da := float64(p[3]) / 255
	outA := sa + da*(1-sa)
	if outA <= 0 {
		p[0], p[1], p[2], p[3] = 0, 0, 0, 0
		return
	}
	blend := func(sc float64, dc uint8) uint8 {
		v := (sc*sa + float64(dc)/255*da*(1-sa)) / outA
		return clamp8(v * 255)
	}
	p[0] = blend(col.R, p[0])
	p[1] = blend(col.G, p[1])
	p[2] = blend(col.B, p[2])
	p[3] = clamp8(outA * 255)
}

// DrawImage composites src over the canvas with its top-left corner at the
// logical point (dx,dy), modulated by alpha in [0, 1]. src is expected to be
// pre-scaled to device resolution.
func (c *Canvas) DrawImage(src image.Image, dx, dy float64, alpha float64) {
	if alpha <= 0 {
		return
	}
	off := image.Pt(int(c.dev(dx)), int(c.dev(dy)))
	r := src.Bounds().Sub(src.Bounds().Min).Add(off)
	if alpha >= 1 {
		draw.Draw(c.img, r, src, src.Bounds().Min, draw.Over)
		return
	}
	mask := image.NewUniform(color.Alpha{A: clamp8(alpha * 255)})
	draw.DrawMask(c.img, r, src, src.Bounds().Min, mask, image.Point{}, draw.Over)
}

// Lighten additively brightens every already-painted pixel by factor f.
// Transparent pixels stay transparent, so the effect follows the icon shape.
func (c *Canvas) Lighten(f float64) {
	pix := c.img.Pix
	for i := 0; i < len(pix); i += 4 {
		if pix[i+3] == 0 {
			continue
		}
		for j := 0; j < 3; j++ {
			v := int(pix[i+j]) + int(float64(pix[i+j])*f)
			if v > 255 {
				v = 255
			}
			pix[i+j] = uint8(v)
		}
	}
}

// Darken knocks back every painted pixel towards transparent black by factor
// f, the scroll-armed hover treatment.
func (c *Canvas) Darken(f float64) {
	keep := 1 - f
	pix := c.img.Pix
	for i := 0; i < len(pix); i += 4 {
		if pix[i+3] == 0 {
			continue
		}
		pix[i] = uint8(float64(pix[i]) * keep)
		pix[i+1] = uint8(float64(pix[i+1]) * keep)
		pix[i+2] = uint8(float64(pix[i+2]) * keep)
		pix[i+3] = uint8(float64(pix[i+3]) * keep)
	}
}

// DarkenRect is Darken limited to a logical-space rectangle.
func (c *Canvas) DarkenRect(x0, y0, x1, y1 float64, f float64) {
	c.FillRect(x0, y0, x1, y1, color.NRGBA{0, 0, 0, clamp8(f * 255)})
}

// ClearRect punches the logical-space rectangle back to transparent, the
// equivalent of a CLEAR compositing operator.
func (c *Canvas) ClearRect(x0, y0, x1, y1 float64) {
	r := image.Rect(int(c.dev(x0)), int(c.dev(y0)), int(c.dev(x1)), int(c.dev(y1))).Intersect(c.img.Rect)
	for y := r.Min.Y; y < r.Max.Y; y++ {
		i := c.img.PixOffset(r.Min.X, y)
		for x := r.Min.X; x < r.Max.X; x++ {
			c.img.Pix[i], c.img.Pix[i+1], c.img.Pix[i+2], c.img.Pix[i+3] = 0, 0, 0, 0
			i += 4
		}
	}
}

// CopyRegion duplicates the logical-space region at (sx,sy) of size (w,h)
// to (dx,dy). The source is snapshotted first, so overlapping regions and
// read-after-draw (the subway indicator) are safe.
func (c *Canvas) CopyRegion(sx, sy, w, h, dx, dy float64) {
	srcRect := image.Rect(int(c.dev(sx)), int(c.dev(sy)), int(c.dev(sx+w)), int(c.dev(sy+h))).Intersect(c.img.Rect)
	if srcRect.Empty() {
		return
	}
	tmp := image.NewNRGBA(srcRect.Sub(srcRect.Min))
	draw.Draw(tmp, tmp.Rect, c.img, srcRect.Min, draw.Src)
	dst := tmp.Rect.Add(image.Pt(int(c.dev(dx)), int(c.dev(dy))))
	draw.Draw(c.img, dst, tmp, image.Point{}, draw.Over)
}

// At returns the pixel at device coordinates (x, y).
func (c *Canvas) At(x, y int) color.NRGBA {
	return c.img.NRGBAAt(x, y)
}

// ScaleImage resamples src to w×h device pixels with bilinear filtering.
// Icon bitmaps are scaled once on assignment, not per frame.
func ScaleImage(src image.Image, w, h int) *image.NRGBA {
	dst := image.NewNRGBA(image.Rect(0, 0, w, h))
	xdraw.ApproxBiLinear.Scale(dst, dst.Rect, src, src.Bounds(), xdraw.Over, nil)
	return dst
}

