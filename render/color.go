package render

import (
	"image/color"

	"github.com/lucasb-eyer/go-colorful"
)

// RGB is a colour with cairo-style channel values in [0, 1].
type RGB struct {
	R, G, B float64
}

// FallbackHighlight is used when no theme highlight colour is available.
var FallbackHighlight = RGB{0.9, 0.9, 0.9}

// NRGBA converts the colour to 8-bit with the given alpha in [0, 1].
func (c RGB) NRGBA(alpha float64) color.NRGBA {
	return color.NRGBA{
		R: clamp8(c.R * 255),
		G: clamp8(c.G * 255),
		B: clamp8(c.B * 255),
		A: clamp8(alpha * 255),
	}
}

// Scaled returns the colour with all channels multiplied by f and clamped.
func (c RGB) Scaled(f float64) RGB {
	return RGB{clamp1(c.R * f), clamp1(c.G * f), clamp1(c.B * f)}
}

// Lightened moves the colour towards white by f in [0, 1].
func (c RGB) Lightened(f float64) RGB {
	col := colorful.Color{R: c.R, G: c.G, B: c.B}
	blended := col.BlendRgb(colorful.Color{R: 1, G: 1, B: 1}, f)
	return RGB{blended.R, blended.G, blended.B}
}

// ContrastColor picks black or white, whichever reads better against c.
// The cutoff matches the overlay contract: channel sum above 1.5 (of a
// possible 3.0) gets black.
func (c RGB) ContrastColor() RGB {
	if c.R+c.G+c.B > 1.5 {
		return RGB{0, 0, 0}
	}
	return RGB{1, 1, 1}
}

// RGBFromBytes converts 8-bit channels to an RGB.
func RGBFromBytes(r, g, b uint8) RGB {
	return RGB{float64(r) / 255, float64(g) / 255, float64(b) / 255}
}

func clamp8(v float64) uint8 {
	if v <= 0 {
		return 0
	}
	if v >= 255 {
		return 255
	}
	return uint8(v + 0.5)
}

func clamp1(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

// HighlightSource supplies the host theme's highlight colour. The GUI layer
// resolves it from the live theme; tests and the headless demo use Fixed.
type HighlightSource interface {
	HighlightRGB() (RGB, bool)
}

// Fixed is a HighlightSource that always returns the same colour.
type Fixed RGB

func (f Fixed) HighlightRGB() (RGB, bool) { return RGB(f), true }

// ResolveHighlight queries src, falling back to FallbackHighlight when src is
// nil or cannot supply a colour.
func ResolveHighlight(src HighlightSource) RGB {
	if src == nil {
		return FallbackHighlight
	}
	if c, ok := src.HighlightRGB(); ok {
		return c
	}
	return FallbackHighlight
}
