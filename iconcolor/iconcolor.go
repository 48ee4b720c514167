// Package iconcolor derives a representative accent colour from an icon
// bitmap. Two extractors are provided: Backlight, a salience-weighted
// average used for the active-app background, and Average, a plain
// alpha-filtered mean.
package iconcolor

import (
	"image"
	"image/color"

	"github.com/lucasb-eyer/go-colorful"
)

// Neutral is returned when no pixel passes the alpha threshold, so callers
// never see a divide-by-zero turn into a black or garbage accent.
var Neutral = color.NRGBA{R: 128, G: 128, B: 128, A: 255}

// DefaultAlphaThreshold ignores mostly-transparent edge pixels, which would
// otherwise wash the average out towards the icon's anti-aliased fringe.
const DefaultAlphaThreshold = 200

// Average returns the mean colour of all pixels whose alpha is at least
// threshold. A fully transparent image yields Neutral.
func Average(img image.Image, threshold uint8) color.NRGBA {
	var rSum, gSum, bSum, n uint64
	bounds := img.Bounds()
	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			r, g, b, a := rgba8(img.At(x, y))
			if a < threshold {
				continue
			}
			rSum += uint64(r)
			gSum += uint64(g)
			bSum += uint64(b)
			n++
		}
	}
	if n == 0 {
		return Neutral
	}
	return color.NRGBA{
		R: uint8(rSum / n),
		G: uint8(gSum / n),
		B: uint8(bSum / n),
		A: 255,
	}
}

// Backlight returns a salience-weighted average: each sufficiently opaque
// pixel contributes in proportion to its saturation and value, so vivid
// regions dominate over grey or near-black ones. Icons with no saturated
// pixels at all degrade to the plain average, and an empty image to Neutral.
func Backlight(img image.Image) color.NRGBA {
	var rSum, gSum, bSum, wSum float64
	var seen bool
	bounds := img.Bounds()
	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			r, g, b, a := rgba8(img.At(x, y))
			if a < DefaultAlphaThreshold {
				continue
			}
			seen = true
			c := colorful.Color{R: float64(r) / 255, G: float64(g) / 255, B: float64(b) / 255}
			_, sat, val := c.Hsv()
			w := sat * val
			rSum += float64(r) * w
			gSum += float64(g) * w
			bSum += float64(b) * w
			wSum += w
		}
	}
	if wSum < 1e-6 {
		if !seen {
			return Neutral
		}
		return Average(img, DefaultAlphaThreshold)
	}
	return color.NRGBA{
		R: uint8(rSum/wSum + 0.5),
		G: uint8(gSum/wSum + 0.5),
		B: uint8(bSum/wSum + 0.5),
		A: 255,
	}
}

func rgba8(c color.Color) (r, g, b, a uint8) {
	r16, g16, b16, a16 := c.RGBA()
	if a16 == 0 {
		return 0, 0, 0, 0
	}
	// undo premultiplication so the average reflects source colours
	return uint8((r16 * 0xffff / a16) >> 8),
		uint8((g16 * 0xffff / a16) >> 8),
		uint8((b16 * 0xffff / a16) >> 8),
		uint8(a16 >> 8)
}
