package iconcolor

import (
	"image"
	"image/color"
	"testing"
)

func solid(w, h int, c color.NRGBA) *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.SetNRGBA(x, y, c)
		}
	}
	return img
}

func TestAverageUniform(t *testing.T) {
	want := color.NRGBA{R: 40, G: 120, B: 200, A: 255}
	got := Average(solid(8, 8, want), DefaultAlphaThreshold)
	if got != want {
		t.Errorf("uniform average = %v, want %v", got, want)
	}
}

func TestAverageRedAndBlack(t *testing.T) {
	img := image.NewNRGBA(image.Rect(0, 0, 2, 2))
	img.SetNRGBA(0, 0, color.NRGBA{R: 255, A: 255})
	img.SetNRGBA(1, 0, color.NRGBA{R: 255, A: 255})
	img.SetNRGBA(0, 1, color.NRGBA{A: 255})
	img.SetNRGBA(1, 1, color.NRGBA{A: 255})

	got := Average(img, DefaultAlphaThreshold)
	if got.R != 127 && got.R != 128 {
		t.Errorf("average red = %d, want 127 or 128", got.R)
	}
	if got.G != 0 || got.B != 0 {
		t.Errorf("average = %v, want green and blue at zero", got)
	}
}

func TestAverageSkipsTranslucentPixels(t *testing.T) {
	img := image.NewNRGBA(image.Rect(0, 0, 2, 1))
	img.SetNRGBA(0, 0, color.NRGBA{R: 200, A: 255})
	img.SetNRGBA(1, 0, color.NRGBA{B: 200, A: 100}) // below threshold

	got := Average(img, DefaultAlphaThreshold)
	if got.R != 200 || got.B != 0 {
		t.Errorf("average = %v, want only the opaque pixel counted", got)
	}
}

func TestAverageEmptyIsNeutral(t *testing.T) {
	img := image.NewNRGBA(image.Rect(0, 0, 4, 4))
	if got := Average(img, DefaultAlphaThreshold); got != Neutral {
		t.Errorf("transparent image average = %v, want %v", got, Neutral)
	}
}

func TestBacklightPrefersSaturated(t *testing.T) {
	// half vivid red, half mid grey: the weighted average should sit much
	// closer to red than the plain mean would
	img := image.NewNRGBA(image.Rect(0, 0, 4, 2))
	for x := 0; x < 4; x++ {
		img.SetNRGBA(x, 0, color.NRGBA{R: 255, A: 255})
		img.SetNRGBA(x, 1, color.NRGBA{R: 128, G: 128, B: 128, A: 255})
	}

	got := Backlight(img)
	if got.R < 230 {
		t.Errorf("backlight red = %d, want the vivid half to dominate", got.R)
	}
	if got.G > 40 {
		t.Errorf("backlight green = %d, want the grey half mostly discounted", got.G)
	}
}

func TestBacklightGreyFallsBackToAverage(t *testing.T) {
	grey := color.NRGBA{R: 90, G: 90, B: 90, A: 255}
	got := Backlight(solid(4, 4, grey))
	if got != grey {
		t.Errorf("grey-only backlight = %v, want the plain average %v", got, grey)
	}
}

func TestBacklightEmptyIsNeutral(t *testing.T) {
	img := image.NewNRGBA(image.Rect(0, 0, 4, 4))
	if got := Backlight(img); got != Neutral {
		t.Errorf("transparent image backlight = %v, want %v", got, Neutral)
	}
}
