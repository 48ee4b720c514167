package render

import "testing"

// bright reports whether a pixel is close to full white.
func bright(c *Canvas, x, y int) bool {
	p := c.At(x, y)
	return p.A > 0 && p.R > 200 && p.G > 200 && p.B > 200
}

func TestProgressBarHalfFill(t *testing.T) {
	c := NewCanvas(64, 64, 1)
	accent := RGB{0.8, 0.3, 0.2} // dark accent, white contrast fill
	DrawProgressBar(c, 64, 0.5, accent)

	// interior runs x 10..54 through the bar's vertical centre; at half
	// progress the white fill must end at 32, give or take a pixel
	boundary := -1
	for x := 12; x <= 50; x++ {
		if bright(c, x, 56) {
			boundary = x
		}
	}
	if boundary < 30 || boundary > 33 {
		t.Errorf("half fill ends at x=%d, want 32 within a pixel", boundary)
	}
}

func TestProgressBarEmptyAndFull(t *testing.T) {
	accent := RGB{0.8, 0.3, 0.2}

	empty := NewCanvas(64, 64, 1)
	DrawProgressBar(empty, 64, 0, accent)
	for x := 12; x <= 50; x++ {
		if bright(empty, x, 56) {
			t.Fatalf("zero progress painted fill at x=%d", x)
		}
	}

	full := NewCanvas(64, 64, 1)
	DrawProgressBar(full, 64, 1, accent)
	if !bright(full, 50, 56) {
		t.Error("full progress did not reach the interior's far end")
	}
}

func TestProgressBarClampsValue(t *testing.T) {
	over := NewCanvas(64, 64, 1)
	DrawProgressBar(over, 64, 1.7, RGB{0.8, 0.3, 0.2})
	under := NewCanvas(64, 64, 1)
	DrawProgressBar(under, 64, -0.3, RGB{0.8, 0.3, 0.2})

	if !bright(over, 50, 56) {
		t.Error("overlong value should clamp to a full bar")
	}
	if bright(under, 20, 56) {
		t.Error("negative value should clamp to an empty bar")
	}
}

func TestCountBadgeUpperRight(t *testing.T) {
	c := NewCanvas(64, 64, 1)
	DrawCountBadge(c, 64, 3, RGB{0.2, 0.4, 0.8})

	if got := c.At(54, 10); got.A == 0 {
		t.Error("count badge missing from the upper-right corner")
	}
	if got := c.At(10, 10); got.A != 0 {
		t.Errorf("count badge bled into the upper-left corner: %v", got)
	}
	if got := c.At(32, 50); got.A != 0 {
		t.Errorf("count badge painted outside its corner: %v", got)
	}
}

func TestAttentionBadgeUpperLeft(t *testing.T) {
	c := NewCanvas(64, 64, 1)
	DrawAttentionBadge(c, 64, RGB{0.2, 0.4, 0.8})

	if got := c.At(10, 10); got.A == 0 {
		t.Error("attention badge missing from the upper-left corner")
	}
	if got := c.At(54, 10); got.A != 0 {
		t.Errorf("attention badge bled into the upper-right corner: %v", got)
	}
}

func TestScrollArrowDirections(t *testing.T) {
	none := NewCanvas(64, 64, 1)
	DrawScrollArrow(none, 64, ScrollNone)
	if got := none.At(32, 32); got.A != 0 {
		t.Errorf("no arrow requested but pixel painted: %v", got)
	}

	up := NewCanvas(64, 64, 1)
	DrawScrollArrow(up, 64, ScrollUp)
	// the up arrow's apex sits above centre, its base below
	if !bright(up, 32, 30) {
		t.Error("up arrow apex missing above centre")
	}

	down := NewCanvas(64, 64, 1)
	DrawScrollArrow(down, 64, ScrollDown)
	if !bright(down, 32, 34) {
		t.Error("down arrow apex missing below centre")
	}
}
