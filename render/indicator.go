package render

// IndicatorStyle selects how an app's running state is marked.
type IndicatorStyle int

const (
	IndLight IndicatorStyle = iota // radial dot, bright centre
	IndDark                        // radial dot, dark centre
	IndNone
	IndThemeBar      // full-edge bar in the theme highlight colour
	IndThemeCircle   // flat dots in the theme highlight colour
	IndThemeSquare   // flat squares
	IndThemeTriangle // flat triangles pointing at the icon
	IndThemeDiamond  // flat diamonds
	IndSubway        // metro-style bar that extends past the icon
)

var indicatorNames = map[string]IndicatorStyle{
	"light":    IndLight,
	"dark":     IndDark,
	"none":     IndNone,
	"bar":      IndThemeBar,
	"circle":   IndThemeCircle,
	"square":   IndThemeSquare,
	"triangle": IndThemeTriangle,
	"diamond":  IndThemeDiamond,
	"subway":   IndSubway,
}

// ParseIndicatorStyle maps a preference string to a style; unknown strings
// select the light default.
func ParseIndicatorStyle(s string) IndicatorStyle {
	if st, ok := indicatorNames[s]; ok {
		return st
	}
	return IndLight
}

func (s IndicatorStyle) String() string {
	for name, st := range indicatorNames {
		if st == s {
			return name
		}
	}
	return "light"
}

// ExtraSpace is the number of logical pixels of additional canvas the style
// needs beyond the icon square. Only the subway style extends the canvas.
func (s IndicatorStyle) ExtraSpace() int {
	if s == IndSubway {
		return 4
	}
	return 0
}

// MultiWindow reports whether the style draws one marker per window. The bar
// styles are binary running indicators regardless of window count.
func (s IndicatorStyle) MultiWindow() bool {
	switch s {
	case IndThemeBar, IndNone:
		return false
	}
	return true
}

// IndicatorParams carries everything an indicator needs for one frame.
// Count has already been clamped to [0, MaxIndicators] by the compositor.
type IndicatorParams struct {
	Size      int
	Orient    Orientation
	Count     int
	Highlight RGB
	Active    bool // subway only: whether the app owns the focused window
}

// MaxIndicators caps the markers drawn for many-windowed apps.
const MaxIndicators = 4

// Indicator draws running-state markers onto a canvas.
type Indicator interface {
	Draw(c *Canvas)
}

// NewIndicator returns the renderer for style, or nil for IndNone and for a
// zero count.
func NewIndicator(style IndicatorStyle, p IndicatorParams) Indicator {
	if p.Count <= 0 {
		return nil
	}
	if p.Count > MaxIndicators {
		p.Count = MaxIndicators
	}
	switch style {
	case IndLight:
		return &dotIndicator{p: p, core: RGB{0.9, 0.9, 0.9}, edge: RGB{0, 0, 0}}
	case IndDark:
		return &dotIndicator{p: p, core: RGB{0, 0, 0}, edge: RGB{0.9, 0.9, 0.9}}
	case IndThemeBar:
		return &barIndicator{p: p}
	case IndThemeCircle:
		return &shapeIndicator{p: p, shape: shapeCircle}
	case IndThemeSquare:
		return &shapeIndicator{p: p, shape: shapeSquare}
	case IndThemeTriangle:
		return &shapeIndicator{p: p, shape: shapeTriangle}
	case IndThemeDiamond:
		return &shapeIndicator{p: p, shape: shapeDiamond}
	case IndSubway:
		return &subwayIndicator{p: p}
	}
	return nil
}

// indicatorStep is the along-edge distance between markers for size s and
// count n, shared by every multi-marker style.
func indicatorStep(s, n int) float64 {
	return float64(s-6) / float64(n+1)
}

// dotIndicator is the default light/dark style: soft radial dots along the
// panel edge.
type dotIndicator struct {
	p          IndicatorParams
	core, edge RGB
}

func (d *dotIndicator) Draw(c *Canvas) {
	s := float64(d.p.Size)
	n := d.p.Count
	along := (s-4)/float64(n+1) + 2
	var x, y float64
	switch d.p.Orient {
	case OrientRight:
		x, y = 2, along
	case OrientLeft:
		x, y = s-1, along
	case OrientDown:
		x, y = along, 2
	default: // OrientUp
		x, y = along, s-1
	}
	step := indicatorStep(d.p.Size, n)
	for i := 0; i < n; i++ {
		c.RadialDot(x, y, 2, 4, d.core, d.edge)
		if d.p.Orient.Vertical() {
			y += step
		} else {
			x += step
		}
	}
}

// barIndicator runs a thin bar along the whole panel edge. It signals only
// that the app is running, never the window count.
type barIndicator struct {
	p IndicatorParams
}

// barRect returns the edge bar of thickness w for the given orientation.
func barRect(size int, orient Orientation, w float64) (x0, y0, x1, y1 float64) {
	s := float64(size)
	switch orient {
	case OrientRight:
		return 0.5, 0.5, w + 0.5, s - 0.5
	case OrientLeft:
		return s - w - 0.5, 0.5, s - 0.5, s - 0.5
	case OrientDown:
		return 0.5, 0.5, s - 0.5, w + 0.5
	default: // OrientUp
		return 0.5, s - w - 0.5, s - 0.5, s - 0.5
	}
}

func (b *barIndicator) Draw(c *Canvas) {
	x0, y0, x1, y1 := barRect(b.p.Size, b.p.Orient, 2)
	c.FillRect(x0, y0, x1, y1, b.p.Highlight.NRGBA(1))
}

type shapeKind int

const (
	shapeCircle shapeKind = iota
	shapeSquare
	shapeTriangle
	shapeDiamond
)

// shapeIndicator draws up to four flat theme-coloured shapes stacked along
// the panel edge.
type shapeIndicator struct {
	p     IndicatorParams
	shape shapeKind
}

func (si *shapeIndicator) Draw(c *Canvas) {
	s := float64(si.p.Size)
	n := si.p.Count
	col := si.p.Highlight.NRGBA(1)
	step := indicatorStep(si.p.Size, n)

	// centre of the first marker
	along := (s-4)/float64(n+1) + 2
	var cx, cy float64
	switch si.p.Orient {
	case OrientRight:
		cx, cy = 2, along
	case OrientLeft:
		cx, cy = s-2, along
	case OrientDown:
		cx, cy = along, 2
	default:
		cx, cy = along, s-2
	}

	for i := 0; i < n; i++ {
		switch si.shape {
		case shapeCircle:
			c.FillCircle(cx, cy, 2, col)
		case shapeSquare:
			c.FillRect(cx-1.5, cy-1.5, cx+1.5, cy+1.5, col)
		case shapeDiamond:
			c.FillPolygon([][2]float64{
				{cx, cy - 2}, {cx + 2, cy}, {cx, cy + 2}, {cx - 2, cy},
			}, col)
		case shapeTriangle:
			c.FillPolygon(trianglePoints(cx, cy, si.p.Orient), col)
		}
		if si.p.Orient.Vertical() {
			cy += step
		} else {
			cx += step
		}
	}
}

// trianglePoints builds a 4x3 triangle centred near (cx,cy) whose point
// always faces the icon, whatever edge the panel sits on.
func trianglePoints(cx, cy float64, orient Orientation) [][2]float64 {
	const w, h = 4.0, 3.0
	switch orient {
	case OrientRight: // panel at left, point faces right
		return [][2]float64{{cx - 1, cy - w / 2}, {cx - 1 + h, cy}, {cx - 1, cy + w / 2}}
	case OrientLeft: // point faces left
		return [][2]float64{{cx + 1, cy - w / 2}, {cx + 1 - h, cy}, {cx + 1, cy + w / 2}}
	case OrientDown: // panel at top, point faces down
		return [][2]float64{{cx - w / 2, cy - 1}, {cx, cy - 1 + h}, {cx + w / 2, cy - 1}}
	default: // panel at bottom, point faces up
		return [][2]float64{{cx - w / 2, cy + 1}, {cx, cy + 1 - h}, {cx + w / 2, cy + 1}}
	}
}

// subwayIndicator mimics the metro look: a theme bar for the first window,
// then either an extension of the icon's far edge into the extra canvas
// strip (app active) or a darkened tail with a separator (inactive). It
// reads already-composited pixels, so the compositor runs it last.
type subwayIndicator struct {
	p IndicatorParams
}

func (su *subwayIndicator) Draw(c *Canvas) {
	p := su.p
	s := float64(p.Size)
	x0, y0, x1, y1 := barRect(p.Size, p.Orient, 2)
	c.FillRect(x0, y0, x1, y1, p.Highlight.NRGBA(1))

	if p.Count <= 1 {
		return
	}
	if p.Active {
		// duplicate the trailing edge of the composited icon into the
		// extra strip so the bar appears to continue under the next slot
		if p.Orient.Vertical() {
			c.CopyRegion(0, s-4, s+1, 3, 0, s+1)
		} else {
			c.CopyRegion(s-4, 0, 3, s+1, s+1, 0)
		}
		return
	}
	// inactive: separator line through the bar, then darken the tail
	const tail = 5.0
	if p.Orient.Vertical() {
		c.ClearRect(x0, y1-tail, x1, y1-tail+1)
		c.DarkenRect(x0, y1-tail-1, x1, y1, 0.2)
	} else {
		c.ClearRect(x1-tail, y0, x1-tail+1, y1)
		c.DarkenRect(x1-tail-1, y0, x1, y1, 0.2)
	}
}

