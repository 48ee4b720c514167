package render

// BackgroundStyle selects the fill drawn behind an icon.
type BackgroundStyle int

const (
	BgGradient  BackgroundStyle = iota // icon-colour gradient, active app only
	BgAlphaFill                        // translucent flat fill, active app only
	BgUnity                            // rounded unity-style tile, always drawn
	BgUnityFlat                        // flat unity tile, always drawn
)

var backgroundNames = map[string]BackgroundStyle{
	"gradient":   BgGradient,
	"fill":       BgAlphaFill,
	"unity":      BgUnity,
	"unity-flat": BgUnityFlat,
}

func ParseBackgroundStyle(s string) BackgroundStyle {
	if st, ok := backgroundNames[s]; ok {
		return st
	}
	return BgGradient
}

func (s BackgroundStyle) String() string {
	for name, st := range backgroundNames {
		if st == s {
			return name
		}
	}
	return "gradient"
}

// AlwaysDrawn reports whether the style renders for every app rather than
// only the active one.
func (s BackgroundStyle) AlwaysDrawn() bool {
	return s == BgUnity || s == BgUnityFlat
}

// BackgroundParams carries per-frame state for a background renderer.
type BackgroundParams struct {
	Size    int
	Orient  Orientation
	Color   RGB     // the app icon's extracted accent colour
	Alpha   float64 // BgAlphaFill opacity
	Running bool    // gates the unity-flat shine
}

// Background fills the canvas before the icon is composited. DrawShine runs
// after the icon for the styles that layer a gloss on top; for the others it
// is a no-op.
type Background interface {
	Draw(c *Canvas)
	DrawShine(c *Canvas)
}

func NewBackground(style BackgroundStyle, p BackgroundParams) Background {
	switch style {
	case BgAlphaFill:
		return &alphaFillBackground{p: p}
	case BgUnity:
		return &unityBackground{p: p, flat: false}
	case BgUnityFlat:
		return &unityBackground{p: p, flat: true}
	default:
		return &gradientBackground{p: p}
	}
}

// gradientBackground fades the icon's accent colour from the panel edge to
// transparent across the icon square.
type gradientBackground struct {
	p BackgroundParams
}

func (g *gradientBackground) Draw(c *Canvas) {
	c.LinearFade(g.p.Size, g.p.Orient, g.p.Color)
}

func (g *gradientBackground) DrawShine(*Canvas) {}

// alphaFillBackground is a plain translucent fill of the accent colour.
type alphaFillBackground struct {
	p BackgroundParams
}

func (a *alphaFillBackground) Draw(c *Canvas) {
	s := float64(a.p.Size)
	c.FillRect(0, 0, s, s, a.p.Color.NRGBA(a.p.Alpha))
}

func (a *alphaFillBackground) DrawShine(*Canvas) {}

// unityBackground draws the launcher-style rounded tile. The gradient
// variant shades the accent colour top to bottom; the flat variant fills it
// evenly. Both take a lighter border and a gloss pass over the upper half.
type unityBackground struct {
	p    BackgroundParams
	flat bool
}

func (u *unityBackground) tileRadius() float64 {
	return float64(u.p.Size) / 8
}

func (u *unityBackground) Draw(c *Canvas) {
	s := float64(u.p.Size)
	rad := u.tileRadius()
	if u.flat {
		c.FillRoundedRect(0.5, 0.5, s-0.5, s-0.5, rad, u.p.Color.NRGBA(1))
	} else {
		// cheap two-band gradient: darker lower half under a lighter tile
		c.FillRoundedRect(0.5, 0.5, s-0.5, s-0.5, rad, u.p.Color.Scaled(0.7).NRGBA(1))
		c.FillRoundedRect(0.5, 0.5, s-0.5, s/2, rad, u.p.Color.Lightened(0.15).NRGBA(1))
	}
	c.StrokeRoundedRect(0.5, 0.5, s-0.5, s-0.5, rad, 1, u.p.Color.Lightened(0.4).NRGBA(0.9))
}

// DrawShine lays a white-to-transparent gloss over the top of the tile. The
// flat variant shines only when the app is running.
func (u *unityBackground) DrawShine(c *Canvas) {
	if u.flat && !u.p.Running {
		return
	}
	s := float64(u.p.Size)
	rad := u.tileRadius()
	gloss := RGB{1, 1, 1}
	c.FillRoundedRect(1.5, 1.5, s-1.5, s*0.45, rad, gloss.NRGBA(0.25))
	c.FillRoundedRect(1.5, 1.5, s-1.5, s*0.25, rad, gloss.NRGBA(0.12))
}
