package render

// Orientation is the direction the panel faces, i.e. the direction from the
// panel edge towards the middle of the screen. A panel at the bottom of the
// screen faces up, a panel on the left edge faces right, and so on.
type Orientation int

const (
	OrientUp Orientation = iota
	OrientDown
	OrientLeft
	OrientRight
)

// Vertical reports whether the panel runs down the side of the screen, in
// which case indicators stack vertically and any extra canvas space is
// allocated below the icon rather than beside it.
func (o Orientation) Vertical() bool {
	return o == OrientLeft || o == OrientRight
}

func (o Orientation) String() string {
	switch o {
	case OrientUp:
		return "up"
	case OrientDown:
		return "down"
	case OrientLeft:
		return "left"
	case OrientRight:
		return "right"
	}
	return "unknown"
}

// ParseOrientation maps a preference string to an Orientation. Unrecognised
// values fall back to OrientUp (bottom panel), the most common placement.
func ParseOrientation(s string) Orientation {
	switch s {
	case "down":
		return OrientDown
	case "left":
		return OrientLeft
	case "right":
		return OrientRight
	default:
		return OrientUp
	}
}
