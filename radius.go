package clipmask

import "math"

// BorderRadius holds the elliptical radii of each corner of a rounded
// rectangle.
type BorderRadius struct {
	TopLeft     Size
	TopRight    Size
	BottomLeft  Size
	BottomRight Size
}

// UniformRadius returns a BorderRadius with circular corners of radius r.
func UniformRadius(r float64) BorderRadius {
	s := Size{W: r, H: r}
	return BorderRadius{TopLeft: s, TopRight: s, BottomLeft: s, BottomRight: s}
}

// ExtractInnerRect returns the largest axis-aligned rectangle that lies
// inside rect with its corners rounded by radii. Each edge is inset by the
// largest radius extent touching it; insets are rounded outward to whole
// units so the result stays on the unit grid. It returns false when the
// corners leave no area.
func ExtractInnerRect(rect Rect, radii BorderRadius) (Rect, bool) {
	// Negative radii are treated as square corners.
	left := math.Ceil(max(radii.TopLeft.W, radii.BottomLeft.W, 0))
	right := math.Floor(rect.W - max(radii.TopRight.W, radii.BottomRight.W, 0))
	top := math.Ceil(max(radii.TopLeft.H, radii.TopRight.H, 0))
	bottom := math.Floor(rect.H - max(radii.BottomLeft.H, radii.BottomRight.H, 0))

	if left >= right || top >= bottom {
		return Rect{}, false
	}
	return Rect{X: rect.X + left, Y: rect.Y + top, W: right - left, H: bottom - top}, true
}
