package clipmask

import "math"

// MaxClip bounds the coordinate range the clip bounds computation works in.
// The unbounded starting accumulator spans [-MaxClip, MaxClip] on both axes.
const MaxClip = 1000000.0

// Rect represents a rectangle with float64 coordinates.
type Rect struct {
	X, Y float64 // Top-left corner
	W, H float64 // Width and height
}

// NewRect creates a Rect from position and size.
func NewRect(x, y, w, h float64) Rect {
	return Rect{X: x, Y: y, W: w, H: h}
}

// maxClipRect is the rectangle treated as "unbounded".
func maxClipRect() Rect {
	return Rect{X: -MaxClip, Y: -MaxClip, W: 2 * MaxClip, H: 2 * MaxClip}
}

// Origin returns the top-left corner.
func (r Rect) Origin() Point {
	return Point{X: r.X, Y: r.Y}
}

// Right returns the right edge x-coordinate.
func (r Rect) Right() float64 {
	return r.X + r.W
}

// Bottom returns the bottom edge y-coordinate.
func (r Rect) Bottom() float64 {
	return r.Y + r.H
}

// Center returns the center point.
func (r Rect) Center() Point {
	return Point{X: r.X + r.W/2, Y: r.Y + r.H/2}
}

// Corners returns the corners in the order top-left, top-right,
// bottom-left, bottom-right.
func (r Rect) Corners() [4]Point {
	return [4]Point{
		{X: r.X, Y: r.Y},
		{X: r.Right(), Y: r.Y},
		{X: r.X, Y: r.Bottom()},
		{X: r.Right(), Y: r.Bottom()},
	}
}

// Translate returns the rectangle moved by v.
func (r Rect) Translate(v Point) Rect {
	return Rect{X: r.X + v.X, Y: r.Y + v.Y, W: r.W, H: r.H}
}

// IsEmpty returns true if the rectangle has zero area.
func (r Rect) IsEmpty() bool {
	return r.W <= 0 || r.H <= 0
}

// Contains reports whether other lies entirely inside r.
func (r Rect) Contains(other Rect) bool {
	return other.X >= r.X && other.Y >= r.Y &&
		other.Right() <= r.Right() && other.Bottom() <= r.Bottom()
}

// Intersection returns the overlap of two rectangles. It returns false when
// the overlap has no area; rectangles that only touch do not intersect.
func (r Rect) Intersection(other Rect) (Rect, bool) {
	x0 := math.Max(r.X, other.X)
	y0 := math.Max(r.Y, other.Y)
	x1 := math.Min(r.Right(), other.Right())
	y1 := math.Min(r.Bottom(), other.Bottom())

	if x1 <= x0 || y1 <= y0 {
		return Rect{}, false
	}
	return Rect{X: x0, Y: y0, W: x1 - x0, H: y1 - y0}, true
}

// optRect is a rectangle that may be unknown.
type optRect struct {
	rect Rect
	ok   bool
}

func someRect(r Rect) optRect {
	return optRect{rect: r, ok: true}
}

// intersect narrows o to its overlap with r. An unknown rect stays unknown
// and an empty overlap becomes unknown.
func (o optRect) intersect(r Rect) optRect {
	if !o.ok {
		return o
	}
	rect, ok := o.rect.Intersection(r)
	return optRect{rect: rect, ok: ok}
}

// orZero returns the rectangle, or the zero rectangle when unknown.
func (o optRect) orZero() Rect {
	if !o.ok {
		return Rect{}
	}
	return o.rect
}
