package clipmask

import (
	"image"
	"math"
)

// TransformedRectKind classifies how a rectangle looks after transformation.
type TransformedRectKind uint8

const (
	// AxisAligned means the transformed rectangle is still an axis-aligned
	// rectangle.
	AxisAligned TransformedRectKind = iota
	// Complex means the transformed rectangle is rotated or skewed.
	Complex
)

// String returns the name of the kind.
func (k TransformedRectKind) String() string {
	if k == AxisAligned {
		return "AxisAligned"
	}
	return "Complex"
}

// TransformedRect is a layer-space rectangle projected into device pixels.
type TransformedRect struct {
	LocalRect Rect

	// Vertices are the transformed corners in device pixels, ordered
	// top-left, top-right, bottom-left, bottom-right in local space.
	Vertices [4]Point

	// BoundingRect is the smallest pixel rectangle containing the
	// transformed shape.
	BoundingRect image.Rectangle

	// InnerRect is a pixel rectangle entirely covered by the transformed
	// shape. It is empty when no such rectangle exists.
	InnerRect image.Rectangle

	Kind TransformedRectKind
}

// NewTransformedRect projects rect through transform, then scales by
// devicePixelRatio.
func NewTransformedRect(rect Rect, transform Matrix, devicePixelRatio float64) TransformedRect {
	device := Scale(devicePixelRatio, devicePixelRatio).Multiply(transform)

	tr := TransformedRect{LocalRect: rect, Kind: Complex}
	if transform.PreservesAxisAlignment() {
		tr.Kind = AxisAligned
	}

	corners := rect.Corners()
	minX, minY := math.Inf(1), math.Inf(1)
	maxX, maxY := math.Inf(-1), math.Inf(-1)
	for i, c := range corners {
		v := device.TransformPoint(c)
		tr.Vertices[i] = v
		minX, maxX = math.Min(minX, v.X), math.Max(maxX, v.X)
		minY, maxY = math.Min(minY, v.Y), math.Max(maxY, v.Y)
	}

	tr.BoundingRect = image.Rect(
		int(math.Floor(minX)), int(math.Floor(minY)),
		int(math.Ceil(maxX)), int(math.Ceil(maxY)),
	)
	tr.InnerRect = innerDeviceRect(rect, device, minX, minY, maxX, maxY)
	return tr
}

// snapEpsilon absorbs floating point noise when snapping inward, so that
// an edge computed as 9.9999999 still lands on pixel 10.
const snapEpsilon = 1e-6

func snapUp(v float64) int {
	return int(math.Ceil(v - snapEpsilon))
}

func snapDown(v float64) int {
	return int(math.Floor(v + snapEpsilon))
}

// Project returns the outer and inner device rectangles of rect under
// transform and devicePixelRatio.
func Project(rect Rect, transform Matrix, devicePixelRatio float64) (outer, inner image.Rectangle) {
	tr := NewTransformedRect(rect, transform, devicePixelRatio)
	return tr.BoundingRect, tr.InnerRect
}

// innerDeviceRect finds the largest rectangle centered on the transformed
// center, shaped like the bounding box (minX..maxY), whose corners all map
// back inside rect. Each corner c + s*h maps to the local center plus
// s*inv(h); it stays inside while |s*inv(h).x| <= W/2 and
// |s*inv(h).y| <= H/2, which bounds s directly.
func innerDeviceRect(rect Rect, device Matrix, minX, minY, maxX, maxY float64) image.Rectangle {
	if rect.IsEmpty() {
		return image.Rectangle{}
	}
	inv, ok := device.Invert()
	if !ok {
		return image.Rectangle{}
	}

	center := device.TransformPoint(rect.Center())
	hx, hy := (maxX-minX)/2, (maxY-minY)/2

	s := 1.0
	for _, h := range [2]Point{{X: hx, Y: hy}, {X: hx, Y: -hy}} {
		l := inv.TransformVector(h)
		if ax := math.Abs(l.X); ax > 0 {
			s = math.Min(s, rect.W/2/ax)
		}
		if ay := math.Abs(l.Y); ay > 0 {
			s = math.Min(s, rect.H/2/ay)
		}
	}

	// image.Rect would reorder inverted bounds, so build the value directly.
	inner := image.Rectangle{
		Min: image.Pt(snapUp(center.X-s*hx), snapUp(center.Y-s*hy)),
		Max: image.Pt(snapDown(center.X+s*hx), snapDown(center.Y+s*hy)),
	}
	if inner.Empty() {
		return image.Rectangle{}
	}
	return inner
}
