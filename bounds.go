package clipmask

import "image"

// Geometry is a layer-space rectangle together with its device-space
// projection. DeviceRect is stale until the owning MaskBounds is updated.
type Geometry struct {
	LocalRect  Rect
	DeviceRect image.Rectangle
}

// MaskBounds holds what is known about the extent of a composite clip.
//
// Outer, when present, contains every visible pixel; nil means unknown,
// assume unbounded. Inner, when present and non-empty, is entirely
// unmasked; nil or a zero-area rectangle means no pixel is known to skip
// the mask test. A clip-out or border-corner clip yields Outer == nil and
// a present, zero-area Inner.
type MaskBounds struct {
	Outer *Geometry
	Inner *Geometry
}

// Update re-projects the local rectangles into device space. Outer takes
// the bounding rectangle of the projection, Inner its inner rectangle.
func (mb *MaskBounds) Update(transform Matrix, devicePixelRatio float64) {
	if mb.Outer != nil {
		tr := NewTransformedRect(mb.Outer.LocalRect, transform, devicePixelRatio)
		mb.Outer.DeviceRect = tr.BoundingRect
	}
	if mb.Inner != nil {
		tr := NewTransformedRect(mb.Inner.LocalRect, transform, devicePixelRatio)
		mb.Inner.DeviceRect = tr.InnerRect
	}
}

// HasSafeInner reports whether Inner is present with a non-empty device
// rectangle, so pixels inside it can skip the mask test.
func (mb MaskBounds) HasSafeInner() bool {
	return mb.Inner != nil && !mb.Inner.DeviceRect.Empty()
}

// Clone returns a deep copy.
func (mb MaskBounds) Clone() MaskBounds {
	var c MaskBounds
	if mb.Outer != nil {
		g := *mb.Outer
		c.Outer = &g
	}
	if mb.Inner != nil {
		g := *mb.Inner
		c.Inner = &g
	}
	return c
}

// fallbackReason explains why local bounds fell back to unknown.
type fallbackReason uint8

const (
	fallbackNone fallbackReason = iota
	fallbackClipOut
	fallbackBorderCorner
)

func (r fallbackReason) String() string {
	switch r {
	case fallbackClipOut:
		return "clip-out"
	case fallbackBorderCorner:
		return "border-corner"
	default:
		return "none"
	}
}

// computeLocalBounds folds the sources, in order, into layer-space mask
// bounds.
func computeLocalBounds(sources []ClipSource) (MaskBounds, fallbackReason) {
	outer := someRect(maxClipRect())
	inner := outer
	hasClipOut := false
	hasBorderClip := false

walk:
	for _, source := range sources {
		switch s := source.(type) {
		case ImageSource:
			if !s.Mask.Repeat {
				outer = outer.intersect(s.Mask.Rect)
			}
			// Mask alpha is arbitrary; nothing inside is known to be opaque.
			inner = optRect{}
		case RectangleSource:
			outer = outer.intersect(s.Rect)
			inner = inner.intersect(s.Rect)
		case RoundedRectangleSource:
			// Past a clip-out the mask extent is unknown; assume the worst.
			if s.Mode == ClipOut {
				hasClipOut = true
				break walk
			}
			outer = outer.intersect(s.Rect)
			if r, ok := ExtractInnerRect(s.Rect, s.Radii); ok {
				inner = inner.intersect(r)
			} else {
				inner = optRect{}
			}
		case BorderCornerSource:
			hasBorderClip = true
		}
	}

	switch {
	case hasClipOut:
		return MaskBounds{Inner: &Geometry{}}, fallbackClipOut
	case hasBorderClip:
		return MaskBounds{Inner: &Geometry{}}, fallbackBorderCorner
	default:
		return MaskBounds{
			Outer: &Geometry{LocalRect: outer.orZero()},
			Inner: &Geometry{LocalRect: inner.orZero()},
		}, fallbackNone
	}
}
