package clipmask

import "slices"

// ComplexClipRegion is a rounded rectangle contributing to a clip region.
type ComplexClipRegion struct {
	Rect  Rect
	Radii BorderRadius
}

// ClipRegion describes a clip area before it is turned into clip sources.
type ClipRegion struct {
	// Origin is the position of the region in its parent's space.
	Origin Point
	// Main is the main clip rectangle, relative to Origin.
	Main Rect
	// ImageMask is an optional alpha mask, relative to Origin.
	ImageMask *ImageMask
	// ComplexClips are rounded rectangles relative to Origin, applied in
	// order.
	ComplexClips []ComplexClipRegion
}

// NewClipRegionForNode builds the clip region of a clip node. rect,
// complexClips and imageMask are given in the parent's space; the result
// expresses them relative to rect's origin. The arguments are not modified.
func NewClipRegionForNode(rect Rect, complexClips []ComplexClipRegion, imageMask *ImageMask) ClipRegion {
	negativeOrigin := rect.Origin().Neg()

	region := ClipRegion{
		Origin:       rect.Origin(),
		Main:         Rect{W: rect.W, H: rect.H},
		ComplexClips: slices.Clone(complexClips),
	}
	if imageMask != nil {
		mask := *imageMask
		mask.Rect = mask.Rect.Translate(negativeOrigin)
		region.ImageMask = &mask
	}
	for i := range region.ComplexClips {
		region.ComplexClips[i].Rect = region.ComplexClips[i].Rect.Translate(negativeOrigin)
	}
	return region
}

// LocalClip is the clip attached to a single primitive: a rectangle,
// optionally refined by one rounded region.
type LocalClip struct {
	Rect    Rect
	Rounded *ComplexClipRegion
}

// RectClip returns a LocalClip that clips to r.
func RectClip(r Rect) LocalClip {
	return LocalClip{Rect: r}
}

// RoundedRectClip returns a LocalClip that clips to r and the rounded
// region.
func RoundedRectClip(r Rect, region ComplexClipRegion) LocalClip {
	return LocalClip{Rect: r, Rounded: &region}
}

// NewClipRegionFromLocalClip builds the clip region of a LocalClip.
func NewClipRegionFromLocalClip(lc LocalClip) ClipRegion {
	var complexClips []ComplexClipRegion
	if lc.Rounded != nil {
		complexClips = []ComplexClipRegion{*lc.Rounded}
	}
	return NewClipRegionForNode(lc.Rect, complexClips, nil)
}
