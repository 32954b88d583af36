package clipmask

import (
	"fmt"

	"github.com/gogpu/clipmask/resource"
)

// ClipMode selects which side of a clip shape stays visible.
type ClipMode uint8

const (
	// Clip keeps pixels inside the shape.
	Clip ClipMode = iota
	// ClipOut keeps pixels outside the shape.
	ClipOut
)

// Not returns the opposite mode.
func (m ClipMode) Not() ClipMode {
	if m == Clip {
		return ClipOut
	}
	return Clip
}

// String returns the name of the mode.
func (m ClipMode) String() string {
	switch m {
	case Clip:
		return "Clip"
	case ClipOut:
		return "ClipOut"
	default:
		return fmt.Sprintf("ClipMode(%d)", uint8(m))
	}
}

// ClipSource is one geometric constraint of a composite clip.
//
// The set of implementations is closed: RectangleSource,
// RoundedRectangleSource, ImageSource and BorderCornerSource.
type ClipSource interface {
	isClipSource()
}

// RectangleSource is a hard axis-aligned clip. Its interior is visible.
type RectangleSource struct {
	Rect Rect
}

// RoundedRectangleSource clips to a rectangle with rounded corners.
type RoundedRectangleSource struct {
	Rect  Rect
	Radii BorderRadius
	Mode  ClipMode
}

// ImageSource clips by the alpha of an image mask.
type ImageSource struct {
	Mask ImageMask
}

// BorderCornerSource clips to the dashes of a dashed border corner.
type BorderCornerSource struct {
	Corner BorderCornerClip
}

func (RectangleSource) isClipSource()        {}
func (RoundedRectangleSource) isClipSource() {}
func (ImageSource) isClipSource()            {}
func (BorderCornerSource) isClipSource()     {}

// ImageMask references an image whose alpha masks the clipped content.
type ImageMask struct {
	Image resource.ImageKey
	// Rect is where the mask is placed in layer space.
	Rect Rect
	// Repeat tiles the mask over the whole plane instead of only Rect.
	Repeat bool
}

// BorderCorner names a corner of a border.
type BorderCorner uint8

// Border corners.
const (
	TopLeft BorderCorner = iota
	TopRight
	BottomRight
	BottomLeft
)

// String returns the name of the corner.
func (c BorderCorner) String() string {
	switch c {
	case TopLeft:
		return "TopLeft"
	case TopRight:
		return "TopRight"
	case BottomRight:
		return "BottomRight"
	case BottomLeft:
		return "BottomLeft"
	default:
		return fmt.Sprintf("BorderCorner(%d)", uint8(c))
	}
}

// BorderCornerClip describes the clip shape of a dashed border corner
// where both adjacent edges are dashed.
type BorderCornerClip struct {
	Corner BorderCorner
	// Rect is the corner area in layer space.
	Rect Rect
	// Radius is the outer radius of the corner.
	Radius Size
	// Widths are the widths of the vertical and horizontal border edges
	// meeting at the corner.
	Widths Size
	// DashCount is the number of dash segments along the corner arc.
	DashCount int
}
