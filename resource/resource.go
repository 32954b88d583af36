// Package resource manages the image mask textures referenced by clip
// sources.
//
// Images are registered once under an [ImageKey]. During frame building,
// every clip that carries an image mask calls [Cache.RequestImage]; the
// cache converts the image to a single-channel alpha texture on first use,
// hands it to the configured [Uploader], writes its UV rectangle into the
// GPU cache and keeps it resident while it keeps being requested.
// [Cache.EndFrame] reports every request of the frame that could not be
// satisfied so the caller can fail the frame's resource check.
//
// The cache is driven by a single frame builder and is not safe for
// concurrent use.
package resource

import (
	"errors"
	"fmt"

	"github.com/gogpu/gputypes"
)

// Sentinel errors.
var (
	// ErrUnknownImage is returned when an image key was never registered.
	ErrUnknownImage = errors.New("resource: unknown image")

	// ErrDuplicateImage is returned when an image key is registered twice.
	ErrDuplicateImage = errors.New("resource: image already registered")

	// ErrEmptyImage is returned for images with zero area.
	ErrEmptyImage = errors.New("resource: empty image")

	// ErrTileOutOfRange is returned when a requested tile lies outside the
	// image.
	ErrTileOutOfRange = errors.New("resource: tile out of range")
)

// ImageKey identifies a registered image.
type ImageKey struct {
	Namespace uint32
	ID        uint32
}

// String returns a debug representation of the key.
func (k ImageKey) String() string {
	return fmt.Sprintf("ImageKey(%d, %d)", k.Namespace, k.ID)
}

// ImageRendering selects how a texture is sampled.
type ImageRendering uint8

// Image rendering modes.
const (
	// ImageRenderingAuto lets the renderer filter smoothly.
	ImageRenderingAuto ImageRendering = iota
	// ImageRenderingCrispEdges preserves hard edges.
	ImageRenderingCrispEdges
	// ImageRenderingPixelated scales with nearest-neighbor sampling.
	ImageRenderingPixelated
)

// String returns the name of the rendering mode.
func (r ImageRendering) String() string {
	switch r {
	case ImageRenderingAuto:
		return "Auto"
	case ImageRenderingCrispEdges:
		return "CrispEdges"
	case ImageRenderingPixelated:
		return "Pixelated"
	default:
		return fmt.Sprintf("ImageRendering(%d)", uint8(r))
	}
}

// FilterMode returns the sampler filter used for the rendering mode.
func (r ImageRendering) FilterMode() gputypes.FilterMode {
	if r == ImageRenderingAuto {
		return gputypes.FilterModeLinear
	}
	return gputypes.FilterModeNearest
}

// TileOffset addresses one tile of a tiled image.
type TileOffset struct {
	X, Y uint16
}
