package clipmask

import (
	"slices"

	"github.com/gogpu/clipmask/gpucache"
	"github.com/gogpu/clipmask/resource"
)

// MaskBuilder turns a clip source list into GPU-facing mask data.
// Update must be idempotent for an unchanged source list.
type MaskBuilder interface {
	Update(sources []ClipSource, gpuCache *gpucache.Cache)
	IsMasking() bool
}

// ImageRequester makes image mask textures available for the current
// frame. *resource.Cache implements it.
type ImageRequester interface {
	RequestImage(key resource.ImageKey, rendering resource.ImageRendering, tile *resource.TileOffset, gpuCache *gpucache.Cache)
}

// ClipSources is the ordered, immutable clip source list of one clipped
// element, together with its mask data and cached mask bounds.
//
// All sources intersect; their order is the composition order. Local
// bounds are computed on the first Refresh and kept for the lifetime of
// the value, which is sound because the list cannot change.
type ClipSources struct {
	sources        []ClipSource
	mask           MaskBuilder
	bounds         MaskBounds
	boundsComputed bool
}

// NewClipSources wraps a copy of sources.
func NewClipSources(sources []ClipSource, opts ...SourcesOption) *ClipSources {
	o := applySourcesOptions(opts)
	sources = slices.Clone(sources)

	return &ClipSources{
		sources: sources,
		mask:    o.maskBuilder(sources),
	}
}

// ClipSourcesFromRegion converts a clip region into clip sources: the
// image mask first if present, then the main rectangle, then every complex
// region as a rounded rectangle in Clip mode, in order.
func ClipSourcesFromRegion(region ClipRegion, opts ...SourcesOption) *ClipSources {
	sources := make([]ClipSource, 0, len(region.ComplexClips)+2)
	if region.ImageMask != nil {
		sources = append(sources, ImageSource{Mask: *region.ImageMask})
	}
	sources = append(sources, RectangleSource{Rect: region.Main})
	for _, c := range region.ComplexClips {
		sources = append(sources, RoundedRectangleSource{Rect: c.Rect, Radii: c.Radii, Mode: Clip})
	}
	return NewClipSources(sources, opts...)
}

// Sources returns a copy of the clip sources.
func (cs *ClipSources) Sources() []ClipSource {
	return slices.Clone(cs.sources)
}

// Len returns the number of clip sources.
func (cs *ClipSources) Len() int {
	return len(cs.sources)
}

// Bounds returns a copy of the mask bounds as of the last Refresh.
func (cs *ClipSources) Bounds() MaskBounds {
	return cs.bounds.Clone()
}

// Mask returns the mask builder.
func (cs *ClipSources) Mask() MaskBuilder {
	return cs.mask
}

// Refresh brings the clip up to date for a frame. It computes the local
// mask bounds on first use, re-projects them with transform and
// devicePixelRatio, rebuilds the mask data in gpuCache and requests every
// image mask from resources. A nil resources skips the image requests.
// A clip without sources never masks and Refresh does nothing.
func (cs *ClipSources) Refresh(transform Matrix, devicePixelRatio float64, gpuCache *gpucache.Cache, resources ImageRequester) {
	if len(cs.sources) == 0 {
		return
	}

	if !cs.boundsComputed {
		var reason fallbackReason
		cs.bounds, reason = computeLocalBounds(cs.sources)
		cs.boundsComputed = true

		Logger().Debug("clipmask: local bounds computed",
			"sources", len(cs.sources),
			"outer", cs.bounds.Outer,
			"inner", cs.bounds.Inner,
			"fallback", reason)
	}

	cs.bounds.Update(transform, devicePixelRatio)

	cs.mask.Update(cs.sources, gpuCache)

	if resources == nil {
		return
	}
	for _, source := range cs.sources {
		if img, ok := source.(ImageSource); ok {
			resources.RequestImage(img.Mask.Image, resource.ImageRenderingAuto, nil, gpuCache)
		}
	}
}

// IsMasking reports whether the clip needs a per-pixel mask test beyond
// its bounding rectangles.
func (cs *ClipSources) IsMasking() bool {
	return cs.mask.IsMasking()
}
