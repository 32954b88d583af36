// Package clipmask computes clip sources and mask bounds for a 2D
// compositor.
//
// # Overview
//
// A clipped element carries an ordered list of clip sources: hard
// rectangles, rounded rectangles (clip or clip-out), image alpha masks and
// dashed border corners. All sources intersect. From that list clipmask
// derives two conservative bounds:
//
//   - the outer bounds, which contain every visible pixel, and
//   - the inner bounds, inside which no pixel needs the mask test.
//
// Both are computed once in layer space and re-projected to device pixels
// every frame, so the renderer can skip masking entirely outside the
// outer bounds and inside the inner bounds.
//
// # Quick Start
//
//	region := clipmask.NewClipRegionForNode(
//	    clipmask.NewRect(10, 10, 200, 100),
//	    []clipmask.ComplexClipRegion{{
//	        Rect:  clipmask.NewRect(10, 10, 200, 100),
//	        Radii: clipmask.UniformRadius(16),
//	    }},
//	    nil,
//	)
//
//	store := clipmask.NewClipStore()
//	h := store.InsertRegion(region)
//
//	gpu := gpucache.New()
//	images := resource.New()
//
//	gpu.BeginFrame()
//	images.BeginFrame()
//	store.Refresh(h.Weak(), clipmask.Identity(), 2, gpu, images)
//	bounds := store.Get(h).Bounds()
//	gpu.EndFrame()
//	if err := images.EndFrame(); err != nil {
//	    // some image masks are unavailable this frame
//	}
//
// # Architecture
//
// The module is organized into:
//   - clipmask: geometry, clip model, bounds, clip store, mask data
//   - freelist: generation-checked slot handles
//   - gpucache: per-frame GPU data blocks
//   - resource: image mask textures
//
// None of the types are safe for concurrent use; a frame is built on one
// goroutine.
package clipmask
