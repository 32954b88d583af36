package clipmask

import (
	"slices"

	"github.com/gogpu/clipmask/gpucache"
	"github.com/gogpu/clipmask/internal/shader"
)

// MaskCounts tallies the clip sources of a mask by kind.
type MaskCounts struct {
	Rectangles        int
	RoundedRectangles int
	Images            int
	BorderCorners     int
}

// MaskCacheInfo is the default MaskBuilder. It keeps one GPU cache handle
// per clip source and writes the source's clip data the first time the
// handle is requested, and again only after the cache evicts it.
type MaskCacheInfo struct {
	handles []gpucache.Handle
	counts  MaskCounts
}

// NewMaskCacheInfo returns the mask data for sources.
func NewMaskCacheInfo(sources []ClipSource) *MaskCacheInfo {
	m := &MaskCacheInfo{handles: make([]gpucache.Handle, len(sources))}
	for _, source := range sources {
		switch source.(type) {
		case RectangleSource:
			m.counts.Rectangles++
		case RoundedRectangleSource:
			m.counts.RoundedRectangles++
		case ImageSource:
			m.counts.Images++
		case BorderCornerSource:
			m.counts.BorderCorners++
		}
	}
	return m
}

// Update makes the clip data of every source resident in gpuCache. Sources
// whose data is still resident are left untouched. A nil gpuCache is a
// no-op.
func (m *MaskCacheInfo) Update(sources []ClipSource, gpuCache *gpucache.Cache) {
	if gpuCache == nil {
		return
	}
	if len(m.handles) != len(sources) {
		m.handles = make([]gpucache.Handle, len(sources))
	}
	for i, source := range sources {
		req := gpuCache.Request(&m.handles[i])
		if req == nil {
			continue
		}
		writeClipData(req, source)
	}
}

// IsMasking reports whether the clip needs a per-pixel mask test. Every
// source counts, rectangles included: under rotation or skew the device
// bounds of a rectangle cover pixels the rectangle does not.
func (m *MaskCacheInfo) IsMasking() bool {
	c := m.counts
	return c.Rectangles+c.RoundedRectangles+c.Images+c.BorderCorners > 0
}

// Counts returns the number of sources of each kind.
func (m *MaskCacheInfo) Counts() MaskCounts {
	return m.counts
}

// Handles returns the GPU cache handle of each source, in source order.
func (m *MaskCacheInfo) Handles() []gpucache.Handle {
	return slices.Clone(m.handles)
}

func rectBlock(r Rect) gpucache.Block {
	return gpucache.Block{float32(r.X), float32(r.Y), float32(r.W), float32(r.H)}
}

// writeClipData pushes the blocks the clip mask shader reads for source.
func writeClipData(req *gpucache.Request, source ClipSource) {
	switch s := source.(type) {
	case RectangleSource:
		req.Push(rectBlock(s.Rect))
		req.Push(gpucache.Block{float32(Clip)})
		req.Push(gpucache.Block{})
		req.Push(gpucache.Block{})
	case RoundedRectangleSource:
		r := s.Radii
		req.Push(rectBlock(s.Rect))
		req.Push(gpucache.Block{float32(s.Mode)})
		req.Push(gpucache.Block{
			float32(r.TopLeft.W), float32(r.TopLeft.H),
			float32(r.TopRight.W), float32(r.TopRight.H),
		})
		req.Push(gpucache.Block{
			float32(r.BottomRight.W), float32(r.BottomRight.H),
			float32(r.BottomLeft.W), float32(r.BottomLeft.H),
		})
	case ImageSource:
		var repeat float32
		if s.Mask.Repeat {
			repeat = 1
		}
		req.Push(rectBlock(s.Mask.Rect))
		req.Push(gpucache.Block{repeat})
	case BorderCornerSource:
		c := s.Corner
		req.Push(rectBlock(c.Rect))
		req.Push(gpucache.Block{
			float32(c.Radius.W), float32(c.Radius.H),
			float32(c.Widths.W), float32(c.Widths.H),
		})
		req.Push(gpucache.Block{float32(c.Corner), float32(c.DashCount)})
	}
}

// CompileMaskShader returns the SPIR-V of the shader that evaluates the
// rectangle and rounded rectangle clip data written by MaskCacheInfo.
// The result is compiled once and cached.
func CompileMaskShader() ([]uint32, error) {
	return shader.CompileClipMask()
}
