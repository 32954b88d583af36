// Package gpucache stores per-frame data destined for GPU upload.
//
// Data is written as 16-byte blocks ([Block]) owned by an entry. Producers
// keep a [Handle] per item and call [Cache.Request] every frame: when the
// entry is still resident the request returns nil and the entry is marked
// as used, otherwise a fresh entry is allocated and a [Request] is returned
// for the producer to fill. Entries that go unused for longer than the
// configured age are evicted at [Cache.EndFrame].
//
// # Frame lifecycle
//
//	gc := gpucache.New()
//	gc.BeginFrame()
//	if req := gc.Request(&handle); req != nil {
//	    req.Push(gpucache.Block{x, y, w, h})
//	}
//	stats := gc.EndFrame()
//
// Cache is not safe for concurrent use; one frame builder owns it.
package gpucache

import (
	"github.com/gogpu/clipmask/freelist"
)

// DefaultMaxAge is the number of frames an entry may go unrequested
// before it is evicted.
const DefaultMaxAge = 8

// Block is one GPU cache element, four 32-bit floats.
type Block [4]float32

// Handle refers to an entry in the cache.
// The zero value refers to no entry.
type Handle struct {
	entry freelist.WeakHandle[*entry]
}

// IsZero reports whether the handle was never allocated.
func (h Handle) IsZero() bool {
	return h.entry.IsZero()
}

type entry struct {
	blocks    []Block
	lastFrame uint64
}

// Request writes blocks into a newly allocated entry.
type Request struct {
	e *entry
}

// Push appends a block to the entry.
func (r *Request) Push(b Block) {
	r.e.blocks = append(r.e.blocks, b)
}

// FrameStats summarizes cache activity for one frame.
type FrameStats struct {
	// Allocated is the number of entries written this frame.
	Allocated int
	// Evicted is the number of entries dropped at the end of the frame.
	Evicted int
	// Live is the number of resident entries after eviction.
	Live int
	// Blocks is the number of resident blocks after eviction.
	Blocks int
}

// Cache holds GPU cache entries.
type Cache struct {
	entries   *freelist.FreeList[*entry]
	handles   map[freelist.WeakHandle[*entry]]freelist.Handle[*entry]
	frame     uint64
	maxAge    uint64
	allocated int
}

// Option configures a Cache.
type Option func(*options)

type options struct {
	maxAge int
}

// WithMaxAge sets how many frames an entry may go unrequested before it
// is evicted. Values below 1 select DefaultMaxAge.
func WithMaxAge(frames int) Option {
	return func(o *options) {
		o.maxAge = frames
	}
}

// New creates an empty cache.
func New(opts ...Option) *Cache {
	o := options{maxAge: DefaultMaxAge}
	for _, opt := range opts {
		opt(&o)
	}
	if o.maxAge < 1 {
		o.maxAge = DefaultMaxAge
	}

	return &Cache{
		entries: freelist.New[*entry](),
		handles: make(map[freelist.WeakHandle[*entry]]freelist.Handle[*entry]),
		frame:   1,
		maxAge:  uint64(o.maxAge),
	}
}

// BeginFrame starts a new frame.
func (c *Cache) BeginFrame() {
	c.frame++
	c.allocated = 0
}

// Request marks the entry behind h as used this frame. If the entry is
// resident it returns nil. Otherwise it allocates a new entry, points h at
// it and returns a Request for the caller to fill.
func (c *Cache) Request(h *Handle) *Request {
	if e, ok := c.entries.Lookup(h.entry); ok {
		(*e).lastFrame = c.frame
		return nil
	}

	e := &entry{lastFrame: c.frame}
	strong := c.entries.Insert(e)
	h.entry = strong.Weak()
	c.handles[h.entry] = strong
	c.allocated++

	return &Request{e: e}
}

// Get returns the blocks stored for h.
func (c *Cache) Get(h Handle) ([]Block, bool) {
	e, ok := c.entries.Lookup(h.entry)
	if !ok {
		return nil, false
	}
	return (*e).blocks, true
}

// Invalidate drops the entry behind h so that the next Request rewrites it.
func (c *Cache) Invalidate(h Handle) {
	strong, ok := c.handles[h.entry]
	if !ok {
		return
	}
	delete(c.handles, h.entry)
	c.entries.Free(strong)
}

// EndFrame evicts entries that were not requested within the configured
// age and reports the frame's activity.
func (c *Cache) EndFrame() FrameStats {
	var evicted int
	if c.frame > c.maxAge {
		cutoff := c.frame - c.maxAge
		for weak, strong := range c.handles {
			if (*c.entries.Get(strong)).lastFrame >= cutoff {
				continue
			}
			delete(c.handles, weak)
			c.entries.Free(strong)
			evicted++
		}
	}

	stats := FrameStats{
		Allocated: c.allocated,
		Evicted:   evicted,
		Live:      c.entries.Len(),
	}
	for _, strong := range c.handles {
		stats.Blocks += len((*c.entries.Get(strong)).blocks)
	}
	return stats
}

// Len returns the number of resident entries.
func (c *Cache) Len() int {
	return c.entries.Len()
}
