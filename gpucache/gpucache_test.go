package gpucache

import "testing"

func TestRequestAllocatesOnce(t *testing.T) {
	c := New()
	var h Handle

	if !h.IsZero() {
		t.Fatal("new Handle.IsZero() = false")
	}

	req := c.Request(&h)
	if req == nil {
		t.Fatal("first Request() = nil, want writer")
	}
	req.Push(Block{1, 2, 3, 4})
	req.Push(Block{5, 0, 0, 0})

	if h.IsZero() {
		t.Error("Handle.IsZero() after Request = true")
	}
	if req := c.Request(&h); req != nil {
		t.Error("second Request() in same frame returned a writer")
	}

	blocks, ok := c.Get(h)
	if !ok {
		t.Fatal("Get() = false, want true")
	}
	if len(blocks) != 2 || blocks[0] != (Block{1, 2, 3, 4}) {
		t.Errorf("Get() = %v, want [[1 2 3 4] [5 0 0 0]]", blocks)
	}
}

func TestRequestResidentAcrossFrames(t *testing.T) {
	c := New(WithMaxAge(2))
	var h Handle
	c.Request(&h).Push(Block{})

	for i := 0; i < 5; i++ {
		c.BeginFrame()
		if req := c.Request(&h); req != nil {
			t.Fatalf("frame %d: Request() returned writer for resident entry", i)
		}
		c.EndFrame()
	}
}

func TestEviction(t *testing.T) {
	c := New(WithMaxAge(2))
	var kept, dropped Handle
	c.Request(&kept).Push(Block{1})
	c.Request(&dropped).Push(Block{2})

	var stats FrameStats
	for i := 0; i < 4; i++ {
		c.BeginFrame()
		c.Request(&kept)
		stats = c.EndFrame()
	}

	if _, ok := c.Get(dropped); ok {
		t.Error("unrequested entry survived eviction")
	}
	if _, ok := c.Get(kept); !ok {
		t.Error("requested entry was evicted")
	}
	if stats.Live != 1 {
		t.Errorf("Live = %d, want 1", stats.Live)
	}

	if req := c.Request(&dropped); req == nil {
		t.Error("Request() on evicted handle returned nil, want writer")
	}
}

func TestInvalidate(t *testing.T) {
	c := New()
	var h Handle
	c.Request(&h).Push(Block{1})

	c.Invalidate(h)
	if _, ok := c.Get(h); ok {
		t.Error("Get() after Invalidate succeeded")
	}
	if c.Len() != 0 {
		t.Errorf("Len() = %d, want 0", c.Len())
	}
	if req := c.Request(&h); req == nil {
		t.Error("Request() after Invalidate returned nil")
	}

	// Invalidating a zero handle is a no-op.
	c.Invalidate(Handle{})
}

func TestFrameStats(t *testing.T) {
	c := New()
	c.BeginFrame()

	var a, b Handle
	c.Request(&a).Push(Block{})
	req := c.Request(&b)
	req.Push(Block{})
	req.Push(Block{})

	stats := c.EndFrame()
	want := FrameStats{Allocated: 2, Live: 2, Blocks: 3}
	if stats != want {
		t.Errorf("EndFrame() = %+v, want %+v", stats, want)
	}
}

func TestWithMaxAgeInvalid(t *testing.T) {
	c := New(WithMaxAge(0))
	if c.maxAge != DefaultMaxAge {
		t.Errorf("maxAge = %d, want %d", c.maxAge, DefaultMaxAge)
	}
}
