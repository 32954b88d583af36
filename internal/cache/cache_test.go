package cache

import (
	"strconv"
	"testing"
)

func TestCacheGetSet(t *testing.T) {
	c := New[string, int](0)

	if _, ok := c.Get("missing"); ok {
		t.Error("Get(missing) = true, want false")
	}

	c.Set("a", 1)
	if v, ok := c.Get("a"); !ok || v != 1 {
		t.Errorf("Get(a) = (%d, %v), want (1, true)", v, ok)
	}
	if c.Len() != 1 {
		t.Errorf("Len() = %d, want 1", c.Len())
	}
}

func TestCacheSweep(t *testing.T) {
	c := New[string, int](0)
	c.Set("stale", 1)
	c.Set("fresh", 2)

	for i := 0; i < 4; i++ {
		c.Advance()
		c.Get("fresh")
	}

	evicted := c.Sweep(2)
	if len(evicted) != 1 || evicted[0].Key != "stale" || evicted[0].Value != 1 {
		t.Fatalf("Sweep(2) = %v, want [{stale 1}]", evicted)
	}
	if _, ok := c.Peek("fresh"); !ok {
		t.Error("fresh entry was swept")
	}
}

func TestCacheSweepYoung(t *testing.T) {
	c := New[string, int](0)
	c.Set("a", 1)
	c.Advance()

	if evicted := c.Sweep(8); len(evicted) != 0 {
		t.Errorf("Sweep(8) at frame 1 = %v, want none", evicted)
	}
}

func TestCachePeekDoesNotTouch(t *testing.T) {
	c := New[string, int](0)
	c.Set("a", 1)
	for i := 0; i < 3; i++ {
		c.Advance()
		c.Peek("a")
	}

	if evicted := c.Sweep(1); len(evicted) != 1 {
		t.Errorf("Sweep(1) evicted %d entries, want 1", len(evicted))
	}
}

func TestCacheSoftLimit(t *testing.T) {
	c := New[string, int](4)

	var evicted []Evicted[string, int]
	for i := 0; i < 5; i++ {
		c.Advance()
		evicted = append(evicted, c.Set(strconv.Itoa(i), i)...)
	}

	// Five entries exceed the limit of four; the cache shrinks to three.
	if c.Len() != 3 {
		t.Errorf("Len() = %d, want 3", c.Len())
	}
	if len(evicted) != 2 {
		t.Fatalf("evicted %d entries, want 2", len(evicted))
	}
	for _, e := range evicted {
		if e.Key != "0" && e.Key != "1" {
			t.Errorf("evicted %q, want oldest entries", e.Key)
		}
	}
	if _, ok := c.Peek("4"); !ok {
		t.Error("newest entry was evicted")
	}
}

func TestCacheStats(t *testing.T) {
	c := New[string, int](10)
	c.Set("a", 1)
	c.Advance()

	want := Stats{Len: 1, Capacity: 10, Frame: 1}
	if got := c.Stats(); got != want {
		t.Errorf("Stats() = %+v, want %+v", got, want)
	}
}
