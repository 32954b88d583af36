// Package cache provides a keyed cache whose entries age by frame.
//
// Every Get or Set stamps the entry with the current frame. Advance moves to
// the next frame, and Sweep drops entries that have not been touched for a
// given number of frames. A soft limit additionally evicts the least
// recently used quarter of the entries when exceeded.
//
//	c := cache.New[string, int](100)
//	c.Set("key", 42)
//	c.Advance()
//	evicted := c.Sweep(8)
//
// # Thread Safety
//
// Cache is owned by a single frame builder and is not safe for concurrent
// use.
package cache
