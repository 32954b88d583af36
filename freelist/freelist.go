// Package freelist provides a slot arena with generation-checked handles.
//
// A strong [Handle] owns its slot: only the holder of the strong handle may
// free it. A [WeakHandle] observes a slot without owning it; looking it up
// after the slot was freed (and possibly reused) fails cleanly because the
// generation stored in the handle no longer matches the slot.
//
//	list := freelist.New[string]()
//	h := list.Insert("clip")
//	weak := h.Weak()
//	list.Free(h)
//	_, ok := list.Lookup(weak) // ok == false
//
// FreeList is not safe for concurrent use.
package freelist

// Handle is the owning reference to a slot. It must not be used after the
// slot was freed.
type Handle[T any] struct {
	index uint32
	gen   uint32
}

// Weak returns a non-owning handle to the same slot.
func (h Handle[T]) Weak() WeakHandle[T] {
	return WeakHandle[T](h)
}

// WeakHandle is a non-owning reference to a slot.
// The zero value never resolves.
type WeakHandle[T any] struct {
	index uint32
	gen   uint32
}

// IsZero reports whether the handle was never assigned.
func (w WeakHandle[T]) IsZero() bool {
	return w.gen == 0
}

type slot[T any] struct {
	value    T
	gen      uint32
	occupied bool
}

// FreeList stores values in reusable slots.
type FreeList[T any] struct {
	slots []slot[T]
	free  []uint32
	len   int
}

// New creates an empty free list.
func New[T any]() *FreeList[T] {
	return &FreeList[T]{}
}

// Insert stores v in a free slot (reusing one if available) and returns
// the owning handle.
func (l *FreeList[T]) Insert(v T) Handle[T] {
	var index uint32
	if n := len(l.free); n > 0 {
		index = l.free[n-1]
		l.free = l.free[:n-1]
	} else {
		index = uint32(len(l.slots))
		// Generations start at 1 so the zero WeakHandle is always stale.
		l.slots = append(l.slots, slot[T]{gen: 1})
	}

	s := &l.slots[index]
	s.value = v
	s.occupied = true
	l.len++

	return Handle[T]{index: index, gen: s.gen}
}

// Get returns a pointer to the value owned by h.
// The pointer is valid until the next Insert.
// Get panics if h refers to a freed slot, which means the handle was used
// after Free.
func (l *FreeList[T]) Get(h Handle[T]) *T {
	v, ok := l.Lookup(h.Weak())
	if !ok {
		panic("freelist: use of freed handle")
	}
	return v
}

// Lookup resolves a weak handle. It returns false if the slot has been
// freed since the handle was created, even when the slot is occupied again.
func (l *FreeList[T]) Lookup(w WeakHandle[T]) (*T, bool) {
	if int(w.index) >= len(l.slots) {
		return nil, false
	}
	s := &l.slots[w.index]
	if !s.occupied || s.gen != w.gen {
		return nil, false
	}
	return &s.value, true
}

// Free releases the slot owned by h and returns the value it held.
func (l *FreeList[T]) Free(h Handle[T]) T {
	v := *l.Get(h)
	l.release(h.index)
	return v
}

// Len returns the number of occupied slots.
func (l *FreeList[T]) Len() int {
	return l.len
}

func (l *FreeList[T]) release(index uint32) {
	s := &l.slots[index]
	var zero T
	s.value = zero
	s.occupied = false
	s.gen++
	if s.gen == 0 {
		s.gen = 1
	}
	l.free = append(l.free, index)
	l.len--
}
