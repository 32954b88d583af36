package clipmask

import (
	"github.com/gogpu/clipmask/freelist"
	"github.com/gogpu/clipmask/gpucache"
)

// ClipSourcesHandle owns a ClipSources inside a ClipStore.
type ClipSourcesHandle = freelist.Handle[*ClipSources]

// ClipSourcesWeakHandle refers to a ClipSources without owning it. It
// fails to resolve once the owner removes the entry.
type ClipSourcesWeakHandle = freelist.WeakHandle[*ClipSources]

// ClipStore owns the clip sources of a frame builder and hands out
// handles to them.
type ClipStore struct {
	list *freelist.FreeList[*ClipSources]
	opts storeOptions
}

// NewClipStore returns an empty store.
func NewClipStore(opts ...StoreOption) *ClipStore {
	s := &ClipStore{list: freelist.New[*ClipSources]()}
	for _, opt := range opts {
		opt(&s.opts)
	}
	return s
}

// Insert stores cs and returns its owning handle.
func (s *ClipStore) Insert(cs *ClipSources) ClipSourcesHandle {
	return s.list.Insert(cs)
}

// InsertRegion converts region into clip sources and stores them.
func (s *ClipStore) InsertRegion(region ClipRegion) ClipSourcesHandle {
	return s.Insert(ClipSourcesFromRegion(region, s.opts.sources...))
}

// Get returns the clip sources owned by h. It panics if h was removed.
func (s *ClipStore) Get(h ClipSourcesHandle) *ClipSources {
	return *s.list.Get(h)
}

// Lookup resolves a weak handle. It reports false when the entry has been
// removed, even if its slot was reused since.
func (s *ClipStore) Lookup(w ClipSourcesWeakHandle) (*ClipSources, bool) {
	p, ok := s.list.Lookup(w)
	if !ok {
		return nil, false
	}
	return *p, true
}

// Remove drops the entry owned by h and returns it.
func (s *ClipStore) Remove(h ClipSourcesHandle) *ClipSources {
	return s.list.Free(h)
}

// Len returns the number of stored clip sources.
func (s *ClipStore) Len() int {
	return s.list.Len()
}

// Refresh refreshes the clip sources behind w for the current frame; see
// (*ClipSources).Refresh. A stale handle is skipped and Refresh reports
// false.
func (s *ClipStore) Refresh(w ClipSourcesWeakHandle, transform Matrix, devicePixelRatio float64, gpuCache *gpucache.Cache, resources ImageRequester) bool {
	cs, ok := s.Lookup(w)
	if !ok {
		Logger().Debug("clipmask: skipping stale clip sources handle", "handle", w)
		return false
	}
	cs.Refresh(transform, devicePixelRatio, gpuCache, resources)
	return true
}
