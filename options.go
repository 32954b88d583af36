package clipmask

// SourcesOption configures a ClipSources during creation.
//
// Example:
//
//	// Default mask builder
//	cs := clipmask.NewClipSources(sources)
//
//	// Custom mask builder (dependency injection)
//	cs := clipmask.NewClipSources(sources, clipmask.WithMaskBuilder(newBuilder))
type SourcesOption func(*sourcesOptions)

// sourcesOptions holds optional configuration for ClipSources creation.
type sourcesOptions struct {
	maskBuilder func([]ClipSource) MaskBuilder
}

// defaultSourcesOptions returns the default clip sources options.
func defaultSourcesOptions() sourcesOptions {
	return sourcesOptions{
		maskBuilder: func(sources []ClipSource) MaskBuilder {
			return NewMaskCacheInfo(sources)
		},
	}
}

func applySourcesOptions(opts []SourcesOption) sourcesOptions {
	o := defaultSourcesOptions()
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

// WithMaskBuilder replaces the default MaskCacheInfo. The constructor
// receives the final source list, which is owned by the ClipSources and
// must not be modified. A nil constructor keeps the default.
func WithMaskBuilder(newBuilder func(sources []ClipSource) MaskBuilder) SourcesOption {
	return func(o *sourcesOptions) {
		if newBuilder != nil {
			o.maskBuilder = newBuilder
		}
	}
}

// StoreOption configures a ClipStore during creation.
type StoreOption func(*storeOptions)

type storeOptions struct {
	sources []SourcesOption
}

// WithSourcesOptions sets the options InsertRegion passes to every
// ClipSources it builds.
func WithSourcesOptions(opts ...SourcesOption) StoreOption {
	return func(o *storeOptions) {
		o.sources = append(o.sources, opts...)
	}
}
