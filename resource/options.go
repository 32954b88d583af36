package resource

import "log/slog"

// Default configuration values.
const (
	// DefaultTileSize is the edge length of one image tile in texels.
	DefaultTileSize = 512

	// DefaultMaxTextureSize bounds either side of a mask texture.
	DefaultMaxTextureSize = 4096

	// DefaultMaxAge is the number of frames a texture stays resident
	// without being requested.
	DefaultMaxAge = 16
)

// Option configures a Cache.
type Option func(*options)

type options struct {
	logger         *slog.Logger
	uploader       Uploader
	tileSize       int
	maxTextureSize int
	maxAge         int
	capacity       int
}

func defaultOptions() options {
	return options{
		tileSize:       DefaultTileSize,
		maxTextureSize: DefaultMaxTextureSize,
		maxAge:         DefaultMaxAge,
	}
}

// WithLogger sets a logger for this cache only. By default the cache logs
// through the logger configured with clipmask.SetLogger; nil restores that.
func WithLogger(l *slog.Logger) Option {
	return func(o *options) {
		o.logger = l
	}
}

// WithUploader sets the uploader that receives newly built textures.
func WithUploader(u Uploader) Option {
	return func(o *options) {
		o.uploader = u
	}
}

// WithTileSize sets the tile edge length used for tiled requests.
// Values below 1 are ignored.
func WithTileSize(size int) Option {
	return func(o *options) {
		if size > 0 {
			o.tileSize = size
		}
	}
}

// WithMaxTextureSize bounds the size of mask textures; larger images are
// downscaled. Values below 1 are ignored.
func WithMaxTextureSize(size int) Option {
	return func(o *options) {
		if size > 0 {
			o.maxTextureSize = size
		}
	}
}

// WithMaxAge sets how many frames an unrequested texture stays resident.
// Values below 1 are ignored.
func WithMaxAge(frames int) Option {
	return func(o *options) {
		if frames > 0 {
			o.maxAge = frames
		}
	}
}

// WithCapacity sets a soft limit on resident textures. 0 means unlimited.
func WithCapacity(n int) Option {
	return func(o *options) {
		if n >= 0 {
			o.capacity = n
		}
	}
}
