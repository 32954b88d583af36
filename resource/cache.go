package resource

import (
	"errors"
	"fmt"
	"image"
	"log/slog"

	"github.com/gogpu/clipmask/gpucache"
	"github.com/gogpu/clipmask/internal/cache"
	"github.com/gogpu/clipmask/internal/logging"
)

// Uploader creates GPU textures for image masks.
type Uploader interface {
	UploadTexture(desc TextureDescriptor, data []byte) (any, error)
}

// textureReleaser is implemented by uploaders that free GPU textures.
type textureReleaser interface {
	ReleaseTexture(gpu any)
}

type imageEntry struct {
	img   image.Image
	epoch uint32
}

// Cache resolves image keys to resident mask textures.
type Cache struct {
	images    map[ImageKey]*imageEntry
	textures  *cache.Cache[textureKey, *Texture]
	requested map[ImageKey]int
	failures  []error
	opts      options
}

// New creates an empty resource cache.
func New(opts ...Option) *Cache {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	return &Cache{
		images:    make(map[ImageKey]*imageEntry),
		textures:  cache.New[textureKey, *Texture](o.capacity),
		requested: make(map[ImageKey]int),
		opts:      o,
	}
}

// AddImage registers img under key.
func (c *Cache) AddImage(key ImageKey, img image.Image) error {
	if _, ok := c.images[key]; ok {
		return fmt.Errorf("%w: %v", ErrDuplicateImage, key)
	}
	if img == nil || img.Bounds().Empty() {
		return fmt.Errorf("%w: %v", ErrEmptyImage, key)
	}
	c.images[key] = &imageEntry{img: img, epoch: 1}
	return nil
}

// UpdateImage replaces the image registered under key. Textures built from
// the previous image are rebuilt on their next request.
func (c *Cache) UpdateImage(key ImageKey, img image.Image) error {
	entry, ok := c.images[key]
	if !ok {
		return fmt.Errorf("%w: %v", ErrUnknownImage, key)
	}
	if img == nil || img.Bounds().Empty() {
		return fmt.Errorf("%w: %v", ErrEmptyImage, key)
	}
	entry.img = img
	entry.epoch++
	return nil
}

// DeleteImage unregisters key and drops its textures.
func (c *Cache) DeleteImage(key ImageKey) {
	delete(c.images, key)
	removed := c.textures.DeleteFunc(func(tk textureKey, _ *Texture) bool {
		return tk.image == key
	})
	for _, e := range removed {
		c.release(e.Value)
	}
}

// BeginFrame starts a new frame of requests.
func (c *Cache) BeginFrame() {
	c.textures.Advance()
	clear(c.requested)
	c.failures = c.failures[:0]
}

// RequestImage marks the texture for key as needed this frame, building
// and uploading it if it is not resident, and writes its UV rectangle into
// gpuCache. Failures are recorded and reported by EndFrame.
func (c *Cache) RequestImage(key ImageKey, rendering ImageRendering, tile *TileOffset, gpuCache *gpucache.Cache) {
	c.requested[key]++

	tex, err := c.resolve(makeTextureKey(key, rendering, tile))
	if err != nil {
		c.logger().Warn("resource: image request failed", "key", key, "err", err)
		c.failures = append(c.failures, err)
		return
	}
	tex.writeUVRect(gpuCache)
}

func (c *Cache) resolve(tk textureKey) (*Texture, error) {
	entry, ok := c.images[tk.image]
	if !ok {
		return nil, fmt.Errorf("%w: %v", ErrUnknownImage, tk.image)
	}

	if tex, ok := c.textures.Get(tk); ok && tex.epoch == entry.epoch {
		return tex, nil
	}

	tex, err := newTexture(tk, entry.img, c.opts.tileSize, c.opts.maxTextureSize, entry.epoch)
	if err != nil {
		return nil, err
	}
	if c.opts.uploader != nil {
		gpu, err := c.opts.uploader.UploadTexture(tex.Descriptor, tex.Mask.Pix)
		if err != nil {
			return nil, fmt.Errorf("resource: upload %v: %w", tk.image, err)
		}
		tex.GPU = gpu
	}

	if old, ok := c.textures.Peek(tk); ok {
		c.release(old)
	}
	for _, e := range c.textures.Set(tk, tex) {
		c.release(e.Value)
	}

	c.logger().Debug("resource: texture built",
		"key", tk.image,
		"width", tex.Descriptor.Size.Width,
		"height", tex.Descriptor.Size.Height,
		"filter", tex.Descriptor.Filter)
	return tex, nil
}

// EndFrame evicts textures that have not been requested recently and
// returns the joined errors of every failed request of the frame.
func (c *Cache) EndFrame() error {
	evicted := c.textures.Sweep(uint64(c.opts.maxAge))
	for _, e := range evicted {
		c.release(e.Value)
	}
	if len(evicted) > 0 {
		stats := c.textures.Stats()
		c.logger().Debug("resource: textures evicted",
			"evicted", len(evicted),
			"resident", stats.Len,
			"frame", stats.Frame)
	}
	return errors.Join(c.failures...)
}

// Requested returns how many times key was requested this frame.
func (c *Cache) Requested(key ImageKey) int {
	return c.requested[key]
}

// Texture returns the resident texture for the given request parameters.
func (c *Cache) Texture(key ImageKey, rendering ImageRendering, tile *TileOffset) (*Texture, bool) {
	return c.textures.Peek(makeTextureKey(key, rendering, tile))
}

// Len returns the number of resident textures.
func (c *Cache) Len() int {
	return c.textures.Len()
}

func (c *Cache) logger() *slog.Logger {
	if c.opts.logger != nil {
		return c.opts.logger
	}
	return logging.Logger()
}

func (c *Cache) release(tex *Texture) {
	if tex.GPU == nil {
		return
	}
	if r, ok := c.opts.uploader.(textureReleaser); ok {
		r.ReleaseTexture(tex.GPU)
	}
	tex.GPU = nil
}
