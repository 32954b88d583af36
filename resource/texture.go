package resource

import (
	"fmt"
	"image"

	"github.com/gogpu/gputypes"
	xdraw "golang.org/x/image/draw"

	"github.com/gogpu/clipmask/gpucache"
)

// TextureDescriptor describes the GPU texture backing an image mask.
type TextureDescriptor struct {
	Label  string
	Size   gputypes.Extent3D
	Format gputypes.TextureFormat
	Usage  gputypes.TextureUsage
	Filter gputypes.FilterMode
}

// Texture is a resident image mask texture.
type Texture struct {
	Key        ImageKey
	Rendering  ImageRendering
	Tile       *TileOffset
	Descriptor TextureDescriptor

	// Mask holds one coverage byte per texel.
	Mask *image.Alpha

	// UVRect holds the texel rectangle of the texture in the GPU cache.
	UVRect gpucache.Handle

	// GPU is the uploader's handle, nil without an uploader.
	GPU any

	epoch uint32
}

// textureKey distinguishes textures built from the same image.
type textureKey struct {
	image     ImageKey
	rendering ImageRendering
	tiled     bool
	tile      TileOffset
}

func makeTextureKey(key ImageKey, rendering ImageRendering, tile *TileOffset) textureKey {
	tk := textureKey{image: key, rendering: rendering}
	if tile != nil {
		tk.tiled = true
		tk.tile = *tile
	}
	return tk
}

// newTexture converts the source region of img selected by tile into an
// alpha texture no larger than maxSize on either side.
func newTexture(tk textureKey, img image.Image, tileSize, maxSize int, epoch uint32) (*Texture, error) {
	src := img.Bounds()
	if src.Empty() {
		return nil, ErrEmptyImage
	}
	if tk.tiled {
		origin := src.Min.Add(image.Pt(int(tk.tile.X)*tileSize, int(tk.tile.Y)*tileSize))
		src = image.Rectangle{Min: origin, Max: origin.Add(image.Pt(tileSize, tileSize))}.Intersect(img.Bounds())
		if src.Empty() {
			return nil, fmt.Errorf("%w: %v tile (%d, %d)", ErrTileOutOfRange, tk.image, tk.tile.X, tk.tile.Y)
		}
	}

	// Gray images carry coverage as luminance.
	if g, ok := img.(*image.Gray); ok {
		img = &image.Alpha{Pix: g.Pix, Stride: g.Stride, Rect: g.Rect}
	}

	w, h := fitSize(src.Dx(), src.Dy(), maxSize)
	mask := image.NewAlpha(image.Rect(0, 0, w, h))
	if w == src.Dx() && h == src.Dy() {
		xdraw.Draw(mask, mask.Bounds(), img, src.Min, xdraw.Src)
	} else {
		xdraw.ApproxBiLinear.Scale(mask, mask.Bounds(), img, src, xdraw.Src, nil)
	}

	tex := &Texture{
		Key:       tk.image,
		Rendering: tk.rendering,
		Descriptor: TextureDescriptor{
			Label: tk.image.String(),
			Size: gputypes.Extent3D{
				Width:              uint32(w),
				Height:             uint32(h),
				DepthOrArrayLayers: 1,
			},
			Format: gputypes.TextureFormatR8Unorm,
			Usage:  gputypes.TextureUsageTextureBinding | gputypes.TextureUsageCopyDst,
			Filter: tk.rendering.FilterMode(),
		},
		Mask:  mask,
		epoch: epoch,
	}
	if tk.tiled {
		tile := tk.tile
		tex.Tile = &tile
	}
	return tex, nil
}

// fitSize scales (w, h) down proportionally so neither side exceeds
// maxSize. Sides never drop below one texel.
func fitSize(w, h, maxSize int) (int, int) {
	if maxSize <= 0 || (w <= maxSize && h <= maxSize) {
		return w, h
	}
	if w >= h {
		return maxSize, max(1, h*maxSize/w)
	}
	return max(1, w*maxSize/h), maxSize
}

// writeUVRect stores the texel rectangle of t in the GPU cache if it is
// not resident.
func (t *Texture) writeUVRect(gpuCache *gpucache.Cache) {
	if gpuCache == nil {
		return
	}
	if req := gpuCache.Request(&t.UVRect); req != nil {
		size := t.Descriptor.Size
		req.Push(gpucache.Block{0, 0, float32(size.Width), float32(size.Height)})
	}
}
