package main

import (
	"fmt"
	"image"
	"image/color"
	"math"

	"gopkg.in/yaml.v3"

	"github.com/gogpu/clipmask"
	"github.com/gogpu/clipmask/resource"
)

// Scene is the YAML description of a set of clipped elements.
type Scene struct {
	DevicePixelRatio float64        `yaml:"devicePixelRatio"`
	Transform        TransformSpec  `yaml:"transform"`
	Images           []ImageSpec    `yaml:"images"`
	Clips            []ClipNodeSpec `yaml:"clips"`
}

// TransformSpec is applied as translate * rotate * scale.
type TransformSpec struct {
	Translate [2]float64 `yaml:"translate"`
	Rotate    float64    `yaml:"rotate"` // degrees
	Scale     [2]float64 `yaml:"scale"`
}

// Matrix returns the transform as an affine matrix.
func (t TransformSpec) Matrix() clipmask.Matrix {
	sx, sy := t.Scale[0], t.Scale[1]
	if sx == 0 && sy == 0 {
		sx, sy = 1, 1
	}
	return clipmask.Translate(t.Translate[0], t.Translate[1]).
		Multiply(clipmask.Rotate(t.Rotate * math.Pi / 180)).
		Multiply(clipmask.Scale(sx, sy))
}

// ImageSpec registers a generated circular alpha mask.
type ImageSpec struct {
	ID     uint32 `yaml:"id"`
	Width  int    `yaml:"width"`
	Height int    `yaml:"height"`
}

// ClipNodeSpec describes one clip node and any extra sources appended
// after the ones derived from its region.
type ClipNodeSpec struct {
	Name    string         `yaml:"name"`
	Rect    RectSpec       `yaml:"rect"`
	Rounded []RoundedSpec  `yaml:"rounded"`
	Image   *ImageMaskSpec `yaml:"image"`
	Extra   []SourceSpec   `yaml:"extra"`
}

// RectSpec is [x, y, width, height].
type RectSpec [4]float64

// Rect returns r as a clipmask.Rect.
func (r RectSpec) Rect() clipmask.Rect {
	return clipmask.NewRect(r[0], r[1], r[2], r[3])
}

// RoundedSpec is a rounded rectangle with uniform radius.
type RoundedSpec struct {
	Rect   RectSpec `yaml:"rect"`
	Radius float64  `yaml:"radius"`
}

// ImageMaskSpec references a registered image.
type ImageMaskSpec struct {
	ID     uint32   `yaml:"id"`
	Rect   RectSpec `yaml:"rect"`
	Repeat bool     `yaml:"repeat"`
}

// SourceSpec is an extra clip source in the node's local space.
type SourceSpec struct {
	Kind   string     `yaml:"kind"`
	Rect   RectSpec   `yaml:"rect"`
	Radius float64    `yaml:"radius"`
	Mode   Mode       `yaml:"mode"`
	Corner Corner     `yaml:"corner"`
	Widths [2]float64 `yaml:"widths"`
	Dashes int        `yaml:"dashes"`
}

// Mode is a clip mode written as "clip" or "clip-out".
type Mode clipmask.ClipMode

// UnmarshalYAML implements a YAML Unmarshaler for Mode.
func (m *Mode) UnmarshalYAML(value *yaml.Node) error {
	var s string
	if err := value.Decode(&s); err != nil {
		return err
	}
	switch s {
	case "", "clip":
		*m = Mode(clipmask.Clip)
	case "clip-out":
		*m = Mode(clipmask.ClipOut)
	default:
		return fmt.Errorf("line %d: unknown clip mode %q", value.Line, s)
	}
	return nil
}

// Corner is a border corner written by name.
type Corner clipmask.BorderCorner

// UnmarshalYAML implements a YAML Unmarshaler for Corner.
func (c *Corner) UnmarshalYAML(value *yaml.Node) error {
	var s string
	if err := value.Decode(&s); err != nil {
		return err
	}
	for _, bc := range []clipmask.BorderCorner{clipmask.TopLeft, clipmask.TopRight, clipmask.BottomRight, clipmask.BottomLeft} {
		if bc.String() == s {
			*c = Corner(bc)
			return nil
		}
	}
	return fmt.Errorf("line %d: unknown border corner %q", value.Line, s)
}

// ParseScene decodes a YAML scene.
func ParseScene(data []byte) (*Scene, error) {
	var s Scene
	if err := yaml.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("parse scene: %w", err)
	}
	if s.DevicePixelRatio == 0 {
		s.DevicePixelRatio = 1
	}
	return &s, nil
}

// Sources builds the clip sources of the node: the ones derived from its
// clip region, followed by the extra sources.
func (n ClipNodeSpec) Sources() ([]clipmask.ClipSource, error) {
	var complexClips []clipmask.ComplexClipRegion
	for _, r := range n.Rounded {
		complexClips = append(complexClips, clipmask.ComplexClipRegion{
			Rect:  r.Rect.Rect(),
			Radii: clipmask.UniformRadius(r.Radius),
		})
	}
	var mask *clipmask.ImageMask
	if n.Image != nil {
		mask = &clipmask.ImageMask{
			Image:  resource.ImageKey{ID: n.Image.ID},
			Rect:   n.Image.Rect.Rect(),
			Repeat: n.Image.Repeat,
		}
	}

	region := clipmask.NewClipRegionForNode(n.Rect.Rect(), complexClips, mask)
	sources := clipmask.ClipSourcesFromRegion(region).Sources()

	for _, e := range n.Extra {
		switch e.Kind {
		case "rect":
			sources = append(sources, clipmask.RectangleSource{Rect: e.Rect.Rect()})
		case "rounded":
			sources = append(sources, clipmask.RoundedRectangleSource{
				Rect:  e.Rect.Rect(),
				Radii: clipmask.UniformRadius(e.Radius),
				Mode:  clipmask.ClipMode(e.Mode),
			})
		case "border-corner":
			sources = append(sources, clipmask.BorderCornerSource{Corner: clipmask.BorderCornerClip{
				Corner:    clipmask.BorderCorner(e.Corner),
				Rect:      e.Rect.Rect(),
				Radius:    clipmask.Sz(e.Radius, e.Radius),
				Widths:    clipmask.Sz(e.Widths[0], e.Widths[1]),
				DashCount: e.Dashes,
			}})
		default:
			return nil, fmt.Errorf("clip %q: unknown source kind %q", n.Name, e.Kind)
		}
	}
	return sources, nil
}

// circleMask returns an alpha image that is opaque inside the inscribed
// circle and fades out over one pixel at its edge.
func circleMask(w, h int) *image.Alpha {
	img := image.NewAlpha(image.Rect(0, 0, w, h))
	cx, cy := float64(w)/2, float64(h)/2
	r := math.Min(cx, cy)
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			d := math.Hypot(float64(x)+0.5-cx, float64(y)+0.5-cy)
			a := math.Max(0, math.Min(1, r-d+0.5))
			img.SetAlpha(x, y, color.Alpha{A: uint8(a * 255)})
		}
	}
	return img
}
