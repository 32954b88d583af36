package clipmask

import (
	"image"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/gogpu/clipmask/resource"
)

func geom(local Rect, device image.Rectangle) *Geometry {
	return &Geometry{LocalRect: local, DeviceRect: device}
}

func TestRefreshBounds(t *testing.T) {
	box := NewRect(0, 0, 100, 100)

	tests := []struct {
		name    string
		sources []ClipSource
		want    MaskBounds
	}{
		{
			name:    "rectangle",
			sources: []ClipSource{RectangleSource{Rect: box}},
			want: MaskBounds{
				Outer: geom(box, image.Rect(0, 0, 100, 100)),
				Inner: geom(box, image.Rect(0, 0, 100, 100)),
			},
		},
		{
			name: "rounded rectangle",
			sources: []ClipSource{
				RoundedRectangleSource{Rect: box, Radii: UniformRadius(20), Mode: Clip},
			},
			want: MaskBounds{
				Outer: geom(box, image.Rect(0, 0, 100, 100)),
				Inner: geom(NewRect(20, 20, 60, 60), image.Rect(20, 20, 80, 80)),
			},
		},
		{
			name: "rounded corners too large for an inner rect",
			sources: []ClipSource{
				RoundedRectangleSource{Rect: box, Radii: UniformRadius(60), Mode: Clip},
			},
			want: MaskBounds{
				Outer: geom(box, image.Rect(0, 0, 100, 100)),
				Inner: &Geometry{},
			},
		},
		{
			name: "negative radii keep inner inside outer",
			sources: []ClipSource{
				RoundedRectangleSource{Rect: box, Radii: UniformRadius(-10), Mode: Clip},
			},
			want: MaskBounds{
				Outer: geom(box, image.Rect(0, 0, 100, 100)),
				Inner: geom(box, image.Rect(0, 0, 100, 100)),
			},
		},
		{
			name: "clip out",
			sources: []ClipSource{
				RectangleSource{Rect: box},
				RoundedRectangleSource{Rect: NewRect(10, 10, 20, 20), Radii: UniformRadius(5), Mode: ClipOut},
			},
			want: MaskBounds{Inner: &Geometry{}},
		},
		{
			name: "clip out stops before later sources",
			sources: []ClipSource{
				RoundedRectangleSource{Rect: box, Mode: ClipOut},
				RectangleSource{Rect: NewRect(0, 0, 10, 10)},
			},
			want: MaskBounds{Inner: &Geometry{}},
		},
		{
			name: "image mask",
			sources: []ClipSource{
				ImageSource{Mask: ImageMask{Image: resource.ImageKey{ID: 1}, Rect: NewRect(10, 10, 40, 40)}},
			},
			want: MaskBounds{
				Outer: geom(NewRect(10, 10, 40, 40), image.Rect(10, 10, 50, 50)),
				Inner: &Geometry{},
			},
		},
		{
			name: "repeating image mask leaves outer to the other sources",
			sources: []ClipSource{
				RectangleSource{Rect: box},
				ImageSource{Mask: ImageMask{Rect: NewRect(10, 10, 40, 40), Repeat: true}},
			},
			want: MaskBounds{
				Outer: geom(box, image.Rect(0, 0, 100, 100)),
				Inner: &Geometry{},
			},
		},
		{
			name: "border corner",
			sources: []ClipSource{
				RectangleSource{Rect: box},
				BorderCornerSource{Corner: BorderCornerClip{Corner: TopLeft, Rect: NewRect(0, 0, 10, 10), DashCount: 3}},
			},
			want: MaskBounds{Inner: &Geometry{}},
		},
		{
			name: "disjoint rectangles",
			sources: []ClipSource{
				RectangleSource{Rect: NewRect(0, 0, 10, 10)},
				RectangleSource{Rect: NewRect(20, 20, 10, 10)},
			},
			want: MaskBounds{Outer: &Geometry{}, Inner: &Geometry{}},
		},
		{
			name: "touching rectangles do not intersect",
			sources: []ClipSource{
				RectangleSource{Rect: NewRect(0, 0, 10, 10)},
				RectangleSource{Rect: NewRect(10, 0, 10, 10)},
			},
			want: MaskBounds{Outer: &Geometry{}, Inner: &Geometry{}},
		},
		{
			name: "rectangle then rounded rectangle",
			sources: []ClipSource{
				RectangleSource{Rect: NewRect(0, 0, 50, 100)},
				RoundedRectangleSource{Rect: box, Radii: UniformRadius(20), Mode: Clip},
			},
			want: MaskBounds{
				Outer: geom(NewRect(0, 0, 50, 100), image.Rect(0, 0, 50, 100)),
				Inner: geom(NewRect(20, 20, 30, 60), image.Rect(20, 20, 50, 80)),
			},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cs := NewClipSources(tt.sources)
			cs.Refresh(Identity(), 1, nil, nil)
			if diff := cmp.Diff(tt.want, cs.Bounds()); diff != "" {
				t.Errorf("Bounds() mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestRefreshEmptyIsNoop(t *testing.T) {
	cs := NewClipSources(nil)
	cs.Refresh(Scale(3, 3), 2, nil, nil)

	if diff := cmp.Diff(MaskBounds{}, cs.Bounds()); diff != "" {
		t.Errorf("Bounds() of empty sources mismatch (-want +got):\n%s", diff)
	}
	if cs.IsMasking() {
		t.Error("IsMasking() = true for empty sources")
	}
}

func TestRefreshIdempotent(t *testing.T) {
	cs := NewClipSources([]ClipSource{
		RectangleSource{Rect: NewRect(5, 5, 90, 90)},
		RoundedRectangleSource{Rect: NewRect(0, 0, 100, 100), Radii: UniformRadius(12), Mode: Clip},
	})
	m := Translate(7, 3).Multiply(Rotate(0.3))

	cs.Refresh(m, 1.5, nil, nil)
	first := cs.Bounds()
	cs.Refresh(m, 1.5, nil, nil)

	if diff := cmp.Diff(first, cs.Bounds()); diff != "" {
		t.Errorf("second Refresh() changed bounds (-first +second):\n%s", diff)
	}
}

func TestRefreshScales(t *testing.T) {
	box := NewRect(0, 0, 100, 100)
	want := image.Rect(0, 0, 200, 200)

	for _, tc := range []struct {
		name string
		m    Matrix
		dpr  float64
	}{
		{"transform", Scale(2, 2), 1},
		{"device pixel ratio", Identity(), 2},
	} {
		t.Run(tc.name, func(t *testing.T) {
			cs := NewClipSources([]ClipSource{RectangleSource{Rect: box}})
			cs.Refresh(tc.m, tc.dpr, nil, nil)

			b := cs.Bounds()
			if b.Outer.DeviceRect != want || b.Inner.DeviceRect != want {
				t.Errorf("device rects = %v, %v, want %v", b.Outer.DeviceRect, b.Inner.DeviceRect, want)
			}
			if b.Outer.LocalRect != box {
				t.Errorf("LocalRect = %v, want %v", b.Outer.LocalRect, box)
			}
		})
	}
}

func TestRefreshReprojectsCachedLocalBounds(t *testing.T) {
	cs := NewClipSources([]ClipSource{
		RoundedRectangleSource{Rect: NewRect(0, 0, 100, 100), Radii: UniformRadius(20), Mode: Clip},
	})

	cs.Refresh(Identity(), 1, nil, nil)
	cs.Refresh(Translate(10, 0), 1, nil, nil)

	b := cs.Bounds()
	if got, want := b.Outer.DeviceRect, image.Rect(10, 0, 110, 100); got != want {
		t.Errorf("Outer.DeviceRect = %v, want %v", got, want)
	}
	if got, want := b.Inner.DeviceRect, image.Rect(30, 20, 90, 80); got != want {
		t.Errorf("Inner.DeviceRect = %v, want %v", got, want)
	}
}

func TestInnerInsideOuter(t *testing.T) {
	sources := []ClipSource{
		RectangleSource{Rect: NewRect(-20, 5, 140, 80)},
		RoundedRectangleSource{Rect: NewRect(0, 0, 100, 100), Radii: UniformRadius(8), Mode: Clip},
	}
	for _, angle := range []float64{0, 0.2, 0.7, 1.4} {
		for _, dpr := range []float64{1, 1.5, 2} {
			cs := NewClipSources(sources)
			cs.Refresh(Translate(50, 50).Multiply(Rotate(angle)), dpr, nil, nil)

			b := cs.Bounds()
			if !b.Outer.LocalRect.Contains(b.Inner.LocalRect) {
				t.Errorf("angle %v dpr %v: local inner %v outside outer %v",
					angle, dpr, b.Inner.LocalRect, b.Outer.LocalRect)
			}
			if b.HasSafeInner() && !b.Inner.DeviceRect.In(b.Outer.DeviceRect) {
				t.Errorf("angle %v dpr %v: device inner %v outside outer %v",
					angle, dpr, b.Inner.DeviceRect, b.Outer.DeviceRect)
			}
		}
	}
}

func TestHasSafeInner(t *testing.T) {
	tests := []struct {
		name string
		mb   MaskBounds
		want bool
	}{
		{"absent", MaskBounds{}, false},
		{"zero", MaskBounds{Inner: &Geometry{}}, false},
		{"pixels", MaskBounds{Inner: geom(NewRect(0, 0, 1, 1), image.Rect(0, 0, 1, 1))}, true},
	}
	for _, tt := range tests {
		if got := tt.mb.HasSafeInner(); got != tt.want {
			t.Errorf("%s: HasSafeInner() = %v, want %v", tt.name, got, tt.want)
		}
	}
}

func TestBoundsReturnsCopy(t *testing.T) {
	cs := NewClipSources([]ClipSource{RectangleSource{Rect: NewRect(0, 0, 10, 10)}})
	cs.Refresh(Identity(), 1, nil, nil)

	b := cs.Bounds()
	b.Outer.LocalRect = Rect{}

	if cs.Bounds().Outer.LocalRect.IsEmpty() {
		t.Error("modifying Bounds() result changed the cached bounds")
	}
}

func TestComputeLocalBoundsFallbackReason(t *testing.T) {
	tests := []struct {
		sources []ClipSource
		want    fallbackReason
	}{
		{[]ClipSource{RectangleSource{Rect: NewRect(0, 0, 1, 1)}}, fallbackNone},
		{[]ClipSource{RoundedRectangleSource{Mode: ClipOut}}, fallbackClipOut},
		{[]ClipSource{BorderCornerSource{}}, fallbackBorderCorner},
		{[]ClipSource{BorderCornerSource{}, RoundedRectangleSource{Mode: ClipOut}}, fallbackClipOut},
	}
	for _, tt := range tests {
		if _, got := computeLocalBounds(tt.sources); got != tt.want {
			t.Errorf("computeLocalBounds(%v) reason = %v, want %v", tt.sources, got, tt.want)
		}
	}
}

func BenchmarkRefresh(b *testing.B) {
	cs := NewClipSources([]ClipSource{
		RectangleSource{Rect: NewRect(0, 0, 400, 300)},
		RoundedRectangleSource{Rect: NewRect(10, 10, 380, 280), Radii: UniformRadius(24), Mode: Clip},
	})
	m := Translate(120, 80).Multiply(Rotate(0.25))

	b.ReportAllocs()
	for b.Loop() {
		cs.Refresh(m, 2, nil, nil)
	}
}
