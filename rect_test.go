package clipmask

import "testing"

func TestRectIntersection(t *testing.T) {
	tests := []struct {
		name   string
		a, b   Rect
		want   Rect
		wantOK bool
	}{
		{"overlap", NewRect(0, 0, 10, 10), NewRect(5, 5, 10, 10), NewRect(5, 5, 5, 5), true},
		{"contained", NewRect(0, 0, 10, 10), NewRect(2, 3, 4, 5), NewRect(2, 3, 4, 5), true},
		{"touching", NewRect(0, 0, 10, 10), NewRect(10, 0, 10, 10), Rect{}, false},
		{"disjoint", NewRect(0, 0, 10, 10), NewRect(20, 20, 1, 1), Rect{}, false},
		{"empty", NewRect(0, 0, 10, 10), NewRect(5, 5, 0, 0), Rect{}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := tt.a.Intersection(tt.b)
			if ok != tt.wantOK || got != tt.want {
				t.Errorf("Intersection() = (%v, %v), want (%v, %v)", got, ok, tt.want, tt.wantOK)
			}
		})
	}
}

func TestOptRect(t *testing.T) {
	o := someRect(maxClipRect())
	o = o.intersect(NewRect(0, 0, 10, 10))
	if got := o.orZero(); got != NewRect(0, 0, 10, 10) {
		t.Errorf("orZero() = %v, want (0,0,10,10)", got)
	}

	o = o.intersect(NewRect(50, 50, 1, 1))
	if o.ok {
		t.Fatal("empty overlap stayed known")
	}
	// Once unknown, later rects cannot bring it back.
	if o = o.intersect(NewRect(0, 0, 10, 10)); o.ok || o.orZero() != (Rect{}) {
		t.Errorf("unknown rect became %v", o)
	}
}

func TestMaxClipRect(t *testing.T) {
	r := maxClipRect()
	if r.X != -MaxClip || r.Y != -MaxClip || r.Right() != MaxClip || r.Bottom() != MaxClip {
		t.Errorf("maxClipRect() = %v, want ±%v square", r, MaxClip)
	}
}

func TestRectHelpers(t *testing.T) {
	r := NewRect(1, 2, 3, 4)
	if r.Right() != 4 || r.Bottom() != 6 {
		t.Errorf("Right/Bottom = %v/%v, want 4/6", r.Right(), r.Bottom())
	}
	if got := r.Translate(Pt(-1, -2)); got != NewRect(0, 0, 3, 4) {
		t.Errorf("Translate() = %v, want (0,0,3,4)", got)
	}
	if got := r.Center(); got != Pt(2.5, 4) {
		t.Errorf("Center() = %v, want (2.5,4)", got)
	}
	if !NewRect(0, 0, 10, 10).Contains(r) || r.Contains(NewRect(0, 0, 10, 10)) {
		t.Error("Contains() wrong")
	}
	if !NewRect(0, 0, 0, 5).IsEmpty() || r.IsEmpty() {
		t.Error("IsEmpty() wrong")
	}
}
