package docmeta

import (
	"math"
	"testing"
)

func quadsAlmostEqual(a, b Quad, tolerance float64) bool {
	for i := range a {
		if math.Abs(a[i].X-b[i].X) > tolerance || math.Abs(a[i].Y-b[i].Y) > tolerance {
			return false
		}
	}
	return true
}

func TestQuadInflate(t *testing.T) {
	mirror := Scale(-1, 1)
	tests := []struct {
		name   string
		quad   Quad
		offset float64
		want   Quad
	}{
		{
			"unit box by half",
			QuadFromBox(Pt(0, 0), Pt(1, 1)),
			0.5,
			QuadFromBox(Pt(-0.5, -0.5), Pt(1.5, 1.5)),
		},
		{
			"reversed corners",
			QuadFromBox(Pt(1, 1), Pt(0, 0)),
			0.5,
			QuadFromBox(Pt(1.5, 1.5), Pt(-0.5, -0.5)),
		},
		{
			"mirrored box commutes with the mirror",
			mirror.TransformQuad(QuadFromBox(Pt(0, 0), Pt(1, 1))),
			0.5,
			mirror.TransformQuad(QuadFromBox(Pt(-0.5, -0.5), Pt(1.5, 1.5))),
		},
		{
			"degenerate point quad stays put",
			QuadFromPoint(Pt(3, 4)),
			0.5,
			QuadFromPoint(Pt(3, 4)),
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.quad.Inflate(tt.offset)
			if !quadsAlmostEqual(got, tt.want, 1e-4) {
				t.Errorf("Inflate(%v) = %v, want %v", tt.offset, got, tt.want)
			}
		})
	}
}

func TestQuadContains(t *testing.T) {
	box := QuadFromBox(Pt(0, 0), Pt(1, 1))
	reversed := QuadFromBox(Pt(1, 1), Pt(0, 0))
	mirrored := Scale(-1, 1).TransformQuad(box)
	rotated := Rotate(math.Pi / 4).TransformQuad(box)

	tests := []struct {
		name string
		quad Quad
		p    Point
		want bool
	}{
		{"center of box", box, Pt(0.5, 0.5), true},
		{"center of reversed box", reversed, Pt(0.5, 0.5), true},
		{"above box", box, Pt(1, 1.1), false},
		{"below reversed box", reversed, Pt(0.5, -0.01), false},
		{"center of mirrored box", mirrored, Pt(-0.5, 0.5), true},
		{"outside mirrored box", mirrored, Pt(0.5, 0.5), false},
		{"inside rotated box", rotated, Pt(0, 0.7), true},
		{"corner gap of rotated box", rotated, Pt(0.6, 0.1), false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.quad.Contains(tt.p); got != tt.want {
				t.Errorf("Contains(%v) = %v, want %v", tt.p, got, tt.want)
			}
		})
	}
}

func TestQuadBoundingBox(t *testing.T) {
	tests := []struct {
		name string
		quad Quad
		want Rect
	}{
		{
			"axis-aligned box",
			QuadFromBox(Pt(1, 2), Pt(3, 5)),
			Rect{Min: Pt(1, 2), Max: Pt(3, 5)},
		},
		{
			"reversed corners normalize",
			QuadFromBox(Pt(3, 5), Pt(1, 2)),
			Rect{Min: Pt(1, 2), Max: Pt(3, 5)},
		},
		{
			"degenerate point",
			QuadFromPoint(Pt(2, 2)),
			Rect{Min: Pt(2, 2), Max: Pt(2, 2)},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.quad.BoundingBox(); got != tt.want {
				t.Errorf("BoundingBox() = %v, want %v", got, tt.want)
			}
		})
	}

	// A rotated quad still produces its axis-aligned bounds.
	rotated := Rotate(math.Pi / 2).TransformQuad(QuadFromBox(Pt(0, 0), Pt(1, 2)))
	got := rotated.BoundingBox()
	want := Rect{Min: Pt(-2, 0), Max: Pt(0, 1)}
	if math.Abs(got.Min.X-want.Min.X) > 1e-12 || math.Abs(got.Max.Y-want.Max.Y) > 1e-12 ||
		math.Abs(got.Min.Y-want.Min.Y) > 1e-12 || math.Abs(got.Max.X-want.Max.X) > 1e-12 {
		t.Errorf("rotated BoundingBox() = %v, want %v", got, want)
	}
}

func TestQuadCenter(t *testing.T) {
	quad := QuadFromBox(Pt(0, 0), Pt(2, 4))
	if got := quad.Center(); got != Pt(1, 2) {
		t.Errorf("Center() = %v, want (1,2)", got)
	}
	if got := QuadFromPoint(Pt(5, 6)).Center(); got != Pt(5, 6) {
		t.Errorf("point quad Center() = %v, want (5,6)", got)
	}
}

func TestRectUnion(t *testing.T) {
	tests := []struct {
		name string
		a, b Rect
		want Rect
	}{
		{
			"disjoint",
			Rect{Min: Pt(0, 0), Max: Pt(1, 1)},
			Rect{Min: Pt(2, 2), Max: Pt(3, 3)},
			Rect{Min: Pt(0, 0), Max: Pt(3, 3)},
		},
		{
			"contained",
			Rect{Min: Pt(0, 0), Max: Pt(4, 4)},
			Rect{Min: Pt(1, 1), Max: Pt(2, 2)},
			Rect{Min: Pt(0, 0), Max: Pt(4, 4)},
		},
		{
			"partial overlap",
			Rect{Min: Pt(0, 0), Max: Pt(2, 2)},
			Rect{Min: Pt(1, -1), Max: Pt(3, 1)},
			Rect{Min: Pt(0, -1), Max: Pt(3, 2)},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.a.Union(tt.b); got != tt.want {
				t.Errorf("Union() = %v, want %v", got, tt.want)
			}
			if got := tt.b.Union(tt.a); got != tt.want {
				t.Errorf("Union() is not commutative: %v, want %v", got, tt.want)
			}
		})
	}
}
