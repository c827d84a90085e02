package docmeta

import "math"

// Quad is a simple quadrilateral defined by four ordered vertices.
// It is not required to be axis-aligned: transforming a Quad by an affine
// matrix transforms each vertex independently.
type Quad [4]Point

// QuadFromPoint creates a zero-sized quad with all four vertices at the
// given point.
func QuadFromPoint(p Point) Quad {
	return Quad{p, p, p, p}
}

// QuadFromBox converts a box defined by two corner points to a quad.
// The vertex order is a, a+width, b, a+height, so the winding follows the
// handedness of the box itself (corners may be given in either order).
func QuadFromBox(a, b Point) Quad {
	size := b.Sub(a)
	return Quad{a, a.Add(Pt(size.X, 0)), b, a.Add(Pt(0, size.Y))}
}

// QuadFromRect converts an axis-aligned Rect to a quad.
func QuadFromRect(r Rect) Quad {
	return QuadFromBox(r.Min, r.Max)
}

// BoundingBox returns the axis-aligned bounding box of the quad, the
// componentwise min/max over the four vertices. Valid for rotated quads.
func (q Quad) BoundingBox() Rect {
	min := q[0]
	max := q[0]
	for _, p := range q[1:] {
		min = min.Min(p)
		max = max.Max(p)
	}
	return Rect{Min: min, Max: max}
}

// Center returns the arithmetic mean of the four vertices.
func (q Quad) Center() Point {
	return q[0].Add(q[1]).Add(q[2]).Add(q[3]).Mul(0.25)
}

// Inflate expands the quad by the given offset on all sides.
//
// Each vertex moves along the bisector of its two incident edges, with the
// displacement length corrected for the interior angle so that straight
// edges of the inflated quad stay parallel-offset by exactly offset.
// Degenerate zero-length edges contribute nothing to the direction.
func (q Quad) Inflate(offset float64) Quad {
	vertex := func(before, i, after int) Point {
		in := q[i].Sub(q[before])
		out := q[after].Sub(q[i])
		angle := in.AngleBetween(out.Neg())
		length := offset / math.Cos(math.Pi/2-angle/2)
		dir := in.Perp().Normalize().Add(out.Perp().Normalize()).Normalize()
		return q[i].Add(dir.Mul(length))
	}
	return Quad{vertex(3, 0, 1), vertex(0, 1, 2), vertex(1, 2, 3), vertex(2, 3, 0)}
}

// Contains reports whether the point lies inside the quad, using an
// even-odd crossing-number test over the four edges. The half-open edge
// convention avoids double-counting shared vertices.
func (q Quad) Contains(p Point) bool {
	inside := false
	for i, j := 0, 3; i < 4; j, i = i, i+1 {
		if (q[i].Y > p.Y) != (q[j].Y > p.Y) &&
			p.X < (q[j].X-q[i].X)*(p.Y-q[i].Y)/(q[j].Y-q[i].Y)+q[i].X {
			inside = !inside
		}
	}
	return inside
}
