package docmeta

// Rect is an axis-aligned bounding box, stored as its minimum and maximum
// corners.
type Rect struct {
	Min, Max Point
}

// RectFromPoints returns the smallest Rect containing both points.
func RectFromPoints(a, b Point) Rect {
	return Rect{Min: a.Min(b), Max: a.Max(b)}
}

// Union returns the smallest Rect containing both r and s: the componentwise
// minimum of the minima and maximum of the maxima. It is the reduction
// operator used to aggregate per-layer bounds into document bounds.
func (r Rect) Union(s Rect) Rect {
	return Rect{
		Min: r.Min.Min(s.Min),
		Max: r.Max.Max(s.Max),
	}
}

// Size returns the extent of the Rect on each axis.
func (r Rect) Size() Point {
	return r.Max.Sub(r.Min)
}

// Center returns the midpoint of the Rect.
func (r Rect) Center() Point {
	return r.Min.Add(r.Max).Mul(0.5)
}
