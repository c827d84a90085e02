package docmeta

// ClickTarget is a cached hit-test shape associated with a layer, used for
// bounding-box and pointer-hit queries. The outline lives in layer space.
type ClickTarget struct {
	Outline Quad
}

// BoundingBoxWithTransform returns the axis-aligned bounding box of the
// outline under the given transform.
func (c ClickTarget) BoundingBoxWithTransform(transform Matrix) Rect {
	return transform.TransformQuad(c.Outline).BoundingBox()
}

// Contains reports whether the point hits the outline under the given
// transform.
func (c ClickTarget) Contains(transform Matrix, p Point) bool {
	return transform.TransformQuad(c.Outline).Contains(p)
}

// UpdateClickTargets replaces the cached hit-test shapes wholesale after a
// hit-test pass. The map is taken over by the metadata.
func (m *DocumentMetadata) UpdateClickTargets(clickTargets map[LayerID][]ClickTarget) {
	if clickTargets == nil {
		clickTargets = make(map[LayerID][]ClickTarget)
	}
	m.clickTargets = clickTargets
}

// ClickTargets returns the cached hit-test shapes of a layer in order, or
// nil when the layer has none. A layer without shapes is a legitimate
// state, for example a just-created layer with no geometry yet.
func (m *DocumentMetadata) ClickTargets(layer LayerID) []ClickTarget {
	return m.clickTargets[layer]
}

// LayerOutline iterates the outline quads of the layer's click targets.
func (m *DocumentMetadata) LayerOutline(layer LayerID) []Quad {
	targets := m.clickTargets[layer]
	if len(targets) == 0 {
		return nil
	}
	outlines := make([]Quad, len(targets))
	for i, target := range targets {
		outlines[i] = target.Outline
	}
	return outlines
}

// BoundingBoxWithTransform returns the bounding box of the layer's click
// targets in the given transform space: the union of each shape's own
// bounding box under that transform. ok is false when the layer has no
// cached shapes.
func (m *DocumentMetadata) BoundingBoxWithTransform(layer LayerID, transform Matrix) (bounds Rect, ok bool) {
	for _, target := range m.clickTargets[layer] {
		b := target.BoundingBoxWithTransform(transform)
		if ok {
			bounds = bounds.Union(b)
		} else {
			bounds, ok = b, true
		}
	}
	return bounds, ok
}

// NonzeroBoundingBox returns the layer's bounding box in its own
// untransformed space, guaranteed non-degenerate: a missing box defaults to
// the zero box, and any axis with an extent below 1e-10 is widened to
// exactly 1 unit, anchored at the minimum corner.
func (m *DocumentMetadata) NonzeroBoundingBox(layer LayerID) Rect {
	bounds, _ := m.BoundingBoxWithTransform(layer, Identity())
	if bounds.Max.X-bounds.Min.X < 1e-10 {
		bounds.Max.X = bounds.Min.X + 1
	}
	if bounds.Max.Y-bounds.Min.Y < 1e-10 {
		bounds.Max.Y = bounds.Min.Y + 1
	}
	return bounds
}

// BoundingBoxDocument returns the bounding box of the layer's click targets
// in document space.
func (m *DocumentMetadata) BoundingBoxDocument(layer LayerID) (Rect, bool) {
	return m.BoundingBoxWithTransform(layer, m.TransformToDocument(layer))
}

// BoundingBoxViewport returns the bounding box of the layer's click targets
// in viewport space.
func (m *DocumentMetadata) BoundingBoxViewport(layer LayerID) (Rect, bool) {
	return m.BoundingBoxWithTransform(layer, m.TransformToViewport(layer))
}

// DocumentBoundsViewportSpace returns the bounds of all layers in viewport
// space. ok is false when no layer has cached geometry.
func (m *DocumentMetadata) DocumentBoundsViewportSpace() (bounds Rect, ok bool) {
	for layer := range m.AllLayers().Forward() {
		if b, found := m.BoundingBoxViewport(layer); found {
			if ok {
				bounds = bounds.Union(b)
			} else {
				bounds, ok = b, true
			}
		}
	}
	return bounds, ok
}

// DocumentBoundsDocumentSpace returns the bounds of all layers in document
// space, optionally excluding artboards.
func (m *DocumentMetadata) DocumentBoundsDocumentSpace(includeArtboards bool) (bounds Rect, ok bool) {
	for layer := range m.AllLayers().Forward() {
		if !includeArtboards && m.IsArtboard(layer) {
			continue
		}
		if b, found := m.BoundingBoxDocument(layer); found {
			if ok {
				bounds = bounds.Union(b)
			} else {
				bounds, ok = b, true
			}
		}
	}
	return bounds, ok
}

// SelectedBoundsDocumentSpace returns the bounds of the selected layers in
// document space, optionally excluding artboards.
func (m *DocumentMetadata) SelectedBoundsDocumentSpace(includeArtboards bool) (bounds Rect, ok bool) {
	for layer := range m.SelectedLayers() {
		if !includeArtboards && m.IsArtboard(layer) {
			continue
		}
		if b, found := m.BoundingBoxDocument(layer); found {
			if ok {
				bounds = bounds.Union(b)
			} else {
				bounds, ok = b, true
			}
		}
	}
	return bounds, ok
}
