package docmeta

// UpstreamTransform is the pair of transforms cached for an evaluated graph
// node: the footprint transform in effect at the node's evaluation context
// (viewport-relative) and the node's own local transform.
type UpstreamTransform struct {
	Footprint Matrix
	Local     Matrix
}

// UpdateTransforms replaces the cached transforms wholesale after a graph
// evaluation pass. The map holds one entry per evaluated node, not only per
// layer, and is taken over by the metadata.
func (m *DocumentMetadata) UpdateTransforms(upstream map[NodeID]UpstreamTransform) {
	if upstream == nil {
		upstream = make(map[NodeID]UpstreamTransform)
	}
	m.upstreamTransforms = upstream
}

// TransformToViewport returns the cached transform from layer space to
// viewport space: the composed footprint and local transform of the nearest
// ancestor (including the layer itself) with a cache entry. Falls back to
// DocumentToViewport when no ancestor has one.
func (m *DocumentMetadata) TransformToViewport(layer LayerID) Matrix {
	for ancestor := range m.Ancestors(layer) {
		if t, ok := m.upstreamTransforms[ancestor.Node()]; ok {
			return t.Footprint.Multiply(t.Local)
		}
	}
	return m.DocumentToViewport
}

// TransformToDocument returns the cached transform from layer space to
// document space.
func (m *DocumentMetadata) TransformToDocument(layer LayerID) Matrix {
	return m.DocumentToViewport.Invert().Multiply(m.TransformToViewport(layer))
}

// NodeTransform returns the cached local transform of a graph node, or the
// identity when the node has no cache entry.
func (m *DocumentMetadata) NodeTransform(node NodeID) Matrix {
	if t, ok := m.upstreamTransforms[node]; ok {
		return t.Local
	}
	return Identity()
}

// DownstreamTransformToViewport returns the footprint transform produced by
// the layer itself (the transform applied to its children, not to it). When
// the layer has no cache entry it falls back to TransformToViewport.
func (m *DocumentMetadata) DownstreamTransformToViewport(layer LayerID) Matrix {
	if t, ok := m.upstreamTransforms[layer.Node()]; ok {
		return t.Footprint
	}
	return m.TransformToViewport(layer)
}
