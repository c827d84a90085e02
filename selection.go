package docmeta

import (
	"iter"
	"slices"
)

// SelectionChanged marks that the set of selected nodes changed. Selection
// mutators return it so that calling code propagates the change to
// dependent observers (redraw, UI refresh) instead of silently dropping it.
type SelectionChanged struct{}

// SelectedNodes iterates the raw node keys of the selection in selection
// order. Duplicate entries are possible and are reported as stored.
func (m *DocumentMetadata) SelectedNodes() iter.Seq[NodeID] {
	return slices.Values(m.selectedNodes)
}

// SelectedNodesRef returns the backing selection slice. Callers must not
// mutate it.
func (m *DocumentMetadata) SelectedNodesRef() []NodeID {
	return m.selectedNodes
}

// HasSelectedNodes reports whether anything is selected.
func (m *DocumentMetadata) HasSelectedNodes() bool {
	return len(m.selectedNodes) > 0
}

// SelectedLayers iterates the layers of the document, in tree order, whose
// node is part of the selection.
func (m *DocumentMetadata) SelectedLayers() iter.Seq[LayerID] {
	return func(yield func(LayerID) bool) {
		for layer := range m.AllLayers().Forward() {
			if slices.Contains(m.selectedNodes, layer.Node()) && !yield(layer) {
				return
			}
		}
	}
}

// SelectedLayersExceptArtboards iterates the selected layers that are not
// artboards.
func (m *DocumentMetadata) SelectedLayersExceptArtboards() iter.Seq[LayerID] {
	return func(yield func(LayerID) bool) {
		for layer := range m.SelectedLayers() {
			if !m.IsArtboard(layer) && !yield(layer) {
				return
			}
		}
	}
}

// SelectedLayersContains reports whether the layer is part of the
// selection.
func (m *DocumentMetadata) SelectedLayersContains(layer LayerID) bool {
	for selected := range m.SelectedLayers() {
		if selected == layer {
			return true
		}
	}
	return false
}

// SetSelectedNodes replaces the selection. The slice is taken over by the
// metadata; selection order is preserved and duplicates are not removed.
func (m *DocumentMetadata) SetSelectedNodes(nodes []NodeID) SelectionChanged {
	m.selectedNodes = nodes
	return SelectionChanged{}
}

// AddSelectedNodes appends nodes to the selection.
func (m *DocumentMetadata) AddSelectedNodes(nodes ...NodeID) SelectionChanged {
	m.selectedNodes = append(m.selectedNodes, nodes...)
	return SelectionChanged{}
}

// RetainSelectedNodes keeps only the selected nodes for which keep returns
// true, preserving order.
func (m *DocumentMetadata) RetainSelectedNodes(keep func(NodeID) bool) SelectionChanged {
	kept := m.selectedNodes[:0]
	for _, node := range m.selectedNodes {
		if keep(node) {
			kept = append(kept, node)
		}
	}
	m.selectedNodes = kept
	return SelectionChanged{}
}

// ClearSelectedNodes empties the selection.
func (m *DocumentMetadata) ClearSelectedNodes() SelectionChanged {
	return m.SetSelectedNodes(nil)
}
