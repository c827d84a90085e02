package docmeta

import "iter"

// axis selects the single relation an axis iterator follows. One stepping
// function serves all three walks instead of duplicating the
// step-until-absent logic per relation.
type axis uint8

const (
	axisAncestor axis = iota
	axisNextSibling
	axisLastChild
)

// step follows the axis relation once, returning NoLayer at the end of the
// chain.
func (m *DocumentMetadata) step(layer LayerID, a axis) LayerID {
	switch a {
	case axisAncestor:
		return m.Parent(layer)
	case axisNextSibling:
		return m.NextSibling(layer)
	default:
		return m.LastChild(layer)
	}
}

// axisSeq iterates from start along a single relation until it runs out.
func (m *DocumentMetadata) axisSeq(start LayerID, a axis) iter.Seq[LayerID] {
	return func(yield func(LayerID) bool) {
		for layer := start; layer != NoLayer; layer = m.step(layer, a) {
			if !yield(layer) {
				return
			}
		}
	}
}

// Ancestors iterates the layer's ancestor chain, starting with the layer
// itself and ending at the root.
func (m *DocumentMetadata) Ancestors(layer LayerID) iter.Seq[LayerID] {
	return m.axisSeq(layer, axisAncestor)
}

// Children iterates the direct children of a layer, from first to last.
// Recursive children are not visited.
func (m *DocumentMetadata) Children(layer LayerID) iter.Seq[LayerID] {
	return m.axisSeq(m.FirstChild(layer), axisNextSibling)
}

// LastChildren iterates the last-child chain starting from (and including)
// the layer itself.
func (m *DocumentMetadata) LastChildren(layer LayerID) iter.Seq[LayerID] {
	return m.axisSeq(layer, axisLastChild)
}

// deepestLastChild returns the end of the last-child chain from layer,
// which is layer itself when it has no children.
func (m *DocumentMetadata) deepestLastChild(layer LayerID) LayerID {
	deepest := layer
	for child := m.LastChild(deepest); child != NoLayer; child = m.LastChild(deepest) {
		deepest = child
	}
	return deepest
}

// DescendantsIter iterates a subtree in pre-order, excluding the subtree
// root itself. It is double-ended: Next walks the pre-order forward and
// NextBack walks the exact reverse of that same order. The two cursors
// never cross; the sequence is exhausted once they meet, regardless of how
// calls to Next and NextBack are mixed.
type DescendantsIter struct {
	front LayerID
	back  LayerID
	m     *DocumentMetadata
}

// Descendants returns a double-ended iterator over all descendants of the
// layer, not including the layer itself.
func (m *DocumentMetadata) Descendants(layer LayerID) *DescendantsIter {
	back := NoLayer
	if last := m.LastChild(layer); last != NoLayer {
		back = m.deepestLastChild(last)
	}
	return &DescendantsIter{
		front: m.FirstChild(layer),
		back:  back,
		m:     m,
	}
}

// Next yields the next layer in pre-order, or false when the iterator is
// exhausted.
func (it *DescendantsIter) Next() (LayerID, bool) {
	if it.front == it.back {
		layer := it.front
		it.front, it.back = NoLayer, NoLayer
		return layer, layer != NoLayer
	}
	layer := it.front
	if layer == NoLayer {
		return NoLayer, false
	}
	// Pre-order successor: first child if any, otherwise the next sibling
	// of the nearest ancestor that has one.
	next := it.m.FirstChild(layer)
	if next == NoLayer {
		for ancestor := range it.m.Ancestors(layer) {
			if sibling := it.m.NextSibling(ancestor); sibling != NoLayer {
				next = sibling
				break
			}
		}
	}
	it.front = next
	return layer, true
}

// NextBack yields the next layer in reverse pre-order, or false when the
// iterator is exhausted.
func (it *DescendantsIter) NextBack() (LayerID, bool) {
	if it.front == it.back {
		layer := it.back
		it.front, it.back = NoLayer, NoLayer
		return layer, layer != NoLayer
	}
	layer := it.back
	if layer == NoLayer {
		return NoLayer, false
	}
	// Pre-order predecessor within the subtree: the previous sibling's
	// deepest last-child descendant, otherwise the parent.
	if previous := it.m.PreviousSibling(layer); previous != NoLayer {
		it.back = it.m.deepestLastChild(previous)
	} else {
		it.back = it.m.Parent(layer)
	}
	return layer, true
}

// Forward drains the iterator front to back as an iter.Seq, so it can be
// consumed with a for-range loop.
func (it *DescendantsIter) Forward() iter.Seq[LayerID] {
	return func(yield func(LayerID) bool) {
		for layer, ok := it.Next(); ok; layer, ok = it.Next() {
			if !yield(layer) {
				return
			}
		}
	}
}

// Backward drains the iterator back to front as an iter.Seq.
func (it *DescendantsIter) Backward() iter.Seq[LayerID] {
	return func(yield func(LayerID) bool) {
		for layer, ok := it.NextBack(); ok; layer, ok = it.NextBack() {
			if !yield(layer) {
				return
			}
		}
	}
}
