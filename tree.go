package docmeta

import "fmt"

// relations returns the link record of a layer, or nil for unknown layers.
func (m *DocumentMetadata) relations(layer LayerID) *nodeRelations {
	return m.structure[layer]
}

// relationsMut returns the link record of a layer, creating it on demand.
func (m *DocumentMetadata) relationsMut(layer LayerID) *nodeRelations {
	r := m.structure[layer]
	if r == nil {
		r = &nodeRelations{}
		m.structure[layer] = r
	}
	return r
}

// assertAbsent panics if the layer is already part of the tree. Inserting
// an existing identifier is a programming-contract violation, not a
// recoverable runtime error.
func (m *DocumentMetadata) assertAbsent(layer LayerID) {
	if _, ok := m.structure[layer]; ok {
		panic(fmt.Sprintf("docmeta: cannot add already existing layer %v", layer))
	}
}

// LayerExists reports whether the layer is part of the tree.
func (m *DocumentMetadata) LayerExists(layer LayerID) bool {
	_, ok := m.structure[layer]
	return ok
}

// Parent returns the parent of a layer, or NoLayer for the root and for
// unknown layers.
func (m *DocumentMetadata) Parent(layer LayerID) LayerID {
	if r := m.relations(layer); r != nil {
		return r.parent
	}
	return NoLayer
}

// PreviousSibling returns the sibling above the layer in the tree, or
// NoLayer if the layer is its parent's first child.
func (m *DocumentMetadata) PreviousSibling(layer LayerID) LayerID {
	if r := m.relations(layer); r != nil {
		return r.previousSibling
	}
	return NoLayer
}

// NextSibling returns the sibling below the layer in the tree, or NoLayer
// if the layer is its parent's last child.
func (m *DocumentMetadata) NextSibling(layer LayerID) LayerID {
	if r := m.relations(layer); r != nil {
		return r.nextSibling
	}
	return NoLayer
}

// FirstChild returns the topmost child of the layer, or NoLayer.
func (m *DocumentMetadata) FirstChild(layer LayerID) LayerID {
	if r := m.relations(layer); r != nil {
		return r.firstChild
	}
	return NoLayer
}

// LastChild returns the bottommost child of the layer, or NoLayer.
func (m *DocumentMetadata) LastChild(layer LayerID) LayerID {
	if r := m.relations(layer); r != nil {
		return r.lastChild
	}
	return NoLayer
}

// HasChildren reports whether the layer has at least one child.
func (m *DocumentMetadata) HasChildren(layer LayerID) bool {
	return m.FirstChild(layer) != NoLayer
}

// PushFrontChild inserts new as the first child of parent.
// Panics if new already exists in the tree. O(1).
func (m *DocumentMetadata) PushFrontChild(parent, new LayerID) {
	m.assertAbsent(new)
	p := m.relationsMut(parent)
	oldFirst := p.firstChild
	p.firstChild = new
	if p.lastChild == NoLayer {
		p.lastChild = new
	}
	if oldFirst != NoLayer {
		m.relationsMut(oldFirst).previousSibling = new
	}
	n := m.relationsMut(new)
	n.nextSibling = oldFirst
	n.parent = parent
}

// PushChild inserts new as the last child of parent.
// Panics if new already exists in the tree. O(1).
func (m *DocumentMetadata) PushChild(parent, new LayerID) {
	m.assertAbsent(new)
	p := m.relationsMut(parent)
	oldLast := p.lastChild
	p.lastChild = new
	if p.firstChild == NoLayer {
		p.firstChild = new
	}
	if oldLast != NoLayer {
		m.relationsMut(oldLast).nextSibling = new
	}
	n := m.relationsMut(new)
	n.previousSibling = oldLast
	n.parent = parent
}

// AddBefore inserts new immediately above anchor among its siblings,
// inheriting anchor's parent. Panics if new already exists in the tree.
// O(1).
func (m *DocumentMetadata) AddBefore(anchor, new LayerID) {
	m.assertAbsent(new)
	parent := m.Parent(anchor)
	n := m.relationsMut(new)
	n.nextSibling = anchor
	n.parent = parent

	a := m.relationsMut(anchor)
	oldPrevious := a.previousSibling
	a.previousSibling = new
	if oldPrevious != NoLayer {
		m.relationsMut(oldPrevious).nextSibling = new
		m.relationsMut(new).previousSibling = oldPrevious
	} else if parent != NoLayer {
		if p := m.relationsMut(parent); p.firstChild == anchor {
			p.firstChild = new
		}
	}
}

// AddAfter inserts new immediately below anchor among its siblings,
// inheriting anchor's parent. Panics if new already exists in the tree.
// O(1).
func (m *DocumentMetadata) AddAfter(anchor, new LayerID) {
	m.assertAbsent(new)
	parent := m.Parent(anchor)
	n := m.relationsMut(new)
	n.previousSibling = anchor
	n.parent = parent

	a := m.relationsMut(anchor)
	oldNext := a.nextSibling
	a.nextSibling = new
	if oldNext != NoLayer {
		m.relationsMut(oldNext).previousSibling = new
		m.relationsMut(new).nextSibling = oldNext
	} else if parent != NoLayer {
		if p := m.relationsMut(parent); p.lastChild == anchor {
			p.lastChild = new
		}
	}
}

// Delete removes the layer and all its descendants from the tree, splicing
// its previous and next siblings together. O(subtree size).
func (m *DocumentMetadata) Delete(layer LayerID) {
	previous := m.PreviousSibling(layer)
	next := m.NextSibling(layer)

	if previous != NoLayer {
		m.relationsMut(previous).nextSibling = next
	}
	if next != NoLayer {
		m.relationsMut(next).previousSibling = previous
	}
	if parent := m.Parent(layer); parent != NoLayer {
		p := m.relationsMut(parent)
		if p.firstChild == layer {
			p.firstChild = next
		}
		if p.lastChild == layer {
			p.lastChild = previous
		}
	}

	doomed := []LayerID{layer}
	for descendant := range m.Descendants(layer).Forward() {
		doomed = append(doomed, descendant)
	}
	for _, d := range doomed {
		delete(m.structure, d)
	}
}

// HasAncestor reports whether other occurs on layer's ancestor chain,
// including layer itself.
func (m *DocumentMetadata) HasAncestor(layer, other LayerID) bool {
	for ancestor := range m.Ancestors(layer) {
		if ancestor == other {
			return true
		}
	}
	return false
}

// ChildOfRoot returns the ancestor of the layer that is a direct child of
// the root. Panics for the root itself and for disconnected layers; any
// layer reachable from the root has such an ancestor by construction.
func (m *DocumentMetadata) ChildOfRoot(layer LayerID) LayerID {
	top := NoLayer
	last := NoLayer
	for ancestor := range m.Ancestors(layer) {
		last = ancestor
		if ancestor != RootLayer {
			top = ancestor
		}
	}
	if top == NoLayer || last != RootLayer {
		panic("docmeta: there should be a layer between the root and " + layer.String())
	}
	return top
}
