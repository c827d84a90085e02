package docmeta

import "fmt"

// NodeID is the key of a node in the procedural computation graph.
//
// Node key 0 is reserved: it backs the virtual document root and is never
// assigned to a real computation node.
type NodeID uint64

// LayerID identifies a layer in the document tree. It is an opaque handle
// over the underlying node key, stored offset by one so that the zero value
// is free to act as the absent-link sentinel inside relation records.
// Two identifiers are equal iff their underlying node keys are equal.
type LayerID uint64

const (
	// NoLayer is the absent-link sentinel. No layer has this identifier.
	NoLayer LayerID = 0

	// RootLayer is the virtual root of the layer tree. It occupies the
	// reserved node key 0 and need not correspond to a real graph node.
	RootLayer LayerID = 1
)

// LayerIDFromNode constructs a LayerID from a node key without checking
// that the node actually produces a layer.
func LayerIDFromNode(node NodeID) LayerID {
	return LayerID(node) + 1
}

// NewLayerID constructs a LayerID from a node key. In debug builds
// (build tag "debug") it panics if the node is not a layer-producing node;
// constructing a layer identifier from a non-layer node is caller misuse.
func NewLayerID(node NodeID, graph Graph) LayerID {
	if debugChecks && !isLayerNode(node, graph) {
		panic(fmt.Sprintf("docmeta: layer identifier constructed from non-layer node %d", node))
	}
	return LayerIDFromNode(node)
}

// isLayerNode reports whether the node key may back a layer identifier.
// The reserved root key always qualifies.
func isLayerNode(node NodeID, graph Graph) bool {
	return node == RootLayer.Node() || graph.IsLayer(node)
}

// Node returns the underlying node key. The receiver must not be NoLayer.
func (l LayerID) Node() NodeID {
	return NodeID(l - 1)
}

// String implements fmt.Stringer.
func (l LayerID) String() string {
	if l == NoLayer {
		return "Layer(none)"
	}
	return fmt.Sprintf("Layer(node=%d)", l.Node())
}

// nodeRelations is the per-layer tree-link record. Every link is a weak
// reference into the structure map, NoLayer when absent. The five links of
// all records under a parent form one consistent doubly-linked child list.
type nodeRelations struct {
	parent          LayerID
	previousSibling LayerID
	nextSibling     LayerID
	firstChild      LayerID
	lastChild       LayerID
}
