package docmeta

import "iter"

// Graph is the read surface of the procedural computation graph that the
// layer tree is projected from. The metadata layer never evaluates the
// graph; it only inspects its node/edge shape. The graph must be acyclic
// along primary-input chains.
//
// Sibling order is encoded in the graph itself: a layer node's first input
// leads upstream to its content (and thereby its children), and its second
// input links to the sibling below it.
type Graph interface {
	// HasNode reports whether a node with the given key exists.
	HasNode(node NodeID) bool

	// OutputNode resolves the designated output node of the graph.
	OutputNode() (NodeID, bool)

	// Input returns the node referenced by the given input slot, if the
	// slot exists and is a node link rather than an inline value.
	Input(node NodeID, index int) (NodeID, bool)

	// IsLayer reports whether the node produces renderable content and is
	// therefore projected into the layer tree.
	IsLayer(node NodeID) bool

	// IsArtboard reports whether the node is an artboard-type node.
	IsArtboard(node NodeID) bool

	// UpstreamFlow walks backward from start through the chain of primary
	// (first) inputs, yielding each node encountered. The starting node is
	// included only when includeStart is true.
	UpstreamFlow(start NodeID, includeStart bool) iter.Seq[NodeID]
}
