package docmeta

import "iter"

// NodeKind classifies a Network node for tree projection.
type NodeKind uint8

const (
	// KindOperation is a generic computation node.
	KindOperation NodeKind = iota

	// KindLayer is a node that produces renderable content.
	KindLayer

	// KindArtboard is a page/canvas container node. It appears in a
	// layer's upstream content chain and marks that layer as an artboard.
	KindArtboard
)

// String returns a human-readable name for the node kind.
func (k NodeKind) String() string {
	switch k {
	case KindOperation:
		return "Operation"
	case KindLayer:
		return "Layer"
	case KindArtboard:
		return "Artboard"
	default:
		return "Unknown"
	}
}

// networkNode is a node record in a Network. Input slot 0 is the primary
// (content) input; for layer nodes slot 1 links to the sibling below.
// A zero reference is an absent link, which is unambiguous because node
// key 0 is reserved for the virtual document root.
type networkNode struct {
	kind   NodeKind
	inputs []NodeID
}

// Network is a map-backed in-memory procedural graph implementing Graph.
// It is the graph snapshot fed to LoadStructure by tests and tooling; a
// real document engine supplies its own Graph implementation.
type Network struct {
	nodes     map[NodeID]*networkNode
	output    NodeID
	hasOutput bool
}

// NewNetwork creates an empty network.
func NewNetwork() *Network {
	return &Network{nodes: make(map[NodeID]*networkNode)}
}

// AddNode adds a node with the given kind and input links. A zero input
// reference means the slot carries an inline value instead of a node link.
// Adding an existing key replaces the node.
func (n *Network) AddNode(id NodeID, kind NodeKind, inputs ...NodeID) {
	n.nodes[id] = &networkNode{kind: kind, inputs: inputs}
}

// RemoveNode deletes a node. Links referencing it dangle; Graph queries
// treat dangling references as absent.
func (n *Network) RemoveNode(id NodeID) {
	delete(n.nodes, id)
	if n.hasOutput && n.output == id {
		n.hasOutput = false
	}
}

// SetOutput designates the output node of the network.
func (n *Network) SetOutput(id NodeID) {
	n.output = id
	n.hasOutput = true
}

// HasNode implements Graph.
func (n *Network) HasNode(node NodeID) bool {
	_, ok := n.nodes[node]
	return ok
}

// OutputNode implements Graph.
func (n *Network) OutputNode() (NodeID, bool) {
	if !n.hasOutput || !n.HasNode(n.output) {
		return 0, false
	}
	return n.output, true
}

// Input implements Graph.
func (n *Network) Input(node NodeID, index int) (NodeID, bool) {
	record, ok := n.nodes[node]
	if !ok || index >= len(record.inputs) || record.inputs[index] == 0 {
		return 0, false
	}
	return record.inputs[index], true
}

// IsLayer implements Graph.
func (n *Network) IsLayer(node NodeID) bool {
	record, ok := n.nodes[node]
	return ok && record.kind == KindLayer
}

// IsArtboard implements Graph.
func (n *Network) IsArtboard(node NodeID) bool {
	record, ok := n.nodes[node]
	return ok && record.kind == KindArtboard
}

// UpstreamFlow implements Graph, walking the primary-input chain from
// start. Dangling references end the walk.
func (n *Network) UpstreamFlow(start NodeID, includeStart bool) iter.Seq[NodeID] {
	return func(yield func(NodeID) bool) {
		node := start
		if !n.HasNode(node) {
			return
		}
		if includeStart && !yield(node) {
			return
		}
		for {
			next, ok := n.Input(node, 0)
			if !ok || !n.HasNode(next) {
				return
			}
			if !yield(next) {
				return
			}
			node = next
		}
	}
}
