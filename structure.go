package docmeta

// LoadStructure discards the layer tree and the artboard/folder tags and
// rebuilds them from a graph snapshot. It is a one-shot, non-incremental
// reconstruction, expected to be invoked only when the graph's shape
// actually changed.
//
// The walk is an explicit-stack depth-first traversal so that stack depth
// stays bounded regardless of document nesting depth. A node already
// present in the tree is never re-visited, which guards against shared
// subgraphs. After the walk, the selection is pruned to nodes that still
// exist in the graph and the transform and click-target caches are pruned
// to surviving nodes and layers.
func (m *DocumentMetadata) LoadStructure(graph Graph) {
	m.structure = map[LayerID]*nodeRelations{RootLayer: {}}
	m.artboards = make(map[LayerID]struct{})
	m.folders = make(map[LayerID]struct{})

	output, ok := graph.OutputNode()
	if !ok {
		return
	}
	first, ok := firstChildLayer(graph, output)
	if !ok {
		return
	}

	type workItem struct {
		node   NodeID
		parent LayerID
	}
	stack := []workItem{{node: first, parent: RootLayer}}
	for len(stack) > 0 {
		item := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		node, walking := item.node, true
		for walking {
			layer := NewLayerID(node, graph)
			if !m.LayerExists(layer) {
				m.PushChild(item.parent, layer)

				if child, found := firstChildLayer(graph, node); found {
					stack = append(stack, workItem{node: child, parent: layer})
				}
				if isArtboardLayer(graph, node) {
					m.artboards[layer] = struct{}{}
				}
				if isFolderLayer(graph, node) {
					m.folders[layer] = struct{}{}
				}
			}
			node, walking = siblingBelow(graph, node)
		}
	}

	m.RetainSelectedNodes(graph.HasNode)
	for node := range m.upstreamTransforms {
		if !graph.HasNode(node) {
			delete(m.upstreamTransforms, node)
		}
	}
	for layer := range m.clickTargets {
		if !m.LayerExists(layer) {
			delete(m.clickTargets, layer)
		}
	}

	Logger().Debug("rebuilt layer structure",
		"layers", len(m.structure)-1,
		"artboards", len(m.artboards),
		"folders", len(m.folders))
}

// firstChildLayer finds the nearest upstream layer node reachable through
// the node's primary input: the node's first child in tree terms.
func firstChildLayer(g Graph, node NodeID) (NodeID, bool) {
	content, ok := g.Input(node, 0)
	if !ok {
		return 0, false
	}
	for upstream := range g.UpstreamFlow(content, true) {
		if g.IsLayer(upstream) {
			return upstream, true
		}
	}
	return 0, false
}

// siblingBelow returns the layer linked through the node's second input,
// which is how sibling order is encoded in the graph.
func siblingBelow(g Graph, node NodeID) (NodeID, bool) {
	sibling, ok := g.Input(node, 1)
	if !ok || !g.IsLayer(sibling) {
		return 0, false
	}
	return sibling, true
}

// isArtboardLayer reports whether the node's upstream flow, including the
// node itself, contains an artboard-type node.
func isArtboardLayer(g Graph, node NodeID) bool {
	for upstream := range g.UpstreamFlow(node, true) {
		if g.IsArtboard(upstream) {
			return true
		}
	}
	return false
}

// isFolderLayer reports whether the node is a grouping construct: it has
// no content input at all, or its upstream flow (excluding itself) meets
// an artboard or another layer before reaching the node's own content.
func isFolderLayer(g Graph, node NodeID) bool {
	if _, ok := g.Input(node, 0); !ok {
		return true
	}
	skip := true
	for upstream := range g.UpstreamFlow(node, true) {
		if skip {
			skip = false
			continue
		}
		if g.IsArtboard(upstream) || g.IsLayer(upstream) {
			return true
		}
	}
	return false
}
