package docmeta

import (
	"iter"
	"slices"
)

// DocumentMetadata is the derived scene-graph metadata of a vector document:
// the layer tree projected out of the procedural computation graph, plus
// per-layer caches (coordinate transforms, hit-test geometry) and the
// selection state.
//
// Membership in the structure map is what "layer exists" means; the map is
// the tree's sole storage and always contains the virtual root.
//
// DocumentMetadata is not safe for concurrent use. Mutations require
// exclusive access, enforced by the caller.
type DocumentMetadata struct {
	structure          map[LayerID]*nodeRelations
	artboards          map[LayerID]struct{}
	folders            map[LayerID]struct{}
	clickTargets       map[LayerID][]ClickTarget
	upstreamTransforms map[NodeID]UpstreamTransform
	selectedNodes      []NodeID

	// DocumentToViewport is the transform from document space to viewport
	// space. It is assigned by the owning document.
	DocumentToViewport Matrix
}

// NewDocumentMetadata creates metadata for an empty document: a tree
// holding only the virtual root, no caches and no selection.
func NewDocumentMetadata() *DocumentMetadata {
	return &DocumentMetadata{
		structure:          map[LayerID]*nodeRelations{RootLayer: {}},
		artboards:          make(map[LayerID]struct{}),
		folders:            make(map[LayerID]struct{}),
		clickTargets:       make(map[LayerID][]ClickTarget),
		upstreamTransforms: make(map[NodeID]UpstreamTransform),
		DocumentToViewport: Identity(),
	}
}

// Root returns the virtual root of the layer tree.
func (m *DocumentMetadata) Root() LayerID {
	return RootLayer
}

// AllLayers iterates every layer in the document in pre-order.
func (m *DocumentMetadata) AllLayers() *DescendantsIter {
	return m.Descendants(RootLayer)
}

// AllLayersExceptArtboards iterates every layer that is not an artboard.
func (m *DocumentMetadata) AllLayersExceptArtboards() iter.Seq[LayerID] {
	return func(yield func(LayerID) bool) {
		for layer := range m.AllLayers().Forward() {
			if !m.IsArtboard(layer) && !yield(layer) {
				return
			}
		}
	}
}

// IsFolder reports whether the layer is a non-rendering grouping layer.
func (m *DocumentMetadata) IsFolder(layer LayerID) bool {
	_, ok := m.folders[layer]
	return ok
}

// IsArtboard reports whether the layer is a page/canvas container.
func (m *DocumentMetadata) IsArtboard(layer LayerID) bool {
	_, ok := m.artboards[layer]
	return ok
}

// ActiveArtboard returns an arbitrary artboard, or the root when the
// document has none.
func (m *DocumentMetadata) ActiveArtboard() LayerID {
	for artboard := range m.artboards {
		return artboard
	}
	return RootLayer
}

// Folders filters the given layers down to folders.
func (m *DocumentMetadata) Folders(layers iter.Seq[LayerID]) iter.Seq[LayerID] {
	return func(yield func(LayerID) bool) {
		for layer := range layers {
			if m.IsFolder(layer) && !yield(layer) {
				return
			}
		}
	}
}

// FoldersSortedByMostNested returns the folders among the given layers,
// sorted from most nested to least nested.
func (m *DocumentMetadata) FoldersSortedByMostNested(layers iter.Seq[LayerID]) []LayerID {
	var folders []LayerID
	for folder := range m.Folders(layers) {
		folders = append(folders, folder)
	}
	depth := func(layer LayerID) int {
		count := 0
		for range m.Ancestors(layer) {
			count++
		}
		return count
	}
	slices.SortStableFunc(folders, func(a, b LayerID) int {
		return depth(b) - depth(a)
	})
	return folders
}

// ancestorPath returns the root-to-layer ancestor chain, root first,
// including the layer itself.
func (m *DocumentMetadata) ancestorPath(layer LayerID) []LayerID {
	var path []LayerID
	for ancestor := range m.Ancestors(layer) {
		path = append(path, ancestor)
	}
	slices.Reverse(path)
	return path
}

// ShallowestUniqueLayers reduces the given layers to the minimal set such
// that no returned layer is a descendant of another returned layer. Each
// surviving layer is reported as its full root-first ancestor path.
//
// Sorting the paths lexicographically groups a subtree contiguously behind
// its ancestor's path, so a single adjacent prefix-dedup pass suffices.
func (m *DocumentMetadata) ShallowestUniqueLayers(layers iter.Seq[LayerID]) [][]LayerID {
	var paths [][]LayerID
	for layer := range layers {
		paths = append(paths, m.ancestorPath(layer))
	}
	slices.SortFunc(paths, func(a, b []LayerID) int {
		return slices.Compare(a, b)
	})
	unique := paths[:0]
	for _, path := range paths {
		if len(unique) > 0 && pathHasPrefix(path, unique[len(unique)-1]) {
			continue
		}
		unique = append(unique, path)
	}
	return unique
}

// pathHasPrefix reports whether path begins with (or equals) prefix.
func pathHasPrefix(path, prefix []LayerID) bool {
	return len(path) >= len(prefix) && slices.Equal(path[:len(prefix)], prefix)
}

// DeepestCommonAncestor returns the most nested layer that is an ancestor
// of every given layer, or NoLayer when there is none. When includeSelf is
// false, a folder does not count as its own ancestor candidate.
func (m *DocumentMetadata) DeepestCommonAncestor(layers iter.Seq[LayerID], includeSelf bool) LayerID {
	var common []LayerID
	first := true
	for layer := range layers {
		path := m.ancestorPath(layer)
		if !includeSelf && m.IsFolder(layer) && len(path) > 0 {
			path = path[:len(path)-1]
		}
		if first {
			common = path
			first = false
			continue
		}
		shared := 0
		for shared < len(common) && shared < len(path) && common[shared] == path[shared] {
			shared++
		}
		common = common[:shared]
	}
	if len(common) == 0 {
		return NoLayer
	}
	return common[len(common)-1]
}
