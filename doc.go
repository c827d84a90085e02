// Package docmeta maintains the derived scene-graph metadata of a
// vector-graphics document: a mutable tree of layers projected out of a
// flat, link-based procedural computation graph, plus per-layer caches
// (coordinate transforms, hit-test geometry) and the selection state.
//
// # Overview
//
// The computation graph owns the document's content; docmeta owns its
// shape. An external caller feeds a graph snapshot to [DocumentMetadata.LoadStructure]
// to rebuild the layer tree, feeds freshly computed transforms and hit-test
// geometry to [DocumentMetadata.UpdateTransforms] and
// [DocumentMetadata.UpdateClickTargets], and then queries the tree and
// caches for rendering, hit-testing and UI display.
//
// The tree is an arena of [LayerID] keys mapped to relation records, with
// O(1) structural edits (PushChild, AddBefore, Delete and friends) and
// bidirectional pre-order iteration via [DescendantsIter].
//
// # Quick Start
//
//	m := docmeta.NewDocumentMetadata()
//	m.LoadStructure(graph)
//
//	for layer := range m.AllLayers().Forward() {
//	    if bounds, ok := m.BoundingBoxViewport(layer); ok {
//	        fmt.Println(layer, bounds)
//	    }
//	}
//
// # Error Handling
//
// Programming-contract violations (inserting a layer that already exists,
// or, under the debug build tag, constructing a layer identifier from a
// non-layer node) panic. Absence of data — unknown identifiers, missing
// cached transforms or shapes, empty selections — is reported as NoLayer,
// nil or an ok=false result, never as an error.
//
// # Concurrency
//
// docmeta is single-threaded by design. Mutations require exclusive access
// to the DocumentMetadata; queries may run concurrently with each other but
// never with a mutation. This discipline is enforced by the caller.
package docmeta
