package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vecdoc/docmeta"
)

// writeGraph drops a graph file into a temp dir and returns its path.
func writeGraph(t *testing.T, contents string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "graph.json")
	require.NoError(t, os.WriteFile(path, []byte(contents), 0o644))
	return path
}

const sampleGraph = `{
	"output": 100,
	"nodes": [
		{"id": 100, "kind": "operation", "inputs": [1]},
		{"id": 1, "kind": "layer", "inputs": [21, 0]},
		{"id": 21, "kind": "artboard", "inputs": [2]},
		{"id": 2, "kind": "layer", "inputs": [0, 3]},
		{"id": 3, "kind": "layer", "inputs": [4, 0]},
		{"id": 4, "kind": "operation", "inputs": []}
	],
	"transforms": {
		"3": {"footprint": [1, 0, 10, 0, 1, 0], "local": [2, 0, 0, 0, 2, 0]}
	},
	"clickTargets": {
		"3": [[[0, 0], [1, 0], [1, 1], [0, 1]]]
	}
}`

func TestLoadDocument(t *testing.T) {
	t.Parallel()
	m, err := loadDocument(writeGraph(t, sampleGraph))
	require.NoError(t, err)

	artboard := docmeta.LayerIDFromNode(1)
	folder := docmeta.LayerIDFromNode(2)
	leaf := docmeta.LayerIDFromNode(3)

	var children []docmeta.LayerID
	for child := range m.Children(m.Root()) {
		children = append(children, child)
	}
	require.Equal(t, []docmeta.LayerID{artboard}, children)

	children = children[:0]
	for child := range m.Children(artboard) {
		children = append(children, child)
	}
	assert.Equal(t, []docmeta.LayerID{folder, leaf}, children)

	assert.True(t, m.IsArtboard(artboard))
	assert.True(t, m.IsFolder(folder))
	assert.False(t, m.IsFolder(leaf))
}

func TestLoadDocumentCaches(t *testing.T) {
	t.Parallel()
	m, err := loadDocument(writeGraph(t, sampleGraph))
	require.NoError(t, err)

	leaf := docmeta.LayerIDFromNode(3)

	want := docmeta.Translate(10, 0).Multiply(docmeta.Scale(2, 2))
	assert.Equal(t, want, m.TransformToViewport(leaf))

	outline := m.LayerOutline(leaf)
	require.Len(t, outline, 1)
	assert.Equal(t, docmeta.QuadFromBox(docmeta.Pt(0, 0), docmeta.Pt(1, 1)), outline[0])
}

func TestLoadDocumentErrors(t *testing.T) {
	t.Parallel()

	_, err := loadDocument(filepath.Join(t.TempDir(), "missing.json"))
	assert.Error(t, err)

	_, err = loadDocument(writeGraph(t, `{"output": 1, "nodes":`))
	assert.ErrorContains(t, err, "parsing")

	_, err = loadDocument(writeGraph(t, `{
		"output": 1,
		"nodes": [{"id": 1, "kind": "portal", "inputs": []}]
	}`))
	assert.ErrorContains(t, err, "unknown node kind")

	_, err = loadDocument(writeGraph(t, `{
		"output": 1,
		"nodes": [{"id": 1, "kind": "layer", "inputs": []}],
		"transforms": {"one": {"footprint": [1,0,0,1,0,0], "local": [1,0,0,1,0,0]}}
	}`))
	assert.ErrorContains(t, err, "invalid node key")
}
