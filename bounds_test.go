package docmeta

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBoundingBoxWithTransform(t *testing.T) {
	t.Parallel()
	m := buildSampleTree(t)
	m.UpdateClickTargets(map[LayerID][]ClickTarget{
		layerOf(3): {
			{Outline: QuadFromBox(Pt(0, 0), Pt(1, 1))},
			{Outline: QuadFromBox(Pt(2, 2), Pt(4, 3))},
		},
	})

	bounds, ok := m.BoundingBoxWithTransform(layerOf(3), Identity())
	require.True(t, ok)
	assert.Equal(t, Rect{Min: Pt(0, 0), Max: Pt(4, 3)}, bounds)

	bounds, ok = m.BoundingBoxWithTransform(layerOf(3), Scale(2, 2))
	require.True(t, ok)
	assert.Equal(t, Rect{Min: Pt(0, 0), Max: Pt(8, 6)}, bounds)

	// Layers without cached shapes have no bounding box; that is a
	// legitimate state, not an error.
	_, ok = m.BoundingBoxWithTransform(layerOf(5), Identity())
	assert.False(t, ok)
}

func TestNonzeroBoundingBox(t *testing.T) {
	t.Parallel()
	m := buildSampleTree(t)
	m.UpdateClickTargets(map[LayerID][]ClickTarget{
		layerOf(3): {{Outline: QuadFromPoint(Pt(2, 2))}},
		layerOf(4): {{Outline: QuadFromBox(Pt(0, 0), Pt(5, 0))}},
	})

	// A point-shaped target widens to a unit box anchored at the point.
	assert.Equal(t, Rect{Min: Pt(2, 2), Max: Pt(3, 3)}, m.NonzeroBoundingBox(layerOf(3)))

	// Only the degenerate axis is widened.
	assert.Equal(t, Rect{Min: Pt(0, 0), Max: Pt(5, 1)}, m.NonzeroBoundingBox(layerOf(4)))

	// No geometry defaults to the zero box widened on both axes.
	assert.Equal(t, Rect{Min: Pt(0, 0), Max: Pt(1, 1)}, m.NonzeroBoundingBox(layerOf(5)))
}

func TestDocumentBounds(t *testing.T) {
	t.Parallel()
	m := buildSampleTree(t)
	m.DocumentToViewport = Translate(10, 0)
	m.UpdateClickTargets(map[LayerID][]ClickTarget{
		layerOf(2): {{Outline: QuadFromBox(Pt(0, 0), Pt(1, 1))}},
		layerOf(9): {{Outline: QuadFromBox(Pt(5, 5), Pt(6, 8))}},
	})

	// Without cached transforms every layer sits at the document
	// transform, so viewport bounds are the shifted union.
	bounds, ok := m.DocumentBoundsViewportSpace()
	require.True(t, ok)
	assert.Equal(t, Rect{Min: Pt(10, 0), Max: Pt(16, 8)}, bounds)

	// Document-space bounds undo the viewport shift.
	bounds, ok = m.DocumentBoundsDocumentSpace(true)
	require.True(t, ok)
	assert.Equal(t, Rect{Min: Pt(0, 0), Max: Pt(6, 8)}, bounds)
}

func TestDocumentBoundsExcludesArtboards(t *testing.T) {
	t.Parallel()
	m := buildSampleTree(t)
	m.artboards[layerOf(9)] = struct{}{}
	m.UpdateClickTargets(map[LayerID][]ClickTarget{
		layerOf(2): {{Outline: QuadFromBox(Pt(0, 0), Pt(1, 1))}},
		layerOf(9): {{Outline: QuadFromBox(Pt(5, 5), Pt(6, 8))}},
	})

	bounds, ok := m.DocumentBoundsDocumentSpace(false)
	require.True(t, ok)
	assert.Equal(t, Rect{Min: Pt(0, 0), Max: Pt(1, 1)}, bounds)

	bounds, ok = m.DocumentBoundsDocumentSpace(true)
	require.True(t, ok)
	assert.Equal(t, Rect{Min: Pt(0, 0), Max: Pt(6, 8)}, bounds)
}

func TestSelectedBounds(t *testing.T) {
	t.Parallel()
	m := buildSampleTree(t)
	m.artboards[layerOf(9)] = struct{}{}
	m.UpdateClickTargets(map[LayerID][]ClickTarget{
		layerOf(2): {{Outline: QuadFromBox(Pt(0, 0), Pt(1, 1))}},
		layerOf(3): {{Outline: QuadFromBox(Pt(2, 0), Pt(3, 1))}},
		layerOf(9): {{Outline: QuadFromBox(Pt(5, 5), Pt(6, 8))}},
	})

	_ = m.SetSelectedNodes([]NodeID{2, 9})
	bounds, ok := m.SelectedBoundsDocumentSpace(false)
	require.True(t, ok)
	assert.Equal(t, Rect{Min: Pt(0, 0), Max: Pt(1, 1)}, bounds)

	bounds, ok = m.SelectedBoundsDocumentSpace(true)
	require.True(t, ok)
	assert.Equal(t, Rect{Min: Pt(0, 0), Max: Pt(6, 8)}, bounds)

	_ = m.ClearSelectedNodes()
	_, ok = m.SelectedBoundsDocumentSpace(true)
	assert.False(t, ok, "empty selection has no bounds")
}

func TestEmptyDocumentBounds(t *testing.T) {
	t.Parallel()
	m := NewDocumentMetadata()
	_, ok := m.DocumentBoundsViewportSpace()
	assert.False(t, ok)
	_, ok = m.DocumentBoundsDocumentSpace(true)
	assert.False(t, ok)
}

func TestLayerOutlineAndClickTargets(t *testing.T) {
	t.Parallel()
	m := buildSampleTree(t)
	box := QuadFromBox(Pt(0, 0), Pt(2, 2))
	m.UpdateClickTargets(map[LayerID][]ClickTarget{
		layerOf(3): {{Outline: box}},
	})

	assert.Equal(t, []Quad{box}, m.LayerOutline(layerOf(3)))
	assert.Nil(t, m.LayerOutline(layerOf(4)))
	assert.Len(t, m.ClickTargets(layerOf(3)), 1)
	assert.Nil(t, m.ClickTargets(layerOf(4)))
}

func TestClickTargetContains(t *testing.T) {
	t.Parallel()
	target := ClickTarget{Outline: QuadFromBox(Pt(0, 0), Pt(1, 1))}

	assert.True(t, target.Contains(Identity(), Pt(0.5, 0.5)))
	assert.False(t, target.Contains(Identity(), Pt(1.5, 0.5)))
	assert.True(t, target.Contains(Translate(10, 0), Pt(10.5, 0.5)))
}
