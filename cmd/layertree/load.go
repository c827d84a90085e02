package main

import (
	"encoding/json"
	"fmt"
	"os"
	"strconv"

	"github.com/vecdoc/docmeta"
)

// graphFile is the JSON description of a procedural graph snapshot,
// optionally carrying cached transforms and click targets.
type graphFile struct {
	Output NodeID                `json:"output"`
	Nodes  []graphNode           `json:"nodes"`
	// Transforms maps node keys to [footprint, local] matrix pairs.
	Transforms map[string]nodeTransforms `json:"transforms,omitempty"`
	// ClickTargets maps layer node keys to lists of quads, each quad four
	// [x, y] vertices.
	ClickTargets map[string][][4][2]float64 `json:"clickTargets,omitempty"`
}

type NodeID = docmeta.NodeID

type graphNode struct {
	ID   NodeID `json:"id"`
	Kind string `json:"kind"`
	// Inputs are node references by slot; 0 marks an inline value.
	Inputs []NodeID `json:"inputs"`
}

type nodeTransforms struct {
	Footprint [6]float64 `json:"footprint"`
	Local     [6]float64 `json:"local"`
}

// loadDocument reads a graph file and derives fresh metadata from it.
func loadDocument(path string) (*docmeta.DocumentMetadata, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var file graphFile
	if err := json.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}

	network := docmeta.NewNetwork()
	for _, node := range file.Nodes {
		kind, err := parseKind(node.Kind)
		if err != nil {
			return nil, fmt.Errorf("node %d: %w", node.ID, err)
		}
		network.AddNode(node.ID, kind, node.Inputs...)
	}
	network.SetOutput(file.Output)

	m := docmeta.NewDocumentMetadata()
	m.LoadStructure(network)

	if len(file.Transforms) > 0 {
		transforms := make(map[NodeID]docmeta.UpstreamTransform, len(file.Transforms))
		for key, t := range file.Transforms {
			node, err := parseNodeID(key)
			if err != nil {
				return nil, err
			}
			transforms[node] = docmeta.UpstreamTransform{
				Footprint: matrixOf(t.Footprint),
				Local:     matrixOf(t.Local),
			}
		}
		m.UpdateTransforms(transforms)
	}

	if len(file.ClickTargets) > 0 {
		targets := make(map[docmeta.LayerID][]docmeta.ClickTarget, len(file.ClickTargets))
		for key, quads := range file.ClickTargets {
			node, err := parseNodeID(key)
			if err != nil {
				return nil, err
			}
			layer := docmeta.LayerIDFromNode(node)
			for _, q := range quads {
				targets[layer] = append(targets[layer], docmeta.ClickTarget{Outline: quadOf(q)})
			}
		}
		m.UpdateClickTargets(targets)
	}

	return m, nil
}

func parseKind(kind string) (docmeta.NodeKind, error) {
	switch kind {
	case "operation", "":
		return docmeta.KindOperation, nil
	case "layer":
		return docmeta.KindLayer, nil
	case "artboard":
		return docmeta.KindArtboard, nil
	default:
		return 0, fmt.Errorf("unknown node kind %q", kind)
	}
}

func parseNodeID(key string) (NodeID, error) {
	id, err := strconv.ParseUint(key, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid node key %q: %w", key, err)
	}
	return NodeID(id), nil
}

func matrixOf(values [6]float64) docmeta.Matrix {
	return docmeta.Matrix{
		A: values[0], B: values[1], C: values[2],
		D: values[3], E: values[4], F: values[5],
	}
}

func quadOf(q [4][2]float64) docmeta.Quad {
	return docmeta.Quad{
		docmeta.Pt(q[0][0], q[0][1]),
		docmeta.Pt(q[1][0], q[1][1]),
		docmeta.Pt(q[2][0], q[2][1]),
		docmeta.Pt(q[3][0], q[3][1]),
	}
}
