// SPDX-License-Identifier: MIT
// File: signature.go
// Role: graph6 codec for core graphs and the structural Signature derived
// from it.
//
// graph6 only stores topology on nodes 0..n-1; the vertex IDs travel next to
// it, in sorted order, so node i of the payload is the i-th sorted ID.

package nullmodel

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"

	"gonum.org/v1/gonum/graph"
	"gonum.org/v1/gonum/graph/encoding/graph6"
	"gonum.org/v1/gonum/graph/simple"

	"github.com/calganaygun/networks-playground/core"
)

// EncodeGraph6 returns the sorted vertex IDs of g and the graph6 encoding of
// its topology over them.
func EncodeGraph6(g *core.Graph) ([]string, string) {
	idx := g.Index()
	ug := simple.NewUndirectedGraph()
	for i := 0; i < idx.Len(); i++ {
		ug.AddNode(simple.Node(int64(i)))
	}
	for i := int32(0); i < int32(idx.Len()); i++ {
		for _, j := range idx.Neighbors(i) {
			if j > i {
				ug.SetEdge(ug.NewEdge(simple.Node(int64(i)), simple.Node(int64(j))))
			}
		}
	}

	return idx.IDs(), string(graph6.Encode(ug))
}

// DecodeGraph6 rebuilds a graph from sorted vertex IDs and a graph6 payload.
//
// Errors: ErrInvalidGraph6 when the payload is malformed or its node count
// differs from len(ids).
func DecodeGraph6(ids []string, payload string) (*core.Graph, error) {
	enc := graph6.Graph(payload)
	if !graph6.IsValid(enc) {
		return nil, fmt.Errorf("nullmodel: decode: %w", ErrInvalidGraph6)
	}
	nodes := graph.NodesOf(enc.Nodes())
	if len(nodes) != len(ids) {
		return nil, fmt.Errorf("nullmodel: decode: %d nodes for %d ids: %w", len(nodes), len(ids), ErrInvalidGraph6)
	}

	g := core.NewGraph()
	for _, id := range ids {
		if err := g.AddVertex(id); err != nil {
			return nil, fmt.Errorf("nullmodel: decode: %w", err)
		}
	}
	for _, n := range nodes {
		u := n.ID()
		for _, m := range graph.NodesOf(enc.From(u)) {
			v := m.ID()
			if v <= u {
				continue
			}
			if err := g.AddEdge(ids[u], ids[v]); err != nil {
				return nil, fmt.Errorf("nullmodel: decode: %w", err)
			}
		}
	}

	return g, nil
}

// Signature returns a hex sha256 over the graph6 topology and the sorted
// vertex IDs of g. Isomorphic graphs with different labels get different
// signatures; equal labeled graphs always agree.
func Signature(g *core.Graph) string {
	ids, payload := EncodeGraph6(g)

	h := sha256.New()
	h.Write([]byte(payload))
	for _, id := range ids {
		h.Write([]byte{0})
		h.Write([]byte(id))
	}
	return hex.EncodeToString(h.Sum(nil))
}
