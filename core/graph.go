// SPDX-License-Identifier: MIT
//
// File: graph.go
// Role: Graph construction and read-only queries.
// Determinism:
//   - Codes() and Nodes() return the declared order given to NewGraph.
// Concurrency:
//   - No locks: the snapshot is never mutated, so concurrent readers are safe.

package core

import (
	"fmt"
	"math"
)

// NewGraph builds an immutable snapshot from nodes, preserving their order.
//
// Implementation:
//   - Stage 1: Copy the input slice so later caller mutations cannot leak in.
//   - Stage 2: Validate each node (non-empty code, unique code, weights ≥ 0).
//   - Stage 3: Record code → index for O(1) lookup.
//
// Errors:
//   - ErrEmptyCode: a node has Code == "".
//   - ErrDuplicateCode: a code appears more than once.
//   - ErrNegativeWeight: a set slot has Weight < 0 or NaN.
//
// Complexity:
//   - Time O(V), Space O(V).
func NewGraph(nodes []Node) (*Graph, error) {
	g := &Graph{
		nodes: make([]Node, len(nodes)),
		index: make(map[string]int, len(nodes)),
	}
	copy(g.nodes, nodes)

	for i := range g.nodes {
		n := &g.nodes[i]
		if n.Code == "" {
			return nil, fmt.Errorf("%w: node at position %d", ErrEmptyCode, i)
		}
		if _, dup := g.index[n.Code]; dup {
			return nil, fmt.Errorf("%w: %q", ErrDuplicateCode, n.Code)
		}
		for slot, l := range n.Neighbors {
			if !l.IsSet() {
				continue
			}
			if l.Weight < 0 || math.IsNaN(l.Weight) {
				return nil, fmt.Errorf("%w: %s[%d]→%s weight=%v", ErrNegativeWeight, n.Code, slot, l.To, l.Weight)
			}
		}
		g.index[n.Code] = i
	}

	return g, nil
}

// MustGraph is like NewGraph but panics on error. Intended for fixtures.
func MustGraph(nodes ...Node) *Graph {
	g, err := NewGraph(nodes)
	if err != nil {
		panic(err)
	}

	return g
}

// Node returns the node with the given code and whether it exists.
// Complexity: O(1).
func (g *Graph) Node(code string) (Node, bool) {
	i, ok := g.index[code]
	if !ok {
		return Node{}, false
	}

	return g.nodes[i], true
}

// Has reports whether code names a node in the snapshot.
func (g *Graph) Has(code string) bool {
	_, ok := g.index[code]
	return ok
}

// Len returns the number of nodes.
func (g *Graph) Len() int { return len(g.nodes) }

// Codes returns all node codes in declared order.
// Complexity: O(V).
func (g *Graph) Codes() []string {
	out := make([]string, len(g.nodes))
	for i := range g.nodes {
		out[i] = g.nodes[i].Code
	}

	return out
}

// Nodes returns a copy of all nodes in declared order.
// Complexity: O(V).
func (g *Graph) Nodes() []Node {
	out := make([]Node, len(g.nodes))
	copy(out, g.nodes)

	return out
}

// At returns the node at position i in declared order.
// It panics if i is out of range, like a slice index.
func (g *Graph) At(i int) Node { return g.nodes[i] }
