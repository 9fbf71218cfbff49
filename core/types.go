// SPDX-License-Identifier: MIT
//
// File: types.go
// Role: Node, Link and Graph declarations, sentinel errors, constants.
// Policy:
//   - A Graph is an immutable snapshot; no method mutates it after NewGraph.
//   - Neighbor slots are a fixed array, traversed by index 0..NeighborSlots-1.

package core

import "errors"

// NeighborSlots is the fixed number of outgoing link slots every Node carries.
const NeighborSlots = 8

// CentralMarker is the stored value of a node's classification field that
// marks it as a central (transit-restricted) node.
const CentralMarker = "O"

// Sentinel errors for graph construction and lookup.
var (
	// ErrEmptyCode indicates a node (or a requested code) is the empty string.
	ErrEmptyCode = errors.New("core: node code is empty")

	// ErrDuplicateCode indicates two nodes in one snapshot share a code.
	ErrDuplicateCode = errors.New("core: duplicate node code")

	// ErrNegativeWeight indicates a set link slot carries a negative or NaN weight.
	ErrNegativeWeight = errors.New("core: negative link weight")

	// ErrNodeNotFound indicates a lookup referenced a code absent from the graph.
	ErrNodeNotFound = errors.New("core: node not found")
)

// Link is one outgoing neighbor slot of a Node.
//
// An empty To marks the slot as unset; its Weight is then meaningless.
type Link struct {
	// To is the code of the neighbor node.
	To string

	// Weight is the non-negative cost of travelling along this link.
	Weight float64
}

// Node is a labeled location with up to NeighborSlots outgoing links.
type Node struct {
	// Code uniquely identifies this Node within its Graph.
	Code string

	// Neighbors holds the outgoing links in their declared slot order.
	Neighbors [NeighborSlots]Link

	// Central marks the node as transit-restricted: it may be entered only
	// as the search's finish or directly from the search's start.
	Central bool
}

// Graph is an ordered, read-only snapshot of Nodes, unique by code.
//
// The code index is built once in NewGraph so lookups are O(1).
// Cycles, self-links and parallel links are all permitted; links to codes
// missing from the snapshot are kept and simply ignored by traversals.
type Graph struct {
	nodes []Node         // declared order
	index map[string]int // code → position in nodes
}
