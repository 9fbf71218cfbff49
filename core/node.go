// SPDX-License-Identifier: MIT
//
// File: node.go
// Role: Node and Link helpers shared by loaders and algorithms.

package core

import "fmt"

// IsSet reports whether the slot names a neighbor.
func (l Link) IsSet() bool { return l.To != "" }

// IsCentralMarker reports whether a stored classification value marks a
// central node. Comparison is exact; "o" or " O" are not central.
func IsCentralMarker(s string) bool { return s == CentralMarker }

// Links returns the set slots of n in slot order, skipping unset ones.
func (n Node) Links() []Link {
	out := make([]Link, 0, NeighborSlots)
	for _, l := range n.Neighbors {
		if l.IsSet() {
			out = append(out, l)
		}
	}

	return out
}

// NewNode builds a Node from up to NeighborSlots links, filling slots in order.
//
// Errors:
//   - ErrEmptyCode if code is empty.
//   - a descriptive error if more than NeighborSlots links are given.
func NewNode(code string, central bool, links ...Link) (Node, error) {
	if code == "" {
		return Node{}, ErrEmptyCode
	}
	if len(links) > NeighborSlots {
		return Node{}, fmt.Errorf("core: node %q has %d links, at most %d allowed", code, len(links), NeighborSlots)
	}

	n := Node{Code: code, Central: central}
	copy(n.Neighbors[:], links)

	return n, nil
}

// MustNode is like NewNode but panics on error. Intended for fixtures and examples.
func MustNode(code string, central bool, links ...Link) Node {
	n, err := NewNode(code, central, links...)
	if err != nil {
		panic(err)
	}

	return n
}

// To is shorthand for Link{To: code, Weight: w}.
func To(code string, w float64) Link { return Link{To: code, Weight: w} }
