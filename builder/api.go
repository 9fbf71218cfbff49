// SPDX-License-Identifier: MIT
// Package: roadmap/builder
//
// api.go - thin public entry-point for the builder package.
//
// Design contract:
//   - One orchestrator: BuildGraph(bopts, cons...). Resolves cfg, runs cons in order,
//     then freezes the collected nodes into a core.Graph.
//   - Determinism: same options/seed and constructor order ⇒ identical snapshots.
//   - Constructors return sentinel errors; they never panic.

package builder

import (
	"fmt"

	"github.com/katalvlaran/roadmap/core"
)

// Constructor adds nodes and links to the buffer using the resolved config.
type Constructor func(nb *nodeBuffer, cfg builderConfig) error

// BuildGraph resolves bopts, applies all constructors in order and returns the
// resulting snapshot. Constructor errors are wrapped with "BuildGraph: %w".
//
// Complexity:
//   - O(len(bopts)) option resolution plus the sum of constructor costs.
func BuildGraph(bopts []BuilderOption, cons ...Constructor) (*core.Graph, error) {
	cfg := newBuilderConfig(bopts...)
	nb := newNodeBuffer()

	for _, c := range cons {
		if err := c(nb, cfg); err != nil {
			return nil, fmt.Errorf("BuildGraph: %w", err)
		}
	}

	return core.NewGraph(nb.nodes)
}

// nodeBuffer collects nodes in insertion order while constructors run.
type nodeBuffer struct {
	nodes []core.Node
	index map[string]int
}

func newNodeBuffer() *nodeBuffer {
	return &nodeBuffer{index: make(map[string]int)}
}

// addNode inserts code if missing (idempotent) and classifies it with cfg.centralFn.
func (nb *nodeBuffer) addNode(code string, cfg builderConfig) {
	if _, ok := nb.index[code]; ok {
		return
	}
	nb.index[code] = len(nb.nodes)
	nb.nodes = append(nb.nodes, core.Node{Code: code, Central: cfg.centralFn(code)})
}

// addLink fills the first free slot of from. Fails with ErrSlotsFull when all
// core.NeighborSlots slots are taken.
func (nb *nodeBuffer) addLink(from, to string, w float64) error {
	i, ok := nb.index[from]
	if !ok {
		return fmt.Errorf("addLink(%s→%s): %w", from, to, ErrUnknownNode)
	}
	n := &nb.nodes[i]
	for s := range n.Neighbors {
		if !n.Neighbors[s].IsSet() {
			n.Neighbors[s] = core.To(to, w)
			return nil
		}
	}

	return fmt.Errorf("addLink(%s→%s): %w", from, to, ErrSlotsFull)
}
