// SPDX-License-Identifier: MIT
// Package: roadmap/builder
//
// impl_cycle.go - ring road and straight road constructors.

package builder

import "fmt"

const (
	methodRing = "Ring"
	methodPath = "Path"
	minRing    = 3
	minPath    = 1
)

// Ring returns a Constructor for a two-way ring road of n nodes.
// Each node links forward to (i+1)%n and back to (i-1+n)%n, in that order.
// n < 3 fails with ErrTooFewVertices.
func Ring(n int) Constructor {
	return func(nb *nodeBuffer, cfg builderConfig) error {
		if n < minRing {
			return fmt.Errorf("%s: n=%d < %d: %w", methodRing, n, minRing, ErrTooFewVertices)
		}
		for i := 0; i < n; i++ {
			nb.addNode(cfg.idFn(i), cfg)
		}
		for i := 0; i < n; i++ {
			from := cfg.idFn(i)
			if err := nb.addLink(from, cfg.idFn((i+1)%n), cfg.weightFn(cfg.rng)); err != nil {
				return fmt.Errorf("%s: %w", methodRing, err)
			}
			if err := nb.addLink(from, cfg.idFn((i-1+n)%n), cfg.weightFn(cfg.rng)); err != nil {
				return fmt.Errorf("%s: %w", methodRing, err)
			}
		}

		return nil
	}
}

// Path returns a Constructor for a one-way road 0→1→…→n-1.
// n < 1 fails with ErrTooFewVertices.
func Path(n int) Constructor {
	return func(nb *nodeBuffer, cfg builderConfig) error {
		if n < minPath {
			return fmt.Errorf("%s: n=%d < %d: %w", methodPath, n, minPath, ErrTooFewVertices)
		}
		for i := 0; i < n; i++ {
			nb.addNode(cfg.idFn(i), cfg)
		}
		for i := 0; i+1 < n; i++ {
			if err := nb.addLink(cfg.idFn(i), cfg.idFn(i+1), cfg.weightFn(cfg.rng)); err != nil {
				return fmt.Errorf("%s: %w", methodPath, err)
			}
		}

		return nil
	}
}
