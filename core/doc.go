// Package core provides the read-only road/location graph snapshot that the
// path search operates on.
//
// The model is deliberately small:
//
//   - Node: a unique string Code, a fixed array of NeighborSlots (8) outgoing
//     Links, and a Central flag.
//   - Link: neighbor code plus non-negative float64 weight. An empty To is an
//     unset slot.
//   - Graph: an ordered list of Nodes plus a code → index map built once, so
//     Node(code) and Has(code) are O(1).
//
// Central nodes:
//
//	Stored graphs carry a classification field; the value CentralMarker ("O")
//	flags the node as transit-restricted. Loaders translate that field with
//	IsCentralMarker. The traversal policy itself lives in package dijkstra.
//
// Tolerated shapes:
//
//   - Cycles, self-links and parallel links between the same pair.
//   - Links to codes that are not in the snapshot (ignored by traversals).
//
// Rejected shapes (NewGraph):
//
//   - ErrEmptyCode      – a node with an empty code.
//   - ErrDuplicateCode  – two nodes with the same code.
//   - ErrNegativeWeight – a set slot with a negative or NaN weight.
//
// Quick ASCII example:
//
//	A ──1──▶ B ──1──▶ C
//	│                 ▲
//	└────────5────────┘
//
//	g := core.MustGraph(
//	    core.MustNode("A", false, core.To("B", 1), core.To("C", 5)),
//	    core.MustNode("B", false, core.To("C", 1)),
//	    core.MustNode("C", false),
//	)
//
// Thread safety:
//
//	A Graph is never mutated after NewGraph returns; any number of goroutines
//	may read it concurrently without synchronization.
package core
