// Package dijkstra finds the cheapest route between two locations of a
// core.Graph while honoring the central-node entry rule.
//
// Overview:
//
//   - Classic Dijkstra over non-negative float64 weights with a min-heap
//     frontier and lazy decrease-key (duplicate pushes, stale pops skipped).
//   - Each node is expanded through its 8 neighbor slots in fixed order 0..7.
//     Unset slots and links to unknown codes are ignored silently.
//   - The search stops as soon as the finish is finalized.
//
// Central-node rule:
//
//	A node with Central == true may be entered only when it is the finish
//	itself, or when the hop leaves from the start node. Central nodes are
//	therefore never interior waypoints except as the very first hop.
//
//	    A ──1──▶ M* ──1──▶ C       FindShortestPath(g, "A", "C") → [A M C]
//	    X ──1──▶ A                 FindShortestPath(g, "X", "C") → [C]
//
//	In the second call M is neither the finish nor reached from the start X,
//	so it is skipped and C is unreachable.
//
// Result shapes:
//
//   - reachable finish:          [start … finish]
//   - start == finish:           [start]
//   - absent/unreachable finish: [finish]   (Result.Reached == false)
//
// Error handling (sentinel errors):
//
//   - ErrNilGraph:       nil *core.Graph.
//   - ErrEmptyCode:      empty start or finish code.
//   - ErrStartNotFound:  start code not in the graph. The search fails fast
//     rather than returning an empty path; the error wraps the missing code.
//   - ErrBadMaxDistance: raised via panic by WithMaxDistance(negative).
//
// API reference:
//
//	func FindShortestPath(g *core.Graph, start, finish string) ([]string, error)
//	func ShortestPath(g *core.Graph, start, finish string, opts ...Option) (Result, error)
//
//	  - WithCentralRule(bool):      default true.
//	  - WithMaxDistance(float64):   default +Inf.
//	  - WithLogger(*slog.Logger):   one debug record per search.
//
// Thread safety:
//
//   - All working state is local to one call. Concurrent calls on the same
//     graph are safe because core.Graph is immutable.
package dijkstra
