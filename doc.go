// Package roadmap computes shortest routes between named locations of a
// fixed road graph in which some locations are transit-restricted.
//
// What is roadmap?
//
//	A small, dependency-light toolkit that brings together:
//		• core:     immutable Node/Graph snapshot with 8 fixed neighbor slots
//		• dijkstra: the restricted shortest-path search
//		• source:   loaders for node.json, HCL graph files and Neo4j
//		• cli:      the `roadmap START FINISH` command printing a JSON route
//
// Central nodes:
//
//	A node flagged central may be entered only as the route's finish, or as
//	the first hop out of the start. Everywhere else it is skipped.
//
// Layout:
//
//	core/        : Node, Link, Graph, sentinel errors
//	dijkstra/    : FindShortestPath, ShortestPath, options
//	source/      : JSONFile, HCLFile, Neo4j, Open
//	builder/     : deterministic grid, ring and path road networks
//	config/      : environment configuration
//	logging/     : slog logger construction
//	ctxlog/      : logger propagation through context.Context
//	cli/         : flag parsing, Run, exit codes
//	cmd/roadmap/ : main
//
// Quick ASCII example:
//
//	A ──1──▶ B ──1──▶ C
//	│                 ▲
//	└────────5────────┘
//
//	roadmap -graph node.json A C   →   ["A","B","C"]
package roadmap
