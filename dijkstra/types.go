// Package dijkstra defines the result type, sentinel errors and functional
// options for the restricted shortest-path search.
//
// Options:
//
//	– CentralRule: if true (default), central nodes may be entered only as the
//	                finish or directly from the start.
//	– MaxDistance: optional cap; the search stops once the closest frontier
//	                entry lies beyond it.
//	– Logger:      optional *slog.Logger for a debug summary of each search.
//
// Errors (sentinel):
//
//	– ErrNilGraph       if the provided graph pointer is nil.
//	– ErrEmptyCode      if start or finish is empty.
//	– ErrStartNotFound  if the start code is not in the graph.
//	– ErrBadMaxDistance if MaxDistance < 0 or NaN (raised via panic).
package dijkstra

import (
	"errors"
	"log/slog"
	"math"
)

// Sentinel errors returned by the search.
var (
	// ErrNilGraph indicates that a nil *core.Graph was passed in.
	ErrNilGraph = errors.New("dijkstra: graph is nil")

	// ErrEmptyCode indicates that the start or finish code is empty.
	ErrEmptyCode = errors.New("dijkstra: node code is empty")

	// ErrStartNotFound indicates that the start code has no node in the graph.
	// The frontier cannot be seeded, so the search fails before allocating state.
	ErrStartNotFound = errors.New("dijkstra: start node not found in graph")

	// ErrBadMaxDistance indicates that MaxDistance was set to a negative or NaN value.
	ErrBadMaxDistance = errors.New("dijkstra: MaxDistance must be non-negative")
)

// Result is the outcome of one search.
//
// Path runs from start to finish inclusive. When the finish was never reached
// (absent from the graph, unreachable, or beyond MaxDistance) Path is exactly
// []string{finish}, Reached is false and Distance is +Inf.
type Result struct {
	Path     []string // start … finish, or [finish] when unreached
	Distance float64  // total weight of Path; +Inf when unreached
	Reached  bool     // whether finish was finalized by the search
	Settled  int      // number of nodes finalized before the loop ended
}

// Options configures the search.
type Options struct {
	CentralRule bool         // enforce the central-node entry rule
	MaxDistance float64      // do not finalize nodes farther than this
	Logger      *slog.Logger // nil disables logging
}

// Option represents a functional option for configuring the search.
type Option func(*Options)

// WithCentralRule toggles the central-node entry rule. It is on by default;
// turning it off yields plain Dijkstra over the same graph.
func WithCentralRule(enabled bool) Option {
	return func(o *Options) {
		o.CentralRule = enabled
	}
}

// WithMaxDistance caps exploration: once the nearest frontier entry is farther
// than max, the search stops. Panics with ErrBadMaxDistance on a negative or NaN max.
func WithMaxDistance(max float64) Option {
	// Validated eagerly so a bad value fails where the option is built.
	if max < 0 || math.IsNaN(max) {
		panic(ErrBadMaxDistance.Error())
	}

	return func(o *Options) {
		o.MaxDistance = max
	}
}

// WithLogger attaches a logger that receives one debug record per search.
func WithLogger(l *slog.Logger) Option {
	return func(o *Options) {
		o.Logger = l
	}
}

// DefaultOptions returns the options used by FindShortestPath.
//
// Defaults:
//   - CentralRule: true.
//   - MaxDistance: +Inf (no cap).
//   - Logger:      nil.
func DefaultOptions() Options {
	return Options{
		CentralRule: true,
		MaxDistance: math.Inf(1),
	}
}
