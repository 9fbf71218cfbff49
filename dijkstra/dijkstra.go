// Package dijkstra implements the restricted shortest-path search over a
// core.Graph snapshot.
//
// Complexity:
//
//   - Time:  O((V + E) log V), E ≤ 8V because every node has at most 8 slots.
//   - Space: O(V + E); the frontier may hold one entry per relaxation.
//
// Notes on implementation choices:
//
//   - We use a "lazy" decrease-key strategy: relaxed neighbors are pushed again
//     and stale entries are dropped on pop via the visited set.
//   - Relaxation uses a strict "<", so equal-cost alternatives never re-parent
//     a node. Together with the fixed slot order this makes ties reproducible.
package dijkstra

import (
	"container/heap"
	"fmt"
	"math"

	"github.com/katalvlaran/roadmap/core"
)

// FindShortestPath returns the cheapest sequence of node codes from start to
// finish, honoring the central-node entry rule.
//
// Returns:
//
//   - a path start … finish inclusive when finish is reachable;
//   - []string{start} when start == finish;
//   - []string{finish} when finish is absent from g or unreachable. This
//     degenerate shape is a normal result, not an error.
//
// Errors: ErrNilGraph, ErrEmptyCode, ErrStartNotFound. Nothing is allocated
// before validation succeeds.
func FindShortestPath(g *core.Graph, start, finish string) ([]string, error) {
	res, err := ShortestPath(g, start, finish)
	if err != nil {
		return nil, err
	}

	return res.Path, nil
}

// ShortestPath runs the search and reports the path together with its
// weight, whether the finish was reached, and how many nodes were settled.
//
// Preconditions and validation (in order):
//  1. g must be non-nil (ErrNilGraph).
//  2. start and finish must be non-empty (ErrEmptyCode).
//  3. g must contain start (ErrStartNotFound).
//
// The finish does not need to exist in g.
func ShortestPath(g *core.Graph, start, finish string, opts ...Option) (Result, error) {
	// 1) Build options.
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	// 2) Validate inputs.
	if g == nil {
		return Result{}, ErrNilGraph
	}
	if start == "" || finish == "" {
		return Result{}, ErrEmptyCode
	}
	if !g.Has(start) {
		return Result{}, fmt.Errorf("%w: %q", ErrStartNotFound, start)
	}

	// 3) Run.
	r := newRunner(g, start, finish, cfg)
	r.init()
	r.process()
	res := r.result()

	if cfg.Logger != nil {
		cfg.Logger.Debug("shortest path search finished",
			"start", start,
			"finish", finish,
			"reached", res.Reached,
			"distance", res.Distance,
			"hops", len(res.Path)-1,
			"settled", res.Settled,
		)
	}

	return res, nil
}

// runner holds the mutable state for a single search. Nothing in it outlives
// the ShortestPath call that created it.
type runner struct {
	g       *core.Graph
	start   string
	finish  string
	options Options
	dist    map[string]float64 // code → best known distance from start
	prev    map[string]string  // code → predecessor on the best known path
	visited map[string]bool    // code → distance is final
	pq      nodePQ
	settled int
}

func newRunner(g *core.Graph, start, finish string, cfg Options) *runner {
	v := g.Len()

	return &runner{
		g:       g,
		start:   start,
		finish:  finish,
		options: cfg,
		dist:    make(map[string]float64, v),
		prev:    make(map[string]string, v),
		visited: make(map[string]bool, v),
		pq:      make(nodePQ, 0, v),
	}
}

// init sets dist[v] = +Inf for every node, dist[start] = 0, and seeds the heap.
func (r *runner) init() {
	inf := math.Inf(1)
	for i := 0; i < r.g.Len(); i++ {
		r.dist[r.g.At(i).Code] = inf
	}
	r.dist[r.start] = 0

	heap.Init(&r.pq)
	heap.Push(&r.pq, &nodeItem{code: r.start, dist: 0})
}

// process is the main loop. It ends when the heap is empty, when the finish
// is finalized, or when the nearest entry exceeds MaxDistance.
func (r *runner) process() {
	for r.pq.Len() > 0 {
		item := heap.Pop(&r.pq).(*nodeItem)
		u := item.code

		// Stale duplicate of an already finalized node.
		if r.visited[u] {
			continue
		}
		if item.dist > r.options.MaxDistance {
			break
		}

		r.visited[u] = true
		r.settled++

		if u == r.finish {
			break
		}

		r.relax(u)
	}
}

// relax walks the slots of u in order 0..7 and improves neighbor distances.
func (r *runner) relax(u string) {
	node, _ := r.g.Node(u)
	du := r.dist[u]

	for _, link := range node.Neighbors {
		if !link.IsSet() {
			continue
		}
		v := link.To
		nb, ok := r.g.Node(v)
		if !ok {
			continue // unknown neighbor
		}
		if r.options.CentralRule && nb.Central && v != r.finish && u != r.start {
			continue
		}

		newDist := du + link.Weight
		if newDist >= r.dist[v] {
			continue
		}
		r.dist[v] = newDist
		r.prev[v] = u
		heap.Push(&r.pq, &nodeItem{code: v, dist: newDist})
	}
}

// result walks predecessors back from the finish and reverses the chain.
// A finish with no predecessor yields [finish]. A finish that was relaxed but
// cut off by MaxDistance is reported the same way, since its distance is not final.
func (r *runner) result() Result {
	if !r.visited[r.finish] {
		return Result{
			Path:     []string{r.finish},
			Distance: math.Inf(1),
			Settled:  r.settled,
		}
	}

	var path []string
	for code, ok := r.finish, true; ok; code, ok = r.prev[code] {
		path = append(path, code)
	}
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}

	return Result{
		Path:     path,
		Distance: r.dist[r.finish],
		Reached:  true,
		Settled:  r.settled,
	}
}

// nodeItem is a frontier entry: a node code and the distance it was pushed with.
type nodeItem struct {
	code string
	dist float64
}

// nodePQ is a min-heap of *nodeItem ordered by dist. The same code may appear
// several times; only the first pop of each code is processed.
type nodePQ []*nodeItem

func (pq nodePQ) Len() int           { return len(pq) }
func (pq nodePQ) Less(i, j int) bool { return pq[i].dist < pq[j].dist }
func (pq nodePQ) Swap(i, j int)      { pq[i], pq[j] = pq[j], pq[i] }

func (pq *nodePQ) Push(x interface{}) { *pq = append(*pq, x.(*nodeItem)) }

func (pq *nodePQ) Pop() interface{} {
	old := *pq
	n := len(old)
	item := old[n-1]
	old[n-1] = nil
	*pq = old[:n-1]

	return item
}
