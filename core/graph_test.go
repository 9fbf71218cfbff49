// SPDX-License-Identifier: MIT
// Package core_test verifies snapshot construction, validation and lookup.

package core_test

import (
	"math"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/roadmap/core"
)

func TestNewGraph_PreservesOrderAndIndex(t *testing.T) {
	g, err := core.NewGraph([]core.Node{
		core.MustNode("C", false),
		core.MustNode("A", true, core.To("C", 2)),
		core.MustNode("B", false, core.To("A", 1)),
	})
	require.NoError(t, err)

	assert.Equal(t, 3, g.Len())
	assert.Equal(t, []string{"C", "A", "B"}, g.Codes())

	n, ok := g.Node("A")
	require.True(t, ok)
	assert.True(t, n.Central)
	assert.Equal(t, core.To("C", 2), n.Neighbors[0])
	assert.Equal(t, "B", g.At(2).Code)

	_, ok = g.Node("Z")
	assert.False(t, ok)
	assert.False(t, g.Has("Z"))
	assert.True(t, g.Has("C"))
}

func TestNewGraph_Validation(t *testing.T) {
	cases := []struct {
		name  string
		nodes []core.Node
		want  error
	}{
		{"empty code", []core.Node{{Code: ""}}, core.ErrEmptyCode},
		{"duplicate", []core.Node{{Code: "A"}, {Code: "A"}}, core.ErrDuplicateCode},
		{"negative weight", []core.Node{{Code: "A", Neighbors: [core.NeighborSlots]core.Link{3: core.To("B", -1)}}}, core.ErrNegativeWeight},
		{"nan weight", []core.Node{{Code: "A", Neighbors: [core.NeighborSlots]core.Link{core.To("B", math.NaN())}}}, core.ErrNegativeWeight},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := core.NewGraph(tc.nodes)
			require.ErrorIs(t, err, tc.want)
		})
	}
}

func TestNewGraph_IgnoresWeightOnUnsetSlot(t *testing.T) {
	// An unset slot may carry any leftover weight from a loader; it is never read.
	n := core.Node{Code: "A"}
	n.Neighbors[5].Weight = -3
	_, err := core.NewGraph([]core.Node{n})
	require.NoError(t, err)
}

func TestNewGraph_EmptySnapshot(t *testing.T) {
	g, err := core.NewGraph(nil)
	require.NoError(t, err)
	assert.Equal(t, 0, g.Len())
	assert.Empty(t, g.Codes())
}

func TestNewGraph_CopiesInput(t *testing.T) {
	nodes := []core.Node{core.MustNode("A", false, core.To("B", 1))}
	g := core.MustGraph(nodes...)

	nodes[0].Code = "mutated"
	nodes[0].Neighbors[0].Weight = 99

	n, ok := g.Node("A")
	require.True(t, ok)
	assert.Equal(t, 1.0, n.Neighbors[0].Weight)

	out := g.Nodes()
	out[0].Central = true
	n, _ = g.Node("A")
	assert.False(t, n.Central, "Nodes() must return a copy")
}

func TestNode_Links(t *testing.T) {
	n := core.Node{Code: "A"}
	n.Neighbors[1] = core.To("B", 1)
	n.Neighbors[6] = core.To("C", 2)

	assert.Equal(t, []core.Link{core.To("B", 1), core.To("C", 2)}, n.Links())
}

func TestNewNode_Limits(t *testing.T) {
	links := make([]core.Link, core.NeighborSlots+1)
	for i := range links {
		links[i] = core.To("X", 1)
	}
	_, err := core.NewNode("A", false, links...)
	require.Error(t, err)

	_, err = core.NewNode("", false)
	require.ErrorIs(t, err, core.ErrEmptyCode)

	n, err := core.NewNode("A", false, links[:core.NeighborSlots]...)
	require.NoError(t, err)
	assert.Len(t, n.Links(), core.NeighborSlots)
}

func TestIsCentralMarker(t *testing.T) {
	assert.True(t, core.IsCentralMarker("O"))
	assert.False(t, core.IsCentralMarker("o"))
	assert.False(t, core.IsCentralMarker(""))
	assert.False(t, core.IsCentralMarker("X"))
}

func TestGraph_ConcurrentReads(t *testing.T) {
	g := core.MustGraph(
		core.MustNode("A", false, core.To("B", 1)),
		core.MustNode("B", false),
	)

	var wg sync.WaitGroup
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 100; j++ {
				_, _ = g.Node("A")
				_ = g.Codes()
			}
		}()
	}
	wg.Wait()
}
