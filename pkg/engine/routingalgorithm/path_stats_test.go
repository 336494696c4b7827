package routingalgorithm

import (
	"testing"

	"github.com/lintang-b-s/triroute/pkg/datastructure"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPathStatisticsAdditive(t *testing.T) {
	g := NewGraph(t)
	path := datastructure.Path{Nodes: []string{"A", "B", "C", "A"}}

	whole, err := PathStatistics(g, path, datastructure.Length)
	require.NoError(t, err)

	sum := datastructure.PathStats{}
	for i := 0; i+1 < len(path.Nodes); i++ {
		part, err := PathStatistics(g, datastructure.Path{Nodes: path.Nodes[i : i+2]}, datastructure.Length)
		require.NoError(t, err)
		sum = sum.Add(part)
	}

	assert.InDelta(t, whole.Weight, sum.Weight, 1e-9)
	assert.InDelta(t, whole.Length, sum.Length, 1e-9)
	assert.InDelta(t, whole.Time, sum.Time, 1e-9)
	assert.InDelta(t, whole.Consumption, sum.Consumption, 1e-9)
	assert.InDelta(t, 30.0, whole.Length, 1e-9)
	assert.InDelta(t, 8.0, whole.Time, 1e-9)
}

func TestPathStatisticsRejectsBrokenPath(t *testing.T) {
	g := NewGraph(t)
	_, err := g.AddNode("D", 1, 1)
	require.NoError(t, err)

	_, err = PathStatistics(g, datastructure.Path{Nodes: []string{"A", "D"}}, datastructure.Length)
	assert.ErrorIs(t, err, datastructure.ErrEdgeNotFound)

	// edge 1 is B-C, not A-B
	_, err = PathStatistics(g, datastructure.Path{Nodes: []string{"A", "B"}, Edges: []int32{1}}, datastructure.Length)
	assert.ErrorIs(t, err, datastructure.ErrEdgeNotFound)

	_, err = PathStatistics(g, datastructure.Path{Nodes: []string{"A", "B"}, Edges: []int32{99}}, datastructure.Length)
	assert.ErrorIs(t, err, datastructure.ErrEdgeNotFound)

	_, err = PathStatistics(g, datastructure.Path{Nodes: []string{"A", "X"}}, datastructure.Length)
	assert.ErrorIs(t, err, datastructure.ErrNodeNotFound)

	_, err = PathStatistics(g, datastructure.Path{}, datastructure.Length)
	assert.Error(t, err)
}
