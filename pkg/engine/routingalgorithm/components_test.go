package routingalgorithm

import (
	"testing"

	"github.com/lintang-b-s/triroute/pkg/datastructure"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConnectedComponents(t *testing.T) {
	g := datastructure.NewGraph()
	for i, id := range []string{"A", "B", "C", "D", "E", "F"} {
		_, err := g.AddNode(id, float64(i), 0)
		require.NoError(t, err)
	}
	for _, e := range [][2]string{{"A", "C"}, {"C", "B"}, {"D", "E"}, {"F", "F"}} {
		_, err := g.AddEdge(e[0], e[1], "normal", 1, 1, 1)
		require.NoError(t, err)
	}

	comp, count := ConnectedComponents(g)

	assert.Equal(t, 3, count)
	assert.Equal(t, []int32{0, 0, 0, 1, 1, 2}, comp)
}

func TestShortestPathAcrossComponents(t *testing.T) {
	g := datastructure.NewGraph()
	for i, id := range []string{"A", "B", "C"} {
		_, err := g.AddNode(id, float64(i), 0)
		require.NoError(t, err)
	}
	_, err := g.AddEdge("A", "B", "normal", 1, 1, 1)
	require.NoError(t, err)

	rt := NewRouteAlgorithm(g)
	assert.Equal(t, 2, rt.NumComponents())

	for _, m := range datastructure.Metrics {
		res, err := rt.ShortestPath("A", "C", m)
		require.NoError(t, err)
		assert.False(t, res.Found)
		assert.Empty(t, res.Path.Nodes)
	}
}
