package routingalgorithm

import (
	"fmt"
	"math"
	"testing"

	"github.com/lintang-b-s/triroute/pkg/datastructure"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/exp/rand"
)

/*
	B(0,10) ---5 km, 1 km/h, 50--- C(10,10)
	   |                           /
	 5 km, 5 km/h, 10             /
	   |                 20 km, 10 km/h, 5
	A(0,0) ------------------------

semua edge bidirectional
*/
func NewGraph(t *testing.T) *datastructure.Graph {
	t.Helper()
	g := datastructure.NewGraph()
	_, err := g.AddNode("A", 0, 0)
	require.NoError(t, err)
	_, err = g.AddNode("B", 0, 10)
	require.NoError(t, err)
	_, err = g.AddNode("C", 10, 10)
	require.NoError(t, err)

	_, err = g.AddEdge("A", "B", "normal", 5, 5, 10)
	require.NoError(t, err)
	_, err = g.AddEdge("B", "C", "normal", 5, 1, 50)
	require.NoError(t, err)
	_, err = g.AddEdge("A", "C", "normal", 20, 10, 5)
	require.NoError(t, err)
	return g
}

func TestShortestPathThreeMetrics(t *testing.T) {
	g := NewGraph(t)
	rt := NewRouteAlgorithm(g)

	cases := []struct {
		metric   datastructure.Metric
		nodes    []string
		cost     float64
		expected datastructure.PathStats
	}{
		{
			metric:   datastructure.Length,
			nodes:    []string{"A", "B", "C"},
			cost:     10,
			expected: datastructure.PathStats{Weight: 10, Length: 10, Time: 6, Consumption: 3},
		},
		{
			metric:   datastructure.Time,
			nodes:    []string{"A", "C"},
			cost:     2,
			expected: datastructure.PathStats{Weight: 2, Length: 20, Time: 2, Consumption: 1},
		},
		{
			metric:   datastructure.Consumption,
			nodes:    []string{"A", "C"},
			cost:     1,
			expected: datastructure.PathStats{Weight: 1, Length: 20, Time: 2, Consumption: 1},
		},
	}

	for _, c := range cases {
		t.Run(c.metric.String(), func(t *testing.T) {
			res, err := rt.ShortestPath("A", "C", c.metric)
			require.NoError(t, err)
			assert.True(t, res.Found)
			assert.Equal(t, c.nodes, res.Path.Nodes)
			assert.Len(t, res.Path.Edges, len(c.nodes)-1)
			assert.InDelta(t, c.cost, res.Cost, 1e-9)

			stats, err := PathStatistics(g, res.Path, c.metric)
			require.NoError(t, err)
			assert.InDelta(t, c.expected.Weight, stats.Weight, 1e-9)
			assert.InDelta(t, c.expected.Length, stats.Length, 1e-9)
			assert.InDelta(t, c.expected.Time, stats.Time, 1e-9)
			assert.InDelta(t, c.expected.Consumption, stats.Consumption, 1e-9)
		})
	}
}

func TestShortestPathSameNode(t *testing.T) {
	g := NewGraph(t)
	rt := NewRouteAlgorithm(g)

	res, err := rt.ShortestPath("B", "B", datastructure.Time)
	require.NoError(t, err)
	assert.True(t, res.Found)
	assert.Equal(t, []string{"B"}, res.Path.Nodes)
	assert.Empty(t, res.Path.Edges)
	assert.Equal(t, 0.0, res.Cost)

	stats, err := PathStatistics(g, res.Path, datastructure.Time)
	require.NoError(t, err)
	assert.Equal(t, datastructure.PathStats{}, stats)
}

func TestShortestPathUnreachable(t *testing.T) {
	g := NewGraph(t)
	_, err := g.AddNode("D", 50, 50)
	require.NoError(t, err)
	_, err = g.AddNode("E", 60, 50)
	require.NoError(t, err)
	_, err = g.AddEdge("D", "E", "normal", 1, 1, 1)
	require.NoError(t, err)

	rt := NewRouteAlgorithm(g)
	for _, m := range datastructure.Metrics {
		res, err := rt.ShortestPath("A", "E", m)
		require.NoError(t, err)
		assert.False(t, res.Found)
		assert.Empty(t, res.Path.Nodes)
		assert.True(t, math.IsInf(res.Cost, 1))
	}
}

func TestShortestPathNodeNotFound(t *testing.T) {
	rt := NewRouteAlgorithm(NewGraph(t))

	_, err := rt.ShortestPath("A", "Z", datastructure.Length)
	require.Error(t, err)
	assert.ErrorIs(t, err, datastructure.ErrNodeNotFound)

	var nf *NodeNotFoundError
	require.ErrorAs(t, err, &nf)
	assert.Equal(t, "Z", nf.ID)

	_, err = rt.ShortestPath("Q", "A", datastructure.Length)
	assert.ErrorIs(t, err, datastructure.ErrNodeNotFound)
}

func TestShortestPathDeterministic(t *testing.T) {
	// two equally short routes A-B-D and A-C-D
	build := func() *datastructure.Graph {
		g := datastructure.NewGraph()
		for _, id := range []string{"A", "B", "C", "D"} {
			_, err := g.AddNode(id, 0, 0)
			require.NoError(t, err)
		}
		for _, e := range [][2]string{{"A", "B"}, {"A", "C"}, {"B", "D"}, {"C", "D"}} {
			_, err := g.AddEdge(e[0], e[1], "normal", 1, 1, 1)
			require.NoError(t, err)
		}
		return g
	}

	first, err := NewRouteAlgorithm(build()).ShortestPath("A", "D", datastructure.Length)
	require.NoError(t, err)
	for i := 0; i < 20; i++ {
		res, err := NewRouteAlgorithm(build()).ShortestPath("A", "D", datastructure.Length)
		require.NoError(t, err)
		assert.Equal(t, first.Path, res.Path)
	}
}

func randomGraph(r *rand.Rand, numNodes, numEdges int) *datastructure.Graph {
	g := datastructure.NewGraph()
	for i := 0; i < numNodes; i++ {
		g.AddNode(fmt.Sprintf("n%d", i), r.Float64()*100, r.Float64()*100)
	}
	for i := 0; i < numEdges; i++ {
		from := fmt.Sprintf("n%d", r.Intn(numNodes))
		to := fmt.Sprintf("n%d", r.Intn(numNodes))
		g.AddEdge(from, to, "normal", float64(r.Intn(20)), float64(1+r.Intn(10)), float64(r.Intn(50)))
	}
	return g
}

// bruteForceMin enumerates every simple path from -> to.
func bruteForceMin(g *datastructure.Graph, from, to int32, m datastructure.Metric) float64 {
	best := math.Inf(1)
	visited := make([]bool, g.GetNumNodes())

	var dfs func(u int32, cost float64)
	dfs = func(u int32, cost float64) {
		if u == to {
			best = math.Min(best, cost)
			return
		}
		visited[u] = true
		for _, edgeID := range g.GetNodeEdges(u) {
			e := g.GetEdge(edgeID)
			v := e.Other(u)
			if !visited[v] {
				dfs(v, cost+m.Weight(e))
			}
		}
		visited[u] = false
	}
	dfs(from, 0)
	return best
}

func TestShortestPathMatchesBruteForce(t *testing.T) {
	r := rand.New(rand.NewSource(42))

	for round := 0; round < 50; round++ {
		g := randomGraph(r, 7, 10)
		rt := NewRouteAlgorithm(g)

		from := int32(r.Intn(7))
		to := int32(r.Intn(7))
		for _, m := range datastructure.Metrics {
			expected := bruteForceMin(g, from, to, m)

			res, err := rt.ShortestPath(g.GetNode(from).ID, g.GetNode(to).ID, m)
			require.NoError(t, err)

			if math.IsInf(expected, 1) {
				assert.False(t, res.Found, "round %d metric %s", round, m)
				continue
			}
			require.True(t, res.Found, "round %d metric %s", round, m)
			assert.InDelta(t, expected, res.Cost, 1e-9, "round %d metric %s", round, m)

			stats, err := PathStatistics(g, res.Path, m)
			require.NoError(t, err)
			assert.InDelta(t, res.Cost, stats.Weight, 1e-9)
		}
	}
}
