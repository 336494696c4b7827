package datastructure_test

import (
	"testing"

	"github.com/lintang-b-s/triroute/pkg/datastructure"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func buildABC(t *testing.T) *datastructure.Graph {
	t.Helper()
	g := datastructure.NewGraph()
	for _, n := range []struct {
		id   string
		x, y float64
	}{{"A", 0, 0}, {"B", 0, 10}, {"C", 10, 10}} {
		_, err := g.AddNode(n.id, n.x, n.y)
		require.NoError(t, err)
	}
	_, err := g.AddEdge("A", "B", "normal", 5, 5, 10)
	require.NoError(t, err)
	_, err = g.AddEdge("B", "C", "normal", 5, 1, 50)
	require.NoError(t, err)
	_, err = g.AddEdge("A", "C", "autobahn", 20, 10, 5)
	require.NoError(t, err)
	return g
}

func TestGraphDerivedFields(t *testing.T) {
	g := buildABC(t)

	assert.Equal(t, 3, g.GetNumNodes())
	assert.Equal(t, 3, g.GetNumEdges())

	ab := g.GetEdge(0)
	assert.Equal(t, 1.0, ab.Time)
	assert.Equal(t, 0.5, ab.Consumption)

	bc := g.GetEdge(1)
	assert.Equal(t, 5.0, bc.Time)
	assert.Equal(t, 2.5, bc.Consumption)

	ac := g.GetEdge(2)
	assert.Equal(t, 2.0, ac.Time)
	assert.Equal(t, 1.0, ac.Consumption)
	assert.Equal(t, "autobahn", ac.Category)

	a, ok := g.GetNodeIDx("A")
	require.True(t, ok)
	assert.Equal(t, []int32{0, 2}, g.GetNodeEdges(a))
	assert.Equal(t, int32(2), ac.Other(a))
}

func TestGraphRejectsInvalidInput(t *testing.T) {
	g := buildABC(t)

	_, err := g.AddNode("A", 1, 1)
	assert.ErrorIs(t, err, datastructure.ErrDuplicateNode)

	_, err = g.AddEdge("A", "Z", "normal", 1, 1, 1)
	assert.ErrorIs(t, err, datastructure.ErrUnknownNode)

	_, err = g.AddEdge("A", "B", "normal", 1, 0, 1)
	assert.ErrorIs(t, err, datastructure.ErrZeroSpeed)

	_, err = g.AddEdge("A", "B", "normal", -1, 1, 1)
	assert.ErrorIs(t, err, datastructure.ErrInvalidEdgeValue)

	assert.Equal(t, 3, g.GetNumEdges())
}

func TestGraphEdgeBetweenParallelEdges(t *testing.T) {
	g := buildABC(t)
	_, err := g.AddEdge("C", "A", "", 30, 100, 1)
	require.NoError(t, err)

	a, _ := g.GetNodeIDx("A")
	c, _ := g.GetNodeIDx("C")

	e, ok := g.EdgeBetween(a, c, datastructure.Length)
	require.True(t, ok)
	assert.Equal(t, int32(2), e.EdgeID)

	e, ok = g.EdgeBetween(c, a, datastructure.Time)
	require.True(t, ok)
	assert.Equal(t, int32(3), e.EdgeID)
	assert.Equal(t, datastructure.DefaultCategory, e.Category)

	b, _ := g.GetNodeIDx("B")
	_, err = g.AddNode("D", 3, 3)
	require.NoError(t, err)
	d, _ := g.GetNodeIDx("D")
	_, ok = g.EdgeBetween(b, d, datastructure.Length)
	assert.False(t, ok)
}

func TestGraphMarshalBinaryDeterministic(t *testing.T) {
	one, err := buildABC(t).MarshalBinary()
	require.NoError(t, err)
	two, err := buildABC(t).MarshalBinary()
	require.NoError(t, err)
	assert.Equal(t, one, two)
}

func TestParseMetric(t *testing.T) {
	m, err := datastructure.ParseMetric("Zeit")
	require.NoError(t, err)
	assert.Equal(t, datastructure.Time, m)
	assert.Equal(t, "fastest", m.Label())

	_, err = datastructure.ParseMetric("altitude")
	assert.Error(t, err)
}
