package csvparser

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/lintang-b-s/triroute/pkg/datastructure"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

const positionNodes = `city,x,y
A,0,0
B,0,10
C,30,40
`

func TestFillEdgeLengths(t *testing.T) {
	t.Run("replaces existing column", func(t *testing.T) {
		edges := "node1,node2,type,length,speed,consumption\nA,B,normal,99,5,10\nA,C,autobahn,0,10,5\n"

		var out bytes.Buffer
		n, err := NewCSVParser(zap.NewNop()).FillEdgeLengths(strings.NewReader(positionNodes),
			strings.NewReader(edges), &out)
		require.NoError(t, err)
		assert.Equal(t, 2, n)
		assert.Equal(t, "node1,node2,type,length,speed,consumption\nA,B,normal,1,5,10\nA,C,autobahn,5,10,5\n",
			out.String())
	})

	t.Run("appends missing column", func(t *testing.T) {
		edges := "from,to,speed,consumption\nC,B,2,3\n"

		var out bytes.Buffer
		_, err := NewCSVParser(zap.NewNop()).FillEdgeLengths(strings.NewReader(positionNodes),
			strings.NewReader(edges), &out)
		require.NoError(t, err)
		// |(30,40)-(0,10)| = 42.43, /10 truncated
		assert.Equal(t, "from,to,speed,consumption,length\nC,B,2,3,4\n", out.String())
	})

	t.Run("output loads as a graph", func(t *testing.T) {
		edges := "node1,node2,type,speed,consumption\nA,B,normal,5,10\n"

		var out bytes.Buffer
		p := NewCSVParser(zap.NewNop())
		_, err := p.FillEdgeLengths(strings.NewReader(positionNodes), strings.NewReader(edges), &out)
		require.NoError(t, err)

		g, err := p.Parse(strings.NewReader(positionNodes), &out)
		require.NoError(t, err)
		assert.Equal(t, 1.0, g.GetEdge(0).Length)
	})

	t.Run("unknown endpoint", func(t *testing.T) {
		edges := "node1,node2,speed,consumption\nA,Z,5,10\n"

		_, err := NewCSVParser(zap.NewNop()).FillEdgeLengths(strings.NewReader(positionNodes),
			strings.NewReader(edges), &bytes.Buffer{})
		require.Error(t, err)
		assert.True(t, errors.Is(err, datastructure.ErrUnknownNode))

		var lerr *LoadError
		require.True(t, errors.As(err, &lerr))
		assert.Equal(t, 2, lerr.Line)
		assert.Equal(t, "node2", lerr.Field)
	})
}
