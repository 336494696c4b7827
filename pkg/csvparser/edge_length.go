package csvparser

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"

	"github.com/lintang-b-s/triroute/pkg/datastructure"
	"github.com/lintang-b-s/triroute/pkg/geo"
	"go.uber.org/zap"
)

// FillEdgeLengths copies the edge table to out with its length column set to
// geo.EdgeLength of the endpoint positions. The column is appended when the
// table has none; all other columns are kept as they are.
func (p *CSVParser) FillEdgeLengths(nodes, edges io.Reader, out io.Writer) (int, error) {
	positions, err := p.readPositions("nodes", nodes)
	if err != nil {
		return 0, err
	}

	t, err := newTable("edges", edges)
	if err != nil {
		return 0, err
	}
	fromCol, err := t.column(fromColumns, true)
	if err != nil {
		return 0, err
	}
	toCol, err := t.column(toColumns, true)
	if err != nil {
		return 0, err
	}
	lengthCol, _ := t.column(lengthColumns, false)

	header := append([]string(nil), t.header...)
	if lengthCol < 0 {
		lengthCol = len(header)
		header = append(header, lengthColumns[0])
	}

	w := csv.NewWriter(out)
	if err := w.Write(header); err != nil {
		return 0, fmt.Errorf("write header: %w", err)
	}

	n := 0
	err = t.each(func(rec record) error {
		from, ok := positions[rec.str(fromCol)]
		if !ok {
			return rec.fail(t.header[fromCol], datastructure.ErrUnknownNode)
		}
		to, ok := positions[rec.str(toCol)]
		if !ok {
			return rec.fail(t.header[toCol], datastructure.ErrUnknownNode)
		}

		row := make([]string, len(header))
		copy(row, rec.fields)
		row[lengthCol] = strconv.FormatFloat(geo.EdgeLength(from, to), 'f', -1, 64)
		if err := w.Write(row); err != nil {
			return fmt.Errorf("write line %d: %w", rec.line, err)
		}
		n++
		return nil
	})
	if err != nil {
		return n, err
	}

	w.Flush()
	if err := w.Error(); err != nil {
		return n, fmt.Errorf("flush edges: %w", err)
	}
	p.logger.Info("edge lengths filled", zap.Int("edges", n))
	return n, nil
}

func (p *CSVParser) readPositions(name string, in io.Reader) (map[string]datastructure.Coordinate, error) {
	g := datastructure.NewGraph()
	if err := p.readNodes(g, name, in); err != nil {
		return nil, err
	}
	positions := make(map[string]datastructure.Coordinate, g.GetNumNodes())
	for _, n := range g.Nodes() {
		positions[n.ID] = n.Position
	}
	return positions, nil
}
