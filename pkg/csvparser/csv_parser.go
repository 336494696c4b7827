package csvparser

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"math"
	"os"
	"strconv"
	"strings"

	"github.com/go-playground/locales/en"
	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	enTranslations "github.com/go-playground/validator/v10/translations/en"
	"github.com/lintang-b-s/triroute/pkg/datastructure"
	"go.uber.org/zap"
)

// header aliases, the first name of each list is the canonical one.
var (
	nodeIDColumns = []string{"city", "id", "name", "node"}
	xColumns      = []string{"x"}
	yColumns      = []string{"y"}

	fromColumns        = []string{"node1", "from", "start", "source"}
	toColumns          = []string{"node2", "to", "end", "target"}
	categoryColumns    = []string{"type", "category", "road_type"}
	lengthColumns      = []string{"length", "distance"}
	speedColumns       = []string{"speed"}
	consumptionColumns = []string{"consumption", "consumption_rate"}
)

type nodeRow struct {
	ID string `validate:"required"`
	X  float64
	Y  float64
}

type edgeRow struct {
	From        string  `validate:"required"`
	To          string  `validate:"required"`
	Category    string
	Length      float64 `validate:"gte=0"`
	Speed       float64 `validate:"gt=0"`
	Consumption float64 `validate:"gte=0"`
}

type CSVParser struct {
	validate *validator.Validate
	trans    ut.Translator
	logger   *zap.Logger
}

func NewCSVParser(logger *zap.Logger) *CSVParser {
	validate := validator.New()
	english := en.New()
	uni := ut.New(english, english)
	trans, _ := uni.GetTranslator("en")
	_ = enTranslations.RegisterDefaultTranslations(validate, trans)

	return &CSVParser{
		validate: validate,
		trans:    trans,
		logger:   logger,
	}
}

// ParseFiles builds a graph from a node table and an edge table on disk.
func (p *CSVParser) ParseFiles(nodesFile, edgesFile string) (*datastructure.Graph, error) {
	nf, err := os.Open(nodesFile)
	if err != nil {
		return nil, fmt.Errorf("open nodes file: %w", err)
	}
	defer nf.Close()

	ef, err := os.Open(edgesFile)
	if err != nil {
		return nil, fmt.Errorf("open edges file: %w", err)
	}
	defer ef.Close()

	return p.parse(nodesFile, nf, edgesFile, ef)
}

// Parse builds a graph from CSV readers. Both tables need a header row.
func (p *CSVParser) Parse(nodes, edges io.Reader) (*datastructure.Graph, error) {
	return p.parse("nodes", nodes, "edges", edges)
}

func (p *CSVParser) parse(nodesName string, nodes io.Reader, edgesName string, edges io.Reader) (*datastructure.Graph, error) {
	g := datastructure.NewGraph()

	if err := p.readNodes(g, nodesName, nodes); err != nil {
		return nil, err
	}
	if err := p.readEdges(g, edgesName, edges); err != nil {
		return nil, err
	}

	p.logger.Info("graph loaded",
		zap.String("nodes_file", nodesName),
		zap.String("edges_file", edgesName),
		zap.Int("nodes", g.GetNumNodes()),
		zap.Int("edges", g.GetNumEdges()))
	return g, nil
}

func (p *CSVParser) readNodes(g *datastructure.Graph, name string, in io.Reader) error {
	t, err := newTable(name, in)
	if err != nil {
		return err
	}
	idCol, err := t.column(nodeIDColumns, true)
	if err != nil {
		return err
	}
	xCol, err := t.column(xColumns, true)
	if err != nil {
		return err
	}
	yCol, err := t.column(yColumns, true)
	if err != nil {
		return err
	}

	return t.each(func(rec record) error {
		row := nodeRow{ID: rec.str(idCol)}
		if row.X, err = rec.float(xCol); err != nil {
			return err
		}
		if row.Y, err = rec.float(yCol); err != nil {
			return err
		}
		if err := p.validateRow(rec, row); err != nil {
			return err
		}

		if _, err := g.AddNode(row.ID, row.X, row.Y); err != nil {
			return rec.fail(t.header[idCol], err)
		}
		return nil
	})
}

func (p *CSVParser) readEdges(g *datastructure.Graph, name string, in io.Reader) error {
	t, err := newTable(name, in)
	if err != nil {
		return err
	}
	fromCol, err := t.column(fromColumns, true)
	if err != nil {
		return err
	}
	toCol, err := t.column(toColumns, true)
	if err != nil {
		return err
	}
	categoryCol, _ := t.column(categoryColumns, false)
	lengthCol, err := t.column(lengthColumns, true)
	if err != nil {
		return err
	}
	speedCol, err := t.column(speedColumns, true)
	if err != nil {
		return err
	}
	consumptionCol, err := t.column(consumptionColumns, true)
	if err != nil {
		return err
	}

	return t.each(func(rec record) error {
		row := edgeRow{
			From:     rec.str(fromCol),
			To:       rec.str(toCol),
			Category: rec.str(categoryCol),
		}
		if row.Length, err = rec.float(lengthCol); err != nil {
			return err
		}
		if row.Speed, err = rec.float(speedCol); err != nil {
			return err
		}
		if row.Consumption, err = rec.float(consumptionCol); err != nil {
			return err
		}
		if err := p.validateRow(rec, row); err != nil {
			return err
		}

		if _, err := g.AddEdge(row.From, row.To, row.Category, row.Length, row.Speed, row.Consumption); err != nil {
			field := t.header[fromCol]
			if _, ok := g.GetNodeIDx(row.From); ok {
				field = t.header[toCol]
			}
			return rec.fail(field, err)
		}
		return nil
	})
}

// validateRow runs the struct tags of row and maps the first violation to a LoadError.
func (p *CSVParser) validateRow(rec record, row interface{}) error {
	err := p.validate.Struct(row)
	if err == nil {
		return nil
	}
	var validationErrs validator.ValidationErrors
	if !errors.As(err, &validationErrs) || len(validationErrs) == 0 {
		return rec.fail("", err)
	}

	fe := validationErrs[0]
	sentinel := datastructure.ErrInvalidEdgeValue
	switch {
	case fe.Tag() == "required":
		sentinel = ErrMissingValue
	case fe.Field() == "Speed" && fe.Value() == 0.0:
		sentinel = datastructure.ErrZeroSpeed
	}

	lerr := rec.fail(strings.ToLower(fe.Field()), sentinel)
	lerr.Msg = fe.Translate(p.trans)
	return lerr
}

type table struct {
	name   string
	r      *csv.Reader
	header []string
}

func newTable(name string, in io.Reader) (*table, error) {
	r := csv.NewReader(in)
	r.TrimLeadingSpace = true
	r.FieldsPerRecord = -1

	header, err := r.Read()
	if err == io.EOF {
		return nil, &LoadError{File: name, Err: ErrMissingColumn, Msg: "empty table, header row expected"}
	}
	if err != nil {
		return nil, &LoadError{File: name, Err: err}
	}

	for i, h := range header {
		h = strings.TrimPrefix(h, "\ufeff")
		header[i] = strings.ToLower(strings.TrimSpace(h))
	}
	return &table{name: name, r: r, header: header}, nil
}

// column returns the index of the first header that matches one of names, or -1.
func (t *table) column(names []string, required bool) (int, error) {
	for _, name := range names {
		for i, h := range t.header {
			if h == name {
				return i, nil
			}
		}
	}
	if !required {
		return -1, nil
	}
	return -1, &LoadError{
		File:  t.name,
		Line:  1,
		Field: names[0],
		Err:   ErrMissingColumn,
		Msg:   fmt.Sprintf("%s (accepted names: %s)", ErrMissingColumn, strings.Join(names, ", ")),
	}
}

func (t *table) each(handle func(rec record) error) error {
	for {
		fields, err := t.r.Read()
		if err == io.EOF {
			return nil
		}
		if err != nil {
			return &LoadError{File: t.name, Err: err}
		}
		line, _ := t.r.FieldPos(0)
		if err := handle(record{table: t, line: line, fields: fields}); err != nil {
			return err
		}
	}
}

type record struct {
	table  *table
	line   int
	fields []string
}

func (r record) str(col int) string {
	if col < 0 || col >= len(r.fields) {
		return ""
	}
	return strings.TrimSpace(r.fields[col])
}

func (r record) float(col int) (float64, error) {
	raw := r.str(col)
	f, err := strconv.ParseFloat(raw, 64)
	if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
		lerr := r.fail(r.table.header[col], ErrMalformedNumber)
		lerr.Msg = fmt.Sprintf("%s: %q", ErrMalformedNumber, raw)
		return 0, lerr
	}
	return f, nil
}

func (r record) fail(field string, err error) *LoadError {
	return &LoadError{
		File:  r.table.name,
		Line:  r.line,
		Field: field,
		Err:   err,
	}
}
