package series

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"

	"gonum.org/v1/plot/plotter"

	"mathplot/pkg/mathaxes"
)

var ErrNoColumns = errors.New("csv needs an x column and at least one y column")

// Table is a CSV file read as series sharing one x column.
type Table struct {
	XName  string
	Series []Series
}

// ReadCSV reads a headered CSV file. The first column is x, every other
// column becomes a series named after its header.
func ReadCSV(r io.Reader) (*Table, error) {
	cr := csv.NewReader(r)
	cr.TrimLeadingSpace = true
	cr.Comment = '#'

	header, err := cr.Read()
	if err != nil {
		return nil, fmt.Errorf("read header: %w", err)
	}
	if len(header) < 2 {
		return nil, ErrNoColumns
	}

	t := &Table{XName: strings.TrimSpace(header[0])}
	for _, h := range header[1:] {
		t.Series = append(t.Series, Series{Name: strings.TrimSpace(h)})
	}

	for {
		rec, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, err
		}

		line, _ := cr.FieldPos(0)
		vals := make([]float64, len(rec))
		for i, cell := range rec {
			vals[i], err = strconv.ParseFloat(strings.TrimSpace(cell), 64)
			if err != nil {
				return nil, fmt.Errorf("line %d, column %q: %w", line, header[i], err)
			}
		}
		for i := range t.Series {
			t.Series[i].XYs = append(t.Series[i].XYs, plotter.XY{X: vals[0], Y: vals[i+1]})
		}
	}

	return t, nil
}

// Bounds returns the x and y ranges covered by every point of every
// series. Empty input yields zero ranges.
func Bounds(series ...plotter.XYs) (x, y mathaxes.Range) {
	first := true
	for _, xys := range series {
		for _, pt := range xys {
			if first {
				x = mathaxes.Range{Min: pt.X, Max: pt.X}
				y = mathaxes.Range{Min: pt.Y, Max: pt.Y}
				first = false
				continue
			}
			x.Min, x.Max = math.Min(x.Min, pt.X), math.Max(x.Max, pt.X)
			y.Min, y.Max = math.Min(y.Min, pt.Y), math.Max(y.Max, pt.Y)
		}
	}
	return x, y
}

// XYs returns the points of every series in order.
func XYs(series []Series) []plotter.XYs {
	out := make([]plotter.XYs, len(series))
	for i, s := range series {
		out[i] = s.XYs
	}
	return out
}
