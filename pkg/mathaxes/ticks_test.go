package mathaxes

import (
	"image/color"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/text"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
	"gonum.org/v1/plot/vg/recorder"
)

func styled() *plot.Plot {
	p := plot.New()
	StyleMathAxes(p, Range{-2, 5}, Range{-1, 3}, DefaultOptions())
	return p
}

func TestAddMathTicksBothAxes(t *testing.T) {
	p := styled()
	before := window(p)

	tm := AddMathTicks(p, Ticks{
		X:       []float64{-1, 1, 2, 4},
		XLabels: []string{"-1", "1", "2", "4"},
		Y:       []float64{1, 2},
		YLabels: []string{"1", "2"},
	})

	require.NotNil(t, tm.X)
	require.NotNil(t, tm.Y)
	assert.Equal(t, before, window(p))

	assert.Equal(t, plotter.XYs{{X: -1}, {X: 1}, {X: 2}, {X: 4}}, tm.X.Marks.XYs)
	assert.Equal(t, plotter.XYs{{Y: 1}, {Y: 2}}, tm.Y.Marks.XYs)
	assert.Equal(t, DashGlyph{Angle: math.Pi / 2, Width: vg.Points(tickWidth)}, tm.X.Marks.GlyphStyle.Shape)
	assert.Equal(t, DashGlyph{Angle: 0, Width: vg.Points(tickWidth)}, tm.Y.Marks.GlyphStyle.Shape)

	assert.Equal(t, text.XCenter, tm.X.Labels.TextStyle[0].XAlign)
	assert.Equal(t, text.YTop, tm.X.Labels.TextStyle[0].YAlign)
	assert.Less(t, float64(tm.X.Labels.Offset.Y), -float64(TickLength()/2))
	assert.Zero(t, tm.X.Labels.Offset.X)

	assert.Equal(t, text.XRight, tm.Y.Labels.TextStyle[1].XAlign)
	assert.Equal(t, text.YCenter, tm.Y.Labels.TextStyle[1].YAlign)
	assert.Less(t, float64(tm.Y.Labels.Offset.X), -float64(TickLength()/2))
	assert.Zero(t, tm.Y.Labels.Offset.Y)
}

func TestAddMathTicksSkipsUnpairedAxis(t *testing.T) {
	cases := []struct {
		name  string
		ticks Ticks
	}{
		{"positions without labels", Ticks{X: []float64{1, 2}, Y: []float64{1}, YLabels: []string{"1"}}},
		{"labels without positions", Ticks{XLabels: []string{"a"}, Y: []float64{1}, YLabels: []string{"1"}}},
		{"length mismatch", Ticks{X: []float64{1, 2}, XLabels: []string{"1"}, Y: []float64{1}, YLabels: []string{"1"}}},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			tm := AddMathTicks(styled(), c.ticks)
			assert.Nil(t, tm.X)
			require.NotNil(t, tm.Y)
			assert.Len(t, tm.Y.Marks.XYs, 1)
		})
	}
}

func TestAddMathTicksNothing(t *testing.T) {
	tm := AddMathTicks(styled(), Ticks{})
	assert.Nil(t, tm.X)
	assert.Nil(t, tm.Y)
}

func TestAddMathTicksNonFinite(t *testing.T) {
	assert.NotPanics(t, func() {
		tm := AddMathTicks(styled(), Ticks{
			X:       []float64{math.NaN()},
			XLabels: []string{"nan"},
			Y:       []float64{1},
			YLabels: []string{"1"},
		})
		assert.Nil(t, tm.X)
		assert.NotNil(t, tm.Y)
	})
}

func TestAddMathTicksOutsideWindow(t *testing.T) {
	p := styled()
	before := window(p)
	AddMathTicks(p, Ticks{X: []float64{100}, XLabels: []string{"100"}})
	assert.Equal(t, before, window(p))
}

func TestDashGlyph(t *testing.T) {
	sty := draw.GlyphStyle{Color: color.Black, Radius: 4}
	for _, angle := range []float64{0, math.Pi / 2, math.Pi / 3} {
		rec := new(recorder.Canvas)
		c := draw.NewCanvas(rec, 100, 100)
		DashGlyph{Angle: angle, Width: 1}.DrawGlyph(&c, sty, vg.Point{X: 50, Y: 50})

		segs := strokedSegments(rec.Actions)
		require.Len(t, segs, 1)
		assert.InDelta(t, 8, float64(segs[0].length()), 1e-9)

		mid := vg.Point{X: (segs[0].from.X + segs[0].to.X) / 2, Y: (segs[0].from.Y + segs[0].to.Y) / 2}
		assert.InDelta(t, 50, float64(mid.X), 1e-9)
		assert.InDelta(t, 50, float64(mid.Y), 1e-9)
	}
}

// tickDashes renders a styled plot whose x data and ticks are multiplied
// by scale and returns the tick-sized vertical dashes that were drawn.
func tickDashes(t *testing.T, scale float64) []segment {
	p := plot.New()
	opts := DefaultOptions()
	opts.YLabel = "x"
	StyleMathAxes(p, Range{-2 * scale, 5 * scale}, Range{-1, 3}, opts)

	pos := []float64{-1 * scale, 1 * scale, 3 * scale}
	tm := AddMathTicks(p, Ticks{X: pos, XLabels: []string{"a", "b", "c"}})
	require.NotNil(t, tm.X)

	var dashes []segment
	for _, s := range strokedSegments(render(p)) {
		if math.Abs(float64(s.from.X-s.to.X)) < 1e-9 && math.Abs(float64(s.length()-TickLength())) < 1e-9 {
			dashes = append(dashes, s)
		}
	}
	return dashes
}

func TestTickLengthIgnoresDataScale(t *testing.T) {
	for _, scale := range []float64{1, 1e-3, 1e4} {
		dashes := tickDashes(t, scale)
		assert.Len(t, dashes, 3, "scale %g", scale)
		for _, d := range dashes {
			assert.InDelta(t, float64(TickLength()), float64(d.length()), 1e-9)
		}
	}
}
