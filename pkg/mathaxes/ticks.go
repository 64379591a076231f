package mathaxes

import (
	"image/color"
	"math"

	log "github.com/sirupsen/logrus"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/text"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
)

const (
	tickLength   = 8
	tickWidth    = 1
	tickLabelGap = 3
	tickFontSize = 10
)

// Ticks lists tick positions and their labels. An axis is only drawn when
// both of its slices are non-empty and of equal length.
type Ticks struct {
	X       []float64
	XLabels []string
	Y       []float64
	YLabels []string
}

type TickSet struct {
	Marks  *plotter.Scatter
	Labels *plotter.Labels
}

// TickMarks records what AddMathTicks added. A nil entry means that axis
// was skipped.
type TickMarks struct {
	X *TickSet
	Y *TickSet
}

// TickLength is the on-canvas length of every dash tick.
func TickLength() vg.Length { return vg.Points(tickLength) }

// AddMathTicks overlays dash ticks and their labels on a plot already
// styled by StyleMathAxes. The plot window is left as it was.
func AddMathTicks(p *plot.Plot, t Ticks) *TickMarks {
	win := window(p)
	defer setWindow(p, win)

	tm := &TickMarks{}

	if pts, ok := tickPoints("x", t.X, t.XLabels, func(v float64) plotter.XY { return plotter.XY{X: v} }); ok {
		tm.X = newTickSet(pts, t.XLabels, math.Pi/2,
			text.XCenter, text.YTop,
			vg.Point{Y: -(TickLength()/2 + tickLabelGap)})
	}
	if pts, ok := tickPoints("y", t.Y, t.YLabels, func(v float64) plotter.XY { return plotter.XY{Y: v} }); ok {
		tm.Y = newTickSet(pts, t.YLabels, 0,
			text.XRight, text.YCenter,
			vg.Point{X: -(TickLength()/2 + tickLabelGap)})
	}

	for _, ts := range []*TickSet{tm.X, tm.Y} {
		if ts != nil {
			p.Add(ts.Marks, ts.Labels)
		}
	}

	return tm
}

func tickPoints(axis string, pos []float64, labels []string, at func(float64) plotter.XY) (plotter.XYs, bool) {
	if len(pos) == 0 || len(pos) != len(labels) {
		if len(pos)+len(labels) > 0 {
			log.Debugf("skipping %s ticks: %d positions, %d labels", axis, len(pos), len(labels))
		}
		return nil, false
	}

	pts := make(plotter.XYs, len(pos))
	for i, v := range pos {
		pts[i] = at(v)
	}
	return pts, true
}

func newTickSet(pts plotter.XYs, labels []string, angle float64, xa text.XAlignment, ya text.YAlignment, off vg.Point) *TickSet {
	marks, err := plotter.NewScatter(pts)
	if err != nil {
		log.Debugln("skipping ticks:", err)
		return nil
	}
	marks.GlyphStyle = draw.GlyphStyle{
		Color:  color.Black,
		Radius: TickLength() / 2,
		Shape:  DashGlyph{Angle: angle, Width: vg.Points(tickWidth)},
	}

	lbls, err := plotter.NewLabels(plotter.XYLabels{XYs: pts, Labels: labels})
	if err != nil {
		log.Debugln("skipping tick labels:", err)
		return nil
	}
	for i, s := range labels {
		lbls.TextStyle[i] = labelStyle(s, tickFontSize, xa, ya)
	}
	lbls.Offset = off

	return &TickSet{Marks: marks, Labels: lbls}
}
