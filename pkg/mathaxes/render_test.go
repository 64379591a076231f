package mathaxes

import (
	"math"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
	"gonum.org/v1/plot/vg/recorder"
)

// render draws p onto a recording canvas and returns what was drawn.
func render(p *plot.Plot) []recorder.Action {
	rec := new(recorder.Canvas)
	p.Draw(draw.NewCanvas(rec, 4*vg.Inch, 3*vg.Inch))
	return rec.Actions
}

type segment struct {
	from, to vg.Point
}

func (s segment) length() vg.Length {
	return vg.Length(math.Hypot(float64(s.to.X-s.from.X), float64(s.to.Y-s.from.Y)))
}

// strokedSegments returns every stroked two-point path.
func strokedSegments(actions []recorder.Action) []segment {
	var segs []segment
	for _, a := range actions {
		st, ok := a.(*recorder.Stroke)
		if !ok || len(st.Path) != 2 {
			continue
		}
		if st.Path[0].Type != vg.MoveComp || st.Path[1].Type != vg.LineComp {
			continue
		}
		segs = append(segs, segment{from: st.Path[0].Pos, to: st.Path[1].Pos})
	}
	return segs
}

func countFills(actions []recorder.Action) int {
	n := 0
	for _, a := range actions {
		if _, ok := a.(*recorder.Fill); ok {
			n++
		}
	}
	return n
}
