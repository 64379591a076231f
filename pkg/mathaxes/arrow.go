package mathaxes

import (
	"image/color"
	"math"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
)

// VeeHead is a sharp, notched arrowhead. Size is the distance from the tip
// to the back corners, in canvas units.
type VeeHead struct {
	Size vg.Length
	Fill color.Color
	Line color.Color
}

// Arrow points from Start to End in data coordinates. The head is laid out
// in canvas space, so its shape does not depend on the axis scales.
type Arrow struct {
	Start, End plotter.XY

	Head VeeHead

	// Body is stroked from Start to End when its width is positive.
	Body draw.LineStyle
}

func NewArrow(start, end plotter.XY, size vg.Length) *Arrow {
	return &Arrow{
		Start: start,
		End:   end,
		Head:  VeeHead{Size: size, Fill: color.Black, Line: color.Black},
	}
}

// Plot implements plot.Plotter.
func (a *Arrow) Plot(c draw.Canvas, plt *plot.Plot) {
	trX, trY := plt.Transforms(&c)
	from := vg.Point{X: trX(a.Start.X), Y: trY(a.Start.Y)}
	tip := vg.Point{X: trX(a.End.X), Y: trY(a.End.Y)}

	if a.Body.Width > 0 {
		c.StrokeLine2(a.Body, from.X, from.Y, tip.X, tip.Y)
	}

	pts := a.Head.outline(from, tip)
	if pts == nil {
		return
	}

	var path vg.Path
	path.Move(pts[0])
	for _, pt := range pts[1:] {
		path.Line(pt)
	}
	path.Close()

	if a.Head.Fill != nil {
		c.SetColor(a.Head.Fill)
		c.Fill(path)
	}
	if a.Head.Line != nil {
		c.SetColor(a.Head.Line)
		c.SetLineWidth(vg.Points(1))
		c.Stroke(path)
	}
}

// outline returns tip, one back corner, the notch and the other back corner.
// It returns nil when from and tip coincide on the canvas.
func (h VeeHead) outline(from, tip vg.Point) []vg.Point {
	dx, dy := float64(tip.X-from.X), float64(tip.Y-from.Y)
	n := math.Hypot(dx, dy)
	if n == 0 || math.IsNaN(n) || math.IsInf(n, 0) {
		return nil
	}
	ux, uy := vg.Length(dx/n), vg.Length(dy/n)

	back := vg.Point{X: tip.X - ux*h.Size, Y: tip.Y - uy*h.Size}
	half := h.Size / 2
	return []vg.Point{
		tip,
		{X: back.X - uy*half, Y: back.Y + ux*half},
		{X: tip.X - ux*half, Y: tip.Y - uy*half},
		{X: back.X + uy*half, Y: back.Y - ux*half},
	}
}
