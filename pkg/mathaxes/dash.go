package mathaxes

import (
	"math"

	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
)

// DashGlyph draws a straight dash of length 2*Radius centered on the glyph
// point, rotated by Angle radians counter-clockwise from horizontal.
type DashGlyph struct {
	Angle float64
	Width vg.Length
}

// DrawGlyph implements the draw.GlyphDrawer interface.
func (g DashGlyph) DrawGlyph(c *draw.Canvas, sty draw.GlyphStyle, pt vg.Point) {
	dx := sty.Radius * vg.Length(math.Cos(g.Angle))
	dy := sty.Radius * vg.Length(math.Sin(g.Angle))

	ls := draw.LineStyle{Color: sty.Color, Width: g.Width}
	if ls.Width <= 0 {
		ls.Width = vg.Points(1)
	}
	c.StrokeLine2(ls, pt.X-dx, pt.Y-dy, pt.X+dx, pt.Y+dy)
}
