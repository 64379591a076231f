package mathaxes

import (
	"fmt"
	"image/color"
	"strings"

	log "github.com/sirupsen/logrus"
	xfont "golang.org/x/image/font"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/font"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/text"
	"gonum.org/v1/plot/vg"
)

const (
	lineWidth = 1.5
	arrowSize = 10

	xLabelSize = 12
	yLabelSize = 11
)

// Axes records what StyleMathAxes added to a plot.
type Axes struct {
	Viewport Viewport
	Segments []*plotter.Line
	Arrows   []*Arrow
	Labels   []*plotter.Labels
}

// StyleMathAxes turns p into a pair of arrowed axes crossing at the origin
// and sets its window around the x and y data ranges.
func StyleMathAxes(p *plot.Plot, x, y Range, opts Options) *Axes {
	p.HideAxes()
	p.X.Label.Text = ""
	p.Y.Label.Text = ""

	vp := ComputeViewport(x, y, opts)
	vis := vp.Visual
	ax := &Axes{Viewport: vp}

	for _, seg := range [][2]plotter.XY{
		{{X: vis.X.Min, Y: 0}, {X: vis.X.Max, Y: 0}},
		{{X: 0, Y: vis.Y.Min}, {X: 0, Y: vis.Y.Max}},
	} {
		line, err := plotter.NewLine(plotter.XYs{seg[0], seg[1]})
		if err != nil {
			log.Debugln("skipping axis line:", err)
			continue
		}
		line.LineStyle.Color = color.Black
		line.LineStyle.Width = vg.Points(lineWidth)
		ax.Segments = append(ax.Segments, line)
		p.Add(line)
	}

	ax.Arrows = []*Arrow{
		NewArrow(plotter.XY{X: vis.X.Min, Y: 0}, plotter.XY{X: vis.X.Max, Y: 0}, vg.Points(arrowSize)),
		NewArrow(plotter.XY{X: 0, Y: vis.Y.Min}, plotter.XY{X: 0, Y: vis.Y.Max}, vg.Points(arrowSize)),
	}
	for _, a := range ax.Arrows {
		p.Add(a)
	}

	xsty := labelStyle(opts.XLabel, xLabelSize, text.XLeft, text.YBottom)
	xsty.Font.Style = xfont.StyleItalic
	if l := newLabel(plotter.XY{X: vis.X.Max, Y: 0}, opts.XLabel, xsty, vg.Point{X: -10, Y: 7}); l != nil {
		ax.Labels = append(ax.Labels, l)
		p.Add(l)
	}

	ysty := labelStyle(opts.YLabel, yLabelSize, text.XLeft, text.YTop)
	if l := newLabel(plotter.XY{X: 0, Y: vis.Y.Max}, opts.YLabel, ysty, vg.Point{X: 12, Y: -3}); l != nil {
		ax.Labels = append(ax.Labels, l)
		p.Add(l)
	}

	setWindow(p, vp.Window)
	log.Debugf("math axes window x=[%g, %g] y=[%g, %g]",
		vp.Window.X.Min, vp.Window.X.Max, vp.Window.Y.Min, vp.Window.Y.Max)

	return ax
}

func setWindow(p *plot.Plot, b Box) {
	p.X.Min, p.X.Max = b.X.Min, b.X.Max
	p.Y.Min, p.Y.Max = b.Y.Min, b.Y.Max
}

func window(p *plot.Plot) Box {
	return Box{
		X: Range{Min: p.X.Min, Max: p.X.Max},
		Y: Range{Min: p.Y.Min, Max: p.Y.Max},
	}
}

// textHandler picks the LaTeX handler for labels written in math mode.
// Labels the LaTeX handler cannot lay out are drawn as plain text.
func textHandler(s string, fnt font.Font) text.Handler {
	if !strings.Contains(s, "$") {
		return plot.DefaultTextHandler
	}
	latex := text.Latex{Fonts: font.DefaultCache}
	if err := layoutErr(latex, s, fnt); err != nil {
		log.Debugf("drawing label %q as plain text: %v", s, err)
		return plot.DefaultTextHandler
	}
	return latex
}

// layoutErr lays s out with h and reports the panic the handler raises
// on input it cannot parse.
func layoutErr(h text.Handler, s string, fnt font.Font) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("%v", r)
		}
	}()
	h.Box(s, fnt)
	return nil
}

func labelStyle(s string, size vg.Length, xa text.XAlignment, ya text.YAlignment) text.Style {
	fnt := font.From(plot.DefaultFont, size)
	return text.Style{
		Color:   color.Black,
		Font:    fnt,
		XAlign:  xa,
		YAlign:  ya,
		Handler: textHandler(s, fnt),
	}
}

// newLabel returns a single text label at pt shifted by off, or nil
// when the label is empty or cannot be built.
func newLabel(pt plotter.XY, s string, sty text.Style, off vg.Point) *plotter.Labels {
	if s == "" {
		return nil
	}
	l, err := plotter.NewLabels(plotter.XYLabels{XYs: plotter.XYs{pt}, Labels: []string{s}})
	if err != nil {
		log.Debugln("skipping label", s, ":", err)
		return nil
	}
	l.TextStyle[0] = sty
	l.Offset = off
	return l
}
