// Package mathaxes styles gonum plots as hand-drawn math axes.
package mathaxes

import "math"

// yBonus is added to the vertical prolong factor so the y axis gets more
// headroom than the x axis.
const yBonus = 0.15

// fallbackMargin is used instead of a proportional margin when a span is
// zero, negative or NaN.
const fallbackMargin = 1.0

type Range struct {
	Min, Max float64
}

func (r Range) Span() float64 { return r.Max - r.Min }

// Contains reports whether o lies strictly inside r.
func (r Range) Contains(o Range) bool { return r.Min < o.Min && r.Max > o.Max }

// Margins are fractions of the padded span added beyond each side.
type Margins struct {
	Left   float64 `mapstructure:"left"`
	Right  float64 `mapstructure:"right"`
	Bottom float64 `mapstructure:"bottom"`
	Top    float64 `mapstructure:"top"`
}

type Options struct {
	// Prolong holds the x and y fractions of the data span added on both
	// ends of each axis.
	Prolong [2]float64
	Margins Margins
	XLabel  string
	YLabel  string
}

func DefaultOptions() Options {
	return Options{
		Prolong: [2]float64{0.1, 0.1},
		Margins: Margins{Top: 0.05},
		XLabel:  "t",
		YLabel:  `$\tilde{x}(t)$`,
	}
}

type Box struct {
	X, Y Range
}

// Viewport holds the three boxes involved in styling a plot: the caller's
// data range, the padded box the arrows span, and the window the plot is
// finally set to.
type Viewport struct {
	Data   Box
	Visual Box
	Window Box
}

func margin(span, factor float64) float64 {
	if !(span > 0) {
		return fallbackMargin
	}
	return factor * span
}

// ordered returns r with its ends swapped if needed so Min <= Max.
func (r Range) ordered() Range {
	return Range{Min: math.Min(r.Min, r.Max), Max: math.Max(r.Min, r.Max)}
}

// ComputeViewport pads the data range into the visual box and then widens
// it by the per-side margins. A non-positive span on either axis gets a
// fixed unit margin, so the box never collapses or inverts.
func ComputeViewport(x, y Range, opts Options) Viewport {
	xMargin := margin(x.Span(), opts.Prolong[0])
	yMargin := margin(y.Span(), opts.Prolong[1]+yBonus)

	ox, oy := x.ordered(), y.ordered()
	vis := Box{
		X: Range{Min: ox.Min - xMargin, Max: ox.Max + xMargin},
		Y: Range{Min: oy.Min - yMargin, Max: oy.Max + yMargin},
	}

	spanX, spanY := vis.X.Span(), vis.Y.Span()
	win := Box{
		X: Range{
			Min: vis.X.Min - opts.Margins.Left*spanX,
			Max: vis.X.Max + opts.Margins.Right*spanX,
		},
		Y: Range{
			Min: vis.Y.Min - opts.Margins.Bottom*spanY,
			Max: vis.Y.Max + opts.Margins.Top*spanY,
		},
	}

	return Viewport{Data: Box{X: x, Y: y}, Visual: vis, Window: win}
}
