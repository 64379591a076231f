package main

import (
	"fmt"
	"math"

	"github.com/spf13/cobra"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"

	"mathplot/pkg/mathaxes"
	"mathplot/pkg/series"
)

var demoCmd = &cobra.Command{
	Use:   "demo",
	Short: "Plot a damped sine with ticks at multiples of pi",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := loadConfig()

		const n = 400
		pts := make(plotter.XYs, n)
		for i := range pts {
			t := -math.Pi/2 + 4.5*math.Pi*float64(i)/(n-1)
			pts[i] = plotter.XY{X: t, Y: math.Exp(-t/6) * math.Sin(t)}
		}

		p := plot.New()
		if err := addLines(p, []series.Series{{Name: "x(t)", XYs: pts}}); err != nil {
			return err
		}

		ticks := cfg.Ticks()
		if len(ticks.X) == 0 && len(ticks.Y) == 0 {
			ticks = piTicks(4)
		}

		x, y := series.Bounds(pts)
		return render(p, cfg, x, y, ticks)
	},
}

// piTicks puts x ticks at pi, 2pi, ... kpi and y ticks at -1 and 1.
func piTicks(k int) mathaxes.Ticks {
	var t mathaxes.Ticks
	for i := 1; i <= k; i++ {
		t.X = append(t.X, float64(i)*math.Pi)
		if i == 1 {
			t.XLabels = append(t.XLabels, "π")
		} else {
			t.XLabels = append(t.XLabels, fmt.Sprintf("%dπ", i))
		}
	}
	t.Y = []float64{-1, 1}
	t.YLabels = []string{"-1", "1"}
	return t
}
