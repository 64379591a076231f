package main

import (
	log "github.com/sirupsen/logrus"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/plotutil"
	"gonum.org/v1/plot/vg"

	"mathplot/pkg/config"
	"mathplot/pkg/mathaxes"
	"mathplot/pkg/series"
)

// addLines draws every series as a colored line with a legend entry.
func addLines(p *plot.Plot, ss []series.Series) error {
	for i, s := range ss {
		if len(s.XYs) == 0 {
			continue
		}
		line, err := plotter.NewLine(s.XYs)
		if err != nil {
			return err
		}
		line.Color = plotutil.Color(i)
		line.Width = vg.Points(1.2)
		p.Add(line)
		if len(ss) > 1 {
			p.Legend.Add(s.Name, line)
		}
	}
	p.Legend.Top = true
	return nil
}

// render styles p around the given data ranges, overlays the configured
// ticks and saves the result.
func render(p *plot.Plot, cfg *config.Config, x, y mathaxes.Range, ticks mathaxes.Ticks) error {
	p.Title.Text = cfg.Title()

	mathaxes.StyleMathAxes(p, x, y, cfg.Options())
	mathaxes.AddMathTicks(p, ticks)

	file := cfg.OutFile()
	if outFile != "" {
		file = outFile
	}
	w, h := cfg.Size()
	if width > 0 {
		w = width
	}
	if height > 0 {
		h = height
	}

	log.Infof("Saving %s (%.1fx%.1f in)", file, w, h)
	return p.Save(vg.Length(w)*vg.Inch, vg.Length(h)*vg.Inch, file)
}
