package main

import (
	"fmt"
	"os"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"gonum.org/v1/plot"

	"mathplot/pkg/series"
)

var csvCmd = &cobra.Command{
	Use:   "csv <file>",
	Short: "Plot the columns of a CSV file against its first column",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := loadConfig()

		ioIn := os.Stdin
		if args[0] != "-" {
			f, err := os.Open(args[0])
			if err != nil {
				return fmt.Errorf("open %s: %w", args[0], err)
			}
			defer f.Close()
			ioIn = f
		} else {
			log.Infoln("Reading from stdin")
		}

		tbl, err := series.ReadCSV(ioIn)
		if err != nil {
			return err
		}
		log.Infoln("Read", len(tbl.Series), "series")

		p := plot.New()
		if err := addLines(p, tbl.Series); err != nil {
			return err
		}

		x, y := series.Bounds(series.XYs(tbl.Series)...)
		return render(p, cfg, x, y, cfg.Ticks())
	},
}
