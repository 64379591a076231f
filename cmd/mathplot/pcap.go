package main

import (
	"fmt"
	"os"
	"strings"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"gonum.org/v1/plot"

	cmdUtils "mathplot/pkg/cmd-utils"
	"mathplot/pkg/series"
)

var (
	whitelist    string
	showProgress bool
)

var pcapCmd = &cobra.Command{
	Use:   "pcap <file>",
	Short: "Plot TCP timestamp drift per host fingerprint",
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

		var onPacket func(uint64)
		if showProgress {
			onPacket = cmdUtils.NewProgress(10_000).Update
		}

		var names []string
		if whitelist != "" {
			names = strings.Split(whitelist, ",")
		}

		log.Infoln("Starting analysis...")
		kept, err := series.ReadTimestamps(ioIn, names, onPacket)
		if err != nil {
			return err
		}
		log.Infoln("Plotting", len(kept), "fingerprints")
		for _, s := range kept {
			log.Infoln("-", s.Name)
		}

		p := plot.New()
		if err := addLines(p, kept); err != nil {
			return err
		}

		x, y := series.Bounds(series.XYs(kept)...)
		return render(p, cfg, x, y, cfg.Ticks())
	},
}

func init() {
	pcapCmd.Flags().StringVar(&whitelist, "white", "", "fingerprints to plot, comma separated")
	pcapCmd.Flags().BoolVarP(&showProgress, "progress", "p", false, "show progress")
}
