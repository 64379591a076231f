package main

import (
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	cmdUtils "mathplot/pkg/cmd-utils"
	"mathplot/pkg/config"
)

var (
	verbose    int
	configPath string
	outFile    string
	width      float64
	height     float64
)

var rootCmd = &cobra.Command{
	Use:   "mathplot",
	Short: "Render data on hand-drawn style math axes",
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		cmdUtils.SetVerbosity(verbose)
	},
	SilenceUsage: true,
}

func init() {
	pf := rootCmd.PersistentFlags()
	pf.CountVarP(&verbose, "verbose", "v", "Turn on verbose output (-vv for trace)")
	pf.StringVar(&configPath, "config", "", "style file (yaml, toml or json)")
	pf.StringVarP(&outFile, "out", "o", "", "output image; the extension picks the format")
	pf.Float64Var(&width, "width", 0, "output width in inches")
	pf.Float64Var(&height, "height", 0, "output height in inches")

	rootCmd.AddCommand(csvCmd, pcapCmd, demoCmd)
}

func loadConfig() *config.Config {
	cfg, err := config.Load(configPath)
	cmdUtils.HandleErr(err)
	return cfg
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		log.Fatalln(err)
	}
	log.Infoln("Done!")
}
