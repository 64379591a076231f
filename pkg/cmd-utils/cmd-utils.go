package cmdUtils

import (
	"fmt"
	"io"
	"os"
	"time"

	log "github.com/sirupsen/logrus"
)

// SetVerbosity maps the number of -v flags to a log level.
func SetVerbosity(count int) {
	log.SetLevel(log.InfoLevel)

	if count >= 1 {
		log.SetLevel(log.DebugLevel)
		log.Debug("Set log level to debug")
	}

	if count >= 2 {
		log.SetLevel(log.TraceLevel)
		log.Debug("Set log level to trace")
	}
}

func HandleErr(err error) {
	if err != nil {
		log.Fatalln(err)
	}
}

// Progress prints a packet rate line to stderr every howOften packets,
// overwriting the previous one.
type Progress struct {
	Out       io.Writer
	HowOften  uint64
	startTime time.Time
}

func NewProgress(howOften uint64) *Progress {
	return &Progress{Out: os.Stderr, HowOften: howOften, startTime: time.Now()}
}

// Update is a no-op when HowOften is zero.
func (p *Progress) Update(packetCount uint64) {
	if p.HowOften == 0 || packetCount%p.HowOften != 0 {
		return
	}
	if packetCount > p.HowOften {
		// clear last line
		fmt.Fprint(p.Out, "\033[1A\033[K")
	}

	pktPerSec := float64(packetCount) / time.Since(p.startTime).Seconds()
	pktPerSec /= 1_000

	fmt.Fprintf(p.Out, "%s processed %dK packets (%.0f Kpkt/s)\n",
		"mathplot:", packetCount/1000, pktPerSec)
}
