package series

import (
	"errors"
	"fmt"
	"io"

	"github.com/google/gopacket"
	"github.com/google/gopacket/pcapgo"
	log "github.com/sirupsen/logrus"
	"gonum.org/v1/plot/plotter"
)

// Series is one named set of points.
type Series struct {
	Name string
	XYs  plotter.XYs
}

// ReadTimestamps reads a pcap stream and returns one series per
// fingerprint, in order of first appearance. Each point is the capture
// time in seconds since the first timestamped packet against the TCP
// timestamp ticks elapsed since that fingerprint's first packet.
//
// When white is non-empty only fingerprints whose haiku is listed are
// kept. onPacket, when non-nil, is called with the running packet count.
func ReadTimestamps(r io.Reader, white []string, onPacket func(count uint64)) ([]Series, error) {
	rd, err := pcapgo.NewReader(r)
	if err != nil {
		return nil, fmt.Errorf("open pcap: %w", err)
	}

	packetSource := gopacket.NewPacketSource(rd, rd.LinkType())

	type group struct {
		first uint64
		idx   int
	}
	groups := make(map[Fingerprint]*group)
	var out []Series

	var origin *Stamp
	count := uint64(0)
	for {
		packet, err := packetSource.NextPacket()
		if errors.Is(err, io.EOF) {
			log.Traceln("EOF reached:", err)
			break
		} else if err != nil {
			return out, fmt.Errorf("read packet %d: %w", count+1, err)
		}

		count++
		if onPacket != nil {
			onPacket(count)
		}

		st, err := ExtractStamp(packet)
		if err != nil {
			log.Traceln(err)
			continue
		}
		if origin == nil {
			origin = &st
		}
		if len(white) > 0 && !st.Fingerprint.ContainedIn(white) {
			continue
		}

		g, ok := groups[st.Fingerprint]
		if !ok {
			g = &group{first: st.TSVal, idx: len(out)}
			groups[st.Fingerprint] = g
			out = append(out, Series{Name: st.Fingerprint.Haiku()})
			log.Debugln("new fingerprint", st.Fingerprint)
		}

		out[g.idx].XYs = append(out[g.idx].XYs, plotter.XY{
			X: st.Captured.Sub(origin.Captured).Seconds(),
			Y: float64(int64(st.TSVal) - int64(g.first)),
		})
	}

	log.Debugf("read %d packets, %d fingerprints", count, len(out))
	return out, nil
}
