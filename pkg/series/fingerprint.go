package series

import (
	"errors"
	"math"
	"time"

	"github.com/google/gopacket"
	"github.com/google/gopacket/layers"
	"github.com/yelinaung/go-haikunator"
)

var (
	ErrNoTCP       = errors.New("no TCP layer")
	ErrNoTimestamp = errors.New("no timestamp")
	ErrClockAhead  = errors.New("TCP timestamp ahead of capture time")
)

// precision is the rounding step, in ms, applied to clock deltas so that
// packets from the same host land on the same fingerprint.
var precision uint64 = 10000

type Fingerprint struct {
	Delta uint64 // Delta between capture time and the sender's TCP timestamp
}

// Haiku returns a haiku string representation of the fingerprint
func (fg Fingerprint) Haiku() string { return haikunator.New(int64(fg.Delta)).Haikunate() }

func (fg Fingerprint) String() string { return fg.Haiku() }

// ContainedIn reports whether the fingerprint's haiku is in toMatch.
func (fg Fingerprint) ContainedIn(toMatch []string) bool {
	for _, h := range toMatch {
		if fg.Haiku() == h {
			return true
		}
	}
	return false
}

// Stamp is one timestamped TCP packet.
type Stamp struct {
	Fingerprint Fingerprint
	Captured    time.Time
	TSVal       uint64
}

func ExtractStamp(packet gopacket.Packet) (Stamp, error) {
	tcpLayer := packet.Layer(layers.LayerTypeTCP)
	if tcpLayer == nil {
		return Stamp{}, ErrNoTCP
	}

	tcpPacket, _ := tcpLayer.(*layers.TCP)
	tsVal, _, err := ExtractTimestamps(tcpPacket.Options)
	if err != nil {
		return Stamp{}, err
	}

	captured := packet.Metadata().Timestamp
	millis := captured.UnixMilli()
	if millis < 0 || uint64(millis) < tsVal {
		return Stamp{}, ErrClockAhead
	}

	delta := roundup(uint64(millis)-tsVal, precision)
	return Stamp{Fingerprint: Fingerprint{Delta: delta}, Captured: captured, TSVal: tsVal}, nil
}

func roundup(x, n uint64) uint64 {
	return uint64(math.Ceil(float64(x)/float64(n))) * n
}

func ExtractTimestamps(opts []layers.TCPOption) (uint64, uint64, error) {
	for _, opt := range opts {
		if opt.OptionType == layers.TCPOptionKindTimestamps && len(opt.OptionData) >= 8 { // Check kind and sufficient data length
			tsVal := uint64(opt.OptionData[0])<<24 | uint64(opt.OptionData[1])<<16 | uint64(opt.OptionData[2])<<8 | uint64(opt.OptionData[3])
			tsEchoReply := uint64(opt.OptionData[4])<<24 | uint64(opt.OptionData[5])<<16 | uint64(opt.OptionData[6])<<8 | uint64(opt.OptionData[7])

			if tsEchoReply == 0 {
				return 0, 0, ErrNoTimestamp
			}

			return tsVal, tsEchoReply, nil
		}
	}

	return 0, 0, ErrNoTimestamp
}
