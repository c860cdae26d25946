package shuffler

import (
	crand "crypto/rand"
	"encoding/binary"
	"math/rand/v2"
	"sync/atomic"
	"time"

	"github.com/cespare/xxhash/v2"
)

// Mode selects how the per-call generator seed is derived.
type Mode int

const (
	// ModeAuto derives the seed from the wall clock.
	ModeAuto Mode = iota
	// ModeSeeded uses the caller-supplied seed verbatim; a zero seed
	// falls back to ModeAuto derivation.
	ModeSeeded
	// ModeSecure draws the seed from the operating system's cryptographic
	// entropy source, falling back to ModeAuto derivation only if that
	// source errors.
	ModeSecure
)

var modeNames = map[string]Mode{
	"auto":   ModeAuto,
	"seeded": ModeSeeded,
	"secure": ModeSecure,
}

// ParseMode resolves a mode identifier. Empty and unrecognized identifiers
// resolve to ModeAuto, mirroring the permissive order-identifier handling.
func ParseMode(modeID string) Mode {
	return modeNames[modeID]
}

func (m Mode) String() string {
	switch m {
	case ModeSeeded:
		return "seeded"
	case ModeSecure:
		return "secure"
	default:
		return "auto"
	}
}

// seedCounter decorrelates back-to-back time-derived seeds on coarse clocks.
var seedCounter atomic.Uint64

func deriveSeed(mode Mode, seed uint64) uint64 {
	switch mode {
	case ModeSeeded:
		if seed != 0 {
			return seed
		}
		return timeSeed()
	case ModeSecure:
		var b [8]byte
		if _, err := crand.Read(b[:]); err == nil {
			return binary.LittleEndian.Uint64(b[:])
		}
		return timeSeed()
	default:
		return timeSeed()
	}
}

func timeSeed() uint64 {
	var b [16]byte
	binary.LittleEndian.PutUint64(b[:8], uint64(time.Now().UnixNano()))
	binary.LittleEndian.PutUint64(b[8:], seedCounter.Add(1))
	return xxhash.Sum64(b[:])
}

// newRNG builds the call-local generator. PCG needs two words of seed
// material; the second is a fixed odd-constant mix of the first.
func newRNG(seed uint64) *rand.Rand {
	return rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
}
