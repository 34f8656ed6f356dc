package lcg

import (
	"encoding/binary"
	"math"
	"time"
)

const (
	multiplier uint64 = 6364136223846793005
	increment  uint64 = 1442695040888963407
)

// Rand is a deterministic generator.
// It's not safe for concurrent use, each goroutine should own its own Rand.
type Rand struct {
	state uint64
}

// New creates a Rand with the given seed.
func New(seed uint64) *Rand {
	return &Rand{state: seed}
}

// NewTimeSeeded creates a Rand seeded with the current Unix time in seconds.
func NewTimeSeeded() *Rand {
	return NewFromTime(time.Now())
}

// NewFromTime creates a Rand seeded with the Unix seconds of t.
func NewFromTime(t time.Time) *Rand {
	return New(uint64(t.Unix()))
}

// Uint32 advances the state and returns its high 32 bits.
func (r *Rand) Uint32() uint32 {
	r.state = r.state*multiplier + increment
	return uint32(r.state >> 32)
}

// Uint64 combines two Uint32 draws, high half first.
func (r *Rand) Uint64() uint64 {
	high := uint64(r.Uint32())
	low := uint64(r.Uint32())
	return high<<32 | low
}

// Float64 returns a value in [0, 1] from a single Uint32 draw.
// 1 is only returned when the draw is math.MaxUint32.
func (r *Rand) Float64() float64 {
	return float64(r.Uint32()) / float64(math.MaxUint32)
}

// Range scales a Float64 draw to the range [low, high].
func (r *Rand) Range(low, high float64) float64 {
	return low + (high-low)*r.Float64()
}

// Bytes returns n bytes taken from successive little-endian Uint32 draws.
// The last draw is truncated if n isn't a multiple of 4.
func (r *Rand) Bytes(n int) []byte {
	if n <= 0 {
		return []byte{}
	}
	out := make([]byte, 0, n+4)
	var word [4]byte
	for len(out) < n {
		binary.LittleEndian.PutUint32(word[:], r.Uint32())
		out = append(out, word[:]...)
	}
	return out[:n]
}
