// Package rng provides the seeded generator behind every random gameplay
// decision. Two games started from the same seed make the same choices.
package rng

import (
	"encoding/binary"
	"math"
	"math/bits"
)

const (
	increment  uint64 = 1442695040888963407
	multiplier uint64 = 6364136223846793005
)

// SeededRng is a PCG-XSH-RR style generator. The zero value is usable but
// New should be preferred so the seed is mixed in.
type SeededRng struct {
	seed  uint64
	state uint64
}

// New creates a generator for seed.
func New(seed uint64) *SeededRng {
	r := &SeededRng{seed: seed}
	old := r.state
	r.next()
	r.state = old + seed
	r.next()
	return r
}

// Seed returns the seed the generator was created with.
func (r *SeededRng) Seed() uint64 {
	return r.seed
}

// Clone returns an independent copy with the same state.
func (r *SeededRng) Clone() *SeededRng {
	c := *r
	return &c
}

func (r *SeededRng) next() uint32 {
	old := r.state
	r.state = r.state*multiplier + increment
	xorshifted := uint32(((old >> 18) ^ old) >> 27)
	rot := int(old >> 59)
	return bits.RotateLeft32(xorshifted, -rot)
}

// unit returns a float in [0, 1].
func (r *SeededRng) unit() float32 {
	return float32(r.next()) / float32(math.MaxUint32)
}

// Float32 returns a value between low and high.
func (r *SeededRng) Float32(low, high float32) float32 {
	u := r.unit()
	return low + float32((high-low)*u)
}

// Int returns a value between low and high, truncated toward zero.
// high is only reached when the generator returns its maximum.
func (r *SeededRng) Int(low, high int) int {
	v := r.Float32(float32(low), float32(high))
	return int(int32(v))
}

// Index is Int for unsigned quantities: negative results saturate at zero.
func (r *SeededRng) Index(low, high int) int {
	v := r.Float32(float32(low), float32(high))
	if v < 0 {
		return 0
	}
	return int(v)
}

// Byte returns a value in [0, 255].
func (r *SeededRng) Byte() byte {
	return byte(r.Index(0, 255))
}

// Choose picks one element. It returns false for an empty slice and, rarely,
// when the draw lands exactly on len(items).
func Choose[T any](r *SeededRng, items []T) (T, bool) {
	var zero T
	i := r.Index(0, len(items))
	if i >= len(items) {
		return zero, false
	}
	return items[i], true
}

// Shuffle permutes items in place with Fisher-Yates.
func Shuffle[T any](r *SeededRng, items []T) {
	var buf [8]byte
	for i := 1; i < len(items); i++ {
		j := genRange(r, &buf, i)
		items[i], items[j] = items[j], items[i]
	}
}

// genRange draws uniformly from [0, top) by rejection sampling over random bytes.
// buf persists across calls so unused high bytes keep earlier values.
func genRange(r *SeededRng, buf *[8]byte, top int) int {
	bitWidth := 64 - bits.LeadingZeros64(uint64(top))
	byteCount := (bitWidth-1)/8 + 1
	mask := uint64(1)<<bitWidth - 1
	for {
		for i := 0; i < byteCount; i++ {
			buf[i] = r.Byte()
		}
		result := binary.LittleEndian.Uint64(buf[:]) & mask
		if result < uint64(top) {
			return int(result)
		}
	}
}
