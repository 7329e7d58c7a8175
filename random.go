package diceroll

import (
	"crypto/rand"
	"encoding/binary"
	"math/big"
)

// RandomSource produces a uniformly distributed die face in [1, sides].
// Solve uses a crypto/rand-backed default; SolveWithSource lets a caller
// substitute a deterministic source for tests or a faster PRNG in
// high-throughput callers (e.g. a bot serving thousands of rolls/sec).
type RandomSource interface {
	Throw(sides uint64) uint64
}

// cryptoSource is the default RandomSource, backed by crypto/rand so that
// rolls can't be predicted or replay-attacked by a player watching a bot's
// PRNG state.
type cryptoSource struct{}

// DefaultRandomSource is the RandomSource Solve uses when the caller
// doesn't provide one.
var DefaultRandomSource RandomSource = cryptoSource{}

func (cryptoSource) Throw(sides uint64) uint64 {
	if sides == 0 {
		return 0
	}
	n, err := rand.Int(rand.Reader, new(big.Int).SetUint64(sides))
	if err != nil {
		// crypto/rand failing indicates a broken system entropy source;
		// fall back to raw crypto/rand bytes reduced modulo sides rather
		// than panicking mid-roll.
		var buf [8]byte
		_, _ = rand.Read(buf[:])
		return (binary.BigEndian.Uint64(buf[:]) % sides) + 1
	}
	return n.Uint64() + 1
}

// sequenceSource is a deterministic RandomSource test double: it returns
// a fixed sequence of values in order, clamping any value above the
// requested side count down to it, and cycles once the sequence is
// exhausted (an empty sequence always yields 1). This mirrors the original
// engine's mock random source used to pin down exact expected histories
// in table-driven tests.
type sequenceSource struct {
	values []uint64
	pos    int
}

// newSequenceSource builds a sequenceSource that yields values in order.
func newSequenceSource(values ...uint64) *sequenceSource {
	return &sequenceSource{values: values}
}

func (s *sequenceSource) Throw(sides uint64) uint64 {
	if len(s.values) == 0 {
		return 1
	}
	v := s.values[s.pos%len(s.values)]
	s.pos++
	if sides != 0 && v > sides {
		v = sides
	}
	return v
}
