package engine

import (
	crand "crypto/rand"
	"encoding/binary"
	"math/rand"
)

// systemSource reads every value from the operating system's CSPRNG.
// Seed is a no-op.
type systemSource struct{}

func (systemSource) Seed(int64) {}

func (s systemSource) Int63() int64 {
	return int64(s.Uint64() & (1<<63 - 1))
}

func (systemSource) Uint64() uint64 {
	var b [8]byte
	if _, err := crand.Read(b[:]); err != nil {
		panic("engine: system randomness unavailable: " + err.Error())
	}
	return binary.LittleEndian.Uint64(b[:])
}

// NewSystemRand returns a generator backed by crypto/rand. Tests pass a
// seeded rand.New(rand.NewSource(n)) instead.
func NewSystemRand() *rand.Rand {
	return rand.New(systemSource{})
}
