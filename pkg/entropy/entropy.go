// Package entropy provides the pseudorandom seed used for metadata
// variant selection. The default source is weak and gameable by anyone
// who controls call ordering; it is NOT cryptographically secure and
// must never be used for ownership, payment, or key material. It sits
// behind an interface so a verifiable-random source can be swapped in
// without touching the mint ledger.
package entropy

import (
	"hash/maphash"
	"runtime"
	"time"
)

// Source produces seeds for metadata variant selection.
type Source interface {
	Seed() uint64
}

// WeakSource mixes wall-clock time with scheduler state, in the spirit
// of block-level entropy mixed with remaining execution budget.
type WeakSource struct {
	seed maphash.Seed
}

func NewWeakSource() *WeakSource {
	return &WeakSource{seed: maphash.MakeSeed()}
}

func (s *WeakSource) Seed() uint64 {
	var h maphash.Hash
	h.SetSeed(s.seed)

	now := time.Now().UnixNano()
	var buf [16]byte
	for i := 0; i < 8; i++ {
		buf[i] = byte(now >> (8 * i))
	}
	g := int64(runtime.NumGoroutine())
	for i := 0; i < 8; i++ {
		buf[8+i] = byte(g >> (8 * i))
	}
	_, _ = h.Write(buf[:])
	return h.Sum64()
}

// FixedSource always returns the same seed. Used in tests to make
// variant assignment deterministic.
type FixedSource uint64

func (s FixedSource) Seed() uint64 {
	return uint64(s)
}
