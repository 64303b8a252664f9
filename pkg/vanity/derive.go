package vanity

import (
	"hash"

	sha256 "github.com/minio/sha256-simd"
)

// KeyLength is the exact size of base, owner, and derived keys in bytes.
const KeyLength = 32

// Deriver computes candidate keys as SHA-256(base || seed || owner),
// matching on-chain seeded address derivation. The hash state is
// allocated once and Reset between calls; resetting is cheaper than
// reallocating in the search loop. A Deriver is not safe for concurrent
// use - give each searcher its own.
type Deriver struct {
	h hash.Hash
}

// NewDeriver creates a Deriver with a fresh hash state.
func NewDeriver() *Deriver {
	return &Deriver{h: sha256.New()}
}

// Derive returns the candidate key for the given base key, seed, and
// owner key. The raw digest is the key; no further transformation.
func (d *Deriver) Derive(base [KeyLength]byte, seed [SeedLength]byte, owner [KeyLength]byte) [KeyLength]byte {
	d.h.Reset()
	d.h.Write(base[:])
	d.h.Write(seed[:])
	d.h.Write(owner[:])

	var key [KeyLength]byte
	d.h.Sum(key[:0])
	return key
}
