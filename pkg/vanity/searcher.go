// Package vanity implements a brute-force search for derived addresses
// whose Base58 encoding carries a chosen prefix and/or suffix.
//
// A Searcher walks a 64-bit counter, turns each counter value into a
// seed, derives SHA-256(base || seed || owner), encodes the digest as
// Base58, and tests it against the pattern. Work happens in bounded
// batches so a driving loop can report progress, poll external
// conditions, or yield between calls. Independent searchers partition
// the counter space via disjoint count offsets; the package performs no
// cross-instance coordination.
package vanity

import (
	"fmt"
	"strings"
	"sync/atomic"

	"github.com/mr-tron/base58"
)

// MaxEncodedLen is the longest possible Base58 encoding of a 32-byte
// key. The codec never exceeds it for KeyLength input.
const MaxEncodedLen = 44

// Config holds the parameters of one search session.
type Config struct {
	BaseKey         []byte // base public key, exactly KeyLength bytes
	OwnerKey        []byte // owner program key, exactly KeyLength bytes
	Prefix          string // desired address prefix ("" for none)
	Suffix          string // desired address suffix ("" for none)
	CaseInsensitive bool   // fold addresses and patterns before matching
	CountOffset     uint64 // partitions the counter space across instances
}

// KeyLengthError reports a key that is not exactly KeyLength bytes.
type KeyLengthError struct {
	Name string // "base" or "owner"
	Len  int
}

func (e *KeyLengthError) Error() string {
	return fmt.Sprintf("%s key must be %d bytes, got %d", e.Name, KeyLength, e.Len)
}

// Result records a successful match. Seed bytes always come from the
// Base58 alphabet, so rendering them as text is lossless.
type Result struct {
	Address  string // Base58-encoded derived address
	Seed     string // seed that produced it, as text
	Attempts uint64 // 1-indexed candidate number of the match
}

// Searcher owns the state of one search session: the fixed keys, the
// compiled pattern, the attempt counter, and a one-way stop latch.
//
// A single logical owner drives SearchBatch; Stop and Attempts use
// atomics and are safe to call from other goroutines, e.g. a progress
// reporter or a signal handler.
type Searcher struct {
	baseKey         [KeyLength]byte
	ownerKey        [KeyLength]byte
	matcher         Matcher
	caseInsensitive bool
	countOffset     uint64

	deriver *Deriver
	count   atomic.Uint64
	stopped atomic.Bool
}

// New validates the keys and builds a Searcher. Both keys must be
// exactly KeyLength bytes; anything else fails with a KeyLengthError
// before any search state is created.
func New(cfg Config) (*Searcher, error) {
	if len(cfg.BaseKey) != KeyLength {
		return nil, &KeyLengthError{Name: "base", Len: len(cfg.BaseKey)}
	}
	if len(cfg.OwnerKey) != KeyLength {
		return nil, &KeyLengthError{Name: "owner", Len: len(cfg.OwnerKey)}
	}

	s := &Searcher{
		matcher:         NewMatcher(cfg.Prefix, cfg.Suffix, cfg.CaseInsensitive),
		caseInsensitive: cfg.CaseInsensitive,
		countOffset:     cfg.CountOffset,
		deriver:         NewDeriver(),
	}
	copy(s.baseKey[:], cfg.BaseKey)
	copy(s.ownerKey[:], cfg.OwnerKey)
	return s, nil
}

// SearchBatch derives and tests up to batchSize candidates, returning
// the first match or nil when the batch is exhausted or the searcher is
// stopped. A stopped searcher returns nil without doing any work; a
// zero batchSize is a no-op. The counter advances once per candidate,
// whether or not it matched, so Result.Attempts is the 1-indexed
// position of the match.
func (s *Searcher) SearchBatch(batchSize uint32) *Result {
	for i := uint32(0); i < batchSize; i++ {
		if s.stopped.Load() {
			return nil
		}

		seed := SeedFromCounter(s.count.Load() + s.countOffset)
		key := s.deriver.Derive(s.baseKey, seed, s.ownerKey)
		address := base58.Encode(key[:])

		candidate := address
		if s.caseInsensitive {
			candidate = strings.ToLower(address)
		}

		attempts := s.count.Add(1)

		if s.matcher.Matches(candidate) {
			return &Result{
				Address:  address,
				Seed:     string(seed[:]),
				Attempts: attempts,
			}
		}
	}
	return nil
}

// Stop flips the one-way cancellation latch. Idempotent; once set, the
// current and all later batches return nil immediately. Callers that
// need to tell "cancelled" apart from "batch exhausted" check Stopped,
// since both look the same from SearchBatch.
func (s *Searcher) Stop() {
	s.stopped.Store(true)
}

// Stopped reports whether Stop has been called.
func (s *Searcher) Stopped() bool {
	return s.stopped.Load()
}

// Attempts returns the number of candidates tested so far.
func (s *Searcher) Attempts() uint64 {
	return s.count.Load()
}
