package vanity

// Base58 alphabet (Bitcoin/Solana style - excludes 0, O, I, l)
const alphabet = "123456789ABCDEFGHJKLMNPQRSTUVWXYZabcdefghijkmnopqrstuvwxyz"

// SeedLength is the size of a derivation seed in bytes.
const SeedLength = 16

// goldenRatio is an odd multiplicative-hash constant used to decorrelate
// the two seed halves. It is not a cryptographic mix.
const goldenRatio = 0x9E3779B97F4A7C15

// SeedFromCounter maps a 64-bit counter to a 16-byte seed whose bytes are
// all drawn from the Base58 alphabet. The mapping is deterministic: the
// same counter always yields the same seed. It is not proven injective
// (mod 58 over byte-aligned shifts is not bijective), but a rare
// collision only retests an already-tested candidate.
func SeedFromCounter(counter uint64) [SeedLength]byte {
	var seed [SeedLength]byte

	state1 := counter
	state2 := counter * goldenRatio

	for i := 0; i < SeedLength/2; i++ {
		seed[i] = alphabet[state1%uint64(len(alphabet))]
		seed[i+SeedLength/2] = alphabet[state2%uint64(len(alphabet))]
		state1 >>= 8
		state2 >>= 8
	}

	return seed
}
