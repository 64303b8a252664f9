package vanity

// EstimateDifficulty returns the expected number of candidates per match
// for the given patterns. Each constrained character multiplies the
// space by the alphabet size; case folding merges most letter pairs, so
// the effective base roughly halves.
func EstimateDifficulty(prefix, suffix string, caseInsensitive bool) uint64 {
	totalChars := len(prefix) + len(suffix)
	if totalChars == 0 {
		return 1
	}

	base := uint64(len(alphabet))
	if caseInsensitive {
		base = 29
	}

	difficulty := uint64(1)
	for i := 0; i < totalChars; i++ {
		difficulty *= base
	}
	return difficulty
}
