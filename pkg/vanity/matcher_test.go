package vanity

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMatcherSemantics(t *testing.T) {
	tests := []struct {
		name            string
		prefix, suffix  string
		caseInsensitive bool
		address         string
		want            bool
	}{
		{"prefix match", "AB", "", false, "ABCD", true},
		{"prefix case mismatch", "AB", "", false, "abcd", false},
		{"prefix folded", "AB", "", true, "abcd", true},
		{"prefix folded upper address", "ab", "", true, "ABCD", true},
		{"suffix match", "", "CD", false, "ABCD", true},
		{"suffix mismatch", "", "CD", false, "ABCE", false},
		{"both match", "AB", "CD", false, "ABxxCD", true},
		{"both prefix only", "AB", "CD", false, "ABxxCE", false},
		{"both suffix only", "AB", "CD", false, "AExxCD", false},
		{"empty pattern matches anything", "", "", false, "anything", true},
		{"empty pattern matches empty", "", "", false, "", true},
		{"prefix longer than address", "ABCDE", "", false, "AB", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := NewMatcher(tt.prefix, tt.suffix, tt.caseInsensitive)
			address := tt.address
			if tt.caseInsensitive {
				address = foldForTest(address)
			}
			assert.Equal(t, tt.want, m.Matches(address))
		})
	}
}

// foldForTest mirrors what SearchBatch does to candidates in
// case-insensitive mode.
func foldForTest(s string) string {
	b := []byte(s)
	for i, c := range b {
		if c >= 'A' && c <= 'Z' {
			b[i] = c + ('a' - 'A')
		}
	}
	return string(b)
}

func TestPatternValidation(t *testing.T) {
	assert.True(t, IsValidPattern("Sol", false))
	assert.True(t, IsValidPattern("123z", false))
	assert.True(t, IsValidPattern("", false))

	// 0, O, I, l never appear in a Base58 address.
	assert.False(t, IsValidPattern("0x", false))
	assert.False(t, IsValidPattern("Oil", false))
	assert.Equal(t, []rune{'O', 'l'}, InvalidChars("Owl", false))

	// Folding widens the accepted set: "L" matches a folded 'l'.
	assert.True(t, IsValidPattern("L", true))
	assert.True(t, IsValidPattern("OIL", true))
	assert.False(t, IsValidPattern("0", true))
}

func TestEstimateDifficulty(t *testing.T) {
	assert.Equal(t, uint64(1), EstimateDifficulty("", "", false))
	assert.Equal(t, uint64(58), EstimateDifficulty("A", "", false))
	assert.Equal(t, uint64(58*58), EstimateDifficulty("A", "B", false))
	assert.Equal(t, uint64(58*58*58), EstimateDifficulty("ABC", "", false))

	// Folding shrinks the per-character base.
	assert.Less(t,
		EstimateDifficulty("abc", "", true),
		EstimateDifficulty("abc", "", false))
}
