package vanity

import (
	"strings"
	"unicode"
)

// matchKind selects which ends of the encoded address are constrained.
type matchKind int

const (
	matchPrefix matchKind = iota
	matchSuffix
	matchBoth
)

// Matcher checks encoded addresses against a prefix and/or suffix.
// Patterns are folded once at construction when case-insensitive mode is
// active, so the hot loop never re-normalizes them. The zero Matcher
// matches everything (empty prefix).
type Matcher struct {
	kind   matchKind
	prefix string
	suffix string
}

// NewMatcher builds a Matcher for the given patterns. An empty prefix
// and suffix yield a matcher that accepts any address.
func NewMatcher(prefix, suffix string, caseInsensitive bool) Matcher {
	if caseInsensitive {
		prefix = strings.ToLower(prefix)
		suffix = strings.ToLower(suffix)
	}

	switch {
	case prefix != "" && suffix != "":
		return Matcher{kind: matchBoth, prefix: prefix, suffix: suffix}
	case suffix != "":
		return Matcher{kind: matchSuffix, suffix: suffix}
	default:
		// Empty prefix matches anything.
		return Matcher{kind: matchPrefix, prefix: prefix}
	}
}

// Matches reports whether the encoded address satisfies the pattern.
// In case-insensitive mode the caller passes the folded address; the
// patterns were already folded in NewMatcher.
func (m Matcher) Matches(encoded string) bool {
	switch m.kind {
	case matchSuffix:
		return strings.HasSuffix(encoded, m.suffix)
	case matchBoth:
		return strings.HasPrefix(encoded, m.prefix) && strings.HasSuffix(encoded, m.suffix)
	default:
		return strings.HasPrefix(encoded, m.prefix)
	}
}

// IsValidPattern reports whether every character of s can appear in a
// Base58 address. With caseInsensitive set, characters are compared
// against the folded alphabet, so e.g. "L" and "l" are both acceptable.
func IsValidPattern(s string, caseInsensitive bool) bool {
	return len(InvalidChars(s, caseInsensitive)) == 0
}

// InvalidChars returns the characters of s that can never occur in a
// matching address. Useful for helpful error messages to users.
func InvalidChars(s string, caseInsensitive bool) []rune {
	valid := alphabet
	if caseInsensitive {
		valid = strings.ToLower(alphabet)
	}

	var invalid []rune
	for _, c := range s {
		folded := c
		if caseInsensitive {
			folded = unicode.ToLower(c)
		}
		if !strings.ContainsRune(valid, folded) {
			invalid = append(invalid, c)
		}
	}
	return invalid
}
