// core/seq/alphabet.go
package seq

/* -------------------------- canonical lookup table -------------------------- */

var canonical [256]bool // A, C, G, T only

func init() {
	for _, c := range []byte("ACGT") {
		canonical[c] = true
	}
}

// IsCanonical reports whether b is one of A, C, G, T (upper case).
// Ambiguity codes (N, R, Y, ...) and anything else are non-canonical.
func IsCanonical(b byte) bool { return canonical[b] }

// BaseMatch reports whether window base w counts as a match for query base q.
//
// A window base outside {A,C,G,T} is a HARD mismatch regardless of q, so
// ambiguity never contributes a match on either side.
func BaseMatch(q, w byte) bool {
	return canonical[w] && q == w
}

// AllCanonical reports whether every byte of p is canonical.
func AllCanonical(p []byte) bool {
	for _, c := range p {
		if !canonical[c] {
			return false
		}
	}
	return true
}

// Normalize upper-cases s in place and drops ASCII whitespace.
// Non-canonical letters are kept; they are only special for distance purposes.
func Normalize(s []byte) []byte {
	out := s[:0]
	for _, c := range s {
		switch c {
		case ' ', '\t', '\r', '\n', '\v', '\f':
			continue
		}
		if c >= 'a' && c <= 'z' {
			c -= 'a' - 'A'
		}
		out = append(out, c)
	}
	return out
}
