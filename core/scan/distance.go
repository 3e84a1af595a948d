// core/scan/distance.go
package scan

import "github.com/Elococin/aso-offtarget-pipeline/core/seq"

// Distance is the substitution-only distance between two equal-length
// sequences. A position counts as a mismatch when the bytes differ or when the
// window base is not A/C/G/T. It panics if the lengths differ.
func Distance(query, window []byte) int {
	if len(query) != len(window) {
		panic("scan: Distance on unequal lengths")
	}
	mm := 0
	for i := range query {
		if !seq.BaseMatch(query[i], window[i]) {
			mm++
		}
	}
	return mm
}

// BoundedDistance counts mismatches like Distance but stops as soon as the
// count exceeds max; in that case it returns max+1. len(window) must be at
// least len(query); only the first len(query) bytes of window are compared.
func BoundedDistance(query, window []byte, max int) int {
	mm := 0
	for i, q := range query {
		if !seq.BaseMatch(q, window[i]) {
			mm++
			if mm > max {
				return mm
			}
		}
	}
	return mm
}
