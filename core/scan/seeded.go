// core/scan/seeded.go
package scan

import (
	"cmp"
	"slices"

	"github.com/Elococin/aso-offtarget-pipeline/core/seq"
)

// Seeded reports exactly what BruteForce reports, but only verifies windows
// that share an exact seed with a query.
//
// Each query of length k > max is cut into max+1 disjoint segments. A window
// within max substitutions leaves at least one segment untouched, so an exact
// segment hit locates every qualifying window. Segments containing a
// non-A/C/G/T byte can never match exactly and are not indexed; queries too
// short to split (k <= max) are scanned by brute force.
type Seeded struct {
	queries []seq.Query
	max     int
	seeds   []seed
	nodes   []acNode
	brute   []int // ascending query indexes without seeds
}

type seed struct {
	query  int
	offset int // segment start within the query
	length int
}

type candidate struct {
	query int
	start int
}

func NewSeeded(queries []seq.Query, maxDistance int) *Seeded {
	s := &Seeded{queries: queries, max: maxDistance}
	var pats [][]byte
	parts := maxDistance + 1
	for qi, q := range queries {
		k := q.Len()
		if k <= maxDistance {
			s.brute = append(s.brute, qi)
			continue
		}
		for p := 0; p < parts; p++ {
			lo, hi := p*k/parts, (p+1)*k/parts
			seg := q.Seq[lo:hi]
			if !seq.AllCanonical(seg) {
				continue
			}
			s.seeds = append(s.seeds, seed{query: qi, offset: lo, length: hi - lo})
			pats = append(pats, seg)
		}
	}
	s.nodes = buildAC(pats)
	return s
}

// Seeds reports how many segments were indexed.
func (s *Seeded) Seeds() int { return len(s.seeds) }

func (s *Seeded) ScanSubject(subject []byte) []Window {
	l := len(subject)
	var cands []candidate
	walkAC(subject, s.nodes, func(pi int32, end int) {
		sd := s.seeds[pi]
		start := end - sd.length + 1 - sd.offset
		if start < 0 || start+s.queries[sd.query].Len() > l {
			return
		}
		cands = append(cands, candidate{query: sd.query, start: start})
	})
	slices.SortFunc(cands, func(a, b candidate) int {
		if c := cmp.Compare(a.query, b.query); c != 0 {
			return c
		}
		return cmp.Compare(a.start, b.start)
	})

	var out []Window
	bi := 0
	flushBrute := func(upto int) {
		for bi < len(s.brute) && s.brute[bi] < upto {
			qi := s.brute[bi]
			out = scanQuery(out, subject, qi, s.queries[qi].Seq, s.max)
			bi++
		}
	}
	for i, c := range cands {
		if i > 0 && c == cands[i-1] {
			continue
		}
		flushBrute(c.query)
		q := s.queries[c.query].Seq
		if d := BoundedDistance(q, subject[c.start:], s.max); d <= s.max {
			out = append(out, Window{QueryIndex: c.query, Start: c.start, Distance: d})
		}
	}
	flushBrute(len(s.queries))
	return out
}
