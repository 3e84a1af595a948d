// Package hit turns qualifying scan windows into output records and defines
// their canonical order.
package hit

import (
	"sort"

	"github.com/Elococin/aso-offtarget-pipeline/core/scan"
	"github.com/Elococin/aso-offtarget-pipeline/core/seq"
)

// Hit is one off-target site. Start is inclusive, End exclusive.
type Hit struct {
	QueryID      string
	QuerySeq     string
	SubjectID    string
	Gene         string
	TypeLabel    string
	Type         seq.SubjectType
	Start        int
	End          int
	Matched      string
	Distance     int
	SubjectIndex int
	QueryIndex   int
}

// Assemble builds a Hit from a window. It does no filtering.
func Assemble(q seq.Query, s seq.Subject, w scan.Window) Hit {
	end := w.Start + q.Len()
	return Hit{
		QueryID:      q.ID,
		QuerySeq:     string(q.Seq),
		SubjectID:    s.ID,
		Gene:         orUnavailable(s.Gene),
		TypeLabel:    orUnavailable(s.TypeLabel),
		Type:         s.Type,
		Start:        w.Start,
		End:          end,
		Matched:      string(s.Seq[w.Start:end]),
		Distance:     w.Distance,
		SubjectIndex: s.Index,
		QueryIndex:   w.QueryIndex,
	}
}

// AssembleAll assembles every window of one subject, keeping window order.
func AssembleAll(queries []seq.Query, s seq.Subject, ws []scan.Window) []Hit {
	if len(ws) == 0 {
		return nil
	}
	out := make([]Hit, len(ws))
	for i, w := range ws {
		out[i] = Assemble(queries[w.QueryIndex], s, w)
	}
	return out
}

// Less is the canonical order: subject load order, query order, start.
func Less(a, b Hit) bool {
	if a.SubjectIndex != b.SubjectIndex {
		return a.SubjectIndex < b.SubjectIndex
	}
	if a.QueryIndex != b.QueryIndex {
		return a.QueryIndex < b.QueryIndex
	}
	return a.Start < b.Start
}

func Sort(hs []Hit) {
	sort.SliceStable(hs, func(i, j int) bool { return Less(hs[i], hs[j]) })
}

func orUnavailable(s string) string {
	if s == "" {
		return seq.Unavailable
	}
	return s
}
