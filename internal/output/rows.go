// internal/output/rows.go
package output

import (
	"strconv"

	"github.com/Elococin/aso-offtarget-pipeline/core/hit"
	"github.com/Elococin/aso-offtarget-pipeline/core/seq"
)

// Row returns the fields of h in Columns order. Empty gene or type fields
// are written as the unavailable marker.
func Row(h hit.Hit) []string {
	return []string{
		h.QueryID,
		h.QuerySeq,
		h.SubjectID,
		orUnavailable(h.Gene),
		orUnavailable(h.TypeLabel),
		strconv.Itoa(h.Start),
		strconv.Itoa(h.End),
		h.Matched,
		strconv.Itoa(h.Distance),
	}
}

func orUnavailable(s string) string {
	if s == "" {
		return seq.Unavailable
	}
	return s
}
