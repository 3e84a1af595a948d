// internal/output/json.go
package output

import (
	"encoding/json"
	"io"

	"github.com/Elococin/aso-offtarget-pipeline/core/hit"
	"github.com/Elococin/aso-offtarget-pipeline/internal/jsonutil"
	"github.com/Elococin/aso-offtarget-pipeline/pkg/api"
)

// ToAPIHit converts a domain Hit to the stable wire schema (v1).
func ToAPIHit(h hit.Hit) api.HitV1 {
	return api.HitV1{
		ASOID:           h.QueryID,
		ASOSequence:     h.QuerySeq,
		TranscriptID:    h.SubjectID,
		GeneSymbol:      orUnavailable(h.Gene),
		TranscriptType:  orUnavailable(h.TypeLabel),
		MatchStart:      h.Start,
		MatchEnd:        h.End,
		MatchedSequence: h.Matched,
		EditDistance:    h.Distance,
	}
}

// EncodeHit writes h as one JSON line.
func EncodeHit(enc *json.Encoder, h hit.Hit) error {
	return enc.Encode(ToAPIHit(h))
}

// WriteSummaryJSON writes a run summary as indented JSON.
func WriteSummaryJSON(w io.Writer, s api.SummaryV1) error {
	return jsonutil.EncodePretty(w, s)
}
