// pkg/api/hits_v1.go
package api

// HitV1 is the stable JSON/JSONL schema for one off-target site.
// Keep fields, names, and types stable. Add new fields only with ",omitempty".
// Field names match the CSV columns.
type HitV1 struct {
	ASOID           string `json:"aso_id"`
	ASOSequence     string `json:"aso_sequence"`
	TranscriptID    string `json:"transcript_id"`
	GeneSymbol      string `json:"gene_symbol"`
	TranscriptType  string `json:"transcript_type"`
	MatchStart      int    `json:"match_start"` // 0-based, inclusive
	MatchEnd        int    `json:"match_end"`   // exclusive
	MatchedSequence string `json:"matched_sequence"`
	EditDistance    int    `json:"edit_distance"`
}

// MutationSequenceV1 is one allele-specific query written by the mutation
// command. Pos is the 1-based genomic position of the variant.
type MutationSequenceV1 struct {
	TargetName string `json:"target_name"`
	Chrom      string `json:"chrom"`
	Pos        int    `json:"pos"`
	AlleleType string `json:"allele_type"` // "mutant" | "wt"
	Sequence   string `json:"sequence"`
}

// SummaryV1 is the run summary written next to the results.
type SummaryV1 struct {
	Subjects       int            `json:"subjects"`
	Queries        int            `json:"queries"`
	Windows        int64          `json:"windows"`
	Hits           int            `json:"hits"`
	ByType         map[string]int `json:"by_transcript_type"`
	ByDistance     map[int]int    `json:"by_edit_distance"`
	CodingHits     int            `json:"coding_hits"`
	TopGenes       []GeneCountV1  `json:"top_genes,omitempty"`
	MaxDistance    int            `json:"max_distance"`
	Strategy       string         `json:"strategy"`
	SubjectSource  string         `json:"subject_source"`
	ElapsedSeconds float64        `json:"elapsed_seconds"`
}

type GeneCountV1 struct {
	Gene string `json:"gene"`
	Hits int    `json:"hits"`
}
