// Package seq holds the immutable sequence records shared by the loaders,
// the scan engine and the hit assembler.
package seq

import "strings"

// Unavailable is written wherever a gene symbol or subject type could not be
// derived from the input.
const Unavailable = "NA"

// Query is one oligo being screened. Seq is upper-case.
type Query struct {
	ID  string
	Seq []byte
}

// Len is the query length (window width).
func (q Query) Len() int { return len(q.Seq) }

// SubjectType is the closed set of subject-type tags.
type SubjectType int

const (
	TypeUnspecified SubjectType = iota
	TypeCoding
	TypeNonCoding
)

func (t SubjectType) String() string {
	switch t {
	case TypeCoding:
		return "coding"
	case TypeNonCoding:
		return "non-coding"
	default:
		return "unspecified"
	}
}

// TypeFromLabel maps a free-form type word ("mRNA", "exon", "lncRNA", ...)
// onto the closed tag set.
func TypeFromLabel(label string) SubjectType {
	l := strings.ToLower(strings.TrimSpace(label))
	switch l {
	case "mrna", "exon", "cds", "coding":
		return TypeCoding
	case "lncrna", "ncrna", "intron", "mirna", "snorna":
		return TypeNonCoding
	}
	if strings.Contains(l, "non-coding") || strings.Contains(l, "noncoding") {
		return TypeNonCoding
	}
	return TypeUnspecified
}

// Subject is one reference sequence (typically a transcript).
type Subject struct {
	Index     int    // 0-based load order within the run
	ID        string // verbatim identifier
	Header    string // full header line without '>'
	Gene      string // gene symbol or Unavailable
	Type      SubjectType
	TypeLabel string // verbatim type word or Unavailable
	Seq       []byte
}

// Len is the subject length.
func (s Subject) Len() int { return len(s.Seq) }
