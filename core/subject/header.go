package subject

import (
	"regexp"
	"strings"

	"github.com/Elococin/aso-offtarget-pipeline/core/seq"
)

// Dialect tags which header layout a record uses.
type Dialect int

const (
	DialectPlain       Dialect = iota // neither layout matched
	DialectCompact                    // "name|type"
	DialectDescriptive                // "NM_000014.6 Homo sapiens ... (A2M), mRNA"
)

func (d Dialect) String() string {
	switch d {
	case DialectCompact:
		return "compact"
	case DialectDescriptive:
		return "descriptive"
	default:
		return "plain"
	}
}

// Header is the parsed form of a FASTA header line, resolved once per record.
// Only the fields of the matching dialect are set.
type Header struct {
	Dialect Dialect
	Raw     string

	// compact
	Name     string
	TypeWord string

	// descriptive
	Accession string
	Text      string

	// plain
	Token string
}

var (
	accessionRe = regexp.MustCompile(`^([NX][MR]_\d+\.\d+)\s+(.+)$`)
	symbolRe    = regexp.MustCompile(`\(([A-Z0-9_-]+)\)`)
)

// ParseHeader detects the dialect of hdr ('>' optional). The descriptive
// layout is tried first since a descriptive text may itself contain '|'.
func ParseHeader(hdr string) Header {
	hdr = strings.TrimSpace(strings.TrimPrefix(hdr, ">"))
	if m := accessionRe.FindStringSubmatch(hdr); m != nil {
		return Header{Dialect: DialectDescriptive, Raw: hdr, Accession: m[1], Text: m[2]}
	}
	if parts := strings.Split(hdr, "|"); len(parts) >= 2 {
		return Header{Dialect: DialectCompact, Raw: hdr, Name: strings.TrimSpace(parts[0]), TypeWord: strings.TrimSpace(parts[1])}
	}
	tok := seq.Unavailable
	if f := strings.Fields(hdr); len(f) > 0 {
		tok = f[0]
	}
	return Header{Dialect: DialectPlain, Raw: hdr, Token: tok}
}

// Annotation is what downstream code sees of a header.
type Annotation struct {
	ID        string
	Gene      string
	TypeLabel string
	Type      seq.SubjectType
}

// Annotate normalizes a parsed header into subject metadata. Missing symbol or
// type become seq.Unavailable, never an empty string.
func (h Header) Annotate() Annotation {
	var a Annotation
	switch h.Dialect {
	case DialectDescriptive:
		a.ID = h.Accession
		a.Gene = seq.Unavailable
		if m := symbolRe.FindStringSubmatch(h.Text); m != nil {
			a.Gene = m[1]
		}
		a.TypeLabel = typeFromText(h.Text)
	case DialectCompact:
		a.ID = h.Raw
		a.Gene = orUnavailable(h.Name)
		a.TypeLabel = orUnavailable(h.TypeWord)
	default:
		a.ID = h.Token
		a.Gene = seq.Unavailable
		a.TypeLabel = seq.Unavailable
	}
	a.Type = seq.TypeFromLabel(a.TypeLabel)
	return a
}

// typeFromText infers a transcript type label from descriptive header text.
// Order matters: "non-coding RNA" also contains "rna".
func typeFromText(text string) string {
	l := strings.ToLower(text)
	switch {
	case strings.Contains(l, "non-coding rna"), strings.Contains(l, "noncoding rna"):
		return "non-coding RNA"
	case strings.Contains(l, "lncrna"), strings.Contains(l, "long non-coding"):
		return "lncRNA"
	case strings.Contains(l, "mrna"):
		return "mRNA"
	case strings.Contains(l, "rna"):
		return "RNA"
	}
	return seq.Unavailable
}

func orUnavailable(s string) string {
	if s == "" {
		return seq.Unavailable
	}
	return s
}
