// Package variant is the caller side of the mutation window adapter: it reads
// the resolved variant tuple, pulls the reference window out of a genome FASTA
// and writes the allele-specific sequences.
package variant

import (
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/Elococin/aso-offtarget-pipeline/core/fasta"
	"github.com/Elococin/aso-offtarget-pipeline/core/mutation"
	"github.com/Elococin/aso-offtarget-pipeline/core/seq"
	"github.com/Elococin/aso-offtarget-pipeline/pkg/api"
)

// Variant is one resolved variant. Pos is 1-based.
type Variant struct {
	Chrom string
	Pos   int
	Ref   string
	Alt   string
	GT    string
}

func (v Variant) String() string {
	s := fmt.Sprintf("%s:%d %s>%s", v.Chrom, v.Pos, v.Ref, v.Alt)
	if v.GT != "" {
		s += " (GT " + v.GT + ")"
	}
	return s
}

var required = []string{"chrom", "pos", "ref", "alt"}

// ReadFirstFile reads the first data row of a variant CSV.
func ReadFirstFile(path string) (Variant, error) {
	f, err := os.Open(path)
	if err != nil {
		return Variant{}, err
	}
	defer func() { _ = f.Close() }()
	return ReadFirst(f, path)
}

// ReadFirst reads a CSV with a header naming at least chrom, pos, ref and alt
// (gt is optional, extra columns are ignored) and returns its first row.
func ReadFirst(r io.Reader, source string) (Variant, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1
	cr.TrimLeadingSpace = true

	hdr, err := cr.Read()
	if errors.Is(err, io.EOF) {
		return Variant{}, &seq.FormatError{Source: source, Msg: "empty variant file"}
	}
	if err != nil {
		return Variant{}, fmt.Errorf("%s: %w", source, err)
	}
	col := make(map[string]int, len(hdr))
	for i, h := range hdr {
		col[strings.ToLower(strings.TrimSpace(h))] = i
	}
	for _, k := range required {
		if _, ok := col[k]; !ok {
			return Variant{}, &seq.FormatError{Source: source, Line: 1, Msg: fmt.Sprintf("missing column %q", k)}
		}
	}

	row, err := cr.Read()
	if errors.Is(err, io.EOF) {
		return Variant{}, &seq.FormatError{Source: source, Msg: "no variant rows"}
	}
	if err != nil {
		return Variant{}, fmt.Errorf("%s: %w", source, err)
	}
	get := func(k string) string {
		i, ok := col[k]
		if !ok || i >= len(row) {
			return ""
		}
		return strings.TrimSpace(row[i])
	}
	pos, err := strconv.Atoi(get("pos"))
	if err != nil || pos < 1 {
		return Variant{}, &seq.FormatError{Source: source, Line: 2, Msg: fmt.Sprintf("bad pos %q", get("pos"))}
	}
	return Variant{
		Chrom: get("chrom"),
		Pos:   pos,
		Ref:   get("ref"),
		Alt:   get("alt"),
		GT:    get("gt"),
	}, nil
}

// NormalizeChrom drops a leading "chr" (any case).
func NormalizeChrom(c string) string {
	c = strings.TrimSpace(c)
	if len(c) > 3 && strings.EqualFold(c[:3], "chr") {
		return c[3:]
	}
	return c
}

// ChromMatcher matches FASTA record ids naming chrom with or without the
// "chr" prefix, case-insensitively.
func ChromMatcher(chrom string) func(id string) bool {
	want := strings.ToLower(NormalizeChrom(chrom))
	return func(id string) bool {
		return strings.ToLower(NormalizeChrom(id)) == want
	}
}

// ExtractWindow returns the 2*radius+1 reference bases centred on the 1-based
// position pos of chrom. The window is streamed out of genome, so full
// assemblies are fine. A window past either chromosome end is a
// mutation.RangeError.
func ExtractWindow(ctx context.Context, genome, chrom string, pos, radius int) ([]byte, error) {
	if radius < 0 {
		return nil, fmt.Errorf("window radius must be ≥ 0, got %d", radius)
	}
	center := pos - 1
	start, end := center-radius, center+radius+1
	reg, err := fasta.ExtractRegion(ctx, genome, ChromMatcher(chrom), start, end)
	if errors.Is(err, fasta.ErrRecordNotFound) {
		return nil, fmt.Errorf("chromosome %s not found in %s: %w", chrom, genome, err)
	}
	if err != nil {
		return nil, err
	}
	if start < 0 || end > reg.RecordLen {
		return nil, &mutation.RangeError{Center: center, Radius: radius, Len: reg.RecordLen}
	}
	return reg.Seq, nil
}

// Rows lays out a built pair as the mutant and wild-type sequence rows.
func Rows(name, chrom string, pos int, p mutation.Pair) []api.MutationSequenceV1 {
	return []api.MutationSequenceV1{
		{TargetName: name, Chrom: chrom, Pos: pos, AlleleType: "mutant", Sequence: string(p.Mutant.Seq)},
		{TargetName: name, Chrom: chrom, Pos: pos, AlleleType: "wt", Sequence: string(p.WildType.Seq)},
	}
}

// SequenceColumns is the header of the sequences CSV.
var SequenceColumns = []string{"target_name", "chrom", "pos", "allele_type", "sequence"}

// WriteSequences writes rows as CSV with a header.
func WriteSequences(w io.Writer, rows []api.MutationSequenceV1) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(SequenceColumns); err != nil {
		return err
	}
	for _, r := range rows {
		if err := cw.Write([]string{r.TargetName, r.Chrom, strconv.Itoa(r.Pos), r.AlleleType, r.Sequence}); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}
