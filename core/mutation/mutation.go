// Package mutation builds allele-specific queries: a fixed-radius window of
// reference sequence centred on a variant, with and without the alternate base.
package mutation

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/Elococin/aso-offtarget-pipeline/core/seq"
)

// RangeError reports a window that does not fit inside the reference slice.
type RangeError struct {
	Center, Radius, Len int
}

func (e *RangeError) Error() string {
	return fmt.Sprintf("window [%d,%d] around %d is outside reference of length %d",
		e.Center-e.Radius, e.Center+e.Radius, e.Center, e.Len)
}

// ReferenceMismatchError reports a center base that differs from the declared
// reference allele.
type ReferenceMismatchError struct {
	Center int
	Want   string
	Got    string
}

func (e *ReferenceMismatchError) Error() string {
	return fmt.Sprintf("reference base at %d is %s, variant declares %s", e.Center, e.Got, e.Want)
}

// Request describes one variant window.
type Request struct {
	Name      string // query id prefix
	Ref       []byte // reference slice; Center indexes into it
	Center    int
	Radius    int
	Alt       string
	RefAllele string // optional; checked against Ref[Center] when set
}

// Pair holds the two queries built from a Request. Both have length 2r+1 and
// differ at most at index r.
type Pair struct {
	Mutant   seq.Query
	WildType seq.Query
}

// Build extracts the window and substitutes the alternate allele at its center.
func Build(req Request) (Pair, error) {
	alt, err := allele(req.Alt, "alt")
	if err != nil {
		return Pair{}, err
	}
	lo, hi := req.Center-req.Radius, req.Center+req.Radius
	if req.Radius < 0 || lo < 0 || hi >= len(req.Ref) {
		return Pair{}, &RangeError{Center: req.Center, Radius: req.Radius, Len: len(req.Ref)}
	}
	wt := bytes.ToUpper(req.Ref[lo : hi+1])

	if req.RefAllele != "" {
		ref, err := allele(req.RefAllele, "ref")
		if err != nil {
			return Pair{}, err
		}
		if wt[req.Radius] != ref {
			return Pair{}, &ReferenceMismatchError{Center: req.Center, Want: string(ref), Got: string(wt[req.Radius])}
		}
	}

	mut := bytes.Clone(wt)
	mut[req.Radius] = alt
	return Pair{
		Mutant:   seq.Query{ID: req.Name + "_mutant", Seq: mut},
		WildType: seq.Query{ID: req.Name + "_wt", Seq: wt},
	}, nil
}

func allele(s, what string) (byte, error) {
	s = strings.ToUpper(strings.TrimSpace(s))
	if len(s) != 1 || !seq.IsCanonical(s[0]) {
		return 0, &seq.FormatError{Source: what + " allele", Msg: fmt.Sprintf("want a single A/C/G/T base, got %q", s)}
	}
	return s[0], nil
}
