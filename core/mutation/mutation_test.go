package mutation

import (
	"bytes"
	"errors"
	"math/rand"
	"testing"

	"github.com/Elococin/aso-offtarget-pipeline/core/hit"
	"github.com/Elococin/aso-offtarget-pipeline/core/scan"
	"github.com/Elococin/aso-offtarget-pipeline/core/seq"
)

func randRef(n int, seed int64) []byte {
	r := rand.New(rand.NewSource(seed))
	b := make([]byte, n)
	for i := range b {
		b[i] = "ACGT"[r.Intn(4)]
	}
	return b
}

func otherBase(b byte) string {
	if b == 'A' {
		return "G"
	}
	return "A"
}

func TestBuildRadius25(t *testing.T) {
	ref := randRef(51, 1)
	p, err := Build(Request{Name: "rs1", Ref: ref, Center: 25, Radius: 25, Alt: otherBase(ref[25]), RefAllele: string(ref[25])})
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	if p.Mutant.Len() != 51 || p.WildType.Len() != 51 {
		t.Fatalf("lengths %d/%d", p.Mutant.Len(), p.WildType.Len())
	}
	if p.Mutant.ID != "rs1_mutant" || p.WildType.ID != "rs1_wt" {
		t.Fatalf("ids %q %q", p.Mutant.ID, p.WildType.ID)
	}
	for i := range p.Mutant.Seq {
		differs := p.Mutant.Seq[i] != p.WildType.Seq[i]
		if differs != (i == 25) {
			t.Fatalf("index %d: differs=%v", i, differs)
		}
	}
	if !bytes.Equal(p.WildType.Seq, ref) {
		t.Fatal("wild type is not the reference slice")
	}
}

func TestMutantScanFindsWildTypeLocus(t *testing.T) {
	ref := randRef(51, 2)
	p, err := Build(Request{Name: "v", Ref: ref, Center: 25, Radius: 25, Alt: otherBase(ref[25])})
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	tx := append(append(bytes.Repeat([]byte("N"), 40), ref...), bytes.Repeat([]byte("N"), 12)...)
	subj := seq.Subject{ID: "TX1|exon", Gene: "TX1", TypeLabel: "exon", Type: seq.TypeCoding, Seq: tx}

	qs := []seq.Query{p.Mutant}
	eng, err := scan.New(scan.Config{MaxDistance: scan.DefaultMaxDistance}, qs)
	if err != nil {
		t.Fatal(err)
	}
	hs := hit.AssembleAll(qs, subj, eng.ScanSubject(subj.Seq))
	if len(hs) != 1 {
		t.Fatalf("want one hit, got %+v", hs)
	}
	h := hs[0]
	if h.Start != 40 || h.End != 91 || h.Distance != 1 {
		t.Fatalf("unexpected hit %+v", h)
	}
	for i := range h.Matched {
		if (h.Matched[i] != h.QuerySeq[i]) != (i == 25) {
			t.Fatalf("mismatch not localized to center: index %d", i)
		}
	}
}

func TestBuildRangeError(t *testing.T) {
	ref := randRef(30, 3)
	for _, c := range []int{2, 27, -1, 30} {
		_, err := Build(Request{Ref: ref, Center: c, Radius: 3, Alt: "A"})
		var re *RangeError
		if !errors.As(err, &re) {
			t.Fatalf("center %d: want RangeError, got %v", c, err)
		}
	}
	if _, err := Build(Request{Ref: ref, Center: 3, Radius: 3, Alt: "A"}); err != nil {
		t.Fatalf("window touching start: %v", err)
	}
	if _, err := Build(Request{Ref: ref, Center: 26, Radius: 3, Alt: "A"}); err != nil {
		t.Fatalf("window touching end: %v", err)
	}
}

func TestBuildAlleleChecks(t *testing.T) {
	ref := []byte("acgtACGTa")
	var fe *seq.FormatError
	if _, err := Build(Request{Ref: ref, Center: 4, Radius: 2, Alt: "AT"}); !errors.As(err, &fe) {
		t.Fatalf("multi-base alt: got %v", err)
	}
	var rm *ReferenceMismatchError
	if _, err := Build(Request{Ref: ref, Center: 4, Radius: 2, Alt: "g", RefAllele: "C"}); !errors.As(err, &rm) || rm.Got != "A" {
		t.Fatalf("ref mismatch: got %v", err)
	}
	p, err := Build(Request{Ref: ref, Center: 4, Radius: 2, Alt: "g", RefAllele: "a"})
	if err != nil {
		t.Fatalf("lower-case input: %v", err)
	}
	if string(p.WildType.Seq) != "GTACG" || string(p.Mutant.Seq) != "GTGCG" {
		t.Fatalf("got wt=%s mut=%s", p.WildType.Seq, p.Mutant.Seq)
	}
}
