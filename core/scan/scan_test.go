package scan

import (
	"bytes"
	"math/rand"
	"slices"
	"testing"

	"github.com/Elococin/aso-offtarget-pipeline/core/seq"
)

const aso20 = "ATCGATCGATCGATCGATCG"

func queries(ss ...string) []seq.Query {
	out := make([]seq.Query, len(ss))
	for i, s := range ss {
		out[i] = seq.Query{ID: "q" + string(rune('0'+i)), Seq: []byte(s)}
	}
	return out
}

// subjectWith embeds w at offset 100 inside an N-padded subject.
func subjectWith(w string) []byte {
	var b bytes.Buffer
	b.WriteString(string(bytes.Repeat([]byte("N"), 100)))
	b.WriteString(w)
	b.WriteString(string(bytes.Repeat([]byte("N"), 30)))
	return b.Bytes()
}

func bothStrategies(t *testing.T, qs []seq.Query, max int) map[string]Strategy {
	t.Helper()
	out := map[string]Strategy{}
	for _, name := range []string{StrategyBrute, StrategySeeded} {
		s, err := New(Config{MaxDistance: max, Strategy: name}, qs)
		if err != nil {
			t.Fatalf("New(%s): %v", name, err)
		}
		out[name] = s
	}
	return out
}

func TestDistanceRangeAndIdentity(t *testing.T) {
	r := rand.New(rand.NewSource(7))
	for i := 0; i < 200; i++ {
		k := 1 + r.Intn(30)
		q, w := randSeq(r, k, "ACGT"), randSeq(r, k, "ACGTN")
		if d := Distance(q, w); d < 0 || d > k {
			t.Fatalf("distance %d outside [0,%d] for %s/%s", d, k, q, w)
		}
		if d := Distance(q, q); d != 0 {
			t.Fatalf("Distance(q,q)=%d for %s", d, q)
		}
	}
}

func TestDistanceSingleFlip(t *testing.T) {
	q := []byte(aso20)
	for pos := range q {
		for _, b := range []byte("ACGTN") {
			w := bytes.Clone(q)
			w[pos] = b
			want := 1
			if b == q[pos] {
				want = 0
			}
			if got := Distance(q, w); got != want {
				t.Fatalf("pos %d base %c: got %d want %d", pos, b, got, want)
			}
		}
	}
}

func TestAmbiguousWindowNeverMatches(t *testing.T) {
	if d := Distance([]byte("ANGT"), []byte("ANGT")); d != 1 {
		t.Fatalf("N against N: got %d want 1", d)
	}
	if d := Distance([]byte("ACGT"), []byte("RYKM")); d != 4 {
		t.Fatalf("IUPAC window: got %d want 4", d)
	}
}

func TestBoundedDistanceStopsEarly(t *testing.T) {
	if got := BoundedDistance([]byte("AAAAAAAA"), []byte("TTTTTTTT"), 2); got != 3 {
		t.Fatalf("want max+1=3, got %d", got)
	}
	if got := BoundedDistance([]byte("AAAAAAAA"), []byte("AAAAAATT"), 2); got != 2 {
		t.Fatalf("want exact 2, got %d", got)
	}
}

func TestScenarioExactMatch(t *testing.T) {
	for name, s := range bothStrategies(t, queries(aso20), DefaultMaxDistance) {
		got := s.ScanSubject(subjectWith(aso20))
		want := []Window{{QueryIndex: 0, Start: 100, Distance: 0}}
		if !slices.Equal(got, want) {
			t.Errorf("%s: got %+v want %+v", name, got, want)
		}
	}
}

func TestScenarioOneSubstitution(t *testing.T) {
	w := []byte(aso20)
	w[5] = 'A' // T -> A
	for name, s := range bothStrategies(t, queries(aso20), DefaultMaxDistance) {
		got := s.ScanSubject(subjectWith(string(w)))
		want := []Window{{QueryIndex: 0, Start: 100, Distance: 1}}
		if !slices.Equal(got, want) {
			t.Errorf("%s: got %+v want %+v", name, got, want)
		}
	}
}

func TestScenarioThreeSubstitutions(t *testing.T) {
	w := []byte(aso20)
	w[0], w[9], w[18] = 'G', 'A', 'A'
	if d := Distance([]byte(aso20), w); d != 3 {
		t.Fatalf("setup: distance %d", d)
	}
	for name, s := range bothStrategies(t, queries(aso20), DefaultMaxDistance) {
		if got := s.ScanSubject(subjectWith(string(w))); len(got) != 0 {
			t.Errorf("%s: want no hits, got %+v", name, got)
		}
	}
}

func TestSubjectEqualToQueryLength(t *testing.T) {
	if n := WindowCount(20, 20); n != 1 {
		t.Fatalf("WindowCount(20,20)=%d", n)
	}
	for name, s := range bothStrategies(t, queries(aso20), DefaultMaxDistance) {
		got := s.ScanSubject([]byte(aso20))
		if len(got) != 1 || got[0].Start != 0 || got[0].Distance != 0 {
			t.Errorf("%s: got %+v", name, got)
		}
	}
}

func TestSubjectShorterThanQuery(t *testing.T) {
	if n := WindowCount(19, 20); n != 0 {
		t.Fatalf("WindowCount(19,20)=%d", n)
	}
	for name, s := range bothStrategies(t, queries(aso20), 20) {
		if got := s.ScanSubject([]byte(aso20[:19])); len(got) != 0 {
			t.Errorf("%s: want no hits, got %+v", name, got)
		}
	}
}

func TestEveryWindowEvaluated(t *testing.T) {
	r := rand.New(rand.NewSource(3))
	subj := randSeq(r, 137, "ACGTN")
	const k = 11
	// threshold k admits every window, so the hit count equals the window count
	for name, s := range bothStrategies(t, queries(string(randSeq(r, k, "ACGT"))), k) {
		got := s.ScanSubject(subj)
		if len(got) != WindowCount(len(subj), k) {
			t.Fatalf("%s: %d hits, want %d", name, len(got), WindowCount(len(subj), k))
		}
		for i, w := range got {
			if w.Start != i {
				t.Fatalf("%s: window %d has start %d", name, i, w.Start)
			}
		}
	}
}

func TestThresholdRespected(t *testing.T) {
	r := rand.New(rand.NewSource(11))
	subj := randSeq(r, 2000, "ACGT")
	q := bytes.Clone(subj[500:512])
	for max := 0; max <= 4; max++ {
		for name, s := range bothStrategies(t, queries(string(q)), max) {
			for _, w := range s.ScanSubject(subj) {
				if w.Distance > max {
					t.Fatalf("%s max=%d: hit with distance %d", name, max, w.Distance)
				}
				if d := Distance(q, subj[w.Start:w.Start+len(q)]); d != w.Distance {
					t.Fatalf("%s: reported %d, recomputed %d", name, w.Distance, d)
				}
			}
		}
	}
}

func TestSeededMatchesBruteForce(t *testing.T) {
	r := rand.New(rand.NewSource(42))
	for round := 0; round < 60; round++ {
		subj := randSeq(r, 300+r.Intn(400), "ACGTACGTACGTN")
		var qs []string
		for i := 0; i < 12; i++ {
			k := 1 + r.Intn(22)
			if r.Intn(2) == 0 && len(subj) > k {
				// plant a mutated copy of a subject window
				at := r.Intn(len(subj) - k)
				q := bytes.Clone(subj[at : at+k])
				for j := range q {
					if q[j] == 'N' || r.Intn(6) == 0 {
						q[j] = "ACGT"[r.Intn(4)]
					}
				}
				qs = append(qs, string(q))
			} else {
				qs = append(qs, string(randSeq(r, k, "ACGTACGTN")))
			}
		}
		max := r.Intn(4)
		qt := queries(qs...)
		want := NewBruteForce(qt, max).ScanSubject(subj)
		got := NewSeeded(qt, max).ScanSubject(subj)
		if !slices.Equal(got, want) {
			t.Fatalf("round %d max=%d: seeded %d hits, brute %d hits", round, max, len(got), len(want))
		}
	}
}

func TestNewRejectsBadConfig(t *testing.T) {
	if _, err := New(Config{MaxDistance: -1}, nil); err == nil {
		t.Fatal("negative threshold accepted")
	}
	if _, err := New(Config{Strategy: "bwt"}, nil); err == nil {
		t.Fatal("unknown strategy accepted")
	}
	s, err := New(Config{MaxDistance: 2}, queries(aso20))
	if err != nil {
		t.Fatal(err)
	}
	if sd, ok := s.(*Seeded); !ok || sd.Seeds() != 3 {
		t.Fatalf("default strategy: %T", s)
	}
}

func randSeq(r *rand.Rand, n int, alphabet string) []byte {
	b := make([]byte, n)
	for i := range b {
		b[i] = alphabet[r.Intn(len(alphabet))]
	}
	return b
}
