// Package summary tallies hits as they stream past and renders the run report.
package summary

import (
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/dustin/go-humanize"

	"github.com/Elococin/aso-offtarget-pipeline/core/hit"
	"github.com/Elococin/aso-offtarget-pipeline/core/seq"
	"github.com/Elococin/aso-offtarget-pipeline/pkg/api"
)

// TopGenes is how many genes Build reports.
const TopGenes = 5

// Tally accumulates hit counts. The zero value is not usable; use New.
type Tally struct {
	hits       int
	coding     int
	byType     map[string]int
	byDistance map[int]int
	byGene     map[string]int
}

func New() *Tally {
	return &Tally{
		byType:     make(map[string]int),
		byDistance: make(map[int]int),
		byGene:     make(map[string]int),
	}
}

// Add counts one hit.
func (t *Tally) Add(h hit.Hit) {
	t.hits++
	label := h.TypeLabel
	if label == "" {
		label = seq.Unavailable
	}
	t.byType[label]++
	t.byDistance[h.Distance]++
	if h.Type == seq.TypeCoding {
		t.coding++
	}
	if h.Gene != "" && h.Gene != seq.Unavailable {
		t.byGene[h.Gene]++
	}
}

func (t *Tally) Hits() int { return t.hits }

// Build fills the hit-derived fields of a summary; run metadata is left to
// the caller.
func (t *Tally) Build() api.SummaryV1 {
	s := api.SummaryV1{
		Hits:       t.hits,
		CodingHits: t.coding,
		ByType:     make(map[string]int, len(t.byType)),
		ByDistance: make(map[int]int, len(t.byDistance)),
	}
	for k, v := range t.byType {
		s.ByType[k] = v
	}
	for k, v := range t.byDistance {
		s.ByDistance[k] = v
	}
	genes := make([]api.GeneCountV1, 0, len(t.byGene))
	for g, n := range t.byGene {
		genes = append(genes, api.GeneCountV1{Gene: g, Hits: n})
	}
	sort.Slice(genes, func(i, j int) bool {
		if genes[i].Hits != genes[j].Hits {
			return genes[i].Hits > genes[j].Hits
		}
		return genes[i].Gene < genes[j].Gene
	})
	if len(genes) > TopGenes {
		genes = genes[:TopGenes]
	}
	s.TopGenes = genes
	return s
}

// Render writes a human-readable report.
func Render(w io.Writer, s api.SummaryV1) error {
	var b strings.Builder
	fmt.Fprintf(&b, "Subjects scanned:  %s\n", humanize.Comma(int64(s.Subjects)))
	fmt.Fprintf(&b, "Queries:           %s\n", humanize.Comma(int64(s.Queries)))
	fmt.Fprintf(&b, "Windows evaluated: %s\n", humanize.Comma(s.Windows))
	fmt.Fprintf(&b, "Total hits:        %s\n", humanize.Comma(int64(s.Hits)))
	if s.Hits == 0 {
		fmt.Fprintf(&b, "No off-target hits found (substitution-only distance ≤ %d).\n", s.MaxDistance)
		_, err := io.WriteString(w, b.String())
		return err
	}

	fmt.Fprintf(&b, "Hits on coding subjects: %s\n", humanize.Comma(int64(s.CodingHits)))

	b.WriteString("Hits by transcript type:\n")
	types := make([]string, 0, len(s.ByType))
	for k := range s.ByType {
		types = append(types, k)
	}
	sort.Strings(types)
	for _, k := range types {
		fmt.Fprintf(&b, "  %s: %s\n", k, humanize.Comma(int64(s.ByType[k])))
	}

	b.WriteString("Hits by mismatch count:\n")
	dists := make([]int, 0, len(s.ByDistance))
	for k := range s.ByDistance {
		dists = append(dists, k)
	}
	sort.Ints(dists)
	for _, d := range dists {
		fmt.Fprintf(&b, "  %d mismatch(es): %s\n", d, humanize.Comma(int64(s.ByDistance[d])))
	}

	if len(s.TopGenes) > 0 {
		fmt.Fprintf(&b, "Top %d genes hit:\n", len(s.TopGenes))
		for _, g := range s.TopGenes {
			fmt.Fprintf(&b, "  %s: %s hit(s)\n", g.Gene, humanize.Comma(int64(g.Hits)))
		}
	}
	_, err := io.WriteString(w, b.String())
	return err
}
