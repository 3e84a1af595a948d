// Package scan slides a query-width window across each subject and reports
// every window whose substitution-only distance is within the threshold.
package scan

import (
	"fmt"

	"github.com/Elococin/aso-offtarget-pipeline/core/seq"
)

// DefaultMaxDistance is the mismatch threshold used when none is configured.
const DefaultMaxDistance = 2

// Strategy names accepted by New.
const (
	StrategyBrute  = "brute"
	StrategySeeded = "seeded"
)

// Window is one qualifying window: query index into the table the Strategy was
// built with, 0-based start in the subject, and its distance.
type Window struct {
	QueryIndex int
	Start      int
	Distance   int
}

// Strategy scans one subject against a fixed query table.
//
// Results are ordered by QueryIndex, then Start. Implementations hold only
// read-only state after construction and are safe for concurrent use.
type Strategy interface {
	ScanSubject(subject []byte) []Window
}

// Config selects the threshold and the scanning strategy.
type Config struct {
	MaxDistance int
	Strategy    string // "seeded" (default) | "brute"
}

// New builds a Strategy over queries.
func New(cfg Config, queries []seq.Query) (Strategy, error) {
	if cfg.MaxDistance < 0 {
		return nil, fmt.Errorf("max distance must be ≥ 0, got %d", cfg.MaxDistance)
	}
	switch cfg.Strategy {
	case StrategySeeded, "":
		return NewSeeded(queries, cfg.MaxDistance), nil
	case StrategyBrute:
		return NewBruteForce(queries, cfg.MaxDistance), nil
	default:
		return nil, fmt.Errorf("unknown scan strategy %q (want %s|%s)", cfg.Strategy, StrategySeeded, StrategyBrute)
	}
}

// WindowCount is the number of windows of width k in a subject of length l.
func WindowCount(l, k int) int {
	if k <= 0 || l < k {
		return 0
	}
	return l - k + 1
}

/* ------------------------------ brute force ------------------------------ */

// BruteForce evaluates every window of every query.
type BruteForce struct {
	queries []seq.Query
	max     int
}

func NewBruteForce(queries []seq.Query, maxDistance int) *BruteForce {
	return &BruteForce{queries: queries, max: maxDistance}
}

func (b *BruteForce) ScanSubject(subject []byte) []Window {
	var out []Window
	for qi := range b.queries {
		out = scanQuery(out, subject, qi, b.queries[qi].Seq, b.max)
	}
	return out
}

// FindWindows is the single-query form: every window of subject within
// maxDistance of query, in increasing start order.
func FindWindows(subject, query []byte, maxDistance int) []Window {
	return scanQuery(nil, subject, 0, query, maxDistance)
}

func scanQuery(out []Window, subject []byte, qi int, query []byte, maxDistance int) []Window {
	k := len(query)
	end := len(subject) - k
	if k == 0 || end < 0 {
		return out
	}
	for pos := 0; pos <= end; pos++ {
		if d := BoundedDistance(query, subject[pos:], maxDistance); d <= maxDistance {
			out = append(out, Window{QueryIndex: qi, Start: pos, Distance: d})
		}
	}
	return out
}
