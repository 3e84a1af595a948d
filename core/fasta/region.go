package fasta

import (
	"bufio"
	"bytes"
	"context"
	"errors"
	"fmt"
)

// ErrRecordNotFound is returned by ExtractRegion when no header matched.
var ErrRecordNotFound = errors.New("fasta: record not found")

// Region is a slice of one record's linear sequence.
type Region struct {
	ID        string // first header token of the matched record
	Start     int    // requested 0-based start
	Seq       []byte // bytes in [Start, min(End, RecordLen)), upper-cased
	RecordLen int    // full length of the matched record
}

// ExtractRegion streams path and copies bases [start, end) of the first record
// whose header ID satisfies match. Only the requested bases are kept in memory,
// so whole-genome files are fine. Bounds are not enforced here: callers compare
// RecordLen against their window.
func ExtractRegion(ctx context.Context, path string, match func(id string) bool, start, end int) (Region, error) {
	rc, err := Open(path)
	if err != nil {
		return Region{}, err
	}
	defer func() { _ = rc.Close() }()

	sc := bufio.NewScanner(rc)
	const maxLine = 64 * 1024 * 1024
	sc.Buffer(make([]byte, 64*1024), maxLine)

	var (
		in    bool
		found bool
		reg   Region
		off   int
	)
	for sc.Scan() {
		select {
		case <-ctx.Done():
			return Region{}, ctx.Err()
		default:
		}
		line := bytes.TrimSpace(sc.Bytes())
		if len(line) == 0 {
			continue
		}
		if line[0] == '>' {
			if in {
				break // matched record finished
			}
			id := parseHeaderID(line[1:])
			if match(id) {
				in, found = true, true
				reg = Region{ID: id, Start: start}
				off = 0
			}
			continue
		}
		if !in {
			continue
		}
		lo, hi := off, off+len(line)
		if hi > start && lo < end {
			a := max(start, lo) - lo
			b := min(end, hi) - lo
			reg.Seq = append(reg.Seq, bytes.ToUpper(line[a:b])...)
		}
		off = hi
	}
	if err := sc.Err(); err != nil {
		return Region{}, fmt.Errorf("fasta scan %s: %w", path, err)
	}
	if !found {
		return Region{}, ErrRecordNotFound
	}
	reg.RecordLen = off
	return reg, nil
}
