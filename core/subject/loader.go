// Package subject turns a FASTA corpus into normalized seq.Subject records,
// one at a time, and resolves which corpus file to read.
package subject

import (
	"context"
	"errors"
	"io"

	"github.com/Elococin/aso-offtarget-pipeline/core/fasta"
	"github.com/Elococin/aso-offtarget-pipeline/core/seq"
)

// Iterator is a lazy, finite, non-restartable sequence of subjects.
type Iterator struct {
	rd     *fasta.Reader
	closer io.Closer
	source string
	next   int
}

// NewIterator reads subjects from r; source names r in errors.
func NewIterator(r io.Reader, source string) *Iterator {
	return &Iterator{rd: fasta.NewReader(r, source), source: source}
}

// OpenFile opens path (gzip aware) for iteration. Close releases the file.
func OpenFile(path string) (*Iterator, error) {
	rc, err := fasta.Open(path)
	if err != nil {
		return nil, err
	}
	it := NewIterator(rc, path)
	it.closer = rc
	return it, nil
}

// Next returns the next subject, or io.EOF after the last one.
func (it *Iterator) Next() (seq.Subject, error) {
	rec, err := it.rd.Next()
	if err != nil {
		return seq.Subject{}, err
	}
	s, err := FromRecord(rec, it.next, it.source)
	if err != nil {
		return seq.Subject{}, err
	}
	it.next++
	return s, nil
}

// Close releases the underlying file, if any.
func (it *Iterator) Close() error {
	if it.closer == nil {
		return nil
	}
	return it.closer.Close()
}

// FromRecord normalizes one FASTA record into a Subject.
func FromRecord(rec fasta.Record, index int, source string) (seq.Subject, error) {
	if rec.Header == "" {
		return seq.Subject{}, &seq.FormatError{Source: source, Line: rec.Line, Msg: "empty header"}
	}
	ann := ParseHeader(rec.Header).Annotate()
	s := seq.Normalize(rec.Seq)
	if len(s) == 0 {
		return seq.Subject{}, &seq.AlphabetError{Source: source, Line: rec.Line, ID: ann.ID}
	}
	return seq.Subject{
		Index:     index,
		ID:        ann.ID,
		Header:    rec.Header,
		Gene:      ann.Gene,
		Type:      ann.Type,
		TypeLabel: ann.TypeLabel,
		Seq:       s,
	}, nil
}

// Stats summarizes a validated corpus.
type Stats struct {
	Subjects int
	Bases    int64
	MaxLen   int
	Dialects map[Dialect]int
}

// Validate streams every record of path without scanning and returns the
// first load error, so a scan never starts on a partially invalid corpus.
// Memory stays bounded by the largest single record.
func Validate(ctx context.Context, path string) (Stats, error) {
	st := Stats{Dialects: make(map[Dialect]int)}
	it, err := OpenFile(path)
	if err != nil {
		return st, err
	}
	defer func() { _ = it.Close() }()

	for {
		select {
		case <-ctx.Done():
			return st, ctx.Err()
		default:
		}
		s, err := it.Next()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return st, err
		}
		st.Subjects++
		st.Bases += int64(s.Len())
		if s.Len() > st.MaxLen {
			st.MaxLen = s.Len()
		}
		st.Dialects[ParseHeader(s.Header).Dialect]++
	}
	if st.Subjects == 0 {
		return st, &seq.FormatError{Source: path, Msg: "no subject records found"}
	}
	return st, nil
}
