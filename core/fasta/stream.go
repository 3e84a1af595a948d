// core/fasta/stream.go
package fasta

import (
	"context"
	"errors"
	"io"
)

// ForEach parses FASTA from r and calls emit once per record, in file order.
//
// It is cancelable: it returns ctx.Err() promptly between records.
// A non-nil error from emit stops the stream and is returned as is.
func ForEach(ctx context.Context, r io.Reader, source string, emit func(Record) error) error {
	rd := NewReader(r, source)
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}
		rec, err := rd.Next()
		if errors.Is(err, io.EOF) {
			return nil
		}
		if err != nil {
			return err
		}
		if err := emit(rec); err != nil {
			return err
		}
	}
}

// ForEachPath opens path (gzip aware) and streams its records through emit.
func ForEachPath(ctx context.Context, path string, emit func(Record) error) error {
	rc, err := Open(path)
	if err != nil {
		return err
	}
	defer func() { _ = rc.Close() }()
	return ForEach(ctx, rc, path, emit)
}
