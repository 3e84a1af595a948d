// core/fasta/reader.go
package fasta

import (
	"bufio"
	"bytes"
	"fmt"
	"io"

	"github.com/Elococin/aso-offtarget-pipeline/core/seq"
)

// Record is one parsed FASTA entry. Seq is the concatenation of the record's
// sequence lines with surrounding whitespace trimmed; case is preserved.
type Record struct {
	Header string // header line without '>' (trimmed)
	Seq    []byte
	Line   int // 1-based line number of the header
}

// ID returns the first whitespace-delimited token of the header.
func (r Record) ID() string { return parseHeaderID([]byte(r.Header)) }

// Reader yields records one at a time. It is finite and not restartable:
// once Next returns io.EOF (or an error) the Reader is spent.
type Reader struct {
	sc     *bufio.Scanner
	source string
	line   int

	nextHeader []byte // header that terminated the previous record
	nextLine   int
	done       bool
}

// NewReader wraps r. source names the input in error messages.
func NewReader(r io.Reader, source string) *Reader {
	sc := bufio.NewScanner(r)
	const maxLine = 64 * 1024 * 1024 // allow very long single-line sequences (64 MiB)
	buf := make([]byte, 64*1024)
	sc.Buffer(buf, maxLine)
	return &Reader{sc: sc, source: source}
}

// Next returns the next record, or io.EOF after the last one.
// A sequence line before the first header is a *seq.FormatError.
func (r *Reader) Next() (Record, error) {
	if r.done {
		return Record{}, io.EOF
	}
	var rec *Record
	if r.nextHeader != nil {
		rec = &Record{Header: string(r.nextHeader), Line: r.nextLine}
		r.nextHeader = nil
	}
	seqBuf := make([]byte, 0, 1<<12)

	for r.sc.Scan() {
		r.line++
		line := bytes.TrimSpace(r.sc.Bytes())
		if len(line) == 0 {
			continue
		}
		if line[0] == '>' {
			hdr := bytes.TrimSpace(line[1:])
			if rec == nil {
				rec = &Record{Header: string(hdr), Line: r.line}
				continue
			}
			r.nextHeader = append([]byte(nil), hdr...)
			r.nextLine = r.line
			rec.Seq = seqBuf
			return *rec, nil
		}
		if rec == nil {
			r.done = true
			return Record{}, &seq.FormatError{Source: r.source, Line: r.line, Msg: "sequence data before first '>' header"}
		}
		seqBuf = append(seqBuf, line...)
	}
	r.done = true
	if err := r.sc.Err(); err != nil {
		return Record{}, fmt.Errorf("fasta scan %s: %w", r.source, err)
	}
	if rec == nil {
		return Record{}, io.EOF
	}
	rec.Seq = seqBuf
	return *rec, nil
}

func parseHeaderID(hdr []byte) string {
	hdr = bytes.TrimSpace(hdr)
	if i := bytes.IndexAny(hdr, " \t"); i >= 0 {
		return string(hdr[:i])
	}
	return string(hdr)
}
