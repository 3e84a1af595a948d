// core/query/loader.go
package query

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/Elococin/aso-offtarget-pipeline/core/fasta"
	"github.com/Elococin/aso-offtarget-pipeline/core/seq"
)

// LoadFile reads a query list from path ("-" = stdin, gzip aware).
func LoadFile(path string) ([]seq.Query, error) {
	rc, err := fasta.Open(path)
	if err != nil {
		return nil, err
	}
	defer func() { _ = rc.Close() }()
	return Load(rc, path)
}

// Load parses "ID SEQUENCE" records, one per line. Blank lines and lines
// starting with '#' are skipped. Extra fields after the ID are joined into the
// sequence. The whole list is materialized and returned in file order.
func Load(r io.Reader, source string) ([]seq.Query, error) {
	var list []seq.Query
	seen := make(map[string]int)

	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 64*1024), 16*1024*1024)
	ln := 0
	for sc.Scan() {
		ln++
		line := strings.TrimSpace(sc.Text())
		if line == "" || line[0] == '#' {
			continue
		}
		f := strings.Fields(line)
		if len(f) < 2 {
			return nil, &seq.FormatError{Source: source, Line: ln, Msg: fmt.Sprintf("expected 'ID SEQUENCE', got %q", line)}
		}
		id := f[0]
		if prev, dup := seen[id]; dup {
			return nil, &seq.FormatError{Source: source, Line: ln, Msg: fmt.Sprintf("duplicate identifier %q (first on line %d)", id, prev)}
		}
		s := seq.Normalize([]byte(strings.Join(f[1:], "")))
		if len(s) == 0 {
			return nil, &seq.AlphabetError{Source: source, Line: ln, ID: id}
		}
		seen[id] = ln
		list = append(list, seq.Query{ID: id, Seq: s})
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", source, err)
	}
	if len(list) == 0 {
		return nil, &seq.FormatError{Source: source, Msg: "no query records found"}
	}
	return list, nil
}

// MaxLen returns the longest query length in list.
func MaxLen(list []seq.Query) int {
	m := 0
	for _, q := range list {
		if q.Len() > m {
			m = q.Len()
		}
	}
	return m
}
