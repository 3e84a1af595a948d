// internal/output/delimited.go
package output

import (
	"encoding/csv"
	"io"

	"github.com/Elococin/aso-offtarget-pipeline/core/hit"
)

// StreamDelimited writes the header and then one row per hit received from
// in, separated by comma (',' for CSV, '\t' for TSV). The header is written
// even when in yields nothing. Rows keep arrival order.
func StreamDelimited(w io.Writer, comma rune, in <-chan hit.Hit) error {
	cw := csv.NewWriter(w)
	cw.Comma = comma
	if err := cw.Write(Columns); err != nil {
		return err
	}
	n := 0
	for h := range in {
		if err := cw.Write(Row(h)); err != nil {
			return err
		}
		// surface write errors (e.g. closed pipe) without waiting for the end
		if n++; n%4096 == 0 {
			cw.Flush()
			if err := cw.Error(); err != nil {
				return err
			}
		}
	}
	cw.Flush()
	return cw.Error()
}

// WriteDelimited writes a slice of hits; see StreamDelimited.
func WriteDelimited(w io.Writer, comma rune, list []hit.Hit) error {
	ch := make(chan hit.Hit, len(list))
	for _, h := range list {
		ch <- h
	}
	close(ch)
	return StreamDelimited(w, comma, ch)
}
