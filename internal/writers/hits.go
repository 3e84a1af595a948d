// internal/writers/hits.go
package writers

import (
	"io"

	"github.com/Elococin/aso-offtarget-pipeline/core/hit"
	"github.com/Elococin/aso-offtarget-pipeline/internal/output"
)

func init() {
	RegisterHit(output.FormatCSV, func(w io.Writer, in <-chan hit.Hit) error {
		return output.StreamDelimited(w, ',', in)
	})
	RegisterHit(output.FormatTSV, func(w io.Writer, in <-chan hit.Hit) error {
		return output.StreamDelimited(w, '\t', in)
	})
	RegisterHit(output.FormatJSONL, streamHitJSONL)
}

// StartHitWriter spins up a writer goroutine for hits in the given format.
// Hits are written in arrival order. Close the returned channel when done and
// then read the final error. A broken pipe is reported as success. After a
// write error the goroutine keeps draining its input so producers never block.
func StartHitWriter(out io.Writer, format string, bufSize int) (chan<- hit.Hit, <-chan error) {
	if bufSize <= 0 {
		bufSize = 64
	}
	in := make(chan hit.Hit, bufSize)
	errCh := make(chan error, 1)

	go func() {
		fn, err := LookupHit(format)
		if err == nil {
			err = fn(out, in)
		}
		for range in {
		}
		if IsBrokenPipe(err) {
			err = nil
		}
		errCh <- err
	}()

	return in, errCh
}
