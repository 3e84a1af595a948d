// internal/writers/jsonl.go
package writers

import (
	"io"

	"github.com/Elococin/aso-offtarget-pipeline/core/hit"
	"github.com/Elococin/aso-offtarget-pipeline/internal/jsonlutil"
	"github.com/Elococin/aso-offtarget-pipeline/internal/output"
)

// streamHitJSONL streams each hit as one JSON line (v1).
func streamHitJSONL(w io.Writer, in <-chan hit.Hit) error {
	return jsonlutil.Stream[hit.Hit](w, in, output.EncodeHit, IsBrokenPipe)
}
