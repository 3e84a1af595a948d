// internal/writers/registry.go
package writers

import (
	"fmt"
	"io"
	"sort"

	"github.com/Elococin/aso-offtarget-pipeline/core/hit"
)

// HitStreamer writes every hit received from in to w.
type HitStreamer func(w io.Writer, in <-chan hit.Hit) error

// HitWriters maps format name to handler. Register in init() blocks.
var HitWriters = map[string]HitStreamer{}

// RegisterHit adds or replaces a format (last wins).
func RegisterHit(format string, fn HitStreamer) { HitWriters[format] = fn }

// LookupHit returns the handler for format.
func LookupHit(format string) (HitStreamer, error) {
	fn, ok := HitWriters[format]
	if !ok {
		return nil, fmt.Errorf("unknown hit format %q (no writer registered)", format)
	}
	return fn, nil
}

// HitFormats lists registered formats, sorted.
func HitFormats() []string {
	out := make([]string, 0, len(HitWriters))
	for k := range HitWriters {
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}
