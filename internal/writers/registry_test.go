package writers

import (
	"bytes"
	"strings"
	"testing"

	"github.com/Elococin/aso-offtarget-pipeline/core/hit"
)

func TestUnknownHitFormatError(t *testing.T) {
	var b bytes.Buffer
	in, done := StartHitWriter(&b, "nope-format", 1)
	in <- hit.Hit{QueryID: "x"} // must not block even though the format is bad
	close(in)
	err := <-done
	if err == nil || !strings.Contains(err.Error(), "unknown hit format") {
		t.Fatalf("want 'unknown hit format' error, got: %v", err)
	}
}

func TestRegisteredFormats(t *testing.T) {
	got := strings.Join(HitFormats(), ",")
	if got != "csv,jsonl,tsv" {
		t.Fatalf("registered formats %q", got)
	}
}
