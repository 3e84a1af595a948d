package writers

import (
	"bytes"
	"encoding/json"
	"io"
	"strings"
	"testing"

	"github.com/Elococin/aso-offtarget-pipeline/core/hit"
	"github.com/Elococin/aso-offtarget-pipeline/internal/output"
	"github.com/Elococin/aso-offtarget-pipeline/pkg/api"
)

func TestStartHitWriter_CSVHeaderWithoutHits(t *testing.T) {
	var buf bytes.Buffer
	in, done := StartHitWriter(&buf, output.FormatCSV, 4)
	close(in)
	if err := <-done; err != nil {
		t.Fatalf("writer err: %v", err)
	}
	if buf.String() != output.CSVHeader+"\n" {
		t.Fatalf("got %q", buf.String())
	}
}

func TestStartHitWriter_JSONL(t *testing.T) {
	var buf bytes.Buffer
	in, done := StartHitWriter(&buf, output.FormatJSONL, 4)
	in <- hit.Hit{QueryID: "a", QuerySeq: "AC", SubjectID: "s", Start: 1, End: 3, Matched: "AC"}
	in <- hit.Hit{QueryID: "b", QuerySeq: "GT", SubjectID: "s", Gene: "G", TypeLabel: "exon", Start: 5, End: 7, Matched: "GA", Distance: 1}
	close(in)
	if err := <-done; err != nil {
		t.Fatalf("writer err: %v", err)
	}
	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	if len(lines) != 2 {
		t.Fatalf("want 2 lines, got %d", len(lines))
	}
	var v api.HitV1
	if err := json.Unmarshal([]byte(lines[1]), &v); err != nil || v.ASOID != "b" || v.EditDistance != 1 {
		t.Fatalf("jsonl roundtrip: %v %+v", err, v)
	}
}

type closedPipe struct{}

func (closedPipe) Write([]byte) (int, error) { return 0, io.ErrClosedPipe }

func TestStartHitWriter_BrokenPipeIsNotAnError(t *testing.T) {
	in, done := StartHitWriter(closedPipe{}, output.FormatTSV, 1)
	for i := 0; i < 10000; i++ {
		in <- hit.Hit{QueryID: "x", QuerySeq: "A", SubjectID: "s", End: 1, Matched: "A"}
	}
	close(in)
	if err := <-done; err != nil {
		t.Fatalf("broken pipe should be suppressed, got %v", err)
	}
}
