package integration

import (
	"bytes"
	"context"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/Elococin/aso-offtarget-pipeline/internal/app"
)

func TestCancelReturns130(t *testing.T) {
	if testing.Short() {
		t.Skip("large fixture")
	}
	dir := t.TempDir()
	fa := filepath.Join(dir, "big.fa")
	f, err := os.Create(fa)
	if err != nil {
		t.Fatal(err)
	}
	line := strings.Repeat("ACGT", 20) + "\n"
	for i := 0; i < 400; i++ {
		if _, err := f.WriteString(">tx|exon\n" + strings.Repeat(line, 250)); err != nil {
			t.Fatal(err)
		}
	}
	if err := f.Close(); err != nil {
		t.Fatal(err)
	}
	q := write(t, dir, "q.txt", "rep ACGTACGTACGTACGTACGT\nrep2 CGTACGTACGTACGTACGTA\n")

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	time.AfterFunc(10*time.Millisecond, cancel)
	var stderr bytes.Buffer
	code := app.RunContext(ctx, []string{"screen", "-q", q, "-s", fa, "-o", "-", "--threads", "2", "--log-level", "error"},
		io.Discard, &stderr)
	if code != app.ExitInterrupted {
		t.Fatalf("want %d, got %d (%s)", app.ExitInterrupted, code, stderr.String())
	}
}
