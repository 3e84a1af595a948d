package logging

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/charmbracelet/log"
)

func TestParseLevel(t *testing.T) {
	cases := map[string]log.Level{"debug": log.DebugLevel, "": log.InfoLevel, "WARNING": log.WarnLevel, "error": log.ErrorLevel}
	for in, want := range cases {
		got, err := ParseLevel(in)
		if err != nil || got != want {
			t.Errorf("%q: got %v %v", in, got, err)
		}
	}
	if _, err := ParseLevel("loud"); err == nil {
		t.Error("unknown level accepted")
	}
}

func TestNewTeesToFile(t *testing.T) {
	var buf bytes.Buffer
	p := filepath.Join(t.TempDir(), "run.log")
	lg, closeFn, err := New(&buf, "warn", p)
	if err != nil {
		t.Fatal(err)
	}
	lg.Info("hidden")
	lg.Warn("source missing", "path", "x.fa")
	if err := closeFn(); err != nil {
		t.Fatal(err)
	}
	b, err := os.ReadFile(p)
	if err != nil {
		t.Fatal(err)
	}
	for _, out := range []string{buf.String(), string(b)} {
		if !strings.Contains(out, "source missing") || strings.Contains(out, "hidden") {
			t.Fatalf("unexpected log output %q", out)
		}
	}
}
