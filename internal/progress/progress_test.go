package progress

import (
	"bytes"
	"testing"
)

func TestNilBarIsNoop(t *testing.T) {
	var b *Bar = Start(&bytes.Buffer{}, 10, false)
	if b != nil {
		t.Fatal("disabled bar should be nil")
	}
	b.Increment()
	b.Finish()
	if b.Current() != 0 {
		t.Fatal("nil bar reported progress")
	}
}

func TestBarCounts(t *testing.T) {
	var buf bytes.Buffer
	b := Start(&buf, 3, true)
	for i := 0; i < 3; i++ {
		b.Increment()
	}
	b.Finish()
	if b.Current() != 3 {
		t.Fatalf("current %d", b.Current())
	}
	if buf.Len() == 0 {
		t.Fatal("bar wrote nothing")
	}
}
