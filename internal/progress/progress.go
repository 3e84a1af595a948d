// Package progress draws a subject-count progress bar on stderr.
package progress

import (
	"io"

	"github.com/cheggaaa/pb/v3"
)

// Bar is a progress bar; a nil *Bar is a no-op, so callers need not branch.
type Bar struct {
	bar *pb.ProgressBar
}

// Start returns a running bar over total subjects, or nil when disabled.
func Start(w io.Writer, total int, enabled bool) *Bar {
	if !enabled || total <= 0 {
		return nil
	}
	bar := pb.Full.New(total)
	bar.SetWriter(w)
	bar.Set("prefix", "subjects ")
	return &Bar{bar: bar.Start()}
}

func (b *Bar) Increment() {
	if b == nil {
		return
	}
	b.bar.Increment()
}

func (b *Bar) Current() int64 {
	if b == nil {
		return 0
	}
	return b.bar.Current()
}

func (b *Bar) Finish() {
	if b == nil {
		return
	}
	b.bar.Finish()
}
