package appcore

import (
	"bufio"
	"fmt"
	"io"
	"os"

	"github.com/Elococin/aso-offtarget-pipeline/core/hit"
	"github.com/Elococin/aso-offtarget-pipeline/internal/writers"
)

// HitWriterFactory opens a result destination and starts its writer goroutine.
type HitWriterFactory struct {
	Path   string // "-" writes to the stdout passed to Open
	Format string
}

// HitSink is a running result writer.
type HitSink struct {
	In   chan<- hit.Hit
	done <-chan error
	bw   *bufio.Writer
	file *os.File
}

// Open creates the destination and starts the writer.
func (f HitWriterFactory) Open(stdout io.Writer, bufSize int) (*HitSink, error) {
	var (
		dst  io.Writer = stdout
		file *os.File
	)
	if f.Path != "-" {
		fh, err := os.Create(f.Path)
		if err != nil {
			return nil, fmt.Errorf("create output: %w", err)
		}
		dst, file = fh, fh
	}
	bw := bufio.NewWriterSize(dst, 256<<10)
	in, done := writers.StartHitWriter(bw, f.Format, bufSize)
	return &HitSink{In: in, done: done, bw: bw, file: file}, nil
}

// Close ends the input, waits for the writer and flushes. Broken pipes are
// not errors.
func (s *HitSink) Close() error {
	close(s.In)
	err := <-s.done
	if ferr := s.bw.Flush(); err == nil && !writers.IsBrokenPipe(ferr) {
		err = ferr
	}
	if s.file != nil {
		if cerr := s.file.Close(); err == nil {
			err = cerr
		}
	}
	return err
}
