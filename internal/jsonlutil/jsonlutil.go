// internal/jsonlutil/jsonlutil.go
package jsonlutil

import (
	"bufio"
	"encoding/json"
	"io"
	"sync"
)

// Reuse a 64 KiB buffered writer across JSONL writers to avoid per-writer mallocs.
// Encoder itself is tiny and tied to an io.Writer, so we (re)create it per call.
var bwPool = sync.Pool{
	New: func() any {
		return bufio.NewWriterSize(io.Discard, 64<<10)
	},
}

// Stream encodes every value from in as one JSON line on out.
//   - encode: fn to encode one value (convert to wire type & enc.Encode)
//   - isBroken: recognizer for broken/closed pipe errors to suppress them
func Stream[T any](out io.Writer, in <-chan T, encode func(*json.Encoder, T) error, isBroken func(error) bool) error {
	bw := bwPool.Get().(*bufio.Writer)
	// Rebind to the actual output while keeping the pooled buffer.
	bw.Reset(out)
	// Always put back to pool and drop references to 'out'.
	defer func() {
		bw.Reset(io.Discard)
		bwPool.Put(bw)
	}()

	enc := json.NewEncoder(bw)
	for v := range in {
		if err := encode(enc, v); err != nil {
			if isBroken(err) {
				return nil
			}
			return err
		}
	}
	if err := bw.Flush(); err != nil && !isBroken(err) {
		return err
	}
	return nil
}

// Start runs Stream on its own goroutine and returns its input channel and a
// channel that receives the final error.
func Start[T any](out io.Writer, bufSize int, encode func(*json.Encoder, T) error, isBroken func(error) bool) (chan<- T, <-chan error) {
	if bufSize <= 0 {
		bufSize = 64
	}
	in := make(chan T, bufSize)
	done := make(chan error, 1)
	go func() {
		err := Stream[T](out, in, encode, isBroken)
		for range in {
			// drain so producers never block on a failed writer
		}
		done <- err
	}()
	return in, done
}
