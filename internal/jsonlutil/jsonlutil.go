// internal/jsonlutil/jsonlutil.go
package jsonlutil

import (
	"bufio"
	"encoding/json"
	"io"
	"sync"
)

// Reuse a 64 KiB buffered writer across JSONL writers to avoid per-writer mallocs.
// Encoder itself is tiny and tied to an io.Writer, so we (re)create it per goroutine.
var bwPool = sync.Pool{
	New: func() any {
		return bufio.NewWriterSize(io.Discard, 64<<10)
	},
}

// Start spins up a JSONL encoder goroutine for values of type T.
//   - encode: fn to encode one value (convert to wire type & enc.Encode)
//   - isBroken: recognizer for broken/closed pipe errors to suppress them
//
// After an encode failure the remaining input is drained so senders never block.
func Start[T any](out io.Writer, bufSize int, encode func(*json.Encoder, T) error, isBroken func(error) bool) (chan<- T, <-chan error) {
	if bufSize <= 0 {
		bufSize = 64
	}
	in := make(chan T, bufSize)
	done := make(chan error, 1)

	go func() {
		bw := bwPool.Get().(*bufio.Writer)
		// Rebind to the actual output while keeping the pooled buffer.
		bw.Reset(out)
		defer func() {
			bw.Reset(io.Discard)
			bwPool.Put(bw)
		}()

		enc := json.NewEncoder(bw)

		var err error
		for v := range in {
			if err != nil {
				continue
			}
			err = encode(enc, v)
		}
		if err == nil {
			if ferr := bw.Flush(); ferr != nil && !isBroken(ferr) {
				err = ferr
			}
		}
		if err != nil && isBroken(err) {
			err = nil
		}
		done <- err
	}()

	return in, done
}
