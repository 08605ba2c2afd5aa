package writers

import (
	"bufio"
	"encoding/json"
	"io"

	"popseq/core/fasta"
	"popseq/internal/jsonlutil"
	"popseq/pkg/api"
)

// ToAPISequence converts a FASTA record into its v1 wire form.
func ToAPISequence(r fasta.Record) api.SequenceV1 {
	return api.SequenceV1{ID: r.ID, Comment: r.Comment, Length: len(r.Seq), Seq: r.Seq}
}

// StartSequenceWriter spins up a writer goroutine for FASTA records.
// Text output is wrapped FASTA (width <= 0 uses fasta.LineWidth); jsonl emits
// one api.SequenceV1 per line.
func StartSequenceWriter(out io.Writer, format string, width, bufSize int) (chan<- fasta.Record, <-chan error) {
	if format == FormatJSONL {
		return jsonlutil.Start[fasta.Record](out, bufSize,
			func(enc *json.Encoder, r fasta.Record) error {
				return enc.Encode(ToAPISequence(r))
			},
			IsBrokenPipe,
		)
	}
	if bufSize <= 0 {
		bufSize = 64
	}
	in := make(chan fasta.Record, bufSize)
	errCh := make(chan error, 1)
	go func() {
		err := ValidFormat(format)
		if err == nil {
			bw := bufio.NewWriter(out)
			fw := fasta.NewWriter(bw)
			if width > 0 {
				fw.Width = width
			}
			for r := range in {
				if err = fw.WriteRecord(r); err != nil {
					break
				}
			}
			if ferr := bw.Flush(); err == nil && ferr != nil && !IsBrokenPipe(ferr) {
				err = ferr
			}
		}
		for range in {
			// drain so senders never block after a failure
		}
		errCh <- err
	}()
	return in, errCh
}
