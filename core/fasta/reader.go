// core/fasta/reader.go
package fasta

import (
	"bufio"
	"bytes"
	"fmt"
	"io"
	"iter"
	"strings"
	"unicode"

	"popseq/core/formaterr"
)

// FormatError is the error raised for malformed FASTA input.
type FormatError = formaterr.Error

// Record is one FASTA entry. Seq has all whitespace removed.
type Record struct {
	ID      string
	Comment string
	Seq     string
}

// Reader decodes FASTA records from a stream in a single forward pass.
type Reader struct {
	sc   *bufio.Scanner
	line int

	pending bool
	cur     Record
	seq     strings.Builder

	err error // sticky: io.EOF once drained, or the first failure
}

// NewReader returns a Reader over r.
func NewReader(r io.Reader) *Reader {
	sc := bufio.NewScanner(r)
	const maxLine = 64 * 1024 * 1024 // allow very long single-line sequences (64 MiB)
	buf := make([]byte, 64*1024)
	sc.Buffer(buf, maxLine)
	return &Reader{sc: sc}
}

// Next returns the next record. At end of stream the last pending record is
// returned first, then io.EOF on every later call.
func (r *Reader) Next() (Record, error) {
	if r.err != nil {
		return Record{}, r.err
	}
	for r.sc.Scan() {
		r.line++
		line := bytes.TrimRight(r.sc.Bytes(), "\r")

		if len(line) > 0 && line[0] == '>' {
			prev, had := r.take()
			id, comment, err := parseHeader(line[1:])
			if err != nil {
				err = r.fail(formaterr.Wrap(err, "fasta", r.line, "bad ID line"))
				if had {
					return prev, nil
				}
				return Record{}, err
			}
			r.cur = Record{ID: id, Comment: comment}
			r.pending = true
			if had {
				return prev, nil
			}
			continue
		}

		if !r.pending {
			if len(bytes.TrimSpace(line)) == 0 {
				continue
			}
			return Record{}, r.fail(formaterr.New("fasta", r.line, "sequence data before ID line"))
		}
		for _, f := range bytes.Fields(line) {
			r.seq.Write(f)
		}
	}
	if err := r.sc.Err(); err != nil {
		return Record{}, r.fail(fmt.Errorf("fasta scan: %w", err))
	}
	r.err = io.EOF
	if rec, had := r.take(); had {
		return rec, nil
	}
	return Record{}, io.EOF
}

// take hands back the pending record, if any, and clears it.
func (r *Reader) take() (Record, bool) {
	if !r.pending {
		return Record{}, false
	}
	rec := r.cur
	rec.Seq = r.seq.String()
	r.seq.Reset()
	r.cur = Record{}
	r.pending = false
	return rec, true
}

func (r *Reader) fail(err error) error {
	r.err = err
	return err
}

// Records ranges over every record in r. Iteration stops after the first
// error, which is yielded with a zero Record.
func Records(r io.Reader) iter.Seq2[Record, error] {
	return func(yield func(Record, error) bool) {
		fr := NewReader(r)
		for {
			rec, err := fr.Next()
			if err == io.EOF {
				return
			}
			if !yield(rec, err) || err != nil {
				return
			}
		}
	}
}

// ReadAll collects every record in r.
func ReadAll(r io.Reader) ([]Record, error) {
	var out []Record
	for rec, err := range Records(r) {
		if err != nil {
			return out, err
		}
		out = append(out, rec)
	}
	return out, nil
}

// parseHeader splits the text after '>' into the identifier (up to the first
// whitespace or comma) and the comment (after an optional comma and
// whitespace).
func parseHeader(hdr []byte) (id, comment string, err error) {
	end := bytes.IndexFunc(hdr, func(c rune) bool { return c == ',' || unicode.IsSpace(c) })
	if end < 0 {
		end = len(hdr)
	}
	if end == 0 {
		return "", "", fmt.Errorf("empty identifier in %q", hdr)
	}
	rest := hdr[end:]
	if len(rest) > 0 && rest[0] == ',' {
		rest = rest[1:]
	}
	return string(hdr[:end]), string(bytes.TrimLeftFunc(rest, unicode.IsSpace)), nil
}
