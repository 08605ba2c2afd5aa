// core/fasta/writer.go
package fasta

import (
	"io"
	"strings"
)

// LineWidth is the default number of sequence characters per output line.
const LineWidth = 60

// Writer encodes records as ">id, comment" followed by the sequence wrapped
// at Width characters per line.
type Writer struct {
	w     io.Writer
	Width int
}

// NewWriter returns a Writer wrapping at LineWidth.
func NewWriter(w io.Writer) *Writer {
	return &Writer{w: w, Width: LineWidth}
}

// Write emits a single record. An empty sequence produces only the header.
func (fw *Writer) Write(id, comment, seq string) error {
	width := fw.Width
	if width <= 0 {
		width = LineWidth
	}
	var b strings.Builder
	b.Grow(len(id) + len(comment) + 4 + len(seq) + len(seq)/width + 1)
	b.WriteString(">")
	b.WriteString(id)
	b.WriteString(", ")
	b.WriteString(comment)
	b.WriteByte('\n')
	for len(seq) > 0 {
		n := min(width, len(seq))
		b.WriteString(seq[:n])
		b.WriteByte('\n')
		seq = seq[n:]
	}
	_, err := io.WriteString(fw.w, b.String())
	return err
}

// WriteRecord is Write for a decoded Record.
func (fw *Writer) WriteRecord(rec Record) error {
	return fw.Write(rec.ID, rec.Comment, rec.Seq)
}

// Write emits one record to w using the default line width.
func Write(w io.Writer, id, comment, seq string) error {
	return NewWriter(w).Write(id, comment, seq)
}
