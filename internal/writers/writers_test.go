package writers

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"
	"syscall"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"popseq/core/fasta"
	"popseq/internal/summary"
	"popseq/pkg/api"
)

var sims = []summary.Simulation{
	{SourceFile: "a.ms", Index: 1, Segsites: 2, Samples: 3, PopulationSizes: []int{2, 1}, BasePositions: []int{10, 11}, LocusLength: 100},
	{SourceFile: "a.ms", Index: 2, Segsites: 0, Samples: 0, PopulationSizes: []int{2, 1}},
}

func writeSummaries(t *testing.T, format string, header bool) (string, error) {
	t.Helper()
	var buf bytes.Buffer
	in, done := StartSummaryWriter(&buf, format, header, 1)
	for _, s := range sims {
		in <- s
	}
	close(in)
	return buf.String(), <-done
}

func TestSummaryText(t *testing.T) {
	out, err := writeSummaries(t, FormatText, true)
	require.NoError(t, err)
	want := SummaryHeader + "\n" +
		"a.ms\t1\t2\t3\t2,1\t100\t10,11\n" +
		"a.ms\t2\t0\t0\t2,1\t-\t-\n"
	assert.Equal(t, want, out)
}

func TestSummaryTextNoHeader(t *testing.T) {
	out, err := writeSummaries(t, FormatText, false)
	require.NoError(t, err)
	assert.False(t, strings.HasPrefix(out, "source_file"))
}

func TestSummaryJSONL(t *testing.T) {
	out, err := writeSummaries(t, FormatJSONL, true)
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Len(t, lines, 2)
	var got api.SimulationV1
	require.NoError(t, json.Unmarshal([]byte(lines[0]), &got))
	assert.Equal(t, ToAPISimulation(sims[0]), got)
	assert.NotContains(t, lines[1], "base_positions")
}

func TestSummaryUnknownFormat(t *testing.T) {
	_, err := writeSummaries(t, "xml", true)
	assert.ErrorContains(t, err, "unsupported output")
}

func TestSequenceWriterFASTA(t *testing.T) {
	var buf bytes.Buffer
	in, done := StartSequenceWriter(&buf, FormatText, 3, 1)
	in <- fasta.Record{ID: "a", Comment: "x", Seq: "ACGTA"}
	close(in)
	require.NoError(t, <-done)
	assert.Equal(t, ">a, x\nACG\nTA\n", buf.String())
}

func TestSequenceWriterJSONL(t *testing.T) {
	var buf bytes.Buffer
	in, done := StartSequenceWriter(&buf, FormatJSONL, 0, 1)
	in <- fasta.Record{ID: "a", Seq: "ACGT"}
	close(in)
	require.NoError(t, <-done)
	assert.JSONEq(t, `{"id":"a","length":4,"seq":"ACGT"}`, buf.String())
}

type failingWriter struct{ err error }

func (f failingWriter) Write([]byte) (int, error) { return 0, f.err }

func TestSequenceWriterBrokenPipeIsQuiet(t *testing.T) {
	in, done := StartSequenceWriter(failingWriter{err: syscall.EPIPE}, FormatText, 0, 1)
	in <- fasta.Record{ID: "a", Seq: "ACGT"}
	close(in)
	assert.NoError(t, <-done)
}

func TestIsBrokenPipe(t *testing.T) {
	assert.True(t, IsBrokenPipe(fmt.Errorf("write: %w", syscall.EPIPE)))
	assert.True(t, IsBrokenPipe(io.ErrClosedPipe))
	assert.False(t, IsBrokenPipe(errors.New("disk full")))
	assert.False(t, IsBrokenPipe(nil))
}
