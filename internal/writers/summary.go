package writers

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"strings"

	"popseq/internal/jsonlutil"
	"popseq/internal/summary"
	"popseq/pkg/api"
)

// SummaryHeader is the header row of the text summary table.
const SummaryHeader = "source_file\tindex\tsegsites\tsamples\tpopulation_sizes\tlocus_length\tbase_positions"

// ToAPISimulation converts a summary into its v1 wire form.
func ToAPISimulation(s summary.Simulation) api.SimulationV1 {
	return api.SimulationV1{
		SourceFile:      s.SourceFile,
		Index:           s.Index,
		Segsites:        s.Segsites,
		Samples:         s.Samples,
		PopulationSizes: s.PopulationSizes,
		Positions:       s.Positions,
		BasePositions:   s.BasePositions,
		LocusLength:     s.LocusLength,
	}
}

// StartSummaryWriter spins up a writer goroutine for simulation summaries.
// Text output is a TSV table; jsonl emits one api.SimulationV1 per line.
func StartSummaryWriter(out io.Writer, format string, header bool, bufSize int) (chan<- summary.Simulation, <-chan error) {
	if format == FormatJSONL {
		return jsonlutil.Start[summary.Simulation](out, bufSize,
			func(enc *json.Encoder, s summary.Simulation) error {
				return enc.Encode(ToAPISimulation(s))
			},
			IsBrokenPipe,
		)
	}
	if bufSize <= 0 {
		bufSize = 64
	}
	in := make(chan summary.Simulation, bufSize)
	errCh := make(chan error, 1)
	go func() {
		var err error
		if format != FormatText {
			err = ValidFormat(format)
		} else {
			err = streamSummaryText(out, in, header)
		}
		for range in {
			// drain so senders never block after a failure
		}
		errCh <- err
	}()
	return in, errCh
}

func streamSummaryText(out io.Writer, in <-chan summary.Simulation, header bool) error {
	bw := bufio.NewWriter(out)
	if header {
		if _, err := fmt.Fprintln(bw, SummaryHeader); err != nil {
			return err
		}
	}
	for s := range in {
		if _, err := fmt.Fprintf(bw, "%s\t%d\t%d\t%d\t%s\t%s\t%s\n",
			s.SourceFile, s.Index, s.Segsites, s.Samples,
			intsCSV(s.PopulationSizes), locusField(s), intsCSV(s.BasePositions),
		); err != nil {
			return err
		}
	}
	if err := bw.Flush(); err != nil && !IsBrokenPipe(err) {
		return err
	}
	return nil
}

func locusField(s summary.Simulation) string {
	if s.BasePositions == nil {
		return "-"
	}
	return strconv.Itoa(s.LocusLength)
}

func intsCSV(xs []int) string {
	if len(xs) == 0 {
		return "-"
	}
	parts := make([]string, len(xs))
	for i, x := range xs {
		parts[i] = strconv.Itoa(x)
	}
	return strings.Join(parts, ",")
}
