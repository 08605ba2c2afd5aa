// core/ms/reader.go
package ms

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"

	"popseq/core/formaterr"
)

type state int

const (
	stateAwaitingHeader state = iota
	stateInBlock
	stateExhausted
)

func (s state) String() string {
	switch s {
	case stateAwaitingHeader:
		return "awaiting-header"
	case stateInBlock:
		return "in-block"
	case stateExhausted:
		return "exhausted"
	}
	return fmt.Sprintf("state(%d)", int(s))
}

// Reader splits an ms output stream into simulations. It owns the run's
// command line and reads strictly forward.
type Reader struct {
	sc    *bufio.Scanner
	line  int
	state state

	args *Args
	seed string
	sims int
}

// NewReader consumes the command line and seed line of r and positions the
// reader just past the first "//" boundary.
func NewReader(r io.Reader) (*Reader, error) {
	sc := bufio.NewScanner(r)
	const maxLine = 64 * 1024 * 1024 // haplotype lines grow with segsites
	sc.Buffer(make([]byte, 64*1024), maxLine)
	rd := &Reader{sc: sc, state: stateAwaitingHeader}

	cmd, ok, err := rd.readLine()
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, formaterr.New("ms", 0, "missing command line")
	}
	if rd.args, err = ParseArgs(cmd); err != nil {
		return nil, err
	}

	seed, ok, err := rd.readLine()
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, formaterr.New("ms", 2, "missing seed line")
	}
	rd.seed = strings.TrimRight(seed, " \t")

	for {
		l, ok, err := rd.readLine()
		if err != nil {
			return nil, err
		}
		if !ok {
			rd.state = stateExhausted
			return rd, nil
		}
		if strings.HasPrefix(l, "//") {
			rd.state = stateInBlock
			return rd, nil
		}
	}
}

// Args returns the parsed command line.
func (r *Reader) Args() *Args { return r.args }

// Seed returns the second line of the stream, unparsed.
func (r *Reader) Seed() string { return r.seed }

// Next returns the next simulation, or io.EOF once the stream is exhausted.
// Blank lines are skipped; a block ends at the next "//" line or at end of
// input.
func (r *Reader) Next() (*Simulation, error) {
	if r.state != stateInBlock {
		return nil, io.EOF
	}
	var (
		lines []string
		first int
	)
	for {
		l, ok, err := r.readLine()
		if err != nil {
			r.state = stateExhausted
			return nil, err
		}
		if !ok {
			r.state = stateExhausted
			if len(lines) == 0 {
				return nil, io.EOF
			}
			break
		}
		if strings.HasPrefix(l, "//") {
			break
		}
		l = strings.TrimRight(l, " \t")
		if l == "" {
			continue
		}
		if len(lines) == 0 {
			first = r.line
		}
		lines = append(lines, l)
	}
	if first == 0 {
		first = r.line
	}
	r.sims++
	sim, err := parseSimulation(r.args, r.sims, lines, first)
	if err != nil {
		r.state = stateExhausted
		return nil, err
	}
	return sim, nil
}

// readLine returns the next line without its terminator; ok is false at end
// of input.
func (r *Reader) readLine() (string, bool, error) {
	if !r.sc.Scan() {
		if err := r.sc.Err(); err != nil {
			return "", false, fmt.Errorf("ms scan: %w", err)
		}
		return "", false, nil
	}
	r.line++
	return strings.TrimRight(r.sc.Text(), "\r"), true, nil
}

// ForEach calls fn for every remaining simulation of r. It stops at the first
// error from the stream or from fn, or when ctx is done.
func ForEach(ctx context.Context, r *Reader, fn func(*Simulation) error) error {
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}
		sim, err := r.Next()
		if err == io.EOF {
			return nil
		}
		if err != nil {
			return err
		}
		if err := fn(sim); err != nil {
			return err
		}
	}
}
