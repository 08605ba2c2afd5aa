// core/ms/sim.go
package ms

import (
	"errors"
	"strconv"
	"strings"

	"popseq/core/formaterr"
)

// ErrNoLocusLength is returned by BasePositions when the run has no -r argument.
var ErrNoLocusLength = errors.New("ms: no -r locus length")

// Simulation is one "//" block of an ms run.
type Simulation struct {
	args  *Args // owned by the Reader
	index int

	segsites  int
	positions []float64
	genotypes []string

	baseDone bool
	basePos  []int
	baseErr  error
}

// parseSimulation builds a Simulation from the non-blank lines of one block.
// firstLine is the input line number of lines[0], used for error reporting.
func parseSimulation(args *Args, index int, lines []string, firstLine int) (*Simulation, error) {
	if len(lines) == 0 {
		return nil, formaterr.New("ms", firstLine, "empty simulation block")
	}
	s := &Simulation{args: args, index: index}

	rest, ok := strings.CutPrefix(lines[0], "segsites:")
	if !ok {
		return nil, formaterr.New("ms", firstLine, "expected segsites:, got %q", lines[0])
	}
	n, err := strconv.Atoi(strings.TrimSpace(rest))
	if err != nil || n < 0 {
		return nil, formaterr.Wrap(err, "ms", firstLine, "bad segsites count %q", strings.TrimSpace(rest))
	}
	s.segsites = n
	if n == 0 {
		return s, nil
	}

	if len(lines) < 2 {
		return nil, formaterr.New("ms", firstLine+1, "missing positions: line")
	}
	rest, ok = strings.CutPrefix(lines[1], "positions:")
	if !ok {
		return nil, formaterr.New("ms", firstLine+1, "expected positions:, got %q", lines[1])
	}
	fields := strings.Fields(rest)
	s.positions = make([]float64, len(fields))
	for i, f := range fields {
		p, err := strconv.ParseFloat(f, 64)
		if err != nil {
			return nil, formaterr.Wrap(err, "ms", firstLine+1, "position %d", i+1)
		}
		s.positions[i] = p
	}
	s.genotypes = lines[2:]
	return s, nil
}

// Args returns the command line of the run this simulation belongs to.
func (s *Simulation) Args() *Args { return s.args }

// Index is the 1-based ordinal of the block within its run.
func (s *Simulation) Index() int { return s.index }

// Segsites is the number of segregating sites.
func (s *Simulation) Segsites() int { return s.segsites }

// Positions are the relative site positions as printed by ms.
func (s *Simulation) Positions() []float64 { return s.positions }

// Genotypes holds one haplotype string per sample; empty when Segsites is 0.
func (s *Simulation) Genotypes() []string { return s.genotypes }

// PopulationGenotypes slices Genotypes contiguously by the run's population
// sizes.
func (s *Simulation) PopulationGenotypes() ([][]string, error) {
	sizes, err := s.args.PopulationSizes()
	if err != nil {
		return nil, err
	}
	out := make([][]string, 0, len(sizes))
	cur := 0
	for i, n := range sizes {
		if s.segsites > 0 && cur+n > len(s.genotypes) {
			return nil, formaterr.New("ms", 0, "simulation %d: population %d needs genotypes %d..%d, block has %d",
				s.index, i+1, cur+1, cur+n, len(s.genotypes))
		}
		if s.segsites == 0 {
			out = append(out, nil)
			continue
		}
		out = append(out, s.genotypes[cur:cur+n])
		cur += n
	}
	return out, nil
}

// BasePositions maps Positions onto the locus given by the run's -r
// argument. The result is computed once and cached.
func (s *Simulation) BasePositions() ([]int, error) {
	if !s.baseDone {
		s.basePos, s.baseErr = s.computeBasePositions()
		s.baseDone = true
	}
	return s.basePos, s.baseErr
}

func (s *Simulation) computeBasePositions() ([]int, error) {
	n, ok, err := s.args.LocusLength()
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, ErrNoLocusLength
	}
	return ToBasePositions(s.positions, n), nil
}
