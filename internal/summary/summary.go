// internal/summary/summary.go
package summary

import (
	"errors"
	"fmt"

	"popseq/core/ms"
)

// Simulation is the per-block digest reported by `popseq ms summary`.
type Simulation struct {
	SourceFile      string
	Index           int
	Segsites        int
	Samples         int // genotype lines actually present
	PopulationSizes []int
	Positions       []float64
	BasePositions   []int // nil when no locus length is known
	LocusLength     int
}

// Options tune how a simulation is summarised.
type Options struct {
	// LocusLength overrides the run's -r locus length when > 0.
	LocusLength int
	// KeepPositions copies relative positions into the summary.
	KeepPositions bool
}

// FromSimulation digests sim. Warnings describe recoverable inconsistencies,
// such as a genotype count that differs from the run's sample count.
func FromSimulation(file string, sim *ms.Simulation, opt Options) (Simulation, []string, error) {
	var warns []string
	args := sim.Args()

	sizes, err := args.PopulationSizes()
	if err != nil {
		return Simulation{}, nil, err
	}
	out := Simulation{
		SourceFile:      file,
		Index:           sim.Index(),
		Segsites:        sim.Segsites(),
		Samples:         len(sim.Genotypes()),
		PopulationSizes: sizes,
	}
	if sim.Segsites() > 0 && out.Samples != args.Samples() {
		warns = append(warns, fmt.Sprintf("simulation %d has %d genotype lines, command line says %d samples",
			sim.Index(), out.Samples, args.Samples()))
	}
	if n := len(sim.Positions()); n != sim.Segsites() {
		warns = append(warns, fmt.Sprintf("simulation %d lists %d positions for %d segregating sites",
			sim.Index(), n, sim.Segsites()))
	}
	if opt.KeepPositions {
		out.Positions = sim.Positions()
	}

	switch {
	case opt.LocusLength > 0:
		out.LocusLength = opt.LocusLength
		out.BasePositions = ms.ToBasePositions(sim.Positions(), opt.LocusLength)
	default:
		base, err := sim.BasePositions()
		if errors.Is(err, ms.ErrNoLocusLength) {
			break
		}
		if err != nil {
			return Simulation{}, nil, err
		}
		out.BasePositions = base
		out.LocusLength, _, _ = args.LocusLength()
	}
	return out, warns, nil
}
