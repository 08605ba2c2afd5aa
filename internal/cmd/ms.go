package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"popseq/core/fasta"
	"popseq/core/ms"
	"popseq/internal/cmdutil"
	"popseq/internal/config"
	"popseq/internal/input"
	"popseq/internal/pipeline"
	"popseq/internal/summary"
	"popseq/internal/writers"
)

func newMSCmd(e *env) *cobra.Command {
	c := &cobra.Command{
		Use:   "ms",
		Short: "Inspect ms simulator output",
	}

	sum := &cobra.Command{
		Use:   "summary [file ...]",
		Short: "One line per simulation: sites, samples, populations, base positions",
		Long: `Parses each ms output file ('-' or none for stdin) and reports every
simulation in file order. Base positions are listed when the run has a
-r argument or --locus-length is given.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			paths, err := inputs(args)
			if err != nil {
				return err
			}
			return e.summarize(cmd, paths)
		},
	}
	sf := sum.Flags()
	sf.IntP(config.KeyWorkers, "t", 0, "files parsed concurrently (0 = all CPUs)")
	sf.Int(config.KeyLocusLength, 0, "locus length for base positions (0 = use -r)")
	sf.Bool(config.KeyNoHeader, false, "suppress header line")
	sf.Bool(config.KeyPositions, false, "include relative positions (jsonl)")

	haps := &cobra.Command{
		Use:   "fasta [file]",
		Short: "Write every haplotype of every simulation as a FASTA record",
		Long: `Records are named sim<i>_pop<p>_<j>: simulation i (1-based), population
p in -I order, sample j within that population.`,
		Args: atMostOneInput,
		RunE: func(cmd *cobra.Command, args []string) error {
			paths, err := inputs(args)
			if err != nil {
				return err
			}
			if len(paths) != 1 {
				return &UsageError{Err: fmt.Errorf("%q matched %d files, want one", args[0], len(paths))}
			}
			return e.haplotypes(cmd, paths[0])
		},
	}
	haps.Flags().Int(config.KeyLineWidth, fasta.LineWidth, "sequence characters per line")

	c.AddCommand(sum, haps)
	return c
}

func (e *env) summarize(cmd *cobra.Command, paths []string) error {
	in, done := writers.StartSummaryWriter(e.stdout, e.cfg.Output, !e.cfg.NoHeader, 64)
	cfg := pipeline.Config{
		Workers: e.cfg.Workers,
		Summary: summary.Options{
			LocusLength:   e.cfg.LocusLength,
			KeepPositions: e.cfg.Positions,
		},
		Warn: func(file, msg string) { cmdutil.Warnf(e.log, "%s: %s", file, msg) },
	}
	n := 0
	err := pipeline.SummarizeFiles(cmd.Context(), cfg, paths, func(s summary.Simulation) error {
		in <- s
		n++
		return nil
	})
	close(in)
	if werr := <-done; err == nil {
		err = werr
	}
	if err == nil {
		e.log.Debug("simulations summarised", "files", len(paths), "count", n)
	}
	return err
}

func (e *env) haplotypes(cmd *cobra.Command, path string) error {
	rc, err := input.Open(path)
	if err != nil {
		return err
	}
	defer rc.Close()

	r, err := ms.NewReader(rc)
	if err != nil {
		return fmt.Errorf("%s: %w", path, err)
	}
	e.log.Debug("ms run", "program", r.Args().Program(), "samples", r.Args().Samples(), "seed", r.Seed())

	in, done := writers.StartSequenceWriter(e.stdout, e.cfg.Output, e.cfg.LineWidth, 64)
	err = ms.ForEach(cmd.Context(), r, func(sim *ms.Simulation) error {
		pops, err := sim.PopulationGenotypes()
		if err != nil {
			return err
		}
		comment := fmt.Sprintf("segsites=%d", sim.Segsites())
		for p, haps := range pops {
			for j, h := range haps {
				in <- fastaRecord(sim.Index(), p+1, j+1, comment, h)
			}
		}
		return nil
	})
	close(in)
	if werr := <-done; err == nil {
		err = werr
	}
	if err != nil {
		return fmt.Errorf("%s: %w", path, err)
	}
	return nil
}
