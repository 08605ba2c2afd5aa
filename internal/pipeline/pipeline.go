// internal/pipeline/pipeline.go
package pipeline

import (
	"context"
	"fmt"
	"runtime"

	"golang.org/x/sync/errgroup"

	"popseq/core/ms"
	"popseq/internal/input"
	"popseq/internal/summary"
)

// Config controls the scanning pipeline.
type Config struct {
	Workers int             // files parsed concurrently; <1 means GOMAXPROCS
	Summary summary.Options // forwarded to summary.FromSimulation

	// Warn, if set, receives non-fatal findings, in input order.
	Warn func(file, msg string)
}

type fileResult struct {
	sims  []summary.Simulation
	warns []string
}

// SummarizeFiles parses every path as ms output and calls visit for each
// simulation, file by file in the order given. Files are parsed concurrently
// but visit is only ever called from the calling goroutine. It returns the
// first error encountered (including context cancellation).
func SummarizeFiles(ctx context.Context, cfg Config, paths []string, visit func(summary.Simulation) error) error {
	workers := cfg.Workers
	if workers < 1 {
		workers = runtime.GOMAXPROCS(0)
	}

	parent := ctx
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)

	results := make([]fileResult, len(paths))
	ready := make([]chan struct{}, len(paths))
	for i := range ready {
		ready[i] = make(chan struct{})
	}

	launched := make(chan struct{})
	go func() {
		defer close(launched)
		for i, p := range paths {
			g.Go(func() error {
				defer close(ready[i])
				res, err := summarizeFile(gctx, p, cfg.Summary)
				results[i] = res
				return err
			})
		}
	}()

	finish := func(err error) error {
		cancel()
		<-launched
		if werr := g.Wait(); err == nil {
			err = werr
		}
		if err == nil {
			err = parent.Err()
		}
		return err
	}

	for i, p := range paths {
		select {
		case <-ready[i]:
		case <-gctx.Done():
			return finish(nil)
		}
		if cfg.Warn != nil {
			for _, w := range results[i].warns {
				cfg.Warn(p, w)
			}
		}
		for _, s := range results[i].sims {
			if err := visit(s); err != nil {
				return finish(err)
			}
		}
		results[i] = fileResult{}
	}
	<-launched
	if err := g.Wait(); err != nil {
		return err
	}
	return parent.Err()
}

func summarizeFile(ctx context.Context, path string, opt summary.Options) (fileResult, error) {
	rc, err := input.Open(path)
	if err != nil {
		return fileResult{}, err
	}
	defer rc.Close()

	r, err := ms.NewReader(rc)
	if err != nil {
		return fileResult{}, fmt.Errorf("%s: %w", path, err)
	}

	var res fileResult
	err = ms.ForEach(ctx, r, func(sim *ms.Simulation) error {
		s, warns, err := summary.FromSimulation(path, sim, opt)
		if err != nil {
			return err
		}
		res.sims = append(res.sims, s)
		res.warns = append(res.warns, warns...)
		return nil
	})
	if err != nil {
		return fileResult{}, fmt.Errorf("%s: %w", path, err)
	}
	if n := len(res.sims); n != r.Args().Replicates() {
		res.warns = append(res.warns, fmt.Sprintf("%d simulations read, command line asks for %d", n, r.Args().Replicates()))
	}
	return res, nil
}
