package batch

import (
	"context"
	"runtime"

	"golang.org/x/sync/errgroup"

	"github.com/Digz0/WordFreq/internal/rarity"
)

// AnalyzeFunc turns one input path into a rarity report.
type AnalyzeFunc func(path string) (*rarity.Report, error)

// Result pairs one input path with its report or failure. A failed file
// never aborts the batch.
type Result struct {
	Path   string
	Report *rarity.Report
	Err    error
}

// Run analyzes paths concurrently with at most workers in flight and
// returns results in input order. workers of 0 or less means NumCPU.
// Analysis is pure, so running files in parallel needs no coordination
// beyond the bounded group.
func Run(ctx context.Context, paths []string, workers int, fn AnalyzeFunc) []Result {
	if len(paths) == 0 || fn == nil {
		return nil
	}
	if workers <= 0 {
		workers = runtime.NumCPU()
		if workers < 1 {
			workers = 1
		}
	}

	results := make([]Result, len(paths))
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)

	for i, path := range paths {
		i, path := i, path
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				results[i] = Result{Path: path, Err: err}
				return nil
			}
			report, err := fn(path)
			results[i] = Result{Path: path, Report: report, Err: err}
			return nil
		})
	}

	_ = g.Wait()
	return results
}
