package compile

import (
	"context"
	"fmt"
	"runtime"

	"golang.org/x/sync/errgroup"
	"golang.org/x/sync/semaphore"
)

// Driver compiles many files in parallel. Files are independent: each one
// owns its tree and its diagnostics.
type Driver struct {
	Options

	// Jobs bounds the number of files compiled at once. Zero means one per
	// CPU.
	Jobs int
}

// Run compiles files and returns one result per file in input order. The
// result of a file that was never started is nil.
// Cancelling ctx stops scheduling new files; files already started run to
// completion. The error wraps ErrFailed when any file failed.
func (d *Driver) Run(ctx context.Context, files []string) ([]*Result, error) {
	jobs := d.Jobs
	if jobs <= 0 {
		jobs = runtime.GOMAXPROCS(0)
	}
	sem := semaphore.NewWeighted(int64(jobs))
	results := make([]*Result, len(files))

	g, gctx := errgroup.WithContext(ctx)
	for i, path := range files {
		if err := sem.Acquire(gctx, 1); err != nil {
			break
		}
		g.Go(func() error {
			defer sem.Release(1)
			results[i] = File(path, d.Options)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return results, err
	}
	if err := ctx.Err(); err != nil {
		return results, fmt.Errorf("compile: %w", err)
	}

	failed := 0
	for _, r := range results {
		if r.Failed() {
			failed++
		}
	}
	log.Infof("compiled %d files, %d failed", len(files), failed)
	if failed > 0 {
		return results, fmt.Errorf("%w: %d of %d files", ErrFailed, failed, len(files))
	}
	return results, nil
}
