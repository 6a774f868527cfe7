package pipeline

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/goliatone/go-formsynth/pkg/layout"
)

type job struct {
	index      int
	name       string
	layout     layout.Layout
	layoutPath string
}

// renderAll renders jobs on cfg.Workers goroutines. Results keep job order;
// failed jobs are left out. Errors from renders cut short by cancellation are
// not reported as failures.
func (p *Pipeline) renderAll(ctx context.Context, jobs []job) ([]Result, error) {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	workers := p.cfg.Workers
	if workers < 1 {
		workers = 1
	}
	if workers > len(jobs) {
		workers = len(jobs)
	}

	results := make([]*Result, len(jobs))
	errs := make([]error, len(jobs))
	queue := make(chan job)

	var wg sync.WaitGroup
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := range queue {
				res, err := p.Render(ctx, j.name, j.layout)
				if err != nil {
					if ctx.Err() != nil {
						// interrupted by cancellation, not a failure of this layout
						p.logger.Debug("render interrupted", "layout", j.layoutPath, "error", err)
						continue
					}
					errs[j.index] = fmt.Errorf("pipeline: layout %s: %w", j.layoutPath, err)
					p.logger.Error("render failed", "layout", j.layoutPath, "error", err)
					if !p.cfg.ContinueOnError {
						cancel()
					}
					continue
				}
				res.LayoutPath = j.layoutPath
				results[j.index] = &res
			}
		}()
	}

dispatch:
	for i, j := range jobs {
		j.index = i
		select {
		case <-ctx.Done():
			break dispatch
		case queue <- j:
		}
	}
	close(queue)
	wg.Wait()

	out := make([]Result, 0, len(jobs))
	for _, res := range results {
		if res != nil {
			out = append(out, *res)
		}
	}

	var failures []error
	for _, err := range errs {
		if err != nil {
			failures = append(failures, err)
		}
	}
	if len(failures) == 0 {
		if err := ctx.Err(); err != nil && len(out) < len(jobs) {
			return out, err
		}
	}
	return out, errors.Join(failures...)
}
