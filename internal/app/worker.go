package app

import (
	"context"
	"sync"

	"github.com/vk/samudra/internal/ctxlog"
)

// job is one input of a batch. Results land at the job's index so output
// keeps the input order whatever the worker interleaving.
type job struct {
	index int
	body  string
}

type result struct {
	value any
	err   error
}

// processAll runs every input through a pool of workerCount workers.
func (a *App) processAll(ctx context.Context, lemma string, inputs []string, workerCount int) []result {
	logger := ctxlog.FromContext(ctx)
	if workerCount < 1 {
		workerCount = 1
	}
	if workerCount > len(inputs) {
		workerCount = len(inputs)
	}

	results := make([]result, len(inputs))
	jobs := make(chan job)
	var wg sync.WaitGroup

	logger.Debug("Starting workers.", "count", workerCount, "inputs", len(inputs))
	for i := 1; i <= workerCount; i++ {
		wg.Add(1)
		go func(workerID int) {
			defer wg.Done()
			a.worker(ctx, lemma, jobs, results, workerID)
		}(i)
	}

	for i, body := range inputs {
		jobs <- job{index: i, body: body}
	}
	close(jobs)
	wg.Wait()
	return results
}

// worker is the processing loop for a single concurrent worker. Each job
// writes only its own slot of results.
func (a *App) worker(ctx context.Context, lemma string, jobs <-chan job, results []result, workerID int) {
	logger := ctxlog.FromContext(ctx)
	logger.Debug("Worker started.", "workerID", workerID)

	for j := range jobs {
		jobCtx, _ := ctxlog.With(ctx, "workerID", workerID, "input", j.index+1)
		if err := ctx.Err(); err != nil {
			results[j.index] = result{err: err}
			continue
		}
		value, err := a.process(jobCtx, lemma, j.body)
		results[j.index] = result{value: value, err: err}
	}
	logger.Debug("Worker finished.", "workerID", workerID)
}
