// Package worker runs a bounded fan-out over a fixed set of tasks and
// reports per-task outcomes, so one failing item never aborts the batch.
package worker

import (
	"context"
	"sync"
)

type Task func(ctx context.Context) error

type Result struct {
	Index int
	Err   error
}

// Run executes the tasks on at most `workers` goroutines and returns one
// Result per task, ordered by task index. A cancelled context marks the
// remaining tasks with ctx.Err() instead of running them.
func Run(ctx context.Context, workers int, tasks []Task) []Result {
	if workers <= 0 {
		workers = 1
	}
	if workers > len(tasks) {
		workers = len(tasks)
	}

	results := make([]Result, len(tasks))
	indexes := make(chan int)

	var wg sync.WaitGroup
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := range indexes {
				if err := ctx.Err(); err != nil {
					results[i] = Result{Index: i, Err: err}
					continue
				}
				results[i] = Result{Index: i, Err: tasks[i](ctx)}
			}
		}()
	}

	for i := range tasks {
		indexes <- i
	}
	close(indexes)
	wg.Wait()

	return results
}
