package calculator

import (
	"runtime"
	"sync"
	"time"
)

// 基于切片（x 方向）的任务分配
type executor struct {
	workers int
}

type task struct {
	start int
	end   int
}

func newExecutor(workers int) *executor {
	if workers <= 0 {
		workers = runtime.NumCPU()
	}
	return &executor{workers: workers}
}

// splitTasks cuts [0, total) into contiguous tasks, about two per worker so
// that a slow slice does not leave the other workers idle.
func (e *executor) splitTasks(total int) []task {
	if total <= 0 {
		return nil
	}
	n := e.workers * 2
	if n > total {
		n = total
	}
	taskLen, remainder := total/n, total%n
	tasks := make([]task, 0, n)
	start := 0
	for i := 0; i < n; i++ {
		end := start + taskLen
		if i < remainder {
			end++
		}
		tasks = append(tasks, task{start: start, end: end})
		start = end
	}
	return tasks
}

// dispatchTask runs f over [0, total) on the worker pool and blocks until
// every task is finished. f must only touch state owned by its own range.
func (e *executor) dispatchTask(total int, f func(start, end int)) time.Duration {
	start := time.Now()
	tasks := e.splitTasks(total)
	if len(tasks) == 0 {
		return time.Since(start)
	}

	workers := e.workers
	if workers > len(tasks) {
		workers = len(tasks)
	}
	dispatchChan := make(chan task, len(tasks))
	for _, t := range tasks {
		dispatchChan <- t
	}
	close(dispatchChan)

	var wg sync.WaitGroup
	wg.Add(workers)
	for i := 0; i < workers; i++ {
		go func() {
			defer wg.Done()
			for t := range dispatchChan {
				f(t.start, t.end)
			}
		}()
	}
	wg.Wait()
	return time.Since(start)
}
