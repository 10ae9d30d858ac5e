package calculator

import (
	"sync/atomic"
	"testing"
)

func TestExecutor_SplitTasks(t *testing.T) {
	for _, workers := range []int{1, 3, 4, 16} {
		e := newExecutor(workers)
		for _, total := range []int{0, 1, 5, 25, 30, 101} {
			tasks := e.splitTasks(total)
			next := 0
			for _, task := range tasks {
				if task.start != next || task.end <= task.start {
					t.Fatalf("workers=%d total=%d: bad task %+v", workers, total, task)
				}
				next = task.end
			}
			if next != total {
				t.Fatalf("workers=%d total=%d: covered [0,%d)", workers, total, next)
			}
		}
	}
}

func TestExecutor_DispatchTask(t *testing.T) {
	e := newExecutor(4)
	visits := make([]int32, 57)
	e.dispatchTask(len(visits), func(start, end int) {
		for i := start; i < end; i++ {
			atomic.AddInt32(&visits[i], 1)
		}
	})
	for i, v := range visits {
		if v != 1 {
			t.Fatalf("index %d visited %d times", i, v)
		}
	}
}

func TestNewExecutor_DefaultWorkers(t *testing.T) {
	if e := newExecutor(0); e.workers < 1 {
		t.Fatalf("workers = %d", e.workers)
	}
}
