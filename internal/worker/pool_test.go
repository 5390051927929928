package worker_test

import (
	"sort"
	"strconv"
	"testing"

	"github.com/factflip/backend/internal/worker"
)

func TestPool_RunsEveryJob(t *testing.T) {
	pool := worker.NewPool[int](3, 2)

	go func() {
		for i := 0; i < 10; i++ {
			n := i
			pool.Submit(strconv.Itoa(n), func() int { return n * n })
		}
		pool.Close()
	}()

	var ids []string
	sum := 0
	for res := range pool.Results() {
		ids = append(ids, res.JobID)
		sum += res.Output
	}

	if len(ids) != 10 {
		t.Fatalf("expected 10 results, got %d", len(ids))
	}
	sort.Strings(ids)
	if ids[0] != "0" || ids[9] != "9" {
		t.Errorf("unexpected job IDs: %v", ids)
	}
	if sum != 285 {
		t.Errorf("expected sum of squares 285, got %d", sum)
	}
}

func TestPool_CloseTwice(t *testing.T) {
	pool := worker.NewPool[string](1, 0)
	pool.Close()
	pool.Close()

	if _, ok := <-pool.Results(); ok {
		t.Error("expected results channel to be closed")
	}
}
