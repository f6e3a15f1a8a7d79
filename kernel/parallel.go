package kernel

import (
	"runtime"
	"sync"

	"github.com/ieee0824/matbench-go/matrix"
)

// Parallel hands output rows to a pool of goroutines. Each row is computed
// exactly as Naive computes it and rows are disjoint, so the result is
// identical to Naive.
type Parallel struct {
	Workers int // <= 0 selects runtime.GOMAXPROCS(0)
}

func (Parallel) Name() string { return "parallel" }

func (s Parallel) Multiply(a, b *matrix.Matrix) (*matrix.Matrix, error) {
	c, err := prepare(a, b)
	if err != nil {
		return nil, err
	}
	np := s.Workers
	if np <= 0 {
		np = runtime.GOMAXPROCS(0)
	}
	np = min(np, a.N)

	work := make(chan int)
	go func() {
		for i := 0; i < a.N; i++ {
			work <- i
		}
		close(work)
	}()

	var wg sync.WaitGroup
	for w := 0; w < np; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := range work {
				naiveRow(a, b, c, i)
			}
		}()
	}
	wg.Wait()
	return c, nil
}
