package noding

import "sync"

// runParallel runs work(i) for i in [0, n) using up to workers goroutines.
// Each index is independent and writes to its own output slot, so the
// result does not depend on scheduling order — following the worker-pool
// shape of the teacher's pkg/v1/parallel.go LoadCellsParallel, simplified
// since there is no error to collect here.
func runParallel(n, workers int, work func(i int)) {
	if workers <= 1 || n <= 1 {
		for i := 0; i < n; i++ {
			work(i)
		}
		return
	}
	if workers > n {
		workers = n
	}

	var wg sync.WaitGroup
	indices := make(chan int)

	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := range indices {
				work(i)
			}
		}()
	}

	for i := 0; i < n; i++ {
		indices <- i
	}
	close(indices)
	wg.Wait()
}
