package holes

import "sync"

// runHoleParallel mirrors noding's worker-pool helper: up to workers
// goroutines process independent indices, each writing to its own output
// slot, so the result is independent of scheduling order.
func runHoleParallel(n, workers int, work func(i int)) {
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
