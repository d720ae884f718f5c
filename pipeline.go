package ribbon

import "sync"

// forEach runs fn for every index in [0, size) across workersCount
// goroutines, splitting the range into contiguous chunks. It returns only
// once all workers have finished, so callers can rely on every result being
// written before the next phase reads it.
func forEach(workersCount, size int, fn func(i int)) {
	var wg sync.WaitGroup
	chunkSize := (size + workersCount - 1) / workersCount

	for workerID := 0; workerID < workersCount; workerID++ {
		wg.Add(1)
		go func(start, end int) {
			defer wg.Done()
			for i := start; i < end; i++ {
				fn(i)
			}
		}(workerID*chunkSize, min((workerID+1)*chunkSize, size))
	}
	wg.Wait()
}
