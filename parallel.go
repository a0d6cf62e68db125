// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/abizip

package abizip

import (
	"runtime"
	"sync"
)

// workerCount resolves the requested parallelism against the chunk count.
// 0 means GOMAXPROCS; the result is always within [1, chunks].
func workerCount(requested, chunks int) int {
	if chunks < 1 {
		return 1
	}

	n := requested
	if n <= 0 {
		n = runtime.GOMAXPROCS(0)
	}

	return max(1, min(n, chunks))
}

// runChunks invokes fn(i) for every chunk index in [0, n). Each index owns
// disjoint input and output ranges and results land in index-addressed
// slots, so no locking is needed and completion order never matters.
func runChunks(n, workers int, fn func(i int)) {
	if n == 0 {
		return
	}

	if workers <= 1 || n == 1 {
		for i := 0; i < n; i++ {
			fn(i)
		}
		return
	}

	var wg sync.WaitGroup
	idx := make(chan int)

	wg.Add(workers)
	for w := 0; w < workers; w++ {
		go func() {
			defer wg.Done()
			for i := range idx {
				fn(i)
			}
		}()
	}

	for i := 0; i < n; i++ {
		idx <- i
	}
	close(idx)
	wg.Wait()
}
