// Package parallel provides data-parallel loops over index ranges.
package parallel

import (
	"runtime"
	"sync"
)

// Config controls parallel execution behavior.
type Config struct {
	Enabled      bool // Whether parallel execution is enabled.
	NumWorkers   int  // Number of worker goroutines to use.
	MinChunkSize int  // Minimum items per goroutine to avoid overhead.
}

// DefaultConfig returns sensible defaults based on CPU count.
func DefaultConfig() Config {
	n := runtime.NumCPU()
	return Config{
		Enabled:      n > 1,
		NumWorkers:   n,
		MinChunkSize: 64, // Typical cache line aware chunk.
	}
}

// Sequential returns a config that always runs on the calling goroutine.
func Sequential() Config {
	return Config{Enabled: false, NumWorkers: 1, MinChunkSize: 1}
}

// chunkSize returns the sub-range length for n items, or 0 when the loop
// should run sequentially.
func (cfg Config) chunkSize(n int) int {
	if !cfg.Enabled || cfg.NumWorkers <= 1 || n < cfg.MinChunkSize {
		return 0
	}
	return max((n+cfg.NumWorkers-1)/cfg.NumWorkers, cfg.MinChunkSize, 1)
}

// For executes f(i) for i in [0, n) with optional parallelism.
// Falls back to sequential execution if parallelism is disabled or n is too small.
func For(n int, f func(i int), cfg Config) {
	ForRange(0, n, func(start, stop int) {
		for i := start; i < stop; i++ {
			f(i)
		}
	}, cfg)
}

// ForRange splits [start, stop) into contiguous sub-ranges and calls f once
// per sub-range. Sub-ranges are disjoint and cover the whole interval.
// With parallelism disabled f is called once with the full interval.
func ForRange(start, stop int, f func(start, stop int), cfg Config) {
	n := stop - start
	if n <= 0 {
		return
	}

	chunk := cfg.chunkSize(n)
	if chunk == 0 || chunk >= n {
		f(start, stop)
		return
	}

	var wg sync.WaitGroup
	for s := start; s < stop; s += chunk {
		e := min(s+chunk, stop)
		wg.Add(1)
		go func(s, e int) {
			defer wg.Done()
			f(s, e)
		}(s, e)
	}
	wg.Wait()
}
