package fft

import "sync"

// cache is the process-wide twiddle/bit-reversal plan cache keyed by FFT
// size. Per spec.md §5 ("Shared-resource policy"), this is the only
// naturally process-wide state in the codec: it is append-only and
// idempotent (two goroutines racing to build the same size both produce
// byte-identical plans), so a sync.Map with a per-key sync.Once is
// sufficient without a single global lock.
var cache sync.Map // size int -> *cacheEntry

type cacheEntry struct {
	once sync.Once
	plan *Plan
	err  error
}

// Shared returns the process-wide cached Plan for size n, building it on
// first use. Callers that would rather own a private, non-shared plan
// (e.g. to keep a buffer pool fully self-contained, per §9 "Global
// caches") should call NewPlan directly instead.
func Shared(n int) (*Plan, error) {
	v, _ := cache.LoadOrStore(n, &cacheEntry{})
	entry := v.(*cacheEntry)
	entry.once.Do(func() {
		entry.plan, entry.err = NewPlan(n)
	})
	return entry.plan, entry.err
}
