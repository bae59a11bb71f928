package solver

import (
	"runtime"

	"golang.org/x/exp/constraints"
	"golang.org/x/sync/errgroup"
)

// MaxBy finds the element with the largest key, evaluating keys on up to
// workers goroutines. Ties go to the earliest element, so the result does not
// depend on scheduling. ok is false for an empty slice.
func MaxBy[T any, K constraints.Ordered](slice []T, workers int, keyFunc func(T) K) (best T, bestKey K, ok bool) {
	if len(slice) == 0 {
		return best, bestKey, false
	}
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}

	keys := make([]K, len(slice))

	var g errgroup.Group
	g.SetLimit(workers)
	for i, item := range slice {
		g.Go(func() error {
			keys[i] = keyFunc(item)
			return nil
		})
	}
	_ = g.Wait()

	best, bestKey = slice[0], keys[0]
	for i := 1; i < len(slice); i++ {
		if keys[i] > bestKey {
			best, bestKey = slice[i], keys[i]
		}
	}
	return best, bestKey, true
}
