package prescan

import (
	"fmt"

	"golang.org/x/sync/errgroup"
)

// SegmentedScan computes the inclusive prefix scan using w CPU workers.
//
// The input is split into w contiguous segments of floor(n/w) elements,
// the last absorbing the remainder. Stage 1 runs an independent local scan
// per segment and records each segment's total. Stage 2 scans the totals
// sequentially, turning them into running offsets; it completes before any
// worker proceeds, acting as the barrier between the parallel stages.
// Stage 3 combines each segment (except the first) with its offset in
// parallel.
//
// Worker counts outside [1, n] are clamped. Input and output must not
// share storage; only SequentialScan scans in place. A worker that panics
// aborts the whole call with a single WorkerFailure error; the output
// buffer is then unspecified.
func SegmentedScan[T any](op Operator[T], input, output []T, workers int) error {
	return segmentedScan(op, input, output, workers, nil)
}

// segmentedScan is SegmentedScan with a pluggable Stage 3 kernel. A nil
// broadcast combines with op element by element; the float fast path
// substitutes a SIMD constant-add.
func segmentedScan[T any](op Operator[T], input, output []T, workers int, broadcast func(offset T, seg []T)) error {
	const opName = "SegmentedScan"
	if err := checkArgs(opName, input, output); err != nil {
		return err
	}
	if slicesOverlap(input, output) {
		return NewAliasingError(opName)
	}

	n := len(input)
	w := clampWorkers(workers, n)
	if w == 1 {
		return SequentialScan(op, input, output)
	}

	bounds := segmentBounds(n, w)
	partials := make([]T, w)

	// Stage 1: local scan per segment, no cross-worker dependency.
	var g errgroup.Group
	for k := 0; k < w; k++ {
		k := k
		g.Go(func() (err error) {
			defer capturePanic(opName, k, &err)
			lo, hi := bounds[k], bounds[k+1]
			if serr := SequentialScan(op, input[lo:hi], output[lo:hi]); serr != nil {
				return NewWorkerError(opName, k, serr)
			}
			partials[k] = output[hi-1]
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}

	// Stage 2: single-threaded scan over the per-worker totals.
	// partials[k-1] becomes worker k's offset.
	if err := SequentialScan(op, partials, partials); err != nil {
		return err
	}

	// Stage 3: offset broadcast, again parallel across workers. Worker 0
	// has no offset and is already final.
	for k := 1; k < w; k++ {
		k := k
		g.Go(func() (err error) {
			defer capturePanic(opName, k, &err)
			offset := partials[k-1]
			seg := output[bounds[k]:bounds[k+1]]
			if broadcast != nil {
				broadcast(offset, seg)
				return nil
			}
			for i := range seg {
				seg[i] = op(offset, seg[i])
			}
			return nil
		})
	}
	return g.Wait()
}

// segmentBounds returns w+1 offsets delimiting contiguous segments that
// cover [0, n) exactly: equal floor(n/w) lengths, remainder to the last.
func segmentBounds(n, w int) []int {
	size := n / w
	bounds := make([]int, w+1)
	for k := 1; k < w; k++ {
		bounds[k] = k * size
	}
	bounds[w] = n
	return bounds
}

// capturePanic converts a worker panic into a WorkerFailure error so the
// call fails atomically instead of tearing down the process.
func capturePanic(op string, worker int, err *error) {
	if r := recover(); r != nil {
		*err = NewWorkerError(op, worker, fmt.Errorf("panic: %v", r))
	}
}
