package prescan

import (
	"fmt"
	"sync"
	"unsafe"
)

// TreeScan computes the inclusive prefix scan with the Hillis-Steele
// step-doubling construction: ceil(log2(n)) rounds, each combining every
// element with the one `offset` positions to its left, offset doubling per
// round.
//
// The working state is a pair of group-local buffers (2n elements). Each
// round reads one buffer and writes the other; the roles swap between
// rounds. Workers do not run in lock-step, so collapsing to a single
// buffer would let a worker read a peer's current-round write instead of
// the previous-round value. The wait at the end of every round is the
// barrier: no worker starts round r+1 before all have finished round r.
//
// Input and output must not share storage. The construction is valid only
// within one synchronizable compute group, so n is capped at MaxGroupSize;
// the multi-group generalization is a second combine level this package
// does not implement. Work complexity is O(n log n) operator applications,
// a known trade-off against WorkEfficient.
func TreeScan[T any](op Operator[T], input, output []T) error {
	_, err := treeScan(op, input, output)
	return err
}

// treeScan additionally reports the number of synchronization rounds.
func treeScan[T any](op Operator[T], input, output []T) (rounds int, err error) {
	const opName = "TreeScan"
	if err := checkArgs(opName, input, output); err != nil {
		return 0, err
	}
	if slicesOverlap(input, output) {
		return 0, NewAliasingError(opName)
	}
	n := len(input)
	if n > MaxGroupSize {
		return 0, NewExecutionError(opName,
			fmt.Sprintf("input length %d exceeds one compute group (max %d)", n, MaxGroupSize), nil)
	}

	// Ping/pong buffers standing in for group-local shared memory.
	ping := make([]T, n)
	pong := make([]T, n)
	copy(ping, input)

	src, dst := ping, pong
	for offset := 1; offset < n; offset <<= 1 {
		in, out, off := src, dst, offset
		runGroupRound(n, func(i int) {
			if i >= off {
				out[i] = op(in[i-off], in[i])
			} else {
				// Prefix already settled in an earlier round.
				out[i] = in[i]
			}
		})
		src, dst = dst, src
		rounds++
	}

	copy(output, src)
	return rounds, nil
}

// runGroupRound applies kernel to every index in [0, n) across a fixed
// pool of goroutines and returns only once all of them have finished.
func runGroupRound(n int, kernel func(i int)) {
	workers := DefaultGroupWorkers
	if n < workers {
		workers = n
	}
	per := (n + workers - 1) / workers

	var wg sync.WaitGroup
	wg.Add(workers)
	for w := 0; w < workers; w++ {
		start := w * per
		end := start + per
		if end > n {
			end = n
		}
		go func(start, end int) {
			defer wg.Done()
			for i := start; i < end; i++ {
				kernel(i)
			}
		}(start, end)
	}
	wg.Wait()
}

// slicesOverlap reports whether two slices share any backing storage.
func slicesOverlap[T any](a, b []T) bool {
	if len(a) == 0 || len(b) == 0 {
		return false
	}
	var zero T
	size := uintptr(unsafe.Sizeof(zero))
	aStart := uintptr(unsafe.Pointer(unsafe.SliceData(a)))
	bStart := uintptr(unsafe.Pointer(unsafe.SliceData(b)))
	aEnd := aStart + uintptr(len(a))*size
	bEnd := bStart + uintptr(len(b))*size
	return aStart < bEnd && bStart < aEnd
}
