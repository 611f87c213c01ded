// Package prescan configuration constants
package prescan

import "runtime"

// Compute group limits
const (
	// MaxGroupSize bounds the tree scan to one synchronizable compute
	// group, matching the threads-per-block limit of GPU hardware the
	// construction models
	MaxGroupSize = 1024

	// DefaultGroupWorkers is the number of CPU workers simulating one
	// compute group round
	DefaultGroupWorkers = 8
)

// Segmented scan tuning
const (
	// MinSegmentSize below which extra workers stop paying for
	// themselves; automatic worker selection (CumSum) keeps segments at
	// least this long
	MinSegmentSize = 64

	// BroadcastSIMDThreshold is the minimum segment length for which the
	// SIMD offset broadcast path is used by the float fast path
	BroadcastSIMDThreshold = 32
)

// DefaultWorkers returns the worker count used when the caller does not
// choose one. Bounded by available hardware parallelism.
func DefaultWorkers() int {
	return runtime.NumCPU()
}

// clampWorkers bounds a requested worker count to [1, n] so that every
// worker owns at least one element.
func clampWorkers(workers, n int) int {
	if workers < 1 {
		workers = 1
	}
	if workers > n {
		workers = n
	}
	return workers
}
