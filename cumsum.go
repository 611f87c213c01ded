package prescan

import (
	"github.com/ajroetker/go-highway/hwy"
)

// CumSum computes the cumulative sum output[i] = input[0] + ... + input[i]
// for floating-point elements.
//
// It is the segmented strategy specialized to addition: worker count is
// sized so segments stay at least MinSegmentSize long, and on hardware
// with a vector unit the offset broadcast runs through a SIMD
// constant-add kernel instead of the scalar loop. Results carry the usual
// floating-point reassociation caveat relative to SequentialScan.
func CumSum[T hwy.Floats](input, output []T) error {
	add := func(a, b T) T { return a + b }

	n := len(input)
	workers := clampWorkers(DefaultWorkers(), n)
	if workers > 1 && n/workers < MinSegmentSize {
		workers = n / MinSegmentSize
		if workers < 1 {
			workers = 1
		}
	}

	var broadcast func(offset T, seg []T)
	if HasSIMD() && n >= BroadcastSIMDThreshold {
		broadcast = addConstBroadcast[T]
	}

	return segmentedScan(add, input, output, workers, broadcast)
}
