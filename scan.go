package prescan

// Operator is a pure, associative binary function over the element type.
// Commutativity is not required. Implementations must be safe to invoke
// concurrently from multiple workers and free of externally visible side
// effects.
type Operator[T any] func(a, b T) T

// Strategy selects how a scan is executed.
type Strategy int

const (
	// Sequential is the single-pass O(n) reference strategy. It doubles
	// as the correctness oracle for the parallel strategies and is the
	// only strategy that permits output to alias input.
	Sequential Strategy = iota

	// Segmented partitions the input across CPU workers: per-segment
	// local scans, a sequential combine over per-worker totals, then a
	// parallel offset broadcast.
	Segmented

	// Tree is the log-depth Hillis-Steele construction over a
	// double-buffered working array, limited to one compute group of at
	// most MaxGroupSize elements. O(n log n) operator applications.
	Tree

	// WorkEfficient is the two-phase upsweep/downsweep construction with
	// O(n) operator applications. Identity values are synthesized
	// internally, so the operator needs none.
	WorkEfficient
)

// String returns the strategy name
func (s Strategy) String() string {
	switch s {
	case Sequential:
		return "Sequential"
	case Segmented:
		return "Segmented"
	case Tree:
		return "Tree"
	case WorkEfficient:
		return "WorkEfficient"
	default:
		return "Unknown"
	}
}

// Scan computes the inclusive prefix scan of input into output using the
// given strategy. Input is never modified (unless output aliases it, which
// only Sequential allows). On failure the contents of output are
// unspecified but no element outside output is touched, and no partially
// successful result is reported as success.
func Scan[T any](strategy Strategy, op Operator[T], input, output []T) error {
	switch strategy {
	case Sequential:
		return SequentialScan(op, input, output)
	case Segmented:
		return SegmentedScan(op, input, output, DefaultWorkers())
	case Tree:
		return TreeScan(op, input, output)
	case WorkEfficient:
		return WorkEfficientScan(op, input, output)
	default:
		return ErrUnknownStrategy
	}
}

// checkArgs validates the common call contract shared by every strategy.
func checkArgs[T any](op string, input, output []T) error {
	if len(input) == 0 {
		return NewEmptyInputError(op)
	}
	if len(output) != len(input) {
		return NewLengthMismatchError(op, len(input), len(output))
	}
	return nil
}
