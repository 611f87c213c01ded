package prescan

import "math/bits"

// partial is an element with a synthesized identity: a zero partial acts
// as ⊕'s identity without requiring the operator to have one. Absent
// values only ever appear in the working tree and are merged away before
// results reach the caller.
type partial[T any] struct {
	val T
	ok  bool
}

func combine[T any](op Operator[T], a, b partial[T]) partial[T] {
	if !a.ok {
		return b
	}
	if !b.ok {
		return a
	}
	return partial[T]{val: op(a.val, b.val), ok: true}
}

// WorkEfficientScan computes the inclusive prefix scan with the two-phase
// upsweep/downsweep construction over an implicit balanced binary tree.
//
// The upsweep reduces adjacent pairs bottom-up, the root is replaced with
// the synthesized identity, and the downsweep propagates prefixes top-down
// swapping left and right partial sums. This yields the exclusive scan in
// O(n) operator applications; a final combine with the input makes it
// inclusive. The working tree is padded to the next power of two with
// absent elements, so n need not be a power of two. Input and output must
// not share storage.
func WorkEfficientScan[T any](op Operator[T], input, output []T) error {
	if err := checkArgs("WorkEfficientScan", input, output); err != nil {
		return err
	}
	if slicesOverlap(input, output) {
		return NewAliasingError("WorkEfficientScan")
	}

	n := len(input)
	m := 1 << bits.Len(uint(n-1))

	tree := make([]partial[T], m)
	for i, v := range input {
		tree[i] = partial[T]{val: v, ok: true}
	}

	// Upsweep: pairwise reduce bottom-up.
	for stride := 1; stride < m; stride <<= 1 {
		for i := 2*stride - 1; i < m; i += 2 * stride {
			tree[i] = combine(op, tree[i-stride], tree[i])
		}
	}

	// The root's total is replaced with the identity before descending.
	tree[m-1] = partial[T]{}

	// Downsweep: (L, R) -> (R, L ⊕ R), where the node carries the prefix
	// of everything left of its subtree.
	for stride := m / 2; stride >= 1; stride >>= 1 {
		for i := 2*stride - 1; i < m; i += 2 * stride {
			left := tree[i-stride]
			incoming := tree[i]
			tree[i-stride] = incoming
			tree[i] = combine(op, incoming, left)
		}
	}

	// tree[i] now holds the exclusive prefix of i; fold the input back in
	// to produce the inclusive scan.
	for i := 0; i < n; i++ {
		if p := tree[i]; p.ok {
			output[i] = op(p.val, input[i])
		} else {
			output[i] = input[i]
		}
	}
	return nil
}
