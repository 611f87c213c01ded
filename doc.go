// Package prescan provides inclusive prefix-scan primitives over an
// associative operator, with interchangeable execution strategies.
//
// A scan computes all prefix combinations of a sequence:
//
//	output[i] = input[0] ⊕ input[1] ⊕ ... ⊕ input[i]
//
// for a pure, associative ⊕. Four strategies realize the same contract:
//
//   - Sequential: single-pass O(n) reference and correctness oracle
//   - Segmented: multi-core CPU decomposition (local scans, combine,
//     offset broadcast)
//   - Tree: log-depth Hillis-Steele construction over double-buffered
//     group-local storage, bounded by one compute group
//   - WorkEfficient: two-phase upsweep/downsweep with O(n) operator
//     applications
//
// All strategies agree element-wise for exact operators; floating-point
// results agree up to reassociation tolerance (see Verify). The gpu
// subpackage runs the tree construction on an accelerator through WebGPU.
package prescan
