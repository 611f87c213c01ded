package prescan

// SequentialScan computes the inclusive prefix scan in a single
// left-to-right pass: output[0] = input[0], then
// output[i] = op(output[i-1], input[i]).
//
// This is the reference strategy the parallel ones are checked against.
// Output may alias input: each element is read before the position is
// written, so scanning in place is safe.
func SequentialScan[T any](op Operator[T], input, output []T) error {
	if err := checkArgs("SequentialScan", input, output); err != nil {
		return err
	}

	acc := input[0]
	output[0] = acc
	for i := 1; i < len(input); i++ {
		acc = op(acc, input[i])
		output[i] = acc
	}
	return nil
}
