package rpn

// reduce folds vals, ordered from the bottom of the stack to the top,
// into a single value. The two topmost values seed the accumulator
// with f(b, a), where a is the top; then each remaining value v, taken
// from the top down, replaces the accumulator with f(v, acc). So
// reducing [v1 v2 v3] computes f(v1, f(v2, v3)).
//
// There must be at least two values.
func reduce[T any](vals []T, f func(x, y T) (T, error)) (T, error) {
	n := len(vals)
	acc, err := f(vals[n-2], vals[n-1])
	if err != nil {
		return acc, err
	}
	for i := n - 3; i >= 0; i-- {
		acc, err = f(vals[i], acc)
		if err != nil {
			return acc, err
		}
	}
	return acc, nil
}
