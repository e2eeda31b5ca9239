package rpn

import "gopkg.in/errgo.v1"

type stack[T any] struct {
	items []T
}

// need checks that at least n items are on the stack.
func (s *stack[T]) need(n int) error {
	if len(s.items) < n {
		return errgo.Mask(ErrStackUnderflow, errgo.Any)
	}
	return nil
}

func (s *stack[T]) push(x T) {
	s.items = append(s.items, x)
}

// top returns the top n items without removing them,
// deepest first.
func (s *stack[T]) top(n int) ([]T, error) {
	if err := s.need(n); err != nil {
		return nil, err
	}
	return s.items[len(s.items)-n:], nil
}

func (s *stack[T]) peek() (T, error) {
	v, err := s.top(1)
	if err != nil {
		var zero T
		return zero, err
	}
	return v[0], nil
}

// drop removes the top n items, which must be present.
func (s *stack[T]) drop(n int) {
	s.items = s.items[0 : len(s.items)-n]
}

func (s *stack[T]) pop() (T, error) {
	x, err := s.peek()
	if err != nil {
		return x, err
	}
	s.drop(1)
	return x, nil
}
