package rpn

import (
	"fmt"
	"math/big"

	"gopkg.in/errgo.v1"
)

type genericOp[T any] struct {
	numIn int
	f     func(m *machine[T]) error
}

// opTable returns the words understood by the domain d.
// The endian words are only present when d implements
// EndianDomain.
func opTable[T any](d Domain[T]) map[string]genericOp[T] {
	ops := map[string]genericOp[T]{
		"add":  binary(d.Add),
		"sub":  binary(d.Sub),
		"mul":  binary(d.Mul),
		"div":  binary(d.Div),
		":add": reduceAll(d.Add),
		":sub": reduceAll(d.Sub),
		":mul": reduceAll(d.Mul),
		":div": reduceAll(d.Div),
		"pop":  {1, popOp[T]},
		".":    {1, popPrint[T]},
		":.":   {0, popPrintAll[T]},
	}
	if ed, ok := d.(EndianDomain[T]); ok {
		ops["endian"] = genericOp[T]{2, func(m *machine[T]) error {
			return endian(m, ed)
		}}
		ops[":endian"] = genericOp[T]{1, func(m *machine[T]) error {
			return endianAll(m, ed)
		}}
	}
	return ops
}

// binary returns an operator that replaces the top two
// values b a with f(b, a).
func binary[T any](f func(x, y T) (T, error)) genericOp[T] {
	return genericOp[T]{2, func(m *machine[T]) error {
		args, err := m.s.top(2)
		if err != nil {
			return err
		}
		r, err := f(args[0], args[1])
		if err != nil {
			return err
		}
		m.s.drop(2)
		m.s.push(r)
		return nil
	}}
}

// reduceAll returns an operator that replaces the whole
// stack with its reduction by f.
func reduceAll[T any](f func(x, y T) (T, error)) genericOp[T] {
	return genericOp[T]{2, func(m *machine[T]) error {
		if err := m.s.need(2); err != nil {
			return err
		}
		r, err := reduce(m.s.items, f)
		if err != nil {
			return err
		}
		m.s.items = m.s.items[:0]
		m.s.push(r)
		return nil
	}}
}

func popOp[T any](m *machine[T]) error {
	_, err := m.s.pop()
	return err
}

func popPrint[T any](m *machine[T]) error {
	x, err := m.s.pop()
	if err != nil {
		return err
	}
	if _, err := fmt.Fprintln(m.out, m.d.Format(x)); err != nil {
		return errgo.Notef(err, "cannot print")
	}
	return nil
}

func popPrintAll[T any](m *machine[T]) error {
	for len(m.s.items) > 0 {
		if err := popPrint(m); err != nil {
			return err
		}
	}
	return nil
}

var (
	bigOne            = big.NewInt(1)
	bigMaxEndianWidth = big.NewInt(maxEndianWidth)
)

// endianWidth validates the width operand on the top of the stack
// without removing it.
func endianWidth[T any](m *machine[T], d EndianDomain[T]) (int, error) {
	x, err := m.s.peek()
	if err != nil {
		return 0, err
	}
	w := d.Int(x)
	if w.Cmp(bigOne) < 0 || w.Cmp(bigMaxEndianWidth) > 0 {
		return 0, &EndianWidthError{Width: w}
	}
	return int(w.Int64()), nil
}

// endian pops a width and a value and pushes the value
// with its low-order width bytes reversed.
func endian[T any](m *machine[T], d EndianDomain[T]) error {
	w, err := endianWidth(m, d)
	if err != nil {
		return err
	}
	if err := m.s.need(2); err != nil {
		return err
	}
	m.s.drop(1)
	x, _ := m.s.pop()
	m.s.push(d.SwapLow(x, w))
	return nil
}

// endianAll pops a width and reverses the low-order width
// bytes of every remaining value in place.
func endianAll[T any](m *machine[T], d EndianDomain[T]) error {
	w, err := endianWidth(m, d)
	if err != nil {
		return err
	}
	m.s.drop(1)
	for i, x := range m.s.items {
		m.s.items[i] = d.SwapLow(x, w)
	}
	return nil
}
