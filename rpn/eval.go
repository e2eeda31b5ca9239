// Package rpn implements a reverse-Polish calculator.
//
// An Evaluator reads words one at a time. Numbers are pushed
// onto a stack; operators pop their operands off it and push
// their results. The operand deepest in the stack is the left
// operand, so
//
//	1 2 3 sub
//
// leaves 1 -1. The words are:
//
//	add sub mul div       pop two values, push b op a
//	:add :sub :mul :div   reduce the whole stack to one value
//	endian                pop a width w in [1, 8] and a value; push the
//	                      value with its low-order w bytes reversed
//	:endian               pop a width and swap every remaining value
//	pop                   discard the top value
//	.                     pop and print the top value
//	:.                    pop and print until the stack is empty
//
// The endian words exist only in integer domains (see EndianDomain).
package rpn

import (
	"fmt"
	"io"
	"sort"

	"gopkg.in/errgo.v1"

	"github.com/rogpeppe/qc/lex"
)

// Evaluator evaluates RPN programs over the values of a Domain.
// Each call to Evaluate starts with an empty stack.
type Evaluator[T any] struct {
	domain Domain[T]
	ops    map[string]genericOp[T]

	// Out receives the lines printed by the "." and ":." words.
	// If it is nil, printed values are discarded.
	Out io.Writer

	// Trace, if non-nil, is called after each token has been
	// processed, with the stack contents from the bottom up.
	// The slice is only valid for the duration of the call.
	Trace func(tok string, stack []T)
}

// New returns an Evaluator for the given domain.
func New[T any](d Domain[T]) *Evaluator[T] {
	return &Evaluator[T]{
		domain: d,
		ops:    opTable(d),
	}
}

// Domain returns the domain the evaluator was created with.
func (e *Evaluator[T]) Domain() Domain[T] {
	return e.domain
}

// machine holds the state of a single evaluation.
type machine[T any] struct {
	d   Domain[T]
	s   stack[T]
	out io.Writer
}

// Evaluate runs the given tokens in order and returns the final stack,
// bottom first. It stops at the first error; the stack is then
// discarded. The returned error has the position and text of the
// failing token as context and one of ErrStackUnderflow,
// ErrDivideByZero, ErrOverflow, *ParseError or *EndianWidthError
// as its cause.
func (e *Evaluator[T]) Evaluate(tokens []string) ([]T, error) {
	m := &machine[T]{
		d:   e.domain,
		s:   stack[T]{items: make([]T, 0, len(tokens))},
		out: e.Out,
	}
	if m.out == nil {
		m.out = io.Discard
	}
	for i, tok := range tokens {
		if err := e.exec(m, tok); err != nil {
			return nil, errgo.NoteMask(err, fmt.Sprintf("token %d %q", i+1, tok), errgo.Any)
		}
		if e.Trace != nil {
			e.Trace(tok, m.s.items)
		}
	}
	return m.s.items, nil
}

func (e *Evaluator[T]) exec(m *machine[T], tok string) error {
	if op, ok := e.ops[tok]; ok {
		return op.f(m)
	}
	x, err := m.d.Parse(tok)
	if err != nil {
		return err
	}
	m.s.push(x)
	return nil
}

// Op describes an operator word.
type Op struct {
	Name string
	// NumIn holds the least number of stack values
	// the word consumes.
	NumIn int
}

// Words returns the operator words of the evaluator's
// domain, sorted by name.
func (e *Evaluator[T]) Words() []Op {
	words := make([]Op, 0, len(e.ops))
	for name, op := range e.ops {
		words = append(words, Op{Name: name, NumIn: op.numIn})
	}
	sort.Slice(words, func(i, j int) bool {
		return words[i].Name < words[j].Name
	})
	return words
}

// Eval splits text into tokens and evaluates them over d
// without printing anything.
func Eval[T any](d Domain[T], text string) ([]T, error) {
	return New(d).Evaluate(lex.Fields(text))
}
