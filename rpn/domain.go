package rpn

import (
	"errors"
	"fmt"
	"math/big"
	"strconv"
	"strings"
)

// Domain defines the numeric values an Evaluator works with and the
// arithmetic on them. The arithmetic methods compute x op y, where x
// is the deeper of the two operands on the stack.
type Domain[T any] interface {
	Add(x, y T) (T, error)
	Sub(x, y T) (T, error)
	Mul(x, y T) (T, error)
	Div(x, y T) (T, error)

	// Parse parses a numeric literal. It returns a *ParseError
	// if tok is not valid.
	Parse(tok string) (T, error)

	// Format returns the line printed for x by the "." word.
	Format(x T) string

	// String returns x as shown in stack listings.
	String(x T) string
}

// EndianDomain is implemented by integer domains that
// support the endian and :endian words.
type EndianDomain[T any] interface {
	Domain[T]

	// Int returns x as an integer, used to validate
	// endian widths.
	Int(x T) *big.Int

	// SwapLow reverses the order of the low-order width bytes of x.
	// The width is always in [1, 8].
	SwapLow(x T, width int) T
}

// Float is the domain of float64 values. Literals are decimal
// floating point numbers and division follows IEEE 754, so
// dividing by zero yields an infinity or NaN rather than an error.
type Float struct{}

func (Float) Add(x, y float64) (float64, error) { return x + y, nil }
func (Float) Sub(x, y float64) (float64, error) { return x - y, nil }
func (Float) Mul(x, y float64) (float64, error) { return x * y, nil }
func (Float) Div(x, y float64) (float64, error) { return x / y, nil }

// Parse accepts decimal literals only. A literal too large
// for a float64 parses as an infinity.
func (Float) Parse(tok string) (float64, error) {
	if !isDecimalFloat(tok) {
		return 0, parseError(tok, strconv.ErrSyntax)
	}
	x, err := strconv.ParseFloat(tok, 64)
	if err != nil && !errors.Is(err, strconv.ErrRange) {
		return 0, parseError(tok, err)
	}
	return x, nil
}

// isDecimalFloat reports whether tok is free of the hexadecimal
// mantissas and digit underscores that strconv.ParseFloat
// also understands.
func isDecimalFloat(tok string) bool {
	if strings.Contains(tok, "_") {
		return false
	}
	tok = strings.TrimLeft(tok, "+-")
	return !strings.HasPrefix(tok, "0x") && !strings.HasPrefix(tok, "0X")
}

func (f Float) Format(x float64) string {
	return f.String(x)
}

func (Float) String(x float64) string {
	return fmt.Sprint(x)
}

var radixPrefixes = []struct {
	prefix string
	base   int
}{
	{"0x", 16},
	{"x", 16},
	{"0o", 8},
	{"o", 8},
	{"0b", 2},
	{"b", 2},
}

// splitRadix returns the digits of an integer literal
// and the base they are written in.
func splitRadix(tok string) (string, int) {
	for _, r := range radixPrefixes {
		if strings.HasPrefix(tok, r.prefix) {
			return tok[len(r.prefix):], r.base
		}
	}
	return tok, 10
}

// formatRadix returns the print line for an integer
// given its text in each base.
func formatRadix(text func(base int) string) string {
	return fmt.Sprintf("dec: %s\t\thex: 0x%s\t\toct: o%s\t\tbin: b%s",
		text(10), text(16), text(8), text(2))
}

var _ Domain[float64] = Float{}
