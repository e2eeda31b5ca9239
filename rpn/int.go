package rpn

import (
	"math/big"

	"github.com/rogpeppe/qc/int128"
)

// Int is the domain of signed 128-bit integers.
//
// Literals may carry a radix prefix: 0x or x for hexadecimal,
// 0o or o for octal, 0b or b for binary; anything else is decimal.
// Results that do not fit in 128 bits fail with ErrOverflow and
// division by zero fails with ErrDivideByZero. Division truncates
// toward zero.
type Int struct{}

func (Int) Add(x, y int128.Int) (int128.Int, error) { return checked(x.Add(y)) }
func (Int) Sub(x, y int128.Int) (int128.Int, error) { return checked(x.Sub(y)) }
func (Int) Mul(x, y int128.Int) (int128.Int, error) { return checked(x.Mul(y)) }

func (Int) Div(x, y int128.Int) (int128.Int, error) {
	if y.Sign() == 0 {
		return int128.Int{}, ErrDivideByZero
	}
	return checked(x.Quo(y))
}

func checked(z int128.Int, ok bool) (int128.Int, error) {
	if !ok {
		return int128.Int{}, ErrOverflow
	}
	return z, nil
}

func (Int) Parse(tok string) (int128.Int, error) {
	digits, base := splitRadix(tok)
	x, err := int128.Parse(digits, base)
	if err != nil {
		return int128.Int{}, parseError(tok, err)
	}
	return x, nil
}

// Format shows x in decimal, hexadecimal, octal and binary.
// Negative numbers show their two's complement bits in the
// non-decimal bases.
func (Int) Format(x int128.Int) string {
	return formatRadix(x.Text)
}

func (Int) String(x int128.Int) string {
	return x.String()
}

func (Int) Int(x int128.Int) *big.Int {
	return x.Big()
}

func (Int) SwapLow(x int128.Int, width int) int128.Int {
	b := x.LittleEndian()
	swapLow(b[:], width)
	return int128.FromLittleEndian(b)
}

var _ EndianDomain[int128.Int] = Int{}
