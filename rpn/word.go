package rpn

import (
	"math/big"
	"strconv"

	"github.com/holiman/uint256"
)

// Word is the domain of unsigned 256-bit words with wrapping
// arithmetic, as found on EVM-style stacks. Literals follow the
// same radix rules as Int; a negative literal denotes its two's
// complement. Division by zero fails with ErrDivideByZero.
type Word struct{}

func (Word) Add(x, y uint256.Int) (uint256.Int, error) {
	var z uint256.Int
	z.Add(&x, &y)
	return z, nil
}

func (Word) Sub(x, y uint256.Int) (uint256.Int, error) {
	var z uint256.Int
	z.Sub(&x, &y)
	return z, nil
}

func (Word) Mul(x, y uint256.Int) (uint256.Int, error) {
	var z uint256.Int
	z.Mul(&x, &y)
	return z, nil
}

func (Word) Div(x, y uint256.Int) (uint256.Int, error) {
	if y.IsZero() {
		return uint256.Int{}, ErrDivideByZero
	}
	var z uint256.Int
	z.Div(&x, &y)
	return z, nil
}

func (Word) Parse(tok string) (uint256.Int, error) {
	digits, base := splitRadix(tok)
	b, ok := new(big.Int).SetString(digits, base)
	if !ok {
		return uint256.Int{}, parseError(tok, strconv.ErrSyntax)
	}
	var z uint256.Int
	if overflow := z.SetFromBig(b); overflow {
		return uint256.Int{}, parseError(tok, strconv.ErrRange)
	}
	return z, nil
}

func (Word) Format(x uint256.Int) string {
	b := x.ToBig()
	return formatRadix(b.Text)
}

func (Word) String(x uint256.Int) string {
	return x.ToBig().String()
}

func (Word) Int(x uint256.Int) *big.Int {
	return x.ToBig()
}

func (Word) SwapLow(x uint256.Int, width int) uint256.Int {
	// Bytes32 is big-endian, so the low-order bytes are at the end.
	b := x.Bytes32()
	reverse(b[len(b)-width:])
	var z uint256.Int
	z.SetBytes32(b[:])
	return z
}

var _ EndianDomain[uint256.Int] = Word{}
