// Package int128 implements 128-bit two's complement signed integers.
//
// An Int is a value type held as two 64-bit halves. Arithmetic is
// checked: operations report whether the true result fits in 128 bits
// rather than wrapping.
package int128

import (
	"encoding/binary"
	"math"
	"math/big"
	"strconv"
)

// Int is a signed 128-bit integer. The zero value is 0.
type Int struct {
	hi, lo uint64
}

var (
	// Min and Max hold the smallest and largest representable values.
	Min = Int{hi: 1 << 63}
	Max = Int{hi: math.MaxInt64, lo: math.MaxUint64}
)

var (
	bigMin = Min.Big()
	bigMax = Max.Big()
	two128 = new(big.Int).Lsh(big.NewInt(1), 128)
	mask64 = new(big.Int).SetUint64(math.MaxUint64)
)

// New returns x as an Int.
func New(x int64) Int {
	return Int{hi: uint64(x >> 63), lo: uint64(x)}
}

// FromBig returns b as an Int. It reports false if b is
// outside the range [Min, Max].
func FromBig(b *big.Int) (Int, bool) {
	if b.Cmp(bigMin) < 0 || b.Cmp(bigMax) > 0 {
		return Int{}, false
	}
	u := new(big.Int).Set(b)
	if u.Sign() < 0 {
		u.Add(u, two128)
	}
	lo := new(big.Int).And(u, mask64).Uint64()
	hi := u.Rsh(u, 64).Uint64()
	return Int{hi: hi, lo: lo}, true
}

// Big returns x as a big integer.
func (x Int) Big() *big.Int {
	u := x.bits()
	if x.Sign() < 0 {
		u.Sub(u, two128)
	}
	return u
}

// bits returns the two's complement bit pattern of x
// as a non-negative big integer.
func (x Int) bits() *big.Int {
	u := new(big.Int).SetUint64(x.hi)
	u.Lsh(u, 64)
	return u.Or(u, new(big.Int).SetUint64(x.lo))
}

// Sign returns -1, 0 or 1 depending on the sign of x.
func (x Int) Sign() int {
	switch {
	case int64(x.hi) < 0:
		return -1
	case x.hi == 0 && x.lo == 0:
		return 0
	}
	return 1
}

// Cmp compares x and y and returns -1, 0 or 1.
func (x Int) Cmp(y Int) int {
	switch {
	case int64(x.hi) < int64(y.hi):
		return -1
	case int64(x.hi) > int64(y.hi):
		return 1
	case x.lo < y.lo:
		return -1
	case x.lo > y.lo:
		return 1
	}
	return 0
}

// Add returns x+y and whether the sum fits in an Int.
func (x Int) Add(y Int) (Int, bool) {
	return FromBig(new(big.Int).Add(x.Big(), y.Big()))
}

// Sub returns x-y and whether the difference fits in an Int.
func (x Int) Sub(y Int) (Int, bool) {
	return FromBig(new(big.Int).Sub(x.Big(), y.Big()))
}

// Mul returns x*y and whether the product fits in an Int.
func (x Int) Mul(y Int) (Int, bool) {
	return FromBig(new(big.Int).Mul(x.Big(), y.Big()))
}

// Quo returns x/y truncated toward zero and whether the quotient
// fits in an Int (only Min/-1 does not).
// Quo panics if y is zero.
func (x Int) Quo(y Int) (Int, bool) {
	return FromBig(new(big.Int).Quo(x.Big(), y.Big()))
}

// LittleEndian returns the 16-byte little-endian
// two's complement representation of x.
func (x Int) LittleEndian() [16]byte {
	var b [16]byte
	binary.LittleEndian.PutUint64(b[0:8], x.lo)
	binary.LittleEndian.PutUint64(b[8:16], x.hi)
	return b
}

// FromLittleEndian is the inverse of LittleEndian.
func FromLittleEndian(b [16]byte) Int {
	return Int{
		hi: binary.LittleEndian.Uint64(b[8:16]),
		lo: binary.LittleEndian.Uint64(b[0:8]),
	}
}

// Text returns x formatted in the given base, which
// must be between 2 and 36. Base 10 is signed; any other base
// shows the 128-bit two's complement pattern, so New(-1).Text(16)
// is 32 f characters.
func (x Int) Text(base int) string {
	if base == 10 {
		return x.Big().Text(10)
	}
	return x.bits().Text(base)
}

func (x Int) String() string {
	return x.Text(10)
}

// Parse interprets s in the given base (2 to 36) with an optional
// leading sign. Errors are of type *strconv.NumError, with Err set to
// strconv.ErrSyntax or strconv.ErrRange.
func Parse(s string, base int) (Int, error) {
	b, ok := new(big.Int).SetString(s, base)
	if !ok {
		return Int{}, &strconv.NumError{Func: "int128.Parse", Num: s, Err: strconv.ErrSyntax}
	}
	x, ok := FromBig(b)
	if !ok {
		return Int{}, &strconv.NumError{Func: "int128.Parse", Num: s, Err: strconv.ErrRange}
	}
	return x, nil
}

// MustParse is like Parse but panics on error.
func MustParse(s string, base int) Int {
	x, err := Parse(s, base)
	if err != nil {
		panic(err)
	}
	return x
}
