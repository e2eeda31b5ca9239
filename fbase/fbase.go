// Package fbase formats floating point numbers in bases other than ten.
//
// Fractional digits are found by repeated multiplication: the
// fractional part is multiplied by the base, the integer part of the
// product is the next digit and its fractional part is carried on.
// At most four digits are produced, fewer if the fraction
// becomes exactly zero.
package fbase

import (
	"fmt"
	"math"
	"math/big"
	"strconv"
	"strings"
)

const sigFigs = 4

const digitChars = "0123456789ABCDEFGHIJKLMNOPQRSTUVWXYZ"

// Dec2Hex returns x in hexadecimal, for example
// Dec2Hex(3020.0625) is "0xBCC.1".
func Dec2Hex(x float64) string {
	return Dec2Base(x, 16)
}

// Dec2Base returns x in the given base, which must be between 2 and 36.
// The result has the form [-][prefix]integer.fraction, where the
// prefix is 0x, 0o or 0b for bases 16, 8 and 2. Infinities and NaN
// are returned as strconv.FormatFloat formats them.
func Dec2Base(x float64, base int) string {
	if base < 2 || base > len(digitChars) {
		panic(fmt.Errorf("fbase: invalid base %d", base))
	}
	if math.IsInf(x, 0) || math.IsNaN(x) {
		return strconv.FormatFloat(x, 'g', -1, 64)
	}
	sign := ""
	if x < 0 {
		sign = "-"
		x = -x
	}
	ip, fp := math.Modf(x)
	i, _ := new(big.Float).SetFloat64(ip).Int(nil)
	return sign + prefix(base) + strings.ToUpper(i.Text(base)) + "." + fraction(fp, base)
}

func prefix(base int) string {
	switch base {
	case 16:
		return "0x"
	case 8:
		return "0o"
	case 2:
		return "0b"
	}
	return ""
}

// fraction returns the digits of f, 0 <= f < 1, in the given base.
func fraction(f float64, base int) string {
	var digits []byte
	for steps := 0; f != 0 && steps < sigFigs; {
		f *= float64(base)
		if f != 0 {
			steps++
		}
		d, rest := math.Modf(f)
		digits = append(digits, digitChars[int(d)])
		f = rest
	}
	return string(digits)
}
