package rpn

import (
	"fmt"
	"math/big"
	"strconv"

	"gopkg.in/errgo.v1"
)

// Error causes. Errors returned by Evaluate carry
// one of these, a *ParseError or an *EndianWidthError as
// their errgo.Cause.
var (
	ErrStackUnderflow = errgo.New("stack underflow")
	ErrDivideByZero   = errgo.New("division by zero")
	ErrOverflow       = errgo.New("integer overflow")
)

// ParseError is the cause returned when a token is neither an
// operator of the domain nor a literal it can parse.
type ParseError struct {
	Token string
	// Err is strconv.ErrSyntax or strconv.ErrRange.
	Err error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("cannot convert %q to number: %v", e.Token, e.Err)
}

func parseError(tok string, err error) error {
	if nerr, ok := err.(*strconv.NumError); ok {
		err = nerr.Err
	}
	return &ParseError{Token: tok, Err: err}
}

// EndianWidthError is the cause returned when the width
// operand of endian or :endian is outside [1, 8].
type EndianWidthError struct {
	Width *big.Int
}

func (e *EndianWidthError) Error() string {
	return fmt.Sprintf("endian width %v out of range [1, %d]", e.Width, maxEndianWidth)
}
