package int128_test

import (
	"math/big"
	"strconv"
	"strings"
	"testing"

	gc "gopkg.in/check.v1"

	"github.com/rogpeppe/qc/int128"
)

func TestPackage(t *testing.T) {
	gc.TestingT(t)
}

type int128Suite struct{}

var _ = gc.Suite(&int128Suite{})

var bigTests = []string{
	"0",
	"1",
	"-1",
	"18446744073709551615",
	"18446744073709551616",
	"-18446744073709551616",
	"170141183460469231731687303715884105727",
	"-170141183460469231731687303715884105728",
}

func (*int128Suite) TestBigRoundTrip(c *gc.C) {
	for _, s := range bigTests {
		b, _ := new(big.Int).SetString(s, 10)
		x, ok := int128.FromBig(b)
		c.Assert(ok, gc.Equals, true, gc.Commentf("%s", s))
		c.Assert(x.Big().String(), gc.Equals, s)
		c.Assert(x.String(), gc.Equals, s)
	}
}

func (*int128Suite) TestFromBigOutOfRange(c *gc.C) {
	for _, s := range []string{
		"170141183460469231731687303715884105728",
		"-170141183460469231731687303715884105729",
	} {
		b, _ := new(big.Int).SetString(s, 10)
		_, ok := int128.FromBig(b)
		c.Assert(ok, gc.Equals, false, gc.Commentf("%s", s))
	}
}

func (*int128Suite) TestNew(c *gc.C) {
	c.Assert(int128.New(-5).String(), gc.Equals, "-5")
	c.Assert(int128.New(42).String(), gc.Equals, "42")
	c.Assert(int128.New(-5).Sign(), gc.Equals, -1)
	c.Assert(int128.New(0).Sign(), gc.Equals, 0)
	c.Assert(int128.New(3).Sign(), gc.Equals, 1)
}

func (*int128Suite) TestCmp(c *gc.C) {
	c.Assert(int128.New(-1).Cmp(int128.New(1)), gc.Equals, -1)
	c.Assert(int128.Max.Cmp(int128.Min), gc.Equals, 1)
	c.Assert(int128.New(7).Cmp(int128.New(7)), gc.Equals, 0)
	c.Assert(int128.MustParse("10000000000000000", 16).Cmp(int128.MustParse("ffffffffffffffff", 16)), gc.Equals, 1)
}

var arithTests = []struct {
	op   string
	x, y int64
	want int64
}{
	{"add", 1, 2, 3},
	{"add", -7, 3, -4},
	{"sub", 1, 2, -1},
	{"mul", -3, 4, -12},
	{"quo", 9, 3, 3},
	{"quo", -7, 2, -3},
	{"quo", 7, -2, -3},
}

func (*int128Suite) TestArith(c *gc.C) {
	for _, test := range arithTests {
		x, y := int128.New(test.x), int128.New(test.y)
		var z int128.Int
		var ok bool
		switch test.op {
		case "add":
			z, ok = x.Add(y)
		case "sub":
			z, ok = x.Sub(y)
		case "mul":
			z, ok = x.Mul(y)
		case "quo":
			z, ok = x.Quo(y)
		}
		c.Assert(ok, gc.Equals, true)
		c.Assert(z, gc.Equals, int128.New(test.want), gc.Commentf("%d %s %d", test.x, test.op, test.y))
	}
}

func (*int128Suite) TestOverflow(c *gc.C) {
	_, ok := int128.Max.Add(int128.New(1))
	c.Assert(ok, gc.Equals, false)
	_, ok = int128.Min.Sub(int128.New(1))
	c.Assert(ok, gc.Equals, false)
	_, ok = int128.Max.Mul(int128.New(2))
	c.Assert(ok, gc.Equals, false)
	_, ok = int128.Min.Quo(int128.New(-1))
	c.Assert(ok, gc.Equals, false)
}

func (*int128Suite) TestLittleEndian(c *gc.C) {
	x := int128.MustParse("0102030405060708090a0b0c0d0e0f10", 16)
	b := x.LittleEndian()
	c.Assert(b[0], gc.Equals, byte(0x10))
	c.Assert(b[15], gc.Equals, byte(0x01))
	c.Assert(int128.FromLittleEndian(b), gc.Equals, x)

	b = int128.New(-2).LittleEndian()
	c.Assert(b[0], gc.Equals, byte(0xfe))
	for _, v := range b[1:] {
		c.Assert(v, gc.Equals, byte(0xff))
	}
	c.Assert(int128.FromLittleEndian(b), gc.Equals, int128.New(-2))
}

func (*int128Suite) TestText(c *gc.C) {
	x := int128.New(255)
	c.Assert(x.Text(16), gc.Equals, "ff")
	c.Assert(x.Text(8), gc.Equals, "377")
	c.Assert(x.Text(2), gc.Equals, "11111111")
	c.Assert(x.Text(10), gc.Equals, "255")

	m := int128.New(-1)
	c.Assert(m.Text(10), gc.Equals, "-1")
	c.Assert(m.Text(16), gc.Equals, strings.Repeat("f", 32))
	c.Assert(m.Text(2), gc.Equals, strings.Repeat("1", 128))
}

func (*int128Suite) TestParse(c *gc.C) {
	c.Assert(int128.MustParse("12", 16), gc.Equals, int128.New(18))
	c.Assert(int128.MustParse("101", 2), gc.Equals, int128.New(5))
	c.Assert(int128.MustParse("17", 8), gc.Equals, int128.New(15))
	c.Assert(int128.MustParse("-42", 10), gc.Equals, int128.New(-42))
	c.Assert(int128.MustParse("+42", 10), gc.Equals, int128.New(42))

	_, err := int128.Parse("12z", 10)
	c.Assert(err, gc.FitsTypeOf, (*strconv.NumError)(nil))
	c.Assert(err.(*strconv.NumError).Err, gc.Equals, strconv.ErrSyntax)

	_, err = int128.Parse("", 16)
	c.Assert(err.(*strconv.NumError).Err, gc.Equals, strconv.ErrSyntax)

	_, err = int128.Parse(strings.Repeat("f", 33), 16)
	c.Assert(err.(*strconv.NumError).Err, gc.Equals, strconv.ErrRange)
}
