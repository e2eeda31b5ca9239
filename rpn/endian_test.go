package rpn

import (
	"github.com/holiman/uint256"
	gc "gopkg.in/check.v1"

	"github.com/rogpeppe/qc/int128"
)

type endianSuite struct{}

var _ = gc.Suite(&endianSuite{})

var endianValues = []string{
	"0",
	"1",
	"-1",
	"-2",
	"1234",
	"0x123456",
	"0xdeadbeef",
	"0xe803000000000000",
	"0x0102030405060708090a",
	"-170141183460469231731687303715884105728",
}

func (*endianSuite) TestSwapLowBytes(c *gc.C) {
	b := []byte{1, 2, 3, 4, 5, 6, 7, 8, 9, 10}
	swapLow(b, 3)
	c.Assert(b, gc.DeepEquals, []byte{3, 2, 1, 4, 5, 6, 7, 8, 9, 10})
	swapLow(b, 1)
	c.Assert(b, gc.DeepEquals, []byte{3, 2, 1, 4, 5, 6, 7, 8, 9, 10})
	swapLow(b, 8)
	c.Assert(b, gc.DeepEquals, []byte{8, 7, 6, 5, 4, 1, 2, 3, 9, 10})
}

func (*endianSuite) TestIntRoundTrip(c *gc.C) {
	var d Int
	for _, s := range endianValues {
		x, err := d.Parse(s)
		c.Assert(err, gc.IsNil)
		c.Assert(d.SwapLow(x, 1), gc.Equals, x, gc.Commentf("%s", s))
		for w := 1; w <= maxEndianWidth; w++ {
			c.Assert(d.SwapLow(d.SwapLow(x, w), w), gc.Equals, x, gc.Commentf("%s width %d", s, w))
		}
	}
}

func (*endianSuite) TestIntHighBytesUntouched(c *gc.C) {
	var d Int
	x := int128.MustParse("112233445566778899aabbccddeeff00", 16)
	got := d.SwapLow(x, 8)
	c.Assert(got.Text(16), gc.Equals, "112233445566778800ffeeddccbbaa99")
}

func (*endianSuite) TestWordRoundTrip(c *gc.C) {
	var d Word
	for _, s := range endianValues {
		x, err := d.Parse(s)
		c.Assert(err, gc.IsNil)
		c.Assert(d.SwapLow(x, 1), gc.Equals, x, gc.Commentf("%s", s))
		for w := 1; w <= maxEndianWidth; w++ {
			c.Assert(d.SwapLow(d.SwapLow(x, w), w), gc.Equals, x, gc.Commentf("%s width %d", s, w))
		}
	}
}

func (*endianSuite) TestWordSwapLow(c *gc.C) {
	var d Word
	got := d.SwapLow(*uint256.NewInt(0x1234), 2)
	c.Assert(got, gc.Equals, *uint256.NewInt(0x3412))
	got = d.SwapLow(*uint256.NewInt(0x1200), 2)
	c.Assert(got, gc.Equals, *uint256.NewInt(0x12))
}

func (*endianSuite) TestWidthErrorLeavesStack(c *gc.C) {
	m := &machine[int128.Int]{d: Int{}}
	m.s.items = []int128.Int{int128.New(0x123456), int128.New(10)}
	err := endian(m, Int{})
	c.Assert(err, gc.FitsTypeOf, (*EndianWidthError)(nil))
	c.Assert(m.s.items, gc.DeepEquals, []int128.Int{int128.New(0x123456), int128.New(10)})

	err = endianAll(m, Int{})
	c.Assert(err, gc.FitsTypeOf, (*EndianWidthError)(nil))
	c.Assert(m.s.items, gc.HasLen, 2)
}

func (*endianSuite) TestUnderflowLeavesStack(c *gc.C) {
	m := &machine[int128.Int]{d: Int{}}
	m.s.items = []int128.Int{int128.New(2)}
	err := endian(m, Int{})
	c.Assert(err, gc.ErrorMatches, "stack underflow")
	c.Assert(m.s.items, gc.DeepEquals, []int128.Int{int128.New(2)})
}
