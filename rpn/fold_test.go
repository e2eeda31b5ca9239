package rpn

import (
	"errors"

	gc "gopkg.in/check.v1"
)

type foldSuite struct{}

var _ = gc.Suite(&foldSuite{})

func expr(x, y string) (string, error) {
	return "(" + x + " op " + y + ")", nil
}

var reduceTests = []struct {
	vals []string
	want string
}{{
	vals: []string{"a", "b"},
	want: "(a op b)",
}, {
	vals: []string{"v1", "v2", "v3"},
	want: "(v1 op (v2 op v3))",
}, {
	vals: []string{"v1", "v2", "v3", "v4"},
	want: "(v1 op (v2 op (v3 op v4)))",
}}

func (*foldSuite) TestReduceOrder(c *gc.C) {
	for _, test := range reduceTests {
		got, err := reduce(test.vals, expr)
		c.Assert(err, gc.IsNil)
		c.Assert(got, gc.Equals, test.want)
	}
}

func (*foldSuite) TestReduceSub(c *gc.C) {
	sub := func(x, y float64) (float64, error) { return x - y, nil }
	got, err := reduce([]float64{10, 4, 3, 1}, sub)
	c.Assert(err, gc.IsNil)
	// 10 - (4 - (3 - 1))
	c.Assert(got, gc.Equals, 8.0)
}

func (*foldSuite) TestReduceDiv(c *gc.C) {
	div := func(x, y float64) (float64, error) { return x / y, nil }
	got, err := reduce([]float64{6, 2, 1}, div)
	c.Assert(err, gc.IsNil)
	c.Assert(got, gc.Equals, 3.0)
}

func (*foldSuite) TestReduceError(c *gc.C) {
	fail := errors.New("fail")
	n := 0
	got, err := reduce([]int{1, 2, 3, 4}, func(x, y int) (int, error) {
		n++
		if n == 2 {
			return 0, fail
		}
		return x + y, nil
	})
	c.Assert(err, gc.Equals, fail)
	c.Assert(got, gc.Equals, 0)
	c.Assert(n, gc.Equals, 2)
}

func (*foldSuite) TestReduceAllLeavesStackOnError(c *gc.C) {
	m := &machine[float64]{d: Float{}}
	m.s.items = []float64{1, 2, 3}
	op := reduceAll(func(x, y float64) (float64, error) {
		if x == 1 {
			return 0, ErrOverflow
		}
		return x + y, nil
	})
	err := op.f(m)
	c.Assert(err, gc.Equals, ErrOverflow)
	c.Assert(m.s.items, gc.DeepEquals, []float64{1, 2, 3})
}
