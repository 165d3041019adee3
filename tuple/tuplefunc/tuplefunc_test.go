package tuplefunc_test

import (
	"fmt"
	"strconv"
	"strings"
	"testing"

	"github.com/go-quicktest/qt"

	"github.com/rogpeppe/variadic/tuple"
	"github.com/rogpeppe/variadic/tuple/tuplefunc"
)

func TestToA(t *testing.T) {
	qt.Assert(t, qt.Equals(tuplefunc.ToA_2_1(strings.Repeat)(tuple.MkT2("ab", 3)), "ababab"))
	qt.Assert(t, qt.Equals(tuplefunc.ToA_3_1(strings.ReplaceAll)(tuple.MkT3("aaa", "a", "b")), "bbb"))
	qt.Assert(t, qt.Equals(tuplefunc.ToA_4_1(strings.Replace)(tuple.MkT4("aaa", "a", "b", 2)), "bba"))

	join5 := func(a, b, c, d, e string) string {
		return a + b + c + d + e
	}
	qt.Assert(t, qt.Equals(tuplefunc.ToA_5_1(join5)(tuple.MkT5("a", "b", "c", "d", "e")), "abcde"))
}

func TestToANoResult(t *testing.T) {
	var got []string
	record := func(args ...any) {
		got = append(got, fmt.Sprint(args...))
	}
	tuplefunc.ToA_2_0(func(a int, b string) { record(a, b) })(tuple.MkT2(1, "x"))
	tuplefunc.ToA_3_0(func(a int, b, c string) { record(a, b, c) })(tuple.MkT3(2, "y", "z"))
	tuplefunc.ToA_4_0(func(a, b, c, d int) { record(a, b, c, d) })(tuple.MkT4(1, 2, 3, 4))
	tuplefunc.ToA_5_0(func(a, b, c, d, e bool) { record(a, b, c, d, e) })(tuple.MkT5(true, false, true, false, true))
	qt.Assert(t, qt.DeepEquals(got, []string{
		"1x",
		"2yz",
		"1 2 3 4",
		"true false true false true",
	}))
}

func TestToR(t *testing.T) {
	atoi := tuplefunc.ToR_0_2(func() (int, error) {
		return strconv.Atoi("42")
	})
	r := atoi()
	qt.Assert(t, qt.Equals(r.V0, 42))
	qt.Assert(t, qt.IsNil(r.V1))

	qt.Assert(t, qt.Equals(tuplefunc.ToR_0_3(func() (int, string, bool) {
		return 1, "a", true
	})(), tuple.MkT3(1, "a", true)))
	qt.Assert(t, qt.Equals(tuplefunc.ToR_0_4(func() (int, int, int, int) {
		return 1, 2, 3, 4
	})(), tuple.MkT4(1, 2, 3, 4)))
	qt.Assert(t, qt.Equals(tuplefunc.ToR_0_5(func() (int, int, int, int, string) {
		return 1, 2, 3, 4, "five"
	})(), tuple.MkT5(1, 2, 3, 4, "five")))
}

func TestRoundTrip(t *testing.T) {
	divmod := func(a, b int) tuple.T2[int, int] {
		return tuplefunc.ToR_0_2(func() (int, int) {
			return a / b, a % b
		})()
	}
	sum := tuplefunc.ToA_2_1(func(q, r int) int { return q*10 + r })
	qt.Assert(t, qt.Equals(sum(divmod(17, 5)), 32))
}

func Example_applyTuple() {
	print4 := tuplefunc.ToA_4_0(func(a, b int, f float64, s string) {
		fmt.Println(a, b, f, s)
	})
	print4(tuple.MkT4(1, 2, 3.1415926535, "Test string"))
	// Output:
	// 1 2 3.1415926535 Test string
}
