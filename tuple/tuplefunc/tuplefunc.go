package tuplefunc

import "github.com/rogpeppe/variadic/tuple"

// ToA_2_0 converts a 2-argument function with no results to
// a function that takes its arguments as a tuple.T2.
func ToA_2_0[A0, A1 any](f func(A0, A1)) func(tuple.T2[A0, A1]) {
	return func(t tuple.T2[A0, A1]) {
		f(t.V0, t.V1)
	}
}

// ToA_3_0 converts a 3-argument function with no results to
// a function that takes its arguments as a tuple.T3.
func ToA_3_0[A0, A1, A2 any](f func(A0, A1, A2)) func(tuple.T3[A0, A1, A2]) {
	return func(t tuple.T3[A0, A1, A2]) {
		f(t.V0, t.V1, t.V2)
	}
}

// ToA_4_0 converts a 4-argument function with no results to
// a function that takes its arguments as a tuple.T4.
func ToA_4_0[A0, A1, A2, A3 any](f func(A0, A1, A2, A3)) func(tuple.T4[A0, A1, A2, A3]) {
	return func(t tuple.T4[A0, A1, A2, A3]) {
		f(t.V0, t.V1, t.V2, t.V3)
	}
}

// ToA_5_0 converts a 5-argument function with no results to
// a function that takes its arguments as a tuple.T5.
func ToA_5_0[A0, A1, A2, A3, A4 any](f func(A0, A1, A2, A3, A4)) func(tuple.T5[A0, A1, A2, A3, A4]) {
	return func(t tuple.T5[A0, A1, A2, A3, A4]) {
		f(t.V0, t.V1, t.V2, t.V3, t.V4)
	}
}

// ToA_2_1 converts a 2-argument function to a function
// that takes its arguments as a tuple.T2.
func ToA_2_1[A0, A1, R any](f func(A0, A1) R) func(tuple.T2[A0, A1]) R {
	return func(t tuple.T2[A0, A1]) R {
		return f(t.V0, t.V1)
	}
}

// ToA_3_1 converts a 3-argument function to a function
// that takes its arguments as a tuple.T3.
func ToA_3_1[A0, A1, A2, R any](f func(A0, A1, A2) R) func(tuple.T3[A0, A1, A2]) R {
	return func(t tuple.T3[A0, A1, A2]) R {
		return f(t.V0, t.V1, t.V2)
	}
}

// ToA_4_1 converts a 4-argument function to a function
// that takes its arguments as a tuple.T4.
func ToA_4_1[A0, A1, A2, A3, R any](f func(A0, A1, A2, A3) R) func(tuple.T4[A0, A1, A2, A3]) R {
	return func(t tuple.T4[A0, A1, A2, A3]) R {
		return f(t.V0, t.V1, t.V2, t.V3)
	}
}

// ToA_5_1 converts a 5-argument function to a function
// that takes its arguments as a tuple.T5.
func ToA_5_1[A0, A1, A2, A3, A4, R any](f func(A0, A1, A2, A3, A4) R) func(tuple.T5[A0, A1, A2, A3, A4]) R {
	return func(t tuple.T5[A0, A1, A2, A3, A4]) R {
		return f(t.V0, t.V1, t.V2, t.V3, t.V4)
	}
}

// ToR_0_2 converts a function with 2 results to a function
// that returns them as a tuple.T2.
func ToR_0_2[R0, R1 any](f func() (R0, R1)) func() tuple.T2[R0, R1] {
	return func() tuple.T2[R0, R1] {
		r0, r1 := f()
		return tuple.MkT2(r0, r1)
	}
}

// ToR_0_3 converts a function with 3 results to a function
// that returns them as a tuple.T3.
func ToR_0_3[R0, R1, R2 any](f func() (R0, R1, R2)) func() tuple.T3[R0, R1, R2] {
	return func() tuple.T3[R0, R1, R2] {
		r0, r1, r2 := f()
		return tuple.MkT3(r0, r1, r2)
	}
}

// ToR_0_4 converts a function with 4 results to a function
// that returns them as a tuple.T4.
func ToR_0_4[R0, R1, R2, R3 any](f func() (R0, R1, R2, R3)) func() tuple.T4[R0, R1, R2, R3] {
	return func() tuple.T4[R0, R1, R2, R3] {
		r0, r1, r2, r3 := f()
		return tuple.MkT4(r0, r1, r2, r3)
	}
}

// ToR_0_5 converts a function with 5 results to a function
// that returns them as a tuple.T5.
func ToR_0_5[R0, R1, R2, R3, R4 any](f func() (R0, R1, R2, R3, R4)) func() tuple.T5[R0, R1, R2, R3, R4] {
	return func() tuple.T5[R0, R1, R2, R3, R4] {
		r0, r1, r2, r3, r4 := f()
		return tuple.MkT5(r0, r1, r2, r3, r4)
	}
}
