package tuple

// Tuple is implemented by all the tuple types in this package.
type Tuple interface {
	// Len returns the number of elements in the tuple.
	Len() int

	// Elems returns the elements of the tuple in declaration order.
	// The returned slice is newly allocated on each call.
	Elems() []any
}

var (
	_ Tuple = T2[int, int]{}
	_ Tuple = T3[int, int, int]{}
	_ Tuple = T4[int, int, int, int]{}
	_ Tuple = T5[int, int, int, int, int]{}
)

// T2 holds two values.
type T2[A0, A1 any] struct {
	V0 A0
	V1 A1
}

// MkT2 returns a T2 holding the given values.
func MkT2[A0, A1 any](v0 A0, v1 A1) T2[A0, A1] {
	return T2[A0, A1]{v0, v1}
}

// Values returns the elements of t as separate values.
func (t T2[A0, A1]) Values() (A0, A1) {
	return t.V0, t.V1
}

func (t T2[A0, A1]) Len() int {
	return 2
}

func (t T2[A0, A1]) Elems() []any {
	return []any{t.V0, t.V1}
}

// T3 holds three values.
type T3[A0, A1, A2 any] struct {
	V0 A0
	V1 A1
	V2 A2
}

// MkT3 returns a T3 holding the given values.
func MkT3[A0, A1, A2 any](v0 A0, v1 A1, v2 A2) T3[A0, A1, A2] {
	return T3[A0, A1, A2]{v0, v1, v2}
}

// Values returns the elements of t as separate values.
func (t T3[A0, A1, A2]) Values() (A0, A1, A2) {
	return t.V0, t.V1, t.V2
}

func (t T3[A0, A1, A2]) Len() int {
	return 3
}

func (t T3[A0, A1, A2]) Elems() []any {
	return []any{t.V0, t.V1, t.V2}
}

// T4 holds four values.
type T4[A0, A1, A2, A3 any] struct {
	V0 A0
	V1 A1
	V2 A2
	V3 A3
}

// MkT4 returns a T4 holding the given values.
func MkT4[A0, A1, A2, A3 any](v0 A0, v1 A1, v2 A2, v3 A3) T4[A0, A1, A2, A3] {
	return T4[A0, A1, A2, A3]{v0, v1, v2, v3}
}

// Values returns the elements of t as separate values.
func (t T4[A0, A1, A2, A3]) Values() (A0, A1, A2, A3) {
	return t.V0, t.V1, t.V2, t.V3
}

func (t T4[A0, A1, A2, A3]) Len() int {
	return 4
}

func (t T4[A0, A1, A2, A3]) Elems() []any {
	return []any{t.V0, t.V1, t.V2, t.V3}
}

// T5 holds five values.
type T5[A0, A1, A2, A3, A4 any] struct {
	V0 A0
	V1 A1
	V2 A2
	V3 A3
	V4 A4
}

// MkT5 returns a T5 holding the given values.
func MkT5[A0, A1, A2, A3, A4 any](v0 A0, v1 A1, v2 A2, v3 A3, v4 A4) T5[A0, A1, A2, A3, A4] {
	return T5[A0, A1, A2, A3, A4]{v0, v1, v2, v3, v4}
}

// Values returns the elements of t as separate values.
func (t T5[A0, A1, A2, A3, A4]) Values() (A0, A1, A2, A3, A4) {
	return t.V0, t.V1, t.V2, t.V3, t.V4
}

func (t T5[A0, A1, A2, A3, A4]) Len() int {
	return 5
}

func (t T5[A0, A1, A2, A3, A4]) Elems() []any {
	return []any{t.V0, t.V1, t.V2, t.V3, t.V4}
}
