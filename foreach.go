// Package variadic provides helpers for calling a function once for
// each argument of a variadic argument list, and once for each element
// of a tuple.
//
// Heterogeneous argument lists are represented by instantiating
// the element type as an interface type, usually any:
//
//	variadic.ForEach(func(x any) { fmt.Print(x, " ") }, 1, 2.5, "three")
package variadic

import "github.com/rogpeppe/variadic/tuple"

// ForEach calls fn once for each of args, in order.
// If args is empty, fn is not called.
func ForEach[T any](fn func(T), args ...T) {
	for _, arg := range args {
		fn(arg)
	}
}

// ForEachIndex is like ForEach but also passes the position
// of each argument.
func ForEachIndex[T any](fn func(int, T), args ...T) {
	for i, arg := range args {
		fn(i, arg)
	}
}

// ForEachTuple calls fn once for each element of t, in
// declaration order.
func ForEachTuple(fn func(any), t tuple.Tuple) {
	ForEach(fn, t.Elems()...)
}
