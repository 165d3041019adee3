// Package tuplefunc provides functions that convert between multiple-argument
// and multiple-return functions and single-argument, single-return functions.
// This makes it trivial to pass arbitrary functions to generic operations
// that are designed to operate on arbitrary functions, and to apply
// a function to the unpacked elements of a tuple.
//
// The names of the functions in this package match the following regular expression:
//
//	ToA?R?_[0-9]+_[0-9]+
//
// Each optional letter represents one aspect of the function that's being converted to.
//
//	A - argument parameter
//	R - return parameter
//
// The first number is the number of argument parameters;
// the second number is the number of return parameters.
//
// So, for example:
//
//	ToA_3_1
//
// converts from (for some types A0, A1, A2 and R)
//
//	func(A0, A1, A2) R
//
// to:
//
//	func(tuple.T3[A0, A1, A2]) R
//
// Applying a function to a tuple's elements is then just
//
//	ToA_3_1(f)(t)
package tuplefunc
