// Package tuple provides a collection of generic struct types
// that hold a specific number of values.
//
// Each type implements Tuple, so code that only needs to
// visit the elements in order need not know the arity or
// the element types.
//
// See the tuple/tuplefunc package for a way to convert between
// multiple-argument functions and their single-argument equivalents.
package tuple
