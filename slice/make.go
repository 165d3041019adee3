package slice

import (
	"errors"
	"fmt"
	"reflect"

	"github.com/rogpeppe/variadic"
)

// ErrNoCommonType is returned (wrapped) by Promote when
// an argument cannot be converted to the requested type.
var ErrNoCommonType = errors.New("no common type")

// Number holds the types that Promote can convert to.
type Number interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 | ~uintptr |
		~float32 | ~float64
}

// Make returns a new slice holding all the arguments in order.
// The element type is the type inferred for the arguments, so
//
//	Make(1, 2, 3)
//
// returns a []int and
//
//	Make(1, 2.5)
//
// returns a []float64. The returned slice never
// shares its backing array with args and its capacity
// is exactly len(args).
func Make[T any](args ...T) []T {
	s := make([]T, 0, len(args))
	variadic.ForEach(func(x T) {
		s = append(s, x)
	}, args...)
	return s
}

// MakeFunc is like Make, except that the argument types need
// not be known at compile time: each argument is converted with conv.
// If any conversion fails, MakeFunc returns an error
// that identifies the argument.
func MakeFunc[T any](conv func(any) (T, error), args ...any) ([]T, error) {
	s := make([]T, 0, len(args))
	var err error
	variadic.ForEachIndex(func(i int, arg any) {
		if err != nil {
			return
		}
		x, convErr := conv(arg)
		if convErr != nil {
			err = fmt.Errorf("cannot convert argument %d (%T): %w", i, arg, convErr)
			return
		}
		s = append(s, x)
	}, args...)
	if err != nil {
		return nil, err
	}
	return s, nil
}

// Promote returns a slice holding all the arguments converted to T.
// Each argument must have an integer or floating point kind;
// conversion follows the usual Go conversion rules, so converting
// a float to an integer type truncates.
func Promote[T Number](args ...any) ([]T, error) {
	return MakeFunc(convertNumber[T], args...)
}

func convertNumber[T Number](x any) (T, error) {
	v := reflect.ValueOf(x)
	switch v.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return T(v.Int()), nil
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return T(v.Uint()), nil
	case reflect.Float32, reflect.Float64:
		return T(v.Float()), nil
	}
	var z T
	return z, fmt.Errorf("%w: %T is not numeric", ErrNoCommonType, x)
}
