// The argdemo command demonstrates calling a function for each
// argument of a variadic call, building a slice from variadic
// arguments and calling a function for each element of a tuple.
package main

import (
	"bufio"
	"fmt"
	"io"
	"os"

	"github.com/rogpeppe/variadic"
	"github.com/rogpeppe/variadic/slice"
	"github.com/rogpeppe/variadic/tuple"
)

func main() {
	if err := run(os.Stdout); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(w io.Writer) error {
	bw := bufio.NewWriter(w)
	show := func(x any) {
		fmt.Fprint(bw, x, " ")
	}

	variadic.ForEach(show, 1, 2, 3, 3.1415926535, "Hello, world!")
	fmt.Fprintln(bw)

	for _, x := range slice.Make(1, 2, 3, 4, 5) {
		show(x)
	}
	fmt.Fprintln(bw)

	variadic.ForEachTuple(show, tuple.MkT4(1, 2, 3.1415926535, "Test string"))
	fmt.Fprintln(bw)

	// bufio.Writer remembers the first write error.
	if err := bw.Flush(); err != nil {
		return fmt.Errorf("cannot write output: %w", err)
	}
	return nil
}
