// Command interpret runs a single program file through the
// interpreter, streaming its output to standard out.
//
// Usage:
//
//	interpret <program-file>
package main

import (
	"fmt"
	"os"

	"github.com/sahwork21/seqlang/run"
)

func usage() {
	fmt.Fprintln(os.Stderr, "usage: interpret <program-file>")
	os.Exit(1)
}

func main() {
	if len(os.Args) != 2 {
		usage()
	}

	f, err := os.Open(os.Args[1])
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	defer f.Close()

	if err := run.Run(f, os.Stdout); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
