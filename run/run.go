// Package run drives the parse-execute loop over an already-open
// source reader and owns the lifetime of the variable environment:
// parse and execute one top-level statement at a time until the input
// is exhausted, then tear the environment down.
package run

import (
	"io"

	"github.com/sahwork21/seqlang/parse"
	"github.com/sahwork21/seqlang/scan"
	"github.com/sahwork21/seqlang/value"
)

// Run parses and executes src one statement at a time, writing
// program output to out. It returns the diagnostic raised by the
// tokenizer, parser, or evaluator, if any; a nil error means the
// input ran to completion.
func Run(src io.Reader, out io.Writer) (err error) {
	env := value.NewEnvironment()
	defer env.Teardown()
	defer func() {
		if r := recover(); r != nil {
			verr, ok := r.(value.Error)
			if !ok {
				panic(r)
			}
			err = verr
		}
	}()

	scanner := scan.New(src)
	p := parse.New(scanner)
	ctx := &value.Context{Env: env, Out: out}

	for {
		stmt, ok := p.Next()
		if !ok {
			return nil
		}
		stmt.Execute(ctx)
	}
}
