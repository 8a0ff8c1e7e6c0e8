package value

import (
	"fmt"
	"io"
)

// Context bundles the pieces of interpreter state a statement needs
// beyond the variable environment: where print sends its output.
// Expressions never produce output, so Expr.Eval only ever needs the
// Environment; only Print needs more.
type Context struct {
	Env *Environment
	Out io.Writer
}

// Stmt is implemented by every statement node the parser produces.
type Stmt interface {
	Execute(ctx *Context)
}

// Print evaluates Arg and writes it to the context's output sink: an
// Int prints as decimal text, a Seq prints as its raw bytes with no
// delimiter and no trailing newline.
type Print struct {
	Arg Expr
}

func (s Print) Execute(ctx *Context) {
	v := s.Arg.Eval(ctx.Env)
	if v.IsInt() {
		fmt.Fprintf(ctx.Out, "%d", v.I)
		return
	}
	buf := make([]byte, v.S.Len())
	for i := range buf {
		buf[i] = byte(v.S.At(i))
	}
	ctx.Out.Write(buf)
}

// Compound runs a list of statements in order. It is how "{ ... }"
// blocks are represented.
type Compound struct {
	Stmts []Stmt
}

func (s Compound) Execute(ctx *Context) {
	for _, stmt := range s.Stmts {
		stmt.Execute(ctx)
	}
}

// If runs Body once if Cond evaluates to a nonzero Int.
type If struct {
	Cond Expr
	Body Stmt
}

func (s If) Execute(ctx *Context) {
	v := s.Cond.Eval(ctx.Env)
	requireInt(v)
	if v.I != 0 {
		s.Body.Execute(ctx)
	}
}

// While runs Body for as long as Cond evaluates to a nonzero Int,
// re-evaluating Cond before each iteration, including the first.
type While struct {
	Cond Expr
	Body Stmt
}

func (s While) Execute(ctx *Context) {
	for {
		v := s.Cond.Eval(ctx.Env)
		requireInt(v)
		if v.I == 0 {
			return
		}
		s.Body.Execute(ctx)
	}
}

// Push evaluates Seq and Val and appends Val's integer value to the
// end of the sequence Seq names, growing it in place.
type Push struct {
	Seq Expr
	Val Expr
}

func (s Push) Execute(ctx *Context) {
	seq := s.Seq.Eval(ctx.Env)
	val := s.Val.Eval(ctx.Env)
	requireSeq(seq)
	requireInt(val)
	seq.S.Push(val.I)
}

// Assign is either a plain variable assignment, when Index is nil, or
// an assignment to one element of a sequence, when it is not.
type Assign struct {
	Name  string
	Index Expr // nil for a plain variable assignment
	Rhs   Expr
}

func (s Assign) Execute(ctx *Context) {
	result := s.Rhs.Eval(ctx.Env)
	if s.Index == nil {
		if result.IsSeq() {
			result.S.Grab()
		}
		ctx.Env.Set(s.Name, result)
		return
	}
	requireInt(result)
	idxVal := s.Index.Eval(ctx.Env)
	requireInt(idxVal)
	target := ctx.Env.Lookup(s.Name)
	requireSeq(target)
	idx := idxVal.I
	if idx < 0 || idx >= int64(target.S.Len()) {
		panic(Errorf("Index out of bounds"))
	}
	target.S.Set(int(idx), result.I)
}
