package parse

import (
	"strings"
	"testing"

	"github.com/sahwork21/seqlang/scan"
	"github.com/sahwork21/seqlang/value"
)

func parseAll(t *testing.T, src string) []value.Stmt {
	t.Helper()
	p := New(scan.New(strings.NewReader(src)))
	var stmts []value.Stmt
	for {
		stmt, ok := p.Next()
		if !ok {
			return stmts
		}
		stmts = append(stmts, stmt)
	}
}

func TestParsesPlainAssignment(t *testing.T) {
	stmts := parseAll(t, "a = 1 + 2;")
	if len(stmts) != 1 {
		t.Fatalf("got %d statements, want 1", len(stmts))
	}
	assign, ok := stmts[0].(value.Assign)
	if !ok {
		t.Fatalf("got %T, want value.Assign", stmts[0])
	}
	if assign.Name != "a" || assign.Index != nil {
		t.Fatalf("unexpected assign shape: %+v", assign)
	}
	bin, ok := assign.Rhs.(value.Binary)
	if !ok || bin.Op != value.OpAdd {
		t.Fatalf("rhs = %+v, want Binary{Op: OpAdd}", assign.Rhs)
	}
}

func TestParsesIndexedAssignment(t *testing.T) {
	stmts := parseAll(t, "a[1] = 5;")
	assign := stmts[0].(value.Assign)
	if assign.Name != "a" || assign.Index == nil {
		t.Fatalf("unexpected assign shape: %+v", assign)
	}
}

func TestParsesIfAndWhile(t *testing.T) {
	stmts := parseAll(t, "if (1) { print 1; } while (0) { print 2; }")
	if len(stmts) != 2 {
		t.Fatalf("got %d statements, want 2", len(stmts))
	}
	if _, ok := stmts[0].(value.If); !ok {
		t.Fatalf("got %T, want value.If", stmts[0])
	}
	if _, ok := stmts[1].(value.While); !ok {
		t.Fatalf("got %T, want value.While", stmts[1])
	}
}

func TestParsesPush(t *testing.T) {
	stmts := parseAll(t, "push a, 3;")
	if _, ok := stmts[0].(value.Push); !ok {
		t.Fatalf("got %T, want value.Push", stmts[0])
	}
}

func TestParsesSequenceLiteral(t *testing.T) {
	stmts := parseAll(t, "a = [1, 2, 3];")
	assign := stmts[0].(value.Assign)
	seqInit, ok := assign.Rhs.(value.SeqInit)
	if !ok {
		t.Fatalf("rhs = %T, want value.SeqInit", assign.Rhs)
	}
	if len(seqInit.Elems) != 3 {
		t.Fatalf("got %d elements, want 3", len(seqInit.Elems))
	}
}

func TestParsesEmptySequenceLiteral(t *testing.T) {
	stmts := parseAll(t, "a = [];")
	assign := stmts[0].(value.Assign)
	seqInit := assign.Rhs.(value.SeqInit)
	if len(seqInit.Elems) != 0 {
		t.Fatalf("got %d elements, want 0", len(seqInit.Elems))
	}
}

func TestParsesStringLiteralAsSeqInit(t *testing.T) {
	stmts := parseAll(t, `a = "hi";`)
	assign := stmts[0].(value.Assign)
	seqInit := assign.Rhs.(value.SeqInit)
	if len(seqInit.Elems) != 2 {
		t.Fatalf("got %d elements, want 2", len(seqInit.Elems))
	}
	first := seqInit.Elems[0].(value.LitInt)
	if first.Val != 'h' {
		t.Fatalf("first element = %d, want %d", first.Val, 'h')
	}
}

func TestParsesLeftAssociativeChain(t *testing.T) {
	stmts := parseAll(t, "a = 1 + 2 + 3;")
	assign := stmts[0].(value.Assign)
	outer := assign.Rhs.(value.Binary)
	if outer.Op != value.OpAdd {
		t.Fatalf("outer op = %v, want OpAdd", outer.Op)
	}
	inner, ok := outer.Left.(value.Binary)
	if !ok || inner.Op != value.OpAdd {
		t.Fatalf("left associativity broken: left = %+v", outer.Left)
	}
	if _, ok := outer.Right.(value.LitInt); !ok {
		t.Fatalf("right = %T, want value.LitInt", outer.Right)
	}
}

func TestSyntaxErrorReportsLine(t *testing.T) {
	defer func() {
		r := recover()
		if r == nil {
			t.Fatal("expected syntax error panic")
		}
		err, ok := r.(value.Error)
		if !ok {
			t.Fatalf("expected value.Error, got %T", r)
		}
		if err.Error() != "line 2: syntax error" {
			t.Fatalf("got %q, want %q", err.Error(), "line 2: syntax error")
		}
	}()
	parseAll(t, "a = 1;\na = ;")
}
