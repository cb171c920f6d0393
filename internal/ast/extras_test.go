package ast_test

import (
	"testing"

	"kremap/internal/ast"
)

func TestNilExtrasIsEmpty(t *testing.T) {
	var e *ast.Extras
	n := &ast.Name{Name: "x"}
	if got := e.ExtrasBefore(n); got != nil {
		t.Fatalf("ExtrasBefore on nil map = %v", got)
	}
	if e.Len() != 0 {
		t.Fatalf("Len on nil map = %d", e.Len())
	}
}

func TestExtrasKeepOrderPerPosition(t *testing.T) {
	e := ast.NewExtras()
	n := &ast.Name{Name: "x"}
	a := &ast.Comment{Text: "// a", StartsLine: true, EndsLine: true}
	b := &ast.Comment{Text: "// b", StartsLine: true, EndsLine: true}
	blank := &ast.BlankLines{Count: 1}
	e.AddBefore(n, a)
	e.AddBefore(n, blank, b)
	e.AddAfter(n, &ast.Comment{Text: "// tail", EndsLine: true})

	got := e.ExtrasBefore(n)
	if len(got) != 3 || got[0] != ast.Extra(a) || got[1] != ast.Extra(blank) || got[2] != ast.Extra(b) {
		t.Fatalf("before = %v", got)
	}
	if len(e.ExtrasWithin(n)) != 0 {
		t.Fatalf("within should be empty")
	}
	if e.Len() != 4 {
		t.Fatalf("Len = %d, want 4", e.Len())
	}
}

func TestMigrateMovesEveryPosition(t *testing.T) {
	e := ast.NewExtras()
	from := &ast.Name{Name: "old"}
	to := &ast.Name{Name: "new"}
	e.AddBefore(from, &ast.Comment{Text: "// b"})
	e.AddWithin(from, &ast.Comment{Text: "// w"})
	e.AddAfter(from, &ast.Comment{Text: "// a"})
	e.AddBefore(to, &ast.Comment{Text: "// first"})

	e.Migrate(from, to)

	if len(e.ExtrasBefore(from))+len(e.ExtrasWithin(from))+len(e.ExtrasAfter(from)) != 0 {
		t.Fatalf("extras left on the old node")
	}
	before := e.ExtrasBefore(to)
	if len(before) != 2 || before[0].(*ast.Comment).Text != "// first" || before[1].(*ast.Comment).Text != "// b" {
		t.Fatalf("before after migrate = %v", before)
	}
	if len(e.ExtrasWithin(to)) != 1 || len(e.ExtrasAfter(to)) != 1 {
		t.Fatalf("within/after not migrated")
	}
}

func TestCloneIsIndependent(t *testing.T) {
	e := ast.NewExtras()
	n := &ast.Name{Name: "x"}
	e.AddBefore(n, &ast.Comment{Text: "// a"})
	c := e.Clone()
	c.AddBefore(n, &ast.Comment{Text: "// b"})
	if len(e.ExtrasBefore(n)) != 1 {
		t.Fatalf("original changed by clone: %v", e.ExtrasBefore(n))
	}
	if len(c.ExtrasBefore(n)) != 2 {
		t.Fatalf("clone = %v", c.ExtrasBefore(n))
	}
}
