package ast_test

import (
	"testing"

	"github.com/torii-format/torii/ast"
	"github.com/torii-format/torii/parser"
	"github.com/torii-format/torii/syntax"
)

func parseRoot(t *testing.T, src string) *ast.Root {
	t.Helper()
	p := parser.Parse(src)
	if len(p.Errors()) != 0 {
		t.Fatalf("parse %q: %v", src, p.Errors())
	}
	return p.Tree()
}

func TestCastTo(t *testing.T) {
	root := parseRoot(t, "a = 1\n")
	if _, ok := ast.CastTo[*ast.Root](root.Syntax()); !ok {
		t.Errorf("root node should cast to *ast.Root")
	}
	if _, ok := ast.CastTo[*ast.Table](root.Syntax()); ok {
		t.Errorf("root node must not cast to *ast.Table")
	}
	if _, ok := ast.CastTo[*ast.Root](nil); ok {
		t.Errorf("nil never casts")
	}
}

func TestRootItemsOrder(t *testing.T) {
	root := parseRoot(t, "x = 1\n[t]\ny = 2\n[[arr]]\nz = 3\n")
	items := root.Items()
	if len(items) != 3 {
		t.Fatalf("expected 3 items, got %d", len(items))
	}
	if _, ok := items[0].(*ast.KeyValue); !ok {
		t.Errorf("item 0 should be a key-value")
	}
	if _, ok := items[1].(*ast.Table); !ok {
		t.Errorf("item 1 should be a table")
	}
	if _, ok := items[2].(*ast.ArrayOfTable); !ok {
		t.Errorf("item 2 should be an array-of-table")
	}
}

func TestKeyText(t *testing.T) {
	root := parseRoot(t, "bare = 1\n\"ba\\u0073ic\" = 2\n'lit.eral' = 3\n")
	kvs := root.KeyValues()
	want := []string{"bare", "basic", "lit.eral"}
	for i, kv := range kvs {
		keys, _ := kv.Keys()
		txt, err := keys.Keys()[0].Text()
		if err != nil || txt != want[i] {
			t.Errorf("key %d = %q (%v), want %q", i, txt, err, want[i])
		}
	}
}

func TestDottedKeys(t *testing.T) {
	root := parseRoot(t, "a . b.c = 1\n")
	keys, _ := root.KeyValues()[0].Keys()
	segs := keys.Keys()
	if len(segs) != 3 {
		t.Fatalf("expected 3 segments, got %d", len(segs))
	}
	want := []string{"a", "b", "c"}
	for i, k := range segs {
		txt, _ := k.Text()
		if txt != want[i] {
			t.Errorf("segment %d = %q, want %q", i, txt, want[i])
		}
	}
}

func TestValueShapes(t *testing.T) {
	root := parseRoot(t, "s = 'x'\narr = [1]\nit = { a = 1 }\n")
	kvs := root.KeyValues()

	v, _ := kvs[0].Value()
	if tok := v.Scalar(); tok == nil || tok.Kind() != syntax.LiteralString {
		t.Errorf("expected literal string scalar")
	}
	if _, ok := v.Array(); ok {
		t.Errorf("scalar value should not expose an array")
	}

	v, _ = kvs[1].Value()
	arr, ok := v.Array()
	if !ok || len(arr.Values()) != 1 {
		t.Errorf("expected one-element array")
	}
	if v.Scalar() != nil {
		t.Errorf("array value should have no scalar token")
	}

	v, _ = kvs[2].Value()
	it, ok := v.InlineTable()
	if !ok || len(it.KeyValues()) != 1 {
		t.Errorf("expected one-pair inline table")
	}
}

func TestSpansCoverSource(t *testing.T) {
	src := "alpha = 1\n[table]\nbeta = 'v'\n"
	root := parseRoot(t, src)
	table := root.Tables()[0]
	span := table.Syntax().Span()
	if got := src[span.Start:span.End]; got != "[table]\nbeta = 'v'\n" {
		t.Errorf("table span covers %q", got)
	}
	kv := table.KeyValues()[0]
	kvSpan := kv.Syntax().Span()
	if got := src[kvSpan.Start:kvSpan.End]; got != "beta = 'v'" {
		t.Errorf("key-value span covers %q", got)
	}
}
