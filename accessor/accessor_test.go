package accessor_test

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/torii-format/torii/accessor"
	"github.com/torii-format/torii/document"
	"github.com/torii-format/torii/parser"
	"github.com/torii-format/torii/text"
)

func TestParsePath(t *testing.T) {
	tests := []struct {
		in   string
		want []accessor.Accessor
	}{
		{"", nil},
		{"a", []accessor.Accessor{accessor.KeyAccessor("a")}},
		{"a.b.c", []accessor.Accessor{
			accessor.KeyAccessor("a"),
			accessor.KeyAccessor("b"),
			accessor.KeyAccessor("c"),
		}},
		{"a[0]", []accessor.Accessor{
			accessor.KeyAccessor("a"),
			accessor.IndexAccessor(0),
		}},
		{"a[2][10].b", []accessor.Accessor{
			accessor.KeyAccessor("a"),
			accessor.IndexAccessor(2),
			accessor.IndexAccessor(10),
			accessor.KeyAccessor("b"),
		}},
		{`"a.b".c`, []accessor.Accessor{
			accessor.KeyAccessor("a.b"),
			accessor.KeyAccessor("c"),
		}},
		{`x.'we[ird]'`, []accessor.Accessor{
			accessor.KeyAccessor("x"),
			accessor.KeyAccessor("we[ird]"),
		}},
	}
	for _, tc := range tests {
		got, err := accessor.ParsePath(tc.in)
		if err != nil {
			t.Errorf("ParsePath(%q): %v", tc.in, err)
			continue
		}
		if diff := cmp.Diff(tc.want, got, cmp.Comparer(accessorEq)); diff != "" {
			t.Errorf("ParsePath(%q) (-want +got):\n%s", tc.in, diff)
		}
	}
}

func accessorEq(a, b accessor.Accessor) bool {
	return a.IsKey() == b.IsKey() && a.Key == b.Key && a.Index == b.Index
}

func TestParsePathErrors(t *testing.T) {
	for _, in := range []string{
		"a.",
		".a",
		"a..b",
		"a[",
		"a[x]",
		"a[-1]",
		`a."open`,
		"a[0]b",
	} {
		if _, err := accessor.ParsePath(in); !errors.Is(err, accessor.ErrBadPath) {
			t.Errorf("ParsePath(%q) = %v, want ErrBadPath", in, err)
		}
	}
}

func TestFormatRoundTrip(t *testing.T) {
	for _, in := range []string{"a", "a.b.c", "a[0].b", "x[1][2]"} {
		path, err := accessor.ParsePath(in)
		if err != nil {
			t.Fatalf("ParsePath(%q): %v", in, err)
		}
		if got := accessor.Format(path); got != in {
			t.Errorf("Format(ParsePath(%q)) = %q", in, got)
		}
	}
}

func evalDoc(t *testing.T, src string) *document.Table {
	t.Helper()
	p := parser.Parse(src)
	if len(p.Errors()) != 0 {
		t.Fatalf("parse: %v", p.Errors())
	}
	doc, errs := document.FromRoot(p.Tree(), text.NewLineIndex(src))
	if len(errs) != 0 {
		t.Fatalf("eval: %v", errs)
	}
	return doc
}

func TestGetPath(t *testing.T) {
	doc := evalDoc(t, `
[servers.alpha]
ports = [8001, 8002]
name = "alpha"
[[jobs]]
cmd = "build"
[[jobs]]
cmd = "test"
`)
	if v, err := accessor.GetPath(doc, "servers.alpha.name"); err != nil {
		t.Error(err)
	} else if got := v.(*document.String).Value; got != "alpha" {
		t.Errorf("name = %q", got)
	}
	if v, err := accessor.GetPath(doc, "servers.alpha.ports[1]"); err != nil {
		t.Error(err)
	} else if got := v.(*document.Integer).Value; got != 8002 {
		t.Errorf("ports[1] = %d", got)
	}
	if v, err := accessor.GetPath(doc, "jobs[1].cmd"); err != nil {
		t.Error(err)
	} else if got := v.(*document.String).Value; got != "test" {
		t.Errorf("jobs[1].cmd = %q", got)
	}
	if v, err := accessor.GetPath(doc, ""); err != nil {
		t.Error(err)
	} else if v != document.Value(doc) {
		t.Error("empty path should return the document itself")
	}
}

func TestGetPathNotFound(t *testing.T) {
	doc := evalDoc(t, "a = [1]\nb = 2\n")
	for _, path := range []string{
		"missing",
		"a[3]",
		"a.key",
		"b[0]",
		"b.c",
	} {
		if _, err := accessor.GetPath(doc, path); !errors.Is(err, accessor.ErrNotFound) {
			t.Errorf("GetPath(%q) = %v, want ErrNotFound", path, err)
		}
	}
}
