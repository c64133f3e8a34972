package document_test

import (
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/torii-format/torii/document"
	"github.com/torii-format/torii/parser"
	"github.com/torii-format/torii/text"
)

func eval(t *testing.T, src string) (*document.Table, []document.Error) {
	t.Helper()
	p := parser.Parse(src)
	if len(p.Errors()) != 0 {
		t.Fatalf("parse %q: %v", src, p.Errors())
	}
	return document.FromRoot(p.Tree(), text.NewLineIndex(src))
}

func mustGet(t *testing.T, tbl *document.Table, key string) document.Value {
	t.Helper()
	v, ok := tbl.Get(key)
	if !ok {
		t.Fatalf("missing key %q", key)
	}
	return v
}

func TestFromRootScalars(t *testing.T) {
	doc, errs := eval(t, `
b = true
i = 42
h = 0xFF
f = 6.5
s = "hi"
d = 1979-05-27
`)
	if len(errs) != 0 {
		t.Fatalf("unexpected errors: %v", errs)
	}
	if got := mustGet(t, doc, "b").(*document.Boolean).Value; got != true {
		t.Errorf("b = %v", got)
	}
	if got := mustGet(t, doc, "i").(*document.Integer).Value; got != 42 {
		t.Errorf("i = %d", got)
	}
	if got := mustGet(t, doc, "h").(*document.Integer).Value; got != 255 {
		t.Errorf("h = %d", got)
	}
	if got := mustGet(t, doc, "f").(*document.Float).Value; got != 6.5 {
		t.Errorf("f = %v", got)
	}
	if got := mustGet(t, doc, "s").(*document.String).Value; got != "hi" {
		t.Errorf("s = %q", got)
	}
	if got := mustGet(t, doc, "d").(*document.LocalDate).Value.Day; got != 27 {
		t.Errorf("d day = %d", got)
	}
}

func TestFromRootKeyOrder(t *testing.T) {
	doc, _ := eval(t, "z = 1\na = 2\nm = 3\n")
	if diff := cmp.Diff([]string{"z", "a", "m"}, doc.Keys()); diff != "" {
		t.Errorf("key order (-want +got):\n%s", diff)
	}
}

func TestFromRootTablesAndDottedKeys(t *testing.T) {
	doc, errs := eval(t, `
top = 1
[server]
host = "localhost"
net.port = 8080
[server.limits]
cpu = 2
`)
	if len(errs) != 0 {
		t.Fatalf("unexpected errors: %v", errs)
	}
	server := mustGet(t, doc, "server").(*document.Table)
	if got := mustGet(t, server, "host").(*document.String).Value; got != "localhost" {
		t.Errorf("host = %q", got)
	}
	net := mustGet(t, server, "net").(*document.Table)
	if got := mustGet(t, net, "port").(*document.Integer).Value; got != 8080 {
		t.Errorf("port = %d", got)
	}
	limits := mustGet(t, server, "limits").(*document.Table)
	if got := mustGet(t, limits, "cpu").(*document.Integer).Value; got != 2 {
		t.Errorf("cpu = %d", got)
	}
}

func TestFromRootArrayOfTables(t *testing.T) {
	doc, errs := eval(t, `
[[fruit]]
name = "apple"
[[fruit]]
name = "pear"
`)
	if len(errs) != 0 {
		t.Fatalf("unexpected errors: %v", errs)
	}
	arr := mustGet(t, doc, "fruit").(*document.Array)
	if arr.Len() != 2 {
		t.Fatalf("fruit has %d elements", arr.Len())
	}
	names := []string{}
	for _, e := range arr.Values() {
		n := mustGet(t, e.(*document.Table), "name").(*document.String).Value
		names = append(names, n)
	}
	if diff := cmp.Diff([]string{"apple", "pear"}, names); diff != "" {
		t.Errorf("names (-want +got):\n%s", diff)
	}
}

func TestFromRootDuplicateKey(t *testing.T) {
	doc, errs := eval(t, "a = 1\na = 2\n")
	if len(errs) != 1 {
		t.Fatalf("expected one error, got %v", errs)
	}
	if !strings.Contains(errs[0].Message, `duplicate key "a"`) {
		t.Errorf("message = %q", errs[0].Message)
	}
	if errs[0].Range.Start.Line != 1 {
		t.Errorf("error should point at the second binding, got %s", errs[0].Range)
	}
	// The first binding survives.
	if got := mustGet(t, doc, "a").(*document.Integer).Value; got != 1 {
		t.Errorf("a = %d, want the first value", got)
	}
}

func TestFromRootConflicts(t *testing.T) {
	tests := []struct {
		src  string
		want string
	}{
		{"[t]\nx = 1\n[t]\ny = 2\n", "already defined"},
		{"a = 1\n[a]\nx = 2\n", "already defined"},
		{"it = { a = 1 }\nit.b = 2\n", "cannot extend inline table"},
		{"arr = [1]\n[[arr]]\nx = 1\n", "already bound"},
		{"s = \"v\"\ns.t = 1\n", "already bound"},
	}
	for _, tc := range tests {
		_, errs := eval(t, tc.src)
		if len(errs) != 1 {
			t.Errorf("%q: expected one error, got %v", tc.src, errs)
			continue
		}
		if !strings.Contains(errs[0].Message, tc.want) {
			t.Errorf("%q: message %q should contain %q", tc.src, errs[0].Message, tc.want)
		}
	}
}

func TestFromRootReopenThroughDotted(t *testing.T) {
	// [a.b] implicitly creates a; a later [a] is a legal promotion,
	// and a second [a] is not.
	_, errs := eval(t, "[a.b]\nx = 1\n[a]\ny = 2\n")
	if len(errs) != 0 {
		t.Fatalf("promotion should be legal: %v", errs)
	}
	_, errs = eval(t, "[a.b]\nx = 1\n[a]\ny = 2\n[a]\nz = 3\n")
	if len(errs) != 1 {
		t.Errorf("second [a] should error: %v", errs)
	}
}

func TestToJSONOrdered(t *testing.T) {
	doc, _ := eval(t, "z = 1\na = \"x\"\n[t]\nb = [true, 2.5]\n")
	out, err := document.ToJSON(doc)
	if err != nil {
		t.Fatal(err)
	}
	want := `{
  "z": 1,
  "a": "x",
  "t": {
    "b": [
      true,
      2.5
    ]
  }
}`
	if string(out) != want {
		t.Errorf("ToJSON =\n%s\nwant\n%s", out, want)
	}
}

func TestToJSONNonFiniteFloats(t *testing.T) {
	doc, _ := eval(t, "a = inf\nb = nan\n")
	out, err := document.ToJSON(doc)
	if err != nil {
		t.Fatal(err)
	}
	got := string(out)
	if !strings.Contains(got, `"inf"`) || !strings.Contains(got, `"nan"`) {
		t.Errorf("non-finite floats should render as strings: %s", got)
	}
}

func TestToYAMLOrdered(t *testing.T) {
	doc, _ := eval(t, "z = 1\na = \"x\"\n[t]\nb = 2\n")
	out, err := document.ToYAML(doc)
	if err != nil {
		t.Fatal(err)
	}
	got := string(out)
	zi := strings.Index(got, "z:")
	ai := strings.Index(got, "a:")
	ti := strings.Index(got, "t:")
	if zi < 0 || ai < 0 || ti < 0 || !(zi < ai && ai < ti) {
		t.Errorf("YAML should keep source key order:\n%s", got)
	}
}

func TestValueRanges(t *testing.T) {
	doc, _ := eval(t, "a = 1\n[t]\nb = 2\n")
	v := mustGet(t, doc, "a")
	if v.Range().Start.Line != 0 {
		t.Errorf("a should sit on line 0, got %s", v.Range())
	}
	tbl := mustGet(t, doc, "t").(*document.Table)
	b := mustGet(t, tbl, "b")
	if b.Range().Start.Line != 2 {
		t.Errorf("b should sit on line 2, got %s", b.Range())
	}
}
