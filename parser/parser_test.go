package parser

import (
	"strings"
	"testing"

	"github.com/sergi/go-diff/diffmatchpatch"

	"github.com/torii-format/torii/ast"
	"github.com/torii-format/torii/syntax"
)

// requireRoundTrip parses and checks the tree re-renders the source
// byte for byte.
func requireRoundTrip(t *testing.T, source string) Parsed[*ast.Root] {
	t.Helper()
	p := Parse(source)
	got := p.SyntaxNode().Text()
	if got != source {
		dmp := diffmatchpatch.New()
		diffs := dmp.DiffMain(source, got, false)
		t.Fatalf("round trip failed:\n%s", dmp.DiffPrettyText(diffs))
	}
	return p
}

func TestParseRoundTrip(t *testing.T) {
	sources := []string{
		"",
		"\n",
		"# just a comment\n",
		"key = 1\n",
		"a = 1\nb = \"two\"\nc = 3.0\n",
		"a.b.c = true\n'quoted key' = 1\n\"basic key\" = 2\n",
		"[table]\nx = 1\n\n[other.nested]\ny = 2 # trailing\n",
		"[[fruit]]\nname = \"apple\"\n[[fruit]]\nname = \"pear\"\n",
		"arr = [1, 2, 3]\nnested = [[1], [2, 3]]\n",
		"multi = [\n  1, # one\n  2,\n]\n",
		"inline = { a = 1, b = { c = [true] } }\n",
		"dates = [2024-01-02, 07:32:00, 1979-05-27T07:32:00Z]\n",
		"m = \"\"\"\nbody\n\"\"\"\nl = '''raw'''\n",
		// malformed inputs still round-trip
		"b = !!!\n",
		"= 1\n",
		"[unclosed\nx = 1\n",
		"a = \n",
		"arr = [1, , 2]\n",
		"t = { x = 1\ny = 2 }\n",
		"key = \"unterminated\nnext = 1\n",
	}
	for _, src := range sources {
		requireRoundTrip(t, src)
	}
}

func TestParseCleanHasNoErrors(t *testing.T) {
	p := requireRoundTrip(t, "a = 1\n[t]\nb = [true, 'x']\n")
	if len(p.Errors()) != 0 {
		t.Errorf("unexpected diagnostics: %v", p.Errors())
	}
	tree, errs := p.TryTree()
	if errs != nil || tree == nil {
		t.Errorf("TryTree should succeed on a clean parse")
	}
}

// TestParseErrorContainment: one malformed line costs one diagnostic
// and the lines around it still parse.
func TestParseErrorContainment(t *testing.T) {
	p := requireRoundTrip(t, "a = 1\nb = !!!\nc = 3\n")
	if len(p.Errors()) != 1 {
		t.Fatalf("expected exactly one diagnostic, got %v", p.Errors())
	}

	root := p.Tree()
	kvs := root.KeyValues()
	if len(kvs) != 3 {
		t.Fatalf("expected 3 key-values, got %d", len(kvs))
	}
	for i, want := range []string{"a", "b", "c"} {
		keys, ok := kvs[i].Keys()
		if !ok {
			t.Fatalf("kv %d has no keys", i)
		}
		txt, err := keys.Keys()[0].Text()
		if err != nil || txt != want {
			t.Errorf("kv %d key = %q (%v), want %q", i, txt, err, want)
		}
	}
	// a and c have usable values; b's value is an error island.
	for _, i := range []int{0, 2} {
		v, ok := kvs[i].Value()
		if !ok || v.Scalar() == nil {
			t.Errorf("kv %d should have a scalar value", i)
		}
	}
	if v, ok := kvs[1].Value(); ok && v.Scalar() != nil {
		t.Errorf("kv 1 should not have a scalar value")
	}

	if _, errs := p.TryTree(); errs == nil {
		t.Errorf("TryTree should fail when diagnostics exist")
	}
}

func TestParseTables(t *testing.T) {
	p := requireRoundTrip(t, "top = 0\n[alpha]\na = 1\nb = 2\n[beta.gamma]\nc = 3\n")
	root := p.Tree()

	if kvs := root.KeyValues(); len(kvs) != 1 {
		t.Fatalf("expected 1 top-level key-value, got %d", len(kvs))
	}
	tables := root.Tables()
	if len(tables) != 2 {
		t.Fatalf("expected 2 tables, got %d", len(tables))
	}
	if kvs := tables[0].KeyValues(); len(kvs) != 2 {
		t.Errorf("[alpha] should hold 2 key-values, got %d", len(kvs))
	}
	header, ok := tables[1].Header()
	if !ok {
		t.Fatal("missing header")
	}
	keys, _ := header.Keys()
	if got := len(keys.Keys()); got != 2 {
		t.Errorf("[beta.gamma] header should have 2 key segments, got %d", got)
	}
}

func TestParseArrayOfTables(t *testing.T) {
	p := requireRoundTrip(t, "[[fruit]]\nname = \"apple\"\n[[fruit]]\nname = \"pear\"\n")
	root := p.Tree()
	aots := root.ArrayOfTables()
	if len(aots) != 2 {
		t.Fatalf("expected 2 array-of-table sections, got %d", len(aots))
	}
	for _, aot := range aots {
		if _, ok := aot.Header(); !ok {
			t.Errorf("array table missing header")
		}
		if len(aot.KeyValues()) != 1 {
			t.Errorf("each section should hold one key-value")
		}
	}
}

// TestParseBracketDisambiguation: `[[` only opens an array of tables
// at the start of a line; inside a value it is nested arrays.
func TestParseBracketDisambiguation(t *testing.T) {
	p := requireRoundTrip(t, "a = [[1], [2]]\n")
	if len(p.Errors()) != 0 {
		t.Fatalf("unexpected diagnostics: %v", p.Errors())
	}
	root := p.Tree()
	if len(root.ArrayOfTables()) != 0 {
		t.Fatalf("value brackets must not parse as array-of-tables")
	}
	kv := root.KeyValues()[0]
	v, _ := kv.Value()
	arr, ok := v.Array()
	if !ok {
		t.Fatal("expected an array value")
	}
	if got := len(arr.Values()); got != 2 {
		t.Fatalf("expected 2 elements, got %d", got)
	}
	for _, el := range arr.Values() {
		if _, ok := el.Array(); !ok {
			t.Errorf("elements should be nested arrays")
		}
	}
}

func TestParseInlineTable(t *testing.T) {
	p := requireRoundTrip(t, "point = { x = 1, y = -2 }\n")
	if len(p.Errors()) != 0 {
		t.Fatalf("unexpected diagnostics: %v", p.Errors())
	}
	v, _ := p.Tree().KeyValues()[0].Value()
	it, ok := v.InlineTable()
	if !ok {
		t.Fatal("expected inline table")
	}
	if got := len(it.KeyValues()); got != 2 {
		t.Errorf("expected 2 pairs, got %d", got)
	}
}

func TestParseMissingValue(t *testing.T) {
	p := requireRoundTrip(t, "a =\nb = 2\n")
	if len(p.Errors()) != 1 {
		t.Fatalf("expected one diagnostic, got %v", p.Errors())
	}
	kvs := p.Tree().KeyValues()
	if len(kvs) != 2 {
		t.Fatalf("expected 2 key-values, got %d", len(kvs))
	}
	if _, ok := kvs[0].Value(); ok {
		t.Errorf("first key-value should have no value node")
	}
}

func TestParseUnclosedArrayAtEOF(t *testing.T) {
	p := requireRoundTrip(t, "a = [1, 2")
	if len(p.Errors()) != 1 {
		t.Fatalf("expected one diagnostic, got %v", p.Errors())
	}
	v, _ := p.Tree().KeyValues()[0].Value()
	arr, ok := v.Array()
	if !ok {
		t.Fatal("expected array value despite missing bracket")
	}
	if got := len(arr.Values()); got != 2 {
		t.Errorf("expected both elements, got %d", got)
	}
}

func TestParseKeyKinds(t *testing.T) {
	p := requireRoundTrip(t, "1234 = \"a\"\ntrue = \"b\"\n2001-02-08 = \"c\"\n")
	if len(p.Errors()) != 0 {
		t.Fatalf("number-, boolean-, and date-shaped keys are legal: %v", p.Errors())
	}
	kvs := p.Tree().KeyValues()
	want := []string{"1234", "true", "2001-02-08"}
	for i, kv := range kvs {
		keys, _ := kv.Keys()
		txt, _ := keys.Keys()[0].Text()
		if txt != want[i] {
			t.Errorf("key %d = %q, want %q", i, txt, want[i])
		}
	}
}

func TestParsedClone(t *testing.T) {
	p := Parse("a = 1\n")
	q := p.Clone()
	if q.GreenNode() != p.GreenNode() {
		t.Errorf("Clone must share the green tree")
	}
}

func TestParsedMutIndependence(t *testing.T) {
	p := Parse("a = 1\nb = 2\n")
	m := p.SyntaxNodeMut()
	m.ChildNodes()[0].Detach()
	if got := m.Text(); got == p.SyntaxNode().Text() {
		t.Errorf("edit should not be visible through fresh read-only cursors")
	}
	if p.SyntaxNode().Text() != "a = 1\nb = 2\n" {
		t.Errorf("underlying parse must stay intact")
	}
}

func TestCast(t *testing.T) {
	p := Parse("a = 1\n")
	if _, ok := Cast[*ast.Root](p); !ok {
		t.Errorf("casting a root parse to *ast.Root should succeed")
	}
	if _, ok := Cast[*ast.Array](p); ok {
		t.Errorf("casting a root parse to *ast.Array should fail")
	}
}

func findNode(n *syntax.SyntaxNode, kind syntax.Kind) *syntax.SyntaxNode {
	if n.Kind() == kind {
		return n
	}
	for _, c := range n.ChildNodes() {
		if f := findNode(c, kind); f != nil {
			return f
		}
	}
	return nil
}

func TestParseTrailingCommentStaysOutsideIsland(t *testing.T) {
	p := requireRoundTrip(t, "a = 1 garbage # note\nb = 2\n")
	if len(p.Errors()) != 1 {
		t.Fatalf("expected one diagnostic, got %v", p.Errors())
	}
	island := findNode(p.SyntaxNode(), syntax.ErrorTok)
	if island == nil {
		t.Fatal("trailing garbage should be wrapped in an error node")
	}
	if strings.Contains(island.Text(), "#") {
		t.Errorf("comment should stay trivia outside the island, got %q", island.Text())
	}
	kvs := p.Tree().KeyValues()
	if len(kvs) != 2 {
		t.Fatalf("expected both key-values, got %d", len(kvs))
	}
}

func TestParseErrorIslandKind(t *testing.T) {
	p := requireRoundTrip(t, "@@@ = 1\n")
	if len(p.Errors()) == 0 {
		t.Fatal("expected diagnostics")
	}
	var sawIsland bool
	for _, c := range p.SyntaxNode().ChildNodes() {
		if c.Kind() == syntax.ErrorTok {
			sawIsland = true
		}
	}
	if !sawIsland {
		t.Errorf("unexpected top-level material should be wrapped in an error node")
	}
}
