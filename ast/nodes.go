package ast

import "github.com/torii-format/torii/syntax"

// Root is the document node: a sequence of key-values, tables, and
// array-of-table sections, with all trivia preserved underneath.
type Root struct {
	syntax *syntax.SyntaxNode
}

func (r *Root) Syntax() *syntax.SyntaxNode { return r.syntax }

// Items returns the top-level constructs in source order. Error
// islands are skipped; trivia is not represented at this level.
func (r *Root) Items() []Node {
	var out []Node
	for _, c := range r.syntax.ChildNodes() {
		switch c.Kind() {
		case syntax.KeyValue:
			out = append(out, &KeyValue{syntax: c})
		case syntax.Table:
			out = append(out, &Table{syntax: c})
		case syntax.ArrayOfTable:
			out = append(out, &ArrayOfTable{syntax: c})
		}
	}
	return out
}

func (r *Root) KeyValues() []*KeyValue { return childNodes[*KeyValue](r.syntax) }

func (r *Root) Tables() []*Table { return childNodes[*Table](r.syntax) }

func (r *Root) ArrayOfTables() []*ArrayOfTable { return childNodes[*ArrayOfTable](r.syntax) }

// Table is one `[header]` section together with the key-values that
// follow it up to the next section.
type Table struct {
	syntax *syntax.SyntaxNode
}

func (t *Table) Syntax() *syntax.SyntaxNode { return t.syntax }

func (t *Table) Header() (*TableHeader, bool) { return firstChildNode[*TableHeader](t.syntax) }

func (t *Table) KeyValues() []*KeyValue { return childNodes[*KeyValue](t.syntax) }

// ArrayOfTable is one `[[header]]` section.
type ArrayOfTable struct {
	syntax *syntax.SyntaxNode
}

func (t *ArrayOfTable) Syntax() *syntax.SyntaxNode { return t.syntax }

func (t *ArrayOfTable) Header() (*ArrayTableHeader, bool) {
	return firstChildNode[*ArrayTableHeader](t.syntax)
}

func (t *ArrayOfTable) KeyValues() []*KeyValue { return childNodes[*KeyValue](t.syntax) }

type TableHeader struct {
	syntax *syntax.SyntaxNode
}

func (h *TableHeader) Syntax() *syntax.SyntaxNode { return h.syntax }

func (h *TableHeader) Keys() (*Keys, bool) { return firstChildNode[*Keys](h.syntax) }

type ArrayTableHeader struct {
	syntax *syntax.SyntaxNode
}

func (h *ArrayTableHeader) Syntax() *syntax.SyntaxNode { return h.syntax }

func (h *ArrayTableHeader) Keys() (*Keys, bool) { return firstChildNode[*Keys](h.syntax) }

// KeyValue is one `keys = value` binding.
type KeyValue struct {
	syntax *syntax.SyntaxNode
}

func (kv *KeyValue) Syntax() *syntax.SyntaxNode { return kv.syntax }

func (kv *KeyValue) Keys() (*Keys, bool) { return firstChildNode[*Keys](kv.syntax) }

func (kv *KeyValue) Value() (*Value, bool) { return firstChildNode[*Value](kv.syntax) }

// Keys is a dotted key sequence.
type Keys struct {
	syntax *syntax.SyntaxNode
}

func (k *Keys) Syntax() *syntax.SyntaxNode { return k.syntax }

func (k *Keys) Keys() []*Key { return childNodes[*Key](k.syntax) }

// Key is a single key segment: bare, basic-quoted, or literal-quoted.
type Key struct {
	syntax *syntax.SyntaxNode
}

func (k *Key) Syntax() *syntax.SyntaxNode { return k.syntax }

// Token is the key's literal token.
func (k *Key) Token() *syntax.SyntaxToken { return firstNonTriviaToken(k.syntax) }

// Text is the key's value with quoting and escapes resolved.
func (k *Key) Text() (string, error) {
	tok := k.Token()
	if tok == nil {
		return "", nil
	}
	switch tok.Kind() {
	case syntax.BasicString:
		return UnquoteBasic(tok.Text())
	case syntax.LiteralString:
		return UnquoteLiteral(tok.Text())
	default:
		return tok.Text(), nil
	}
}

// Value wraps one value: a scalar token, an array, or an inline table.
type Value struct {
	syntax *syntax.SyntaxNode
}

func (v *Value) Syntax() *syntax.SyntaxNode { return v.syntax }

// Scalar returns the scalar literal token, or nil for arrays and
// inline tables.
func (v *Value) Scalar() *syntax.SyntaxToken {
	tok := firstNonTriviaToken(v.syntax)
	if tok != nil && tok.Kind().IsScalar() {
		return tok
	}
	return nil
}

func (v *Value) Array() (*Array, bool) { return firstChildNode[*Array](v.syntax) }

func (v *Value) InlineTable() (*InlineTable, bool) { return firstChildNode[*InlineTable](v.syntax) }

type Array struct {
	syntax *syntax.SyntaxNode
}

func (a *Array) Syntax() *syntax.SyntaxNode { return a.syntax }

func (a *Array) Values() []*Value { return childNodes[*Value](a.syntax) }

type InlineTable struct {
	syntax *syntax.SyntaxNode
}

func (t *InlineTable) Syntax() *syntax.SyntaxNode { return t.syntax }

func (t *InlineTable) KeyValues() []*KeyValue { return childNodes[*KeyValue](t.syntax) }
