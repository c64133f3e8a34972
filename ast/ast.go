// Package ast provides typed wrappers over the untyped syntax tree.
// A wrapper is a disposable view; casting never copies the tree.
package ast

import "github.com/torii-format/torii/syntax"

// Node is a typed view of one syntax node.
type Node interface {
	Syntax() *syntax.SyntaxNode
}

// CastTo casts a syntax node to a concrete typed wrapper. It fails
// only when the node's kind cannot back the requested type.
func CastTo[T Node](n *syntax.SyntaxNode) (T, bool) {
	var zero T
	if n == nil {
		return zero, false
	}
	var out Node
	switch any(zero).(type) {
	case *Root:
		if n.Kind() == syntax.Root {
			out = &Root{syntax: n}
		}
	case *Table:
		if n.Kind() == syntax.Table {
			out = &Table{syntax: n}
		}
	case *ArrayOfTable:
		if n.Kind() == syntax.ArrayOfTable {
			out = &ArrayOfTable{syntax: n}
		}
	case *TableHeader:
		if n.Kind() == syntax.TableHeader {
			out = &TableHeader{syntax: n}
		}
	case *ArrayTableHeader:
		if n.Kind() == syntax.ArrayTableHeader {
			out = &ArrayTableHeader{syntax: n}
		}
	case *KeyValue:
		if n.Kind() == syntax.KeyValue {
			out = &KeyValue{syntax: n}
		}
	case *Keys:
		if n.Kind() == syntax.Keys {
			out = &Keys{syntax: n}
		}
	case *Key:
		if n.Kind() == syntax.Key {
			out = &Key{syntax: n}
		}
	case *Value:
		if n.Kind() == syntax.Value {
			out = &Value{syntax: n}
		}
	case *Array:
		if n.Kind() == syntax.Array {
			out = &Array{syntax: n}
		}
	case *InlineTable:
		if n.Kind() == syntax.InlineTable {
			out = &InlineTable{syntax: n}
		}
	}
	if out == nil {
		return zero, false
	}
	return out.(T), true
}

// childNodes collects typed casts of the node children of n that match
// the requested type.
func childNodes[T Node](n *syntax.SyntaxNode) []T {
	var out []T
	for _, c := range n.ChildNodes() {
		if t, ok := CastTo[T](c); ok {
			out = append(out, t)
		}
	}
	return out
}

// firstChildNode returns the first node child matching the type.
func firstChildNode[T Node](n *syntax.SyntaxNode) (T, bool) {
	for _, c := range n.ChildNodes() {
		if t, ok := CastTo[T](c); ok {
			return t, true
		}
	}
	var zero T
	return zero, false
}

// firstNonTriviaToken returns the first token child that is not
// trivia, or nil.
func firstNonTriviaToken(n *syntax.SyntaxNode) *syntax.SyntaxToken {
	for _, c := range n.Children() {
		if c.IsToken() && !c.Kind().IsTrivia() {
			return c.AsToken()
		}
	}
	return nil
}
