package parser

import (
	"fmt"

	"github.com/torii-format/torii/ast"
	"github.com/torii-format/torii/syntax"
)

// Parsed couples one finished green tree with the diagnostics that
// accumulated while building it, typed by the AST wrapper its root
// casts into. Cloning a Parsed clones a tree handle, not the tree.
type Parsed[T ast.Node] struct {
	green  *syntax.GreenNode
	errors []syntax.Error
}

func NewParsed[T ast.Node](green *syntax.GreenNode, errors []syntax.Error) Parsed[T] {
	return Parsed[T]{green: green, errors: errors}
}

// GreenNode returns the tree root.
func (p Parsed[T]) GreenNode() *syntax.GreenNode { return p.green }

// Errors returns the accumulated diagnostics in source order.
func (p Parsed[T]) Errors() []syntax.Error { return p.errors }

// SyntaxNode wraps the root in a read-only cursor.
func (p Parsed[T]) SyntaxNode() *syntax.SyntaxNode { return syntax.NewRoot(p.green) }

// SyntaxNodeMut wraps the root in an editable cursor. Each call opens
// an independent editing session over the shared green tree.
func (p Parsed[T]) SyntaxNodeMut() *syntax.SyntaxNode { return syntax.NewRootMut(p.green) }

// Tree casts the root into the typed wrapper. It panics only when the
// type cannot represent the grammar's fixed root kind, which is a
// programming error in the consumer, never malformed input.
func (p Parsed[T]) Tree() T {
	t, ok := ast.CastTo[T](p.SyntaxNode())
	if !ok {
		panic(fmt.Sprintf("parser: root kind %s cannot back %T", p.green.Kind(), t))
	}
	return t
}

// TryTree returns the typed tree only when no diagnostics accumulated;
// otherwise it returns the diagnostics. Callers choose between
// best-effort (Tree) and strict (TryTree) handling.
func (p Parsed[T]) TryTree() (T, []syntax.Error) {
	if len(p.errors) > 0 {
		var zero T
		return zero, p.errors
	}
	return p.Tree(), nil
}

// Clone is a cheap handle copy; the green tree is shared.
func (p Parsed[T]) Clone() Parsed[T] {
	return Parsed[T]{green: p.green, errors: p.errors}
}

// Cast re-types a parse result. It fails when the root kind cannot
// back the requested wrapper.
func Cast[N ast.Node, T ast.Node](p Parsed[T]) (Parsed[N], bool) {
	if _, ok := ast.CastTo[N](p.SyntaxNode()); !ok {
		return Parsed[N]{}, false
	}
	return Parsed[N]{green: p.green, errors: p.errors}, true
}
