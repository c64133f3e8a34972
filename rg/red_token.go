package rg

import (
	"iter"

	"github.com/torii-format/torii/text"
)

// RedToken is the leaf counterpart of RedNode: a view of a green token
// with a parent link and sibling ordinal.
type RedToken[K Kind] struct {
	root   *treeRoot[K]
	parent *RedNode[K]
	index  int
	green  *GreenToken[K]
}

func (t *RedToken[K]) Green() *GreenToken[K] { return t.green }

func (t *RedToken[K]) Kind() K { return t.green.Kind() }

func (t *RedToken[K]) Text() string { return t.green.Text() }

func (t *RedToken[K]) Parent() *RedNode[K] { return t.parent }

func (t *RedToken[K]) Index() int { return t.index }

func (t *RedToken[K]) offset() int {
	off := t.parent.offset()
	for _, c := range t.parent.Green().Children()[:t.index] {
		off += c.TextLen()
	}
	return off
}

func (t *RedToken[K]) Span() text.Span {
	off := t.offset()
	return text.NewSpan(off, off+t.green.TextLen())
}

func (t *RedToken[K]) Range(ix *text.LineIndex) text.Range {
	return ix.Range(t.Span())
}

func (t *RedToken[K]) NextSiblingOrToken() RedElement[K] {
	if t.index+1 >= len(t.parent.Green().Children()) {
		return RedElement[K]{}
	}
	return t.parent.childAt(t.index + 1)
}

func (t *RedToken[K]) PrevSiblingOrToken() RedElement[K] {
	if t.index == 0 {
		return RedElement[K]{}
	}
	return t.parent.childAt(t.index - 1)
}

// Ancestors walks upward starting with the token's parent.
func (t *RedToken[K]) Ancestors() iter.Seq[*RedNode[K]] {
	return t.parent.Ancestors()
}

func (t *RedToken[K]) EqualTo(o *RedToken[K]) bool {
	return t.green == o.green && t.offset() == o.offset()
}

// Detach removes this token from its parent, copy-on-write like
// RedNode.Detach. Panics on a read-only tree.
func (t *RedToken[K]) Detach() {
	if !t.root.mutable {
		panic("rg: Detach on read-only tree")
	}
	rebuildWithout(t.root, t.parent, t.index)
}

// RedElement is the node-or-token union of red tree elements. The zero
// value means "none" (e.g. no next sibling).
type RedElement[K Kind] struct {
	node  *RedNode[K]
	token *RedToken[K]
}

func (e RedElement[K]) IsNil() bool   { return e.node == nil && e.token == nil }
func (e RedElement[K]) IsNode() bool  { return e.node != nil }
func (e RedElement[K]) IsToken() bool { return e.token != nil }

func (e RedElement[K]) AsNode() *RedNode[K]   { return e.node }
func (e RedElement[K]) AsToken() *RedToken[K] { return e.token }

func (e RedElement[K]) Kind() K {
	if e.node != nil {
		return e.node.Kind()
	}
	return e.token.Kind()
}

func (e RedElement[K]) Span() text.Span {
	if e.node != nil {
		return e.node.Span()
	}
	return e.token.Span()
}

func (e RedElement[K]) Range(ix *text.LineIndex) text.Range {
	return ix.Range(e.Span())
}

func (e RedElement[K]) Index() int {
	if e.node != nil {
		return e.node.Index()
	}
	return e.token.Index()
}

func (e RedElement[K]) Parent() *RedNode[K] {
	if e.node != nil {
		return e.node.Parent()
	}
	return e.token.Parent()
}

func (e RedElement[K]) NextSiblingOrToken() RedElement[K] {
	if e.node != nil {
		return e.node.NextSiblingOrToken()
	}
	return e.token.NextSiblingOrToken()
}

func (e RedElement[K]) PrevSiblingOrToken() RedElement[K] {
	if e.node != nil {
		return e.node.PrevSiblingOrToken()
	}
	return e.token.PrevSiblingOrToken()
}

func (e RedElement[K]) Ancestors() iter.Seq[*RedNode[K]] {
	if e.node != nil {
		return e.node.Ancestors()
	}
	return e.token.Ancestors()
}

func (e RedElement[K]) Detach() {
	if e.node != nil {
		e.node.Detach()
		return
	}
	e.token.Detach()
}

func (e RedElement[K]) Text() string {
	if e.node != nil {
		return e.node.Text()
	}
	return e.token.Text()
}
