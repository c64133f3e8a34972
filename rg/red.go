package rg

import (
	"iter"

	"github.com/torii-format/torii/text"
)

// treeRoot is the shared anchor of one red tree. In mutable mode,
// structural edits rebuild the green path to the root and swap the
// green pointer here, so root handles observe the new tree.
type treeRoot[K Kind] struct {
	green   *GreenNode[K]
	mutable bool
}

// RedNode is a navigable view of a green node: the green pointer, a
// back-reference to the parent view, and the ordinal index among
// siblings. Red nodes are disposable wrappers allocated during
// traversal; two handles over the same green location are equivalent
// by data and position, never by wrapper identity (see EqualTo).
//
// Red nodes from one tree share only immutable green data, so
// concurrent readers never contend. Mutable trees assume a single
// writer per editing session.
type RedNode[K Kind] struct {
	root   *treeRoot[K]
	parent *RedNode[K]
	index  int
	// green is nil for root handles, which read through the root
	// anchor so they observe copy-on-write edits.
	green *GreenNode[K]
}

// NewRoot wraps a green tree in a read-only navigation root.
func NewRoot[K Kind](green *GreenNode[K]) *RedNode[K] {
	return &RedNode[K]{root: &treeRoot[K]{green: green}}
}

// NewRootMut wraps a green tree in an editable root. Structural edits
// require exclusive access; callers must serialize writers.
func NewRootMut[K Kind](green *GreenNode[K]) *RedNode[K] {
	return &RedNode[K]{root: &treeRoot[K]{green: green, mutable: true}}
}

// Green returns the underlying green node.
func (n *RedNode[K]) Green() *GreenNode[K] {
	if n.parent == nil {
		return n.root.green
	}
	return n.green
}

func (n *RedNode[K]) Kind() K { return n.Green().Kind() }

// Parent returns the parent view, or nil at the root.
func (n *RedNode[K]) Parent() *RedNode[K] { return n.parent }

// Index is the ordinal position among the parent's children.
func (n *RedNode[K]) Index() int { return n.index }

// Mutable reports whether this view belongs to an editable tree.
func (n *RedNode[K]) Mutable() bool { return n.root.mutable }

// offset is the absolute start position, computed by summing the
// lengths of preceding siblings up to the root. It is never cached,
// so it stays consistent after edits elsewhere in a mutable tree.
func (n *RedNode[K]) offset() int {
	if n.parent == nil {
		return 0
	}
	off := n.parent.offset()
	for _, c := range n.parent.Green().Children()[:n.index] {
		off += c.TextLen()
	}
	return off
}

// Span is the absolute half-open byte interval this node covers.
func (n *RedNode[K]) Span() text.Span {
	off := n.offset()
	return text.NewSpan(off, off+n.Green().TextLen())
}

// Range translates Span through a line index.
func (n *RedNode[K]) Range(ix *text.LineIndex) text.Range {
	return ix.Range(n.Span())
}

// Text re-renders the exact source text this node covers.
func (n *RedNode[K]) Text() string { return n.Green().Text() }

func (n *RedNode[K]) childAt(i int) RedElement[K] {
	c := n.Green().Children()[i]
	if c.IsNode() {
		return RedElement[K]{node: &RedNode[K]{root: n.root, parent: n, index: i, green: c.AsNode()}}
	}
	return RedElement[K]{token: &RedToken[K]{root: n.root, parent: n, index: i, green: c.AsToken()}}
}

// Children wraps each child element on demand.
func (n *RedNode[K]) Children() []RedElement[K] {
	g := n.Green().Children()
	out := make([]RedElement[K], len(g))
	for i := range g {
		out[i] = n.childAt(i)
	}
	return out
}

// ChildNodes returns only the node children, in order.
func (n *RedNode[K]) ChildNodes() []*RedNode[K] {
	var out []*RedNode[K]
	for i, c := range n.Green().Children() {
		if c.IsNode() {
			out = append(out, n.childAt(i).node)
		}
	}
	return out
}

func (n *RedNode[K]) NextSiblingOrToken() RedElement[K] {
	if n.parent == nil || n.index+1 >= len(n.parent.Green().Children()) {
		return RedElement[K]{}
	}
	return n.parent.childAt(n.index + 1)
}

func (n *RedNode[K]) PrevSiblingOrToken() RedElement[K] {
	if n.parent == nil || n.index == 0 {
		return RedElement[K]{}
	}
	return n.parent.childAt(n.index - 1)
}

// Ancestors walks upward through parent links, starting with the node
// itself. The walk is lazy, finite, and restartable.
func (n *RedNode[K]) Ancestors() iter.Seq[*RedNode[K]] {
	return func(yield func(*RedNode[K]) bool) {
		for a := n; a != nil; a = a.parent {
			if !yield(a) {
				return
			}
		}
	}
}

// FirstToken returns the first token under this node, or nil when the
// subtree is empty.
func (n *RedNode[K]) FirstToken() *RedToken[K] {
	for i := range n.Green().Children() {
		c := n.childAt(i)
		if c.IsToken() {
			return c.token
		}
		if t := c.node.FirstToken(); t != nil {
			return t
		}
	}
	return nil
}

// LastToken returns the last token under this node, or nil when the
// subtree is empty.
func (n *RedNode[K]) LastToken() *RedToken[K] {
	kids := n.Green().Children()
	for i := len(kids) - 1; i >= 0; i-- {
		c := n.childAt(i)
		if c.IsToken() {
			return c.token
		}
		if t := c.node.LastToken(); t != nil {
			return t
		}
	}
	return nil
}

// TokenAtOffset returns the token covering the absolute byte offset,
// or nil when the offset falls outside this node.
func (n *RedNode[K]) TokenAtOffset(offset int) *RedToken[K] {
	span := n.Span()
	if offset < span.Start || offset >= span.End {
		return nil
	}
	acc := span.Start
	for i, c := range n.Green().Children() {
		end := acc + c.TextLen()
		if offset < end {
			el := n.childAt(i)
			if el.IsToken() {
				return el.token
			}
			return el.node.TokenAtOffset(offset)
		}
		acc = end
	}
	return nil
}

// EqualTo reports positional equivalence: the same green data at the
// same absolute position. Wrapper identity never matters.
func (n *RedNode[K]) EqualTo(o *RedNode[K]) bool {
	return n.Green() == o.Green() && n.offset() == o.offset()
}

// Detach removes this node from its parent. On an editable tree it
// rebuilds every ancestor copy-on-write, reusing all untouched
// siblings, and swaps the tree root; the detached node becomes the
// root of its own editable tree. Detaching the root is a no-op.
// Panics on a read-only tree.
func (n *RedNode[K]) Detach() {
	if !n.root.mutable {
		panic("rg: Detach on read-only tree")
	}
	if n.parent == nil {
		return
	}
	g := n.green
	rebuildWithout(n.root, n.parent, n.index)
	n.root = &treeRoot[K]{green: g, mutable: true}
	n.parent = nil
	n.index = 0
	n.green = nil
}

// rebuildWithout rebuilds the green path from parent to the root with
// the child at index removed, then swaps the root anchor. Untouched
// subtrees are reused by reference.
func rebuildWithout[K Kind](root *treeRoot[K], parent *RedNode[K], index int) {
	old := parent.Green()
	kids := make([]GreenElement[K], 0, len(old.Children())-1)
	kids = append(kids, old.Children()[:index]...)
	kids = append(kids, old.Children()[index+1:]...)
	rebuilt := NewGreenNode(old.Kind(), kids)
	for anc := parent; anc.parent != nil; anc = anc.parent {
		pg := anc.parent.Green()
		pkids := make([]GreenElement[K], len(pg.Children()))
		copy(pkids, pg.Children())
		pkids[anc.index] = NodeElement(rebuilt)
		rebuilt = NewGreenNode(pg.Kind(), pkids)
	}
	root.green = rebuilt
}
