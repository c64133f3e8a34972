package rg

import (
	"hash/fnv"
	"strings"
)

// GreenToken is an immutable leaf: a kind plus its exact source text.
type GreenToken[K Kind] struct {
	kind K
	text string
	hash uint64
}

func NewGreenToken[K Kind](kind K, text string) *GreenToken[K] {
	return &GreenToken[K]{kind: kind, text: text, hash: hashToken(uint16(kind), text)}
}

func (t *GreenToken[K]) Kind() K { return t.kind }

func (t *GreenToken[K]) Text() string { return t.text }

func (t *GreenToken[K]) TextLen() int { return len(t.text) }

// Hash is a structural hash, cached at construction.
func (t *GreenToken[K]) Hash() uint64 { return t.hash }

// Equal is structural: kind and text, independent of identity.
func (t *GreenToken[K]) Equal(o *GreenToken[K]) bool {
	if t == o {
		return true
	}
	return t.kind == o.kind && t.text == o.text
}

// GreenNode is an immutable interior node: a kind, ordered children,
// and the total text length cached at construction. Nodes are shared
// by pointer; cloning a handle is a pointer copy, never a deep copy.
type GreenNode[K Kind] struct {
	kind     K
	children []GreenElement[K]
	textLen  int
	hash     uint64
}

func NewGreenNode[K Kind](kind K, children []GreenElement[K]) *GreenNode[K] {
	n := &GreenNode[K]{kind: kind, children: children}
	h := fnv.New64a()
	var buf [2]byte
	putUint16(buf[:], uint16(kind))
	h.Write(buf[:])
	for _, c := range children {
		n.textLen += c.TextLen()
		var buf8 [8]byte
		putUint64(buf8[:], c.Hash())
		h.Write(buf8[:])
	}
	n.hash = h.Sum64()
	return n
}

func (n *GreenNode[K]) Kind() K { return n.kind }

// Children returns the ordered child elements. The slice is shared;
// callers must not mutate it.
func (n *GreenNode[K]) Children() []GreenElement[K] { return n.children }

// TextLen is the total source length covered by this node, cached at
// construction from the children's cached lengths.
func (n *GreenNode[K]) TextLen() int { return n.textLen }

// Hash is a structural hash over kind and children, cached at
// construction.
func (n *GreenNode[K]) Hash() uint64 { return n.hash }

// Equal is structural equality: same kind and structurally equal
// children. It is independent of where the node is mounted, which is
// what makes identical fragments interchangeable between parents.
func (n *GreenNode[K]) Equal(o *GreenNode[K]) bool {
	if n == o {
		return true
	}
	if n.kind != o.kind || n.textLen != o.textLen || n.hash != o.hash {
		return false
	}
	if len(n.children) != len(o.children) {
		return false
	}
	for i, c := range n.children {
		if !c.equal(o.children[i]) {
			return false
		}
	}
	return true
}

// Text re-renders the exact source text covered by this node.
func (n *GreenNode[K]) Text() string {
	var sb strings.Builder
	sb.Grow(n.textLen)
	n.writeText(&sb)
	return sb.String()
}

func (n *GreenNode[K]) writeText(sb *strings.Builder) {
	for _, c := range n.children {
		if c.IsToken() {
			sb.WriteString(c.AsToken().text)
		} else {
			c.AsNode().writeText(sb)
		}
	}
}

// GreenElement is the node-or-token tagged union of green tree
// elements. Exactly one of the two slots is set.
type GreenElement[K Kind] struct {
	node  *GreenNode[K]
	token *GreenToken[K]
}

func NodeElement[K Kind](n *GreenNode[K]) GreenElement[K] {
	return GreenElement[K]{node: n}
}

func TokenElement[K Kind](t *GreenToken[K]) GreenElement[K] {
	return GreenElement[K]{token: t}
}

func (e GreenElement[K]) IsNode() bool  { return e.node != nil }
func (e GreenElement[K]) IsToken() bool { return e.token != nil }

func (e GreenElement[K]) AsNode() *GreenNode[K]   { return e.node }
func (e GreenElement[K]) AsToken() *GreenToken[K] { return e.token }

func (e GreenElement[K]) Kind() K {
	if e.node != nil {
		return e.node.kind
	}
	return e.token.kind
}

func (e GreenElement[K]) TextLen() int {
	if e.node != nil {
		return e.node.textLen
	}
	return len(e.token.text)
}

func (e GreenElement[K]) Hash() uint64 {
	if e.node != nil {
		return e.node.hash
	}
	return e.token.hash
}

func (e GreenElement[K]) equal(o GreenElement[K]) bool {
	switch {
	case e.node != nil && o.node != nil:
		return e.node.Equal(o.node)
	case e.token != nil && o.token != nil:
		return e.token.Equal(o.token)
	default:
		return false
	}
}

func hashToken(kind uint16, text string) uint64 {
	h := fnv.New64a()
	var buf [2]byte
	putUint16(buf[:], kind)
	h.Write(buf[:])
	h.Write([]byte(text))
	return h.Sum64()
}

func putUint16(b []byte, v uint16) {
	b[0] = byte(v)
	b[1] = byte(v >> 8)
}

func putUint64(b []byte, v uint64) {
	for i := 0; i < 8; i++ {
		b[i] = byte(v >> (8 * i))
	}
}
