package rg

// Builder assembles a green tree bottom-up through the start-node /
// token / finish-node protocol the parser drives. Identical token
// texts are deduplicated within one builder so repeated lexemes share
// a single GreenToken.
type Builder[K Kind] struct {
	parents  []parentFrame[K]
	children []GreenElement[K]
	tokens   map[tokenKey[K]]*GreenToken[K]
}

type parentFrame[K Kind] struct {
	kind  K
	first int
}

type tokenKey[K Kind] struct {
	kind K
	text string
}

func NewBuilder[K Kind]() *Builder[K] {
	return &Builder[K]{tokens: make(map[tokenKey[K]]*GreenToken[K])}
}

// StartNode opens a node; all elements added until the matching
// FinishNode become its children.
func (b *Builder[K]) StartNode(kind K) {
	b.parents = append(b.parents, parentFrame[K]{kind: kind, first: len(b.children)})
}

// Token adds a leaf to the currently open node.
func (b *Builder[K]) Token(kind K, text string) {
	key := tokenKey[K]{kind: kind, text: text}
	tok, ok := b.tokens[key]
	if !ok {
		tok = NewGreenToken(kind, text)
		b.tokens[key] = tok
	}
	b.children = append(b.children, TokenElement(tok))
}

// Node adds an already-built green subtree to the currently open node,
// sharing it rather than copying.
func (b *Builder[K]) Node(n *GreenNode[K]) {
	b.children = append(b.children, NodeElement(n))
}

// FinishNode closes the most recently started node.
func (b *Builder[K]) FinishNode() {
	p := b.parents[len(b.parents)-1]
	b.parents = b.parents[:len(b.parents)-1]
	kids := make([]GreenElement[K], len(b.children)-p.first)
	copy(kids, b.children[p.first:])
	b.children = b.children[:p.first]
	b.children = append(b.children, NodeElement(NewGreenNode(p.kind, kids)))
}

// Finish returns the tree root. All started nodes must be finished and
// exactly one element must remain.
func (b *Builder[K]) Finish() *GreenNode[K] {
	if len(b.parents) != 0 || len(b.children) != 1 || !b.children[0].IsNode() {
		panic("rg: unbalanced Builder")
	}
	return b.children[0].AsNode()
}
