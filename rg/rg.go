// Package rg implements a lossless red/green syntax tree.
//
// The green half is an immutable, structurally-shared tree that stores
// only kinds, token text, and cached lengths: no parent pointers, no
// absolute positions. That makes any green subtree freely relocatable
// and shareable between parents. The red half is a lazily-built facade
// over a green tree that adds parent links, sibling ordinals, and
// absolute positions computed on demand.
//
// The machinery is generic over the grammar's kind tag so each grammar
// instantiates it at compile time; the package defines no kinds of its
// own.
package rg

// Kind constrains the grammar-specific closed kind enumeration. Kind
// values must fit the TokenSet bit width (see KindWidth).
type Kind interface{ ~uint16 }

// KindWidth is the number of distinct kind values a TokenSet covers.
const KindWidth = 192
