package document

import "github.com/torii-format/torii/text"

// tableOrigin tracks how a table came to exist, which decides whether
// a later definition is a legal reopen or a duplicate.
type tableOrigin int

const (
	// originHeader: defined by an explicit [header].
	originHeader tableOrigin = iota
	// originDotted: created on the way through a dotted key.
	originDotted
	// originInline: an inline table; closed to later additions.
	originInline
	// originArrayElem: the live element of an array of tables.
	originArrayElem
)

// Table is an ordered string-keyed map. Iteration order is the order
// keys were first defined in the source.
type Table struct {
	keys    []string
	entries map[string]Value
	origin  tableOrigin
	rng     text.Range
}

func NewTable(rng text.Range) *Table {
	return &Table{entries: make(map[string]Value), rng: rng}
}

func (t *Table) Kind() ValueKind   { return KindTable }
func (t *Table) Range() text.Range { return t.rng }

// Len returns the number of keys.
func (t *Table) Len() int { return len(t.keys) }

// Keys returns the key list in definition order. The slice is shared;
// callers must not modify it.
func (t *Table) Keys() []string { return t.keys }

// Get returns the value bound to key.
func (t *Table) Get(key string) (Value, bool) {
	v, ok := t.entries[key]
	return v, ok
}

// Set binds key, appending to the order on first definition.
func (t *Table) Set(key string, v Value) {
	if _, ok := t.entries[key]; !ok {
		t.keys = append(t.keys, key)
	}
	t.entries[key] = v
}

// Array is an ordered value sequence.
type Array struct {
	// values is exported through Values; fromHeaders marks arrays
	// built by [[header]] sections, which stay open for appends.
	values      []Value
	fromHeaders bool
	rng         text.Range
}

func NewArray(rng text.Range) *Array {
	return &Array{rng: rng}
}

func (a *Array) Kind() ValueKind   { return KindArray }
func (a *Array) Range() text.Range { return a.rng }

func (a *Array) Len() int { return len(a.values) }

// Values returns the elements in source order. The slice is shared;
// callers must not modify it.
func (a *Array) Values() []Value { return a.values }

func (a *Array) Append(v Value) { a.values = append(a.values, v) }

// last returns the most recently appended element.
func (a *Array) last() Value {
	if len(a.values) == 0 {
		return nil
	}
	return a.values[len(a.values)-1]
}
