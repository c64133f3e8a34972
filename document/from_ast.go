package document

import (
	"fmt"

	"github.com/torii-format/torii/ast"
	"github.com/torii-format/torii/datetime"
	"github.com/torii-format/torii/syntax"
	"github.com/torii-format/torii/text"
)

// FromRoot evaluates a parsed document into its value tree. The line
// index positions the semantic diagnostics. Conversion never fails as
// a whole: conflicting constructs are reported and skipped, and the
// returned table holds everything else.
func FromRoot(root *ast.Root, ix *text.LineIndex) (*Table, []Error) {
	ev := &evaluator{ix: ix}
	doc := NewTable(root.Syntax().Range(ix))
	doc.origin = originHeader
	for _, item := range root.Items() {
		switch it := item.(type) {
		case *ast.KeyValue:
			ev.defineKeyValue(doc, it)
		case *ast.Table:
			ev.defineTable(doc, it)
		case *ast.ArrayOfTable:
			ev.defineArrayOfTable(doc, it)
		}
	}
	return doc, ev.errors
}

type evaluator struct {
	ix     *text.LineIndex
	errors []Error
}

func (ev *evaluator) errorf(rng text.Range, format string, args ...any) {
	ev.errors = append(ev.errors, Error{Message: fmt.Sprintf(format, args...), Range: rng})
}

func (ev *evaluator) nodeRange(n ast.Node) text.Range {
	return n.Syntax().Range(ev.ix)
}

// keyTexts resolves a dotted key chain to its segment strings with
// each segment's range. Segments whose quoting the lexer already
// rejected are dropped; the parser carried the diagnostic.
func (ev *evaluator) keyTexts(keys *ast.Keys) []keySegment {
	var out []keySegment
	for _, k := range keys.Keys() {
		txt, err := k.Text()
		if err != nil {
			continue
		}
		out = append(out, keySegment{text: txt, rng: ev.nodeRange(k)})
	}
	return out
}

type keySegment struct {
	text string
	rng  text.Range
}

// defineKeyValue binds one `keys = value` line under t, creating
// intermediate tables for dotted segments.
func (ev *evaluator) defineKeyValue(t *Table, kv *ast.KeyValue) {
	keys, ok := kv.Keys()
	if !ok {
		return
	}
	segs := ev.keyTexts(keys)
	if len(segs) == 0 {
		return
	}
	astValue, ok := kv.Value()
	if !ok {
		// The parser already reported the missing value.
		return
	}
	v, ok := ev.evalValue(astValue)
	if !ok {
		return
	}
	cur := t
	for _, seg := range segs[:len(segs)-1] {
		cur, ok = ev.descend(cur, seg, originDotted)
		if !ok {
			return
		}
	}
	last := segs[len(segs)-1]
	if _, exists := cur.Get(last.text); exists {
		ev.errorf(last.rng, "duplicate key %q", last.text)
		return
	}
	cur.Set(last.text, v)
}

// descend moves into (or creates) the table at seg under cur.
func (ev *evaluator) descend(cur *Table, seg keySegment, origin tableOrigin) (*Table, bool) {
	existing, ok := cur.Get(seg.text)
	if !ok {
		nt := NewTable(seg.rng)
		nt.origin = origin
		cur.Set(seg.text, nt)
		return nt, true
	}
	switch e := existing.(type) {
	case *Table:
		if e.origin == originInline {
			ev.errorf(seg.rng, "cannot extend inline table %q", seg.text)
			return nil, false
		}
		return e, true
	case *Array:
		if !e.fromHeaders {
			ev.errorf(seg.rng, "cannot extend array %q", seg.text)
			return nil, false
		}
		elem, _ := e.last().(*Table)
		if elem == nil {
			ev.errorf(seg.rng, "cannot extend array %q", seg.text)
			return nil, false
		}
		return elem, true
	default:
		ev.errorf(seg.rng, "key %q is already bound to a %s", seg.text, existing.Kind())
		return nil, false
	}
}

// defineTable evaluates a `[header]` section.
func (ev *evaluator) defineTable(doc *Table, sec *ast.Table) {
	header, ok := sec.Header()
	if !ok {
		return
	}
	keys, ok := header.Keys()
	if !ok {
		return
	}
	segs := ev.keyTexts(keys)
	if len(segs) == 0 {
		return
	}
	cur := doc
	for _, seg := range segs[:len(segs)-1] {
		cur, ok = ev.descend(cur, seg, originDotted)
		if !ok {
			return
		}
	}
	last := segs[len(segs)-1]
	var target *Table
	existing, exists := cur.Get(last.text)
	if !exists {
		target = NewTable(last.rng)
		target.origin = originHeader
		cur.Set(last.text, target)
	} else {
		t, isTable := existing.(*Table)
		if !isTable || t.origin == originHeader || t.origin == originInline {
			ev.errorf(last.rng, "table %q is already defined", last.text)
			return
		}
		// Promote a table first seen through a dotted path.
		t.origin = originHeader
		target = t
	}
	for _, kv := range sec.KeyValues() {
		ev.defineKeyValue(target, kv)
	}
}

// defineArrayOfTable evaluates a `[[header]]` section, appending one
// element to its array.
func (ev *evaluator) defineArrayOfTable(doc *Table, sec *ast.ArrayOfTable) {
	header, ok := sec.Header()
	if !ok {
		return
	}
	keys, ok := header.Keys()
	if !ok {
		return
	}
	segs := ev.keyTexts(keys)
	if len(segs) == 0 {
		return
	}
	cur := doc
	for _, seg := range segs[:len(segs)-1] {
		var descOK bool
		cur, descOK = ev.descend(cur, seg, originDotted)
		if !descOK {
			return
		}
	}
	last := segs[len(segs)-1]
	var arr *Array
	existing, exists := cur.Get(last.text)
	if !exists {
		arr = NewArray(last.rng)
		arr.fromHeaders = true
		cur.Set(last.text, arr)
	} else {
		a, isArray := existing.(*Array)
		if !isArray || !a.fromHeaders {
			ev.errorf(last.rng, "key %q is already bound to a %s", last.text, existing.Kind())
			return
		}
		arr = a
	}
	elem := NewTable(last.rng)
	elem.origin = originArrayElem
	arr.Append(elem)
	for _, kv := range sec.KeyValues() {
		ev.defineKeyValue(elem, kv)
	}
}

// evalValue converts one value node. A false return means the value
// could not be interpreted; a diagnostic was recorded unless the
// lexer or parser already carried one.
func (ev *evaluator) evalValue(v *ast.Value) (Value, bool) {
	if tok := v.Scalar(); tok != nil {
		return ev.evalScalar(tok)
	}
	if arr, ok := v.Array(); ok {
		return ev.evalArray(arr), true
	}
	if it, ok := v.InlineTable(); ok {
		return ev.evalInlineTable(it), true
	}
	// An error island; the parse already reported it.
	return nil, false
}

func (ev *evaluator) evalArray(arr *ast.Array) *Array {
	out := NewArray(ev.nodeRange(arr))
	for _, v := range arr.Values() {
		if ev2, ok := ev.evalValue(v); ok {
			out.Append(ev2)
		}
	}
	return out
}

func (ev *evaluator) evalInlineTable(it *ast.InlineTable) *Table {
	out := NewTable(ev.nodeRange(it))
	out.origin = originInline
	for _, kv := range it.KeyValues() {
		ev.defineKeyValue(out, kv)
	}
	return out
}

func (ev *evaluator) evalScalar(tok *syntax.SyntaxToken) (Value, bool) {
	rng := tok.Range(ev.ix)
	txt := tok.Text()
	fail := func(what string, err error) (Value, bool) {
		ev.errorf(rng, "invalid %s %q: %v", what, txt, err)
		return nil, false
	}
	switch tok.Kind() {
	case syntax.Boolean:
		return &Boolean{Value: txt == "true", rng: rng}, true
	case syntax.IntegerDec:
		n, err := ast.TryFromDecimal(txt)
		if err != nil {
			return fail("integer", err)
		}
		return &Integer{Value: n, rng: rng}, true
	case syntax.IntegerHex:
		n, err := ast.TryFromHexadecimal(txt)
		if err != nil {
			return fail("integer", err)
		}
		return &Integer{Value: n, rng: rng}, true
	case syntax.IntegerOct:
		n, err := ast.TryFromOctal(txt)
		if err != nil {
			return fail("integer", err)
		}
		return &Integer{Value: n, rng: rng}, true
	case syntax.IntegerBin:
		n, err := ast.TryFromBinary(txt)
		if err != nil {
			return fail("integer", err)
		}
		return &Integer{Value: n, rng: rng}, true
	case syntax.Float:
		f, err := ast.TryFromFloat(txt)
		if err != nil {
			return fail("float", err)
		}
		return &Float{Value: f, rng: rng}, true
	case syntax.BasicString, syntax.MultiLineBasicString:
		s, err := ast.UnquoteBasic(txt)
		if err != nil {
			return fail("string", err)
		}
		return &String{Value: s, rng: rng}, true
	case syntax.LiteralString, syntax.MultiLineLiteralString:
		s, err := ast.UnquoteLiteral(txt)
		if err != nil {
			return fail("string", err)
		}
		return &String{Value: s, rng: rng}, true
	case syntax.OffsetDateTime:
		dt, err := datetime.ParseOffsetDateTime(txt)
		if err != nil {
			return fail("offset date-time", err)
		}
		return &OffsetDateTime{Value: dt, rng: rng}, true
	case syntax.LocalDateTime:
		dt, err := datetime.ParseLocalDateTime(txt)
		if err != nil {
			return fail("local date-time", err)
		}
		return &LocalDateTime{Value: dt, rng: rng}, true
	case syntax.LocalDate:
		d, err := datetime.ParseLocalDate(txt)
		if err != nil {
			return fail("local date", err)
		}
		return &LocalDate{Value: d, rng: rng}, true
	case syntax.LocalTime:
		t, err := datetime.ParseLocalTime(txt)
		if err != nil {
			return fail("local time", err)
		}
		return &LocalTime{Value: t, rng: rng}, true
	default:
		return nil, false
	}
}
