// Package parser builds lossless syntax trees from TOML source text.
//
// Parsing always completes. Malformed constructs are wrapped in error
// nodes with one diagnostic each, and the parser resynchronizes on a
// recovery set so the rest of the document still parses. Every token
// the lexer produced, trivia included, lands in the tree: rendering
// the root reproduces the source byte for byte.
package parser

import (
	"github.com/torii-format/torii/ast"
	"github.com/torii-format/torii/debug"
	"github.com/torii-format/torii/lexer"
	"github.com/torii-format/torii/syntax"
	"github.com/torii-format/torii/text"
)

// Parse tokenizes and parses one document. Lexer diagnostics carry
// over into the result ahead of parse diagnostics.
func Parse(source string) Parsed[*ast.Root] {
	lexed := lexer.Lex(source)
	p := &parser{
		lexed:  lexed,
		b:      syntax.NewBuilder(),
		errors: append([]syntax.Error(nil), lexed.Errors...),
	}
	p.parseRoot()
	green := p.b.Finish()
	if debug.Parse() {
		debug.Logf("parse: %d tokens, %d errors", len(lexed.Tokens), len(p.errors))
	}
	return NewParsed[*ast.Root](green, p.errors)
}

type parser struct {
	lexed  *lexer.Lexed
	pos    int
	b      *syntax.Builder
	errors []syntax.Error
}

func (p *parser) cur() lexer.Token {
	if p.pos >= len(p.lexed.Tokens) {
		return lexer.EOF()
	}
	return p.lexed.Tokens[p.pos]
}

func (p *parser) at(k syntax.Kind) bool { return p.cur().Kind == k }

func (p *parser) atEOF() bool { return p.cur().IsEOF() }

// bump moves the current token into the open node.
func (p *parser) bump() {
	t := p.cur()
	if t.IsEOF() {
		return
	}
	p.b.Token(t.Kind, p.lexed.Text(t))
	p.pos++
}

// bumpTrivia consumes whitespace and comments, and line breaks when
// the construct spans lines.
func (p *parser) bumpTrivia(lineBreaks bool) {
	for {
		switch p.cur().Kind {
		case syntax.Whitespace, syntax.Comment:
			p.bump()
		case syntax.LineBreak:
			if !lineBreaks {
				return
			}
			p.bump()
		default:
			return
		}
	}
}

// peekPastWS returns the first token at or after pos that is not
// inline whitespace.
func (p *parser) peekPastWS() lexer.Token {
	for i := p.pos; i < len(p.lexed.Tokens); i++ {
		if p.lexed.Tokens[i].Kind != syntax.Whitespace {
			return p.lexed.Tokens[i]
		}
	}
	return lexer.EOF()
}

// atLineStart reports whether the token at index i begins its line,
// looking back across inline whitespace in the raw token stream.
func (p *parser) atLineStart(i int) bool {
	for j := i - 1; j >= 0; j-- {
		switch p.lexed.Tokens[j].Kind {
		case syntax.Whitespace:
			continue
		case syntax.LineBreak:
			return true
		default:
			return false
		}
	}
	return true
}

// atArrayTableBracket reports whether the current token opens an
// array-of-tables header: two adjacent open brackets at line start.
func (p *parser) atArrayTableBracket() bool {
	if !p.at(syntax.BracketStart) || !p.atLineStart(p.pos) {
		return false
	}
	if p.pos+1 >= len(p.lexed.Tokens) {
		return false
	}
	next := p.lexed.Tokens[p.pos+1]
	return next.Kind == syntax.BracketStart && next.Span.Start == p.cur().Span.End
}

// atSectionStart reports whether the current token begins a table or
// array-of-tables header line.
func (p *parser) atSectionStart() bool {
	return p.at(syntax.BracketStart) && p.atLineStart(p.pos)
}

func (p *parser) errorAt(kind syntax.ErrorKind, t lexer.Token) {
	p.errors = append(p.errors, syntax.NewError(kind, t.Span, t.Range))
}

// errorAfterPrev reports a zero-width diagnostic at the end of the
// last consumed token, for material that is missing rather than wrong.
func (p *parser) errorAfterPrev(kind syntax.ErrorKind) {
	if p.pos == 0 {
		p.errors = append(p.errors, syntax.NewError(kind,
			text.NewSpan(0, 0), text.Range{}))
		return
	}
	prev := p.lexed.Tokens[p.pos-1]
	p.errors = append(p.errors, syntax.NewError(kind,
		text.NewSpan(prev.Span.End, prev.Span.End),
		text.Range{Start: prev.Range.End, End: prev.Range.End}))
}

// unexpected wraps the tokens up to the recovery set in one error
// node. It always consumes at least one token so the parser makes
// progress. When every consumed token was already flagged by the
// lexer, no new diagnostic is added.
func (p *parser) unexpected(recovery syntax.TokenSet) {
	if p.atEOF() {
		return
	}
	start := p.cur()
	end := start
	allLexErrors := true
	p.b.StartNode(syntax.ErrorTok)
	for {
		t := p.cur()
		if t.IsEOF() {
			break
		}
		if t.Kind != syntax.ErrorTok {
			allLexErrors = false
		}
		end = t
		p.bump()
		next := p.cur()
		if next.IsEOF() || recovery.Contains(next.Kind) {
			break
		}
		if tsNextSection.Contains(next.Kind) && p.atLineStart(p.pos) {
			break
		}
	}
	p.b.FinishNode()
	if !allLexErrors {
		p.errors = append(p.errors, syntax.NewError(syntax.InvalidToken,
			text.NewSpan(start.Span.Start, end.Span.End),
			text.Range{Start: start.Range.Start, End: end.Range.End}))
	}
}

func (p *parser) parseRoot() {
	p.b.StartNode(syntax.Root)
	for {
		p.bumpTrivia(true)
		if p.atEOF() {
			break
		}
		switch {
		case p.atArrayTableBracket():
			p.parseArrayOfTable()
		case p.atSectionStart():
			p.parseTable()
		case tsKeyFirst.Contains(p.cur().Kind):
			p.parseKeyValue(false)
		default:
			p.unexpected(tsLineEnd)
		}
	}
	p.b.FinishNode()
}

// parseTable parses a [header] and every key-value line until the
// next section header or end of input.
func (p *parser) parseTable() {
	p.b.StartNode(syntax.Table)
	p.parseHeader(false)
	p.parseSectionBody()
	p.b.FinishNode()
}

func (p *parser) parseArrayOfTable() {
	p.b.StartNode(syntax.ArrayOfTable)
	p.parseHeader(true)
	p.parseSectionBody()
	p.b.FinishNode()
}

func (p *parser) parseSectionBody() {
	for {
		p.bumpTrivia(true)
		if p.atEOF() || p.atSectionStart() {
			return
		}
		if tsKeyFirst.Contains(p.cur().Kind) {
			p.parseKeyValue(false)
		} else {
			p.unexpected(tsLineEnd)
		}
	}
}

// parseHeader parses `[keys]` or `[[keys]]` through the end of its
// line.
func (p *parser) parseHeader(array bool) {
	if array {
		p.b.StartNode(syntax.ArrayTableHeader)
		p.bump() // [
		p.bump() // [
	} else {
		p.b.StartNode(syntax.TableHeader)
		p.bump() // [
	}
	p.bumpTrivia(false)
	if tsKeyFirst.Contains(p.cur().Kind) {
		p.parseKeys()
	} else {
		p.errorAt(syntax.InvalidKey, p.cur())
	}
	p.bumpTrivia(false)
	switch {
	case p.at(syntax.BracketEnd):
		p.bump()
		if array {
			if p.at(syntax.BracketEnd) && p.cur().Span.Start == p.lexed.Tokens[p.pos-1].Span.End {
				p.bump()
			} else {
				p.errorAfterPrev(syntax.InvalidToken)
			}
		}
	case tsLineEnd.Contains(p.cur().Kind) || p.at(syntax.Comment):
		p.errorAfterPrev(syntax.InvalidToken)
	default:
		p.unexpected(tsLineEnd)
	}
	p.endOfLine()
	p.b.FinishNode()
}

// endOfLine consumes trailing whitespace and a comment, flagging any
// other material before the line break. Recovery stops ahead of a
// trailing comment so it stays trivia outside the error island.
func (p *parser) endOfLine() {
	p.bumpTrivia(false)
	if p.at(syntax.LineBreak) || p.atEOF() {
		return
	}
	p.unexpected(tsCommentOrLineEnd)
}

// parseKeyValue parses `keys = value`, through the end of its line
// unless it sits inside an inline table.
func (p *parser) parseKeyValue(inline bool) {
	p.b.StartNode(syntax.KeyValue)
	p.parseKeys()
	p.bumpTrivia(false)
	if p.at(syntax.Equal) {
		p.bump()
	} else {
		p.errorAfterPrev(syntax.InvalidToken)
	}
	p.bumpTrivia(false)
	switch {
	case tsValueFirst.Contains(p.cur().Kind) || p.at(syntax.ErrorTok):
		p.parseValue()
	case inline:
		p.errorAfterPrev(syntax.InvalidToken)
	case tsLineEnd.Contains(p.cur().Kind) || p.at(syntax.Comment):
		p.errorAfterPrev(syntax.InvalidToken)
	default:
		p.unexpected(tsLineEnd)
	}
	if !inline {
		p.endOfLine()
	}
	p.b.FinishNode()
}

// parseKeys parses a dotted key chain. Whitespace is legal around the
// dots.
func (p *parser) parseKeys() {
	p.b.StartNode(syntax.Keys)
	p.parseKey()
	for p.peekPastWS().Kind == syntax.Dot {
		p.bumpTrivia(false)
		p.bump() // .
		p.bumpTrivia(false)
		p.parseKey()
	}
	p.b.FinishNode()
}

// parseKey parses one key segment. A missing segment gets a
// diagnostic but consumes nothing, so `a. = 1` still parses its
// value.
func (p *parser) parseKey() {
	if !tsKeyFirst.Contains(p.cur().Kind) {
		p.errorAt(syntax.InvalidKey, p.cur())
		return
	}
	p.b.StartNode(syntax.Key)
	p.bump()
	p.b.FinishNode()
}

func (p *parser) parseValue() {
	p.b.StartNode(syntax.Value)
	switch {
	case p.cur().Kind.IsScalar():
		p.bump()
	case p.at(syntax.BracketStart):
		p.parseArray()
	case p.at(syntax.BraceStart):
		p.parseInlineTable()
	case p.at(syntax.ErrorTok):
		// Already diagnosed by the lexer; just wrap it.
		p.b.StartNode(syntax.ErrorTok)
		p.bump()
		p.b.FinishNode()
	}
	p.b.FinishNode()
}

// parseArray parses `[v, v, ...]`. Line breaks and comments are legal
// inside the brackets.
func (p *parser) parseArray() {
	p.b.StartNode(syntax.Array)
	p.bump() // [
elems:
	for {
		p.bumpTrivia(true)
		if p.at(syntax.BracketEnd) {
			p.bump()
			break
		}
		if p.atEOF() {
			p.errorAfterPrev(syntax.InvalidToken)
			break
		}
		if tsValueFirst.Contains(p.cur().Kind) || p.at(syntax.ErrorTok) {
			p.parseValue()
		} else {
			p.unexpected(tsArrayRecovery)
		}
		p.bumpTrivia(true)
		switch {
		case p.at(syntax.Comma):
			p.bump()
		case p.at(syntax.BracketEnd):
			p.bump()
			break elems
		case p.atEOF():
			p.errorAfterPrev(syntax.InvalidToken)
			break elems
		default:
			// Missing comma; diagnose once and reparse from here.
			p.errorAt(syntax.InvalidToken, p.cur())
		}
	}
	p.b.FinishNode()
}

// parseInlineTable parses `{k = v, ...}`. Inline tables stay on one
// line; a line break ends the construct with a diagnostic.
func (p *parser) parseInlineTable() {
	p.b.StartNode(syntax.InlineTable)
	p.bump() // {
pairs:
	for {
		p.bumpTrivia(false)
		if p.at(syntax.BraceEnd) {
			p.bump()
			break
		}
		if p.atEOF() || p.at(syntax.LineBreak) {
			p.errorAfterPrev(syntax.InvalidToken)
			break
		}
		if tsKeyFirst.Contains(p.cur().Kind) {
			p.parseKeyValue(true)
		} else {
			p.unexpected(tsInlineTableRecovery)
		}
		p.bumpTrivia(false)
		switch {
		case p.at(syntax.Comma):
			p.bump()
		case p.at(syntax.BraceEnd):
			p.bump()
			break pairs
		case p.atEOF() || p.at(syntax.LineBreak):
			p.errorAfterPrev(syntax.InvalidToken)
			break pairs
		default:
			p.errorAt(syntax.InvalidToken, p.cur())
		}
	}
	p.b.FinishNode()
}
