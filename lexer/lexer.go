package lexer

import (
	"github.com/torii-format/torii/debug"
	"github.com/torii-format/torii/syntax"
	"github.com/torii-format/torii/text"
)

type lexer struct {
	src    string
	pos    int
	ix     *text.LineIndex
	tokens []Token
	errors []syntax.Error
}

// Lex tokenizes source. It never fails; malformed input surfaces as
// error tokens plus diagnostics in the returned Lexed.
func Lex(source string) *Lexed {
	lx := &lexer{src: source, ix: text.NewLineIndex(source)}
	for lx.pos < len(lx.src) {
		lx.next()
	}
	lx.tokens = append(lx.tokens, EOF())
	if debug.Lex() {
		for _, t := range lx.tokens {
			debug.Logf("lex: %s", t)
		}
	}
	return &Lexed{
		Source:    source,
		Tokens:    lx.tokens,
		Errors:    lx.errors,
		LineIndex: lx.ix,
	}
}

func (lx *lexer) next() {
	c := lx.src[lx.pos]
	switch {
	case c == ' ' || c == '\t':
		start := lx.pos
		for lx.pos < len(lx.src) && (lx.src[lx.pos] == ' ' || lx.src[lx.pos] == '\t') {
			lx.pos++
		}
		lx.emit(syntax.Whitespace, start)
	case c == '\n':
		start := lx.pos
		lx.pos++
		lx.emit(syntax.LineBreak, start)
	case c == '\r':
		start := lx.pos
		lx.pos++
		if lx.pos < len(lx.src) && lx.src[lx.pos] == '\n' {
			lx.pos++
			lx.emit(syntax.LineBreak, start)
			return
		}
		// bare carriage return
		lx.emit(syntax.LineBreak, start)
		lx.errorAt(syntax.InvalidLineBreak, start)
	case c == '#':
		start := lx.pos
		for lx.pos < len(lx.src) && lx.src[lx.pos] != '\n' && lx.src[lx.pos] != '\r' {
			lx.pos++
		}
		lx.emit(syntax.Comment, start)
	case c == '"':
		lx.scanBasicString()
	case c == '\'':
		lx.scanLiteralString()
	case c == ',':
		lx.single(syntax.Comma)
	case c == '.':
		lx.single(syntax.Dot)
	case c == '=':
		lx.single(syntax.Equal)
	case c == '{':
		lx.single(syntax.BraceStart)
	case c == '}':
		lx.single(syntax.BraceEnd)
	case c == '[':
		lx.single(syntax.BracketStart)
	case c == ']':
		lx.single(syntax.BracketEnd)
	case isDigit(c) || c == '+' || c == '-':
		lx.scanNumberish()
	case isBareKeyByte(c):
		lx.scanWord()
	default:
		lx.scanInvalid()
	}
}

func (lx *lexer) single(kind syntax.Kind) {
	start := lx.pos
	lx.pos++
	lx.emit(kind, start)
}

func (lx *lexer) emit(kind syntax.Kind, start int) {
	span := text.NewSpan(start, lx.pos)
	lx.tokens = append(lx.tokens, Token{Kind: kind, Span: span, Range: lx.ix.Range(span)})
}

// errorAt records one diagnostic covering [start, lx.pos).
func (lx *lexer) errorAt(kind syntax.ErrorKind, start int) {
	span := text.NewSpan(start, lx.pos)
	lx.errors = append(lx.errors, syntax.NewError(kind, span, lx.ix.Range(span)))
}

// scanWord lexes a run of bare-key bytes starting with a letter or
// underscore, classifying the keywords true/false/inf/nan.
func (lx *lexer) scanWord() {
	start := lx.pos
	for lx.pos < len(lx.src) && isBareKeyByte(lx.src[lx.pos]) {
		lx.pos++
	}
	switch lx.src[start:lx.pos] {
	case "true", "false":
		lx.emit(syntax.Boolean, start)
	case "inf", "nan":
		lx.emit(syntax.Float, start)
	default:
		lx.emit(syntax.BareKey, start)
	}
}

// scanInvalid lexes a maximal run of bytes no other rule accepts as a
// single error token with one diagnostic, so one stretch of garbage
// costs one error.
func (lx *lexer) scanInvalid() {
	start := lx.pos
	for lx.pos < len(lx.src) && !isTokenStart(lx.src[lx.pos]) {
		lx.pos++
	}
	lx.emit(syntax.ErrorTok, start)
	lx.errorAt(syntax.InvalidToken, start)
}

func isTokenStart(c byte) bool {
	switch c {
	case ' ', '\t', '\n', '\r', '#', '"', '\'', ',', '.', '=', '{', '}', '[', ']', '+', '-':
		return true
	}
	return isBareKeyByte(c)
}

func isBareKeyByte(c byte) bool {
	return c >= 'a' && c <= 'z' || c >= 'A' && c <= 'Z' || isDigit(c) || c == '_' || c == '-'
}

func isDigit(c byte) bool { return c >= '0' && c <= '9' }

func isHexDigit(c byte) bool {
	return isDigit(c) || c >= 'a' && c <= 'f' || c >= 'A' && c <= 'F'
}
