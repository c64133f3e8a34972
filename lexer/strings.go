package lexer

import (
	"strings"

	"github.com/torii-format/torii/syntax"
)

// scanBasicString lexes a basic or multi-line basic string. Escape and
// termination problems are flagged, never fatal: the token always
// covers the text actually consumed.
func (lx *lexer) scanBasicString() {
	start := lx.pos
	if strings.HasPrefix(lx.src[lx.pos:], `"""`) {
		lx.pos += 3
		ok := true
		closed := false
		for lx.pos < len(lx.src) {
			if lx.src[lx.pos] == '\\' {
				if !lx.scanEscape(true) {
					ok = false
				}
				continue
			}
			if strings.HasPrefix(lx.src[lx.pos:], `"""`) {
				lx.pos += 3
				// up to two further quotes belong to the content
				for extra := 0; extra < 2 && lx.pos < len(lx.src) && lx.src[lx.pos] == '"'; extra++ {
					lx.pos++
				}
				closed = true
				break
			}
			lx.pos++
		}
		lx.emit(syntax.MultiLineBasicString, start)
		if !ok || !closed {
			lx.errorAt(syntax.InvalidMultilineBasicString, start)
		}
		return
	}
	lx.pos++
	ok := true
	closed := false
	for lx.pos < len(lx.src) {
		c := lx.src[lx.pos]
		if c == '\n' || c == '\r' {
			break
		}
		if c == '\\' {
			if !lx.scanEscape(false) {
				ok = false
			}
			continue
		}
		if c == '"' {
			lx.pos++
			closed = true
			break
		}
		lx.pos++
	}
	lx.emit(syntax.BasicString, start)
	if !ok || !closed {
		lx.errorAt(syntax.InvalidBasicString, start)
	}
}

// scanEscape consumes one backslash escape and reports its validity.
// In multi-line strings a backslash before a line break (optionally
// with trailing spaces or tabs) is the line-ending backslash.
func (lx *lexer) scanEscape(multiline bool) bool {
	lx.pos++ // backslash
	if lx.pos >= len(lx.src) {
		return false
	}
	switch lx.src[lx.pos] {
	case 'b', 't', 'n', 'f', 'r', '"', '\\':
		lx.pos++
		return true
	case 'u':
		return lx.scanUnicodeEscape(4)
	case 'U':
		return lx.scanUnicodeEscape(8)
	}
	if multiline {
		i := lx.pos
		for i < len(lx.src) && (lx.src[i] == ' ' || lx.src[i] == '\t') {
			i++
		}
		if i < len(lx.src) && (lx.src[i] == '\n' || lx.src[i] == '\r') {
			lx.pos = i
			return true
		}
	}
	if lx.src[lx.pos] == '\n' || lx.src[lx.pos] == '\r' {
		// leave the line break to the main loop
		return false
	}
	lx.pos++
	return false
}

func (lx *lexer) scanUnicodeEscape(digits int) bool {
	lx.pos++ // u or U
	for i := 0; i < digits; i++ {
		if lx.pos >= len(lx.src) || !isHexDigit(lx.src[lx.pos]) {
			return false
		}
		lx.pos++
	}
	return true
}

// scanLiteralString lexes a literal or multi-line literal string; no
// escapes exist in either form.
func (lx *lexer) scanLiteralString() {
	start := lx.pos
	if strings.HasPrefix(lx.src[lx.pos:], `'''`) {
		lx.pos += 3
		closed := false
		for lx.pos < len(lx.src) {
			if strings.HasPrefix(lx.src[lx.pos:], `'''`) {
				lx.pos += 3
				for extra := 0; extra < 2 && lx.pos < len(lx.src) && lx.src[lx.pos] == '\''; extra++ {
					lx.pos++
				}
				closed = true
				break
			}
			lx.pos++
		}
		lx.emit(syntax.MultiLineLiteralString, start)
		if !closed {
			lx.errorAt(syntax.InvalidMultilineLiteralString, start)
		}
		return
	}
	lx.pos++
	closed := false
	for lx.pos < len(lx.src) {
		c := lx.src[lx.pos]
		if c == '\n' || c == '\r' {
			break
		}
		if c == '\'' {
			lx.pos++
			closed = true
			break
		}
		lx.pos++
	}
	lx.emit(syntax.LiteralString, start)
	if !closed {
		lx.errorAt(syntax.InvalidLiteralString, start)
	}
}
