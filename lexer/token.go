// Package lexer turns TOML source text into a positioned token stream.
//
// Tokenization always completes: literal-shaped but malformed text is
// emitted as an error token paired with a diagnostic of the matching
// kind, and the stream terminates in a synthetic EOF token with
// maximal sentinel position so lookahead never needs a presence check.
package lexer

import (
	"fmt"

	"github.com/torii-format/torii/syntax"
	"github.com/torii-format/torii/text"
)

// Token is one positioned lexeme.
type Token struct {
	Kind  syntax.Kind
	Span  text.Span
	Range text.Range
}

// EOF is the synthetic end-of-input token. Its span and range compare
// greater than those of any real token.
func EOF() Token {
	return Token{Kind: syntax.EOF, Span: text.MaxSpan, Range: text.MaxRange}
}

func (t Token) IsEOF() bool { return t.Kind == syntax.EOF }

func (t Token) String() string {
	return fmt.Sprintf("%s @%s @%s", t.Kind, t.Span, t.Range)
}

// Lexed is the result of tokenizing one source text: the ordered token
// sequence (EOF-terminated), the accumulated diagnostics, and the line
// index used to position them.
type Lexed struct {
	Source    string
	Tokens    []Token
	Errors    []syntax.Error
	LineIndex *text.LineIndex
}

// Text returns the source text a token covers. The EOF token covers
// nothing.
func (l *Lexed) Text(t Token) string {
	if t.IsEOF() {
		return ""
	}
	return l.Source[t.Span.Start:t.Span.End]
}
