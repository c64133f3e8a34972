package main

import (
	"context"
	"strings"

	"go.lsp.dev/protocol"

	"github.com/torii-format/torii/syntax"
)

// Indices into the legend advertised by Initialize.
const (
	tokenTypeComment uint32 = iota
	tokenTypeKeyword
	tokenTypeString
	tokenTypeNumber
	tokenTypeOperator
	tokenTypeProperty
)

// SemanticTokensFull classifies every non-whitespace token in the
// document.
func (s *Server) SemanticTokensFull(ctx context.Context, params *protocol.SemanticTokensParams) (*protocol.SemanticTokens, error) {
	doc := s.docs.get(string(params.TextDocument.URI))
	if doc == nil {
		return nil, nil
	}

	var enc tokenEncoder
	var walk func(n *syntax.SyntaxNode, inKey bool)
	walk = func(n *syntax.SyntaxNode, inKey bool) {
		for _, c := range n.Children() {
			if c.IsNode() {
				walk(c.AsNode(), inKey || c.Kind() == syntax.Key)
				continue
			}
			tok := c.AsToken()
			typ, ok := semanticTokenType(tok.Kind(), inKey)
			if !ok {
				continue
			}
			enc.add(doc, tok, typ)
		}
	}
	walk(doc.parsed.SyntaxNode(), false)

	return &protocol.SemanticTokens{Data: enc.data}, nil
}

func semanticTokenType(k syntax.Kind, inKey bool) (uint32, bool) {
	if inKey {
		return tokenTypeProperty, true
	}
	switch k {
	case syntax.Comment:
		return tokenTypeComment, true
	case syntax.Boolean:
		return tokenTypeKeyword, true
	case syntax.BasicString, syntax.MultiLineBasicString,
		syntax.LiteralString, syntax.MultiLineLiteralString:
		return tokenTypeString, true
	case syntax.IntegerDec, syntax.IntegerHex, syntax.IntegerOct, syntax.IntegerBin,
		syntax.Float,
		syntax.OffsetDateTime, syntax.LocalDateTime, syntax.LocalDate, syntax.LocalTime:
		return tokenTypeNumber, true
	case syntax.Equal, syntax.Dot, syntax.Comma,
		syntax.BraceStart, syntax.BraceEnd, syntax.BracketStart, syntax.BracketEnd:
		return tokenTypeOperator, true
	default:
		return 0, false
	}
}

// tokenEncoder produces the LSP delta encoding: for each token, the
// line delta from the previous token, the start delta within the
// line, the length, the type index, and a modifier bitmask.
type tokenEncoder struct {
	data     []uint32
	prevLine uint32
	prevCol  uint32
}

func (e *tokenEncoder) add(doc *openDocument, tok *syntax.SyntaxToken, typ uint32) {
	r := tok.Range(doc.lineIndex)
	text := tok.Text()

	// Semantic tokens cannot span lines; emit one segment per line.
	line := uint32(r.Start.Line)
	col := uint32(r.Start.Column)
	for _, seg := range strings.Split(text, "\n") {
		seg = strings.TrimSuffix(seg, "\r")
		if len(seg) > 0 {
			e.push(line, col, uint32(len(seg)), typ)
		}
		line++
		col = 0
	}
}

func (e *tokenEncoder) push(line, col, length, typ uint32) {
	deltaLine := line - e.prevLine
	deltaCol := col
	if deltaLine == 0 {
		deltaCol = col - e.prevCol
	}
	e.data = append(e.data, deltaLine, deltaCol, length, typ, 0)
	e.prevLine = line
	e.prevCol = col
}
