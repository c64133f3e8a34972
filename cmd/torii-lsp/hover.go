package main

import (
	"context"
	"fmt"
	"strings"

	"go.lsp.dev/protocol"

	"github.com/torii-format/torii/ast"
	"github.com/torii-format/torii/syntax"
	"github.com/torii-format/torii/text"
)

// Hover reports the key path and value kind under the cursor.
func (s *Server) Hover(ctx context.Context, params *protocol.HoverParams) (*protocol.Hover, error) {
	doc := s.docs.get(string(params.TextDocument.URI))
	if doc == nil {
		return nil, nil
	}

	offset := doc.lineIndex.Offset(text.Position{
		Line:   int(params.Position.Line),
		Column: int(params.Position.Character),
	})
	tok := doc.parsed.SyntaxNode().TokenAtOffset(offset)
	if tok == nil || tok.Kind().IsTrivia() {
		return nil, nil
	}

	hoverText := buildHoverText(doc, tok)
	if hoverText == "" {
		return nil, nil
	}

	return &protocol.Hover{
		Contents: protocol.MarkupContent{
			Kind:  protocol.Markdown,
			Value: hoverText,
		},
		Range: func() *protocol.Range {
			r := protocolRange(tok.Range(doc.lineIndex))
			return &r
		}(),
	}, nil
}

func buildHoverText(doc *openDocument, tok *syntax.SyntaxToken) string {
	var parts []string

	if path := keyPathOf(tok); path != "" {
		parts = append(parts, fmt.Sprintf("**Key:** `%s`", path))
	}
	if tok.Kind().IsScalar() {
		parts = append(parts, fmt.Sprintf("**Kind:** %s", scalarKindName(tok.Kind())))
	}

	return strings.Join(parts, "\n\n")
}

// keyPathOf renders the dotted path of the key-value or table header
// enclosing the token.
func keyPathOf(tok *syntax.SyntaxToken) string {
	for n := range tok.Ancestors() {
		switch n.Kind() {
		case syntax.KeyValue:
			kv, _ := ast.CastTo[*ast.KeyValue](n)
			if keys, ok := kv.Keys(); ok {
				return renderKeys(keys)
			}
		case syntax.TableHeader, syntax.ArrayTableHeader:
			for _, c := range n.ChildNodes() {
				if keys, ok := ast.CastTo[*ast.Keys](c); ok {
					return renderKeys(keys)
				}
			}
		}
	}
	return ""
}

func renderKeys(keys *ast.Keys) string {
	var parts []string
	for _, k := range keys.Keys() {
		txt, err := k.Text()
		if err != nil {
			continue
		}
		parts = append(parts, txt)
	}
	return strings.Join(parts, ".")
}

func scalarKindName(k syntax.Kind) string {
	switch k {
	case syntax.BasicString, syntax.MultiLineBasicString,
		syntax.LiteralString, syntax.MultiLineLiteralString:
		return "string"
	case syntax.IntegerDec, syntax.IntegerHex, syntax.IntegerOct, syntax.IntegerBin:
		return "integer"
	case syntax.Float:
		return "float"
	case syntax.Boolean:
		return "boolean"
	case syntax.OffsetDateTime:
		return "offset date-time"
	case syntax.LocalDateTime:
		return "local date-time"
	case syntax.LocalDate:
		return "local date"
	case syntax.LocalTime:
		return "local time"
	default:
		return k.String()
	}
}
