package main

import (
	"context"

	"go.lsp.dev/protocol"

	"github.com/torii-format/torii/syntax"
)

// FoldingRanges folds tables, multi-line arrays, and multi-line
// strings.
func (s *Server) FoldingRanges(ctx context.Context, params *protocol.FoldingRangeParams) ([]protocol.FoldingRange, error) {
	doc := s.docs.get(string(params.TextDocument.URI))
	if doc == nil {
		return nil, nil
	}

	var out []protocol.FoldingRange
	var walk func(n *syntax.SyntaxNode)
	walk = func(n *syntax.SyntaxNode) {
		switch n.Kind() {
		case syntax.Table, syntax.ArrayOfTable, syntax.Array, syntax.InlineTable:
			r := n.Range(doc.lineIndex)
			if r.End.Line > r.Start.Line {
				out = append(out, protocol.FoldingRange{
					StartLine: uint32(r.Start.Line),
					EndLine:   uint32(r.End.Line),
					Kind:      protocol.RegionFoldingRange,
				})
			}
		}
		for _, c := range n.Children() {
			if c.IsNode() {
				walk(c.AsNode())
				continue
			}
			tok := c.AsToken()
			switch tok.Kind() {
			case syntax.MultiLineBasicString, syntax.MultiLineLiteralString:
				r := tok.Range(doc.lineIndex)
				if r.End.Line > r.Start.Line {
					out = append(out, protocol.FoldingRange{
						StartLine: uint32(r.Start.Line),
						EndLine:   uint32(r.End.Line),
						Kind:      protocol.RegionFoldingRange,
					})
				}
			}
		}
	}
	walk(doc.parsed.SyntaxNode())
	return out, nil
}
