package main

import (
	"context"
	"strconv"

	"go.lsp.dev/protocol"

	"github.com/torii-format/torii/document"
)

// DocumentSymbol reports the evaluated table tree as a symbol
// hierarchy.
func (s *Server) DocumentSymbol(ctx context.Context, params *protocol.DocumentSymbolParams) ([]interface{}, error) {
	doc := s.docs.get(string(params.TextDocument.URI))
	if doc == nil || doc.table == nil {
		return nil, nil
	}
	symbols := tableSymbols(doc.table)
	out := make([]interface{}, len(symbols))
	for i := range symbols {
		out[i] = symbols[i]
	}
	return out, nil
}

func tableSymbols(t *document.Table) []protocol.DocumentSymbol {
	var out []protocol.DocumentSymbol
	for _, key := range t.Keys() {
		v, _ := t.Get(key)
		out = append(out, valueSymbol(key, v))
	}
	return out
}

func valueSymbol(name string, v document.Value) protocol.DocumentSymbol {
	rng := protocolRange(v.Range())
	sym := protocol.DocumentSymbol{
		Name:           name,
		Kind:           symbolKind(v),
		Range:          rng,
		SelectionRange: rng,
	}
	switch t := v.(type) {
	case *document.Table:
		sym.Children = tableSymbols(t)
	case *document.Array:
		for i, e := range t.Values() {
			sym.Children = append(sym.Children, valueSymbol(indexName(i), e))
		}
	}
	return sym
}

func indexName(i int) string {
	return "[" + strconv.Itoa(i) + "]"
}

func symbolKind(v document.Value) protocol.SymbolKind {
	switch v.Kind() {
	case document.KindTable:
		return protocol.SymbolKindObject
	case document.KindArray:
		return protocol.SymbolKindArray
	case document.KindBoolean:
		return protocol.SymbolKindBoolean
	case document.KindInteger, document.KindFloat:
		return protocol.SymbolKindNumber
	case document.KindString:
		return protocol.SymbolKindString
	default:
		// Date-time families.
		return protocol.SymbolKindConstant
	}
}
