package main

import (
	"context"

	"go.lsp.dev/protocol"
	"go.uber.org/zap"

	"github.com/torii-format/torii/text"
)

const diagnosticSource = "torii"

func (s *Server) publishDiagnostics(ctx context.Context, uri string) {
	doc := s.docs.get(uri)
	if doc == nil {
		return
	}

	diagnostics := validateDocument(doc)
	s.logger.Debug("publishDiagnostics",
		zap.String("uri", uri), zap.Int("count", len(diagnostics)))

	if s.conn != nil {
		s.conn.Notify(ctx, protocol.MethodTextDocumentPublishDiagnostics, &protocol.PublishDiagnosticsParams{
			URI:         protocol.DocumentURI(uri),
			Diagnostics: diagnostics,
		})
	}
}

func validateDocument(doc *openDocument) []protocol.Diagnostic {
	diagnostics := []protocol.Diagnostic{}

	for _, e := range doc.parsed.Errors() {
		diagnostics = append(diagnostics, protocol.Diagnostic{
			Range:    protocolRange(e.Range),
			Severity: protocol.DiagnosticSeverityError,
			Message:  e.Kind.Message(),
			Source:   diagnosticSource,
		})
	}
	for _, e := range doc.semErrors {
		diagnostics = append(diagnostics, protocol.Diagnostic{
			Range:    protocolRange(e.Range),
			Severity: protocol.DiagnosticSeverityError,
			Message:  e.Message,
			Source:   diagnosticSource,
		})
	}

	return diagnostics
}

func protocolRange(r text.Range) protocol.Range {
	return protocol.Range{
		Start: protocolPosition(r.Start),
		End:   protocolPosition(r.End),
	}
}

func protocolPosition(p text.Position) protocol.Position {
	return protocol.Position{Line: uint32(p.Line), Character: uint32(p.Column)}
}
