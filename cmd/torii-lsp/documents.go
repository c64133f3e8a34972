package main

import (
	"context"
	"sync"

	"go.lsp.dev/protocol"
	"go.uber.org/zap"

	"github.com/torii-format/torii/ast"
	"github.com/torii-format/torii/document"
	"github.com/torii-format/torii/parser"
	"github.com/torii-format/torii/text"
)

type documentStore struct {
	mu   sync.RWMutex
	docs map[string]*openDocument
}

// openDocument is one open text document with its parse. The store
// reparses on every change; parsing is tolerant, so a document always
// has a tree.
type openDocument struct {
	uri     string
	content string
	version int32

	lineIndex *text.LineIndex
	parsed    parser.Parsed[*ast.Root]
	table     *document.Table
	semErrors []document.Error
}

func (ds *documentStore) get(uri string) *openDocument {
	ds.mu.RLock()
	defer ds.mu.RUnlock()
	return ds.docs[uri]
}

func (ds *documentStore) put(uri string, content string, version int32) {
	ix := text.NewLineIndex(content)
	parsed := parser.Parse(content)
	table, semErrors := document.FromRoot(parsed.Tree(), ix)

	ds.mu.Lock()
	defer ds.mu.Unlock()
	ds.docs[uri] = &openDocument{
		uri:       uri,
		content:   content,
		version:   version,
		lineIndex: ix,
		parsed:    parsed,
		table:     table,
		semErrors: semErrors,
	}
}

func (ds *documentStore) remove(uri string) {
	ds.mu.Lock()
	defer ds.mu.Unlock()
	delete(ds.docs, uri)
}

func (s *Server) DidOpen(ctx context.Context, params *protocol.DidOpenTextDocumentParams) error {
	uri := string(params.TextDocument.URI)
	s.logger.Debug("didOpen", zap.String("uri", uri))
	s.docs.put(uri, params.TextDocument.Text, params.TextDocument.Version)
	s.publishDiagnostics(ctx, uri)
	return nil
}

// contentChange mirrors protocol.TextDocumentContentChangeEvent but
// keeps the range's presence. The protocol type carries Range by
// value, so a full-document replacement (no range on the wire) would
// decode equal to a zero-width change at the file start.
type contentChange struct {
	Range *protocol.Range `json:"range"`
	Text  string          `json:"text"`
}

// DidChange handles events decoded by the generated handler. Range
// presence is already lost here; the stdio server routes didChange
// through the raw decoder in main.go instead.
func (s *Server) DidChange(ctx context.Context, params *protocol.DidChangeTextDocumentParams) error {
	changes := make([]contentChange, 0, len(params.ContentChanges))
	for _, c := range params.ContentChanges {
		r := c.Range
		changes = append(changes, contentChange{Range: &r, Text: c.Text})
	}
	return s.applyChanges(ctx, string(params.TextDocument.URI), params.TextDocument.Version, changes)
}

func (s *Server) applyChanges(ctx context.Context, uri string, version int32, changes []contentChange) error {
	doc := s.docs.get(uri)
	if doc == nil {
		return nil
	}

	content := doc.content
	for _, change := range changes {
		content = applyChange(content, change)
	}

	s.docs.put(uri, content, version)
	s.publishDiagnostics(ctx, uri)
	return nil
}

func (s *Server) DidSave(ctx context.Context, params *protocol.DidSaveTextDocumentParams) error {
	s.publishDiagnostics(ctx, string(params.TextDocument.URI))
	return nil
}

func (s *Server) DidClose(ctx context.Context, params *protocol.DidCloseTextDocumentParams) error {
	s.docs.remove(string(params.TextDocument.URI))
	return nil
}

// applyChange splices one content change into the document text. An
// absent range means full replacement.
func applyChange(content string, change contentChange) string {
	if change.Range == nil {
		return change.Text
	}
	r := *change.Range
	ix := text.NewLineIndex(content)
	start := ix.Offset(text.Position{Line: int(r.Start.Line), Column: int(r.Start.Character)})
	end := ix.Offset(text.Position{Line: int(r.End.Line), Column: int(r.End.Character)})
	if start > len(content) {
		start = len(content)
	}
	if end > len(content) || end < start {
		end = len(content)
	}
	return content[:start] + change.Text + content[end:]
}
