package main

import (
	"testing"

	"go.lsp.dev/protocol"
)

func pos(line, char uint32) protocol.Position {
	return protocol.Position{Line: line, Character: char}
}

func TestApplyChangeFullReplacement(t *testing.T) {
	got := applyChange("old = 1\n", contentChange{Text: "new = 2\n"})
	if got != "new = 2\n" {
		t.Errorf("full replacement = %q", got)
	}
}

func TestApplyChangeInsertAtFileStart(t *testing.T) {
	r := protocol.Range{Start: pos(0, 0), End: pos(0, 0)}
	got := applyChange("b = 2\n", contentChange{Range: &r, Text: "a = 1\n"})
	if got != "a = 1\nb = 2\n" {
		t.Errorf("insertion at (0,0) = %q", got)
	}
}

func TestApplyChangeSplice(t *testing.T) {
	r := protocol.Range{Start: pos(1, 4), End: pos(1, 5)}
	got := applyChange("a = 1\nb = 2\n", contentChange{Range: &r, Text: "42"})
	if got != "a = 1\nb = 42\n" {
		t.Errorf("splice = %q", got)
	}
}

func TestDocumentStorePut(t *testing.T) {
	ds := &documentStore{docs: make(map[string]*openDocument)}
	ds.put("file:///c.toml", "key = true\n", 1)
	doc := ds.get("file:///c.toml")
	if doc == nil {
		t.Fatal("document not stored")
	}
	if len(doc.parsed.Errors()) != 0 || len(doc.semErrors) != 0 {
		t.Errorf("clean document carries diagnostics: %v %v", doc.parsed.Errors(), doc.semErrors)
	}
	if _, ok := doc.table.Get("key"); !ok {
		t.Error("evaluated table is missing \"key\"")
	}
	ds.remove("file:///c.toml")
	if ds.get("file:///c.toml") != nil {
		t.Error("remove left the document behind")
	}
}
