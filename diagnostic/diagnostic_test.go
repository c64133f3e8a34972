package diagnostic_test

import (
	"bytes"
	"testing"

	"github.com/torii-format/torii/diagnostic"
	"github.com/torii-format/torii/document"
	"github.com/torii-format/torii/parser"
	"github.com/torii-format/torii/text"
)

func at(line, col int) text.Range {
	p := text.Position{Line: line, Column: col}
	return text.NewRange(p, p)
}

func TestSortByPosition(t *testing.T) {
	ds := []diagnostic.Diagnostic{
		{Severity: diagnostic.SeverityError, Message: "third", Range: at(2, 0)},
		{Severity: diagnostic.SeverityWarning, Message: "second", Range: at(0, 4)},
		{Severity: diagnostic.SeverityError, Message: "first", Range: at(0, 4)},
	}
	diagnostic.Sort(ds)
	got := []string{ds[0].Message, ds[1].Message, ds[2].Message}
	want := []string{"first", "second", "third"}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("order = %v, want %v", got, want)
		}
	}
}

func TestPrinterFormat(t *testing.T) {
	var buf bytes.Buffer
	p := diagnostic.NewPrinter(&buf, "conf.toml")
	p.Print(diagnostic.Diagnostic{
		Severity: diagnostic.SeverityError,
		Message:  "duplicate key \"a\"",
		Range:    at(1, 0),
	})
	want := "conf.toml:2:1: error: duplicate key \"a\"\n"
	if buf.String() != want {
		t.Errorf("Print = %q, want %q", buf.String(), want)
	}
}

func TestPrintAllCountsErrors(t *testing.T) {
	var buf bytes.Buffer
	p := diagnostic.NewPrinter(&buf, "x")
	n := p.PrintAll([]diagnostic.Diagnostic{
		{Severity: diagnostic.SeverityWarning, Range: at(0, 0), Message: "w"},
		{Severity: diagnostic.SeverityError, Range: at(1, 0), Message: "e"},
	})
	if n != 1 {
		t.Errorf("PrintAll = %d errors, want 1", n)
	}
}

func TestFromErrors(t *testing.T) {
	src := "a = 1\na = 2\nb = !!!\n"
	parsed := parser.Parse(src)
	ix := text.NewLineIndex(src)
	syn := diagnostic.FromSyntaxErrors(parsed.Errors())
	if len(syn) != 1 {
		t.Fatalf("syntax diagnostics = %v", syn)
	}
	if syn[0].Message == "" {
		t.Error("syntax diagnostic has no message")
	}
	_, semErrs := document.FromRoot(parsed.Tree(), ix)
	sem := diagnostic.FromDocumentErrors(semErrs)
	if len(sem) != 1 {
		t.Fatalf("semantic diagnostics = %v", sem)
	}
	if sem[0].Range.Start.Line != 1 {
		t.Errorf("duplicate key diagnostic at %s, want line 1", sem[0].Range)
	}
}
