// Package diagnostic renders parse and evaluation errors for humans.
package diagnostic

import (
	"fmt"
	"io"
	"os"
	"sort"

	"github.com/fatih/color"
	"github.com/mattn/go-isatty"

	"github.com/torii-format/torii/document"
	"github.com/torii-format/torii/syntax"
	"github.com/torii-format/torii/text"
)

// Severity orders diagnostics by weight.
type Severity int

const (
	SeverityError Severity = iota
	SeverityWarning
)

func (s Severity) String() string {
	if s == SeverityWarning {
		return "warning"
	}
	return "error"
}

// Diagnostic is one renderable message with its source position.
type Diagnostic struct {
	Severity Severity
	Message  string
	Range    text.Range
}

// FromSyntaxErrors converts lexer and parser diagnostics.
func FromSyntaxErrors(errs []syntax.Error) []Diagnostic {
	out := make([]Diagnostic, 0, len(errs))
	for _, e := range errs {
		out = append(out, Diagnostic{
			Severity: SeverityError,
			Message:  e.Kind.Message(),
			Range:    e.Range,
		})
	}
	return out
}

// FromDocumentErrors converts evaluation diagnostics.
func FromDocumentErrors(errs []document.Error) []Diagnostic {
	out := make([]Diagnostic, 0, len(errs))
	for _, e := range errs {
		out = append(out, Diagnostic{
			Severity: SeverityError,
			Message:  e.Message,
			Range:    e.Range,
		})
	}
	return out
}

// Sort orders diagnostics by position, errors before warnings on
// ties.
func Sort(ds []Diagnostic) {
	sort.SliceStable(ds, func(i, j int) bool {
		if c := ds[i].Range.Cmp(ds[j].Range); c != 0 {
			return c < 0
		}
		return ds[i].Severity < ds[j].Severity
	})
}

// Printer writes diagnostics, colorized when the destination is a
// terminal.
type Printer struct {
	w        io.Writer
	filename string
	colorize bool
}

func NewPrinter(w io.Writer, filename string) *Printer {
	colorize := false
	if f, ok := w.(*os.File); ok {
		colorize = isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
	}
	return &Printer{w: w, filename: filename, colorize: colorize}
}

var (
	errorColor   = color.New(color.FgRed, color.Bold)
	warningColor = color.New(color.FgYellow, color.Bold)
	posColor     = color.New(color.Faint)
)

// Print renders one diagnostic as `file:line:col: severity: message`.
// Positions print 1-based.
func (p *Printer) Print(d Diagnostic) {
	pos := fmt.Sprintf("%s:%d:%d:", p.filename, d.Range.Start.Line+1, d.Range.Start.Column+1)
	sev := d.Severity.String()
	if p.colorize {
		pos = posColor.Sprint(pos)
		if d.Severity == SeverityWarning {
			sev = warningColor.Sprint(sev)
		} else {
			sev = errorColor.Sprint(sev)
		}
	}
	fmt.Fprintf(p.w, "%s %s: %s\n", pos, sev, d.Message)
}

// PrintAll sorts and renders every diagnostic, returning how many
// were errors.
func (p *Printer) PrintAll(ds []Diagnostic) int {
	Sort(ds)
	errs := 0
	for _, d := range ds {
		if d.Severity == SeverityError {
			errs++
		}
		p.Print(d)
	}
	return errs
}
