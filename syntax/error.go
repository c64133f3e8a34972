package syntax

import (
	"fmt"

	"github.com/torii-format/torii/text"
)

// ErrorKind is the closed set of lex- and parse-time diagnostics.
type ErrorKind int

const (
	InvalidToken ErrorKind = iota
	InvalidKey
	InvalidBasicString
	InvalidLiteralString
	InvalidMultilineBasicString
	InvalidMultilineLiteralString
	InvalidNumber
	InvalidOffsetDateTime
	InvalidLocalDateTime
	InvalidLocalDate
	InvalidLocalTime
	InvalidLineBreak
)

var errorKindMessages = map[ErrorKind]string{
	InvalidToken:                  "invalid token",
	InvalidKey:                    "invalid key",
	InvalidBasicString:            "invalid basic string",
	InvalidLiteralString:          "invalid literal string",
	InvalidMultilineBasicString:   "invalid multi-line basic string",
	InvalidMultilineLiteralString: "invalid multi-line literal string",
	InvalidNumber:                 "invalid number",
	InvalidOffsetDateTime:         "invalid offset date-time",
	InvalidLocalDateTime:          "invalid local date-time",
	InvalidLocalDate:              "invalid local date",
	InvalidLocalTime:              "invalid local time",
	InvalidLineBreak:              "invalid line break",
}

func (k ErrorKind) Message() string {
	if m, ok := errorKindMessages[k]; ok {
		return m
	}
	return "syntax error"
}

// Error is one diagnostic with its precise location. Diagnostics
// accumulate per parse and never abort it.
type Error struct {
	Kind  ErrorKind
	Span  text.Span
	Range text.Range
}

func NewError(kind ErrorKind, span text.Span, rng text.Range) Error {
	return Error{Kind: kind, Span: span, Range: rng}
}

func (e Error) Error() string {
	return fmt.Sprintf("%s at %s (%s)", e.Kind.Message(), e.Span, e.Range)
}
