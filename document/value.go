// Package document evaluates a syntax tree into plain TOML values:
// ordered tables, arrays, and scalars with their source positions.
// Evaluation is tolerant; semantic conflicts such as duplicate keys
// accumulate as errors while the rest of the document still converts.
package document

import (
	"fmt"

	"github.com/torii-format/torii/datetime"
	"github.com/torii-format/torii/text"
)

// ValueKind discriminates the value union.
type ValueKind int

const (
	KindBoolean ValueKind = iota
	KindInteger
	KindFloat
	KindString
	KindOffsetDateTime
	KindLocalDateTime
	KindLocalDate
	KindLocalTime
	KindArray
	KindTable
)

var valueKindNames = map[ValueKind]string{
	KindBoolean:        "boolean",
	KindInteger:        "integer",
	KindFloat:          "float",
	KindString:         "string",
	KindOffsetDateTime: "offset date-time",
	KindLocalDateTime:  "local date-time",
	KindLocalDate:      "local date",
	KindLocalTime:      "local time",
	KindArray:          "array",
	KindTable:          "table",
}

func (k ValueKind) String() string {
	if s, ok := valueKindNames[k]; ok {
		return s
	}
	return "value"
}

// Value is one evaluated TOML value. Every value remembers where it
// came from.
type Value interface {
	Kind() ValueKind
	Range() text.Range
}

// Error is a semantic diagnostic raised during evaluation.
type Error struct {
	Message string
	Range   text.Range
}

func (e Error) Error() string {
	return fmt.Sprintf("%s at %s", e.Message, e.Range)
}

type Boolean struct {
	Value bool
	rng   text.Range
}

func (v *Boolean) Kind() ValueKind { return KindBoolean }
func (v *Boolean) Range() text.Range { return v.rng }

type Integer struct {
	Value int64
	rng   text.Range
}

func (v *Integer) Kind() ValueKind { return KindInteger }
func (v *Integer) Range() text.Range { return v.rng }

type Float struct {
	Value float64
	rng   text.Range
}

func (v *Float) Kind() ValueKind { return KindFloat }
func (v *Float) Range() text.Range { return v.rng }

type String struct {
	Value string
	rng   text.Range
}

func (v *String) Kind() ValueKind { return KindString }
func (v *String) Range() text.Range { return v.rng }

type OffsetDateTime struct {
	Value datetime.OffsetDateTime
	rng   text.Range
}

func (v *OffsetDateTime) Kind() ValueKind { return KindOffsetDateTime }
func (v *OffsetDateTime) Range() text.Range { return v.rng }

type LocalDateTime struct {
	Value datetime.LocalDateTime
	rng   text.Range
}

func (v *LocalDateTime) Kind() ValueKind { return KindLocalDateTime }
func (v *LocalDateTime) Range() text.Range { return v.rng }

type LocalDate struct {
	Value datetime.LocalDate
	rng   text.Range
}

func (v *LocalDate) Kind() ValueKind { return KindLocalDate }
func (v *LocalDate) Range() text.Range { return v.rng }

type LocalTime struct {
	Value datetime.LocalTime
	rng   text.Range
}

func (v *LocalTime) Kind() ValueKind { return KindLocalTime }
func (v *LocalTime) Range() text.Range { return v.rng }
