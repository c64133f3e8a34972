package parser

import "github.com/torii-format/torii/syntax"

// Recovery and lookahead sets. Resynchronizing on a set bounds the
// cost of one malformed construct to one diagnostic plus one error
// island.
var (
	tsLineEnd          = syntax.NewTokenSet(syntax.LineBreak, syntax.EOF)
	tsCommentOrLineEnd = syntax.NewTokenSet(syntax.Comment, syntax.LineBreak, syntax.EOF)

	// tsNextSection resynchronizes top-level errors at the next table
	// header (a line-initial bracket) or end of file.
	tsNextSection = syntax.NewTokenSet(syntax.BracketStart, syntax.EOF)

	// tsKeyFirst: tokens that can begin a key. Besides quoted and bare
	// keys, number-, boolean-, and date-shaped lexemes are legal key
	// text, e.g. `1234 = "v"`, `true = "v"`, `2001-02-08 = "v"`.
	tsKeyFirst = syntax.NewTokenSet(
		syntax.BareKey,
		syntax.BasicString,
		syntax.LiteralString,
		syntax.IntegerDec,
		syntax.Float,
		syntax.Boolean,
		syntax.LocalDate,
	)

	tsValueFirst = syntax.NewTokenSet(
		syntax.BasicString,
		syntax.MultiLineBasicString,
		syntax.LiteralString,
		syntax.MultiLineLiteralString,
		syntax.IntegerDec,
		syntax.IntegerHex,
		syntax.IntegerOct,
		syntax.IntegerBin,
		syntax.Float,
		syntax.Boolean,
		syntax.OffsetDateTime,
		syntax.LocalDateTime,
		syntax.LocalDate,
		syntax.LocalTime,
		syntax.BracketStart,
		syntax.BraceStart,
	)

	tsArrayRecovery       = syntax.NewTokenSet(syntax.Comma, syntax.BracketEnd, syntax.EOF)
	tsInlineTableRecovery = syntax.NewTokenSet(syntax.Comma, syntax.BraceEnd, syntax.LineBreak, syntax.EOF)
)
