// Package syntax defines the closed kind enumeration for the TOML
// grammar and instantiates the rg tree machinery with it.
package syntax

import "github.com/torii-format/torii/rg"

// Kind tags every element of a TOML syntax tree, token or node.
type Kind uint16

const (
	EOF Kind = iota

	// Trivia tokens, always attached to the tree so re-rendering a
	// tree reproduces the source byte for byte.
	Whitespace
	LineBreak
	Comment

	// Literal tokens.
	BareKey
	BasicString
	MultiLineBasicString
	LiteralString
	MultiLineLiteralString
	IntegerDec
	IntegerHex
	IntegerOct
	IntegerBin
	Float
	Boolean
	OffsetDateTime
	LocalDateTime
	LocalDate
	LocalTime

	// Punctuation tokens.
	Comma
	Dot
	Equal
	BraceStart
	BraceEnd
	BracketStart
	BracketEnd

	// Error tags both malformed tokens and the error-island nodes the
	// parser wraps unexpected material in.
	ErrorTok

	// Node kinds.
	Root
	Table
	ArrayOfTable
	TableHeader
	ArrayTableHeader
	KeyValue
	Keys
	Key
	Value
	Array
	InlineTable

	kindCount
)

var kindNames = map[Kind]string{
	EOF:                    "EOF",
	Whitespace:             "WHITESPACE",
	LineBreak:              "LINE_BREAK",
	Comment:                "COMMENT",
	BareKey:                "BARE_KEY",
	BasicString:            "BASIC_STRING",
	MultiLineBasicString:   "MULTI_LINE_BASIC_STRING",
	LiteralString:          "LITERAL_STRING",
	MultiLineLiteralString: "MULTI_LINE_LITERAL_STRING",
	IntegerDec:             "INTEGER_DEC",
	IntegerHex:             "INTEGER_HEX",
	IntegerOct:             "INTEGER_OCT",
	IntegerBin:             "INTEGER_BIN",
	Float:                  "FLOAT",
	Boolean:                "BOOLEAN",
	OffsetDateTime:         "OFFSET_DATE_TIME",
	LocalDateTime:          "LOCAL_DATE_TIME",
	LocalDate:              "LOCAL_DATE",
	LocalTime:              "LOCAL_TIME",
	Comma:                  "COMMA",
	Dot:                    "DOT",
	Equal:                  "EQUAL",
	BraceStart:             "BRACE_START",
	BraceEnd:               "BRACE_END",
	BracketStart:           "BRACKET_START",
	BracketEnd:             "BRACKET_END",
	ErrorTok:               "ERROR",
	Root:                   "ROOT",
	Table:                  "TABLE",
	ArrayOfTable:           "ARRAY_OF_TABLE",
	TableHeader:            "TABLE_HEADER",
	ArrayTableHeader:       "ARRAY_TABLE_HEADER",
	KeyValue:               "KEY_VALUE",
	Keys:                   "KEYS",
	Key:                    "KEY",
	Value:                  "VALUE",
	Array:                  "ARRAY",
	InlineTable:            "INLINE_TABLE",
}

func (k Kind) String() string {
	if s, ok := kindNames[k]; ok {
		return s
	}
	return "KIND(?)"
}

// IsTrivia reports whether the kind is whitespace, a line break, or a
// comment.
func (k Kind) IsTrivia() bool {
	switch k {
	case Whitespace, LineBreak, Comment:
		return true
	default:
		return false
	}
}

// IsScalar reports whether the kind is a scalar value literal.
func (k Kind) IsScalar() bool {
	switch k {
	case BasicString, MultiLineBasicString, LiteralString, MultiLineLiteralString,
		IntegerDec, IntegerHex, IntegerOct, IntegerBin, Float, Boolean,
		OffsetDateTime, LocalDateTime, LocalDate, LocalTime:
		return true
	default:
		return false
	}
}

// Instantiations of the generic tree machinery for this grammar.
type (
	GreenNode     = rg.GreenNode[Kind]
	GreenToken    = rg.GreenToken[Kind]
	GreenElement  = rg.GreenElement[Kind]
	SyntaxNode    = rg.RedNode[Kind]
	SyntaxToken   = rg.RedToken[Kind]
	SyntaxElement = rg.RedElement[Kind]
	Builder       = rg.Builder[Kind]
	TokenSet      = rg.TokenSet[Kind]
)

// NewBuilder returns a green tree builder for this grammar.
func NewBuilder() *Builder { return rg.NewBuilder[Kind]() }

// NewTokenSet builds a bitset over this grammar's kind space.
func NewTokenSet(kinds ...Kind) TokenSet { return rg.NewTokenSet(kinds...) }

// NewRoot wraps a green tree in a read-only cursor.
func NewRoot(green *GreenNode) *SyntaxNode { return rg.NewRoot(green) }

// NewRootMut wraps a green tree in an editable cursor.
func NewRootMut(green *GreenNode) *SyntaxNode { return rg.NewRootMut(green) }
