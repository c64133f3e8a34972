package lexer

import (
	"strings"

	"github.com/torii-format/torii/syntax"
)

// scalarBytes are the bytes that may continue a lexeme starting with a
// digit or sign: enough to cover numbers in every base, exponents,
// date-times with offsets, and digit-leading bare keys.
func isScalarByte(c byte) bool {
	return isBareKeyByte(c) || c == '+' || c == '.' || c == ':'
}

// scanNumberish lexes a maximal run that starts with a digit or sign
// and classifies it as a date-time, a number, or a bare key. A run
// that matches none of those shapes becomes an error token whose kind
// is the nearest literal family.
func (lx *lexer) scanNumberish() {
	start := lx.pos
	for lx.pos < len(lx.src) && isScalarByte(lx.src[lx.pos]) {
		lx.pos++
	}
	// A full date may continue with a space-separated time,
	// e.g. `2024-01-02 03:04:05`.
	if isFullDate(lx.src[start:lx.pos]) &&
		lx.pos+2 < len(lx.src) && lx.src[lx.pos] == ' ' &&
		isDigit(lx.src[lx.pos+1]) && isDigit(lx.src[lx.pos+2]) {
		lx.pos++
		for lx.pos < len(lx.src) && isScalarByte(lx.src[lx.pos]) {
			lx.pos++
		}
	}
	run := lx.src[start:lx.pos]

	if kind, errKind, matched := classifyDateTime(run); matched {
		lx.emit(kind, start)
		if errKind != noError {
			lx.errorAt(errKind, start)
		}
		return
	}
	if kind, ok := classifyNumber(run); ok {
		lx.emit(kind, start)
		return
	}
	if isBareKeyText(run) {
		lx.emit(syntax.BareKey, start)
		return
	}
	kind, errKind := guessScalar(run)
	lx.emit(kind, start)
	lx.errorAt(errKind, start)
}

func isBareKeyText(s string) bool {
	for i := 0; i < len(s); i++ {
		if !isBareKeyByte(s[i]) {
			return false
		}
	}
	return len(s) > 0
}

// isFullDate reports a YYYY-MM-DD digit shape.
func isFullDate(s string) bool {
	if len(s) != 10 || s[4] != '-' || s[7] != '-' {
		return false
	}
	for _, i := range []int{0, 1, 2, 3, 5, 6, 8, 9} {
		if !isDigit(s[i]) {
			return false
		}
	}
	return true
}

// timeLen returns the length of a HH:MM:SS(.digits)? prefix, or -1.
func timeLen(s string) int {
	if len(s) < 8 || s[2] != ':' || s[5] != ':' {
		return -1
	}
	for _, i := range []int{0, 1, 3, 4, 6, 7} {
		if !isDigit(s[i]) {
			return -1
		}
	}
	n := 8
	if n < len(s) && s[n] == '.' {
		n++
		frac := 0
		for n < len(s) && isDigit(s[n]) {
			n++
			frac++
		}
		if frac == 0 {
			return -1
		}
	}
	return n
}

// offsetLen returns the length of a Z / z / ±HH:MM suffix shape, or -1.
func offsetLen(s string) int {
	if len(s) == 0 {
		return -1
	}
	if s[0] == 'Z' || s[0] == 'z' {
		return 1
	}
	if s[0] != '+' && s[0] != '-' {
		return -1
	}
	if len(s) < 6 || s[3] != ':' {
		return -1
	}
	for _, i := range []int{1, 2, 4, 5} {
		if !isDigit(s[i]) {
			return -1
		}
	}
	return 6
}

// noError marks a well-formed shape in classifyDateTime results.
const noError syntax.ErrorKind = -1

// classifyDateTime recognizes the date-time token family. matched is
// true when the run is date-or-time shaped at all; errKind is noError
// when the shape is well-formed.
func classifyDateTime(run string) (kind syntax.Kind, errKind syntax.ErrorKind, matched bool) {
	// time-only
	if len(run) >= 3 && isDigit(run[0]) && isDigit(run[1]) && run[2] == ':' {
		if n := timeLen(run); n == len(run) {
			return syntax.LocalTime, noError, true
		}
		return syntax.LocalTime, syntax.InvalidLocalTime, true
	}
	if len(run) < 10 || !isFullDate(run[:10]) {
		return 0, 0, false
	}
	if len(run) == 10 {
		return syntax.LocalDate, noError, true
	}
	sep := run[10]
	if sep != 'T' && sep != 't' && sep != ' ' {
		return syntax.LocalDate, syntax.InvalidLocalDate, true
	}
	rest := run[11:]
	n := timeLen(rest)
	if n < 0 {
		return syntax.LocalDateTime, syntax.InvalidLocalDateTime, true
	}
	rest = rest[n:]
	if rest == "" {
		return syntax.LocalDateTime, noError, true
	}
	if m := offsetLen(rest); m == len(rest) {
		return syntax.OffsetDateTime, noError, true
	}
	return syntax.OffsetDateTime, syntax.InvalidOffsetDateTime, true
}

// classifyNumber validates the TOML number grammar over the run.
func classifyNumber(run string) (syntax.Kind, bool) {
	s := run
	signed := false
	if len(s) > 0 && (s[0] == '+' || s[0] == '-') {
		s = s[1:]
		signed = true
	}
	switch s {
	case "inf", "nan":
		return syntax.Float, true
	}
	if strings.HasPrefix(s, "0x") {
		if signed {
			return 0, false
		}
		return syntax.IntegerHex, baseDigits(s[2:], isHexDigit)
	}
	if strings.HasPrefix(s, "0o") {
		if signed {
			return 0, false
		}
		return syntax.IntegerOct, baseDigits(s[2:], func(c byte) bool { return c >= '0' && c <= '7' })
	}
	if strings.HasPrefix(s, "0b") {
		if signed {
			return 0, false
		}
		return syntax.IntegerBin, baseDigits(s[2:], func(c byte) bool { return c == '0' || c == '1' })
	}
	return classifyDecimal(s)
}

// baseDigits validates digits of one base with underscores strictly
// between digits.
func baseDigits(s string, digit func(byte) bool) bool {
	if s == "" {
		return false
	}
	prevDigit := false
	for i := 0; i < len(s); i++ {
		c := s[i]
		switch {
		case digit(c):
			prevDigit = true
		case c == '_':
			if !prevDigit || i+1 >= len(s) || !digit(s[i+1]) {
				return false
			}
			prevDigit = false
		default:
			return false
		}
	}
	return prevDigit
}

func classifyDecimal(s string) (syntax.Kind, bool) {
	i, ok := decimalDigits(s, 0)
	if !ok || i == 0 {
		return 0, false
	}
	if i > 1 && s[0] == '0' {
		// leading zero
		return 0, false
	}
	isFloat := false
	if i < len(s) && s[i] == '.' {
		j, ok := decimalDigits(s, i+1)
		if !ok || j == i+1 {
			return 0, false
		}
		i = j
		isFloat = true
	}
	if i < len(s) && (s[i] == 'e' || s[i] == 'E') {
		i++
		if i < len(s) && (s[i] == '+' || s[i] == '-') {
			i++
		}
		j, ok := decimalDigits(s, i)
		if !ok || j == i {
			return 0, false
		}
		i = j
		isFloat = true
	}
	if i != len(s) {
		return 0, false
	}
	if isFloat {
		return syntax.Float, true
	}
	return syntax.IntegerDec, true
}

// decimalDigits consumes a digit run with embedded underscores
// starting at i; returns the index after the run. A run of length
// zero is only acceptable to callers that check for it.
func decimalDigits(s string, i int) (int, bool) {
	prevDigit := false
	for i < len(s) {
		c := s[i]
		if isDigit(c) {
			prevDigit = true
			i++
			continue
		}
		if c == '_' {
			if !prevDigit || i+1 >= len(s) || !isDigit(s[i+1]) {
				return i, false
			}
			prevDigit = false
			i++
			continue
		}
		break
	}
	return i, true
}

// guessScalar picks the nearest literal family for a run that matched
// nothing, so the diagnostic names what the author most likely meant.
func guessScalar(run string) (syntax.Kind, syntax.ErrorKind) {
	if len(run) >= 10 && isFullDate(run[:10]) {
		return syntax.LocalDate, syntax.InvalidLocalDate
	}
	if strings.Contains(run, ":") {
		return syntax.LocalTime, syntax.InvalidLocalTime
	}
	if strings.ContainsAny(run, ".eE") {
		return syntax.Float, syntax.InvalidNumber
	}
	return syntax.IntegerDec, syntax.InvalidNumber
}
