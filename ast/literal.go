package ast

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
	"unicode/utf8"
)

// Literal helpers shared by the document layer: numeric interpretation
// and string unquoting. Numeric helpers strip digit-group underscores
// then delegate to base-N integer parsing, so overflow and malformed
// digits surface as errors, never panics.

var ErrUnterminatedString = errors.New("unterminated string")

// TryFromBinary parses a 0b-prefixed binary integer literal.
func TryFromBinary(value string) (int64, error) {
	return strconv.ParseInt(stripUnderscores(trimPrefix(value)), 2, 64)
}

// TryFromOctal parses a 0o-prefixed octal integer literal.
func TryFromOctal(value string) (int64, error) {
	return strconv.ParseInt(stripUnderscores(trimPrefix(value)), 8, 64)
}

// TryFromDecimal parses a decimal integer literal.
func TryFromDecimal(value string) (int64, error) {
	return strconv.ParseInt(stripUnderscores(value), 10, 64)
}

// TryFromHexadecimal parses a 0x-prefixed hexadecimal integer literal.
func TryFromHexadecimal(value string) (int64, error) {
	return strconv.ParseInt(stripUnderscores(trimPrefix(value)), 16, 64)
}

// TryFromFloat parses a float literal, including inf and nan forms.
func TryFromFloat(value string) (float64, error) {
	s := stripUnderscores(value)
	switch s {
	case "inf", "+inf":
		return math.Inf(1), nil
	case "-inf":
		return math.Inf(-1), nil
	case "nan", "+nan", "-nan":
		return math.NaN(), nil
	}
	return strconv.ParseFloat(s, 64)
}

func trimPrefix(s string) string {
	if len(s) >= 2 {
		return s[2:]
	}
	return s
}

func stripUnderscores(s string) string {
	if !strings.Contains(s, "_") {
		return s
	}
	return strings.ReplaceAll(s, "_", "")
}

// UnquoteLiteral resolves a literal or multi-line literal string
// token's text to its value. Literal strings have no escapes.
func UnquoteLiteral(raw string) (string, error) {
	if strings.HasPrefix(raw, "'''") {
		if len(raw) < 6 || !strings.HasSuffix(raw, "'''") {
			return "", ErrUnterminatedString
		}
		return trimLeadingNewline(raw[3 : len(raw)-3]), nil
	}
	if len(raw) < 2 || raw[0] != '\'' || raw[len(raw)-1] != '\'' {
		return "", ErrUnterminatedString
	}
	return raw[1 : len(raw)-1], nil
}

// UnquoteBasic resolves a basic or multi-line basic string token's
// text to its value, processing escapes.
func UnquoteBasic(raw string) (string, error) {
	multiline := false
	var body string
	switch {
	case strings.HasPrefix(raw, `"""`):
		if len(raw) < 6 || !strings.HasSuffix(raw, `"""`) {
			return "", ErrUnterminatedString
		}
		body = trimLeadingNewline(raw[3 : len(raw)-3])
		multiline = true
	case len(raw) >= 2 && raw[0] == '"' && raw[len(raw)-1] == '"':
		body = raw[1 : len(raw)-1]
	default:
		return "", ErrUnterminatedString
	}
	if !strings.Contains(body, "\\") {
		return body, nil
	}
	var sb strings.Builder
	sb.Grow(len(body))
	for i := 0; i < len(body); {
		c := body[i]
		if c != '\\' {
			sb.WriteByte(c)
			i++
			continue
		}
		i++
		if i >= len(body) {
			return "", fmt.Errorf("bad escape at end of string")
		}
		switch body[i] {
		case 'b':
			sb.WriteByte('\b')
			i++
		case 't':
			sb.WriteByte('\t')
			i++
		case 'n':
			sb.WriteByte('\n')
			i++
		case 'f':
			sb.WriteByte('\f')
			i++
		case 'r':
			sb.WriteByte('\r')
			i++
		case '"':
			sb.WriteByte('"')
			i++
		case '\\':
			sb.WriteByte('\\')
			i++
		case 'u':
			r, n, err := unicodeEscape(body[i+1:], 4)
			if err != nil {
				return "", err
			}
			sb.WriteRune(r)
			i += 1 + n
		case 'U':
			r, n, err := unicodeEscape(body[i+1:], 8)
			if err != nil {
				return "", err
			}
			sb.WriteRune(r)
			i += 1 + n
		default:
			if multiline {
				// line-ending backslash: skip whitespace through the
				// next non-blank character
				j := i
				for j < len(body) && (body[j] == ' ' || body[j] == '\t') {
					j++
				}
				if j < len(body) && (body[j] == '\n' || body[j] == '\r') {
					for j < len(body) && (body[j] == ' ' || body[j] == '\t' || body[j] == '\n' || body[j] == '\r') {
						j++
					}
					i = j
					continue
				}
			}
			return "", fmt.Errorf("bad escape \\%c", body[i])
		}
	}
	return sb.String(), nil
}

func unicodeEscape(s string, digits int) (rune, int, error) {
	if len(s) < digits {
		return 0, 0, fmt.Errorf("short unicode escape")
	}
	v, err := strconv.ParseUint(s[:digits], 16, 32)
	if err != nil {
		return 0, 0, fmt.Errorf("bad unicode escape: %w", err)
	}
	r := rune(v)
	if !utf8.ValidRune(r) {
		return 0, 0, fmt.Errorf("bad unicode escape: invalid rune %#x", v)
	}
	return r, digits, nil
}

// trimLeadingNewline drops the newline immediately after the opening
// delimiter of a multi-line string.
func trimLeadingNewline(s string) string {
	if strings.HasPrefix(s, "\r\n") {
		return s[2:]
	}
	if strings.HasPrefix(s, "\n") {
		return s[1:]
	}
	return s
}
