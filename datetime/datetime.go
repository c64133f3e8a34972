// Package datetime models the four TOML date-time families. Each type
// keeps only the fields its family carries, so a local date never
// grows a phantom time zone on the way through a conversion.
package datetime

import (
	"errors"
	"strings"
	"time"
)

var ErrInvalid = errors.New("datetime: invalid literal")

// LocalDate is a calendar date with no time and no zone.
type LocalDate struct {
	Year  int
	Month time.Month
	Day   int
}

// LocalTime is a wall-clock time with no date and no zone.
type LocalTime struct {
	Hour       int
	Minute     int
	Second     int
	Nanosecond int
}

// LocalDateTime is a date and time with no zone.
type LocalDateTime struct {
	Date LocalDate
	Time LocalTime
}

// OffsetDateTime is a fully zoned instant.
type OffsetDateTime struct {
	Time time.Time
}

const (
	layoutDate = "2006-01-02"
	layoutTime = "15:04:05"
)

// normalize rewrites the forms time.Parse does not accept: the
// space separator and a lowercase zone marker.
func normalize(s string) string {
	if len(s) > 10 && s[10] == ' ' {
		s = s[:10] + "T" + s[11:]
	}
	return strings.Map(func(r rune) rune {
		switch r {
		case 't':
			return 'T'
		case 'z':
			return 'Z'
		}
		return r
	}, s)
}

// ParseLocalDate parses a YYYY-MM-DD literal.
func ParseLocalDate(s string) (LocalDate, error) {
	t, err := time.Parse(layoutDate, s)
	if err != nil {
		return LocalDate{}, ErrInvalid
	}
	y, m, d := t.Date()
	return LocalDate{Year: y, Month: m, Day: d}, nil
}

// ParseLocalTime parses an HH:MM:SS literal with optional fractional
// seconds.
func ParseLocalTime(s string) (LocalTime, error) {
	layout := layoutTime
	if strings.IndexByte(s, '.') >= 0 {
		layout += ".999999999"
	}
	t, err := time.Parse(layout, s)
	if err != nil {
		return LocalTime{}, ErrInvalid
	}
	return LocalTime{
		Hour:       t.Hour(),
		Minute:     t.Minute(),
		Second:     t.Second(),
		Nanosecond: t.Nanosecond(),
	}, nil
}

// ParseLocalDateTime parses a date-time literal without an offset.
// Both the T and space separators are accepted.
func ParseLocalDateTime(s string) (LocalDateTime, error) {
	s = normalize(s)
	if len(s) <= 11 {
		return LocalDateTime{}, ErrInvalid
	}
	d, err := ParseLocalDate(s[:10])
	if err != nil {
		return LocalDateTime{}, err
	}
	t, err := ParseLocalTime(s[11:])
	if err != nil {
		return LocalDateTime{}, err
	}
	return LocalDateTime{Date: d, Time: t}, nil
}

// ParseOffsetDateTime parses a fully zoned RFC 3339 literal. The space
// separator and lowercase markers are accepted as in TOML.
func ParseOffsetDateTime(s string) (OffsetDateTime, error) {
	t, err := time.Parse(time.RFC3339Nano, normalize(s))
	if err != nil {
		return OffsetDateTime{}, ErrInvalid
	}
	return OffsetDateTime{Time: t}, nil
}

func (d LocalDate) String() string {
	return d.asTime().Format(layoutDate)
}

func (d LocalDate) asTime() time.Time {
	return time.Date(d.Year, d.Month, d.Day, 0, 0, 0, 0, time.UTC)
}

func (t LocalTime) String() string {
	base := time.Date(1, 1, 1, t.Hour, t.Minute, t.Second, t.Nanosecond, time.UTC)
	if t.Nanosecond != 0 {
		return base.Format(layoutTime + ".999999999")
	}
	return base.Format(layoutTime)
}

func (dt LocalDateTime) String() string {
	return dt.Date.String() + "T" + dt.Time.String()
}

func (odt OffsetDateTime) String() string {
	return odt.Time.Format(time.RFC3339Nano)
}
