package datetime

import (
	"testing"
	"time"
)

func TestParseLocalDate(t *testing.T) {
	d, err := ParseLocalDate("1979-05-27")
	if err != nil {
		t.Fatal(err)
	}
	if d.Year != 1979 || d.Month != time.May || d.Day != 27 {
		t.Errorf("got %+v", d)
	}
	if d.String() != "1979-05-27" {
		t.Errorf("String() = %q", d.String())
	}
	for _, bad := range []string{"1979-13-27", "1979-02-30", "79-05-27", ""} {
		if _, err := ParseLocalDate(bad); err == nil {
			t.Errorf("ParseLocalDate(%q) should fail", bad)
		}
	}
}

func TestParseLocalTime(t *testing.T) {
	tests := []struct {
		in   string
		want LocalTime
	}{
		{"07:32:00", LocalTime{Hour: 7, Minute: 32}},
		{"23:59:59", LocalTime{Hour: 23, Minute: 59, Second: 59}},
		{"00:00:00.999999", LocalTime{Nanosecond: 999999000}},
	}
	for _, tc := range tests {
		got, err := ParseLocalTime(tc.in)
		if err != nil || got != tc.want {
			t.Errorf("ParseLocalTime(%q) = %+v, %v; want %+v", tc.in, got, err, tc.want)
		}
	}
	for _, bad := range []string{"24:00:00", "07:60:00", "07:32"} {
		if _, err := ParseLocalTime(bad); err == nil {
			t.Errorf("ParseLocalTime(%q) should fail", bad)
		}
	}
}

func TestParseLocalDateTime(t *testing.T) {
	for _, in := range []string{
		"1979-05-27T07:32:00",
		"1979-05-27t07:32:00",
		"1979-05-27 07:32:00",
	} {
		dt, err := ParseLocalDateTime(in)
		if err != nil {
			t.Fatalf("ParseLocalDateTime(%q): %v", in, err)
		}
		if dt.Date.Day != 27 || dt.Time.Hour != 7 {
			t.Errorf("ParseLocalDateTime(%q) = %+v", in, dt)
		}
		if dt.String() != "1979-05-27T07:32:00" {
			t.Errorf("String() = %q", dt.String())
		}
	}
}

func TestParseOffsetDateTime(t *testing.T) {
	tests := []struct {
		in     string
		offset int // seconds east of UTC
	}{
		{"1979-05-27T07:32:00Z", 0},
		{"1979-05-27T07:32:00z", 0},
		{"1979-05-27 07:32:00Z", 0},
		{"1979-05-27T00:32:00-07:00", -7 * 3600},
		{"1979-05-27T00:32:00.999999+02:00", 2 * 3600},
	}
	for _, tc := range tests {
		dt, err := ParseOffsetDateTime(tc.in)
		if err != nil {
			t.Fatalf("ParseOffsetDateTime(%q): %v", tc.in, err)
		}
		if _, off := dt.Time.Zone(); off != tc.offset {
			t.Errorf("ParseOffsetDateTime(%q) offset = %d, want %d", tc.in, off, tc.offset)
		}
	}
	if _, err := ParseOffsetDateTime("1979-05-27T07:32:00"); err == nil {
		t.Errorf("missing offset should fail")
	}
}

func TestLocalTimeString(t *testing.T) {
	lt := LocalTime{Hour: 7, Minute: 32, Second: 1, Nanosecond: 500000000}
	if got := lt.String(); got != "07:32:01.5" {
		t.Errorf("String() = %q", got)
	}
	lt = LocalTime{Hour: 7, Minute: 32}
	if got := lt.String(); got != "07:32:00" {
		t.Errorf("String() = %q", got)
	}
}
