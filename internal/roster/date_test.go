package roster

import (
	"testing"
	"time"
)

func TestNewDateAcceptsRealDates(t *testing.T) {
	cases := []struct {
		year  int
		month time.Month
		day   int
	}{
		{2020, time.January, 15},
		{2021, time.June, 1},
		{2024, time.February, 29},
		{1999, time.December, 31},
	}
	for _, tc := range cases {
		if _, err := NewDate(tc.year, tc.month, tc.day); err != nil {
			t.Fatalf("NewDate(%d, %s, %d): %v", tc.year, tc.month, tc.day, err)
		}
	}
}

func TestNewDateRejectsImpossibleDates(t *testing.T) {
	cases := []struct {
		name  string
		year  int
		month time.Month
		day   int
	}{
		{"month thirteen", 2020, time.Month(13), 1},
		{"month zero", 2020, time.Month(0), 1},
		{"day zero", 2020, time.March, 0},
		{"day thirty-two", 2020, time.January, 32},
		{"april thirty-one", 2020, time.April, 31},
		{"non-leap february 29", 2023, time.February, 29},
		{"year zero", 0, time.January, 1},
	}
	for _, tc := range cases {
		if _, err := NewDate(tc.year, tc.month, tc.day); err == nil {
			t.Fatalf("%s: expected error for %d/%d/%d", tc.name, tc.month, tc.day, tc.year)
		}
	}
}

func TestParseDateRoundTrip(t *testing.T) {
	date, err := ParseDate("01/15/2020")
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if date.Year() != 2020 || date.Month() != time.January || date.Day() != 15 {
		t.Fatalf("unexpected components: %v", date)
	}
	if got := date.String(); got != "01/15/2020" {
		t.Fatalf("String() = %q, want 01/15/2020", got)
	}
}

func TestParseDateRejectsMalformedInput(t *testing.T) {
	for _, input := range []string{
		"",
		"2020-01-15",
		"1/15",
		"01/15/2020/4",
		"aa/bb/cccc",
		"02/30/2021",
	} {
		if _, err := ParseDate(input); err == nil {
			t.Fatalf("ParseDate(%q): expected error", input)
		}
	}
}

func TestParseDateTrimsWhitespace(t *testing.T) {
	date, err := ParseDate("  06/01/2021 ")
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if got := date.String(); got != "06/01/2021" {
		t.Fatalf("String() = %q, want 06/01/2021", got)
	}
}

func TestDateOrderingAndZero(t *testing.T) {
	earlier, err := NewDate(2020, time.January, 15)
	if err != nil {
		t.Fatalf("earlier: %v", err)
	}
	later, err := NewDate(2021, time.June, 1)
	if err != nil {
		t.Fatalf("later: %v", err)
	}
	if !earlier.Before(later) {
		t.Fatalf("expected %v before %v", earlier, later)
	}
	if later.Before(earlier) {
		t.Fatalf("did not expect %v before %v", later, earlier)
	}
	if earlier.Before(earlier) {
		t.Fatalf("a date must not sort before itself")
	}
	var zero Date
	if !zero.IsZero() {
		t.Fatalf("zero value must report IsZero")
	}
	if earlier.IsZero() {
		t.Fatalf("set date must not report IsZero")
	}
	if Today().IsZero() {
		t.Fatalf("Today() must produce a set date")
	}
}
