package utils

import "testing"

func TestDatesBetweenHalfOpen(t *testing.T) {
	from, _ := ParseDate("2026-03-01")
	to, _ := ParseDate("2026-03-04")

	dates := DatesBetween(from, to)
	if len(dates) != 3 {
		t.Fatalf("expected 3 dates, got %d", len(dates))
	}
	if FormatDate(dates[0]) != "2026-03-01" || FormatDate(dates[2]) != "2026-03-03" {
		t.Fatalf("checkout date must be excluded, got %v", dates)
	}
}

func TestDatesBetweenEmptyWindow(t *testing.T) {
	day, _ := ParseDate("2026-03-01")
	if dates := DatesBetween(day, day); len(dates) != 0 {
		t.Fatalf("expected no dates for empty window, got %d", len(dates))
	}
}

func TestNights(t *testing.T) {
	in, _ := ParseDate("2026-03-01")
	out, _ := ParseDate("2026-03-04")
	if n := Nights(in, out); n != 3 {
		t.Fatalf("expected 3 nights, got %d", n)
	}
}

func TestFormatKRW(t *testing.T) {
	cases := map[int64]string{
		0:        "0",
		999:      "999",
		1000:     "1,000",
		120000:   "120,000",
		1234567:  "1,234,567",
		-1234567: "-1,234,567",
	}
	for amount, want := range cases {
		if got := FormatKRW(amount); got != want {
			t.Errorf("FormatKRW(%d) = %q, want %q", amount, got, want)
		}
	}
}
