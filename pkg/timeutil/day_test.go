package timeutil

import (
	"encoding/json"
	"testing"
	"time"
)

func TestParseDay(t *testing.T) {
	if _, err := ParseDay("2024-02-29"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	for _, bad := range []string{"", "2024-1-02", "2023-02-29", "02/01/2024", "2024-01-02T00:00:00Z"} {
		if _, err := ParseDay(bad); err == nil {
			t.Fatalf("expected error for %q", bad)
		}
	}
}

func TestDayArithmetic(t *testing.T) {
	d := MustDay("2024-02-28")
	if got := d.Next(); got != "2024-02-29" {
		t.Fatalf("next: got %s", got)
	}
	if got := d.AddDays(2); got != "2024-03-01" {
		t.Fatalf("add 2: got %s", got)
	}
	if got := MustDay("2024-01-01").Prev(); got != "2023-12-31" {
		t.Fatalf("prev: got %s", got)
	}
	if got := MustDay("2024-03-31").AddDays(-31); got != "2024-02-29" {
		t.Fatalf("add -31: got %s", got)
	}
}

func TestDayMonday(t *testing.T) {
	tests := map[Day]Day{
		"2024-01-01": "2024-01-01", // Monday
		"2024-01-07": "2024-01-01", // Sunday
		"2024-01-03": "2024-01-01",
		"2024-03-02": "2024-02-26",
	}
	for in, want := range tests {
		if got := in.Monday(); got != want {
			t.Fatalf("%s: expected %s, got %s", in, want, got)
		}
	}
}

func TestDaysInAndStartDay(t *testing.T) {
	if got := DaysIn(2024, time.February); got != 29 {
		t.Fatalf("expected 29, got %d", got)
	}
	if got := DaysIn(2023, time.February); got != 28 {
		t.Fatalf("expected 28, got %d", got)
	}
	if got := StartDay(2024, time.September); got != time.Sunday {
		t.Fatalf("expected Sunday, got %s", got)
	}
}

func TestDayHuman(t *testing.T) {
	if got := MustDay("2026-10-15").Human(); got != "Thursday, 15 October 2026" {
		t.Fatalf("unexpected human form %q", got)
	}
}

func TestDayHumanIn(t *testing.T) {
	tests := map[string]struct {
		day    Day
		locale string
		want   string
	}{
		"indonesian":     {day: "2026-10-15", locale: "id", want: "Kamis, 15 Oktober 2026"},
		"indonesian sun": {day: "2024-03-03", locale: "id", want: "Minggu, 3 Maret 2024"},
		"english":        {day: "2026-10-15", locale: "en", want: "Thursday, 15 October 2026"},
		"unknown locale": {day: "2024-01-01", locale: "", want: "Monday, 1 January 2024"},
	}
	for n, tc := range tests {
		t.Run(n, func(t *testing.T) {
			if got := tc.day.HumanIn(tc.locale); got != tc.want {
				t.Fatalf("got %q, want %q", got, tc.want)
			}
		})
	}
}

func TestDayJSON(t *testing.T) {
	var d Day
	if err := json.Unmarshal([]byte(`"2024-05-06"`), &d); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if d != "2024-05-06" {
		t.Fatalf("unexpected day %s", d)
	}
	if err := json.Unmarshal([]byte(`"yesterday"`), &d); err == nil {
		t.Fatal("expected error for malformed day")
	}
}
