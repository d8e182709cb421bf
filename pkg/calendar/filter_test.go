package calendar

import (
	"testing"

	"tableflip.dev/mood/pkg/entry"
	"tableflip.dev/mood/pkg/timeutil"
)

func note(date, text string, r entry.Rating) entry.Entry {
	return entry.Entry{ID: date, Date: timeutil.MustDay(date), Rating: r, Note: text}
}

func TestParseRange(t *testing.T) {
	tests := map[string]Range{"7": Last7, "7d": Last7, "1w": Last7, "30d": Last30, "all": AllTime, "": Last30}
	for in, want := range tests {
		got, err := ParseRange(in)
		if err != nil {
			t.Fatalf("%q: unexpected error %v", in, err)
		}
		if got != want {
			t.Fatalf("%q: expected %v, got %v", in, want, got)
		}
	}
	if _, err := ParseRange("14d"); err == nil {
		t.Fatal("expected error for unsupported range")
	}
}

func TestFilterExcludesEmptyNotes(t *testing.T) {
	entries := []entry.Entry{
		note("2024-01-01", "", entry.Calm),
		note("2024-01-02", "   ", entry.Calm),
		note("2024-01-03", "walked", entry.Calm),
	}
	got := Filter{Range: AllTime}.Apply(entries, "2024-01-10")
	if len(got) != 1 || got[0].Note != "walked" {
		t.Fatalf("expected only the entry with a note, got %+v", got)
	}
}

func TestFilterCombined(t *testing.T) {
	today := timeutil.MustDay("2024-02-10")
	entries := []entry.Entry{
		note("2024-02-10", "Coffee with Sari", entry.Happy),
		note("2024-02-03", "coffee alone", entry.Sad),        // exactly 7 days back
		note("2024-02-02", "coffee again", entry.Happy),      // outside 7 days
		note("2024-01-05", "COFFEE in January", entry.Happy), // outside 30 days
		note("2024-02-09", "tea", entry.Happy),
	}

	got := Filter{Range: Last7, Search: "coffee"}.Apply(entries, today)
	if len(got) != 2 || got[0].Date != "2024-02-10" || got[1].Date != "2024-02-03" {
		t.Fatalf("unexpected 7 day result %+v", got)
	}

	got = Filter{Range: Last30, Search: "Coffee", Rating: entry.Happy}.Apply(entries, today)
	if len(got) != 2 || got[0].Date != "2024-02-10" || got[1].Date != "2024-02-02" {
		t.Fatalf("unexpected 30 day happy result %+v", got)
	}

	got = Filter{Range: AllTime, Search: "coffee"}.Apply(entries, today)
	if len(got) != 4 {
		t.Fatalf("expected 4 all-time matches, got %d", len(got))
	}
	for i := 1; i < len(got); i++ {
		if got[i-1].Date < got[i].Date {
			t.Fatalf("result not sorted newest first: %+v", got)
		}
	}
}
