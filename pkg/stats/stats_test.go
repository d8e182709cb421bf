package stats

import (
	"testing"

	"tableflip.dev/mood/pkg/entry"
	"tableflip.dev/mood/pkg/timeutil"
)

func on(date string, r entry.Rating) entry.Entry {
	return entry.Entry{ID: date, Date: timeutil.MustDay(date), Rating: r}
}

func TestCurrentStreak(t *testing.T) {
	today := timeutil.MustDay("2024-03-10")
	entries := []entry.Entry{
		on("2024-03-10", entry.Calm),
		on("2024-03-09", entry.Sad),
		on("2024-03-08", entry.Happy),
		on("2024-03-06", entry.Happy),
	}
	if got := CurrentStreak(entries, today); got != 3 {
		t.Fatalf("expected 3, got %d", got)
	}
	if got := CurrentStreak(entries[1:], today); got != 0 {
		t.Fatalf("no entry today must give 0, got %d", got)
	}
	if got := CurrentStreak(nil, today); got != 0 {
		t.Fatalf("empty must give 0, got %d", got)
	}
}

func TestCurrentStreakAcrossMonthBoundary(t *testing.T) {
	entries := []entry.Entry{on("2024-03-01", entry.Calm), on("2024-02-29", entry.Calm), on("2024-02-28", entry.Calm)}
	if got := CurrentStreak(entries, timeutil.MustDay("2024-03-01")); got != 3 {
		t.Fatalf("expected 3, got %d", got)
	}
}

func TestBestStreakFragmented(t *testing.T) {
	entries := []entry.Entry{
		on("2024-01-10", entry.Calm),
		on("2024-01-02", entry.Calm),
		on("2024-01-01", entry.Calm),
		on("2024-01-03", entry.Calm),
	}
	if got := BestStreak(entries); got != 3 {
		t.Fatalf("expected 3, got %d", got)
	}
	if got := BestStreak(nil); got != 0 {
		t.Fatalf("expected 0 for empty, got %d", got)
	}
	if got := BestStreak(entries[:1]); got != 1 {
		t.Fatalf("expected 1 for a single entry, got %d", got)
	}
}

func TestBestStreakAcrossYear(t *testing.T) {
	entries := []entry.Entry{on("2023-12-30", entry.Calm), on("2023-12-31", entry.Calm), on("2024-01-01", entry.Calm)}
	if got := BestStreak(entries); got != 3 {
		t.Fatalf("expected 3, got %d", got)
	}
}

func TestMonthFill(t *testing.T) {
	entries := []entry.Entry{
		on("2024-02-01", entry.Calm),
		on("2024-02-15", entry.Calm),
		on("2024-01-31", entry.Calm),
		on("2023-02-10", entry.Calm),
	}
	f := MonthFill(entries, timeutil.MustDay("2024-02-20"))
	if f.Filled != 2 || f.Days != 29 {
		t.Fatalf("expected 2/29, got %d/%d", f.Filled, f.Days)
	}
	if r := f.Rate(); r <= 0 || r >= 1 {
		t.Fatalf("unexpected rate %f", r)
	}
	if (Fill{}).Rate() != 0 {
		t.Fatal("zero fill should have zero rate")
	}
}

func TestDistribution(t *testing.T) {
	entries := []entry.Entry{
		on("2024-01-01", entry.Happy),
		on("2024-01-02", entry.Happy),
		on("2024-01-03", entry.Sad),
	}
	d := NewDistribution(entries)
	if d.Total != 3 {
		t.Fatalf("expected total 3, got %d", d.Total)
	}
	if b := d.Get(entry.Happy); b.Count != 2 || b.Percent != 67 {
		t.Fatalf("unexpected happy bucket %+v", b)
	}
	if b := d.Get(entry.Sad); b.Count != 1 || b.Percent != 33 {
		t.Fatalf("unexpected sad bucket %+v", b)
	}
	for _, b := range d.Buckets {
		if b.Percent < 0 || b.Percent > 100 {
			t.Fatalf("percent out of range: %+v", b)
		}
	}
}

func TestDistributionEmpty(t *testing.T) {
	d := NewDistribution(nil)
	for _, b := range d.Buckets {
		if b.Count != 0 || b.Percent != 0 {
			t.Fatalf("expected zero bucket, got %+v", b)
		}
	}
}

func TestDominantTieBreaksLow(t *testing.T) {
	entries := []entry.Entry{
		on("2024-01-01", entry.Happy),
		on("2024-01-02", entry.Sad),
		on("2024-01-03", entry.Happy),
		on("2024-01-04", entry.Sad),
	}
	r, ok := Dominant(entries)
	if !ok || r != entry.Sad {
		t.Fatalf("expected Sad on tie, got %v %v", r, ok)
	}
	if _, ok := Dominant(nil); ok {
		t.Fatal("empty collection has no dominant rating")
	}
}

func TestWeek(t *testing.T) {
	today := timeutil.MustDay("2024-01-04") // Thursday
	entries := []entry.Entry{
		on("2024-01-01", entry.Happy),
		on("2024-01-03", entry.Calm),
		on("2024-01-07", entry.Sad),
		on("2023-12-31", entry.Angry), // previous week
	}
	w := Week(entries, today)
	if w.Start != "2024-01-01" {
		t.Fatalf("expected Monday start, got %s", w.Start)
	}
	if w.Days[6].Date != "2024-01-07" {
		t.Fatalf("expected Sunday end, got %s", w.Days[6].Date)
	}
	if w.Filled != 3 {
		t.Fatalf("expected 3 filled days, got %d", w.Filled)
	}
	if w.Days[1].Entry != nil || w.Days[0].Entry == nil {
		t.Fatalf("unexpected projection %+v", w.Days)
	}
	// (5 + 4 + 2) / 3 = 3.67
	if !w.HasAverage || w.Average != entry.Calm {
		t.Fatalf("expected average Calm, got %v %v", w.Average, w.HasAverage)
	}
}

func TestWeekEmpty(t *testing.T) {
	w := Week([]entry.Entry{on("2020-01-01", entry.Happy)}, timeutil.MustDay("2024-01-04"))
	if w.HasAverage || w.Filled != 0 {
		t.Fatalf("expected no average, got %+v", w)
	}
}
