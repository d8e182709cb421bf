package store

import (
	"fmt"
	"testing"

	"tableflip.dev/mood/pkg/entry"
	"tableflip.dev/mood/pkg/timeutil"
)

func newTestEntries(kv KV) *Entries {
	s := OpenEntries(kv)
	n := 0
	s.newID = func() string {
		n++
		return fmt.Sprintf("id-%d", n)
	}
	return s
}

func rating(r entry.Rating) *entry.Rating { return &r }

func TestAddOrMergeKeepsOneEntryPerDay(t *testing.T) {
	s := newTestEntries(NewMemory(nil))
	day := timeutil.MustDay("2024-01-01")

	first, err := s.AddOrMerge(day, entry.Patch{
		Rating:   rating(entry.Sad),
		Note:     entry.String("rainy"),
		Energy:   entry.Int(30),
		Emotions: []string{"Sedih"},
	})
	if err != nil {
		t.Fatalf("add: %v", err)
	}
	second, err := s.AddOrMerge(day, entry.Patch{Rating: rating(entry.Happy)})
	if err != nil {
		t.Fatalf("merge: %v", err)
	}

	if s.Snapshot().Len() != 1 {
		t.Fatalf("expected 1 entry, got %d", s.Snapshot().Len())
	}
	if second.ID != first.ID || second.Date != day {
		t.Fatalf("merge must keep id and date: first=%+v second=%+v", first, second)
	}
	if second.Rating != entry.Happy {
		t.Fatalf("rating should be overridden, got %v", second.Rating)
	}
	if second.Note != "rainy" || *second.Energy != 30 || second.Emotions[0] != "Sedih" {
		t.Fatalf("fields absent from the merge must persist, got %+v", second)
	}
}

func TestAddOrMergeManyDays(t *testing.T) {
	s := newTestEntries(NewMemory(nil))
	days := []string{"2024-01-03", "2024-01-01", "2024-01-03", "2024-01-02", "2024-01-01"}
	for i, d := range days {
		r := entry.Ratings()[i%5]
		if _, err := s.AddOrMerge(timeutil.MustDay(d), entry.Patch{Rating: &r}); err != nil {
			t.Fatalf("add %s: %v", d, err)
		}
	}
	got := s.Snapshot().Entries()
	if len(got) != 3 {
		t.Fatalf("expected 3 distinct days, got %d", len(got))
	}
	seen := map[timeutil.Day]bool{}
	for i, e := range got {
		if seen[e.Date] {
			t.Fatalf("duplicate date %s", e.Date)
		}
		seen[e.Date] = true
		if i > 0 && got[i-1].Date >= e.Date {
			t.Fatalf("entries not sorted by date: %v", got)
		}
	}
}

func TestAddOrMergeIdempotent(t *testing.T) {
	s := newTestEntries(NewMemory(nil))
	day := timeutil.MustDay("2024-02-02")
	p := entry.Patch{Rating: rating(entry.Calm), Note: entry.String("same")}

	once, err := s.AddOrMerge(day, p)
	if err != nil {
		t.Fatalf("add: %v", err)
	}
	twice, err := s.AddOrMerge(day, p)
	if err != nil {
		t.Fatalf("add again: %v", err)
	}
	if !once.Equal(twice) {
		t.Fatalf("expected identical entries, got %+v and %+v", once, twice)
	}
	if s.Snapshot().Len() != 1 {
		t.Fatalf("expected 1 entry, got %d", s.Snapshot().Len())
	}
}

func TestUpdateUnknownIDIsNoop(t *testing.T) {
	kv := NewMemory(nil)
	s := newTestEntries(kv)
	calls := 0
	s.Subscribe(func(Snapshot) { calls++ })

	_, ok, err := s.Update("missing", entry.Patch{}.WithNote("x"))
	if err != nil || ok {
		t.Fatalf("expected silent no-op, got ok=%v err=%v", ok, err)
	}
	if _, ok := kv.Get(NamespaceEntries); ok {
		t.Fatal("no-op must not write")
	}
	if calls != 0 {
		t.Fatalf("no-op must not notify, got %d calls", calls)
	}
}

func TestUpdateEmptyPatchIsNoop(t *testing.T) {
	s := newTestEntries(NewMemory(nil))
	e, err := s.AddOrMerge(timeutil.MustDay("2024-02-02"), entry.Patch{}.WithRating(entry.Sad))
	if err != nil {
		t.Fatalf("add: %v", err)
	}
	calls := 0
	s.Subscribe(func(Snapshot) { calls++ })

	got, ok, err := s.Update(e.ID, entry.Patch{})
	if err != nil || ok {
		t.Fatalf("expected no-op, got ok=%v err=%v", ok, err)
	}
	if !got.Equal(e) {
		t.Fatalf("entry changed: %+v", got)
	}
	if calls != 0 {
		t.Fatalf("empty patch must not notify")
	}
}

func TestClearNoteVersusRemove(t *testing.T) {
	s := newTestEntries(NewMemory(nil))
	day := timeutil.MustDay("2024-03-03")
	e, err := s.AddOrMerge(day, entry.Patch{Rating: rating(entry.Afraid), Note: entry.String("storm")})
	if err != nil {
		t.Fatalf("add: %v", err)
	}

	cleared, ok, err := s.ClearNote(e.ID)
	if err != nil || !ok {
		t.Fatalf("clear note: ok=%v err=%v", ok, err)
	}
	if cleared.Note != "" || cleared.Rating != entry.Afraid || cleared.Date != day {
		t.Fatalf("clear note must keep the entry, got %+v", cleared)
	}
	if _, ok := s.Snapshot().Lookup(day); !ok {
		t.Fatal("entry should still be present")
	}

	removed, err := s.Remove(e.ID)
	if err != nil || !removed {
		t.Fatalf("remove: removed=%v err=%v", removed, err)
	}
	if _, ok := s.Snapshot().Lookup(day); ok {
		t.Fatal("entry should be gone")
	}
	if removed, err := s.Remove(e.ID); err != nil || removed {
		t.Fatalf("second remove should be a no-op, got removed=%v err=%v", removed, err)
	}
}

func TestRoundTripPersistence(t *testing.T) {
	kv := NewMemory(nil)
	s := newTestEntries(kv)
	if _, err := s.AddOrMerge(timeutil.MustDay("2024-01-01"), entry.Patch{
		Rating:     rating(entry.Happy),
		Note:       entry.String("park"),
		Energy:     entry.Int(80),
		Stress:     entry.Int(0),
		Emotions:   []string{"Senang", "Tenang"},
		Activities: []string{"Olahraga"},
	}); err != nil {
		t.Fatalf("add: %v", err)
	}
	if _, err := s.AddOrMerge(timeutil.MustDay("2024-01-02"), entry.Patch{}.WithRating(entry.Angry)); err != nil {
		t.Fatalf("add: %v", err)
	}

	reloaded := OpenEntries(kv)
	want := s.Snapshot().Entries()
	got := reloaded.Snapshot().Entries()
	if len(got) != len(want) {
		t.Fatalf("expected %d entries, got %d", len(want), len(got))
	}
	for i := range want {
		if !want[i].Equal(got[i]) {
			t.Fatalf("entry %d differs:\nwant %+v\ngot  %+v", i, want[i], got[i])
		}
	}
	if got[1].Energy != nil || got[1].Emotions != nil {
		t.Fatalf("absent optionals must stay absent, got %+v", got[1])
	}
}

func TestRoundTripEmpty(t *testing.T) {
	data, err := Marshal(nil)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	list, err := Unmarshal(data)
	if err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if len(list) != 0 {
		t.Fatalf("expected empty collection, got %v", list)
	}
}

func TestOpenDegradesToEmpty(t *testing.T) {
	tests := map[string]string{
		"corrupt":  "{not json",
		"empty":    "",
		"bad date": `{"state":{"entries":[{"id":"a","date":"yesterday","rating":3,"note":""}]},"version":0}`,
	}
	for name, raw := range tests {
		s := OpenEntries(NewMemory(map[string]string{NamespaceEntries: raw}))
		if s.Snapshot().Len() != 0 {
			t.Fatalf("%s: expected empty collection, got %d", name, s.Snapshot().Len())
		}
	}
	if OpenEntries(NewMemory(nil)).Snapshot().Len() != 0 {
		t.Fatal("missing payload should give an empty collection")
	}
}

func TestOpenAcceptsBareArrayAndDeduplicates(t *testing.T) {
	raw := `[
		{"id":"a","date":"2024-01-01","rating":2,"note":"old"},
		{"id":"b","date":"2024-01-01","rating":5,"note":"new"},
		{"id":"c","date":"2024-01-02","rating":9,"note":"bad rating"}
	]`
	s := OpenEntries(NewMemory(map[string]string{NamespaceEntries: raw}))
	got := s.Snapshot().Entries()
	if len(got) != 1 {
		t.Fatalf("expected 1 entry, got %d: %+v", len(got), got)
	}
	if got[0].ID != "b" || got[0].Note != "new" {
		t.Fatalf("expected the later duplicate to win, got %+v", got[0])
	}
}

func TestWriteFailureRollsBack(t *testing.T) {
	kv := NewMemory(nil)
	s := newTestEntries(kv)
	if _, err := s.AddOrMerge(timeutil.MustDay("2024-01-01"), entry.Patch{}.WithRating(entry.Calm)); err != nil {
		t.Fatalf("add: %v", err)
	}
	kv.FailWrites = true
	if _, err := s.AddOrMerge(timeutil.MustDay("2024-01-02"), entry.Patch{}.WithRating(entry.Calm)); err == nil {
		t.Fatal("expected write error")
	}
	if s.Snapshot().Len() != 1 {
		t.Fatalf("failed write must not change memory, got %d entries", s.Snapshot().Len())
	}
}

func TestSnapshotIsImmutable(t *testing.T) {
	s := newTestEntries(NewMemory(nil))
	day := timeutil.MustDay("2024-01-01")
	if _, err := s.AddOrMerge(day, entry.Patch{Rating: rating(entry.Calm), Emotions: []string{"Tenang"}}); err != nil {
		t.Fatalf("add: %v", err)
	}
	snap := s.Snapshot()
	list := snap.Entries()
	list[0].Note = "mutated"
	list[0].Emotions[0] = "mutated"

	again, _ := snap.Lookup(day)
	if again.Note != "" || again.Emotions[0] != "Tenang" {
		t.Fatalf("snapshot leaked mutable state: %+v", again)
	}

	if _, err := s.AddOrMerge(day, entry.Patch{}.WithNote("later")); err != nil {
		t.Fatalf("merge: %v", err)
	}
	old, _ := snap.Lookup(day)
	if old.Note != "" {
		t.Fatalf("old snapshot must not observe later mutations, got %q", old.Note)
	}
}

func TestSubscribeAndCancel(t *testing.T) {
	s := newTestEntries(NewMemory(nil))
	var seen []int
	cancel := s.Subscribe(func(snap Snapshot) { seen = append(seen, snap.Len()) })

	if _, err := s.AddOrMerge(timeutil.MustDay("2024-01-01"), entry.Patch{}.WithRating(entry.Calm)); err != nil {
		t.Fatalf("add: %v", err)
	}
	cancel()
	if _, err := s.AddOrMerge(timeutil.MustDay("2024-01-02"), entry.Patch{}.WithRating(entry.Calm)); err != nil {
		t.Fatalf("add: %v", err)
	}
	if len(seen) != 1 || seen[0] != 1 {
		t.Fatalf("expected a single notification with 1 entry, got %v", seen)
	}
}

func TestReloadKeepsEntriesOnUnreadablePayload(t *testing.T) {
	kv := NewMemory(nil)
	s := newTestEntries(kv)
	for _, d := range []string{"2024-01-01", "2024-01-02", "2024-01-03"} {
		if _, err := s.AddOrMerge(timeutil.MustDay(d), entry.Patch{}.WithRating(entry.Calm)); err != nil {
			t.Fatalf("add %s: %v", d, err)
		}
	}
	full, _ := kv.Get(NamespaceEntries)

	// Another process is halfway through writing.
	if err := kv.Set(NamespaceEntries, full[:len(full)/2]); err != nil {
		t.Fatal(err)
	}
	if err := s.Reload(); err == nil {
		t.Fatal("expected an error for a truncated payload")
	}
	if s.Snapshot().Len() != 3 {
		t.Fatalf("reload must keep the loaded entries, got %d", s.Snapshot().Len())
	}

	if err := kv.Set(NamespaceEntries, full); err != nil {
		t.Fatal(err)
	}
	if _, err := s.AddOrMerge(timeutil.MustDay("2024-01-04"), entry.Patch{}.WithRating(entry.Happy)); err != nil {
		t.Fatalf("add: %v", err)
	}
	raw, _ := kv.Get(NamespaceEntries)
	list, err := Unmarshal([]byte(raw))
	if err != nil {
		t.Fatal(err)
	}
	if len(list) != 4 {
		t.Fatalf("expected 4 entries on disk, got %d", len(list))
	}
}

func TestReloadPicksUpExternalChanges(t *testing.T) {
	kv := NewMemory(nil)
	s := newTestEntries(kv)
	other := newTestEntries(kv)
	if _, err := other.AddOrMerge(timeutil.MustDay("2024-02-01"), entry.Patch{}.WithRating(entry.Sad)); err != nil {
		t.Fatal(err)
	}
	if err := s.Reload(); err != nil {
		t.Fatalf("reload: %v", err)
	}
	if _, ok := s.Snapshot().Lookup("2024-02-01"); !ok {
		t.Fatal("expected the external entry after reload")
	}
}

func TestAssignedIDsAreStableAcrossOpens(t *testing.T) {
	kv := NewMemory(map[string]string{
		NamespaceEntries: `[{"date":"2024-01-01","rating":4,"note":"a"}]`,
	})
	first, ok := OpenEntries(kv).Snapshot().Lookup("2024-01-01")
	if !ok || first.ID == "" {
		t.Fatalf("expected an id to be assigned, got %+v", first)
	}
	second, ok := OpenEntries(kv).Snapshot().Lookup("2024-01-01")
	if !ok || second.ID != first.ID {
		t.Fatalf("id changed between opens: %q then %q", first.ID, second.ID)
	}
}
