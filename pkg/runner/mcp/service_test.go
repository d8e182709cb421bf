package mcp

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"testing"
	"time"

	"tableflip.dev/mood/pkg/app"
	"tableflip.dev/mood/pkg/entry"
	"tableflip.dev/mood/pkg/identity/local"
	"tableflip.dev/mood/pkg/store"
	"tableflip.dev/mood/pkg/timeutil"
)

func newTestService(t *testing.T, today string) *Service {
	t.Helper()
	kv := store.NewMemory(nil)
	a := app.New(kv, local.New(kv), "en")
	now := timeutil.MustDay(today).Time()
	a.Now = func() time.Time { return now }
	return NewService(a)
}

func intp(v int) *int { return &v }

func strp(v string) *string { return &v }

func TestServiceLogMoodDefaultsToToday(t *testing.T) {
	ctx := context.Background()
	svc := newTestService(t, "2024-06-12")

	dto, err := svc.LogMood(ctx, "", PatchOptions{Rating: intp(5), Note: strp("sunny")})
	if err != nil {
		t.Fatalf("LogMood failed: %v", err)
	}
	if dto.Date != "2024-06-12" || dto.Mood != "Happy" || dto.ID == "" {
		t.Fatalf("unexpected entry %+v", dto)
	}

	again, err := svc.LogMood(ctx, "today", PatchOptions{Rating: intp(2)})
	if err != nil {
		t.Fatalf("LogMood failed: %v", err)
	}
	if again.ID != dto.ID || again.Note != "sunny" || !again.Negative {
		t.Fatalf("expected merge into the same entry, got %+v", again)
	}
}

func TestServiceLogMoodValidates(t *testing.T) {
	ctx := context.Background()
	svc := newTestService(t, "2024-06-12")

	if _, err := svc.LogMood(ctx, "", PatchOptions{Rating: intp(7)}); err == nil {
		t.Fatal("expected rating validation error")
	}
	if _, err := svc.LogMood(ctx, "12/06/2024", PatchOptions{Rating: intp(3)}); err == nil {
		t.Fatal("expected date validation error")
	}
	if _, err := svc.LogMood(ctx, "", PatchOptions{Stress: intp(101), Rating: intp(3)}); err == nil {
		t.Fatal("expected stress validation error")
	}
}

func TestServiceUpdateClearDelete(t *testing.T) {
	ctx := context.Background()
	svc := newTestService(t, "2024-06-12")
	dto, _ := svc.LogMood(ctx, "yesterday", PatchOptions{Rating: intp(4), Note: strp("tired")})
	if dto.Date != "2024-06-11" {
		t.Fatalf("expected yesterday, got %s", dto.Date)
	}

	updated, err := svc.UpdateEntry(ctx, dto.ID, PatchOptions{Activities: []string{"run", "read"}})
	if err != nil {
		t.Fatalf("UpdateEntry failed: %v", err)
	}
	if len(updated.Activities) != 2 || updated.Note != "tired" {
		t.Fatalf("unexpected update %+v", updated)
	}
	if _, err := svc.UpdateEntry(ctx, "missing", PatchOptions{Rating: intp(1)}); !errors.Is(err, ErrEntryNotFound) {
		t.Fatalf("expected not found, got %v", err)
	}
	if _, err := svc.UpdateEntry(ctx, dto.ID, PatchOptions{}); err == nil {
		t.Fatal("expected error for empty update")
	}

	cleared, err := svc.ClearNote(ctx, dto.ID)
	if err != nil || cleared.Note != "" {
		t.Fatalf("ClearNote: %+v %v", cleared, err)
	}
	if _, err := svc.EntryByDate(ctx, "2024-06-11"); err != nil {
		t.Fatalf("entry should survive clearing the note: %v", err)
	}

	if err := svc.DeleteEntry(ctx, dto.ID); err != nil {
		t.Fatalf("DeleteEntry failed: %v", err)
	}
	if err := svc.DeleteEntry(ctx, dto.ID); !errors.Is(err, ErrEntryNotFound) {
		t.Fatalf("expected not found on second delete, got %v", err)
	}
	if _, err := svc.EntryByDate(ctx, "2024-06-11"); !errors.Is(err, ErrEntryNotFound) {
		t.Fatalf("expected not found after delete, got %v", err)
	}
}

func TestServiceListAndSearch(t *testing.T) {
	ctx := context.Background()
	svc := newTestService(t, "2024-06-12")
	for i, d := range []string{"2024-06-01", "2024-06-05", "2024-06-10", "2024-06-12"} {
		note := ""
		if i%2 == 0 {
			note = "gym session"
		}
		if _, err := svc.LogMood(ctx, d, PatchOptions{Rating: intp(i + 1), Note: strp(note)}); err != nil {
			t.Fatalf("LogMood: %v", err)
		}
	}

	list, err := svc.ListEntries(ctx, "2024-06-02", "2024-06-11", 0)
	if err != nil {
		t.Fatalf("ListEntries: %v", err)
	}
	if len(list) != 2 || list[0].Date != "2024-06-10" {
		t.Fatalf("unexpected list %+v", list)
	}
	if limited, _ := svc.ListEntries(ctx, "", "", 1); len(limited) != 1 || limited[0].Date != "2024-06-12" {
		t.Fatalf("unexpected limited list %+v", limited)
	}

	found, err := svc.SearchJournal(ctx, "7d", "GYM", 0)
	if err != nil {
		t.Fatalf("SearchJournal: %v", err)
	}
	if len(found) != 1 || found[0].Date != "2024-06-10" {
		t.Fatalf("unexpected search results %+v", found)
	}
	if found, _ := svc.SearchJournal(ctx, "all", "gym", 1); len(found) != 1 || found[0].Date != "2024-06-01" {
		t.Fatalf("unexpected rating filtered results %+v", found)
	}
	if _, err := svc.SearchJournal(ctx, "14d", "", 0); err == nil {
		t.Fatal("expected unsupported range error")
	}
}

func TestServiceStatsWeekMonth(t *testing.T) {
	ctx := context.Background()
	svc := newTestService(t, "2024-06-12") // Wednesday
	svc.LogMood(ctx, "2024-06-10", PatchOptions{Rating: intp(5)})
	svc.LogMood(ctx, "2024-06-11", PatchOptions{Rating: intp(5)})
	svc.LogMood(ctx, "2024-06-12", PatchOptions{Rating: intp(2)})

	st, err := svc.Stats(ctx)
	if err != nil {
		t.Fatalf("Stats: %v", err)
	}
	if st.Total != 3 || st.CurrentStreak != 3 || st.Dominant != "Happy" || len(st.Distribution) != 5 {
		t.Fatalf("unexpected stats %+v", st)
	}
	if st.Companion == nil || st.Companion.Mood != "Sad" {
		t.Fatalf("expected companion to mirror today, got %+v", st.Companion)
	}

	wk, err := svc.Week(ctx)
	if err != nil {
		t.Fatalf("Week: %v", err)
	}
	if wk.Start != "2024-06-10" || len(wk.Days) != 7 || wk.Filled != 3 || !wk.Days[2].IsToday {
		t.Fatalf("unexpected week %+v", wk)
	}

	month, err := svc.Month(ctx, "")
	if err != nil {
		t.Fatalf("Month: %v", err)
	}
	if month.Month != "2024-06" || len(month.Cells) != 42 || month.Filled != 3 {
		t.Fatalf("unexpected month %+v", month)
	}
	if _, err := svc.Month(ctx, "June"); err == nil {
		t.Fatal("expected invalid month error")
	}
}

func TestServerListsTools(t *testing.T) {
	svc := newTestService(t, "2024-06-12")
	srv := NewServer(svc.App, "mood", "test")

	resp := srv.HandleMessage(context.Background(), json.RawMessage(`{"jsonrpc":"2.0","id":1,"method":"tools/list"}`))
	b, err := json.Marshal(resp)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	for _, name := range []string{"log_mood", "update_entry", "delete_entry", "clear_note", "list_entries", "search_journal", "get_stats", "get_week", "get_month"} {
		if !strings.Contains(string(b), `"`+name+`"`) {
			t.Fatalf("tool %s not registered: %s", name, b)
		}
	}
}

func TestPatchOptions(t *testing.T) {
	p, err := PatchOptions{Rating: intp(3), Emotions: []string{}}.Patch()
	if err != nil {
		t.Fatalf("Patch: %v", err)
	}
	if p.Rating == nil || *p.Rating != entry.Afraid || p.Emotions == nil {
		t.Fatalf("unexpected patch %+v", p)
	}
}
