package entry

import (
	"encoding/json"
	"strings"
	"testing"

	"tableflip.dev/mood/pkg/timeutil"
)

func TestNewAppliesDefaults(t *testing.T) {
	e := New("a", timeutil.MustDay("2024-01-01"), Patch{}.WithNote("hello"))
	if e.Rating != DefaultRating {
		t.Fatalf("expected default rating %v, got %v", DefaultRating, e.Rating)
	}
	if e.Note != "hello" {
		t.Fatalf("unexpected note %q", e.Note)
	}
	if e.Energy != nil || e.Stress != nil || e.Emotions != nil || e.Activities != nil {
		t.Fatalf("expected absent optionals, got %+v", e)
	}
}

func TestPatchApplyOnlyPresentFields(t *testing.T) {
	e := New("a", timeutil.MustDay("2024-01-01"), Patch{
		Rating:   ratingPtr(Happy),
		Note:     String("first"),
		Energy:   Int(70),
		Emotions: []string{"Tenang"},
	})
	Patch{Stress: Int(20)}.ApplyTo(&e)

	if e.Rating != Happy || e.Note != "first" || *e.Energy != 70 || *e.Stress != 20 {
		t.Fatalf("unexpected entry after patch: %+v", e)
	}
	if len(e.Emotions) != 1 || e.Emotions[0] != "Tenang" {
		t.Fatalf("emotions should be untouched, got %v", e.Emotions)
	}

	Patch{Emotions: []string{}}.ApplyTo(&e)
	if e.Emotions == nil || len(e.Emotions) != 0 {
		t.Fatalf("empty slice should clear emotions, got %v", e.Emotions)
	}
}

func TestPatchValidate(t *testing.T) {
	if err := (Patch{}).Validate(); err != ErrEmptyPatch {
		t.Fatalf("expected ErrEmptyPatch, got %v", err)
	}
	bad := []Patch{
		{Rating: ratingPtr(0)},
		{Rating: ratingPtr(6)},
		{Energy: Int(-1)},
		{Stress: Int(101)},
	}
	for _, p := range bad {
		if err := p.Validate(); err == nil {
			t.Fatalf("expected error for %+v", p)
		}
	}
	if err := (Patch{Energy: Int(0), Stress: Int(100)}).Validate(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestCloneIsDeep(t *testing.T) {
	e := Entry{ID: "a", Energy: Int(10), Activities: []string{"Musik"}}
	c := e.Clone()
	*c.Energy = 99
	c.Activities[0] = "Kerja"
	if *e.Energy != 10 || e.Activities[0] != "Musik" {
		t.Fatalf("clone shares state with original: %+v", e)
	}
}

func TestEntryJSONOmitsAbsentOptionals(t *testing.T) {
	e := Entry{ID: "a", Date: "2024-01-01", Rating: Sad}
	b, err := json.Marshal(e)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	s := string(b)
	for _, field := range []string{"energy", "stress", "emotions", "activities"} {
		if strings.Contains(s, field) {
			t.Fatalf("expected %s omitted in %s", field, s)
		}
	}
	if !strings.Contains(s, `"note":""`) {
		t.Fatalf("note should always serialize, got %s", s)
	}
}

func TestHasNote(t *testing.T) {
	if (Entry{Note: " \n\t"}).HasNote() {
		t.Fatal("whitespace note should not count")
	}
	if !(Entry{Note: " x "}).HasNote() {
		t.Fatal("expected note")
	}
}

func ratingPtr(r Rating) *Rating { return &r }
