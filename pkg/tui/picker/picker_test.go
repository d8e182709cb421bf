package picker

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea/v2"

	"tableflip.dev/mood/pkg/entry"
)

func press(t *testing.T, m Model, msgs ...tea.Msg) (Model, tea.Cmd) {
	t.Helper()
	var cmd tea.Cmd
	for _, msg := range msgs {
		var next tea.Model
		next, cmd = m.Update(msg)
		var ok bool
		m, ok = next.(Model)
		if !ok {
			t.Fatalf("unexpected model type %T", next)
		}
	}
	return m, cmd
}

func TestDefaultsToCalm(t *testing.T) {
	m := New(0, false, "")
	if m.Selected() != entry.DefaultRating {
		t.Fatalf("expected default rating, got %v", m.Selected())
	}
	if _, ok := m.Result(); ok {
		t.Fatal("result should not be ready before a choice")
	}
}

func TestNavigateAndSelect(t *testing.T) {
	m := New(entry.Sad, false, "")
	m, _ = press(t, m,
		tea.KeyPressMsg{Code: tea.KeyRight},
		tea.KeyPressMsg{Code: tea.KeyRight},
		tea.KeyPressMsg{Code: tea.KeyRight},
		tea.KeyPressMsg{Code: tea.KeyRight},
	)
	if m.Selected() != entry.Happy {
		t.Fatalf("cursor should stop at the last rating, got %v", m.Selected())
	}
	m, _ = press(t, m, tea.KeyPressMsg{Text: "1", Code: '1'})
	if m.Selected() != entry.Angry {
		t.Fatalf("expected number key to jump to angry, got %v", m.Selected())
	}
	m, cmd := press(t, m, tea.KeyPressMsg{Code: tea.KeyEnter})
	if cmd == nil {
		t.Fatal("expected quit command")
	}
	c, ok := m.Result()
	if !ok || c.Rating != entry.Angry || c.HasNote {
		t.Fatalf("unexpected choice %+v ok=%v", c, ok)
	}
	if m.View() != "" {
		t.Fatal("finished picker should render nothing")
	}
}

func TestNoteStage(t *testing.T) {
	m := New(entry.Happy, true, "")
	m, _ = press(t, m, tea.KeyPressMsg{Code: tea.KeyEnter})
	if m.stage != stageNote {
		t.Fatal("expected note stage after choosing a rating")
	}
	m.note.SetValue("  picnic in the park ")
	m, _ = press(t, m, tea.KeyPressMsg{Code: tea.KeyEnter})
	c, ok := m.Result()
	if !ok || c.Rating != entry.Happy || !c.HasNote || c.Note != "picnic in the park" {
		t.Fatalf("unexpected choice %+v ok=%v", c, ok)
	}
}

func TestEscapeFromNoteReturnsToRating(t *testing.T) {
	m := New(entry.Calm, true, "draft")
	m, _ = press(t, m, tea.KeyPressMsg{Code: tea.KeyEnter}, tea.KeyPressMsg{Code: tea.KeyEscape})
	if m.stage != stageRating {
		t.Fatal("expected to return to rating stage")
	}
	m, _ = press(t, m, tea.KeyPressMsg{Code: tea.KeyEscape})
	if _, ok := m.Result(); ok {
		t.Fatal("cancelled picker should have no result")
	}
}
