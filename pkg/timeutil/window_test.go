package timeutil

import "testing"

func TestParseWindowDefault(t *testing.T) {
	days, label, err := ParseWindow("")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if days != 30 {
		t.Fatalf("expected 30 days, got %d", days)
	}
	if label != "30d" {
		t.Fatalf("expected label 30d, got %s", label)
	}
}

func TestParseWindowForms(t *testing.T) {
	tests := []struct {
		in    string
		days  int
		label string
	}{
		{"7", 7, "7d"},
		{"7d", 7, "7d"},
		{"1w", 7, "7d"},
		{"1w2d", 9, "9d"},
		{"30 days", 30, "30d"},
		{"all", 0, Unbounded},
		{"ALL", 0, Unbounded},
	}
	for _, tt := range tests {
		days, label, err := ParseWindow(tt.in)
		if err != nil {
			t.Fatalf("%q: unexpected error: %v", tt.in, err)
		}
		if days != tt.days || label != tt.label {
			t.Fatalf("%q: expected %d/%s, got %d/%s", tt.in, tt.days, tt.label, days, label)
		}
	}
}

func TestParseWindowInvalid(t *testing.T) {
	for _, in := range []string{"noop", "3h", "0d"} {
		if _, _, err := ParseWindow(in); err == nil {
			t.Fatalf("expected error for %q", in)
		}
	}
}
