package options

import (
	"testing"

	"tableflip.dev/mood/pkg/timeutil"
)

func TestGetDay(t *testing.T) {
	today := timeutil.MustDay("2024-01-02")
	tests := map[string]struct {
		on   string
		want timeutil.Day
		err  bool
	}{
		"empty":      {on: "", want: "2024-01-02"},
		"today":      {on: "Today", want: "2024-01-02"},
		"yesterday":  {on: "yesterday", want: "2024-01-01"},
		"iso":        {on: "2023-12-25", want: "2023-12-25"},
		"loose iso":  {on: "2020-2-28", want: "2020-02-28"},
		"short":      {on: "1/1", want: "2024-01-01"},
		"short past": {on: "12/30", want: "2023-12-30"},
		"leap day":   {on: "2/29", err: true},
		"bad":        {on: "soon", err: true},
		"bad date":   {on: "2023-02-30", err: true},
	}
	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			o := &OnOptions{OnString: tt.on}
			got, err := o.GetDay(today)
			if tt.err {
				if err == nil {
					t.Fatalf("expected error, got %s", got)
				}
				return
			}
			if err != nil {
				t.Fatal(err)
			}
			if got != tt.want {
				t.Fatalf("got %s, want %s", got, tt.want)
			}
		})
	}
}

func TestGetDayShortLeapDay(t *testing.T) {
	o := &OnOptions{OnString: "2/29"}
	got, err := o.GetDay(timeutil.MustDay("2024-03-10"))
	if err != nil || got != "2024-02-29" {
		t.Fatalf("got %s %v, want 2024-02-29", got, err)
	}
	if got, err := o.GetDay(timeutil.MustDay("2026-03-10")); err == nil {
		t.Fatalf("2026 has no leap day, got %s", got)
	}
}
