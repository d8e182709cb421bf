package stats

import (
	"tableflip.dev/mood/pkg/entry"
	"tableflip.dev/mood/pkg/timeutil"
)

// LastWindow is how many days the rolling strip on the profile covers.
const LastWindow = 7

// LastDays returns the n days ending at today, oldest first, each with the
// entry recorded on it if any.
func LastDays(entries []entry.Entry, today timeutil.Day, n int) []WeekDay {
	if n <= 0 {
		return nil
	}
	byDate := make(map[timeutil.Day]entry.Entry, len(entries))
	for _, e := range entries {
		byDate[e.Date] = e
	}
	out := make([]WeekDay, n)
	for i := range out {
		d := today.AddDays(i - n + 1)
		out[i].Date = d
		if e, ok := byDate[d]; ok {
			c := e.Clone()
			out[i].Entry = &c
		}
	}
	return out
}

// Achievement is progress toward one goal. Progress never exceeds Target.
type Achievement struct {
	Title      string
	LocalTitle string
	Goal       string
	Progress   int
	Target     int
}

// Done reports whether the target has been reached.
func (a Achievement) Done() bool { return a.Progress >= a.Target }

// Percent is Progress/Target scaled to 0..100.
func (a Achievement) Percent() int {
	if a.Target <= 0 {
		return 0
	}
	return a.Progress * 100 / a.Target
}

const (
	streakTarget  = 7
	entriesTarget = 50
)

// Achievements reports the three profile goals: a seven day streak ending
// today, fifty entries, and having felt every rating at least once.
func Achievements(entries []entry.Entry, today timeutil.Day) []Achievement {
	felt := make(map[entry.Rating]struct{})
	for _, e := range entries {
		if e.Rating.Valid() {
			felt[e.Rating] = struct{}{}
		}
	}
	return []Achievement{{
		Title:      "Consistent logger",
		LocalTitle: "Pencatat Konsisten",
		Goal:       "Log your mood 7 days in a row",
		Progress:   min(CurrentStreak(entries, today), streakTarget),
		Target:     streakTarget,
	}, {
		Title:      "50 entries",
		LocalTitle: "50 Entri",
		Goal:       "Reach 50 mood entries",
		Progress:   min(len(entries), entriesTarget),
		Target:     entriesTarget,
	}, {
		Title:      "Emotion explorer",
		LocalTitle: "Eksplorasi Emosi",
		Goal:       "Feel every rating from 1 to 5",
		Progress:   len(felt),
		Target:     len(entry.Ratings()),
	}}
}

type advice struct{ en, id string }

var suggestions = map[entry.Rating]advice{
	entry.Sad: {
		en: "Feeling sad is normal. Try a few deep breaths, five minutes of journaling, or some calming music.",
		id: "Sedih itu wajar. Coba tarik napas dalam, journaling 5 menit, atau dengarkan musik yang menenangkan.",
	},
	entry.Angry: {
		en: "Take a five minute break. Try 4-7-8 breathing or a short walk before carrying on.",
		id: "Ambil jeda 5 menit. Lakukan pernapasan 4-7-8 atau jalan sebentar sebelum lanjut aktivitas.",
	},
	entry.Afraid: {
		en: "Start small. Write down what worries you, then plan one simple thing to do today.",
		id: "Mulai dari langkah kecil. Tulis kekhawatiranmu lalu rencanakan satu aksi sederhana untuk hari ini.",
	},
}

// Suggestion returns a coping tip for a negative dominant rating, in the
// language of locale. Positive ratings have no tip and yield "".
func Suggestion(dominant entry.Rating, locale string) string {
	if !dominant.Negative() {
		return ""
	}
	a, ok := suggestions[dominant]
	if !ok {
		return ""
	}
	if locale == "id" {
		return a.id
	}
	return a.en
}
