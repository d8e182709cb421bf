package app

import (
	"context"
	"errors"
	"fmt"
	"io"
	"time"

	"tableflip.dev/mood/pkg/calendar"
	"tableflip.dev/mood/pkg/entry"
	"tableflip.dev/mood/pkg/export"
	"tableflip.dev/mood/pkg/identity"
	"tableflip.dev/mood/pkg/stats"
	"tableflip.dev/mood/pkg/store"
	"tableflip.dev/mood/pkg/timeutil"
)

// Service provides the mood journal operations shared by the CLI and the MCP
// server. It wraps the entry store, the session preferences and the identity
// provider so both surfaces behave the same way.
type Service struct {
	Entries  *store.Entries
	Session  *store.Session
	Identity identity.Provider
	// Locale selects the language of user facing sign in messages.
	Locale string
	// Now overrides the clock, for tests.
	Now func() time.Time
}

var (
	ErrNoStore    = errors.New("app: no store configured")
	ErrNoIdentity = errors.New("app: no identity provider configured")
	ErrSignedOut  = errors.New("app: not signed in")
	ErrNoRating   = errors.New("app: rating required")
)

// New wires a Service over kv.
func New(kv store.KV, provider identity.Provider, locale string) *Service {
	return &Service{
		Entries:  store.OpenEntries(kv),
		Session:  store.NewSession(kv),
		Identity: provider,
		Locale:   locale,
	}
}

// Today is the current local day according to the service clock.
func (s *Service) Today() timeutil.Day {
	if s.Now != nil {
		return timeutil.DayOf(s.Now())
	}
	return timeutil.Today()
}

func (s *Service) ready(ctx context.Context) error {
	if ctx != nil {
		if err := ctx.Err(); err != nil {
			return err
		}
	}
	if s.Entries == nil {
		return ErrNoStore
	}
	return nil
}

// List returns every entry, oldest first.
func (s *Service) List(ctx context.Context) ([]entry.Entry, error) {
	if err := s.ready(ctx); err != nil {
		return nil, err
	}
	return s.Entries.Snapshot().Entries(), nil
}

// Get returns the entry recorded for day.
func (s *Service) Get(ctx context.Context, day timeutil.Day) (entry.Entry, bool, error) {
	if err := s.ready(ctx); err != nil {
		return entry.Entry{}, false, err
	}
	e, ok := s.Entries.Snapshot().Lookup(day)
	return e, ok, nil
}

// LogMood records p against day, merging into an existing entry for that
// day. A check in for today also moves the companion to the new rating.
func (s *Service) LogMood(ctx context.Context, day timeutil.Day, p entry.Patch) (entry.Entry, error) {
	if err := s.ready(ctx); err != nil {
		return entry.Entry{}, err
	}
	if !day.Valid() {
		return entry.Entry{}, fmt.Errorf("app: invalid day %q", day)
	}
	existing, exists := s.Entries.Snapshot().Lookup(day)
	if p.Rating == nil && !exists {
		return entry.Entry{}, ErrNoRating
	}
	if err := p.Validate(); err != nil {
		if errors.Is(err, entry.ErrEmptyPatch) {
			return existing, nil
		}
		return entry.Entry{}, err
	}
	e, err := s.Entries.AddOrMerge(day, p)
	if err != nil {
		return entry.Entry{}, err
	}
	if day == s.Today() && s.Session != nil {
		if err := s.Session.SetLastRating(e.Rating); err != nil {
			return e, err
		}
		if err := s.Session.AcknowledgeIntro(); err != nil {
			return e, err
		}
	}
	return e, nil
}

// SaveNote writes the note for day. A day without an entry gets one with the
// default rating.
func (s *Service) SaveNote(ctx context.Context, day timeutil.Day, note string) (entry.Entry, error) {
	if err := s.ready(ctx); err != nil {
		return entry.Entry{}, err
	}
	if !day.Valid() {
		return entry.Entry{}, fmt.Errorf("app: invalid day %q", day)
	}
	return s.Entries.AddOrMerge(day, entry.Patch{}.WithNote(note))
}

// Update applies p to the entry with id. ok is false when no entry has that
// id or p carries no fields.
func (s *Service) Update(ctx context.Context, id string, p entry.Patch) (entry.Entry, bool, error) {
	if err := s.ready(ctx); err != nil {
		return entry.Entry{}, false, err
	}
	if err := p.Validate(); err != nil {
		if errors.Is(err, entry.ErrEmptyPatch) {
			return entry.Entry{}, false, nil
		}
		return entry.Entry{}, false, err
	}
	return s.Entries.Update(id, p)
}

// ClearNote empties the note of the entry with id and keeps the entry.
func (s *Service) ClearNote(ctx context.Context, id string) (entry.Entry, bool, error) {
	if err := s.ready(ctx); err != nil {
		return entry.Entry{}, false, err
	}
	return s.Entries.ClearNote(id)
}

// Delete removes the entry with id.
func (s *Service) Delete(ctx context.Context, id string) (bool, error) {
	if err := s.ready(ctx); err != nil {
		return false, err
	}
	return s.Entries.Remove(id)
}

// Journal returns the entries with notes that match f, newest first.
func (s *Service) Journal(ctx context.Context, f calendar.Filter) ([]entry.Entry, error) {
	if err := s.ready(ctx); err != nil {
		return nil, err
	}
	return f.Apply(s.Entries.Snapshot().Entries(), s.Today()), nil
}

// Export writes the journal view selected by f to w and returns how many
// entries were written.
func (s *Service) Export(ctx context.Context, w io.Writer, f calendar.Filter) (int, error) {
	list, err := s.Journal(ctx, f)
	if err != nil {
		return 0, err
	}
	if err := export.Journal(w, list, s.Locale); err != nil {
		return 0, fmt.Errorf("app: export: %w", err)
	}
	return len(list), nil
}

// MonthView is a month grid with entries attached.
type MonthView struct {
	Grid  calendar.Grid
	Cells [calendar.GridSize]calendar.DayCell
	Fill  stats.Fill
}

// Month projects the entries onto the grid for year/month.
func (s *Service) Month(ctx context.Context, year int, month time.Month) (MonthView, error) {
	if err := s.ready(ctx); err != nil {
		return MonthView{}, err
	}
	snap := s.Entries.Snapshot()
	g := calendar.BuildMonthGrid(year, month)
	anchor := timeutil.Date(g.Year, g.Month, 1)
	if today := s.Today(); today.SameMonth(anchor) {
		anchor = today
	} else {
		anchor = anchor.AddDays(timeutil.DaysIn(g.Year, g.Month) - 1)
	}
	return MonthView{
		Grid:  g,
		Cells: calendar.Project(g, snap, s.Today()),
		Fill:  stats.MonthFill(snap.Entries(), anchor),
	}, nil
}

// Week summarizes the current Monday-first week.
func (s *Service) Week(ctx context.Context) (stats.Weekly, error) {
	if err := s.ready(ctx); err != nil {
		return stats.Weekly{}, err
	}
	return stats.Week(s.Entries.Snapshot().Entries(), s.Today()), nil
}

// Profile summarizes the whole journal as of today.
func (s *Service) Profile(ctx context.Context) (stats.Summary, error) {
	if err := s.ready(ctx); err != nil {
		return stats.Summary{}, err
	}
	return stats.Profile(s.Entries.Snapshot().Entries(), s.Today()), nil
}

// Companion picks the mascot face for today.
func (s *Service) Companion(ctx context.Context) (stats.Face, error) {
	if err := s.ready(ctx); err != nil {
		return stats.FaceIntro, err
	}
	var (
		last  entry.Rating
		acked bool
	)
	if s.Session != nil {
		last, _ = s.Session.LastRating()
		acked = s.Session.IntroAcknowledged()
	}
	return stats.Companion(s.Entries.Snapshot().Entries(), s.Today(), last, acked), nil
}

// AcknowledgeIntro dismisses the companion intro.
func (s *Service) AcknowledgeIntro(ctx context.Context) error {
	if err := s.ready(ctx); err != nil {
		return err
	}
	if s.Session == nil {
		return ErrNoStore
	}
	return s.Session.AcknowledgeIntro()
}
