// Package mcp provides the Model Context Protocol server integration for mood.
package mcp

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"tableflip.dev/mood/pkg/app"
	"tableflip.dev/mood/pkg/calendar"
	"tableflip.dev/mood/pkg/entry"
	"tableflip.dev/mood/pkg/stats"
	"tableflip.dev/mood/pkg/timeutil"
)

// Service adapts the app service to transport-friendly values shared by the
// MCP tools and resources.
type Service struct {
	App *app.Service
}

// ErrEntryNotFound is returned when no entry matches an id or date.
var ErrEntryNotFound = errors.New("entry not found")

// EntryDTO is a transport-friendly projection of an entry.
type EntryDTO struct {
	ID         string   `json:"id"`
	Date       string   `json:"date"`
	Human      string   `json:"human"`
	Rating     int      `json:"rating"`
	Mood       string   `json:"mood"`
	Emoji      string   `json:"emoji"`
	Negative   bool     `json:"negative"`
	Note       string   `json:"note,omitempty"`
	Energy     *int     `json:"energy,omitempty"`
	Stress     *int     `json:"stress,omitempty"`
	Emotions   []string `json:"emotions,omitempty"`
	Activities []string `json:"activities,omitempty"`
}

// PatchOptions carries optional entry fields as received from a tool call.
type PatchOptions struct {
	Rating     *int
	Note       *string
	Energy     *int
	Stress     *int
	Emotions   []string
	Activities []string
}

// StatsDTO is the profile summary.
type StatsDTO struct {
	Total         int           `json:"total"`
	CurrentStreak int           `json:"currentStreak"`
	BestStreak    int           `json:"bestStreak"`
	MonthFilled   int           `json:"monthFilled"`
	MonthDays     int           `json:"monthDays"`
	Distribution  []BucketDTO   `json:"distribution"`
	Dominant      string        `json:"dominant,omitempty"`
	Recent        []EntryDTO    `json:"recent"`
	Companion     *CompanionDTO `json:"companion,omitempty"`
}

// BucketDTO is one rating of the distribution.
type BucketDTO struct {
	Rating  int    `json:"rating"`
	Mood    string `json:"mood"`
	Count   int    `json:"count"`
	Percent int    `json:"percent"`
}

// CompanionDTO is the mascot face.
type CompanionDTO struct {
	Intro bool   `json:"intro"`
	Mood  string `json:"mood,omitempty"`
	Emoji string `json:"emoji,omitempty"`
}

// DayDTO is one calendar cell.
type DayDTO struct {
	Date    string    `json:"date"`
	InMonth bool      `json:"inMonth,omitempty"`
	IsToday bool      `json:"isToday,omitempty"`
	Entry   *EntryDTO `json:"entry,omitempty"`
}

// WeekDTO is the weekly strip.
type WeekDTO struct {
	Start   string   `json:"start"`
	Days    []DayDTO `json:"days"`
	Filled  int      `json:"filled"`
	Average string   `json:"average,omitempty"`
}

// MonthDTO is a projected month grid.
type MonthDTO struct {
	Month  string   `json:"month"`
	Filled int      `json:"filled"`
	Days   int      `json:"days"`
	Cells  []DayDTO `json:"cells"`
}

// NewService builds a service wrapper over the app service.
func NewService(a *app.Service) *Service {
	return &Service{App: a}
}

func (s *Service) ready() error {
	if s.App == nil {
		return errors.New("app service is not configured")
	}
	return nil
}

// Patch converts o to an entry patch and validates it.
func (o PatchOptions) Patch() (entry.Patch, error) {
	p := entry.Patch{
		Note:       o.Note,
		Energy:     o.Energy,
		Stress:     o.Stress,
		Emotions:   o.Emotions,
		Activities: o.Activities,
	}
	if o.Rating != nil {
		p = p.WithRating(entry.Rating(*o.Rating))
	}
	if p.Empty() {
		return p, nil
	}
	return p, p.Validate()
}

// ParseDate resolves a tool date argument; empty means today.
func (s *Service) ParseDate(input string) (timeutil.Day, error) {
	input = strings.TrimSpace(input)
	switch strings.ToLower(input) {
	case "", "today":
		return s.App.Today(), nil
	case "yesterday":
		return s.App.Today().Prev(), nil
	}
	return timeutil.ParseDay(input)
}

// LogMood records a mood for date, merging with an existing entry.
func (s *Service) LogMood(ctx context.Context, date string, o PatchOptions) (*EntryDTO, error) {
	if err := s.ready(); err != nil {
		return nil, err
	}
	day, err := s.ParseDate(date)
	if err != nil {
		return nil, err
	}
	p, err := o.Patch()
	if err != nil {
		return nil, err
	}
	e, err := s.App.LogMood(ctx, day, p)
	if err != nil {
		return nil, err
	}
	dto := toDTO(e)
	return &dto, nil
}

// UpdateEntry applies the present fields to the entry with id.
func (s *Service) UpdateEntry(ctx context.Context, id string, o PatchOptions) (*EntryDTO, error) {
	if err := s.ready(); err != nil {
		return nil, err
	}
	p, err := o.Patch()
	if err != nil {
		return nil, err
	}
	if p.Empty() {
		return nil, errors.New("no fields to update")
	}
	e, ok, err := s.App.Update(ctx, id, p)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, ErrEntryNotFound
	}
	dto := toDTO(e)
	return &dto, nil
}

// ClearNote empties the note of the entry with id.
func (s *Service) ClearNote(ctx context.Context, id string) (*EntryDTO, error) {
	if err := s.ready(); err != nil {
		return nil, err
	}
	e, ok, err := s.App.ClearNote(ctx, id)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, ErrEntryNotFound
	}
	dto := toDTO(e)
	return &dto, nil
}

// DeleteEntry removes the entry with id.
func (s *Service) DeleteEntry(ctx context.Context, id string) error {
	if err := s.ready(); err != nil {
		return err
	}
	ok, err := s.App.Delete(ctx, id)
	if err != nil {
		return err
	}
	if !ok {
		return ErrEntryNotFound
	}
	return nil
}

// EntryByDate returns the entry recorded on date.
func (s *Service) EntryByDate(ctx context.Context, date string) (*EntryDTO, error) {
	if err := s.ready(); err != nil {
		return nil, err
	}
	day, err := s.ParseDate(date)
	if err != nil {
		return nil, err
	}
	e, ok, err := s.App.Get(ctx, day)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, ErrEntryNotFound
	}
	dto := toDTO(e)
	return &dto, nil
}

// ListEntries returns entries between from and to inclusive, newest first.
// Empty bounds are open. A positive limit caps the result.
func (s *Service) ListEntries(ctx context.Context, from, to string, limit int) ([]EntryDTO, error) {
	if err := s.ready(); err != nil {
		return nil, err
	}
	var lo, hi timeutil.Day
	var err error
	if strings.TrimSpace(from) != "" {
		if lo, err = s.ParseDate(from); err != nil {
			return nil, fmt.Errorf("invalid from: %w", err)
		}
	}
	if strings.TrimSpace(to) != "" {
		if hi, err = s.ParseDate(to); err != nil {
			return nil, fmt.Errorf("invalid to: %w", err)
		}
	}
	all, err := s.App.List(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]EntryDTO, 0, len(all))
	for i := len(all) - 1; i >= 0; i-- {
		e := all[i]
		if lo != "" && e.Date < lo {
			continue
		}
		if hi != "" && e.Date > hi {
			continue
		}
		out = append(out, toDTO(e))
		if limit > 0 && len(out) == limit {
			break
		}
	}
	return out, nil
}

// SearchJournal runs the notes journal filter.
func (s *Service) SearchJournal(ctx context.Context, rangeArg, query string, rating int) ([]EntryDTO, error) {
	if err := s.ready(); err != nil {
		return nil, err
	}
	r, err := calendar.ParseRange(rangeArg)
	if err != nil {
		return nil, err
	}
	f := calendar.Filter{Range: r, Search: query}
	if rating != 0 {
		f.Rating = entry.Rating(rating)
		if !f.Rating.Valid() {
			return nil, fmt.Errorf("rating %d out of range 1..5", rating)
		}
	}
	list, err := s.App.Journal(ctx, f)
	if err != nil {
		return nil, err
	}
	return toDTOs(list), nil
}

// Stats returns the profile summary and companion face.
func (s *Service) Stats(ctx context.Context) (*StatsDTO, error) {
	if err := s.ready(); err != nil {
		return nil, err
	}
	sum, err := s.App.Profile(ctx)
	if err != nil {
		return nil, err
	}
	face, err := s.App.Companion(ctx)
	if err != nil {
		return nil, err
	}
	out := &StatsDTO{
		Total:         sum.Total,
		CurrentStreak: sum.CurrentStreak,
		BestStreak:    sum.BestStreak,
		MonthFilled:   sum.Month.Filled,
		MonthDays:     sum.Month.Days,
		Recent:        toDTOs(sum.Recent),
		Companion:     toCompanion(face),
	}
	for _, b := range sum.Distribution.Buckets {
		out.Distribution = append(out.Distribution, BucketDTO{
			Rating:  int(b.Rating),
			Mood:    b.Rating.Label(),
			Count:   b.Count,
			Percent: b.Percent,
		})
	}
	if sum.HasDominant {
		out.Dominant = sum.Dominant.Label()
	}
	return out, nil
}

// Week returns the current week.
func (s *Service) Week(ctx context.Context) (*WeekDTO, error) {
	if err := s.ready(); err != nil {
		return nil, err
	}
	w, err := s.App.Week(ctx)
	if err != nil {
		return nil, err
	}
	today := s.App.Today()
	out := &WeekDTO{Start: w.Start.String(), Filled: w.Filled}
	for _, d := range w.Days {
		day := DayDTO{Date: d.Date.String(), IsToday: d.Date == today}
		if d.Entry != nil {
			dto := toDTO(*d.Entry)
			day.Entry = &dto
		}
		out.Days = append(out.Days, day)
	}
	if w.HasAverage {
		out.Average = w.Average.Label()
	}
	return out, nil
}

// Month returns the grid for a YYYY-MM month; empty means the current one.
func (s *Service) Month(ctx context.Context, month string) (*MonthDTO, error) {
	if err := s.ready(); err != nil {
		return nil, err
	}
	year, m, err := calendar.ParseMonth(month, s.App.Today())
	if err != nil {
		return nil, err
	}
	v, err := s.App.Month(ctx, year, m)
	if err != nil {
		return nil, err
	}
	out := &MonthDTO{
		Month:  fmt.Sprintf("%04d-%02d", v.Grid.Year, int(v.Grid.Month)),
		Filled: v.Fill.Filled,
		Days:   v.Fill.Days,
	}
	for _, c := range v.Cells {
		day := DayDTO{Date: c.Date.String(), InMonth: c.InMonth, IsToday: c.IsToday}
		if c.Entry != nil {
			dto := toDTO(*c.Entry)
			day.Entry = &dto
		}
		out.Cells = append(out.Cells, day)
	}
	return out, nil
}

func toCompanion(face stats.Face) *CompanionDTO {
	r, ok := face.Rating()
	if !ok {
		return &CompanionDTO{Intro: true}
	}
	return &CompanionDTO{Mood: r.Label(), Emoji: r.Emoji()}
}

func toDTOs(entries []entry.Entry) []EntryDTO {
	out := make([]EntryDTO, 0, len(entries))
	for _, e := range entries {
		out = append(out, toDTO(e))
	}
	return out
}

func toDTO(e entry.Entry) EntryDTO {
	m := e.Rating.Meta()
	return EntryDTO{
		ID:         e.ID,
		Date:       e.Date.String(),
		Human:      e.Date.Human(),
		Rating:     int(e.Rating),
		Mood:       m.Label,
		Emoji:      m.Emoji,
		Negative:   m.Negative,
		Note:       e.Note,
		Energy:     e.Energy,
		Stress:     e.Stress,
		Emotions:   e.Emotions,
		Activities: e.Activities,
	}
}
