package entry

import (
	"errors"
	"fmt"
)

// ErrEmptyPatch is returned by Validate when no field is present.
var ErrEmptyPatch = errors.New("entry: patch has no fields")

// Patch carries a partial set of entry fields. A nil field is absent and is
// left untouched when applied; a non-nil tag slice (even empty) replaces the
// stored list. ID and Date are never part of a patch.
type Patch struct {
	Rating     *Rating
	Note       *string
	Energy     *int
	Stress     *int
	Emotions   []string
	Activities []string
}

// Empty reports whether no recognized field is present.
func (p Patch) Empty() bool {
	return p.Rating == nil && p.Note == nil && p.Energy == nil && p.Stress == nil &&
		p.Emotions == nil && p.Activities == nil
}

// Validate checks the present fields against the entry domain.
func (p Patch) Validate() error {
	if p.Empty() {
		return ErrEmptyPatch
	}
	if p.Rating != nil && !p.Rating.Valid() {
		return fmt.Errorf("entry: rating %d out of range 1..5", int(*p.Rating))
	}
	if p.Energy != nil && (*p.Energy < 0 || *p.Energy > 100) {
		return fmt.Errorf("entry: energy %d out of range 0..100", *p.Energy)
	}
	if p.Stress != nil && (*p.Stress < 0 || *p.Stress > 100) {
		return fmt.Errorf("entry: stress %d out of range 0..100", *p.Stress)
	}
	return nil
}

// ApplyTo overrides the fields of e that are present in p.
func (p Patch) ApplyTo(e *Entry) {
	if p.Rating != nil {
		e.Rating = *p.Rating
	}
	if p.Note != nil {
		e.Note = *p.Note
	}
	if p.Energy != nil {
		v := *p.Energy
		e.Energy = &v
	}
	if p.Stress != nil {
		v := *p.Stress
		e.Stress = &v
	}
	if p.Emotions != nil {
		e.Emotions = append([]string{}, p.Emotions...)
	}
	if p.Activities != nil {
		e.Activities = append([]string{}, p.Activities...)
	}
}

// WithRating returns a copy of p with the rating set.
func (p Patch) WithRating(r Rating) Patch {
	p.Rating = &r
	return p
}

// WithNote returns a copy of p with the note set.
func (p Patch) WithNote(note string) Patch {
	p.Note = &note
	return p
}
