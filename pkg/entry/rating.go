package entry

import (
	"fmt"
	"strconv"
	"strings"
)

// Rating is the mood scale 1..5. It is ordinal but not monotonic in valence:
// use Negative rather than comparing values to judge polarity.
type Rating int

const (
	Angry  Rating = 1
	Sad    Rating = 2
	Afraid Rating = 3
	Calm   Rating = 4
	Happy  Rating = 5
)

// DefaultRating is assigned to entries created without an explicit rating,
// e.g. when a journal note is written for a day that has no entry yet.
const DefaultRating = Calm

// Meta is the fixed presentation and polarity data for a rating.
type Meta struct {
	Rating     Rating
	Emoji      string
	Label      string
	LocalLabel string
	Negative   bool
}

var meta = map[Rating]Meta{
	Angry:  {Rating: Angry, Emoji: "😡", Label: "Angry", LocalLabel: "Marah", Negative: true},
	Sad:    {Rating: Sad, Emoji: "☹️", Label: "Sad", LocalLabel: "Sedih", Negative: true},
	Afraid: {Rating: Afraid, Emoji: "😨", Label: "Afraid", LocalLabel: "Takut", Negative: true},
	Calm:   {Rating: Calm, Emoji: "🙂", Label: "Calm", LocalLabel: "Tenang"},
	Happy:  {Rating: Happy, Emoji: "😋", Label: "Happy", LocalLabel: "Senang"},
}

// Ratings lists every rating in scale order.
func Ratings() []Rating {
	return []Rating{Angry, Sad, Afraid, Calm, Happy}
}

// Valid reports whether r is one of the five defined ratings.
func (r Rating) Valid() bool {
	_, ok := meta[r]
	return ok
}

// Meta returns the lookup entry for r. Invalid ratings yield a zero Meta.
func (r Rating) Meta() Meta {
	return meta[r]
}

// Label returns the English label.
func (r Rating) Label() string {
	if m, ok := meta[r]; ok {
		return m.Label
	}
	return fmt.Sprintf("Rating(%d)", int(r))
}

// LabelIn returns the label for locale: the Indonesian one for "id", the
// English one otherwise.
func (r Rating) LabelIn(locale string) string {
	if m, ok := meta[r]; ok && locale == "id" {
		return m.LocalLabel
	}
	return r.Label()
}

// Emoji returns the face for r.
func (r Rating) Emoji() string {
	return meta[r].Emoji
}

// Negative reports whether r is a negative mood.
func (r Rating) Negative() bool {
	return meta[r].Negative
}

func (r Rating) String() string {
	return r.Label()
}

// ParseRating accepts a number 1..5 or a label in either language.
func ParseRating(s string) (Rating, error) {
	v := strings.ToLower(strings.TrimSpace(s))
	if n, err := strconv.Atoi(v); err == nil {
		r := Rating(n)
		if !r.Valid() {
			return 0, fmt.Errorf("rating %d out of range 1..5", n)
		}
		return r, nil
	}
	for _, r := range Ratings() {
		m := meta[r]
		if v == strings.ToLower(m.Label) || v == strings.ToLower(m.LocalLabel) {
			return r, nil
		}
	}
	return 0, fmt.Errorf("unknown rating %q", s)
}
