// Package scale builds scales from a root note and a named formula and
// answers membership and degree questions about them.
package scale

import (
	"fmt"
	"strings"

	"github.com/jsphweid/fretwork/interval"
	"github.com/jsphweid/fretwork/note"
	"github.com/jsphweid/fretwork/pitch"
)

type Scale struct {
	Name      string              `json:"name"`
	Type      Type                `json:"type"`
	Root      note.Note           `json:"root"`
	UseFlats  bool                `json:"use_flats"`
	Intervals []interval.Interval `json:"intervals"`
	Notes     []note.Note         `json:"notes"`
}

// New applies the formula of t upward from root. Whether notes are spelled
// with flats is decided once from the root and used for every degree.
func New(root note.Note, t Type) (Scale, error) {
	formula, ok := formulas[t]
	if !ok {
		return Scale{}, fmt.Errorf("%w: %q", ErrUnknownScaleType, t)
	}
	if !root.Valid() {
		return Scale{}, fmt.Errorf("%w: root %q", note.ErrTypeMismatch, root.Name)
	}

	s := Scale{
		Name:      DisplayName(t),
		Type:      t,
		Root:      root,
		UseFlats:  pitch.UsesFlats(root.Spelling()),
		Intervals: make([]interval.Interval, 0, len(formula)),
		Notes:     make([]note.Note, 0, len(formula)+1),
	}
	s.Notes = append(s.Notes, root)
	for _, offset := range formula {
		iv, err := interval.New(root, offset, interval.Up, s.UseFlats)
		if err != nil {
			return Scale{}, fmt.Errorf("%s scale on %s: %w", t, root.Name, err)
		}
		s.Intervals = append(s.Intervals, iv)
		s.Notes = append(s.Notes, iv.Note)
	}
	return s, nil
}

func NewMajor(root note.Note) (Scale, error) {
	return New(root, Major)
}

func NewMinor(root note.Note) (Scale, error) {
	return New(root, Minor)
}

func NewChromatic(root note.Note) (Scale, error) {
	return New(root, Chromatic)
}

// HasNote compares spelling only; octave is ignored.
func (s Scale) HasNote(n note.Note) (bool, error) {
	degree, err := s.Degree(n)
	return degree > 0, err
}

// Degree is the 1-based position of the first note spelled like n, or -1.
func (s Scale) Degree(n note.Note) (int, error) {
	if !n.Valid() {
		return -1, fmt.Errorf("%w: %q", note.ErrTypeMismatch, n.Name)
	}
	for i, sn := range s.Notes {
		if sn.SameSpelling(n) {
			return i + 1, nil
		}
	}
	return -1, nil
}

func (s Scale) Names() []string {
	names := make([]string, len(s.Notes))
	for i, n := range s.Notes {
		names[i] = n.Name
	}
	return names
}

func (s Scale) Shorthands() []string {
	res := make([]string, len(s.Intervals))
	for i, iv := range s.Intervals {
		res[i] = iv.Shorthand
	}
	return res
}

// Sharps counts the notes carrying a sharp.
func (s Scale) Sharps() int {
	return s.count("#")
}

func (s Scale) Flats() int {
	return s.count("b")
}

func (s Scale) count(symbol string) int {
	var total int
	for _, n := range s.Notes {
		if strings.HasPrefix(n.Accidental, symbol) {
			total++
		}
	}
	return total
}
