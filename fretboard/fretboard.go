// Package fretboard tabulates the note under every fret of a fretted
// instrument by walking up one semitone at a time from each open string.
package fretboard

import (
	"errors"
	"fmt"

	"github.com/jsphweid/fretwork/constants"
	"github.com/jsphweid/fretwork/interval"
	"github.com/jsphweid/fretwork/note"
)

var (
	ErrInvalidFretCount = errors.New("invalid fret count")
	ErrUnknownTuning    = errors.New("unknown tuning")
	ErrOutOfRange       = errors.New("position out of range")
)

type Fretboard struct {
	Tuning []note.Note `json:"tuning"`
	Frets  int         `json:"frets"`

	// Strings[s][f] is the note at fret f of string s; fret 0 is open.
	Strings [][]note.Note `json:"strings"`
}

type Position struct {
	String int       `json:"string"`
	Fret   int       `json:"fret"`
	Note   note.Note `json:"note"`
}

// New builds frets notes per string, the open note included, keeping the
// tuning in the order given.
func New(tuning []note.Note, frets int) (Fretboard, error) {
	if frets < 1 || frets > constants.MaxFrets {
		return Fretboard{}, fmt.Errorf("%w: %d not in [1, %d]", ErrInvalidFretCount, frets, constants.MaxFrets)
	}

	fb := Fretboard{
		Tuning:  append([]note.Note(nil), tuning...),
		Frets:   frets,
		Strings: make([][]note.Note, 0, len(tuning)),
	}
	for i, open := range tuning {
		if !open.Valid() {
			return Fretboard{}, fmt.Errorf("string %d: %w: %q", i, note.ErrTypeMismatch, open.Name)
		}
		notes, err := buildString(open, frets)
		if err != nil {
			return Fretboard{}, fmt.Errorf("string %d: %w", i, err)
		}
		fb.Strings = append(fb.Strings, notes)
	}
	return fb, nil
}

func buildString(open note.Note, frets int) ([]note.Note, error) {
	notes := make([]note.Note, 0, frets)
	notes = append(notes, open)
	for i := 1; i < frets; i++ {
		iv, err := interval.Above(notes[len(notes)-1], interval.MinorSecond)
		if err != nil {
			return nil, fmt.Errorf("fret %d: %w", i, err)
		}
		notes = append(notes, iv.Note)
	}
	return notes, nil
}

// At is the note at fret of string, both zero-based.
func (fb Fretboard) At(str, fret int) (note.Note, error) {
	if str < 0 || str >= len(fb.Strings) {
		return note.Note{}, fmt.Errorf("%w: string %d of %d", ErrOutOfRange, str, len(fb.Strings))
	}
	if fret < 0 || fret >= len(fb.Strings[str]) {
		return note.Note{}, fmt.Errorf("%w: fret %d of %d", ErrOutOfRange, fret, len(fb.Strings[str]))
	}
	return fb.Strings[str][fret], nil
}

// Positions finds every place n can be played. Spelling is ignored, so Db4
// and C#4 find the same frets.
func (fb Fretboard) Positions(n note.Note) []Position {
	var res []Position
	if !n.Valid() {
		return res
	}
	for s, notes := range fb.Strings {
		for f, fn := range notes {
			if fn.SamePitch(n) {
				res = append(res, Position{String: s, Fret: f, Note: fn})
			}
		}
	}
	return res
}

// Names is the fretboard as note names, one row per string.
func (fb Fretboard) Names() [][]string {
	rows := make([][]string, len(fb.Strings))
	for i, notes := range fb.Strings {
		rows[i] = make([]string, len(notes))
		for j, n := range notes {
			rows[i][j] = n.Name
		}
	}
	return rows
}
