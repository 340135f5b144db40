// Package interval applies named semitone distances to notes.
package interval

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/jsphweid/fretwork/constants"
	"github.com/jsphweid/fretwork/note"
	"github.com/jsphweid/fretwork/pitch"
	"github.com/jsphweid/fretwork/util"
)

var (
	ErrInvalidIntervalDistance = errors.New("invalid interval distance")
	ErrInvalidDirection        = errors.New("invalid direction")
	ErrUnknownInterval         = errors.New("unknown interval")
)

type Direction int

const (
	Up Direction = iota
	Down
)

func (d Direction) String() string {
	if d == Down {
		return "down"
	}
	return "up"
}

func (d Direction) MarshalText() ([]byte, error) {
	return []byte(d.String()), nil
}

func ParseDirection(s string) (Direction, error) {
	switch strings.ToLower(s) {
	case "", "up":
		return Up, nil
	case "down":
		return Down, nil
	}
	return Up, fmt.Errorf("%w: %q", ErrInvalidDirection, s)
}

// Interval is a root note and the note a named distance away from it.
type Interval struct {
	Root      note.Note `json:"root"`
	Distance  int       `json:"distance"`
	Direction Direction `json:"direction"`
	UseFlats  bool      `json:"use_flats"`
	Name      string    `json:"name"`
	Shorthand string    `json:"shorthand"`
	Note      note.Note `json:"note"`
}

// New moves distance semitones from root in dir. With useFlats the
// resulting note takes its flat spelling when one exists.
func New(root note.Note, distance int, dir Direction, useFlats bool) (Interval, error) {
	name, ok := NameOf(distance)
	if !ok {
		return Interval{}, fmt.Errorf("%w: %d", ErrInvalidIntervalDistance, distance)
	}
	if !root.Valid() {
		return Interval{}, fmt.Errorf("%w: root %q", note.ErrTypeMismatch, root.Name)
	}
	shorthand, _ := Shorthand(name)

	shift := distance
	if dir == Down {
		shift = -distance
	}

	raw := root.Index + shift
	index := util.PosMod(raw, constants.NumPitchClasses)

	spelling := pitch.Name(index)
	if useFlats {
		if flat, ok := pitch.Flat(spelling); ok {
			spelling = flat
		}
	}
	octave := root.Octave + util.FloorDiv(raw, constants.NumPitchClasses)
	if octave < constants.MinOctave || octave > constants.MaxOctave {
		return Interval{}, fmt.Errorf("%s from %s: %w: %d", name, root.Name, note.ErrInvalidOctave, octave)
	}

	n, err := note.New(spelling + strconv.Itoa(octave))
	if err != nil {
		return Interval{}, fmt.Errorf("%s from %s: %w", name, root.Name, err)
	}

	return Interval{
		Root:      root,
		Distance:  distance,
		Direction: dir,
		UseFlats:  useFlats,
		Name:      name,
		Shorthand: shorthand,
		Note:      n,
	}, nil
}

// Above is an upward interval spelled with sharps.
func Above(root note.Note, distance int) (Interval, error) {
	return New(root, distance, Up, false)
}

// Parse accepts a semitone count ("4"), a shorthand ("M3") or a long name
// ("major 3rd").
func Parse(s string) (int, error) {
	if d, err := strconv.Atoi(s); err == nil {
		if _, ok := NameOf(d); !ok {
			return 0, fmt.Errorf("%w: %d", ErrInvalidIntervalDistance, d)
		}
		return d, nil
	}
	if d, ok := ParseShorthand(s); ok {
		return d, nil
	}
	if d, ok := Semitones(strings.ToLower(s)); ok {
		return d, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownInterval, s)
}
