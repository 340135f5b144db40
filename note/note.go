// Package note parses scientific pitch notation ("C#4", "Ebb5") into
// immutable Note values and derives their frequency and enharmonic
// spelling.
package note

import (
	"errors"
	"fmt"
	"math"
	"regexp"
	"strconv"
	"strings"

	"github.com/jsphweid/fretwork/constants"
	"github.com/jsphweid/fretwork/pitch"
	"github.com/jsphweid/fretwork/util"
	"gonum.org/v1/gonum/floats/scalar"
)

var (
	ErrInvalidNoteName   = errors.New("invalid note name")
	ErrInvalidOctave     = errors.New("invalid octave")
	ErrInvalidAccidental = errors.New("invalid accidental")
	ErrTypeMismatch      = errors.New("not a well-formed note")
)

var (
	namePattern = regexp.MustCompile(`^([A-Ga-g])([#b]*)(.*)$`)
	restPattern = regexp.MustCompile(`^([^0-9]*)([0-9]*)$`)
)

type Note struct {
	Name       string  `json:"name"`
	PitchClass string  `json:"pitch_class"`
	Accidental string  `json:"accidental"`
	Octave     int     `json:"octave"`
	Freq       float64 `json:"freq"`
	// position within the 12-tone row after the accidental is applied
	Index int `json:"index"`

	// only set for single sharps and flats
	EnharmonicSpelling string `json:"enharmonic_spelling,omitempty"`
	EnharmonicNote     *Note  `json:"enharmonic_note,omitempty"`
}

// New parses name and builds the Note along with its enharmonic companion.
func New(name string) (Note, error) {
	return build(name, true)
}

// MustNew is New for names known to be valid at compile time.
func MustNew(name string) Note {
	n, err := New(name)
	if err != nil {
		panic(err)
	}
	return n
}

// build stops after one level of enharmonic companions; the companion is
// always built with withEnharmonic false.
func build(name string, withEnharmonic bool) (Note, error) {
	pitchClass, accidental, octave, err := Parse(name)
	if err != nil {
		return Note{}, err
	}

	index, err := ChromaticIndex(pitchClass, AccidentalOffset(accidental))
	if err != nil {
		return Note{}, err
	}

	n := Note{
		Name:       pitchClass + accidental + strconv.Itoa(octave),
		PitchClass: pitchClass,
		Accidental: accidental,
		Octave:     octave,
		Freq:       Frequency(index, octave),
		Index:      index,
	}

	// NOTE: double and triple accidentals get no enharmonic spelling
	if len(accidental) == 1 {
		if accidental == "b" {
			n.EnharmonicSpelling, _ = pitch.Sharp(n.Spelling())
		} else {
			n.EnharmonicSpelling, _ = pitch.Flat(n.Spelling())
		}
		if withEnharmonic && n.EnharmonicSpelling != "" {
			companion, err := build(n.EnharmonicSpelling+strconv.Itoa(octave), false)
			if err != nil {
				return Note{}, err
			}
			n.EnharmonicNote = &companion
		}
	}

	return n, nil
}

// Parse splits a note name into its uppercased letter, accidental run and
// octave.
func Parse(name string) (pitchClass string, accidental string, octave int, err error) {
	match := namePattern.FindStringSubmatch(name)
	if match == nil {
		return "", "", -1, fmt.Errorf("%w: %q", ErrInvalidNoteName, name)
	}
	pitchClass = strings.ToUpper(match[1])
	accidental = match[2]

	rest := restPattern.FindStringSubmatch(match[3])
	if rest == nil {
		return "", "", -1, fmt.Errorf("%w: %q", ErrInvalidNoteName, name)
	}
	if rest[1] != "" {
		return "", "", -1, fmt.Errorf("%w: %q in %q", ErrInvalidAccidental, accidental+rest[1], name)
	}
	if err := checkAccidental(accidental); err != nil {
		return "", "", -1, fmt.Errorf("%w in %q", err, name)
	}
	if rest[2] == "" {
		return "", "", -1, fmt.Errorf("%w: missing octave in %q", ErrInvalidOctave, name)
	}

	octave, err = strconv.Atoi(rest[2])
	if err != nil || octave < constants.MinOctave || octave > constants.MaxOctave {
		return "", "", -1, fmt.Errorf("%w: %q in %q", ErrInvalidOctave, rest[2], name)
	}

	return pitchClass, accidental, octave, nil
}

// a run of one symbol, at most three long
func checkAccidental(accidental string) error {
	if accidental == "" {
		return nil
	}
	if len(accidental) > constants.MaxAccidentals {
		return fmt.Errorf("%w: %q is longer than %d", ErrInvalidAccidental, accidental, constants.MaxAccidentals)
	}
	if strings.Trim(accidental, accidental[:1]) != "" {
		return fmt.Errorf("%w: %q mixes sharps and flats", ErrInvalidAccidental, accidental)
	}
	return nil
}

// AccidentalOffset is +1 per sharp and -1 per flat.
func AccidentalOffset(accidental string) int {
	switch {
	case strings.HasPrefix(accidental, "#"):
		return len(accidental)
	case strings.HasPrefix(accidental, "b"):
		return -len(accidental)
	}
	return 0
}

// ChromaticIndex shifts the table index of pitchClass by offset and folds
// the result back into [0,11].
func ChromaticIndex(pitchClass string, offset int) (int, error) {
	base, err := pitch.Index(pitchClass)
	if err != nil {
		return -1, err
	}
	return util.PosMod(base+offset, constants.NumPitchClasses), nil
}

// Frequency in Hz of a chromatic index and octave under A4 = 440 Hz equal
// temperament, rounded to two decimals.
func Frequency(index int, octave int) float64 {
	a, _ := pitch.Index("A")
	n := index - a + (octave-4)*constants.NumPitchClasses
	freq := constants.ReferencePitch * math.Pow(2, float64(n)/constants.NumPitchClasses)
	return scalar.Round(freq, 2)
}

// Spelling is the pitch class with its accidental and no octave.
func (n Note) Spelling() string {
	return n.PitchClass + n.Accidental
}

func (n Note) String() string {
	return n.Name
}

// Valid is false for the zero value and the Invalid sentinel.
func (n Note) Valid() bool {
	return n.PitchClass != "" &&
		n.Octave >= constants.MinOctave && n.Octave <= constants.MaxOctave &&
		n.Freq > 0
}

// MIDIKey maps the note to a MIDI key number with C4 = 60. Notes above G9
// report false.
func (n Note) MIDIKey() (uint8, bool) {
	key := (n.Octave+1)*constants.NumPitchClasses + n.Index
	if !n.Valid() || key > 127 {
		return 0, false
	}
	return uint8(key), true
}

// SameSpelling compares pitch class and accidental, ignoring octave.
func (n Note) SameSpelling(other Note) bool {
	return n.Spelling() == other.Spelling()
}

// SamePitch compares the sounding pitch, so C#4 and Db4 match.
func (n Note) SamePitch(other Note) bool {
	return n.Index == other.Index && n.Octave == other.Octave
}
