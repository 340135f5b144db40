// Package pitch holds the static chromatic tables every other package
// resolves note names against.
package pitch

import (
	"errors"
	"fmt"

	"github.com/jsphweid/fretwork/util"
	"golang.org/x/exp/slices"
)

var (
	ErrInvalidBaseNote = errors.New("invalid base note")
	ErrUnknownKey      = errors.New("unknown key")
)

// sharp-biased spelling of each chromatic index
var classes = [12]string{"C", "C#", "D", "D#", "E", "F", "F#", "G", "G#", "A", "A#", "B"}

var sharpToFlat = map[string]string{
	"C#": "Db",
	"D#": "Eb",
	"F#": "Gb",
	"G#": "Ab",
	"A#": "Bb",
	"B#": "C",
	"E#": "F",
}

var flatToSharp = map[string]string{
	"Cb": "B",
	"Db": "C#",
	"Eb": "D#",
	"Gb": "F#",
	"Ab": "G#",
	"Bb": "A#",
	"Fb": "E",
}

var sharpKeys = []string{"G", "D", "A", "E", "B", "F#", "C#"}
var flatKeys = []string{"F", "Bb", "Eb", "Ab", "Db", "Gb", "Cb"}

// Classes returns the 12 pitch classes in chromatic order starting at C.
func Classes() []string {
	return slices.Clone(classes[:])
}

// Name returns the sharp-biased spelling of a chromatic index. Indexes
// outside [0,11] wrap, so 12 is C and -1 is B.
func Name(index int) string {
	return classes[util.PosMod(index, len(classes))]
}

// Index looks up the chromatic index of a pitch class as spelled in the
// table (a bare letter or a letter with one sharp).
func Index(name string) (int, error) {
	i := slices.Index(classes[:], name)
	if i == -1 {
		return -1, fmt.Errorf("%w: %q", ErrInvalidBaseNote, name)
	}
	return i, nil
}

// Flat returns the flat spelling for a sharp-spelled pitch class. White
// keys without a flat neighbour, except B# and E#, report false.
func Flat(sharp string) (string, bool) {
	f, ok := sharpToFlat[sharp]
	return f, ok
}

func Sharp(flat string) (string, bool) {
	s, ok := flatToSharp[flat]
	return s, ok
}

func SharpKeys() []string {
	return slices.Clone(sharpKeys)
}

func FlatKeys() []string {
	return slices.Clone(flatKeys)
}

// UsesFlats reports whether a key rooted on pitchClass+accidental is
// conventionally spelled with flats.
func UsesFlats(key string) bool {
	return slices.Contains(flatKeys, key)
}

type Signature int

const (
	NoAccidentals Signature = iota
	Sharps
	Flats
)

func (s Signature) String() string {
	switch s {
	case Sharps:
		return "sharps"
	case Flats:
		return "flats"
	default:
		return "none"
	}
}

// KeySignature classifies a major key root by the accidentals its key
// signature carries.
func KeySignature(root string) (Signature, error) {
	switch {
	case root == "C":
		return NoAccidentals, nil
	case slices.Contains(sharpKeys, root):
		return Sharps, nil
	case slices.Contains(flatKeys, root):
		return Flats, nil
	}
	return NoAccidentals, fmt.Errorf("%w: %q", ErrUnknownKey, root)
}
