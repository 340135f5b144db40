package scale

import (
	"fmt"

	"github.com/jsphweid/fretwork/interval"
	"github.com/jsphweid/fretwork/note"
	"github.com/jsphweid/fretwork/pitch"
)

// roots of the 15 major keys, sharps then flats
var keyRoots = []string{"C", "G", "D", "A", "E", "B", "F#", "C#", "F", "Bb", "Eb", "Ab", "Db", "Gb", "Cb"}

var majorKeys = buildMajorKeys()

func buildMajorKeys() map[string]Scale {
	keys := make(map[string]Scale, len(keyRoots))
	for _, root := range keyRoots {
		s, err := NewMajor(note.MustNew(root + "4"))
		if err != nil {
			panic(err)
		}
		keys[root] = s
	}
	return keys
}

// KeyRoots lists the roots MajorKey knows about.
func KeyRoots() []string {
	return append([]string(nil), keyRoots...)
}

// MajorKey returns the prebuilt major scale on root in octave 4.
func MajorKey(root string) (Scale, error) {
	s, ok := majorKeys[root]
	if !ok {
		return Scale{}, fmt.Errorf("%w: %q", pitch.ErrUnknownKey, root)
	}
	// hand out copies so the table stays untouched
	s.Notes = append([]note.Note(nil), s.Notes...)
	s.Intervals = append([]interval.Interval(nil), s.Intervals...)
	return s, nil
}
