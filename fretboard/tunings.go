package fretboard

import (
	"fmt"
	"strings"

	"github.com/jsphweid/fretwork/note"
	"github.com/jsphweid/fretwork/util"
	"golang.org/x/exp/slices"
)

// open strings, lowest string first
var (
	standardGuitar   = []string{"E2", "A2", "D3", "G3", "B3", "E4"}
	standardUkulele  = []string{"G4", "C4", "E4", "A4"}
	standardMandolin = []string{"G3", "D4", "A4", "E5"}
)

var tunings = map[string][]string{
	"guitar":   standardGuitar,
	"ukulele":  standardUkulele,
	"mandolin": standardMandolin,
}

func StandardGuitar() []string {
	return slices.Clone(standardGuitar)
}

// StandardUkulele is re-entrant: the G string sits above C.
func StandardUkulele() []string {
	return slices.Clone(standardUkulele)
}

func StandardMandolin() []string {
	return slices.Clone(standardMandolin)
}

func TuningNames() []string {
	return util.GetKeys(tunings)
}

// Tuning looks up a standard tuning by instrument name.
func Tuning(name string) ([]note.Note, error) {
	names, ok := tunings[strings.ToLower(strings.TrimSpace(name))]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownTuning, name)
	}
	return Notes(names...)
}

// Notes parses open string names, stopping at the first bad one.
func Notes(names ...string) ([]note.Note, error) {
	res := make([]note.Note, 0, len(names))
	for _, name := range names {
		n, err := note.New(name)
		if err != nil {
			return nil, err
		}
		res = append(res, n)
	}
	return res, nil
}
