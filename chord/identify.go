package chord

import (
	"sort"

	"github.com/jsphweid/fretwork/constants"
	"github.com/jsphweid/fretwork/note"
	"github.com/jsphweid/fretwork/pitch"
	"github.com/jsphweid/fretwork/util"
)

// Match is one reading of a set of notes as a chord.
type Match struct {
	Root    string  `json:"root"`
	Quality Quality `json:"quality"`
	Name    string  `json:"name"`

	// true when Root is also the lowest note given
	RootInBass bool `json:"root_in_bass"`

	order int
}

// pitch class set key -> every root/quality spelling it
var index = buildIndex()

func buildIndex() map[string][]Match {
	idx := make(map[string][]Match)
	order := 0
	for root := 0; root < constants.NumPitchClasses; root++ {
		for _, q := range qualities {
			classes := []uint8{uint8(root)}
			for _, offset := range formulas[q] {
				classes = append(classes, uint8(util.PosMod(root+offset, constants.NumPitchClasses)))
			}
			key := CreateChordKey(util.Unique(classes))
			name := pitch.Name(root)
			idx[key] = append(idx[key], Match{
				Root:    name,
				Quality: q,
				Name:    name + " " + string(q),
				order:   order,
			})
			order++
		}
	}
	return idx
}

// Identify names the chords whose pitch classes are exactly those of
// notes, octave and spelling aside. Readings rooted on the lowest note
// rank first. Invalid notes are ignored.
func Identify(notes []note.Note) []Match {
	var classes []uint8
	var bass note.Note
	for _, n := range notes {
		if !n.Valid() {
			continue
		}
		if !bass.Valid() || n.Freq < bass.Freq {
			bass = n
		}
		classes = append(classes, uint8(n.Index))
	}
	if len(classes) == 0 {
		return nil
	}

	found := index[CreateChordKey(util.Unique(classes))]
	matches := make([]Match, len(found))
	copy(matches, found)
	for i := range matches {
		matches[i].RootInBass = matches[i].Root == pitch.Name(bass.Index)
	}
	RankSortMatches(matches)
	return matches
}

// RankSortMatches puts root position readings first and keeps table order
// otherwise.
func RankSortMatches(matches []Match) {
	sort.SliceStable(matches, func(i, j int) bool {
		if matches[i].RootInBass != matches[j].RootInBass {
			return matches[i].RootInBass
		}
		return matches[i].order < matches[j].order
	})
}
