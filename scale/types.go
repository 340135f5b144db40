package scale

import (
	"errors"
	"fmt"
	"strings"

	"github.com/jsphweid/fretwork/interval"
	"golang.org/x/exp/slices"
)

var ErrUnknownScaleType = errors.New("unknown scale type")

type Type string

const (
	Major           Type = "major"
	Minor           Type = "minor"
	HarmonicMinor   Type = "harmonic minor"
	MelodicMinor    Type = "melodic minor"
	MajorPentatonic Type = "major pentatonic"
	MinorPentatonic Type = "minor pentatonic"
	Blues           Type = "blues"
	MajorBlues      Type = "major blues"
	MinorBlues      Type = "minor blues"
	Chromatic       Type = "chromatic"
	WholeTone       Type = "wholetone"
)

var types = []Type{
	Major, Minor, HarmonicMinor, MelodicMinor,
	MajorPentatonic, MinorPentatonic,
	Blues, MajorBlues, MinorBlues,
	Chromatic, WholeTone,
}

// semitone offsets above the root, ascending
var formulas = map[Type][]int{
	Major: {
		interval.MajorSecond,
		interval.MajorThird,
		interval.PerfectFourth,
		interval.PerfectFifth,
		interval.MajorSixth,
		interval.MajorSeventh,
	},
	Minor: {
		interval.MajorSecond,
		interval.MinorThird,
		interval.PerfectFourth,
		interval.PerfectFifth,
		interval.MinorSixth,
		interval.MinorSeventh,
	},
	HarmonicMinor: {
		interval.MajorSecond,
		interval.MinorThird,
		interval.PerfectFourth,
		interval.PerfectFifth,
		interval.MinorSixth,
		interval.MajorSeventh,
	},
	MelodicMinor: {
		interval.MajorSecond,
		interval.MinorThird,
		interval.PerfectFourth,
		interval.PerfectFifth,
		interval.MajorSixth,
		interval.MajorSeventh,
	},
	MajorPentatonic: {
		interval.MajorSecond,
		interval.MajorThird,
		interval.PerfectFifth,
		interval.MajorSixth,
	},
	MinorPentatonic: {
		interval.MinorThird,
		interval.PerfectFourth,
		interval.PerfectFifth,
		interval.MinorSeventh,
	},
	Blues: {
		interval.MajorThird,
		interval.PerfectFourth,
		interval.AugmentedFourth,
		interval.PerfectFifth,
		interval.MinorSeventh,
	},
	MajorBlues: {
		interval.MajorSecond,
		interval.MajorThird,
		interval.AugmentedFourth,
		interval.PerfectFifth,
		interval.MajorSixth,
		interval.MajorSeventh,
	},
	MinorBlues: {
		interval.MajorThird,
		interval.AugmentedFourth,
		interval.PerfectFifth,
		interval.MinorSixth,
		interval.MinorSeventh,
	},
	Chromatic: {
		interval.MinorSecond,
		interval.MajorSecond,
		interval.MinorThird,
		interval.MajorThird,
		interval.PerfectFourth,
		interval.AugmentedFourth,
		interval.PerfectFifth,
		interval.MinorSixth,
		interval.MajorSixth,
		interval.MinorSeventh,
		interval.MajorSeventh,
	},
	WholeTone: {
		interval.MajorSecond,
		interval.MajorThird,
		interval.AugmentedFourth,
		interval.MinorSixth,
		interval.MinorSeventh,
	},
}

var displayNames = map[Type]string{
	Major:           "Major",
	Minor:           "Minor",
	HarmonicMinor:   "Harmonic Minor",
	MelodicMinor:    "Melodic Minor",
	MajorPentatonic: "Major Pentatonic",
	MinorPentatonic: "Minor Pentatonic",
	Blues:           "Blues",
	MajorBlues:      "Major Blues",
	MinorBlues:      "Minor Blues",
	Chromatic:       "Chromatic",
	WholeTone:       "Whole Tone",
}

func Types() []Type {
	return slices.Clone(types)
}

func Formula(t Type) ([]int, bool) {
	f, ok := formulas[t]
	if !ok {
		return nil, false
	}
	return slices.Clone(f), true
}

func DisplayName(t Type) string {
	return displayNames[t]
}

// ParseType is case-insensitive and reads '-' and '_' as spaces, so
// "major-pentatonic" and "MAJOR_PENTATONIC" both resolve. "whole tone"
// is accepted for WholeTone.
func ParseType(s string) (Type, error) {
	norm := strings.NewReplacer("-", " ", "_", " ").Replace(strings.ToLower(strings.TrimSpace(s)))
	if norm == "whole tone" {
		norm = string(WholeTone)
	}
	t := Type(norm)
	if _, ok := formulas[t]; !ok {
		return "", fmt.Errorf("%w: %q", ErrUnknownScaleType, s)
	}
	return t, nil
}
