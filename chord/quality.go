package chord

import (
	"errors"
	"fmt"
	"strings"

	"github.com/jsphweid/fretwork/interval"
	"golang.org/x/exp/slices"
)

var ErrUnknownQuality = errors.New("unknown chord quality")

type Quality string

const (
	Major                 Quality = "major"
	Minor                 Quality = "minor"
	Augmented             Quality = "augmented"
	Diminished            Quality = "diminished"
	Sus2                  Quality = "sus2"
	Sus4                  Quality = "sus4"
	MajorSeventh          Quality = "major seventh"
	MinorSeventh          Quality = "minor seventh"
	DominantSeventh       Quality = "dominant seventh"
	HalfDiminishedSeventh Quality = "half diminished seventh"
	DiminishedSeventh     Quality = "diminished seventh"
	MajorNinth            Quality = "major ninth"
	MinorNinth            Quality = "minor ninth"
)

// table order, also the order Identify reports ties in
var qualities = []Quality{
	Major, Minor, Augmented, Diminished, Sus2, Sus4,
	MajorSeventh, MinorSeventh, DominantSeventh,
	HalfDiminishedSeventh, DiminishedSeventh,
	MajorNinth, MinorNinth,
}

var formulas = map[Quality][]int{
	Major:                 {interval.MajorThird, interval.PerfectFifth},
	Minor:                 {interval.MinorThird, interval.PerfectFifth},
	Augmented:             {interval.MajorThird, interval.MinorSixth},
	Diminished:            {interval.MinorThird, interval.DiminishedFifth},
	Sus2:                  {interval.MajorSecond, interval.PerfectFifth},
	Sus4:                  {interval.PerfectFourth, interval.PerfectFifth},
	MajorSeventh:          {interval.MajorThird, interval.PerfectFifth, interval.MajorSeventh},
	MinorSeventh:          {interval.MinorThird, interval.PerfectFifth, interval.MinorSeventh},
	DominantSeventh:       {interval.MajorThird, interval.PerfectFifth, interval.MinorSeventh},
	HalfDiminishedSeventh: {interval.MinorThird, interval.DiminishedFifth, interval.MinorSeventh},
	DiminishedSeventh:     {interval.MinorThird, interval.DiminishedFifth, interval.MajorSixth},
	// the ninth is voiced inside the octave
	MajorNinth: {interval.MajorThird, interval.PerfectFifth, interval.MajorSeventh, interval.MajorSecond},
	MinorNinth: {interval.MinorThird, interval.PerfectFifth, interval.MinorSeventh, interval.MajorSecond},
}

func Qualities() []Quality {
	return slices.Clone(qualities)
}

// Formula returns the semitone offsets above the root for q.
func Formula(q Quality) ([]int, bool) {
	f, ok := formulas[q]
	if !ok {
		return nil, false
	}
	return slices.Clone(f), true
}

// ParseQuality is case-insensitive and reads '-' and '_' as spaces.
func ParseQuality(s string) (Quality, error) {
	q := Quality(strings.NewReplacer("-", " ", "_", " ").Replace(strings.ToLower(strings.TrimSpace(s))))
	if _, ok := formulas[q]; !ok {
		return "", fmt.Errorf("%w: %q", ErrUnknownQuality, s)
	}
	return q, nil
}
