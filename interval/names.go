package interval

import (
	"golang.org/x/exp/slices"
)

// Semitone sizes of the named intervals.
const (
	Unison          = 0
	MinorSecond     = 1
	MajorSecond     = 2
	MinorThird      = 3
	MajorThird      = 4
	PerfectFourth   = 5
	AugmentedFourth = 6
	DiminishedFifth = 6
	PerfectFifth    = 7
	MinorSixth      = 8
	MajorSixth      = 9
	MinorSeventh    = 10
	MajorSeventh    = 11
	Octave          = 12
)

type named struct {
	name      string
	shorthand string
	semitones int
}

// Declaration order settles ties: augmented 4th is the canonical name
// for 6 semitones.
var table = []named{
	{"unison", "P1", Unison},
	{"minor 2nd", "m2", MinorSecond},
	{"major 2nd", "M2", MajorSecond},
	{"minor 3rd", "m3", MinorThird},
	{"major 3rd", "M3", MajorThird},
	{"perfect 4th", "P4", PerfectFourth},
	{"augmented 4th", "A4", AugmentedFourth},
	{"diminished 5th", "d5", DiminishedFifth},
	{"perfect 5th", "P5", PerfectFifth},
	{"minor 6th", "m6", MinorSixth},
	{"major 6th", "M6", MajorSixth},
	{"minor 7th", "m7", MinorSeventh},
	{"major 7th", "M7", MajorSeventh},
	{"octave", "P8", Octave},
}

// built once from table
var (
	semitonesByName  = make(map[string]int, len(table))
	shorthandByName  = make(map[string]string, len(table))
	semitonesByShort = make(map[string]int, len(table))
	namesBySemitones = make(map[int][]string)
)

func init() {
	for _, n := range table {
		semitonesByName[n.name] = n.semitones
		shorthandByName[n.name] = n.shorthand
		semitonesByShort[n.shorthand] = n.semitones
		namesBySemitones[n.semitones] = append(namesBySemitones[n.semitones], n.name)
	}
}

// Names lists every interval name in declaration order.
func Names() []string {
	names := make([]string, 0, len(table))
	for _, n := range table {
		names = append(names, n.name)
	}
	return names
}

// NameOf returns the canonical name of a semitone distance.
func NameOf(distance int) (string, bool) {
	names, ok := namesBySemitones[distance]
	if !ok {
		return "", false
	}
	return names[0], true
}

// AlternateNames returns the names that share distance with the canonical
// one. Only 6 has any.
func AlternateNames(distance int) []string {
	names := namesBySemitones[distance]
	if len(names) < 2 {
		return nil
	}
	return slices.Clone(names[1:])
}

func Semitones(name string) (int, bool) {
	s, ok := semitonesByName[name]
	return s, ok
}

func Shorthand(name string) (string, bool) {
	s, ok := shorthandByName[name]
	return s, ok
}

// ParseShorthand resolves "M3", "d5", "P8" and friends to semitones.
func ParseShorthand(shorthand string) (int, bool) {
	s, ok := semitonesByShort[shorthand]
	return s, ok
}
