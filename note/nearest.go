package note

import (
	"fmt"
	"math"
	"strconv"

	"github.com/jsphweid/fretwork/constants"
	"github.com/jsphweid/fretwork/pitch"
	"github.com/jsphweid/fretwork/util"
	"gonum.org/v1/gonum/floats/scalar"
)

// Nearest finds the equal-tempered note closest to freq and how far freq
// sits from it in cents.
func Nearest(freq float64) (Note, float64, error) {
	if freq <= 0 || math.IsInf(freq, 0) || math.IsNaN(freq) {
		return Note{}, 0, fmt.Errorf("%w: frequency %v", ErrInvalidNoteName, freq)
	}

	a, _ := pitch.Index("A")
	// semitones above C4
	semis := int(math.Round(constants.NumPitchClasses*math.Log2(freq/constants.ReferencePitch))) + a
	index := util.PosMod(semis, constants.NumPitchClasses)
	octave := 4 + util.FloorDiv(semis, constants.NumPitchClasses)
	if octave < constants.MinOctave || octave > constants.MaxOctave {
		return Note{}, 0, fmt.Errorf("%w: %v Hz lands in octave %d", ErrInvalidOctave, freq, octave)
	}

	n, err := New(pitch.Name(index) + strconv.Itoa(octave))
	if err != nil {
		return Note{}, 0, err
	}

	// measured against the unrounded frequency of n
	exact := constants.ReferencePitch * math.Pow(2, float64(semis-a)/constants.NumPitchClasses)
	cents := scalar.Round(1200*math.Log2(freq/exact), 2)
	return n, cents, nil
}
