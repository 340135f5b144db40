package note

import (
	"go.uber.org/zap"
)

var invalid = Note{PitchClass: "", Octave: -1, Freq: -999, Index: -1}

// Invalid is the placeholder handed out by Lenient when a name does not
// parse. Older callers test for Octave == -1 or Freq == -999.
func Invalid() Note {
	return invalid
}

// Lenient never fails: a bad name is logged and Invalid is returned in its
// place. New should be preferred everywhere the caller can handle an error.
func Lenient(name string, log *zap.Logger) Note {
	n, err := New(name)
	if err != nil {
		if log == nil {
			log = zap.L()
		}
		log.Error("note construction failed", zap.String("name", name), zap.Error(err))
		return invalid
	}
	return n
}
