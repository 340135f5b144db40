package constants

import (
	"os"
	"strconv"
	"strings"
)

func GetAddr() string {
	addr := os.Getenv("FRETWORK_ADDR")
	if addr != "" {
		return addr
	}
	return ":8080"
}

func GetLogLevel() string {
	level := os.Getenv("FRETWORK_LOG_LEVEL")
	if level != "" {
		return level
	}
	return "info"
}

// GetCorsOrigins reads a comma separated list of allowed origins.
func GetCorsOrigins() []string {
	raw := os.Getenv("FRETWORK_CORS_ORIGINS")
	if raw == "" {
		return []string{"*"}
	}
	var origins []string
	for _, o := range strings.Split(raw, ",") {
		if o = strings.TrimSpace(o); o != "" {
			origins = append(origins, o)
		}
	}
	return origins
}

// GetFrets falls back to DefaultFrets when the variable is unset or junk.
func GetFrets() int {
	frets, err := strconv.Atoi(os.Getenv("FRETWORK_FRETS"))
	if err != nil || frets < 1 || frets > MaxFrets {
		return DefaultFrets
	}
	return frets
}

// A4
const ReferencePitch = 440.0

const (
	MinOctave = 0
	MaxOctave = 9
)

const MaxAccidentals = 3

const DefaultFrets = 24

// a string walked up from C0 runs out of octaves after this many notes
const MaxFrets = (MaxOctave - MinOctave + 1) * NumPitchClasses

const NumPitchClasses = 12
