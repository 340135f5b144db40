package model

import (
	"github.com/jsphweid/fretwork/chord"
	"github.com/jsphweid/fretwork/note"
)

type NoteResponse struct {
	note.Note
	MIDIKey *uint8 `json:"midi_key,omitempty"`
}

type NearestResponse struct {
	Note  note.Note `json:"note"`
	Cents float64   `json:"cents"`
}

type ChordResponse struct {
	chord.Chord
	Key string `json:"key"`
}

type FretboardResponse struct {
	Tuning  []string   `json:"tuning"`
	Frets   int        `json:"frets"`
	Strings [][]string `json:"strings"`
}

type SearchRequestBody struct {
	Notes []string `json:"notes"`
}

type SearchResponse struct {
	Notes      []string      `json:"notes"`
	NumMatches int           `json:"num_matches"`
	Matches    []chord.Match `json:"matches"`
}

type ErrorResponse struct {
	Error string `json:"detail"`
}
