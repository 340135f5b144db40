package cmd

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"
	"github.com/jsphweid/fretwork/chord"
	"github.com/jsphweid/fretwork/constants"
	"github.com/jsphweid/fretwork/fretboard"
	"github.com/jsphweid/fretwork/interval"
	"github.com/jsphweid/fretwork/model"
	"github.com/jsphweid/fretwork/note"
	"github.com/jsphweid/fretwork/pitch"
	"github.com/jsphweid/fretwork/scale"
	"go.uber.org/zap"
)

var errBadRequest = errors.New("bad request")

// errors caused by the caller's input
var clientErrors = []error{
	errBadRequest,
	note.ErrInvalidNoteName,
	note.ErrInvalidOctave,
	note.ErrInvalidAccidental,
	note.ErrTypeMismatch,
	pitch.ErrInvalidBaseNote,
	pitch.ErrUnknownKey,
	interval.ErrInvalidIntervalDistance,
	interval.ErrInvalidDirection,
	interval.ErrUnknownInterval,
	scale.ErrUnknownScaleType,
	chord.ErrUnknownQuality,
	fretboard.ErrInvalidFretCount,
	fretboard.ErrUnknownTuning,
	fretboard.ErrOutOfRange,
}

func statusFor(err error) int {
	for _, target := range clientErrors {
		if errors.Is(err, target) {
			return http.StatusBadRequest
		}
	}
	return http.StatusInternalServerError
}

type handlers struct {
	log *zap.Logger
}

func (h *handlers) writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		h.log.Error("encoding response", zap.Error(err))
	}
}

func (h *handlers) writeError(w http.ResponseWriter, r *http.Request, err error) {
	status := statusFor(err)
	if status < http.StatusInternalServerError {
		h.log.Warn("rejected request", zap.String("path", r.URL.Path), zap.Error(err))
	} else {
		h.log.Error("request failed", zap.String("path", r.URL.Path), zap.Error(err))
	}
	h.writeJSON(w, status, model.ErrorResponse{Error: err.Error()})
}

func (h *handlers) handleNotFound(w http.ResponseWriter, r *http.Request) {
	h.writeJSON(w, http.StatusNotFound, model.ErrorResponse{Error: "not found: " + r.URL.Path})
}

func (h *handlers) handleNote(w http.ResponseWriter, r *http.Request) {
	n, err := note.New(mux.Vars(r)["name"])
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	res := model.NoteResponse{Note: n}
	if key, ok := n.MIDIKey(); ok {
		res.MIDIKey = &key
	}
	h.writeJSON(w, http.StatusOK, res)
}

func (h *handlers) handleNearest(w http.ResponseWriter, r *http.Request) {
	s := r.URL.Query().Get("freq")
	freq, err := strconv.ParseFloat(s, 64)
	if err != nil {
		h.writeError(w, r, fmt.Errorf("%w: freq %q", errBadRequest, s))
		return
	}
	n, cents, err := note.Nearest(freq)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	h.writeJSON(w, http.StatusOK, model.NearestResponse{Note: n, Cents: cents})
}

func (h *handlers) handleInterval(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	root, err := note.New(q.Get("root"))
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	distance, err := interval.Parse(q.Get("distance"))
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	dir := interval.Up
	if s := q.Get("direction"); s != "" {
		if dir, err = interval.ParseDirection(s); err != nil {
			h.writeError(w, r, err)
			return
		}
	}
	var useFlats bool
	if s := q.Get("flats"); s != "" {
		if useFlats, err = strconv.ParseBool(s); err != nil {
			h.writeError(w, r, fmt.Errorf("%w: flats %q", errBadRequest, s))
			return
		}
	}

	iv, err := interval.New(root, distance, dir, useFlats)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	h.writeJSON(w, http.StatusOK, iv)
}

func (h *handlers) handleScale(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	root, err := note.New(vars["root"])
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	t, err := scale.ParseType(vars["type"])
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	s, err := scale.New(root, t)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	h.writeJSON(w, http.StatusOK, s)
}

func (h *handlers) handleChord(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	root, err := note.New(vars["root"])
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	q, err := chord.ParseQuality(vars["quality"])
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	c, err := chord.FromQuality(root, q)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	h.writeJSON(w, http.StatusOK, model.ChordResponse{Chord: c, Key: c.Key()})
}

func (h *handlers) handleFretboard(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	name := q.Get("tuning")
	if name == "" {
		name = "guitar"
	}
	tuning, err := parseTuning(name)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	frets := constants.GetFrets()
	if s := q.Get("frets"); s != "" {
		if frets, err = strconv.Atoi(s); err != nil {
			h.writeError(w, r, fmt.Errorf("%w: frets %q", errBadRequest, s))
			return
		}
	}

	fb, err := fretboard.New(tuning, frets)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	res := model.FretboardResponse{Frets: fb.Frets, Strings: fb.Names()}
	for _, n := range fb.Tuning {
		res.Tuning = append(res.Tuning, n.Name)
	}
	h.writeJSON(w, http.StatusOK, res)
}

func (h *handlers) handleSearch(w http.ResponseWriter, r *http.Request) {
	var input model.SearchRequestBody
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		h.writeError(w, r, fmt.Errorf("%w: %v", errBadRequest, err))
		return
	}
	if len(input.Notes) == 0 {
		h.writeError(w, r, fmt.Errorf("%w: no notes", errBadRequest))
		return
	}

	notes := make([]note.Note, 0, len(input.Notes))
	for _, name := range input.Notes {
		n, err := note.New(name)
		if err != nil {
			h.writeError(w, r, err)
			return
		}
		notes = append(notes, n)
	}

	matches := chord.Identify(notes)
	if matches == nil {
		matches = make([]chord.Match, 0)
	}
	res := model.SearchResponse{
		Notes:      input.Notes,
		NumMatches: len(matches),
		Matches:    matches,
	}
	h.writeJSON(w, http.StatusOK, res)
}
