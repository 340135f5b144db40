package cmd

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/jsphweid/fretwork/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func newTestRouter(t *testing.T) (http.Handler, *observer.ObservedLogs) {
	t.Helper()
	t.Setenv("FRETWORK_CORS_ORIGINS", "")
	t.Setenv("FRETWORK_FRETS", "")
	core, logs := observer.New(zapcore.DebugLevel)
	return NewRouter(zap.New(core)), logs
}

func do(t *testing.T, h http.Handler, method, target, body string) *httptest.ResponseRecorder {
	t.Helper()
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, target, nil)
	} else {
		req = httptest.NewRequest(method, target, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	h.ServeHTTP(w, req)
	return w
}

func decode[T any](t *testing.T, w *httptest.ResponseRecorder) T {
	t.Helper()
	var v T
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &v))
	return v
}

func TestGetNote(t *testing.T) {
	h, logs := newTestRouter(t)
	w := do(t, h, http.MethodGet, "/notes/A4", "")

	assert := assert.New(t)
	assert.Equal(http.StatusOK, w.Code)
	assert.Equal("application/json", w.Header().Get("Content-Type"))

	res := decode[model.NoteResponse](t, w)
	assert.Equal("A4", res.Name)
	assert.Equal(440.0, res.Freq)
	require.NotNil(t, res.MIDIKey)
	assert.Equal(uint8(69), *res.MIDIKey)

	_, err := uuid.Parse(w.Header().Get(requestIDHeader))
	assert.NoError(err)

	entries := logs.FilterMessage("request").All()
	require.Len(t, entries, 1)
	fields := entries[0].ContextMap()
	assert.Equal("/notes/A4", fields["path"])
	assert.Equal(int64(http.StatusOK), fields["status"])
}

func TestGetNoteWithSharp(t *testing.T) {
	h, _ := newTestRouter(t)
	w := do(t, h, http.MethodGet, "/notes/C%234", "")
	require.Equal(t, http.StatusOK, w.Code)

	res := decode[model.NoteResponse](t, w)
	assert.Equal(t, "C#4", res.Name)
	require.NotNil(t, res.EnharmonicNote)
	assert.Equal(t, "Db4", res.EnharmonicNote.Name)
}

func TestGetNoteRejectsBadName(t *testing.T) {
	h, logs := newTestRouter(t)
	w := do(t, h, http.MethodGet, "/notes/H4", "")

	assert.Equal(t, http.StatusBadRequest, w.Code)
	res := decode[model.ErrorResponse](t, w)
	assert.Contains(t, res.Error, "invalid note name")
	assert.Equal(t, 1, logs.FilterMessage("rejected request").Len())
}

func TestRequestIDIsEchoed(t *testing.T) {
	h, _ := newTestRouter(t)
	req := httptest.NewRequest(http.MethodGet, "/notes/E2", nil)
	req.Header.Set(requestIDHeader, "abc-123")
	w := httptest.NewRecorder()
	h.ServeHTTP(w, req)
	assert.Equal(t, "abc-123", w.Header().Get(requestIDHeader))
}

func TestCorsAllowsConfiguredOrigins(t *testing.T) {
	h, _ := newTestRouter(t)
	req := httptest.NewRequest(http.MethodGet, "/notes/E2", nil)
	req.Header.Set("Origin", "http://example.com")
	w := httptest.NewRecorder()
	h.ServeHTTP(w, req)
	assert.Equal(t, "*", w.Header().Get("Access-Control-Allow-Origin"))
}

func TestGetInterval(t *testing.T) {
	h, _ := newTestRouter(t)
	cases := []struct {
		query string
		want  string
		name  string
	}{
		{"root=C4&distance=M3", "E4", "major 3rd"},
		{"root=C4&distance=7&direction=down", "F3", "perfect 5th"},
		{"root=C%234&distance=2&flats=true", "Eb4", "major 2nd"},
		{"root=E4&distance=d5", "A#4", "augmented 4th"},
		{"root=C4&distance=major+6th", "A4", "major 6th"},
	}
	for _, tc := range cases {
		t.Run(tc.query, func(t *testing.T) {
			w := do(t, h, http.MethodGet, "/intervals?"+tc.query, "")
			require.Equal(t, http.StatusOK, w.Code, w.Body.String())

			var res struct {
				Name string `json:"name"`
				Note struct {
					Name string `json:"name"`
				} `json:"note"`
			}
			require.NoError(t, json.Unmarshal(w.Body.Bytes(), &res))
			assert.Equal(t, tc.want, res.Note.Name)
			assert.Equal(t, tc.name, res.Name)
		})
	}
}

func TestGetIntervalRejectsBadQuery(t *testing.T) {
	h, _ := newTestRouter(t)
	for _, query := range []string{
		"root=C4&distance=13",
		"root=C4&distance=M9",
		"root=C4&distance=2&direction=sideways",
		"root=C4&distance=2&flats=maybe",
		"root=C0&distance=2&direction=down",
		"distance=2",
	} {
		w := do(t, h, http.MethodGet, "/intervals?"+query, "")
		assert.Equal(t, http.StatusBadRequest, w.Code, query)
	}
}

func TestGetScale(t *testing.T) {
	h, _ := newTestRouter(t)
	w := do(t, h, http.MethodGet, "/scales/A4/minor-pentatonic", "")
	require.Equal(t, http.StatusOK, w.Code)

	var res struct {
		Name  string `json:"name"`
		Notes []struct {
			Name string `json:"name"`
		} `json:"notes"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &res))
	assert.Equal(t, "Minor Pentatonic", res.Name)

	var names []string
	for _, n := range res.Notes {
		names = append(names, n.Name)
	}
	assert.Equal(t, []string{"A4", "C5", "D5", "E5", "G5"}, names)

	w = do(t, h, http.MethodGet, "/scales/C4/dorian", "")
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestGetChord(t *testing.T) {
	h, _ := newTestRouter(t)
	w := do(t, h, http.MethodGet, "/chords/C4/major", "")
	require.Equal(t, http.StatusOK, w.Code)

	var res struct {
		Quality string `json:"quality"`
		Key     string `json:"key"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &res))
	assert.Equal(t, "major", res.Quality)
	assert.Equal(t, "60-64-67", res.Key)

	w = do(t, h, http.MethodGet, "/chords/C4/power", "")
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestGetFretboard(t *testing.T) {
	h, _ := newTestRouter(t)
	w := do(t, h, http.MethodGet, "/fretboard?frets=10", "")
	require.Equal(t, http.StatusOK, w.Code)

	res := decode[model.FretboardResponse](t, w)
	assert := assert.New(t)
	assert.Equal([]string{"E2", "A2", "D3", "G3", "B3", "E4"}, res.Tuning)
	assert.Equal(10, res.Frets)
	assert.Equal([]string{"E2", "F2", "F#2", "G2", "G#2", "A2", "A#2", "B2", "C3", "C#3"}, res.Strings[0])

	w = do(t, h, http.MethodGet, "/fretboard?tuning=D2,A2&frets=3", "")
	require.Equal(t, http.StatusOK, w.Code)
	res = decode[model.FretboardResponse](t, w)
	assert.Equal([][]string{{"D2", "D#2", "E2"}, {"A2", "A#2", "B2"}}, res.Strings)

	w = do(t, h, http.MethodGet, "/fretboard", "")
	require.Equal(t, http.StatusOK, w.Code)
	res = decode[model.FretboardResponse](t, w)
	assert.Len(res.Strings[0], 24)

	for _, query := range []string{"tuning=banjo", "frets=0", "frets=lots", "frets=121", "frets=1099511627776", "tuning=E2,X2"} {
		w := do(t, h, http.MethodGet, "/fretboard?"+query, "")
		assert.Equal(http.StatusBadRequest, w.Code, query)
	}
}

func TestSearch(t *testing.T) {
	h, _ := newTestRouter(t)
	w := do(t, h, http.MethodPost, "/search", `{"notes": ["E4", "G4", "C5"]}`)
	require.Equal(t, http.StatusOK, w.Code)

	res := decode[model.SearchResponse](t, w)
	assert := assert.New(t)
	assert.Equal(1, res.NumMatches)
	assert.Equal("C major", res.Matches[0].Name)
	assert.False(res.Matches[0].RootInBass)

	w = do(t, h, http.MethodPost, "/search", `{"notes": ["C4", "C#4"]}`)
	require.Equal(t, http.StatusOK, w.Code)
	res = decode[model.SearchResponse](t, w)
	assert.Equal(0, res.NumMatches)
	assert.NotNil(res.Matches)
}

func TestSearchRejectsBadBodies(t *testing.T) {
	h, _ := newTestRouter(t)
	for _, body := range []string{`{"notes": []}`, `{"notes": ["C4", "Z9"]}`, `not json`} {
		w := do(t, h, http.MethodPost, "/search", body)
		assert.Equal(t, http.StatusBadRequest, w.Code, body)
	}

	w := do(t, h, http.MethodGet, "/search", "")
	assert.Equal(t, http.StatusMethodNotAllowed, w.Code)
}

func TestUnknownRoute(t *testing.T) {
	h, _ := newTestRouter(t)
	w := do(t, h, http.MethodGet, "/nowhere", "")
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Contains(t, decode[model.ErrorResponse](t, w).Error, "/nowhere")
}

func TestGetNearest(t *testing.T) {
	h, _ := newTestRouter(t)
	w := do(t, h, http.MethodGet, "/nearest?freq=440", "")
	require.Equal(t, http.StatusOK, w.Code)

	res := decode[model.NearestResponse](t, w)
	assert.Equal(t, "A4", res.Note.Name)
	assert.Equal(t, 0.0, res.Cents)

	for _, query := range []string{"freq=abc", "freq=-1", ""} {
		w := do(t, h, http.MethodGet, "/nearest?"+query, "")
		assert.Equal(t, http.StatusBadRequest, w.Code, query)
	}
}
