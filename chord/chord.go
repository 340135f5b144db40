package chord

import (
	"fmt"
	"sort"

	"github.com/jsphweid/fretwork/interval"
	"github.com/jsphweid/fretwork/note"
	"github.com/jsphweid/fretwork/pitch"
	"gitlab.com/gomidi/midi/v2"
)

type Chord struct {
	Root      note.Note           `json:"root"`
	Quality   Quality             `json:"quality,omitempty"`
	Intervals []interval.Interval `json:"intervals"`
	Notes     []note.Note         `json:"notes"`
}

// New stacks the interval notes on top of root in the order given. Nothing
// is sorted or deduplicated.
func New(root note.Note, intervals []interval.Interval) (Chord, error) {
	if !root.Valid() {
		return Chord{}, fmt.Errorf("%w: root %q", note.ErrTypeMismatch, root.Name)
	}
	c := Chord{
		Root:      root,
		Intervals: append([]interval.Interval(nil), intervals...),
		Notes:     make([]note.Note, 0, len(intervals)+1),
	}
	c.Notes = append(c.Notes, root)
	for _, iv := range intervals {
		c.Notes = append(c.Notes, iv.Note)
	}
	return c, nil
}

// FromQuality builds the chord from the quality's formula. Roots in the
// flat-key set spell every tone with flats, as scales do.
func FromQuality(root note.Note, q Quality) (Chord, error) {
	formula, ok := Formula(q)
	if !ok {
		return Chord{}, fmt.Errorf("%w: %q", ErrUnknownQuality, q)
	}
	if !root.Valid() {
		return Chord{}, fmt.Errorf("%w: root %q", note.ErrTypeMismatch, root.Name)
	}

	useFlats := pitch.UsesFlats(root.Spelling())
	intervals := make([]interval.Interval, 0, len(formula))
	for _, d := range formula {
		iv, err := interval.New(root, d, interval.Up, useFlats)
		if err != nil {
			return Chord{}, err
		}
		intervals = append(intervals, iv)
	}

	c, err := New(root, intervals)
	if err != nil {
		return Chord{}, err
	}
	c.Quality = q
	return c, nil
}

// Names lists the chord tones in order.
func (c Chord) Names() []string {
	names := make([]string, len(c.Notes))
	for i, n := range c.Notes {
		names[i] = n.Name
	}
	return names
}

// MIDIKeys skips tones above the MIDI range.
func (c Chord) MIDIKeys() []uint8 {
	var keys []uint8
	for _, n := range c.Notes {
		if k, ok := n.MIDIKey(); ok {
			keys = append(keys, k)
		}
	}
	return keys
}

// Key identifies the voicing by its sorted MIDI keys, e.g. "60-64-67".
func (c Chord) Key() string {
	return CreateChordKey(c.MIDIKeys())
}

// Messages renders the chord as NoteOn messages for every tone followed by
// the matching NoteOff messages.
func (c Chord) Messages(channel, velocity uint8) []midi.Message {
	keys := c.MIDIKeys()
	msgs := make([]midi.Message, 0, 2*len(keys))
	for _, k := range keys {
		msgs = append(msgs, midi.NoteOn(channel, k, velocity))
	}
	for _, k := range keys {
		msgs = append(msgs, midi.NoteOff(channel, k))
	}
	return msgs
}

// CreateChordKey joins the values in ascending order with "-". The input
// slice is left untouched.
func CreateChordKey(notes []uint8) string {
	sorted := append([]uint8(nil), notes...)
	sort.Slice(sorted, func(i, j int) bool {
		return sorted[i] < sorted[j]
	})
	var res string
	for i, n := range sorted {
		res += fmt.Sprintf("%v", n)
		if i < len(sorted)-1 {
			res += "-"
		}
	}
	return res
}
