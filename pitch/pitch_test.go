package pitch

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIndex(t *testing.T) {
	cases := map[string]int{"C": 0, "C#": 1, "E": 4, "F": 5, "A": 9, "B": 11}
	for name, want := range cases {
		t.Run(name, func(t *testing.T) {
			got, err := Index(name)
			require.NoError(t, err)
			assert.Equal(t, want, got)
		})
	}
}

func TestIndexRejectsUnknownBase(t *testing.T) {
	for _, name := range []string{"H", "Db", "c", ""} {
		_, err := Index(name)
		assert.ErrorIs(t, err, ErrInvalidBaseNote, name)
	}
}

func TestClassesAreChromatic(t *testing.T) {
	assert := assert.New(t)
	assert.Len(Classes(), 12)
	for i, name := range Classes() {
		assert.Equal(name, Name(i))
	}
}

func TestNameWrapsOutOfRangeIndexes(t *testing.T) {
	assert := assert.New(t)
	assert.Equal("C", Name(12))
	assert.Equal("B", Name(-1))
	assert.Equal("A", Name(-3))
	assert.Equal("D#", Name(27))
}

func TestEnharmonicMapsAreInverse(t *testing.T) {
	for _, sharp := range []string{"C#", "D#", "F#", "G#", "A#"} {
		flat, ok := Flat(sharp)
		require.True(t, ok, sharp)
		back, ok := Sharp(flat)
		require.True(t, ok, flat)
		assert.Equal(t, sharp, back)
	}

	f, _ := Flat("B#")
	assert.Equal(t, "C", f)
	s, _ := Sharp("Fb")
	assert.Equal(t, "E", s)

	_, ok := Flat("D")
	assert.False(t, ok)
}

func TestUsesFlats(t *testing.T) {
	assert := assert.New(t)
	assert.True(UsesFlats("Bb"))
	assert.True(UsesFlats("F"))
	assert.True(UsesFlats("Cb"))
	assert.False(UsesFlats("C"))
	assert.False(UsesFlats("A#"))
}

func TestKeySignature(t *testing.T) {
	cases := []struct {
		root string
		want Signature
	}{
		{"C", NoAccidentals},
		{"G", Sharps},
		{"C#", Sharps},
		{"F", Flats},
		{"Gb", Flats},
	}
	for _, tc := range cases {
		got, err := KeySignature(tc.root)
		require.NoError(t, err)
		assert.Equal(t, tc.want, got, tc.root)
	}

	_, err := KeySignature("A#")
	assert.ErrorIs(t, err, ErrUnknownKey)
	assert.Equal(t, "flats", Flats.String())
}

func TestKeySetsAreCopies(t *testing.T) {
	keys := FlatKeys()
	keys[0] = "X"
	assert.Equal(t, "F", FlatKeys()[0])
	assert.Len(t, SharpKeys(), 7)
}
