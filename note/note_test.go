package note_test

import (
	"testing"

	"github.com/katalvlaran/solfege/note"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestParse_RoundTrip verifies that every legal letter/accidental pairing
// parses from its display name and renders back to the same name.
func TestParse_RoundTrip(t *testing.T) {
	letters := []string{"A", "B", "C", "D", "E", "F", "G"}
	suffixes := []string{"", "#", "##", "b", "bb"}

	for _, l := range letters {
		for _, s := range suffixes {
			name := l + s
			n, err := note.Parse(name)
			require.NoError(t, err, "parse %q", name)
			assert.Equal(t, name, n.Name(), "round trip %q", name)
		}
	}
}

// TestParse_Malformed ensures malformed names return ErrBadNoteName and
// never produce a Note.
func TestParse_Malformed(t *testing.T) {
	for _, name := range []string{"", "H", "a", "C#b", "Bbbb", "F###", "C major", "#C"} {
		_, err := note.Parse(name)
		assert.ErrorIs(t, err, note.ErrBadNoteName, "name %q must not parse", name)
	}
}

// TestNew_RangeChecks ensures New rejects out-of-range letters and accidentals.
func TestNew_RangeChecks(t *testing.T) {
	_, err := note.New(note.Letter(7), note.Natural)
	assert.ErrorIs(t, err, note.ErrBadLetter)

	_, err = note.New(note.C, note.Accidental(3))
	assert.ErrorIs(t, err, note.ErrBadAccidental)

	n, err := note.New(note.F, note.Sharp)
	require.NoError(t, err)
	assert.Equal(t, "F#", n.Name())
}

// TestEquality_IsSpellingExact verifies that equality is letter+accidental
// identity, not enharmonic pitch identity.
func TestEquality_IsSpellingExact(t *testing.T) {
	cSharp := note.MustParse("C#")
	dFlat := note.MustParse("Db")

	assert.NotEqual(t, cSharp, dFlat, "C# and Db are distinct spellings")
	assert.Equal(t, cSharp, note.MustParse("C#"), "same spelling compares equal")
}

// TestPitchClass verifies the C=0..B=11 numbering, including octave wrap
// for Cb and B#.
func TestPitchClass(t *testing.T) {
	cases := map[string]int{
		"C": 0, "C#": 1, "D": 2, "Eb": 3, "E": 4, "F": 5,
		"F#": 6, "G": 7, "G#": 8, "A": 9, "Bb": 10, "B": 11,
		"Cb": 11, "B#": 0, "E#": 5, "Fb": 4, "F##": 7, "Dbb": 0,
	}
	for name, want := range cases {
		assert.Equal(t, want, note.MustParse(name).PitchClass(), "pitch class of %s", name)
	}
}

// TestEnharmonic confirms that enharmonic spellings compare as sounding
// alike while unrelated notes do not.
func TestEnharmonic(t *testing.T) {
	assert.True(t, note.MustParse("C#").Enharmonic(note.MustParse("Db")))
	assert.True(t, note.MustParse("F##").Enharmonic(note.MustParse("G")))
	assert.False(t, note.MustParse("C").Enharmonic(note.MustParse("D")))
}

// TestLetter_Step verifies alphabetical stepping with wrap-around at G.
func TestLetter_Step(t *testing.T) {
	assert.Equal(t, note.D, note.C.Step(1))
	assert.Equal(t, note.A, note.G.Step(1))
	assert.Equal(t, note.B, note.E.Step(4))
	assert.Equal(t, note.C, note.C.Step(7))
}
