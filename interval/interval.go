package interval

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/solfege/note"
)

var (
	// ErrBadInterval indicates negative steps or semitones.
	ErrBadInterval = errors.New("interval: steps and semitones must be non-negative")

	// ErrUnspellable indicates the resolved note would need more than a
	// double sharp or double flat.
	ErrUnspellable = errors.New("interval: resolved note needs more than a double accidental")
)

// Interval is an ascending diatonic interval: Steps letter names and
// Semitones half steps above the root. Steps and Semitones must be
// non-negative; Steps of 7 or more denote compound intervals.
type Interval struct {
	Steps     int
	Semitones int
}

// The interval vocabulary within one octave.
var (
	PerfectUnison     = Interval{Steps: 0, Semitones: 0}
	MinorSecond       = Interval{Steps: 1, Semitones: 1}
	MajorSecond       = Interval{Steps: 1, Semitones: 2}
	MinorThird        = Interval{Steps: 2, Semitones: 3}
	MajorThird        = Interval{Steps: 2, Semitones: 4}
	PerfectFourth     = Interval{Steps: 3, Semitones: 5}
	AugmentedFourth   = Interval{Steps: 3, Semitones: 6}
	DiminishedFifth   = Interval{Steps: 4, Semitones: 6}
	PerfectFifth      = Interval{Steps: 4, Semitones: 7}
	AugmentedFifth    = Interval{Steps: 4, Semitones: 8}
	MinorSixth        = Interval{Steps: 5, Semitones: 8}
	MajorSixth        = Interval{Steps: 5, Semitones: 9}
	DiminishedSeventh = Interval{Steps: 6, Semitones: 9}
	MinorSeventh      = Interval{Steps: 6, Semitones: 10}
	MajorSeventh      = Interval{Steps: 6, Semitones: 11}
	PerfectOctave     = Interval{Steps: 7, Semitones: 12}
)

// Invert returns the inversion of iv within one octave: the interval that
// stacks on top of iv to complete an octave (major third → minor sixth,
// perfect fifth → perfect fourth, unison → octave). Defined for intervals
// no wider than an octave.
func (iv Interval) Invert() Interval {
	return Interval{Steps: 7 - iv.Steps, Semitones: 12 - iv.Semitones}
}

// Resolve returns the correctly spelled note iv above tonic.
//
// The target letter is the tonic's letter advanced iv.Steps names; the
// accidental is whatever closes the gap between iv.Semitones and the
// natural span of those letters. The result's pitch class therefore always
// sits exactly iv.Semitones above the tonic's, and its letter is fixed by
// the interval's degree — the two properties that make the spelling
// unambiguous.
//
// Errors:
//   - ErrBadInterval  — iv has negative Steps or Semitones.
//   - ErrUnspellable  — the gap exceeds a double accidental, e.g. an
//     augmented fifth above B#.
func Resolve(tonic note.Note, iv Interval) (note.Note, error) {
	if iv.Steps < 0 || iv.Semitones < 0 {
		return note.Note{}, fmt.Errorf("%w: %+v", ErrBadInterval, iv)
	}

	letter := tonic.Letter().Step(iv.Steps)
	span := naturalSpan(tonic.Letter(), letter, iv.Steps)
	accidental := tonic.Accidental() + note.Accidental(iv.Semitones-span)

	resolved, err := note.New(letter, accidental)
	if err != nil {
		return note.Note{}, fmt.Errorf("%w: %s + %d semitones over %d letters", ErrUnspellable, tonic.Name(), iv.Semitones, iv.Steps)
	}

	return resolved, nil
}

// naturalSpan is the semitone distance from letter `from` up to letter `to`
// across the natural notes, widened by an octave for every 7 letter steps.
func naturalSpan(from, to note.Letter, steps int) int {
	span := (to.PitchClass() - from.PitchClass() + 12) % 12

	return span + 12*(steps/7)
}
