package note

import "fmt"

// Letter is one of the seven natural letter names, A through G.
type Letter int

// The seven letter names in alphabetical order. G wraps back to A.
const (
	A Letter = iota
	B
	C
	D
	E
	F
	G
)

// letterPitch maps each Letter to the pitch class of its natural note,
// with C = 0 up to B = 11.
var letterPitch = [7]int{9, 11, 0, 2, 4, 5, 7}

// ParseLetter converts a single byte 'A'..'G' into a Letter.
func ParseLetter(c byte) (Letter, error) {
	if c < 'A' || c > 'G' {
		return 0, fmt.Errorf("%w: %q", ErrBadLetter, string(c))
	}

	return Letter(c - 'A'), nil
}

// String returns the letter name, "A" through "G".
func (l Letter) String() string {
	return string(rune('A' + l))
}

// Step returns the letter n alphabetical steps above l, wrapping G to A.
// Step(0) is l itself; n must be non-negative.
func (l Letter) Step(n int) Letter {
	return Letter((int(l) + n) % 7)
}

// PitchClass returns the pitch class (0..11, C = 0) of the natural note
// named by l.
func (l Letter) PitchClass() int {
	return letterPitch[l]
}

// Accidental is a chromatic alteration applied to a letter name.
// Its integer value is the signed semitone offset.
type Accidental int

const (
	DoubleFlat  Accidental = -2
	Flat        Accidental = -1
	Natural     Accidental = 0
	Sharp       Accidental = 1
	DoubleSharp Accidental = 2
)

// accidentalSuffix maps DoubleFlat..DoubleSharp to display suffixes.
var accidentalSuffix = [5]string{"bb", "b", "", "#", "##"}

// ParseAccidental converts a suffix ("", "#", "##", "b", "bb") into an Accidental.
func ParseAccidental(s string) (Accidental, error) {
	for a := DoubleFlat; a <= DoubleSharp; a++ {
		if s == accidentalSuffix[a-DoubleFlat] {
			return a, nil
		}
	}

	return 0, fmt.Errorf("%w: %q", ErrBadAccidental, s)
}

// String returns the display suffix for a: "bb", "b", "", "#" or "##".
func (a Accidental) String() string {
	if a < DoubleFlat || a > DoubleSharp {
		return fmt.Sprintf("Accidental(%d)", int(a))
	}

	return accidentalSuffix[a-DoubleFlat]
}

// Note is an immutable spelled pitch: a letter name plus an accidental.
// The zero value is A natural. Two Notes are equal (Go ==) exactly when
// both letter and accidental match; use Enharmonic for sounds-alike
// comparison across spellings.
type Note struct {
	letter     Letter
	accidental Accidental
}

// New builds a Note from a letter and an accidental, rejecting values
// outside their legal ranges.
func New(l Letter, a Accidental) (Note, error) {
	if l < A || l > G {
		return Note{}, fmt.Errorf("%w: %d", ErrBadLetter, int(l))
	}
	if a < DoubleFlat || a > DoubleSharp {
		return Note{}, fmt.Errorf("%w: %d", ErrBadAccidental, int(a))
	}

	return Note{letter: l, accidental: a}, nil
}

// Parse builds a Note from its display name: a letter 'A'..'G' followed by
// an optional accidental suffix, e.g. "E", "F#", "Bb", "C##", "Dbb".
func Parse(name string) (Note, error) {
	if name == "" {
		return Note{}, fmt.Errorf("%w: empty name", ErrBadNoteName)
	}
	l, err := ParseLetter(name[0])
	if err != nil {
		return Note{}, fmt.Errorf("%w: %q", ErrBadNoteName, name)
	}
	a, err := ParseAccidental(name[1:])
	if err != nil {
		return Note{}, fmt.Errorf("%w: %q", ErrBadNoteName, name)
	}

	return Note{letter: l, accidental: a}, nil
}

// MustParse is Parse for tests and static data; it panics on a malformed name.
func MustParse(name string) Note {
	n, err := Parse(name)
	if err != nil {
		panic(err)
	}

	return n
}

// Letter returns the note's letter name.
func (n Note) Letter() Letter { return n.letter }

// Accidental returns the note's accidental.
func (n Note) Accidental() Accidental { return n.accidental }

// Name returns the canonical display name, letter plus accidental suffix.
func (n Note) Name() string {
	return n.letter.String() + n.accidental.String()
}

// String implements fmt.Stringer as an alias for Name.
func (n Note) String() string { return n.Name() }

// PitchClass returns the note's pitch class (0..11, C = 0). Accidentals
// wrap around the octave, so Cb is 11 and B# is 0.
func (n Note) PitchClass() int {
	return (n.letter.PitchClass() + int(n.accidental) + 12) % 12
}

// Enharmonic reports whether n and o sound the same pitch class,
// regardless of spelling. E.g. C# and Db are enharmonic but not equal.
func (n Note) Enharmonic(o Note) bool {
	return n.PitchClass() == o.PitchClass()
}
