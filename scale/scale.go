package scale

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/solfege/interval"
	"github.com/katalvlaran/solfege/note"
)

// degreeCount is the number of notes in a diatonic scale.
const degreeCount = 7

// Scale is an immutable seven-note scale: a validated tonic and quality,
// the ordered spelled notes (tonic first), and the derived key signature.
// Construction either succeeds with every field populated or fails without
// producing a Scale.
type Scale struct {
	tonic     note.Note
	quality   Quality
	notes     [degreeCount]note.Note
	signature []string
}

// New parses a scale name of the form "<TONIC> <QUALITY>" — "C MAJOR",
// "F# HARMONIC MINOR" — and builds the scale. The tonic is the first
// space-delimited token; the remainder is the quality, uppercase.
//
// Errors:
//   - ErrBadScaleName   — the name does not split into two tokens.
//   - ErrUnknownQuality — the quality token is not a supported quality.
//   - ErrInvalidTonic   — the tonic token is not a note name, or no scale
//     of the requested quality can be spelled from it.
func New(name string) (*Scale, error) {
	tonicTok, qualityTok, found := strings.Cut(name, " ")
	if !found || tonicTok == "" || qualityTok == "" {
		return nil, fmt.Errorf("%w: got %q", ErrBadScaleName, name)
	}

	quality, err := ParseQuality(qualityTok)
	if err != nil {
		return nil, err
	}

	tonic, err := note.Parse(tonicTok)
	if err != nil {
		return nil, fmt.Errorf("%w: %q is not a note name", ErrInvalidTonic, tonicTok)
	}

	return Build(tonic, quality)
}

// Build constructs the scale of the given quality on the given tonic.
//
// The tonic is first checked against the quality's legal-tonic set; the
// sets admit exactly those tonics whose key signature avoids double
// accidentals, so a rejected tonic (ErrInvalidTonic) may still be a valid
// note — it just cannot carry the requested scale. On success the notes
// are resolved through the interval table and the key signature is read
// from the registry; neither step can fail for a validated tonic, and a
// miss there surfaces as ErrRegistry.
func Build(tonic note.Note, quality Quality) (*Scale, error) {
	if !legalTonics(quality)[tonic.Name()] {
		return nil, fmt.Errorf(
			"%w: no %s scale can be spelled from %s without double accidentals in its key signature",
			ErrInvalidTonic, quality, tonic.Name())
	}

	s := &Scale{tonic: tonic, quality: quality}
	for i, iv := range qualityIntervals[quality] {
		n, err := interval.Resolve(tonic, iv)
		if err != nil {
			return nil, fmt.Errorf("%w: resolving degree %d of %s %s: %v", ErrRegistry, i+1, tonic.Name(), quality, err)
		}
		s.notes[i] = n
	}

	signature, err := keySignature(tonic, quality)
	if err != nil {
		return nil, err
	}
	s.signature = signature

	return s, nil
}

// keySignature derives the ordered altered-note list for a tonic/quality
// pair. All minor qualities collapse to one "<TONIC> MINOR" registry entry
// since they share a signature.
func keySignature(tonic note.Note, quality Quality) ([]string, error) {
	mode := " MAJOR"
	if quality.Minor() {
		mode = " MINOR"
	}
	qualified := tonic.Name() + mode

	num, ok := signatureNumbers[qualified]
	if !ok {
		return nil, fmt.Errorf("%w: no signature number for %s", ErrRegistry, qualified)
	}

	return expandSignature(num), nil
}

// Tonic returns the scale's tonic note.
func (s *Scale) Tonic() note.Note { return s.tonic }

// Quality returns the scale's quality.
func (s *Scale) Quality() Quality { return s.quality }

// Notes returns the seven notes of the scale in ascending order, tonic
// first. The array is a copy; the scale cannot be mutated through it.
func (s *Scale) Notes() [degreeCount]note.Note { return s.notes }

// Degree returns the note at a named degree. Degree names are only
// meaningful for diatonic qualities; any other quality, or a Degree
// outside Tonic..LeadingTone, fails with ErrInvalidDegree.
func (s *Scale) Degree(d Degree) (note.Note, error) {
	if !s.quality.Diatonic() {
		return note.Note{}, fmt.Errorf("%w: %s scales have no named degrees", ErrInvalidDegree, s.quality)
	}
	if d < Tonic || d > LeadingTone {
		return note.Note{}, fmt.Errorf("%w: %d is not a degree", ErrInvalidDegree, int(d))
	}

	return s.notes[d], nil
}

// DegreeNamed is Degree keyed by the canonical uppercase degree name,
// "TONIC" through "LEADING TONE". An unrecognized name fails with
// ErrInvalidDegree carrying the name.
func (s *Scale) DegreeNamed(name string) (note.Note, error) {
	d, err := ParseDegree(name)
	if err != nil {
		return note.Note{}, err
	}

	return s.Degree(d)
}

// Contains reports whether the scale contains a note with exactly the
// given spelling. Enharmonic equivalents do not count: a D major scale
// contains F# but not Gb.
func (s *Scale) Contains(n note.Note) bool {
	for _, sn := range s.notes {
		if sn == n {
			return true
		}
	}

	return false
}

// Ascend returns the display names of the scale's notes in ascending
// order, tonic first. The slice is freshly allocated on every call and
// repeated calls always yield the same seven names.
func (s *Scale) Ascend() []string {
	names := make([]string, degreeCount)
	for i, n := range s.notes {
		names[i] = n.Name()
	}

	return names
}

// KeySignature returns the ordered altered-note names of the scale's key
// signature; empty for C major and A minor. The slice is a fresh copy.
func (s *Scale) KeySignature() []string {
	return append([]string{}, s.signature...)
}

// String renders the scale as "<TONIC> <QUALITY>".
func (s *Scale) String() string {
	return s.tonic.Name() + " " + s.quality.String()
}
