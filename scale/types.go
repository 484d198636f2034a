package scale

import "fmt"

// Quality is the closed set of supported scale qualities. Parsing happens
// once at the boundary (ParseQuality); everything past it dispatches on the
// enum, so an unsupported quality can never reach scale construction.
type Quality int

const (
	Major Quality = iota
	NaturalMinor
	HarmonicMinor
	MelodicMinor
)

// qualityNames holds the canonical uppercase spelling of each Quality.
var qualityNames = [...]string{
	Major:         "MAJOR",
	NaturalMinor:  "NATURAL MINOR",
	HarmonicMinor: "HARMONIC MINOR",
	MelodicMinor:  "MELODIC MINOR",
}

// ParseQuality converts a canonical quality name ("MAJOR",
// "HARMONIC MINOR", …) into a Quality. Names are case-sensitive.
func ParseQuality(name string) (Quality, error) {
	for q, qn := range qualityNames {
		if name == qn {
			return Quality(q), nil
		}
	}

	return 0, fmt.Errorf("%w: %q", ErrUnknownQuality, name)
}

// String returns the canonical uppercase name of q.
func (q Quality) String() string {
	if q < Major || q > MelodicMinor {
		return fmt.Sprintf("Quality(%d)", int(q))
	}

	return qualityNames[q]
}

// Minor reports whether q is one of the minor qualities. All three minor
// qualities of a tonic share one key signature.
func (q Quality) Minor() bool {
	return q == NaturalMinor || q == HarmonicMinor || q == MelodicMinor
}

// Diatonic reports whether q yields a seven-note scale with classical
// degree names. Every currently supported quality does; the predicate
// keeps degree access honest should a non-diatonic quality join the enum.
func (q Quality) Diatonic() bool {
	switch q {
	case Major, NaturalMinor, HarmonicMinor, MelodicMinor:
		return true
	default:
		return false
	}
}

// Degree names a position within a seven-note diatonic scale,
// Tonic (0) through LeadingTone (6).
type Degree int

const (
	Tonic Degree = iota
	Supertonic
	Mediant
	Subdominant
	Dominant
	Submediant
	LeadingTone
)

// degreeNames holds the canonical uppercase spelling of each Degree.
var degreeNames = [...]string{
	Tonic:       "TONIC",
	Supertonic:  "SUPERTONIC",
	Mediant:     "MEDIANT",
	Subdominant: "SUBDOMINANT",
	Dominant:    "DOMINANT",
	Submediant:  "SUBMEDIANT",
	LeadingTone: "LEADING TONE",
}

// ParseDegree converts a canonical degree name ("TONIC", "LEADING TONE", …)
// into a Degree. Names are case-sensitive; an unrecognized name fails with
// ErrInvalidDegree.
func ParseDegree(name string) (Degree, error) {
	for d, dn := range degreeNames {
		if name == dn {
			return Degree(d), nil
		}
	}

	return 0, fmt.Errorf("%w: unknown degree name %q", ErrInvalidDegree, name)
}

// String returns the canonical uppercase name of d.
func (d Degree) String() string {
	if d < Tonic || d > LeadingTone {
		return fmt.Sprintf("Degree(%d)", int(d))
	}

	return degreeNames[d]
}
