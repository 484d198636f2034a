package scale

// Reference data for tonic validation and key-signature derivation.
//
// The legal-tonic sets and the signature-number table are authoritative
// reference data, not derived values: they encode exactly those tonics
// whose seven-note spelling keeps the key signature free of double sharps
// and double flats. The two sets are deliberately asymmetric — G# appears
// as a minor tonic (five sharps) but not as a major tonic (G# major would
// need F##), while Cb works as a major tonic but not a minor one.
//
// Nothing in this file is ever written after initialization.

// majorTonics and minorTonics are the 15-element legal-tonic sets.
var (
	majorTonics = map[string]bool{
		"A": true, "B": true, "C": true, "D": true, "E": true, "F": true, "G": true,
		"C#": true, "F#": true,
		"Ab": true, "Bb": true, "Cb": true, "Db": true, "Eb": true, "Gb": true,
	}

	minorTonics = map[string]bool{
		"A": true, "B": true, "C": true, "D": true, "E": true, "F": true, "G": true,
		"A#": true, "D#": true, "G#": true, "C#": true, "F#": true,
		"Ab": true, "Eb": true, "Bb": true,
	}
)

// sharpOrder and flatOrder list the altered notes of sharp and flat
// signatures in the order they accumulate; a signature of magnitude n is
// the first n entries.
var (
	sharpOrder = [7]string{"F#", "C#", "G#", "D#", "A#", "E#", "B#"}
	flatOrder  = [7]string{"Bb", "Eb", "Ab", "Db", "Gb", "Cb", "Fb"}
)

// signatureNumbers maps each qualified tonic ("<TONIC> MAJOR" or
// "<TONIC> MINOR") to its signed signature number: positive counts sharps,
// negative counts flats, zero is all naturals. Harmonic and melodic minor
// share the natural minor's entry.
var signatureNumbers = map[string]int{
	"C MAJOR": 0, "G MAJOR": 1, "D MAJOR": 2, "A MAJOR": 3, "E MAJOR": 4, "B MAJOR": 5,
	"F# MAJOR": 6, "C# MAJOR": 7,
	"F MAJOR": -1, "Bb MAJOR": -2, "Eb MAJOR": -3, "Ab MAJOR": -4, "Db MAJOR": -5,
	"Gb MAJOR": -6, "Cb MAJOR": -7,

	"A MINOR": 0, "E MINOR": 1, "B MINOR": 2, "F# MINOR": 3, "C# MINOR": 4, "G# MINOR": 5,
	"D# MINOR": 6, "A# MINOR": 7,
	"D MINOR": -1, "G MINOR": -2, "C MINOR": -3, "F MINOR": -4, "Bb MINOR": -5,
	"Eb MINOR": -6, "Ab MINOR": -7,
}

// legalTonics returns the legal-tonic set for a quality: the minor set for
// any minor quality, the major set otherwise.
func legalTonics(q Quality) map[string]bool {
	if q.Minor() {
		return minorTonics
	}

	return majorTonics
}

// expandSignature turns a signature number into the ordered list of
// altered note names. The returned slice is freshly allocated; zero yields
// an empty list.
func expandSignature(num int) []string {
	switch {
	case num > 0:
		return append([]string(nil), sharpOrder[:num]...)
	case num < 0:
		return append([]string(nil), flatOrder[:-num]...)
	default:
		return []string{}
	}
}
