// Package scale builds correctly spelled musical scales and derives their
// key signatures.
//
// 🚀 What it does
//
//	Given a tonic and a quality — major, natural, harmonic or melodic
//	minor — the package produces:
//	  • the ordered seven-note spelling of the scale (tonic first)
//	  • the key signature (the sharped or flatted note names, in order)
//	  • named-degree access: tonic, supertonic, … leading tone
//	  • exact-spelling membership tests
//
// Spelling correctness is the contract. A D major scale contains F#, never
// Gb; a Gb major scale contains Cb, never B. Tonic/quality pairs whose key
// signature would need double accidentals (G# major, say) are rejected at
// construction with ErrInvalidTonic — there are exactly 15 legal major and
// 15 legal minor tonics, encoded as fixed reference data.
//
// ⚙️ Usage
//
//	import "github.com/katalvlaran/solfege/scale"
//
//	s, err := scale.New("F# HARMONIC MINOR")
//	if err != nil {
//	    // errors.Is(err, scale.ErrInvalidTonic) for unspellable requests
//	}
//	fmt.Println(s.Ascend())       // [F# G# A B C# D E#]
//	fmt.Println(s.KeySignature()) // [F# C# G#]
//	dom, _ := s.Degree(scale.Dominant)
//	fmt.Println(dom)              // C#
//
// Scales are immutable after construction and every package-level table is
// fixed reference data, so everything here is safe for unrestricted
// concurrent use with no locking.
package scale
