// Package interval resolves diatonic intervals above a spelled tonic into
// correctly spelled notes.
//
// An Interval is a pair of a letter-step count and a semitone count: a
// major third spans 2 letters and 4 semitones, a minor third 2 letters and
// 3 semitones. Carrying both numbers is what makes spelling deterministic —
// 3 semitones above C is D# as an augmented second but Eb as a minor third,
// and only the letter-step count can tell the two apart.
//
// Resolve walks the letter alphabet and settles the accidental:
//
//	third, err := interval.Resolve(note.MustParse("Gb"), interval.MajorThird)
//	// third.Name() == "Bb", never "A#"
//
// A resolution that would need more than a double sharp or double flat
// fails with ErrUnspellable.
//
// All functions are pure and all package data is fixed at compile time, so
// the package is safe for unrestricted concurrent use.
package interval
