// Package note models a single spelled pitch: a letter name A–G plus an
// accidental ranging from a double flat to a double sharp.
//
// Spelling is the whole point. Downstream notation and theory code cares
// about the difference between C♯ and D♭ even though both sound the same
// pitch, so a Note compares equal only when letter AND accidental match.
// Enharmonic ("sounds alike") comparison is available separately through
// PitchClass and Enharmonic.
//
// Notes are immutable values. Construct them with New or Parse:
//
//	n, err := note.Parse("F#")
//	if err != nil {
//	    // handle ErrBadNoteName
//	}
//	fmt.Println(n.Name())       // F#
//	fmt.Println(n.PitchClass()) // 6
//
// Accidental suffixes follow the usual ASCII convention: "#" sharp,
// "##" double sharp, "b" flat, "bb" double flat, empty for natural.
package note
