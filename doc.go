// Package solfege computes musical scales with correct enharmonic
// spelling: note sequences, key signatures and named degrees.
//
// 🚀 What is solfege?
//
//	A small, pure-Go music-theory library for tools that care about how
//	notes are SPELLED, not just how they sound:
//		• Spelled pitches: letter + accidental, double flats to double sharps
//		• Interval resolution: the correctly spelled note N semitones up
//		• Scales: major, natural / harmonic / melodic minor, 30 legal keys
//		• Key signatures: ordered sharps or flats, straight off the circle
//		• Degrees: tonic, supertonic, … leading tone
//
// ✨ Why choose solfege?
//
//   - Spelling-first — a D major scale answers F#, never Gb
//   - Honest validation — G# major is rejected, not misspelled
//   - Immutable values, no locks — free concurrent use everywhere
//   - Pure Go — no cgo, no audio stack, no hidden deps
//
// Everything lives in three subpackages:
//
//	note/     — the spelled-pitch value type and enharmonic comparison
//	interval/ — diatonic intervals and note resolution above a tonic
//	scale/    — scale construction, key signatures, degrees, membership
//
// Quick taste:
//
//	s, err := scale.New("F# HARMONIC MINOR")
//	if err != nil { ... }
//	s.Ascend()       // [F# G# A B C# D E#]
//	s.KeySignature() // [F# C# G#]
//
// See examples/ for runnable scenarios and cmd/solfege for a tiny CLI.
//
//	go get github.com/katalvlaran/solfege
package solfege
