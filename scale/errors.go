package scale

import "errors"

var (
	// ErrBadScaleName indicates input that does not split into "<TONIC> <QUALITY>".
	ErrBadScaleName = errors.New(`scale: scale name must be "<TONIC> <QUALITY>"`)

	// ErrUnknownQuality indicates a quality token outside the supported set.
	ErrUnknownQuality = errors.New("scale: unknown quality")

	// ErrInvalidTonic indicates a tonic from which no scale of the requested
	// quality can be spelled without double accidentals in its key signature.
	// The tonic may still be a perfectly valid note name in isolation.
	ErrInvalidTonic = errors.New("scale: invalid tonic for requested quality")

	// ErrInvalidDegree indicates an unrecognized degree name, or degree
	// access on a quality without named degrees.
	ErrInvalidDegree = errors.New("scale: invalid degree")

	// ErrRegistry indicates an internal inconsistency between the
	// legal-tonic sets and the key-signature registry. It is never caused
	// by caller input; a validated tonic always has a signature number.
	ErrRegistry = errors.New("scale: key-signature registry inconsistency")
)
