package note

import "errors"

var (
	// ErrBadLetter indicates a letter outside A through G.
	ErrBadLetter = errors.New("note: letter must be A through G")

	// ErrBadAccidental indicates an accidental beyond a double sharp or double flat.
	ErrBadAccidental = errors.New("note: accidental must lie between double flat and double sharp")

	// ErrBadNoteName indicates a name that does not parse as letter + accidental suffix.
	ErrBadNoteName = errors.New("note: malformed note name")
)
