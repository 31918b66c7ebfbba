package codec

import "errors"

var (
	// ErrMalformed indicates the input is not a list of contact records.
	ErrMalformed = errors.New("malformed contact list")

	// ErrUnknownFormat indicates an unsupported Format value.
	ErrUnknownFormat = errors.New("unknown format")
)
