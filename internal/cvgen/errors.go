package cvgen

import "errors"

var (
	// ErrInvalidInput indicates missing required applicant fields.
	ErrInvalidInput = errors.New("invalid input")

	// ErrEmptyDocument indicates an uploaded document yielded no text.
	ErrEmptyDocument = errors.New("document has no text")
)
