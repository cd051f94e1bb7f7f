package text

import "errors"

// Sentinel errors for the text package.
var (
	// ErrNilFace is returned when a nil font face is adapted.
	ErrNilFace = errors.New("text: nil font face")
)
