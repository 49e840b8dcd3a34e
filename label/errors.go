package label

import "errors"

// Sentinel errors for the label package.
var (
	// ErrEmptyFontData is returned when font data is empty.
	ErrEmptyFontData = errors.New("label: empty font data")

	// ErrInvalidSize is returned for a non-positive font size.
	ErrInvalidSize = errors.New("label: font size must be positive")
)
