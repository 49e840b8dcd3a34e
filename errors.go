package pixed

import "errors"

// Sentinel errors. Only operations at the external boundary (canvas
// creation, bitmap decode/encode, collaborator ingestion) return errors;
// editing operations on a live canvas report no-ops through booleans.
var (
	// ErrInvalidSize is returned for canvas dimensions outside 1..MaxSide.
	ErrInvalidSize = errors.New("pixed: invalid canvas size")

	// ErrDecode is returned when an imported bitmap cannot be decoded.
	ErrDecode = errors.New("pixed: cannot decode image")

	// ErrInvalidScale is returned for an export scale below 1 or one that
	// would exceed MaxExportSide.
	ErrInvalidScale = errors.New("pixed: invalid export scale")

	// ErrMalformedLayout is returned when collaborator output contains no
	// usable layout item at all.
	ErrMalformedLayout = errors.New("pixed: malformed layout")
)
