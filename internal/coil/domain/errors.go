package coil

import "errors"

var (
	// ErrUnrecognizedSheetName is returned when a sheet name does not
	// match the `{width}" Sheet - {material}` pattern. The sheet is
	// skipped; the batch continues.
	ErrUnrecognizedSheetName = errors.New("coil: unrecognized sheet name")
	// ErrSpecNotFound is returned when a part number has no record.
	ErrSpecNotFound = errors.New("coil: specification not found")
)
