package barcoders

import "errors"

var (
	// ErrInvalidLength is returned when a payload's length is outside the
	// symbology's bounds.
	ErrInvalidLength = errors.New("invalid length")

	// ErrInvalidCharacter is returned when a payload contains a character
	// outside the symbology's alphabet.
	ErrInvalidCharacter = errors.New("invalid character")

	// ErrChecksum is returned when a supplied check digit does not match the
	// computed one.
	ErrChecksum = errors.New("checksum error")

	// ErrInvalidDimension is returned when render parameters are out of range.
	ErrInvalidDimension = errors.New("invalid dimension")

	// ErrUnknownSymbology is returned when no encoder is registered for a
	// symbology.
	ErrUnknownSymbology = errors.New("unknown symbology")

	// ErrUnknownFormat is returned when no generator is registered for an
	// output format.
	ErrUnknownFormat = errors.New("unknown output format")
)
