package binarycodec

import "errors"

var (
	// ErrMalformedTransaction is returned when an input to a signing encoder
	// is malformed: a bad signer account, Channel or txIDs value.
	ErrMalformedTransaction = errors.New("binarycodec: malformed transaction")

	// ErrMissingField is returned when a required top-level field is absent.
	ErrMissingField = errors.New("binarycodec: missing required field")

	// ErrMalformedHex is returned when a hex blob fails to decode.
	ErrMalformedHex = errors.New("binarycodec: malformed hex string")

	// ErrUnexpectedTrailingBytes is returned when Decode does not consume the
	// entire input buffer.
	ErrUnexpectedTrailingBytes = errors.New("binarycodec: unexpected trailing bytes")
)
