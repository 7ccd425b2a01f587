package serdes

import "errors"

// ErrParserOutOfBound is returned when a read operation requests more bytes
// than remain in the parser's buffer.
var ErrParserOutOfBound = errors.New("parser out of bound")

// ErrLengthPrefixTooLong is returned when a length exceeds the maximum a
// variable-length prefix can encode (918744 bytes).
var ErrLengthPrefixTooLong = errors.New("length prefix too long")

// ErrInvalidLengthPrefix is returned when a variable-length prefix's first
// byte is out of the reserved range.
var ErrInvalidLengthPrefix = errors.New("invalid length prefix")
