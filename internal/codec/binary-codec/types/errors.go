//revive:disable:var-naming
package types

import (
	"errors"
	"fmt"
)

// OutOfRangeError reports a value that parses correctly but falls outside
// the wire format's representable range (precision or exponent).
type OutOfRangeError struct {
	Type string
}

func (e *OutOfRangeError) Error() string {
	return fmt.Sprintf("value out of range: %s", e.Type)
}

var (
	ErrInvalidHashLength     = errors.New("invalid hash length")
	ErrInvalidBlobHex        = errors.New("invalid blob hex string")
	ErrInvalidAccountID      = errors.New("invalid AccountID")
	ErrInvalidCurrencyCode   = errors.New("invalid currency code")
	ErrNegativeXRPAmount     = errors.New("XRP amount must not be negative")
	ErrNonIntegerXRPAmount   = errors.New("XRP amount must be an integer number of drops")
	ErrXRPAmountOutOfRange   = errors.New("XRP amount exceeds maximum drops")
	ErrReservedCurrencyXRP   = errors.New("XRP is not a valid issued-currency code")
	ErrMalformedAmountObject = errors.New("amount object must have value, currency and issuer")
	ErrMalformedIssueObject  = errors.New("issue object must have currency and, unless XRP, issuer")
	ErrInvalidPathSet        = errors.New("malformed path set")
	ErrInvalidVector256      = errors.New("vector256 length must be a multiple of 32 bytes")
	ErrDuplicateField        = errors.New("duplicate field in object")
	ErrMalformedSTObject     = errors.New("malformed STObject value")
	ErrMalformedSTArray      = errors.New("malformed STArray value")
)
