//revive:disable:var-naming
package types

import (
	"fmt"

	"github.com/ripplequill/xrplcodec/internal/codec/binary-codec/types/interfaces"
)

// UInt8 represents an 8-bit unsigned integer.
type UInt8 struct{}

// FromJSON accepts a numeric value (float64 from encoding/json, or a Go
// integer type). Strings are rejected; enum names such as TransactionResult
// codes are converted to numbers by EncodeFieldValue before reaching here.
func (u *UInt8) FromJSON(value any) ([]byte, error) {
	n, err := toUint(value, 0xff)
	if err != nil {
		return nil, fmt.Errorf("UInt8: %w", err)
	}
	return []byte{byte(n)}, nil
}

// ToJSON reads one byte and returns it as a float64, matching encoding/json's
// native number representation.
func (u *UInt8) ToJSON(p interfaces.BinaryParser, _ ...int) (any, error) {
	b, err := p.ReadBytes(1)
	if err != nil {
		return nil, err
	}
	return float64(b[0]), nil
}
