//revive:disable:var-naming
package types

import (
	"encoding/binary"
	"fmt"

	"github.com/ripplequill/xrplcodec/internal/codec/binary-codec/types/interfaces"
)

// UInt16 represents a 16-bit unsigned integer, big-endian on the wire.
type UInt16 struct{}

func (u *UInt16) FromJSON(value any) ([]byte, error) {
	n, err := toUint(value, 0xffff)
	if err != nil {
		return nil, fmt.Errorf("UInt16: %w", err)
	}
	buf := make([]byte, 2)
	binary.BigEndian.PutUint16(buf, uint16(n))
	return buf, nil
}

func (u *UInt16) ToJSON(p interfaces.BinaryParser, _ ...int) (any, error) {
	b, err := p.ReadBytes(2)
	if err != nil {
		return nil, err
	}
	return float64(binary.BigEndian.Uint16(b)), nil
}
