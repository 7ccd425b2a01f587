//revive:disable:var-naming
package types

import (
	"encoding/binary"
	"fmt"

	"github.com/ripplequill/xrplcodec/internal/codec/binary-codec/types/interfaces"
)

// UInt32 represents a 32-bit unsigned integer, big-endian on the wire.
type UInt32 struct{}

func (u *UInt32) FromJSON(value any) ([]byte, error) {
	n, err := toUint(value, 0xffffffff)
	if err != nil {
		return nil, fmt.Errorf("UInt32: %w", err)
	}
	buf := make([]byte, 4)
	binary.BigEndian.PutUint32(buf, uint32(n))
	return buf, nil
}

func (u *UInt32) ToJSON(p interfaces.BinaryParser, _ ...int) (any, error) {
	b, err := p.ReadBytes(4)
	if err != nil {
		return nil, err
	}
	return binary.BigEndian.Uint32(b), nil
}
