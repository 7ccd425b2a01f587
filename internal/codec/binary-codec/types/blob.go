//revive:disable:var-naming
package types

import (
	"encoding/hex"
	"fmt"
	"strings"

	"github.com/ripplequill/xrplcodec/internal/codec/binary-codec/types/interfaces"
)

// Blob is an arbitrary-length, VL-prefixed byte string (memos, signatures,
// public keys, ...), represented in JSON as uppercase hex.
type Blob struct{}

func (b *Blob) FromJSON(value any) ([]byte, error) {
	s, ok := value.(string)
	if !ok {
		return nil, fmt.Errorf("%w: expected hex string", ErrInvalidBlobHex)
	}
	decoded, err := hex.DecodeString(s)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidBlobHex, err)
	}
	return decoded, nil
}

// ToJSON reads length bytes (the VL length must already have been consumed
// by the caller and passed in via the variadic hint) and hex-encodes them.
func (b *Blob) ToJSON(p interfaces.BinaryParser, hint ...int) (any, error) {
	if len(hint) == 0 {
		return nil, fmt.Errorf("Blob.ToJSON requires a length hint")
	}
	data, err := p.ReadBytes(hint[0])
	if err != nil {
		return nil, err
	}
	return strings.ToUpper(hex.EncodeToString(data)), nil
}
