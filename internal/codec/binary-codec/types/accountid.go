//revive:disable:var-naming
package types

import (
	"fmt"

	addresscodec "github.com/ripplequill/xrplcodec/internal/codec/address-codec"
	"github.com/ripplequill/xrplcodec/internal/codec/binary-codec/types/interfaces"
)

// AccountID is a 20-byte account identifier, VL-prefixed on the wire and
// represented in JSON as a base58check classic address.
type AccountID struct{}

func (a *AccountID) FromJSON(value any) ([]byte, error) {
	s, ok := value.(string)
	if !ok {
		return nil, fmt.Errorf("%w: expected classic address string", ErrInvalidAccountID)
	}
	raw, err := addresscodec.DecodeAccountID(s)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidAccountID, err)
	}
	return raw, nil
}

func (a *AccountID) ToJSON(p interfaces.BinaryParser, hint ...int) (any, error) {
	length := 20
	if len(hint) > 0 {
		length = hint[0]
	}
	raw, err := p.ReadBytes(length)
	if err != nil {
		return nil, err
	}
	return addresscodec.EncodeAccountID(raw)
}
