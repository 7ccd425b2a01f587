//revive:disable:var-naming
package types

import (
	"encoding/hex"
	"fmt"
	"strings"

	"github.com/ripplequill/xrplcodec/internal/codec/binary-codec/types/interfaces"
)

// fixedHash is the shared implementation behind Hash128/Hash160/Hash256:
// a fixed-width byte string represented as uppercase hex in JSON.
type fixedHash struct {
	size int
}

func (h fixedHash) fromJSON(value any) ([]byte, error) {
	s, ok := value.(string)
	if !ok {
		return nil, fmt.Errorf("%w: expected hex string", ErrInvalidHashLength)
	}
	b, err := hex.DecodeString(s)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidBlobHex, err)
	}
	if len(b) != h.size {
		return nil, fmt.Errorf("%w: got %d bytes, want %d", ErrInvalidHashLength, len(b), h.size)
	}
	return b, nil
}

func (h fixedHash) toJSON(p interfaces.BinaryParser) (any, error) {
	b, err := p.ReadBytes(h.size)
	if err != nil {
		return nil, err
	}
	return strings.ToUpper(hex.EncodeToString(b)), nil
}

// Hash128 is a 16-byte fixed-width hash (e.g. EmailHash).
type Hash128 struct{ h fixedHash }

func NewHash128() *Hash128 { return &Hash128{h: fixedHash{size: 16}} }

func (t *Hash128) FromJSON(value any) ([]byte, error) { return t.h.fromJSON(value) }
func (t *Hash128) ToJSON(p interfaces.BinaryParser, _ ...int) (any, error) {
	return t.h.toJSON(p)
}

// Hash160 is a 20-byte fixed-width hash (e.g. currency codes, node IDs).
type Hash160 struct{ h fixedHash }

func NewHash160() *Hash160 { return &Hash160{h: fixedHash{size: 20}} }

func (t *Hash160) FromJSON(value any) ([]byte, error) { return t.h.fromJSON(value) }
func (t *Hash160) ToJSON(p interfaces.BinaryParser, _ ...int) (any, error) {
	return t.h.toJSON(p)
}

// Hash256 is a 32-byte fixed-width hash (e.g. ledger/transaction hashes).
type Hash256 struct{ h fixedHash }

func NewHash256() *Hash256 { return &Hash256{h: fixedHash{size: 32}} }

func (t *Hash256) FromJSON(value any) ([]byte, error) { return t.h.fromJSON(value) }
func (t *Hash256) ToJSON(p interfaces.BinaryParser, _ ...int) (any, error) {
	return t.h.toJSON(p)
}
