//revive:disable:var-naming
package types

import (
	"encoding/hex"
	"fmt"
	"strings"

	"github.com/ripplequill/xrplcodec/internal/codec/binary-codec/types/interfaces"
)

// Vector256 is a VL-prefixed, concatenated run of 32-byte hashes (e.g.
// Indexes, Hashes, Amendments), represented in JSON as an array of
// uppercase hex strings.
type Vector256 struct{}

func (v *Vector256) FromJSON(value any) ([]byte, error) {
	items, err := toStringSlice(value)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidVector256, err)
	}

	out := make([]byte, 0, len(items)*32)
	for _, s := range items {
		b, err := hex.DecodeString(s)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrInvalidVector256, err)
		}
		if len(b) != 32 {
			return nil, fmt.Errorf("%w: element is %d bytes, want 32", ErrInvalidVector256, len(b))
		}
		out = append(out, b...)
	}
	return out, nil
}

// toStringSlice accepts either a []any of strings (the shape JSON
// unmarshaling produces) or a []string (the shape Go callers naturally
// construct), normalizing both to []string.
func toStringSlice(value any) ([]string, error) {
	switch v := value.(type) {
	case []string:
		return v, nil
	case []any:
		out := make([]string, len(v))
		for i, item := range v {
			s, ok := item.(string)
			if !ok {
				return nil, fmt.Errorf("expected string element, got %T", item)
			}
			out[i] = s
		}
		return out, nil
	default:
		return nil, fmt.Errorf("expected array, got %T", value)
	}
}

// ToJSON reads length bytes (the VL length, consumed by the caller and
// passed via hint) and splits them into 32-byte hash strings.
func (v *Vector256) ToJSON(p interfaces.BinaryParser, hint ...int) (any, error) {
	if len(hint) == 0 {
		return nil, fmt.Errorf("Vector256.ToJSON requires a length hint")
	}
	length := hint[0]
	if length%32 != 0 {
		return nil, ErrInvalidVector256
	}

	data, err := p.ReadBytes(length)
	if err != nil {
		return nil, err
	}

	out := make([]any, 0, length/32)
	for i := 0; i < length; i += 32 {
		out = append(out, strings.ToUpper(hex.EncodeToString(data[i:i+32])))
	}
	return out, nil
}
