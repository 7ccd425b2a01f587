//revive:disable:var-naming
package types

import (
	"fmt"
	"strings"

	addresscodec "github.com/ripplequill/xrplcodec/internal/codec/address-codec"
	"github.com/ripplequill/xrplcodec/internal/codec/binary-codec/types/interfaces"
)

const (
	pathsetPathSeparator byte = 0xff
	pathsetEndByte       byte = 0x00

	pathStepAccount  byte = 0x01
	pathStepCurrency byte = 0x10
	pathStepIssuer   byte = 0x20
)

// PathSet is a list of alternative payment paths, each a list of
// account/currency/issuer path-step objects. It carries no VL prefix: paths
// are separated by 0xFF and the set ends with a 0x00 byte.
type PathSet struct{}

func (p *PathSet) FromJSON(value any) ([]byte, error) {
	paths, ok := value.([]any)
	if !ok {
		return nil, fmt.Errorf("%w: expected array of paths", ErrInvalidPathSet)
	}

	var out []byte
	for i, pathAny := range paths {
		if i > 0 {
			out = append(out, pathsetPathSeparator)
		}
		path, ok := pathAny.([]any)
		if !ok {
			return nil, fmt.Errorf("%w: expected array of path steps", ErrInvalidPathSet)
		}
		for _, stepAny := range path {
			step, ok := stepAny.(map[string]any)
			if !ok {
				return nil, fmt.Errorf("%w: expected path step object", ErrInvalidPathSet)
			}
			encoded, err := encodePathStep(step)
			if err != nil {
				return nil, err
			}
			out = append(out, encoded...)
		}
	}
	out = append(out, pathsetEndByte)
	return out, nil
}

func encodePathStep(step map[string]any) ([]byte, error) {
	var typeByte byte
	var fields []byte

	if account, ok := step["account"].(string); ok && account != "" {
		raw, err := addresscodec.DecodeAccountID(account)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrInvalidPathSet, err)
		}
		typeByte |= pathStepAccount
		fields = append(fields, raw...)
	}
	if currency, ok := step["currency"].(string); ok && currency != "" {
		var raw []byte
		if strings.EqualFold(currency, "XRP") {
			raw = make([]byte, 20)
		} else {
			var err error
			raw, err = serializeIssuedCurrencyCode(currency)
			if err != nil {
				return nil, err
			}
		}
		typeByte |= pathStepCurrency
		fields = append(fields, raw...)
	}
	if issuer, ok := step["issuer"].(string); ok && issuer != "" {
		raw, err := addresscodec.DecodeAccountID(issuer)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrInvalidPathSet, err)
		}
		typeByte |= pathStepIssuer
		fields = append(fields, raw...)
	}

	if typeByte == 0 {
		return nil, fmt.Errorf("%w: empty path step", ErrInvalidPathSet)
	}

	return append([]byte{typeByte}, fields...), nil
}

// ToJSON decodes the remainder of the buffer up to, and consuming, the
// terminating 0x00 byte; the caller must not pass a length hint since a
// PathSet's extent is determined by its own separators, not a VL prefix.
func (p *PathSet) ToJSON(parser interfaces.BinaryParser, _ ...int) (any, error) {
	var paths []any
	var current []any

	for {
		b, err := parser.ReadByte()
		if err != nil {
			return nil, err
		}

		switch b {
		case pathsetEndByte:
			paths = append(paths, current)
			return paths, nil
		case pathsetPathSeparator:
			paths = append(paths, current)
			current = nil
		default:
			step, err := decodePathStep(parser, b)
			if err != nil {
				return nil, err
			}
			current = append(current, step)
		}
	}
}

func decodePathStep(parser interfaces.BinaryParser, typeByte byte) (map[string]any, error) {
	step := map[string]any{
		"type":     float64(typeByte),
		"type_hex": fmt.Sprintf("%016x", typeByte),
	}

	if typeByte&pathStepAccount != 0 {
		raw, err := parser.ReadBytes(20)
		if err != nil {
			return nil, err
		}
		account, err := addresscodec.EncodeAccountID(raw)
		if err != nil {
			return nil, err
		}
		step["account"] = account
	}
	if typeByte&pathStepCurrency != 0 {
		raw, err := parser.ReadBytes(20)
		if err != nil {
			return nil, err
		}
		step["currency"] = deserializeCurrencyCode(raw)
	}
	if typeByte&pathStepIssuer != 0 {
		raw, err := parser.ReadBytes(20)
		if err != nil {
			return nil, err
		}
		issuer, err := addresscodec.EncodeAccountID(raw)
		if err != nil {
			return nil, err
		}
		step["issuer"] = issuer
	}

	return step, nil
}
