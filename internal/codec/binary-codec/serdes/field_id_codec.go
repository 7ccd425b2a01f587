package serdes

import (
	"encoding/hex"
	"fmt"

	"github.com/ripplequill/xrplcodec/internal/codec/binary-codec/definitions"
)

// FieldIDCodec translates field names to and from their 1-3 byte wire
// headers (type code, field code).
type FieldIDCodec struct {
	defs *definitions.Definitions
}

// NewFieldIDCodec builds a codec bound to defs.
func NewFieldIDCodec(defs *definitions.Definitions) *FieldIDCodec {
	return &FieldIDCodec{defs: defs}
}

// Encode returns the canonical byte encoding of fieldName's header.
func (c *FieldIDCodec) Encode(fieldName string) ([]byte, error) {
	fh, err := c.defs.GetFieldHeaderByFieldName(fieldName)
	if err != nil {
		return nil, err
	}
	return EncodeFieldHeader(fh.TypeCode, fh.FieldCode)
}

// Decode resolves a hex-encoded field header back to its field name.
func (c *FieldIDCodec) Decode(hexStr string) (string, error) {
	data, err := hex.DecodeString(hexStr)
	if err != nil {
		return "", err
	}
	parser := NewBinaryParser(data, c.defs)
	fh, err := parser.ReadFieldHeader()
	if err != nil {
		return "", err
	}
	return c.defs.GetFieldNameByFieldHeader(fh)
}

// EncodeFieldHeader builds the 1-3 byte canonical wire header for a
// (typeCode, fieldCode) pair.
func EncodeFieldHeader(typeCode, fieldCode int32) ([]byte, error) {
	if typeCode <= 0 || fieldCode <= 0 || typeCode > 255 || fieldCode > 255 {
		return nil, fmt.Errorf("field header out of range: type=%d field=%d", typeCode, fieldCode)
	}

	switch {
	case typeCode < 16 && fieldCode < 16:
		return []byte{byte(typeCode<<4 | fieldCode)}, nil
	case typeCode >= 16 && fieldCode < 16:
		return []byte{byte(fieldCode), byte(typeCode)}, nil
	case typeCode < 16 && fieldCode >= 16:
		return []byte{byte(typeCode << 4), byte(fieldCode)}, nil
	default:
		return []byte{0, byte(typeCode), byte(fieldCode)}, nil
	}
}
