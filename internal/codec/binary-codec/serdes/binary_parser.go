package serdes

import (
	"github.com/ripplequill/xrplcodec/internal/codec/binary-codec/definitions"
)

// BinaryParser walks a canonical binary buffer left to right, handing out
// bytes, VL-prefixed chunks, and field headers on demand.
type BinaryParser struct {
	data []byte
	pos  int
	defs *definitions.Definitions
}

// NewBinaryParser wraps data for sequential reading against defs.
func NewBinaryParser(data []byte, defs *definitions.Definitions) *BinaryParser {
	return &BinaryParser{data: data, defs: defs}
}

// HasMore reports whether any unread bytes remain.
func (p *BinaryParser) HasMore() bool {
	return p.pos < len(p.data)
}

// Peek returns the next byte without advancing the cursor.
func (p *BinaryParser) Peek() (byte, error) {
	if !p.HasMore() {
		return 0, ErrParserOutOfBound
	}
	return p.data[p.pos], nil
}

// ReadByte returns the next byte and advances the cursor.
func (p *BinaryParser) ReadByte() (byte, error) {
	b, err := p.Peek()
	if err != nil {
		return 0, err
	}
	p.pos++
	return b, nil
}

// ReadBytes returns the next n bytes and advances the cursor.
func (p *BinaryParser) ReadBytes(n int) ([]byte, error) {
	if n < 0 || p.pos+n > len(p.data) {
		return nil, ErrParserOutOfBound
	}
	out := make([]byte, n)
	copy(out, p.data[p.pos:p.pos+n])
	p.pos += n
	return out, nil
}

// ReadVariableLength decodes a 1-3 byte canonical VL length prefix.
func (p *BinaryParser) ReadVariableLength() (int, error) {
	b0, err := p.ReadByte()
	if err != nil {
		return 0, err
	}

	switch {
	case b0 <= 192:
		return int(b0), nil
	case b0 <= 240:
		b1, err := p.ReadByte()
		if err != nil {
			return 0, err
		}
		return (int(b0)-193)*256 + int(b1) + 193, nil
	case b0 <= 254:
		b1, err := p.ReadByte()
		if err != nil {
			return 0, err
		}
		b2, err := p.ReadByte()
		if err != nil {
			return 0, err
		}
		return (int(b0)-241)*65536 + int(b1)*256 + int(b2) + 12481, nil
	default:
		return 0, ErrInvalidLengthPrefix
	}
}

// ReadFieldHeader reads a 1-3 byte field header off the stream. The first
// nibble of the first byte is the type code, the second the field code;
// either may be "overflowed" into a following byte when >= 16.
func (p *BinaryParser) ReadFieldHeader() (definitions.FieldHeader, error) {
	first, err := p.ReadByte()
	if err != nil {
		return definitions.FieldHeader{}, err
	}

	typeCode := int32(first >> 4)
	fieldCode := int32(first & 0x0f)

	if typeCode == 0 {
		b, err := p.ReadByte()
		if err != nil {
			return definitions.FieldHeader{}, err
		}
		typeCode = int32(b)
	}

	if fieldCode == 0 {
		b, err := p.ReadByte()
		if err != nil {
			return definitions.FieldHeader{}, err
		}
		fieldCode = int32(b)
	}

	return p.defs.CreateFieldHeader(typeCode, fieldCode), nil
}

// ReadField reads the next field header and resolves it to its FieldInstance.
func (p *BinaryParser) ReadField() (*definitions.FieldInstance, error) {
	fh, err := p.ReadFieldHeader()
	if err != nil {
		return nil, err
	}
	name, err := p.defs.GetFieldNameByFieldHeader(fh)
	if err != nil {
		return nil, err
	}
	return p.defs.GetFieldInstanceByFieldName(name)
}

// Pos returns the current read offset, mainly for tests and nested parsers.
func (p *BinaryParser) Pos() int {
	return p.pos
}

// Remaining returns the number of unread bytes.
func (p *BinaryParser) Remaining() int {
	return len(p.data) - p.pos
}
