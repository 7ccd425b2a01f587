package serdes

import (
	"bytes"

	"github.com/ripplequill/xrplcodec/internal/codec/binary-codec/definitions"
)

// BinarySerializer accumulates a field-ordered canonical binary blob.
type BinarySerializer struct {
	sink     bytes.Buffer
	fieldIDs *FieldIDCodec
}

// NewBinarySerializer builds a serializer that encodes field headers via codec.
func NewBinarySerializer(codec *FieldIDCodec) *BinarySerializer {
	return &BinarySerializer{fieldIDs: codec}
}

// WriteFieldAndValue appends a field's header, VL prefix (if applicable) and
// value bytes to the sink.
func (s *BinarySerializer) WriteFieldAndValue(fieldInstance definitions.FieldInstance, value []byte) error {
	header, err := s.fieldIDs.Encode(fieldInstance.FieldName)
	if err != nil {
		return err
	}
	s.sink.Write(header)

	if fieldInstance.IsVLEncoded {
		vl, err := EncodeVariableLength(len(value))
		if err != nil {
			return err
		}
		s.sink.Write(vl)
	}

	s.sink.Write(value)
	return nil
}

// GetSink returns the accumulated bytes.
func (s *BinarySerializer) GetSink() []byte {
	return s.sink.Bytes()
}
