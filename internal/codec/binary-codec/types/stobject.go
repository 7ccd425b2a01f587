//revive:disable:var-naming
package types

import (
	"fmt"
	"sort"

	"github.com/ripplequill/xrplcodec/internal/codec/binary-codec/definitions"
	"github.com/ripplequill/xrplcodec/internal/codec/binary-codec/serdes"
	"github.com/ripplequill/xrplcodec/internal/codec/binary-codec/types/interfaces"
)

// objectEndMarkerByte is the single-byte wire form of the ObjectEndMarker
// field (type code 14, field code 1): 14<<4 | 1.
const objectEndMarkerByte = 0xe1

// STObject is a field-ordered object. It serializes every field in it via
// the same sorted-by-ordinal, header+[VL]+value scheme whether it is the
// top-level transaction blob or the value of an STObject-typed field; the
// trailing ObjectEndMarker (0xe1) that nested objects carry is appended by
// EncodeFieldValue when dispatching to an STObject-typed field, not by
// STObject itself, since the outermost object never carries one.
type STObject struct {
	ser *serdes.BinarySerializer
}

// NewSTObject builds an STObject that writes its fields through ser.
func NewSTObject(ser *serdes.BinarySerializer) *STObject {
	return &STObject{ser: ser}
}

func (o *STObject) FromJSON(value any) ([]byte, error) {
	obj, ok := value.(map[string]any)
	if !ok {
		return nil, fmt.Errorf("%w: expected object", ErrMalformedSTObject)
	}

	defs := definitions.Get()
	fields := make([]*definitions.FieldInstance, 0, len(obj))
	for name := range obj {
		fi, err := defs.GetFieldInstanceByFieldName(name)
		if err != nil {
			return nil, err
		}
		fields = append(fields, fi)
	}
	sort.Slice(fields, func(i, j int) bool { return fields[i].Ordinal < fields[j].Ordinal })

	for _, fi := range fields {
		if !fi.IsSerialized {
			continue
		}
		valueBytes, err := EncodeFieldValue(fi, obj[fi.FieldName])
		if err != nil {
			return nil, fmt.Errorf("field %s: %w", fi.FieldName, err)
		}
		if err := o.ser.WriteFieldAndValue(*fi, valueBytes); err != nil {
			return nil, fmt.Errorf("field %s: %w", fi.FieldName, err)
		}
	}

	return o.ser.GetSink(), nil
}

func (o *STObject) ToJSON(p interfaces.BinaryParser, _ ...int) (any, error) {
	out := map[string]any{}

	for p.HasMore() {
		next, err := p.Peek()
		if err != nil {
			return nil, err
		}
		if next == objectEndMarkerByte {
			if _, err := p.ReadByte(); err != nil {
				return nil, err
			}
			return out, nil
		}

		fi, err := p.ReadField()
		if err != nil {
			return nil, err
		}
		value, err := DecodeFieldValue(p, fi)
		if err != nil {
			return nil, fmt.Errorf("field %s: %w", fi.FieldName, err)
		}
		out[fi.FieldName] = value
	}

	return out, nil
}
