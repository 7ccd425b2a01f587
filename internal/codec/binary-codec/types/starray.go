//revive:disable:var-naming
package types

import (
	"fmt"

	"github.com/ripplequill/xrplcodec/internal/codec/binary-codec/definitions"
	"github.com/ripplequill/xrplcodec/internal/codec/binary-codec/serdes"
	"github.com/ripplequill/xrplcodec/internal/codec/binary-codec/types/interfaces"
)

// arrayEndMarkerByte is the single-byte wire form of the ArrayEndMarker
// field (type code 15, field code 1): 15<<4 | 1.
const arrayEndMarkerByte = 0xf1

// STArray is an ordered list of single-key-wrapped STObjects (Memos,
// Signers, SignerEntries, ...). Each element is itself a one-field object,
// e.g. {"Memo": {...}}; the trailing ArrayEndMarker (0xf1) is appended by
// EncodeFieldValue when dispatching to an STArray-typed field, matching how
// STObject defers its own ObjectEndMarker.
type STArray struct {
	ser *serdes.BinarySerializer
}

// NewSTArray builds an STArray that writes its elements through ser.
func NewSTArray(ser *serdes.BinarySerializer) *STArray {
	return &STArray{ser: ser}
}

func (a *STArray) FromJSON(value any) ([]byte, error) {
	arr, ok := value.([]any)
	if !ok {
		return nil, fmt.Errorf("%w: expected array", ErrMalformedSTArray)
	}

	for _, elAny := range arr {
		el, ok := elAny.(map[string]any)
		if !ok || len(el) != 1 {
			return nil, fmt.Errorf("%w: expected single-key object per element", ErrMalformedSTArray)
		}

		var wrapperName string
		var inner any
		for k, v := range el {
			wrapperName, inner = k, v
		}

		fi, err := definitions.Get().GetFieldInstanceByFieldName(wrapperName)
		if err != nil {
			return nil, err
		}

		valueBytes, err := EncodeFieldValue(fi, inner)
		if err != nil {
			return nil, fmt.Errorf("field %s: %w", wrapperName, err)
		}
		if err := a.ser.WriteFieldAndValue(*fi, valueBytes); err != nil {
			return nil, fmt.Errorf("field %s: %w", wrapperName, err)
		}
	}

	return a.ser.GetSink(), nil
}

func (a *STArray) ToJSON(p interfaces.BinaryParser, _ ...int) (any, error) {
	out := []any{}

	for p.HasMore() {
		next, err := p.Peek()
		if err != nil {
			return nil, err
		}
		if next == arrayEndMarkerByte {
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
		out = append(out, map[string]any{fi.FieldName: value})
	}

	return out, nil
}
