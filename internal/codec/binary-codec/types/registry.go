//revive:disable:var-naming
package types

import (
	"fmt"

	"github.com/ripplequill/xrplcodec/internal/codec/binary-codec/definitions"
	"github.com/ripplequill/xrplcodec/internal/codec/binary-codec/serdes"
	"github.com/ripplequill/xrplcodec/internal/codec/binary-codec/types/interfaces"
)

// SerializedType is the common contract every wire type in this package
// implements: convert a JSON-shaped Go value to wire bytes and back.
type SerializedType interface {
	FromJSON(value any) ([]byte, error)
	ToJSON(p interfaces.BinaryParser, hint ...int) (any, error)
}

// ErrUnknownSerializedType is returned when a field's definitions.json type
// name has no corresponding Go codec registered here.
var ErrUnknownSerializedType = fmt.Errorf("unknown serialized type")

// New resolves a definitions.json type name (e.g. "UInt32", "Amount",
// "STObject") to a fresh instance of its codec.
func New(typeName string) (SerializedType, error) {
	switch typeName {
	case "UInt8":
		return &UInt8{}, nil
	case "UInt16":
		return &UInt16{}, nil
	case "UInt32":
		return &UInt32{}, nil
	case "UInt64":
		return &UInt64{}, nil
	case "Hash128":
		return NewHash128(), nil
	case "Hash160":
		return NewHash160(), nil
	case "Hash256":
		return NewHash256(), nil
	case "Blob":
		return &Blob{}, nil
	case "AccountID":
		return &AccountID{}, nil
	case "Amount":
		return &Amount{}, nil
	case "Issue":
		return &Issue{}, nil
	case "PathSet":
		return &PathSet{}, nil
	case "Vector256":
		return &Vector256{}, nil
	case "XChainBridge":
		return &XChainBridge{}, nil
	case "STObject":
		return NewSTObject(serdes.NewBinarySerializer(serdes.NewFieldIDCodec(definitions.Get()))), nil
	case "STArray":
		return NewSTArray(serdes.NewBinarySerializer(serdes.NewFieldIDCodec(definitions.Get()))), nil
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnknownSerializedType, typeName)
	}
}

// EncodeFieldValue converts value into the wire bytes for fi, dispatching to
// the registered codec for fi.Type. STObject- and STArray-typed field
// values carry a trailing end marker that the container type itself does
// not append, since the same STObject codec also serves as the top-level
// (markerless) transaction blob.
func EncodeFieldValue(fi *definitions.FieldInstance, value any) ([]byte, error) {
	value, err := resolveEnumValue(fi, value)
	if err != nil {
		return nil, err
	}

	t, err := New(fi.Type)
	if err != nil {
		return nil, err
	}
	out, err := t.FromJSON(value)
	if err != nil {
		return nil, err
	}

	switch fi.Type {
	case "STObject":
		out = append(out, objectEndMarkerByte)
	case "STArray":
		out = append(out, arrayEndMarkerByte)
	}
	return out, nil
}

// DecodeFieldValue reads the wire value for fi off p, consuming a VL length
// prefix first when fi.IsVLEncoded.
func DecodeFieldValue(p interfaces.BinaryParser, fi *definitions.FieldInstance) (any, error) {
	t, err := New(fi.Type)
	if err != nil {
		return nil, err
	}

	var result any
	if fi.IsVLEncoded {
		length, err := p.ReadVariableLength()
		if err != nil {
			return nil, err
		}
		result, err = t.ToJSON(p, length)
		if err != nil {
			return nil, err
		}
	} else {
		result, err = t.ToJSON(p)
		if err != nil {
			return nil, err
		}
	}

	return resolveEnumName(fi, result)
}

// resolveEnumValue translates the human-readable enum names rippled's JSON
// uses for TransactionType, LedgerEntryType and TransactionResult into
// their numeric codes, passing every other field/value through unchanged.
func resolveEnumValue(fi *definitions.FieldInstance, value any) (any, error) {
	name, ok := value.(string)
	if !ok {
		return value, nil
	}

	defs := definitions.Get()
	switch fi.FieldName {
	case "TransactionType":
		code, err := defs.TransactionTypeCode(name)
		if err != nil {
			return nil, err
		}
		return float64(code), nil
	case "LedgerEntryType":
		code, err := defs.LedgerEntryTypeCode(name)
		if err != nil {
			return nil, err
		}
		return float64(code), nil
	case "TransactionResult":
		code, err := defs.TransactionResultCode(name)
		if err != nil {
			return nil, err
		}
		return float64(code), nil
	default:
		return value, nil
	}
}

// resolveEnumName is resolveEnumValue's inverse, run after decoding a
// TransactionType/LedgerEntryType/TransactionResult field's numeric code.
func resolveEnumName(fi *definitions.FieldInstance, value any) (any, error) {
	code, ok := value.(float64)
	if !ok {
		return value, nil
	}

	defs := definitions.Get()
	switch fi.FieldName {
	case "TransactionType":
		return defs.TransactionTypeName(int32(code))
	case "LedgerEntryType":
		return defs.LedgerEntryTypeName(int32(code))
	case "TransactionResult":
		return defs.TransactionResultName(int32(code))
	default:
		return value, nil
	}
}
