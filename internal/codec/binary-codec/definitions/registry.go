package definitions

import (
	_ "embed"
	"encoding/json"
	"fmt"
	"sort"
	"sync"
)

//go:embed definitions.json
var definitionsRaw []byte

// Definitions is the process-wide, immutable lookup table mapping field
// names to their wire headers and vice versa, plus the enum tables for
// ledger entry types, transaction types and transaction result codes.
type Definitions struct {
	typeOrdinal map[string]int32
	typeName    map[int32]string

	fieldsByName   map[string]*FieldInstance
	fieldsByHeader map[FieldHeader]*FieldInstance

	ledgerEntryTypes    map[string]int32
	ledgerEntryTypeName map[int32]string

	transactionTypes    map[string]int32
	transactionTypeName map[int32]string

	transactionResults    map[string]int32
	transactionResultName map[int32]string
}

var (
	instance *Definitions
	once     sync.Once
)

// Get returns the singleton, lazily-parsed Definitions registry.
func Get() *Definitions {
	once.Do(func() {
		d, err := load(definitionsRaw)
		if err != nil {
			panic(fmt.Sprintf("definitions: failed to load embedded asset: %v", err))
		}
		instance = d
	})
	return instance
}

func load(raw []byte) (*Definitions, error) {
	var doc definitionsJSON
	if err := json.Unmarshal(raw, &doc); err != nil {
		return nil, fmt.Errorf("parse definitions.json: %w", err)
	}

	d := &Definitions{
		typeOrdinal:           make(map[string]int32, len(doc.Types)),
		typeName:              make(map[int32]string, len(doc.Types)),
		fieldsByName:          make(map[string]*FieldInstance, len(doc.Fields)),
		fieldsByHeader:        make(map[FieldHeader]*FieldInstance, len(doc.Fields)),
		ledgerEntryTypes:      doc.LedgerEntryTypes,
		ledgerEntryTypeName:   invert(doc.LedgerEntryTypes),
		transactionTypes:      doc.TransactionTypes,
		transactionTypeName:   invert(doc.TransactionTypes),
		transactionResults:    doc.TransactionResults,
		transactionResultName: invert(doc.TransactionResults),
	}

	for name, code := range doc.Types {
		d.typeOrdinal[name] = code
		d.typeName[code] = name
	}

	for _, entry := range doc.Fields {
		if len(entry) != 2 {
			return nil, fmt.Errorf("malformed FIELDS entry: %v", entry)
		}
		name, ok := entry[0].(string)
		if !ok {
			return nil, fmt.Errorf("FIELDS entry missing name: %v", entry)
		}
		raw, err := json.Marshal(entry[1])
		if err != nil {
			return nil, err
		}
		var info FieldInfo
		if err := json.Unmarshal(raw, &info); err != nil {
			return nil, fmt.Errorf("field %s: %w", name, err)
		}

		typeCode, ok := d.typeOrdinal[info.Type]
		if !ok {
			return nil, fmt.Errorf("field %s: unknown type %q", name, info.Type)
		}

		header := FieldHeader{TypeCode: typeCode, FieldCode: info.Nth}
		fi := &FieldInstance{
			FieldName:      name,
			Type:           info.Type,
			Nth:            info.Nth,
			IsVLEncoded:    info.IsVLEncoded,
			IsSerialized:   info.IsSerialized,
			IsSigningField: info.IsSigningField,
			Ordinal:        typeCode<<16 | info.Nth,
			Header:         header,
		}

		if _, exists := d.fieldsByName[name]; exists {
			return nil, fmt.Errorf("duplicate field name %s", name)
		}
		if _, exists := d.fieldsByHeader[header]; exists {
			return nil, fmt.Errorf("duplicate field header %+v (field %s)", header, name)
		}

		d.fieldsByName[name] = fi
		d.fieldsByHeader[header] = fi
	}

	return d, nil
}

func invert(m map[string]int32) map[int32]string {
	out := make(map[int32]string, len(m))
	for k, v := range m {
		out[v] = k
	}
	return out
}

// GetFieldInstanceByFieldName resolves a field name to its full instance.
func (d *Definitions) GetFieldInstanceByFieldName(fieldName string) (*FieldInstance, error) {
	fi, ok := d.fieldsByName[fieldName]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownFieldName, fieldName)
	}
	return fi, nil
}

// GetFieldHeaderByFieldName resolves a field name to its wire header.
func (d *Definitions) GetFieldHeaderByFieldName(fieldName string) (*FieldHeader, error) {
	fi, err := d.GetFieldInstanceByFieldName(fieldName)
	if err != nil {
		return nil, err
	}
	return &fi.Header, nil
}

// GetFieldNameByFieldHeader resolves a wire header back to its field name.
func (d *Definitions) GetFieldNameByFieldHeader(fh FieldHeader) (string, error) {
	fi, ok := d.fieldsByHeader[fh]
	if !ok {
		return "", fmt.Errorf("%w: %+v", ErrUnknownFieldHeader, fh)
	}
	return fi.FieldName, nil
}

// CreateFieldHeader builds a FieldHeader from raw type and field codes.
func (d *Definitions) CreateFieldHeader(typecode, fieldcode int32) FieldHeader {
	return FieldHeader{TypeCode: typecode, FieldCode: fieldcode}
}

// TypeCode returns the numeric code registered for a type name.
func (d *Definitions) TypeCode(typeName string) (int32, error) {
	code, ok := d.typeOrdinal[typeName]
	if !ok {
		return 0, fmt.Errorf("%w: %s", ErrUnknownTypeName, typeName)
	}
	return code, nil
}

// TypeName returns the type name registered for a numeric code.
func (d *Definitions) TypeName(code int32) (string, error) {
	name, ok := d.typeName[code]
	if !ok {
		return "", fmt.Errorf("%w: %d", ErrUnknownTypeCode, code)
	}
	return name, nil
}

// TransactionTypeCode returns the numeric code for a transaction type name.
func (d *Definitions) TransactionTypeCode(name string) (int32, error) {
	code, ok := d.transactionTypes[name]
	if !ok {
		return 0, fmt.Errorf("%w: %s", ErrUnknownTransactionType, name)
	}
	return code, nil
}

// TransactionTypeName returns the transaction type name for a numeric code.
func (d *Definitions) TransactionTypeName(code int32) (string, error) {
	name, ok := d.transactionTypeName[code]
	if !ok {
		return "", fmt.Errorf("%w: %d", ErrUnknownTransactionType, code)
	}
	return name, nil
}

// LedgerEntryTypeCode returns the numeric code for a ledger entry type name.
func (d *Definitions) LedgerEntryTypeCode(name string) (int32, error) {
	code, ok := d.ledgerEntryTypes[name]
	if !ok {
		return 0, fmt.Errorf("%w: %s", ErrUnknownLedgerEntryType, name)
	}
	return code, nil
}

// LedgerEntryTypeName returns the ledger entry type name for a numeric code.
func (d *Definitions) LedgerEntryTypeName(code int32) (string, error) {
	name, ok := d.ledgerEntryTypeName[code]
	if !ok {
		return "", fmt.Errorf("%w: %d", ErrUnknownLedgerEntryType, code)
	}
	return name, nil
}

// TransactionResultCode returns the numeric code for a transaction result name.
func (d *Definitions) TransactionResultCode(name string) (int32, error) {
	code, ok := d.transactionResults[name]
	if !ok {
		return 0, fmt.Errorf("%w: %s", ErrUnknownTransactionResult, name)
	}
	return code, nil
}

// TransactionResultName returns the transaction result name for a numeric code.
func (d *Definitions) TransactionResultName(code int32) (string, error) {
	name, ok := d.transactionResultName[code]
	if !ok {
		return "", fmt.Errorf("%w: %d", ErrUnknownTransactionResult, code)
	}
	return name, nil
}

// SortFieldsByOrdinal sorts field instances into canonical wire order.
func SortFieldsByOrdinal(fields []*FieldInstance) {
	sort.Slice(fields, func(i, j int) bool {
		return fields[i].Ordinal < fields[j].Ordinal
	})
}
