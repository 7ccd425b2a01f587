package definitions

import "errors"

var (
	ErrUnknownFieldName         = errors.New("unknown field name")
	ErrUnknownFieldHeader       = errors.New("unknown field header")
	ErrUnknownTypeName          = errors.New("unknown type name")
	ErrUnknownTypeCode          = errors.New("unknown type code")
	ErrUnknownTransactionType   = errors.New("unknown transaction type")
	ErrUnknownLedgerEntryType   = errors.New("unknown ledger entry type")
	ErrUnknownTransactionResult = errors.New("unknown transaction result")
)
