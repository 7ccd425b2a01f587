// Package binarycodec implements rippled's canonical binary serialization:
// translating JSON transactions and ledger objects to and from the
// deterministic byte format used for hashing, signing and wire transport.
package binarycodec

import (
	"encoding/binary"
	"encoding/hex"
	"fmt"
	"sort"
	"strings"

	addresscodec "github.com/ripplequill/xrplcodec/internal/codec/address-codec"
	"github.com/ripplequill/xrplcodec/internal/codec/binary-codec/definitions"
	"github.com/ripplequill/xrplcodec/internal/codec/binary-codec/serdes"
	"github.com/ripplequill/xrplcodec/internal/codec/binary-codec/types"
)

// Encode serializes a transaction or ledger object into its full canonical
// binary form (every serialized field, not just those needed for signing).
func Encode(value map[string]any) (string, error) {
	sink, err := serializeObject(value, func(fi *definitions.FieldInstance) bool {
		return fi.IsSerialized
	})
	if err != nil {
		return "", err
	}
	return strings.ToUpper(hex.EncodeToString(sink)), nil
}

// Decode parses a canonical binary blob back into its JSON object form.
func Decode(blobHex string) (map[string]any, error) {
	data, err := hex.DecodeString(blobHex)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedHex, err)
	}

	defs := definitions.Get()
	parser := serdes.NewBinaryParser(data, defs)

	out := map[string]any{}
	for parser.HasMore() {
		fi, err := parser.ReadField()
		if err != nil {
			return nil, err
		}
		value, err := types.DecodeFieldValue(parser, fi)
		if err != nil {
			return nil, fmt.Errorf("field %s: %w", fi.FieldName, err)
		}
		out[fi.FieldName] = value
	}
	return out, nil
}

// EncodeForSigning serializes only the fields needed to produce the
// transaction's single signature, prefixed with the STX hash prefix.
func EncodeForSigning(tx map[string]any) (string, error) {
	sink, err := serializeObject(tx, func(fi *definitions.FieldInstance) bool {
		return fi.IsSigningField
	})
	if err != nil {
		return "", err
	}
	return txSigPrefix + strings.ToUpper(hex.EncodeToString(sink)), nil
}

// EncodeForMultisigning serializes one signer's contribution to a
// multi-signature list: the signing fields (with SigningPubKey forced
// empty and any existing Signers dropped) prefixed with SMT, followed by
// the raw AccountID of the signer adding this signature.
func EncodeForMultisigning(tx map[string]any, signingAccount string) (string, error) {
	clone := make(map[string]any, len(tx))
	for k, v := range tx {
		if k == "Signers" {
			continue
		}
		clone[k] = v
	}
	clone["SigningPubKey"] = ""

	sink, err := serializeObject(clone, func(fi *definitions.FieldInstance) bool {
		return fi.IsSigningField
	})
	if err != nil {
		return "", err
	}

	accountID, err := addresscodec.DecodeAccountID(signingAccount)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrMalformedTransaction, err)
	}

	sink = append(sink, accountID...)
	return txMultiSigPrefix + strings.ToUpper(hex.EncodeToString(sink)), nil
}

// EncodeForSigningClaim serializes a payment channel claim: the channel ID
// and drops amount, concatenated with no field headers, prefixed with CLM.
func EncodeForSigningClaim(claim map[string]any) (string, error) {
	channelHex, _ := claim["Channel"].(string)
	channel, err := hex.DecodeString(channelHex)
	if err != nil || len(channel) != 32 {
		return "", fmt.Errorf("%w: Channel must be a 32-byte hex hash", ErrMalformedTransaction)
	}

	amount, _ := claim["Amount"].(string)
	amountBytes, err := (&types.Amount{}).FromJSON(amount)
	if err != nil {
		return "", fmt.Errorf("claim amount: %w", err)
	}

	sink := append(append([]byte{}, channel...), amountBytes...)
	return paymentChannelClaimPrefix + strings.ToUpper(hex.EncodeToString(sink)), nil
}

// EncodeForSigningBatch serializes a Batch transaction's inner transaction
// set for the outer batch signature: flags, the count of inner IDs, then
// each 32-byte transaction ID, sorted ascending, prefixed with BCH.
func EncodeForSigningBatch(batch map[string]any) (string, error) {
	flags, err := toUint(batch["flags"], 0xffffffff)
	if err != nil {
		return "", fmt.Errorf("batch flags: %w", err)
	}

	rawIDs, ok := batch["txIDs"].([]string)
	if !ok {
		return "", fmt.Errorf("%w: txIDs must be a list of hex hashes", ErrMalformedTransaction)
	}

	ids := make([][]byte, len(rawIDs))
	for i, idHex := range rawIDs {
		id, err := hex.DecodeString(idHex)
		if err != nil || len(id) != 32 {
			return "", fmt.Errorf("%w: txID %d is not a 32-byte hex hash", ErrMalformedTransaction, i)
		}
		ids[i] = id
	}
	sort.Slice(ids, func(i, j int) bool {
		return string(ids[i]) < string(ids[j])
	})

	var sink []byte
	var header [8]byte
	binary.BigEndian.PutUint32(header[0:4], uint32(flags))
	binary.BigEndian.PutUint32(header[4:8], uint32(len(ids)))
	sink = append(sink, header[:]...)
	for _, id := range ids {
		sink = append(sink, id...)
	}

	return batchPrefix + strings.ToUpper(hex.EncodeToString(sink)), nil
}

// TransactionID returns the hex transaction ID (SHA-512Half of the
// TXN-prefixed, fully-serialized transaction blob).
func TransactionID(tx map[string]any) (string, error) {
	encoded, err := Encode(tx)
	if err != nil {
		return "", err
	}
	blob, err := hex.DecodeString(encoded)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrMalformedHex, err)
	}

	prefixed := append(hexMustDecode(transactionIDPrefix), blob...)
	return strings.ToUpper(hex.EncodeToString(sha512Half(prefixed))), nil
}

func hexMustDecode(s string) []byte {
	b, _ := hex.DecodeString(s)
	return b
}

// serializeObject sorts value's fields into canonical wire order, keeping
// only those for which keep returns true, and concatenates their encoded
// (header, [VL], value) triples.
func serializeObject(value map[string]any, keep func(*definitions.FieldInstance) bool) ([]byte, error) {
	defs := definitions.Get()
	fields := make([]*definitions.FieldInstance, 0, len(value))
	for name := range value {
		fi, err := defs.GetFieldInstanceByFieldName(name)
		if err != nil {
			return nil, err
		}
		if keep(fi) {
			fields = append(fields, fi)
		}
	}
	sort.Slice(fields, func(i, j int) bool { return fields[i].Ordinal < fields[j].Ordinal })

	codec := serdes.NewFieldIDCodec(defs)
	ser := serdes.NewBinarySerializer(codec)
	for _, fi := range fields {
		valueBytes, err := types.EncodeFieldValue(fi, value[fi.FieldName])
		if err != nil {
			return nil, fmt.Errorf("field %s: %w", fi.FieldName, err)
		}
		if err := ser.WriteFieldAndValue(*fi, valueBytes); err != nil {
			return nil, fmt.Errorf("field %s: %w", fi.FieldName, err)
		}
	}

	return ser.GetSink(), nil
}

func toUint(value any, max uint64) (uint64, error) {
	switch v := value.(type) {
	case uint32:
		return uint64(v), nil
	case uint64:
		return v, nil
	case int:
		return uint64(v), nil
	case float64:
		return uint64(v), nil
	default:
		return 0, fmt.Errorf("unsupported numeric type %T", value)
	}
}
