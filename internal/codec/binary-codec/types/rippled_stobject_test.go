package types

import (
	"encoding/hex"
	"testing"

	"github.com/ripplequill/xrplcodec/internal/codec/binary-codec/definitions"
	"github.com/ripplequill/xrplcodec/internal/codec/binary-codec/serdes"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// =============================================================================
// Test vectors derived from rippled src/test/protocol/STObject_test.cpp
// These tests verify field ordering, nested objects, and binary format compliance.
// =============================================================================

// TestFieldOrdering_RippledVectors verifies fields are serialized in ordinal order.
// From testSerialization() in STObject_test.cpp - fields must be sorted by ordinal.
func TestFieldOrdering_RippledVectors(t *testing.T) {
	defs := definitions.Get()

	// Test that fields with lower ordinals come first in serialized output
	tests := []struct {
		name     string
		input    map[string]any
		expected string // expected hex output
	}{
		{
			name: "basic field ordering",
			input: map[string]any{
				"Fee":           "10",       // ordinal varies
				"Flags":         uint32(524288),
				"OfferSequence": uint32(1752791),
				"TakerGets":     "150000000000",
			},
			expected: "22000800002019001abed76540000022ecb25c0068400000000000000a",
		},
		{
			name: "transaction type comes first",
			input: map[string]any{
				"TransactionType":   "Payment",
				"TransactionResult": 0,
				"Fee":               "10",
				"Flags":             uint32(524288),
				"OfferSequence":     uint32(1752791),
				"TakerGets":         "150000000000",
			},
			expected: "12000022000800002019001abed76540000022ecb25c0068400000000000000a031000",
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			serializer := serdes.NewBinarySerializer(serdes.NewFieldIDCodec(defs))
			stObject := NewSTObject(serializer)

			result, err := stObject.FromJSON(tc.input)
			require.NoError(t, err)

			actualHex := hex.EncodeToString(result)
			assert.Equal(t, tc.expected, actualHex, "Field ordering mismatch")
		})
	}
}

// TestNestedSTObject_RippledVectors tests nested object serialization.
// From testSerialization() and testFields() - STObjects can contain other STObjects.
func TestNestedSTObject_RippledVectors(t *testing.T) {
	defs := definitions.Get()

	tests := []struct {
		name     string
		input    map[string]any
		expected string
	}{
		{
			name: "Memo nested object",
			input: map[string]any{
				"Memo": map[string]any{
					"MemoType": "04C4D46544659A2D58525043686174",
				},
			},
			expected: "ea7c0f04c4d46544659a2d58525043686174e1",
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			serializer := serdes.NewBinarySerializer(serdes.NewFieldIDCodec(defs))
			stObject := NewSTObject(serializer)

			result, err := stObject.FromJSON(tc.input)
			require.NoError(t, err)

			actualHex := hex.EncodeToString(result)
			assert.Equal(t, tc.expected, actualHex)
		})
	}
}

// TestSTArrayFields_RippledVectors tests array field serialization.
// From testParseJSONArray() in STObject_test.cpp
func TestSTArrayFields_RippledVectors(t *testing.T) {
	defs := definitions.Get()

	tests := []struct {
		name        string
		input       map[string]any
		expectError bool
	}{
		{
			name: "Memos array with single memo",
			input: map[string]any{
				"Memos": []any{
					map[string]any{
						"Memo": map[string]any{
							"MemoData": "04C4D46544659A2D58525043686174",
						},
					},
				},
			},
			expectError: false,
		},
		{
			name: "Paths array",
			input: map[string]any{
				"Paths": []any{
					[]any{
						map[string]any{
							"account":  "rPDXxSZcuVL3ZWoyU82bcde3zwvmShkRyF",
							"type":     1,
							"type_hex": "0000000000000001",
						},
						map[string]any{
							"currency": "XRP",
							"type":     16,
							"type_hex": "0000000000000010",
						},
					},
				},
			},
			expectError: false,
		},
		{
			name: "Amendments vector256",
			input: map[string]any{
				"Amendments": []string{
					"73734B611DDA23D3F5F62E20A173B78AB8406AC5015094DA53F53D39B9EDB06C",
					"73734B611DDA23D3F5F62E20A173B78AB8406AC5015094DA53F53D39B9EDB06C",
				},
			},
			expectError: false,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			serializer := serdes.NewBinarySerializer(serdes.NewFieldIDCodec(defs))
			stObject := NewSTObject(serializer)

			result, err := stObject.FromJSON(tc.input)

			if tc.expectError {
				require.Error(t, err)
			} else {
				require.NoError(t, err)
				require.NotEmpty(t, result)
			}
		})
	}
}

// TestSTObjectRoundtrip_RippledVectors tests serialize -> deserialize roundtrip.
// From testSerialization() pattern in STObject_test.cpp
func TestSTObjectRoundtrip_RippledVectors(t *testing.T) {
	defs := definitions.Get()

	tests := []struct {
		name     string
		input    map[string]any
		expected map[string]any // nil means compare to input
	}{
		{
			name: "basic fields roundtrip",
			input: map[string]any{
				"Fee":           "10",
				"Flags":         uint32(524288),
				"OfferSequence": uint32(1752791),
				"TakerGets":     "150000000000",
			},
			expected: nil,
		},
		{
			name: "with IOU amount",
			input: map[string]any{
				"TakerPays": map[string]any{
					"currency": "USD",
					"issuer":   "rvYAfWj5gh67oV6fW32ZzP3Aw4Eubs59B",
					"value":    "7072.8",
				},
			},
			expected: nil,
		},
		{
			name: "transaction type",
			input: map[string]any{
				"TransactionType": "Payment",
				"Fee":             "10",
			},
			expected: nil,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			// Serialize
			serializer := serdes.NewBinarySerializer(serdes.NewFieldIDCodec(defs))
			stObject := NewSTObject(serializer)

			serialized, err := stObject.FromJSON(tc.input)
			require.NoError(t, err)

			// Deserialize
			parser := serdes.NewBinaryParser(serialized, defs)
			stObject2 := NewSTObject(serdes.NewBinarySerializer(serdes.NewFieldIDCodec(defs)))

			deserialized, err := stObject2.ToJSON(parser)
			require.NoError(t, err)

			result, ok := deserialized.(map[string]any)
			require.True(t, ok)

			// Compare fields
			expected := tc.expected
			if expected == nil {
				expected = tc.input
			}

			for key, expectedVal := range expected {
				actualVal, exists := result[key]
				require.True(t, exists, "Field %s missing", key)
				assert.Equal(t, expectedVal, actualVal, "Field %s mismatch", key)
			}
		})
	}
}

// TestMalformedBinary_RippledVectors tests handling of malformed binary input.
// From testMalformed() in STObject_test.cpp
func TestMalformedBinary_RippledVectors(t *testing.T) {
	defs := definitions.Get()

	tests := []struct {
		name        string
		hexInput    string
		expectedErr string
	}{
		{
			name:        "duplicate field in array",
			hexInput:    "e912abcd12fedc", // From rippled test
			expectedErr: "",               // Should error but exact message may vary
		},
		{
			name:        "duplicate field in object",
			hexInput:    "e2e1e2", // From rippled test
			expectedErr: "",      // Should error but exact message may vary
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			data, err := hex.DecodeString(tc.hexInput)
			require.NoError(t, err)

			parser := serdes.NewBinaryParser(data, defs)
			stObject := NewSTObject(serdes.NewBinarySerializer(serdes.NewFieldIDCodec(defs)))

			_, err = stObject.ToJSON(parser)
			// These should produce errors for malformed input
			// The exact error may vary from rippled's implementation
			require.Error(t, err)
			if tc.expectedErr != "" {
				assert.Contains(t, err.Error(), tc.expectedErr)
			}
		})
	}
}

// TestFieldIDEncoding_RippledVectors tests field ID encoding.
// Fields are encoded as type code + field code in 1-3 bytes.
func TestFieldIDEncoding_RippledVectors(t *testing.T) {
	defs := definitions.Get()
	fieldIDCodec := serdes.NewFieldIDCodec(defs)

	tests := []struct {
		name        string
		fieldName   string
		expectedHex string
	}{
		// Common fields (type < 16, field < 16) = 1 byte
		{
			name:        "TransactionType (type=1, field=2)",
			fieldName:   "TransactionType",
			expectedHex: "12", // (1 << 4) | 2 = 0x12
		},
		{
			name:        "Flags (type=2, field=2)",
			fieldName:   "Flags",
			expectedHex: "22", // (2 << 4) | 2 = 0x22
		},
		{
			name:        "Sequence (type=2, field=4)",
			fieldName:   "Sequence",
			expectedHex: "24", // (2 << 4) | 4 = 0x24
		},
		// UInt64 field (type=3, field=4) = 1 byte
		{
			name:        "OwnerNode (type=3, field=4)",
			fieldName:   "OwnerNode",
			expectedHex: "34", // (3 << 4) | 4
		},
		// Account field (type=8, field=1)
		{
			name:        "Account",
			fieldName:   "Account",
			expectedHex: "81",
		},
		// Fee (type=6, field=8)
		{
			name:        "Fee",
			fieldName:   "Fee",
			expectedHex: "68",
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			encoded, err := fieldIDCodec.Encode(tc.fieldName)
			require.NoError(t, err)

			actualHex := hex.EncodeToString(encoded)
			assert.Equal(t, tc.expectedHex, actualHex, "Field ID encoding mismatch for %s", tc.fieldName)
		})
	}
}

// TestObjectEndMarker verifies STObject end marker (0xE1) is used correctly.
// From rippled protocol - nested objects end with 0xE1
func TestObjectEndMarker(t *testing.T) {
	defs := definitions.Get()

	// Nested object should end with 0xE1
	input := map[string]any{
		"Memo": map[string]any{
			"MemoType": "636C69656E74",
		},
	}

	serializer := serdes.NewBinarySerializer(serdes.NewFieldIDCodec(defs))
	stObject := NewSTObject(serializer)

	result, err := stObject.FromJSON(input)
	require.NoError(t, err)

	// Last byte should be 0xE1 (ObjectEndMarker)
	require.NotEmpty(t, result)
	assert.Equal(t, byte(0xE1), result[len(result)-1], "STObject should end with ObjectEndMarker 0xE1")
}

// TestCompleteTransaction_RippledVectors tests a complete transaction encoding/decoding.
// This is a real OfferCreate transaction that must match rippled's encoding exactly.
func TestCompleteTransaction_RippledVectors(t *testing.T) {
	defs := definitions.Get()

	// Complete transaction from rippled tests
	input := map[string]any{
		"Account":       "rMBzp8CgpE441cp5PVyA9rpVV7oT8hP3ys",
		"Expiration":    uint32(595640108),
		"Fee":           "10",
		"Flags":         uint32(524288),
		"OfferSequence": uint32(1752791),
		"Sequence":      uint32(1752792),
		"SigningPubKey": "03EE83BB432547885C219634A1BC407A9DB0474145D69737D09CCDC63E1DEE7FE3",
		"TakerGets":     "15000000000",
		"TakerPays": map[string]any{
			"currency": "USD",
			"issuer":   "rvYAfWj5gh67oV6fW32ZzP3Aw4Eubs59B",
			"value":    "7072.8",
		},
		"TransactionType": "OfferCreate",
		"TxnSignature":    "30440220143759437C04F7B61F012563AFE90D8DAFC46E86035E1D965A9CED282C97D4CE02204CFD241E86F17E011298FC1A39B63386C74306A5DE047E213B0F29EFA4571C2C",
	}

	expectedHex := "120007220008000024001abed82a2380bf2c2019001abed764d55920ac9391400000000000000000000000000055534400000000000a20b3c85f482532a9578dbb3950b85ca06594d165400000037e11d60068400000000000000a732103ee83bb432547885c219634a1bc407a9db0474145d69737d09ccdc63e1dee7fe3744630440220143759437c04f7b61f012563afe90d8dafc46e86035e1d965a9ced282c97d4ce02204cfd241e86f17e011298fc1a39b63386c74306a5de047e213b0f29efa4571c2c8114dd76483facdee26e60d8a586bb58d09f27045c46"

	// Encode
	serializer := serdes.NewBinarySerializer(serdes.NewFieldIDCodec(defs))
	stObject := NewSTObject(serializer)

	result, err := stObject.FromJSON(input)
	require.NoError(t, err)

	actualHex := hex.EncodeToString(result)
	assert.Equal(t, expectedHex, actualHex, "Complete transaction encoding must match rippled")

	// Decode and verify roundtrip
	parser := serdes.NewBinaryParser(result, defs)
	stObject2 := NewSTObject(serdes.NewBinarySerializer(serdes.NewFieldIDCodec(defs)))

	decoded, err := stObject2.ToJSON(parser)
	require.NoError(t, err)

	decodedMap, ok := decoded.(map[string]any)
	require.True(t, ok)

	// Verify key fields
	assert.Equal(t, "OfferCreate", decodedMap["TransactionType"])
	assert.Equal(t, uint32(524288), decodedMap["Flags"])
	assert.Equal(t, "10", decodedMap["Fee"])
	assert.Equal(t, "rMBzp8CgpE441cp5PVyA9rpVV7oT8hP3ys", decodedMap["Account"])
}

// TestZeroIssuedCurrencyAmount_RippledVectors tests zero IOU amount encoding.
// This is a special case in the protocol.
func TestZeroIssuedCurrencyAmount_RippledVectors(t *testing.T) {
	defs := definitions.Get()

	input := map[string]any{
		"LowLimit": map[string]any{
			"currency": "LUC",
			"issuer":   "rsygE5ynt2iSasscfCCeqaGBGiFKMCAUu7",
			"value":    "0",
		},
	}

	expectedHex := "6680000000000000000000000000000000000000004c5543000000000020a85019ea62b48f79eb67273b797eb916438fa4"

	serializer := serdes.NewBinarySerializer(serdes.NewFieldIDCodec(defs))
	stObject := NewSTObject(serializer)

	result, err := stObject.FromJSON(input)
	require.NoError(t, err)

	actualHex := hex.EncodeToString(result)
	assert.Equal(t, expectedHex, actualHex, "Zero IOU amount encoding must match rippled")
}

// TestHashFieldTypes_RippledVectors tests Hash128, Hash160, Hash256 encoding.
func TestHashFieldTypes_RippledVectors(t *testing.T) {
	defs := definitions.Get()

	tests := []struct {
		name     string
		input    map[string]any
		expected string
	}{
		{
			name:     "Hash128 - EmailHash",
			input:    map[string]any{"EmailHash": "73734B611DDA23D3F5F62E20A173B78A"},
			expected: "4173734b611dda23d3f5f62e20a173b78a",
		},
		{
			name:     "Hash160 - TakerPaysCurrency",
			input:    map[string]any{"TakerPaysCurrency": "73734B611DDA23D3F5F62E20A173B78AB8406AC5"},
			expected: "011173734b611dda23d3f5f62e20a173b78ab8406ac5",
		},
		{
			name:     "Hash256 - Digest",
			input:    map[string]any{"Digest": "73734B611DDA23D3F5F62E20A173B78AB8406AC5015094DA53F53D39B9EDB06C"},
			expected: "5e73734b611dda23d3f5f62e20a173b78ab8406ac5015094da53f53d39b9edb06c",
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			serializer := serdes.NewBinarySerializer(serdes.NewFieldIDCodec(defs))
			stObject := NewSTObject(serializer)

			result, err := stObject.FromJSON(tc.input)
			require.NoError(t, err)

			actualHex := hex.EncodeToString(result)
			assert.Equal(t, tc.expected, actualHex)
		})
	}
}

// TestUIntFieldTypes_RippledVectors tests UInt8, UInt16, UInt32, UInt64 encoding.
func TestUIntFieldTypes_RippledVectors(t *testing.T) {
	defs := definitions.Get()

	tests := []struct {
		name     string
		input    map[string]any
		expected string
	}{
		{
			name:     "UInt8 - CloseResolution",
			input:    map[string]any{"CloseResolution": 25},
			expected: "011019",
		},
		{
			name:     "UInt16 - LedgerEntryType",
			input:    map[string]any{"LedgerEntryType": "RippleState"},
			expected: "110072",
		},
		{
			name:     "UInt16 - TransferFee",
			input:    map[string]any{"TransferFee": 30874},
			expected: "14789a",
		},
		{
			name:     "UInt64 - OwnerNode",
			input:    map[string]any{"OwnerNode": "0000018446744073"},
			expected: "340000018446744073",
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			serializer := serdes.NewBinarySerializer(serdes.NewFieldIDCodec(defs))
			stObject := NewSTObject(serializer)

			result, err := stObject.FromJSON(tc.input)
			require.NoError(t, err)

			actualHex := hex.EncodeToString(result)
			assert.Equal(t, tc.expected, actualHex)
		})
	}
}
