package addresscodec

import (
	"encoding/hex"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Address vectors below are the well-known genesis ("masterpassphrase") and
// a derived ed25519 account, pinned here as golden AccountID <-> classic
// address conversions independent of any key derivation.
func TestClassicAddressVectors(t *testing.T) {
	tests := []struct {
		name      string
		address   string
		wantValid bool
	}{
		{"secp256k1 masterpassphrase address", "rHb9CJAWyB4rj91VRWn96DkukG4bwdtyTh", true},
		{"ed25519 masterpassphrase address", "rGWrZyQqhTp9Xu7G5Pkayo7bXjH4k4QYpf", true},
		{"bad checksum", "rHb9CJAWyB4rj91VRWn96DkukG4bwdtyTi", false},
		{"invalid character O", "rOOOOJAWyB4rj91VRWn96DkukG4bwdtyTh", false},
		{"empty string", "", false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.wantValid, IsValidClassicAddress(tc.address))
		})
	}
}

func TestAccountIDRoundTrip(t *testing.T) {
	tests := []struct {
		name      string
		accountID string // hex
	}{
		{"all zero", "0000000000000000000000000000000000000000"},
		{"genesis-like hash", "B5F762798A53D543A014CAF8B297CFF8F2F937E8"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			raw, err := hex.DecodeString(tc.accountID)
			require.NoError(t, err)
			require.Len(t, raw, 20)

			address, err := EncodeAccountID(raw)
			require.NoError(t, err)
			assert.True(t, IsValidClassicAddress(address))

			decoded, err := DecodeAccountID(address)
			require.NoError(t, err)
			assert.Equal(t, raw, decoded)
		})
	}
}

func TestDecodeAccountIDRejectsWrongVersion(t *testing.T) {
	pubKey := make([]byte, 33)
	pubKey[0] = 0x02
	encoded, err := EncodeAccountPublicKey(pubKey)
	require.NoError(t, err)

	_, err = DecodeAccountID(encoded)
	assert.Error(t, err)
}

func TestAccountPublicKeyRoundTrip(t *testing.T) {
	pubKey := make([]byte, 33)
	pubKey[0] = 0x03
	for i := 1; i < 33; i++ {
		pubKey[i] = byte(i)
	}

	encoded, err := EncodeAccountPublicKey(pubKey)
	require.NoError(t, err)
	assert.Equal(t, byte('a'), encoded[0])

	decoded, err := DecodeAccountPublicKey(encoded)
	require.NoError(t, err)
	assert.Equal(t, pubKey, decoded)
}

func TestNodePublicKeyRoundTrip(t *testing.T) {
	pubKey := make([]byte, 33)
	pubKey[0] = 0x03
	for i := 1; i < 33; i++ {
		pubKey[i] = byte(64 - i)
	}

	encoded, err := EncodeNodePublicKey(pubKey)
	require.NoError(t, err)
	assert.Equal(t, byte('n'), encoded[0])

	decoded, err := DecodeNodePublicKey(encoded)
	require.NoError(t, err)
	assert.Equal(t, pubKey, decoded)
}

func TestBase58CheckRejectsBadChecksum(t *testing.T) {
	encoded := Base58CheckEncode([]byte{0x00, 0x01, 0x02, 0x03})
	// flip the last character, which is part of the checksum tail
	mutated := []byte(encoded)
	if mutated[len(mutated)-1] == 'r' {
		mutated[len(mutated)-1] = 'p'
	} else {
		mutated[len(mutated)-1] = 'r'
	}

	_, err := Base58CheckDecode(string(mutated))
	assert.Error(t, err)
}
