package addresscodec

import "errors"

// Version prefix bytes for the payload types this package encodes. Seed
// prefixes are deliberately omitted: seed handling is outside this
// package's scope.
const (
	prefixAccountID        = 0x00
	prefixAccountPublicKey = 0x23
	prefixNodePublicKey    = 0x1C
)

var ErrInvalidAccountIDLength = errors.New("addresscodec: AccountID must be 20 bytes")

// EncodeAccountID encodes a 20-byte account hash as a classic 'r...' address.
func EncodeAccountID(accountID []byte) (string, error) {
	if len(accountID) != 20 {
		return "", ErrInvalidAccountIDLength
	}
	payload := append([]byte{prefixAccountID}, accountID...)
	return Base58CheckEncode(payload), nil
}

// DecodeAccountID decodes a classic address back to its 20-byte account hash.
func DecodeAccountID(address string) ([]byte, error) {
	payload, err := Base58CheckDecode(address)
	if err != nil {
		return nil, err
	}
	if len(payload) != 21 || payload[0] != prefixAccountID {
		return nil, ErrInvalidAccountIDLength
	}
	return payload[1:], nil
}

// IsValidClassicAddress reports whether address is a well-formed, checksum
// valid classic XRPL address.
func IsValidClassicAddress(address string) bool {
	_, err := DecodeAccountID(address)
	return err == nil
}

// EncodeAccountPublicKey encodes a 33-byte compressed public key with the
// account-public-key version prefix ('a...' strings).
func EncodeAccountPublicKey(pubKey []byte) (string, error) {
	if len(pubKey) != 33 {
		return "", errors.New("addresscodec: public key must be 33 bytes")
	}
	payload := append([]byte{prefixAccountPublicKey}, pubKey...)
	return Base58CheckEncode(payload), nil
}

// EncodeNodePublicKey encodes a 33-byte compressed public key with the
// node-public-key version prefix ('n...' strings).
func EncodeNodePublicKey(pubKey []byte) (string, error) {
	if len(pubKey) != 33 {
		return "", errors.New("addresscodec: public key must be 33 bytes")
	}
	payload := append([]byte{prefixNodePublicKey}, pubKey...)
	return Base58CheckEncode(payload), nil
}

// DecodeAccountPublicKey reverses EncodeAccountPublicKey.
func DecodeAccountPublicKey(s string) ([]byte, error) {
	payload, err := Base58CheckDecode(s)
	if err != nil {
		return nil, err
	}
	if len(payload) != 34 || payload[0] != prefixAccountPublicKey {
		return nil, errors.New("addresscodec: not an account public key")
	}
	return payload[1:], nil
}

// DecodeNodePublicKey reverses EncodeNodePublicKey.
func DecodeNodePublicKey(s string) ([]byte, error) {
	payload, err := Base58CheckDecode(s)
	if err != nil {
		return nil, err
	}
	if len(payload) != 34 || payload[0] != prefixNodePublicKey {
		return nil, errors.New("addresscodec: not a node public key")
	}
	return payload[1:], nil
}
