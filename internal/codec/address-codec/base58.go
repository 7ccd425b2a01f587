// Package addresscodec implements the base58-with-checksum encoding XRPL
// uses for classic addresses and public/node key strings. Seed generation
// and keypair derivation live outside this package's scope.
package addresscodec

import (
	"crypto/sha256"
	"errors"
	"math/big"
)

// rippleAlphabet is XRPL's base58 alphabet: bitcoin's alphabet with the
// digit/letter ordering rearranged (rippled docs call it "ripple base58").
const rippleAlphabet = "rpshnaf39wBUDNEGHJKLM4PQRST7VWXYZ2bcdeCg65jkm8oFqi1tuvAxyz"

var (
	ErrInvalidChecksum   = errors.New("base58check: invalid checksum")
	ErrInvalidCharacter  = errors.New("base58check: invalid character")
	ErrPayloadTooShort   = errors.New("base58check: payload shorter than checksum")
)

var alphabetIndex = func() map[byte]int {
	m := make(map[byte]int, len(rippleAlphabet))
	for i := 0; i < len(rippleAlphabet); i++ {
		m[rippleAlphabet[i]] = i
	}
	return m
}()

var bigRadix = big.NewInt(58)

// base58Encode encodes raw bytes (no checksum) using the XRPL alphabet.
func base58Encode(input []byte) string {
	x := new(big.Int).SetBytes(input)
	mod := new(big.Int)
	var out []byte

	zero := big.NewInt(0)
	for x.Cmp(zero) > 0 {
		x.DivMod(x, bigRadix, mod)
		out = append(out, rippleAlphabet[mod.Int64()])
	}

	// preserve leading zero bytes as leading '1'-equivalent (first alphabet char)
	for _, b := range input {
		if b != 0 {
			break
		}
		out = append(out, rippleAlphabet[0])
	}

	// reverse
	for i, j := 0, len(out)-1; i < j; i, j = i+1, j-1 {
		out[i], out[j] = out[j], out[i]
	}
	if len(out) == 0 {
		return string(rippleAlphabet[0])
	}
	return string(out)
}

// base58Decode decodes a string encoded with the XRPL alphabet back to raw
// bytes (no checksum handling).
func base58Decode(s string) ([]byte, error) {
	x := big.NewInt(0)
	for i := 0; i < len(s); i++ {
		digit, ok := alphabetIndex[s[i]]
		if !ok {
			return nil, ErrInvalidCharacter
		}
		x.Mul(x, bigRadix)
		x.Add(x, big.NewInt(int64(digit)))
	}

	decoded := x.Bytes()

	// restore leading zero bytes represented by leading alphabet[0] chars
	leadingZeros := 0
	for i := 0; i < len(s) && s[i] == rippleAlphabet[0]; i++ {
		leadingZeros++
	}

	out := make([]byte, leadingZeros+len(decoded))
	copy(out[leadingZeros:], decoded)
	return out, nil
}

func doubleSHA256(b []byte) []byte {
	h1 := sha256.Sum256(b)
	h2 := sha256.Sum256(h1[:])
	return h2[:]
}

// Base58CheckEncode appends a 4-byte double-SHA256 checksum and encodes.
func Base58CheckEncode(payload []byte) string {
	checksum := doubleSHA256(payload)[:4]
	buf := make([]byte, 0, len(payload)+4)
	buf = append(buf, payload...)
	buf = append(buf, checksum...)
	return base58Encode(buf)
}

// Base58CheckDecode decodes and verifies the checksum, returning the payload.
func Base58CheckDecode(s string) ([]byte, error) {
	raw, err := base58Decode(s)
	if err != nil {
		return nil, err
	}
	if len(raw) < 4 {
		return nil, ErrPayloadTooShort
	}
	payload := raw[:len(raw)-4]
	checksum := raw[len(raw)-4:]

	expected := doubleSHA256(payload)[:4]
	for i := range checksum {
		if checksum[i] != expected[i] {
			return nil, ErrInvalidChecksum
		}
	}
	return payload, nil
}
