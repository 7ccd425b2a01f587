//revive:disable:var-naming
package types

import (
	"encoding/hex"
	"fmt"
	"regexp"
	"strings"
)

var isoCurrencyPattern = regexp.MustCompile(`^[A-Za-z0-9?!@#$%^&*(){}\[\]|<>_.,~:;/\\'"+=-]{3}$`)
var hexCurrencyPattern = regexp.MustCompile(`^[0-9A-Fa-f]{40}$`)

// serializeIssuedCurrencyCode encodes a currency identifier (a 3-character
// ISO-style code or a 40-hex-digit 160-bit code) into its 20-byte wire form.
// "XRP" is reserved for the native currency and is never valid here.
func serializeIssuedCurrencyCode(currency string) ([]byte, error) {
	switch {
	case isoCurrencyPattern.MatchString(currency):
		if strings.EqualFold(currency, "XRP") {
			return nil, ErrReservedCurrencyXRP
		}
		buf := make([]byte, 20)
		copy(buf[12:15], currency)
		return buf, nil

	case hexCurrencyPattern.MatchString(currency):
		buf, err := hex.DecodeString(currency)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrInvalidCurrencyCode, err)
		}
		if isReservedXRPCode(buf) {
			return nil, ErrReservedCurrencyXRP
		}
		return buf, nil

	default:
		return nil, fmt.Errorf("%w: %q", ErrInvalidCurrencyCode, currency)
	}
}

func isReservedXRPCode(buf []byte) bool {
	if len(buf) != 20 {
		return false
	}
	for i, b := range buf {
		if i >= 12 && i <= 14 {
			continue
		}
		if b != 0 {
			return false
		}
	}
	return strings.EqualFold(string(buf[12:15]), "XRP")
}

// deserializeCurrencyCode turns a 20-byte wire value back into its display
// form: "XRP" for 20 zero bytes, the 3-letter ISO code when the bytes
// follow that convention, otherwise the full 40-character hex string.
func deserializeCurrencyCode(buf []byte) string {
	if len(buf) == 20 {
		isStandardForm := true
		for i, b := range buf {
			if i >= 12 && i <= 14 {
				continue
			}
			if b != 0 {
				isStandardForm = false
				break
			}
		}
		if isStandardForm {
			code := string(buf[12:15])
			if code == "\x00\x00\x00" {
				return "XRP"
			}
			if isoCurrencyPattern.MatchString(code) {
				return code
			}
		}
	}
	return strings.ToUpper(hex.EncodeToString(buf))
}
