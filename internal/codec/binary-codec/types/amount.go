//revive:disable:var-naming
package types

import (
	"encoding/binary"
	"fmt"
	"math/big"
	"strings"

	"github.com/shopspring/decimal"

	addresscodec "github.com/ripplequill/xrplcodec/internal/codec/address-codec"
	"github.com/ripplequill/xrplcodec/internal/codec/binary-codec/types/interfaces"
)

// IOU amount layout constants, matching rippled's STAmount encoding exactly.
const (
	MinIOUExponent  = -96
	MaxIOUExponent  = 80
	MaxIOUPrecision = 16

	MinIOUMantissa uint64 = 1_000_000_000_000_000
	MaxIOUMantissa uint64 = 9_999_999_999_999_999

	NotXRPBitMask         uint64 = 0x80
	PosSignBitMask        uint64 = 0x4000000000000000
	ZeroCurrencyAmountHex uint64 = 0x8000000000000000

	NativeAmountByteLength   = 8
	CurrencyAmountByteLength = 48

	maxDrops    = 100_000_000_000_000_000 // 100 billion XRP
	iouExpBias  = 97
)

// Amount encodes either native XRP (a string of drops) or an issued-currency
// amount (an object with value/currency/issuer).
type Amount struct{}

func (a *Amount) FromJSON(value any) ([]byte, error) {
	switch v := value.(type) {
	case string:
		return encodeXRPAmount(v)
	case map[string]any:
		return encodeIOUAmount(v)
	default:
		return nil, fmt.Errorf("%w: unsupported amount shape %T", ErrMalformedAmountObject, value)
	}
}

func (a *Amount) ToJSON(p interfaces.BinaryParser, _ ...int) (any, error) {
	first, err := p.Peek()
	if err != nil {
		return nil, err
	}

	if isNative(first) {
		raw, err := p.ReadBytes(8)
		if err != nil {
			return nil, err
		}
		word := binary.BigEndian.Uint64(raw)
		drops := word &^ PosSignBitMask
		if !isPositive(first) {
			return nil, fmt.Errorf("%w: negative native amount", ErrNegativeXRPAmount)
		}
		return fmt.Sprintf("%d", drops), nil
	}

	raw, err := p.ReadBytes(8)
	if err != nil {
		return nil, err
	}
	currencyRaw, err := p.ReadBytes(20)
	if err != nil {
		return nil, err
	}
	issuerRaw, err := p.ReadBytes(20)
	if err != nil {
		return nil, err
	}

	word := binary.BigEndian.Uint64(raw)
	value, err := decodeIOUValue(word)
	if err != nil {
		return nil, err
	}

	issuer, err := addresscodec.EncodeAccountID(issuerRaw)
	if err != nil {
		return nil, err
	}

	return map[string]any{
		"value":    value,
		"currency": deserializeCurrencyCode(currencyRaw),
		"issuer":   issuer,
	}, nil
}

func isNative(firstByte byte) bool {
	return firstByte&0x80 == 0
}

func isPositive(firstByte byte) bool {
	return firstByte&0x40 != 0
}

func verifyXrpValue(drops string) error {
	if drops == "" {
		return ErrNonIntegerXRPAmount
	}
	if strings.Contains(drops, ".") || strings.ContainsAny(drops, "eE") {
		return ErrNonIntegerXRPAmount
	}
	n, ok := new(big.Int).SetString(drops, 10)
	if !ok {
		return ErrNonIntegerXRPAmount
	}
	if n.Sign() < 0 {
		return ErrNegativeXRPAmount
	}
	if n.Cmp(big.NewInt(maxDrops)) > 0 {
		return ErrXRPAmountOutOfRange
	}
	return nil
}

func encodeXRPAmount(drops string) ([]byte, error) {
	if err := verifyXrpValue(drops); err != nil {
		return nil, err
	}
	n, _ := new(big.Int).SetString(drops, 10)
	word := PosSignBitMask | n.Uint64()
	buf := make([]byte, 8)
	binary.BigEndian.PutUint64(buf, word)
	return buf, nil
}

func encodeIOUAmount(obj map[string]any) ([]byte, error) {
	value, _ := obj["value"].(string)
	currency, _ := obj["currency"].(string)
	issuer, _ := obj["issuer"].(string)
	if value == "" || currency == "" || issuer == "" {
		return nil, ErrMalformedAmountObject
	}

	valueBytes, err := encodeIOUValue(value)
	if err != nil {
		return nil, err
	}

	currencyBytes, err := serializeIssuedCurrencyCode(currency)
	if err != nil {
		return nil, err
	}

	issuerBytes, err := addresscodec.DecodeAccountID(issuer)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidAccountID, err)
	}

	out := make([]byte, 0, 48)
	out = append(out, valueBytes...)
	out = append(out, currencyBytes...)
	out = append(out, issuerBytes...)
	return out, nil
}

// verifyIOUValue validates a decimal string against rippled's IOU
// precision/exponent bounds without producing the final wire bytes.
func verifyIOUValue(value string) error {
	d, err := decimal.NewFromString(value)
	if err != nil {
		return fmt.Errorf("invalid decimal value %q: %w", value, err)
	}
	if d.IsZero() {
		return nil
	}
	_, _, err = canonicalMantissaExponent(d)
	return err
}

// canonicalMantissaExponent strips trailing zeros from d's coefficient and
// returns the canonical (mantissa-in-[1e15,1e16), adjustedExponent) pair,
// or an *OutOfRangeError if d cannot be represented.
func canonicalMantissaExponent(d decimal.Decimal) (uint64, int, error) {
	abs := d.Abs()
	coeff := new(big.Int).Set(abs.Coefficient())
	exponent := int(abs.Exponent())

	ten := big.NewInt(10)
	zero := big.NewInt(0)
	q, mod := new(big.Int), new(big.Int)
	for coeff.Cmp(zero) != 0 {
		q.QuoRem(coeff, ten, mod)
		if mod.Cmp(zero) != 0 {
			break
		}
		coeff.Set(q)
		exponent++
	}

	precision := len(coeff.String())
	if precision > MaxIOUPrecision {
		return 0, 0, &OutOfRangeError{Type: "Precision"}
	}

	adjustedExponent := exponent + precision - MaxIOUPrecision
	if adjustedExponent < MinIOUExponent || adjustedExponent > MaxIOUExponent {
		return 0, 0, &OutOfRangeError{Type: "Exponent"}
	}

	pad := new(big.Int).Exp(ten, big.NewInt(int64(MaxIOUPrecision-precision)), nil)
	mantissaBig := new(big.Int).Mul(coeff, pad)

	return mantissaBig.Uint64(), adjustedExponent, nil
}

func encodeIOUValue(value string) ([]byte, error) {
	d, err := decimal.NewFromString(value)
	if err != nil {
		return nil, fmt.Errorf("invalid decimal value %q: %w", value, err)
	}

	buf := make([]byte, 8)
	if d.IsZero() {
		binary.BigEndian.PutUint64(buf, ZeroCurrencyAmountHex)
		return buf, nil
	}

	mantissa, adjustedExponent, err := canonicalMantissaExponent(d)
	if err != nil {
		return nil, err
	}

	word := uint64(1) << 63
	if !d.IsNegative() {
		word |= PosSignBitMask
	}
	word |= uint64(adjustedExponent+iouExpBias) << 54
	word |= mantissa

	binary.BigEndian.PutUint64(buf, word)
	return buf, nil
}

func decodeIOUValue(word uint64) (string, error) {
	if word == ZeroCurrencyAmountHex {
		return "0", nil
	}

	positive := word&PosSignBitMask != 0
	storedExp := int((word >> 54) & 0xff)
	mantissa := word & ((1 << 54) - 1)
	exponent := storedExp - iouExpBias

	d := decimal.New(int64(mantissa), int32(exponent))
	if !positive {
		d = d.Neg()
	}
	return d.String(), nil
}
