//revive:disable:var-naming
package types

import (
	"fmt"
	"strings"

	addresscodec "github.com/ripplequill/xrplcodec/internal/codec/address-codec"
	"github.com/ripplequill/xrplcodec/internal/codec/binary-codec/types/interfaces"
)

// Issue identifies an asset (currency plus, unless XRP, issuer) without a
// value attached, used by AMM-style fields such as Asset and Asset2.
type Issue struct{}

func (i *Issue) FromJSON(value any) ([]byte, error) {
	obj, ok := value.(map[string]any)
	if !ok {
		return nil, fmt.Errorf("%w: expected object", ErrMalformedIssueObject)
	}

	currency, _ := obj["currency"].(string)
	if currency == "" {
		return nil, ErrMalformedIssueObject
	}

	if strings.EqualFold(currency, "XRP") {
		return make([]byte, 20), nil
	}

	currencyBytes, err := serializeIssuedCurrencyCode(currency)
	if err != nil {
		return nil, err
	}

	issuer, _ := obj["issuer"].(string)
	if issuer == "" {
		return nil, ErrMalformedIssueObject
	}
	issuerBytes, err := addresscodec.DecodeAccountID(issuer)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidAccountID, err)
	}

	return append(currencyBytes, issuerBytes...), nil
}

func (i *Issue) ToJSON(p interfaces.BinaryParser, _ ...int) (any, error) {
	currencyRaw, err := p.ReadBytes(20)
	if err != nil {
		return nil, err
	}

	if isZeroBytes(currencyRaw) {
		return map[string]any{"currency": "XRP"}, nil
	}
	currency := deserializeCurrencyCode(currencyRaw)

	issuerRaw, err := p.ReadBytes(20)
	if err != nil {
		return nil, err
	}
	issuer, err := addresscodec.EncodeAccountID(issuerRaw)
	if err != nil {
		return nil, err
	}

	return map[string]any{
		"currency": currency,
		"issuer":   issuer,
	}, nil
}

func isZeroBytes(b []byte) bool {
	for _, v := range b {
		if v != 0 {
			return false
		}
	}
	return true
}
