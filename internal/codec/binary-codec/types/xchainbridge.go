//revive:disable:var-naming
package types

import (
	"errors"
	"fmt"

	addresscodec "github.com/ripplequill/xrplcodec/internal/codec/address-codec"
	"github.com/ripplequill/xrplcodec/internal/codec/binary-codec/types/interfaces"
)

// ErrMalformedXChainBridge is returned when an XChainBridge object is
// missing one of its four required fields.
var ErrMalformedXChainBridge = errors.New("xchainbridge object requires LockingChainDoor, LockingChainIssue, IssuingChainDoor and IssuingChainIssue")

// XChainBridge describes a cross-chain bridge endpoint pair: the door
// account and locked asset on each side of the bridge, serialized as
// AccountID, Issue, AccountID, Issue in that fixed order.
type XChainBridge struct{}

func (x *XChainBridge) FromJSON(value any) ([]byte, error) {
	obj, ok := value.(map[string]any)
	if !ok {
		return nil, fmt.Errorf("%w: expected object", ErrMalformedXChainBridge)
	}

	lockingDoor, err := encodeBridgeAccount(obj, "LockingChainDoor")
	if err != nil {
		return nil, err
	}
	lockingIssue, err := encodeBridgeIssue(obj, "LockingChainIssue")
	if err != nil {
		return nil, err
	}
	issuingDoor, err := encodeBridgeAccount(obj, "IssuingChainDoor")
	if err != nil {
		return nil, err
	}
	issuingIssue, err := encodeBridgeIssue(obj, "IssuingChainIssue")
	if err != nil {
		return nil, err
	}

	out := make([]byte, 0, 20+20+20+20)
	out = append(out, lockingDoor...)
	out = append(out, lockingIssue...)
	out = append(out, issuingDoor...)
	out = append(out, issuingIssue...)
	return out, nil
}

func encodeBridgeAccount(obj map[string]any, key string) ([]byte, error) {
	s, ok := obj[key].(string)
	if !ok || s == "" {
		return nil, fmt.Errorf("%w: missing %s", ErrMalformedXChainBridge, key)
	}
	raw, err := addresscodec.DecodeAccountID(s)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidAccountID, err)
	}
	return raw, nil
}

func encodeBridgeIssue(obj map[string]any, key string) ([]byte, error) {
	v, ok := obj[key]
	if !ok {
		return nil, fmt.Errorf("%w: missing %s", ErrMalformedXChainBridge, key)
	}
	issue := &Issue{}
	return issue.FromJSON(v)
}

func (x *XChainBridge) ToJSON(p interfaces.BinaryParser, _ ...int) (any, error) {
	lockingDoorRaw, err := p.ReadBytes(20)
	if err != nil {
		return nil, err
	}
	lockingDoor, err := addresscodec.EncodeAccountID(lockingDoorRaw)
	if err != nil {
		return nil, err
	}

	issue := &Issue{}
	lockingIssue, err := issue.ToJSON(p)
	if err != nil {
		return nil, err
	}

	issuingDoorRaw, err := p.ReadBytes(20)
	if err != nil {
		return nil, err
	}
	issuingDoor, err := addresscodec.EncodeAccountID(issuingDoorRaw)
	if err != nil {
		return nil, err
	}

	issuingIssue, err := issue.ToJSON(p)
	if err != nil {
		return nil, err
	}

	return map[string]any{
		"LockingChainDoor":  lockingDoor,
		"LockingChainIssue": lockingIssue,
		"IssuingChainDoor":  issuingDoor,
		"IssuingChainIssue": issuingIssue,
	}, nil
}
