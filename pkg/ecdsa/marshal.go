package ecdsa

import (
	"errors"
	"fmt"
	"math/big"

	"github.com/fxamacker/cbor/v2"
	"github.com/taurusgroup/sec1/pkg/math/curve"
)

// signatureMarshal keeps cbor from recursing into Signature's own
// BinaryMarshaler implementation.
type signatureMarshal struct {
	R, S *big.Int
}

// MarshalBinary implements encoding.BinaryMarshaler using CBOR.
func (sig Signature) MarshalBinary() ([]byte, error) {
	if sig.R == nil || sig.S == nil {
		return nil, errors.New("ecdsa: signature is missing r or s")
	}
	return cbor.Marshal(signatureMarshal{R: sig.R, S: sig.S})
}

// UnmarshalBinary implements encoding.BinaryUnmarshaler.
func (sig *Signature) UnmarshalBinary(data []byte) error {
	var sm signatureMarshal
	if err := cbor.Unmarshal(data, &sm); err != nil {
		return fmt.Errorf("ecdsa: signature: %w", err)
	}
	if sm.R == nil || sm.S == nil {
		return errors.New("ecdsa: signature is missing r or s")
	}
	sig.R, sig.S = sm.R, sm.S
	return nil
}

// EmptyPublicKey creates a public key with a fixed group, ready for
// unmarshalling. Without the group the encoded point cannot be decoded.
func EmptyPublicKey(group *curve.Curve) *PublicKey {
	return &PublicKey{group: group, q: group.NewIdentityPoint()}
}

// MarshalBinary implements encoding.BinaryMarshaler using the compressed
// point encoding of Q.
func (pk *PublicKey) MarshalBinary() ([]byte, error) {
	return pk.q.MarshalBinary()
}

// UnmarshalBinary implements encoding.BinaryUnmarshaler. The receiver must
// be initialized with EmptyPublicKey.
func (pk *PublicKey) UnmarshalBinary(data []byte) error {
	if pk.group == nil {
		return errors.New("ecdsa: public key must be initialized using EmptyPublicKey")
	}
	q, err := pk.group.DecodePoint(data)
	if err != nil {
		return fmt.Errorf("ecdsa: public key: %w", err)
	}
	if q.IsIdentity() {
		return errors.New("ecdsa: public key is the identity point")
	}
	pk.q = q
	return nil
}
