// validator: beacon chain validator record and lifecycle predicates
// Copyright 2024 validator Authors
// SPDX-License-Identifier: BSD-3-Clause

package validator

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"

	"github.com/attestantio/go-eth2-client/spec/phase0"
	"github.com/karalabe/ssz"
)

// EncodedSize is the fixed size of an SSZ encoded validator record.
const EncodedSize = 121

// slashedOffset is the position of the single byte boolean in the encoding.
const slashedOffset = 88

// FieldLayout describes the position of a single field in the fixed binary
// layout of the record.
type FieldLayout struct {
	Name   string // Field name as used by the consensus specs
	Offset int    // Byte offset inside the encoding
	Size   int    // Byte size of the field
}

// layout is the canonical field order, identical to the order in which the
// fields are defined in DefineSSZ.
var layout = []FieldLayout{
	{Name: "pubkey", Offset: 0, Size: 48},
	{Name: "withdrawal_credentials", Offset: 48, Size: 32},
	{Name: "effective_balance", Offset: 80, Size: 8},
	{Name: "slashed", Offset: 88, Size: 1},
	{Name: "activation_eligibility_epoch", Offset: 89, Size: 8},
	{Name: "activation_epoch", Offset: 97, Size: 8},
	{Name: "exit_epoch", Offset: 105, Size: 8},
	{Name: "withdrawable_epoch", Offset: 113, Size: 8},
}

// Layout returns the ordered field layout of the encoded record. The returned
// slice is a copy and may be modified freely.
func Layout() []FieldLayout {
	return append([]FieldLayout(nil), layout...)
}

// RecordCodec converts validator records to and from their canonical binary
// form and computes their Merkle commitment.
type RecordCodec interface {
	// Encode serializes the record into a freshly allocated buffer.
	Encode(v *Validator) ([]byte, error)

	// Decode parses blob into the caller supplied record.
	Decode(blob []byte, v *Validator) error

	// HashTreeRoot computes the Merkle root of the record.
	HashTreeRoot(v *Validator) ([32]byte, error)
}

// SSZCodec is the RecordCodec backed by github.com/karalabe/ssz. It holds no
// state and is safe for concurrent use.
type SSZCodec struct{}

// DefaultCodec is the codec used by the convenience methods on Validator.
var DefaultCodec RecordCodec = SSZCodec{}

// Encode implements RecordCodec.
func (SSZCodec) Encode(v *Validator) ([]byte, error) {
	blob := make([]byte, ssz.Size(v))
	if err := ssz.EncodeToBytes(blob, v); err != nil {
		return nil, err
	}
	return blob, nil
}

// Decode implements RecordCodec.
func (SSZCodec) Decode(blob []byte, v *Validator) error {
	if len(blob) != EncodedSize {
		return fmt.Errorf("%w: have %d bytes, want %d", ErrInvalidEncoding, len(blob), EncodedSize)
	}
	if flag := blob[slashedOffset]; flag > 1 {
		return fmt.Errorf("%w: slashed flag %#x", ErrInvalidEncoding, flag)
	}
	if err := ssz.DecodeFromBytes(blob, v); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidEncoding, err)
	}
	return nil
}

// HashTreeRoot implements RecordCodec.
func (SSZCodec) HashTreeRoot(v *Validator) ([32]byte, error) {
	return ssz.HashSequential(v), nil
}

// MarshalSSZ encodes the record with the default codec.
func (v *Validator) MarshalSSZ() ([]byte, error) {
	return DefaultCodec.Encode(v)
}

// UnmarshalSSZ decodes blob into the record with the default codec.
func (v *Validator) UnmarshalSSZ(blob []byte) error {
	return DefaultCodec.Decode(blob, v)
}

// HashTreeRoot computes the Merkle root of the record with the default codec.
func (v *Validator) HashTreeRoot() ([32]byte, error) {
	return DefaultCodec.HashTreeRoot(v)
}

// ReadValidator reads exactly one encoded record from r into v.
func ReadValidator(r io.Reader, v *Validator) error {
	blob := make([]byte, EncodedSize+1)
	n, err := io.ReadFull(r, blob)
	switch {
	case err == io.ErrUnexpectedEOF || err == io.EOF:
		return v.UnmarshalSSZ(blob[:n])
	case err != nil:
		return err
	default:
		return fmt.Errorf("%w: trailing data after %d bytes", ErrInvalidEncoding, EncodedSize)
	}
}

// ToPhase0 converts the record into its go-eth2-client representation.
func (v *Validator) ToPhase0() *phase0.Validator {
	return &phase0.Validator{
		PublicKey:                  phase0.BLSPubKey(v.Pubkey),
		WithdrawalCredentials:      bytes.Clone(v.WithdrawalCredentials[:]),
		EffectiveBalance:           phase0.Gwei(v.EffectiveBalance),
		Slashed:                    v.Slashed,
		ActivationEligibilityEpoch: phase0.Epoch(v.ActivationEligibilityEpoch),
		ActivationEpoch:            phase0.Epoch(v.ActivationEpoch),
		ExitEpoch:                  phase0.Epoch(v.ExitEpoch),
		WithdrawableEpoch:          phase0.Epoch(v.WithdrawableEpoch),
	}
}

// LoadPhase0 overwrites the record with the fields of a go-eth2-client
// validator. The credentials must be exactly 32 bytes long.
func (v *Validator) LoadPhase0(src *phase0.Validator) error {
	if len(src.WithdrawalCredentials) != len(v.WithdrawalCredentials) {
		return fmt.Errorf("%w: withdrawal credentials of %d bytes", ErrInvalidEncoding, len(src.WithdrawalCredentials))
	}
	v.Pubkey = src.PublicKey
	copy(v.WithdrawalCredentials[:], src.WithdrawalCredentials)
	v.EffectiveBalance = Gwei(src.EffectiveBalance)
	v.Slashed = src.Slashed
	v.ActivationEligibilityEpoch = Epoch(src.ActivationEligibilityEpoch)
	v.ActivationEpoch = Epoch(src.ActivationEpoch)
	v.ExitEpoch = Epoch(src.ExitEpoch)
	v.WithdrawableEpoch = Epoch(src.WithdrawableEpoch)
	return nil
}

// MarshalJSON encodes the record in the beacon node API shape: byte fields as
// 0x prefixed hex, the balance and epochs as quoted decimals.
func (v *Validator) MarshalJSON() ([]byte, error) {
	return json.Marshal(v.ToPhase0())
}

// UnmarshalJSON decodes the beacon node API shape. Every field is required.
func (v *Validator) UnmarshalJSON(input []byte) error {
	var src phase0.Validator
	if err := json.Unmarshal(input, &src); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidEncoding, err)
	}
	return v.LoadPhase0(&src)
}
