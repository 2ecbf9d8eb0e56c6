// validator: beacon chain validator record and lifecycle predicates
// Copyright 2024 validator Authors
// SPDX-License-Identifier: BSD-3-Clause

package validator

import "github.com/ethereum/go-ethereum/common"

// Byte layout of the 32 byte withdrawal credentials:
//
//	[0]      type prefix
//	[1, 12)  reserved, zero for execution address credentials
//	[12, 32) execution address
const (
	credentialsPrefixIndex  = 0
	credentialsAddressIndex = 12
)

// WithdrawalCredentials is the decoded form of the 32 byte credentials field.
// It is either a BLSWithdrawal or an Eth1Withdrawal.
type WithdrawalCredentials interface {
	// Bytes returns the exact 32 byte wire representation.
	Bytes() [32]byte

	withdrawalCredentials()
}

// BLSWithdrawal is any credential that does not carry the execution address
// prefix. The bytes are kept verbatim.
type BLSWithdrawal struct {
	Raw [32]byte
}

// Bytes implements WithdrawalCredentials.
func (c BLSWithdrawal) Bytes() [32]byte { return c.Raw }

func (BLSWithdrawal) withdrawalCredentials() {}

// Eth1Withdrawal is a credential pointing to an execution layer address. The
// prefix is taken from the chain spec, so values come from NewEth1Withdrawal or
// DecodeWithdrawalCredentials.
type Eth1Withdrawal struct {
	prefix  byte
	Address common.Address
}

// NewEth1Withdrawal creates an execution address credential tagged with the
// prefix of the given chain spec.
func NewEth1Withdrawal(address common.Address, spec *ChainSpec) Eth1Withdrawal {
	return Eth1Withdrawal{prefix: spec.Eth1AddressWithdrawalPrefixByte, Address: address}
}

// Prefix returns the type byte the credential is encoded with.
func (c Eth1Withdrawal) Prefix() byte { return c.prefix }

// Bytes implements WithdrawalCredentials. The reserved bytes are always zero.
func (c Eth1Withdrawal) Bytes() [32]byte {
	var raw [32]byte
	raw[credentialsPrefixIndex] = c.prefix
	copy(raw[credentialsAddressIndex:], c.Address[:])
	return raw
}

func (Eth1Withdrawal) withdrawalCredentials() {}

// DecodeWithdrawalCredentials selects the credential variant by the prefix
// byte. Only the prefix is inspected, the reserved bytes of an execution
// credential are not required to be zero.
func DecodeWithdrawalCredentials(raw [32]byte, spec *ChainSpec) WithdrawalCredentials {
	if raw[credentialsPrefixIndex] != spec.Eth1AddressWithdrawalPrefixByte {
		return BLSWithdrawal{Raw: raw}
	}
	return Eth1Withdrawal{
		prefix:  raw[credentialsPrefixIndex],
		Address: common.BytesToAddress(raw[credentialsAddressIndex:]),
	}
}

// Credentials returns the decoded withdrawal credentials of the validator.
func (v *Validator) Credentials(spec *ChainSpec) WithdrawalCredentials {
	return DecodeWithdrawalCredentials(v.WithdrawalCredentials, spec)
}

// HasEth1WithdrawalCredential returns whether the credentials carry the
// execution address prefix.
func (v *Validator) HasEth1WithdrawalCredential(spec *ChainSpec) bool {
	_, ok := v.Credentials(spec).(Eth1Withdrawal)
	return ok
}

// Eth1WithdrawalAddress returns the execution address the validator withdraws
// to. The boolean is false if the credentials are not execution credentials,
// which is a regular outcome and not an error.
func (v *Validator) Eth1WithdrawalAddress(spec *ChainSpec) (common.Address, bool) {
	creds, ok := v.Credentials(spec).(Eth1Withdrawal)
	if !ok {
		return common.Address{}, false
	}
	return creds.Address, true
}

// ChangeWithdrawalCredentials overwrites the credentials with an execution
// address credential for the given address.
//
// WARNING: this method does NO VALIDATION. It does not look at the current
// credentials and does not verify any signature. The caller must have fully
// authorized the change (e.g. a verified BLS to execution change) before
// calling it.
func (v *Validator) ChangeWithdrawalCredentials(address common.Address, spec *ChainSpec) {
	v.WithdrawalCredentials = NewEth1Withdrawal(address, spec).Bytes()
}

// IsFullyWithdrawableAt returns whether the whole balance of the validator
// can be withdrawn at the given epoch.
func (v *Validator) IsFullyWithdrawableAt(balance Gwei, epoch Epoch, spec *ChainSpec) bool {
	return v.HasEth1WithdrawalCredential(spec) && v.WithdrawableEpoch <= epoch && balance > 0
}

// IsPartiallyWithdrawableValidator returns whether the balance above the
// maximum effective balance can be withdrawn.
func (v *Validator) IsPartiallyWithdrawableValidator(balance Gwei, spec *ChainSpec) bool {
	return v.HasEth1WithdrawalCredential(spec) &&
		v.EffectiveBalance == spec.MaxEffectiveBalance &&
		balance > spec.MaxEffectiveBalance
}
