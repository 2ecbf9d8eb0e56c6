// validator: beacon chain validator record and lifecycle predicates
// Copyright 2024 validator Authors
// SPDX-License-Identifier: BSD-3-Clause

// Package validatortest provides deterministic validator fixtures for tests.
package validatortest

import (
	"sort"

	"github.com/ethereum/go-ethereum/common"
	fuzz "github.com/google/gofuzz"
	"github.com/sszkit/validator"
)

// maxFixtureEpoch bounds the generated epochs so they stay in a range where
// predicates are interesting to evaluate.
const maxFixtureEpoch = 1 << 20

// gweiPerEth is the effective balance increment used for fixtures.
const gweiPerEth = 1_000_000_000

// Random returns a pseudo random validator derived solely from the seed.
func Random(seed int64, spec *validator.ChainSpec) *validator.Validator {
	return RandomN(seed, 1, spec)[0]
}

// RandomN returns n pseudo random validators derived solely from the seed.
//
// The generated records keep the registry invariants: set epochs are ordered,
// unset epochs are the far future sentinel and only trail set ones, the
// effective balance is an ETH multiple not above the maximum and only active
// or exited validators can be slashed. A non-positive n yields no records.
func RandomN(seed int64, n int, spec *validator.ChainSpec) []*validator.Validator {
	if n < 0 {
		n = 0
	}
	f := fuzz.NewWithSeed(seed).NilChance(0).Funcs(
		func(v *validator.Validator, c fuzz.Continue) {
			fillValidator(v, c, spec)
		},
	)
	vals := make([]*validator.Validator, n)
	for i := range vals {
		vals[i] = new(validator.Validator)
		f.Fuzz(vals[i])
	}
	return vals
}

func fillValidator(v *validator.Validator, c fuzz.Continue, spec *validator.ChainSpec) {
	c.Fuzz(&v.Pubkey)

	if c.RandBool() {
		var addr common.Address
		c.Fuzz(&addr)
		v.ChangeWithdrawalCredentials(addr, spec)
	} else {
		c.Fuzz(&v.WithdrawalCredentials)
		v.WithdrawalCredentials[0] = spec.BLSWithdrawalPrefixByte
	}
	maxEth := int(spec.MaxEffectiveBalance / gweiPerEth)
	if c.RandBool() {
		v.EffectiveBalance = spec.MaxEffectiveBalance
	} else {
		v.EffectiveBalance = validator.Gwei(c.Intn(maxEth+1)) * gweiPerEth
	}
	epochs := []*validator.Epoch{
		&v.ActivationEligibilityEpoch,
		&v.ActivationEpoch,
		&v.ExitEpoch,
		&v.WithdrawableEpoch,
	}
	set := c.Intn(len(epochs) + 1)

	values := make([]uint64, set)
	for i := range values {
		values[i] = uint64(c.Int63n(maxFixtureEpoch))
	}
	sort.Slice(values, func(i, j int) bool { return values[i] < values[j] })

	for i, epoch := range epochs {
		if i < set {
			*epoch = validator.Epoch(values[i])
		} else {
			*epoch = spec.FarFutureEpoch
		}
	}
	v.Slashed = set >= 2 && c.Intn(4) == 0
}

// StateView is a fixed BeaconStateView.
type StateView struct {
	Finalized validator.Epoch
}

// FinalizedCheckpointEpoch implements validator.BeaconStateView.
func (s StateView) FinalizedCheckpointEpoch() validator.Epoch {
	return s.Finalized
}
