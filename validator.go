// validator: beacon chain validator record and lifecycle predicates
// Copyright 2024 validator Authors
// SPDX-License-Identifier: BSD-3-Clause

// Package validator implements the beacon chain validator record and the
// predicates the epoch processing uses to move it through its lifecycle.
package validator

import (
	"math"

	apiv1 "github.com/attestantio/go-eth2-client/api/v1"
)

//go:generate go run github.com/karalabe/ssz/cmd/sszgen -type Validator -out gen_validator_ssz.go

// Validator is a single entry of the beacon chain validator registry.
//
// The epoch fields are expected to satisfy
//
//	ActivationEligibilityEpoch <= ActivationEpoch <= ExitEpoch <= WithdrawableEpoch
//
// for every field that is not the far future sentinel, EffectiveBalance is
// expected to stay at or below the preset maximum, and Slashed never goes
// back to false. None of these are checked here; keeping them is the job of
// the state transition that mutates the registry.
type Validator struct {
	Pubkey                     [48]byte
	WithdrawalCredentials      [32]byte
	EffectiveBalance           Gwei
	Slashed                    bool
	ActivationEligibilityEpoch Epoch
	ActivationEpoch            Epoch
	ExitEpoch                  Epoch
	WithdrawableEpoch          Epoch
}

// NewUnsetValidator creates a record that was never queued, activated, exited
// or made withdrawable: all epochs are FarFutureEpoch.
//
// The predicates hold their exact formulas at the sentinel itself, so at epoch
// FarFutureEpoch the record counts as exited and withdrawable. Every earlier
// epoch sees it as neither.
//
// The effective balance is set to math.MaxUint64. This is a testing artifact
// and not the balance a validator gets at genesis or deposit time, so do not
// use the result as a production default.
func NewUnsetValidator() *Validator {
	return &Validator{
		EffectiveBalance:           Gwei(math.MaxUint64),
		ActivationEligibilityEpoch: FarFutureEpoch,
		ActivationEpoch:            FarFutureEpoch,
		ExitEpoch:                  FarFutureEpoch,
		WithdrawableEpoch:          FarFutureEpoch,
	}
}

// BeaconStateView is the slice of the beacon state the activation predicate
// needs to see.
type BeaconStateView interface {
	FinalizedCheckpointEpoch() Epoch
}

// IsActiveAt returns whether the validator is active at the given epoch.
func (v *Validator) IsActiveAt(epoch Epoch) bool {
	return v.ActivationEpoch <= epoch && epoch < v.ExitEpoch
}

// IsSlashableAt returns whether the validator can be slashed at the given epoch.
func (v *Validator) IsSlashableAt(epoch Epoch) bool {
	return !v.Slashed && v.ActivationEpoch <= epoch && epoch < v.WithdrawableEpoch
}

// IsExitedAt returns whether the validator has exited by the given epoch.
func (v *Validator) IsExitedAt(epoch Epoch) bool {
	return v.ExitEpoch <= epoch
}

// IsWithdrawableAt returns whether the validator's funds are withdrawable at
// the given epoch.
func (v *Validator) IsWithdrawableAt(epoch Epoch) bool {
	return epoch >= v.WithdrawableEpoch
}

// IsEligibleForActivationQueue returns whether the validator should be placed
// into the activation queue: it has not been queued yet and its effective
// balance reached the maximum.
func (v *Validator) IsEligibleForActivationQueue(spec *ChainSpec) bool {
	return v.ActivationEligibilityEpoch == spec.FarFutureEpoch &&
		v.EffectiveBalance == spec.MaxEffectiveBalance
}

// IsEligibleForActivation returns whether the validator may be activated: its
// queue placement is finalized and it has not been activated yet.
func (v *Validator) IsEligibleForActivation(finalized Epoch, spec *ChainSpec) bool {
	return v.ActivationEligibilityEpoch <= finalized &&
		v.ActivationEpoch == spec.FarFutureEpoch
}

// IsEligibleForActivationInState is IsEligibleForActivation with the finalized
// epoch taken from the state.
func (v *Validator) IsEligibleForActivationInState(state BeaconStateView, spec *ChainSpec) bool {
	return v.IsEligibleForActivation(state.FinalizedCheckpointEpoch(), spec)
}

// Status classifies the validator the way the beacon node API reports it,
// given the current epoch and its actual balance. A validator without an
// activation epoch is pending at every epoch, the sentinel included.
func (v *Validator) Status(epoch Epoch, balance Gwei, spec *ChainSpec) apiv1.ValidatorState {
	switch {
	case v.ActivationEpoch > epoch || v.ActivationEpoch == spec.FarFutureEpoch:
		if v.ActivationEligibilityEpoch == spec.FarFutureEpoch {
			return apiv1.ValidatorStatePendingInitialized
		}
		return apiv1.ValidatorStatePendingQueued

	case v.IsActiveAt(epoch):
		switch {
		case v.ExitEpoch == spec.FarFutureEpoch:
			return apiv1.ValidatorStateActiveOngoing
		case v.Slashed:
			return apiv1.ValidatorStateActiveSlashed
		default:
			return apiv1.ValidatorStateActiveExiting
		}

	case !v.IsWithdrawableAt(epoch):
		if v.Slashed {
			return apiv1.ValidatorStateExitedSlashed
		}
		return apiv1.ValidatorStateExitedUnslashed

	default:
		if balance == 0 {
			return apiv1.ValidatorStateWithdrawalDone
		}
		return apiv1.ValidatorStateWithdrawalPossible
	}
}
