// validator: beacon chain validator record and lifecycle predicates
// Copyright 2024 validator Authors
// SPDX-License-Identifier: BSD-3-Clause

package validator

import (
	"errors"
	"fmt"
	"io"
	"strconv"

	"gopkg.in/yaml.v3"
)

// ChainSpec holds the protocol constants the validator predicates depend on.
// Instances are treated as read-only once constructed and may be shared by
// any number of goroutines.
type ChainSpec struct {
	ConfigName string

	// FarFutureEpoch must equal the package level FarFutureEpoch, records
	// built by NewUnsetValidator rely on it.
	FarFutureEpoch                  Epoch
	MaxEffectiveBalance             Gwei
	BLSWithdrawalPrefixByte         byte
	Eth1AddressWithdrawalPrefixByte byte
}

// MainnetSpec returns the constants of the Ethereum mainnet preset.
func MainnetSpec() *ChainSpec {
	return &ChainSpec{
		ConfigName:                      "mainnet",
		FarFutureEpoch:                  FarFutureEpoch,
		MaxEffectiveBalance:             32_000_000_000,
		BLSWithdrawalPrefixByte:         0x00,
		Eth1AddressWithdrawalPrefixByte: 0x01,
	}
}

// MinimalSpec returns the constants of the minimal (testing) preset. None of
// the constants used here differ from mainnet, only the name does.
func MinimalSpec() *ChainSpec {
	spec := MainnetSpec()
	spec.ConfigName = "minimal"
	return spec
}

// PresetByName returns one of the built in presets.
func PresetByName(name string) (*ChainSpec, error) {
	switch name {
	case "mainnet":
		return MainnetSpec(), nil
	case "minimal":
		return MinimalSpec(), nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownPreset, name)
	}
}

// presetYAML is the subset of a consensus-specs preset/config document that
// is relevant for the validator record. All values are kept as raw strings so
// both decimal and 0x prefixed hex notations are accepted.
type presetYAML struct {
	ConfigName                  string `yaml:"CONFIG_NAME"`
	PresetBase                  string `yaml:"PRESET_BASE"`
	FarFutureEpoch              string `yaml:"FAR_FUTURE_EPOCH"`
	MaxEffectiveBalance         string `yaml:"MAX_EFFECTIVE_BALANCE"`
	BLSWithdrawalPrefix         string `yaml:"BLS_WITHDRAWAL_PREFIX"`
	Eth1AddressWithdrawalPrefix string `yaml:"ETH1_ADDRESS_WITHDRAWAL_PREFIX"`
}

// LoadChainSpec parses a YAML preset document. Fields missing from the input
// keep their mainnet values, unknown keys are ignored. FAR_FUTURE_EPOCH may only
// restate the 2^64-1 sentinel.
func LoadChainSpec(r io.Reader) (*ChainSpec, error) {
	var raw presetYAML
	if err := yaml.NewDecoder(r).Decode(&raw); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("%w: %v", ErrInvalidPreset, err)
	}
	spec := MainnetSpec()
	switch {
	case raw.ConfigName != "":
		spec.ConfigName = raw.ConfigName
	case raw.PresetBase != "":
		spec.ConfigName = raw.PresetBase
	}
	if raw.FarFutureEpoch != "" {
		n, err := parseUint(raw.FarFutureEpoch, 64)
		if err != nil {
			return nil, fmt.Errorf("%w: FAR_FUTURE_EPOCH: %v", ErrInvalidPreset, err)
		}
		if Epoch(n) != FarFutureEpoch {
			return nil, fmt.Errorf("%w: FAR_FUTURE_EPOCH %d, want %d", ErrInvalidPreset, n, uint64(FarFutureEpoch))
		}
		spec.FarFutureEpoch = Epoch(n)
	}
	if raw.MaxEffectiveBalance != "" {
		n, err := parseUint(raw.MaxEffectiveBalance, 64)
		if err != nil {
			return nil, fmt.Errorf("%w: MAX_EFFECTIVE_BALANCE: %v", ErrInvalidPreset, err)
		}
		spec.MaxEffectiveBalance = Gwei(n)
	}
	if raw.BLSWithdrawalPrefix != "" {
		n, err := parseUint(raw.BLSWithdrawalPrefix, 8)
		if err != nil {
			return nil, fmt.Errorf("%w: BLS_WITHDRAWAL_PREFIX: %v", ErrInvalidPreset, err)
		}
		spec.BLSWithdrawalPrefixByte = byte(n)
	}
	if raw.Eth1AddressWithdrawalPrefix != "" {
		n, err := parseUint(raw.Eth1AddressWithdrawalPrefix, 8)
		if err != nil {
			return nil, fmt.Errorf("%w: ETH1_ADDRESS_WITHDRAWAL_PREFIX: %v", ErrInvalidPreset, err)
		}
		spec.Eth1AddressWithdrawalPrefixByte = byte(n)
	}
	return spec, nil
}

// parseUint parses a decimal or 0x prefixed hexadecimal number.
func parseUint(s string, bits int) (uint64, error) {
	return strconv.ParseUint(s, 0, bits)
}
