// validator: beacon chain validator record and lifecycle predicates
// Copyright 2024 validator Authors
// SPDX-License-Identifier: BSD-3-Clause

package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/ethereum/go-ethereum/common"
	"github.com/golang/snappy"
	"github.com/stretchr/testify/require"

	"github.com/sszkit/validator"
	"github.com/sszkit/validator/validatortest"
)

// fields splits the tabwriter output into name -> value pairs.
func fields(out string) map[string]string {
	res := make(map[string]string)
	for _, line := range strings.Split(out, "\n") {
		parts := strings.Fields(line)
		if len(parts) < 2 {
			continue
		}
		res[parts[0]] = strings.Join(parts[1:], " ")
	}
	return res
}

func TestReport(t *testing.T) {
	spec := validator.MainnetSpec()

	v := validator.NewUnsetValidator()
	v.EffectiveBalance = spec.MaxEffectiveBalance
	v.ActivationEligibilityEpoch = 3
	v.ActivationEpoch = 10
	v.WithdrawableEpoch = 100
	v.ExitEpoch = 50
	v.ChangeWithdrawalCredentials(common.HexToAddress("0x00000000219ab540356cBB839Cbe05303d7705Fa"), spec)

	out := new(bytes.Buffer)
	require.NoError(t, report(out, v, 20, 3, spec.MaxEffectiveBalance+5, spec))

	res := fields(out.String())
	require.Equal(t, "0x00000000219ab540356cBB839Cbe05303d7705Fa", res["withdrawal_address"])
	require.Equal(t, "active_exiting", res["status@20"])
	require.Equal(t, "true", res["active"])
	require.Equal(t, "true", res["slashable"])
	require.Equal(t, "false", res["exited"])
	require.Equal(t, "false", res["withdrawable"])
	require.Equal(t, "false", res["eligible_for_activation@3"])
	require.Equal(t, "false", res["fully_withdrawable"])
	require.Equal(t, "true", res["partially_withdrawable"])
	require.Equal(t, "32000000000 gwei (32000000000000000000 wei)", res["effective_balance"])
}

func TestInspectCommand(t *testing.T) {
	v := validator.NewUnsetValidator()
	blob, err := v.MarshalSSZ()
	require.NoError(t, err)

	dir := t.TempDir()
	raw := filepath.Join(dir, "validator.ssz")
	require.NoError(t, os.WriteFile(raw, blob, 0o600))
	compressed := filepath.Join(dir, "validator.ssz_snappy")
	require.NoError(t, os.WriteFile(compressed, snappy.Encode(nil, blob), 0o600))

	for _, args := range [][]string{
		{"inspect", "--file", raw, "--epoch", "5"},
		{"inspect", "--file", compressed, "--snappy", "--epoch", "5"},
	} {
		out := new(bytes.Buffer)
		rootCmd.SetOut(out)
		rootCmd.SetArgs(args)
		require.NoError(t, rootCmd.Execute(), "args %v", args)

		res := fields(out.String())
		require.Equal(t, "pending_initialized", res["status@5"], "args %v", args)
		require.Equal(t, "far-future", res["exit_epoch"], "args %v", args)
	}
	// Truncated records are rejected
	require.NoError(t, os.WriteFile(raw, blob[:64], 0o600))
	rootCmd.SetArgs([]string{"inspect", "--file", raw, "--snappy=false"})
	require.ErrorIs(t, rootCmd.Execute(), validator.ErrInvalidEncoding)
}

func TestLayoutCommand(t *testing.T) {
	out := new(bytes.Buffer)
	rootCmd.SetOut(out)
	rootCmd.SetArgs([]string{"layout"})
	require.NoError(t, rootCmd.Execute())

	res := fields(out.String())
	require.Equal(t, "89 8", res["activation_eligibility_epoch"])
	require.Equal(t, "121", res["total"])
}

func TestRandomCommand(t *testing.T) {
	run := func() string {
		out := new(bytes.Buffer)
		rootCmd.SetOut(out)
		rootCmd.SetArgs([]string{"random", "--seed", "9", "--count", "3"})
		require.NoError(t, rootCmd.Execute())
		return out.String()
	}
	first := run()
	require.Equal(t, first, run())

	lines := strings.Split(strings.TrimSpace(first), "\n")
	require.Len(t, lines, 3)
	for _, line := range lines {
		require.Len(t, line, 2+2*validator.EncodedSize)
	}
}

func TestRandomCommandBadCount(t *testing.T) {
	for _, count := range []string{"0", "-1"} {
		rootCmd.SetOut(new(bytes.Buffer))
		rootCmd.SetArgs([]string{"random", "--count", count})
		require.ErrorContains(t, rootCmd.Execute(), "invalid record count", "count %s", count)
	}
	require.Empty(t, validatortest.RandomN(1, -1, validator.MainnetSpec()))
}

func TestInspectRejectsArgs(t *testing.T) {
	rootCmd.SetOut(new(bytes.Buffer))
	rootCmd.SetArgs([]string{"inspect", "--file", "validator.ssz", "stray"})
	require.Error(t, rootCmd.Execute())
}
