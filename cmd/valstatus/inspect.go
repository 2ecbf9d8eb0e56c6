// validator: beacon chain validator record and lifecycle predicates
// Copyright 2024 validator Authors
// SPDX-License-Identifier: BSD-3-Clause

package main

import (
	"fmt"
	"io"
	"os"
	"text/tabwriter"

	"github.com/golang/snappy"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/sszkit/validator"
)

var (
	inspectFile      string
	inspectSnappy    bool
	inspectEpoch     uint64
	inspectFinalized uint64
	inspectBalance   uint64
)

var inspectCmd = &cobra.Command{
	Use:   "inspect",
	Short: "Decode a validator record and evaluate its lifecycle predicates",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		logger, err := newLogger("inspect")
		if err != nil {
			return err
		}
		defer logger.Sync() //nolint:errcheck

		spec, err := loadSpec(logger)
		if err != nil {
			return err
		}
		blob, err := os.ReadFile(inspectFile)
		if err != nil {
			return err
		}
		if inspectSnappy {
			if blob, err = snappy.Decode(nil, blob); err != nil {
				return fmt.Errorf("failed to decompress %s: %w", inspectFile, err)
			}
		}
		v := new(validator.Validator)
		if err := v.UnmarshalSSZ(blob); err != nil {
			logger.Error("failed to decode record", zap.String("file", inspectFile), zap.Int("size", len(blob)), zap.Error(err))
			return err
		}
		balance := v.EffectiveBalance
		if cmd.Flags().Changed("balance") {
			balance = validator.Gwei(inspectBalance)
		}
		logger.Debug("decoded record", zap.String("file", inspectFile), zap.Uint64("epoch", inspectEpoch))

		return report(cmd.OutOrStdout(), v, validator.Epoch(inspectEpoch), validator.Epoch(inspectFinalized), balance, spec)
	},
}

func init() {
	inspectCmd.Flags().StringVar(&inspectFile, "file", "", "file containing the SSZ encoded record")
	inspectCmd.Flags().BoolVar(&inspectSnappy, "snappy", false, "the file is snappy block compressed")
	inspectCmd.Flags().Uint64Var(&inspectEpoch, "epoch", 0, "epoch to evaluate the predicates at")
	inspectCmd.Flags().Uint64Var(&inspectFinalized, "finalized", 0, "finalized checkpoint epoch")
	inspectCmd.Flags().Uint64Var(&inspectBalance, "balance", 0, "actual balance in gwei (defaults to the effective balance)")
	_ = inspectCmd.MarkFlagRequired("file")
}

// report writes the decoded record and every predicate evaluated at the given
// epoch into w.
func report(w io.Writer, v *validator.Validator, epoch, finalized validator.Epoch, balance validator.Gwei, spec *validator.ChainSpec) error {
	root, err := v.HashTreeRoot()
	if err != nil {
		return err
	}
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)

	fmt.Fprintf(tw, "root\t%#x\n", root)
	fmt.Fprintf(tw, "pubkey\t%#x\n", v.Pubkey)
	fmt.Fprintf(tw, "withdrawal_credentials\t%#x\n", v.WithdrawalCredentials)
	if addr, ok := v.Eth1WithdrawalAddress(spec); ok {
		fmt.Fprintf(tw, "withdrawal_address\t%s\n", addr.Hex())
	}
	fmt.Fprintf(tw, "effective_balance\t%d gwei (%s wei)\n", v.EffectiveBalance, v.EffectiveBalance.Wei().Dec())
	fmt.Fprintf(tw, "slashed\t%v\n", v.Slashed)
	fmt.Fprintf(tw, "activation_eligibility_epoch\t%s\n", v.ActivationEligibilityEpoch)
	fmt.Fprintf(tw, "activation_epoch\t%s\n", v.ActivationEpoch)
	fmt.Fprintf(tw, "exit_epoch\t%s\n", v.ExitEpoch)
	fmt.Fprintf(tw, "withdrawable_epoch\t%s\n", v.WithdrawableEpoch)
	fmt.Fprintln(tw)

	fmt.Fprintf(tw, "status@%d\t%s\n", epoch, v.Status(epoch, balance, spec))
	fmt.Fprintf(tw, "active\t%v\n", v.IsActiveAt(epoch))
	fmt.Fprintf(tw, "slashable\t%v\n", v.IsSlashableAt(epoch))
	fmt.Fprintf(tw, "exited\t%v\n", v.IsExitedAt(epoch))
	fmt.Fprintf(tw, "withdrawable\t%v\n", v.IsWithdrawableAt(epoch))
	fmt.Fprintf(tw, "eligible_for_activation_queue\t%v\n", v.IsEligibleForActivationQueue(spec))
	fmt.Fprintf(tw, "eligible_for_activation@%d\t%v\n", finalized, v.IsEligibleForActivation(finalized, spec))
	fmt.Fprintf(tw, "fully_withdrawable\t%v\n", v.IsFullyWithdrawableAt(balance, epoch, spec))
	fmt.Fprintf(tw, "partially_withdrawable\t%v\n", v.IsPartiallyWithdrawableValidator(balance, spec))

	return tw.Flush()
}
