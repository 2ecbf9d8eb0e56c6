// validator: beacon chain validator record and lifecycle predicates
// Copyright 2024 validator Authors
// SPDX-License-Identifier: BSD-3-Clause

package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/sszkit/validator/validatortest"
)

var (
	randomSeed  int64
	randomCount int
)

var randomCmd = &cobra.Command{
	Use:   "random",
	Short: "Print deterministic random validator records as SSZ hex",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		if randomCount < 1 {
			return fmt.Errorf("invalid record count %d, need at least 1", randomCount)
		}
		logger, err := newLogger("random")
		if err != nil {
			return err
		}
		defer logger.Sync() //nolint:errcheck

		spec, err := loadSpec(logger)
		if err != nil {
			return err
		}
		logger.Debug("generating fixtures", zap.Int64("seed", randomSeed), zap.Int("count", randomCount))

		for _, v := range validatortest.RandomN(randomSeed, randomCount, spec) {
			blob, err := v.MarshalSSZ()
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%#x\n", blob)
		}
		return nil
	},
}

func init() {
	randomCmd.Flags().Int64Var(&randomSeed, "seed", 1, "seed of the generator")
	randomCmd.Flags().IntVar(&randomCount, "count", 1, "number of records to generate")
}
