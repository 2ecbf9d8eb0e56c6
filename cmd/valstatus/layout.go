// validator: beacon chain validator record and lifecycle predicates
// Copyright 2024 validator Authors
// SPDX-License-Identifier: BSD-3-Clause

package main

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/sszkit/validator"
)

var layoutCmd = &cobra.Command{
	Use:   "layout",
	Short: "Print the binary layout of the validator record",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
		fmt.Fprintln(tw, "FIELD\tOFFSET\tSIZE")
		for _, field := range validator.Layout() {
			fmt.Fprintf(tw, "%s\t%d\t%d\n", field.Name, field.Offset, field.Size)
		}
		fmt.Fprintf(tw, "total\t\t%d\n", validator.EncodedSize)
		return tw.Flush()
	},
}
