// validator: beacon chain validator record and lifecycle predicates
// Copyright 2024 validator Authors
// SPDX-License-Identifier: BSD-3-Clause

// valstatus decodes SSZ encoded validator records and reports their lifecycle
// predicates at a given epoch.
package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/sszkit/validator"
)

var (
	logLevel   string
	presetFlag string
	configFlag string
)

// rootCmd is the entry point of the tool, all the work is done by subcommands.
var rootCmd = &cobra.Command{
	Use:           "valstatus",
	Short:         "Inspect beacon chain validator records",
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "info", "log level (debug, info, warn, error)")
	rootCmd.PersistentFlags().StringVar(&presetFlag, "preset", "mainnet", "built in chain preset (mainnet, minimal)")
	rootCmd.PersistentFlags().StringVar(&configFlag, "config", "", "YAML chain preset file, overrides --preset")

	rootCmd.AddCommand(inspectCmd, layoutCmd, randomCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "valstatus:", err)
		os.Exit(1)
	}
}

// newLogger creates the console logger writing to stderr, keeping stdout for
// the actual command output.
func newLogger(name string) (*zap.Logger, error) {
	level, err := zapcore.ParseLevel(logLevel)
	if err != nil {
		return nil, err
	}
	cfg := zap.Config{
		Encoding:         "console",
		Level:            zap.NewAtomicLevelAt(level),
		OutputPaths:      []string{"stderr"},
		ErrorOutputPaths: []string{"stderr"},
		EncoderConfig: zapcore.EncoderConfig{
			MessageKey:  "message",
			LevelKey:    "level",
			EncodeLevel: zapcore.CapitalLevelEncoder,
			TimeKey:     "time",
			EncodeTime: func(t time.Time, enc zapcore.PrimitiveArrayEncoder) {
				enc.AppendString(t.UTC().Format("2006-01-02T15:04:05.000000Z"))
			},
			NameKey:          "name",
			ConsoleSeparator: "\t",
		},
	}
	logger, err := cfg.Build()
	if err != nil {
		return nil, err
	}
	return logger.Named(name), nil
}

// loadSpec resolves the chain preset from the --config and --preset flags.
func loadSpec(logger *zap.Logger) (*validator.ChainSpec, error) {
	if configFlag == "" {
		logger.Debug("using built in preset", zap.String("preset", presetFlag))
		return validator.PresetByName(presetFlag)
	}
	f, err := os.Open(configFlag)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	spec, err := validator.LoadChainSpec(f)
	if err != nil {
		return nil, fmt.Errorf("failed to load %s: %w", configFlag, err)
	}
	logger.Debug("loaded chain preset", zap.String("path", configFlag), zap.String("name", spec.ConfigName))
	return spec, nil
}
