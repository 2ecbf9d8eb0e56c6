// validator: beacon chain validator record and lifecycle predicates
// Copyright 2024 validator Authors
// SPDX-License-Identifier: BSD-3-Clause

package validator

import "errors"

// ErrInvalidEncoding is returned when a binary blob cannot be decoded into a
// validator record, most commonly because its length is not the fixed 121
// bytes of the record layout.
var ErrInvalidEncoding = errors.New("validator: invalid record encoding")

// ErrInvalidPreset is returned when a chain preset document contains a value
// that cannot be parsed into its configuration field.
var ErrInvalidPreset = errors.New("validator: invalid chain preset")

// ErrUnknownPreset is returned when a named chain preset is not known.
var ErrUnknownPreset = errors.New("validator: unknown chain preset")
