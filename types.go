// validator: beacon chain validator record and lifecycle predicates
// Copyright 2024 validator Authors
// SPDX-License-Identifier: BSD-3-Clause

package validator

import (
	"math"
	"strconv"

	"github.com/holiman/uint256"
)

// Epoch is a beacon chain epoch number. The maximum value is reserved as the
// "far future" sentinel meaning the transition never happened.
type Epoch uint64

// FarFutureEpoch is the protocol sentinel for an unset epoch field.
const FarFutureEpoch = Epoch(math.MaxUint64)

// String implements fmt.Stringer, rendering the sentinel symbolically.
func (e Epoch) String() string {
	if e == FarFutureEpoch {
		return "far-future"
	}
	return strconv.FormatUint(uint64(e), 10)
}

// Gwei is an amount of ether denominated in gwei (1e9 wei).
type Gwei uint64

// gweiToWei is the wei count of a single gwei.
var gweiToWei = uint256.NewInt(1_000_000_000)

// Wei converts the amount to wei. The result does not fit into 64 bits for
// balances above ~18.4 ETH, hence the 256 bit return type.
func (g Gwei) Wei() *uint256.Int {
	return new(uint256.Int).Mul(uint256.NewInt(uint64(g)), gweiToWei)
}
