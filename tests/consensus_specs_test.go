// validator: beacon chain validator record and lifecycle predicates
// Copyright 2024 validator Authors
// SPDX-License-Identifier: BSD-3-Clause

package tests

import (
	"bytes"
	"encoding/hex"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/golang/snappy"
	"github.com/sszkit/validator"
	"gopkg.in/yaml.v3"
)

// consensusSpecTestsRoot is the folder where the ssz_static validator vectors
// are located, laid out the same way as the consensus spec tests repo.
var consensusSpecTestsRoot = filepath.Join("testdata", "ssz_static", "Validator")

// commonPrefix returns the common prefix in two byte slices.
func commonPrefix(a []byte, b []byte) []byte {
	var prefix []byte

	for len(a) > 0 && len(b) > 0 && a[0] == b[0] {
		prefix = append(prefix, a[0])
		a, b = a[1:], b[1:]
	}
	return prefix
}

// validatorYAML is the value.yaml representation of a validator record.
type validatorYAML struct {
	Pubkey                     string `yaml:"pubkey"`
	WithdrawalCredentials      string `yaml:"withdrawal_credentials"`
	EffectiveBalance           uint64 `yaml:"effective_balance"`
	Slashed                    bool   `yaml:"slashed"`
	ActivationEligibilityEpoch uint64 `yaml:"activation_eligibility_epoch"`
	ActivationEpoch            uint64 `yaml:"activation_epoch"`
	ExitEpoch                  uint64 `yaml:"exit_epoch"`
	WithdrawableEpoch          uint64 `yaml:"withdrawable_epoch"`
}

// decodeHex parses a 0x prefixed hex string into a fixed size destination.
func decodeHex(dst []byte, s string) error {
	blob, err := hex.DecodeString(strings.TrimPrefix(s, "0x"))
	if err != nil {
		return err
	}
	if len(blob) != len(dst) {
		return fmt.Errorf("length mismatch: have %d, want %d", len(blob), len(dst))
	}
	copy(dst, blob)
	return nil
}

// TestConsensusSpecValidator iterates over the static validator vectors and
// runs the decoding/encoding/hashing round, checking every field against the
// yaml rendering of the value.
func TestConsensusSpecValidator(t *testing.T) {
	tests, err := os.ReadDir(consensusSpecTestsRoot)
	if err != nil {
		t.Fatalf("failed to walk test collection %v: %v", consensusSpecTestsRoot, err)
	}
	if len(tests) == 0 {
		t.Fatalf("no tests found in %v", consensusSpecTestsRoot)
	}
	for _, test := range tests {
		t.Run(test.Name(), func(t *testing.T) {
			path := filepath.Join(consensusSpecTestsRoot, test.Name())

			// Parse the input SSZ data and the expected root for the test
			inSnappy, err := os.ReadFile(filepath.Join(path, "serialized.ssz_snappy"))
			if err != nil {
				t.Fatalf("failed to load snapy ssz binary: %v", err)
			}
			inSSZ, err := snappy.Decode(nil, inSnappy)
			if err != nil {
				t.Fatalf("failed to parse snappy ssz binary: %v", err)
			}
			inYAML, err := os.ReadFile(filepath.Join(path, "roots.yaml"))
			if err != nil {
				t.Fatalf("failed to load yaml root: %v", err)
			}
			inRoot := struct {
				Root string `yaml:"root"`
			}{}
			if err = yaml.Unmarshal(inYAML, &inRoot); err != nil {
				t.Fatalf("failed to parse yaml root: %v", err)
			}
			inValue, err := os.ReadFile(filepath.Join(path, "value.yaml"))
			if err != nil {
				t.Fatalf("failed to load yaml value: %v", err)
			}
			var value validatorYAML
			if err = yaml.Unmarshal(inValue, &value); err != nil {
				t.Fatalf("failed to parse yaml value: %v", err)
			}
			// Decode the binary and compare it field by field with the yaml
			obj := new(validator.Validator)
			if err := validator.ReadValidator(bytes.NewReader(inSSZ), obj); err != nil {
				t.Fatalf("failed to decode SSZ stream: %v", err)
			}
			want := new(validator.Validator)
			if err := decodeHex(want.Pubkey[:], value.Pubkey); err != nil {
				t.Fatalf("failed to parse pubkey: %v", err)
			}
			if err := decodeHex(want.WithdrawalCredentials[:], value.WithdrawalCredentials); err != nil {
				t.Fatalf("failed to parse withdrawal credentials: %v", err)
			}
			want.EffectiveBalance = validator.Gwei(value.EffectiveBalance)
			want.Slashed = value.Slashed
			want.ActivationEligibilityEpoch = validator.Epoch(value.ActivationEligibilityEpoch)
			want.ActivationEpoch = validator.Epoch(value.ActivationEpoch)
			want.ExitEpoch = validator.Epoch(value.ExitEpoch)
			want.WithdrawableEpoch = validator.Epoch(value.WithdrawableEpoch)

			if *obj != *want {
				t.Fatalf("decoded value mismatch: have %+v, want %+v", obj, want)
			}
			// Re-encode the record and check it against the source binary
			blob, err := obj.MarshalSSZ()
			if err != nil {
				t.Fatalf("failed to re-encode SSZ buffer: %v", err)
			}
			if !bytes.Equal(blob, inSSZ) {
				prefix := commonPrefix(blob, inSSZ)
				t.Fatalf("re-encoded bytes mismatch: have %x, want %x, common prefix %d, have left %x, want left %x",
					blob, inSSZ, len(prefix), blob[len(prefix):], inSSZ[len(prefix):])
			}
			// Encoder/decoder seems to work, check if the hash root is also correct
			root, err := obj.HashTreeRoot()
			if err != nil {
				t.Fatalf("failed to hash record: %v", err)
			}
			if fmt.Sprintf("%#x", root) != inRoot.Root {
				t.Fatalf("root mismatch: have %#x, want %s", root, inRoot.Root)
			}
		})
	}
}
