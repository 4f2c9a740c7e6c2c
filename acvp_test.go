// Copyright (C) 2022 CYBERCRYPT
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published
// by the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU Affero General Public License for more details.
//
// You should have received a copy of the GNU Affero General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

package acvp

import (
	"bytes"
	"context"
	"encoding/hex"
	"errors"
	"testing"

	"github.com/gofrs/uuid"

	"github.com/conformio/acvp-lib/config"
	"github.com/conformio/acvp-lib/kdf"
	"github.com/conformio/acvp-lib/store"
)

func newTestHarness(t *testing.T) Harness {
	t.Helper()

	registry := kdf.NewRegistry()
	registry.Register(kdf.AlgorithmHKDF, kdf.NewHKDF())

	mem := store.NewMem()
	harness, err := New(registry, &mem)
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	return harness
}

func newTestRecord() *kdf.Record {
	ikm := make([]byte, 22)
	for i := range ikm {
		ikm[i] = 0x0b
	}
	return &kdf.Record{
		Hash:   kdf.SHA256,
		DKMLen: 336,
		IKM:    ikm,
		Salt:   []byte{0x00, 0x01, 0x02, 0x03, 0x04, 0x05, 0x06, 0x07, 0x08, 0x09, 0x0a, 0x0b, 0x0c},
		Info:   []byte{0xf0, 0xf1, 0xf2, 0xf3, 0xf4, 0xf5, 0xf6, 0xf7, 0xf8, 0xf9},
	}
}

// Test that a generated case produces the reference key material and that the
// same material validates when fed back.
func TestHarnessGenerateValidate(t *testing.T) {
	harness := newTestHarness(t)
	ctx := context.Background()

	generated, err := harness.Generate(ctx, kdf.AlgorithmHKDF, newTestRecord(), kdf.FlagHKDF)
	if err != nil {
		t.Fatalf("Generate failed: %v", err)
	}

	expected, err := hex.DecodeString("3cb25f25faacd57a90434f64d0362f2a2d2d0a90cf1a5a4c5db02d56ecc4c5bf34007208d5b887185865")
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(generated.DKM, expected) {
		t.Fatalf("derived key material %x doesn't match %x", generated.DKM, expected)
	}
	if generated.Validated {
		t.Fatal("a generate mode result must not claim a verdict")
	}

	verdict, err := harness.Validate(ctx, kdf.AlgorithmHKDF, newTestRecord(), kdf.FlagHKDF, generated.DKM)
	if err != nil {
		t.Fatalf("Validate failed: %v", err)
	}
	if !verdict.Validated || !verdict.Valid {
		t.Fatalf("expected a passing verdict but got %+v", verdict)
	}
}

// Test that a mismatch is recorded as a failed verdict, not an error.
func TestHarnessValidateMismatch(t *testing.T) {
	harness := newTestHarness(t)
	ctx := context.Background()

	generated, err := harness.Generate(ctx, kdf.AlgorithmHKDF, newTestRecord(), kdf.FlagHKDF)
	if err != nil {
		t.Fatalf("Generate failed: %v", err)
	}

	flipped := make([]byte, len(generated.DKM))
	copy(flipped, generated.DKM)
	flipped[0] ^= 0x01

	verdict, err := harness.Validate(ctx, kdf.AlgorithmHKDF, newTestRecord(), kdf.FlagHKDF, flipped)
	if err != nil {
		t.Fatalf("Validate failed: %v", err)
	}
	if !verdict.Validated || verdict.Valid {
		t.Fatalf("expected a failing verdict but got %+v", verdict)
	}
}

// Test that results can be fetched back from the store.
func TestHarnessGetResult(t *testing.T) {
	harness := newTestHarness(t)
	ctx := context.Background()

	generated, err := harness.Generate(ctx, kdf.AlgorithmHKDF, newTestRecord(), kdf.FlagHKDF)
	if err != nil {
		t.Fatalf("Generate failed: %v", err)
	}

	fetched, err := harness.GetResult(ctx, generated.CaseID)
	if err != nil {
		t.Fatalf("GetResult failed: %v", err)
	}
	if fetched.CaseID != generated.CaseID || fetched.SessionID != harness.SessionID() {
		t.Fatalf("fetched result (%+v) not equal to original (%+v)", fetched, generated)
	}
	if !bytes.Equal(fetched.DKM, generated.DKM) {
		t.Fatalf("fetched key material %x doesn't match %x", fetched.DKM, generated.DKM)
	}
}

// Test that deleted results are gone.
func TestHarnessDeleteResult(t *testing.T) {
	harness := newTestHarness(t)
	ctx := context.Background()

	generated, err := harness.Generate(ctx, kdf.AlgorithmHKDF, newTestRecord(), kdf.FlagHKDF)
	if err != nil {
		t.Fatalf("Generate failed: %v", err)
	}
	if err := harness.DeleteResult(ctx, generated.CaseID); err != nil {
		t.Fatalf("DeleteResult failed: %v", err)
	}

	_, err = harness.GetResult(ctx, generated.CaseID)
	if !errors.Is(err, store.ErrNotFound) {
		t.Fatalf("expected %v but got %v", store.ErrNotFound, err)
	}
}

// Test that a failing store surfaces as an error instead of losing results.
func TestHarnessStoreFailure(t *testing.T) {
	registry := kdf.NewRegistry()
	registry.Register(kdf.AlgorithmHKDF, kdf.NewHKDF())

	mem := store.NewMem()
	proxy := store.NewProxy(&mem)
	injected := errors.New("injected failure")
	proxy.PutFunc = func(id uuid.UUID, dataType store.DataType, data []byte) error {
		return injected
	}

	harness, err := New(registry, &proxy)
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}

	_, err = harness.Generate(context.Background(), kdf.AlgorithmHKDF, newTestRecord(), kdf.FlagHKDF)
	if !errors.Is(err, injected) {
		t.Fatalf("expected %v but got %v", injected, err)
	}
}

// Test that a registry miss surfaces distinctly from derivation failures.
func TestHarnessNotRegistered(t *testing.T) {
	mem := store.NewMem()
	harness, err := New(kdf.NewRegistry(), &mem)
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}

	_, err = harness.Generate(context.Background(), kdf.AlgorithmHKDF, newTestRecord(), kdf.FlagHKDF)
	if !errors.Is(err, kdf.ErrNotRegistered) {
		t.Fatalf("expected %v but got %v", kdf.ErrNotRegistered, err)
	}
}

// Test harness construction from the environment configuration.
func TestNewFromConfig(t *testing.T) {
	registry := kdf.NewRegistry()
	registry.Register(kdf.AlgorithmHKDF, kdf.NewHKDF())

	harness, err := NewFromConfig(config.Config{LogLevel: "warn", StorePath: t.TempDir() + "/results.db"}, registry)
	if err != nil {
		t.Fatalf("NewFromConfig failed: %v", err)
	}
	if _, err := harness.Generate(context.Background(), kdf.AlgorithmHKDF, newTestRecord(), kdf.FlagHKDF); err != nil {
		t.Fatalf("Generate failed: %v", err)
	}

	if _, err := NewFromConfig(config.Config{LogLevel: "not a level"}, registry); err == nil {
		t.Fatal("expected NewFromConfig to fail on an invalid log level")
	}
}
