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

package kdf

import (
	"context"
	"crypto/hmac"
	"errors"
	"fmt"

	"github.com/conformio/acvp-lib/log"
)

// Error returned if dispatch is attempted for an algorithm with no registered
// backend. This is a configuration defect, distinct from a derivation failure.
var ErrNotRegistered = errors.New("no backend registered")

// Algorithm identifies a primitive family a backend can be registered for.
type Algorithm uint16

const (
	AlgorithmHKDF Algorithm = iota
	AlgorithmOneStepKDF
	AlgorithmEnd
)

// String returns a string representation of an Algorithm.
func (a Algorithm) String() string {
	switch a {
	case AlgorithmHKDF:
		return "HKDF"
	case AlgorithmOneStepKDF:
		return "OneStepKDF"
	}
	return fmt.Sprintf("Algorithm(%d)", uint16(a))
}

// Registry associates each algorithm with the single live backend that serves
// it. Registration must happen during single-threaded process setup, strictly
// before any dispatch; after setup the registry is read-only and safe for
// concurrent dispatch without locking.
type Registry struct {
	backends map[Algorithm]Backend
}

// NewRegistry creates an empty Registry.
func NewRegistry() *Registry {
	return &Registry{backends: make(map[Algorithm]Backend)}
}

// Register associates the backend with the algorithm. Any prior association is
// unconditionally replaced, i.e. the last registration wins.
func (r *Registry) Register(alg Algorithm, backend Backend) {
	r.backends[alg] = backend
}

// Lookup returns the backend registered for the algorithm.
func (r *Registry) Lookup(alg Algorithm) (Backend, error) {
	backend, ok := r.backends[alg]
	if !ok {
		return nil, ErrNotRegistered
	}
	return backend, nil
}

// Algorithms returns the algorithms that currently have a backend registered.
func (r *Registry) Algorithms() []Algorithm {
	algs := make([]Algorithm, 0, len(r.backends))
	for alg := range r.backends {
		algs = append(algs, alg)
	}
	return algs
}

// Generate dispatches the record to the registered backend and returns the
// generated key material.
func (r *Registry) Generate(ctx context.Context, alg Algorithm, record *Record, flags Flags) ([]byte, error) {
	ctx = log.CopyCtxLogger(ctx)
	log.WithMethod(ctx, "generate dkm")

	backend, err := r.Lookup(alg)
	if err != nil {
		return nil, err
	}

	log.Ctx(ctx).Debug().Stringer("alg", alg).Stringer("hash", record.Hash).Msg("deriving key material")
	return backend.DeriveKey(record, flags)
}

// Validate dispatches the record to the registered backend and compares the
// derived key material against the expected bytes. A mismatch is a verdict,
// not an error: the call succeeds and the returned bool is false. An error is
// returned only if the inputs could not be evaluated at all.
func (r *Registry) Validate(ctx context.Context, alg Algorithm, record *Record, flags Flags, expected []byte) (bool, error) {
	ctx = log.CopyCtxLogger(ctx)
	log.WithMethod(ctx, "validate dkm")

	if len(expected) == 0 || len(expected) != record.DKMSize() {
		return false, ErrMalformedBuffer
	}

	backend, err := r.Lookup(alg)
	if err != nil {
		return false, err
	}

	log.Ctx(ctx).Debug().Stringer("alg", alg).Stringer("hash", record.Hash).Msg("deriving key material for comparison")
	dkm, err := backend.DeriveKey(record, flags)
	if err != nil {
		return false, err
	}
	return hmac.Equal(dkm, expected), nil
}
