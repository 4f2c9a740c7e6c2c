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

// Package kdf contains the key derivation backend contract driven by the
// conformance harness, as well as implementations of the concept.
package kdf

import (
	"errors"
)

// Error returned if a record names a hash function no backend supports.
var ErrUnsupportedHash = errors.New("unsupported hash")

// Error returned if the requested derived key length is zero or exceeds the
// maximum the derivation can produce for the selected hash.
var ErrInvalidLength = errors.New("invalid derived key length")

// Error returned if the flags select a derivation variant the backend does not
// implement.
var ErrUnsupportedVariant = errors.New("unsupported derivation variant")

// Error returned if the expected key material passed to a validation has a
// size inconsistent with the record.
var ErrMalformedBuffer = errors.New("malformed expected key material")

// Backend is the interface a key derivation implementation must implement to
// be driven by the harness. Implementations must be reentrant: a backend may
// be called concurrently from multiple workers and must keep no mutable state
// outside the passed-in record.
type Backend interface {
	// DeriveKey computes the derived key material for the given record. The
	// flags select the derivation variant; a backend must map a given flags
	// value to the same variant for the life of the process. The record must
	// not be retained beyond the duration of the call.
	DeriveKey(record *Record, flags Flags) ([]byte, error)
}
