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
	"crypto/sha1"
	"crypto/sha256"
	"crypto/sha512"
	"hash"

	"golang.org/x/crypto/sha3"
)

// HashAlg identifies the hash function a backend must use to key HMAC.
type HashAlg uint64

const (
	SHA1 HashAlg = 1 << iota
	SHA224
	SHA256
	SHA384
	SHA512
	SHA512_224
	SHA512_256
	SHA3_224
	SHA3_256
	SHA3_384
	SHA3_512
)

// New returns the constructor of the underlying hash function.
func (h HashAlg) New() (func() hash.Hash, error) {
	switch h {
	case SHA1:
		return sha1.New, nil
	case SHA224:
		return sha256.New224, nil
	case SHA256:
		return sha256.New, nil
	case SHA384:
		return sha512.New384, nil
	case SHA512:
		return sha512.New, nil
	case SHA512_224:
		return sha512.New512_224, nil
	case SHA512_256:
		return sha512.New512_256, nil
	case SHA3_224:
		return sha3.New224, nil
	case SHA3_256:
		return sha3.New256, nil
	case SHA3_384:
		return sha3.New384, nil
	case SHA3_512:
		return sha3.New512, nil
	}
	return nil, ErrUnsupportedHash
}

// Size returns the output size of the hash function in bytes.
func (h HashAlg) Size() (int, error) {
	hashNew, err := h.New()
	if err != nil {
		return 0, err
	}
	return hashNew().Size(), nil
}

// String returns the ACVP name of the hash function.
func (h HashAlg) String() string {
	switch h {
	case SHA1:
		return "SHA-1"
	case SHA224:
		return "SHA2-224"
	case SHA256:
		return "SHA2-256"
	case SHA384:
		return "SHA2-384"
	case SHA512:
		return "SHA2-512"
	case SHA512_224:
		return "SHA2-512/224"
	case SHA512_256:
		return "SHA2-512/256"
	case SHA3_224:
		return "SHA3-224"
	case SHA3_256:
		return "SHA3-256"
	case SHA3_384:
		return "SHA3-384"
	case SHA3_512:
		return "SHA3-512"
	}
	return "unknown"
}

// Flags is an opaque bitmask selecting the derivation variant. It is passed
// through unexamined by the registry and interpreted only by the backend.
type Flags uint64

const (
	// FlagHKDF selects the two-step extract-then-expand derivation of RFC 5869.
	// It is the default when no variant bit is set.
	FlagHKDF Flags = 1 << iota

	// FlagOneStep selects the one-step fixed-info construction. Its record
	// fields are carried but the construction itself is not implemented here.
	FlagOneStep
)

// FlagVariantMask covers the bits that select the derivation variant.
const FlagVariantMask = FlagHKDF | FlagOneStep

// Record is the per-test-case data exchanged between the harness and a
// backend. The harness constructs one record per test case, passes it to the
// backend, reads the outcome back, and discards or reuses it.
type Record struct {
	// Hash selects the hash function for HMAC.
	Hash HashAlg

	// DKMLen is the requested length of the derived key material in bits.
	DKMLen uint32

	// IKM is the input key material, i.e. the shared secret.
	IKM []byte

	// Salt is optional. An empty salt is equivalent to an all-zero salt of the
	// hash output length.
	Salt []byte

	// Info is optional context bound into the expansion. Empty is valid.
	Info []byte

	// The fields below belong to the one-step fixed-info construction and are
	// ignored unless the flags select that variant.
	FixedInfoPattern []byte
	PartyU           []byte
	PartyUEphemeral  []byte
	PartyV           []byte
	PartyVEphemeral  []byte
}

// DKMSize returns the requested derived key length in bytes, rounding a
// partial trailing byte up.
func (r *Record) DKMSize() int {
	return int(r.DKMLen+7) / 8
}
