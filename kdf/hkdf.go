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
	"io"

	"golang.org/x/crypto/hkdf"
)

// HKDF implements the Backend interface according to RFC 5869. It is stateless
// and safe for concurrent use.
type HKDF struct{}

// NewHKDF creates a Backend which derives key material with the RFC 5869
// extract-then-expand construction.
func NewHKDF() HKDF {
	return HKDF{}
}

// DeriveKey derives DKMLen bits of key material from the record. The expansion
// can produce at most 255 hash blocks; requests beyond that fail. A trailing
// partial byte is delivered in full, matching the reference vectors.
func (HKDF) DeriveKey(record *Record, flags Flags) ([]byte, error) {
	if flags&FlagOneStep != 0 {
		return nil, ErrUnsupportedVariant
	}

	hashNew, err := record.Hash.New()
	if err != nil {
		return nil, err
	}

	size := hashNew().Size()
	if record.DKMLen == 0 || record.DKMLen > uint32(255*size)*8 {
		return nil, ErrInvalidLength
	}

	// An empty salt is keyed as an all-zero salt of the hash output length,
	// which is what HMAC key padding does with a zero-length key.
	dkm := make([]byte, record.DKMSize())
	if _, err := io.ReadFull(hkdf.New(hashNew, record.IKM, record.Salt, record.Info), dkm); err != nil {
		return nil, err
	}
	return dkm, nil
}
