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

// Package store contains the definition of the result store Provider, as well
// as various implementations of the concept.
package store

import (
	"encoding/binary"
	"errors"
	"fmt"

	"github.com/gofrs/uuid"
)

// Error returned if data is not found during a "Get" or "Update" call.
var ErrNotFound = errors.New("not found")

// Error returned if data is found during a "Put" call.
var ErrAlreadyExists = errors.New("already exists")

// Types of data supported by a Provider.
type DataType uint16

const (
	DataTypeResult DataType = iota
	DataTypeEnd
)

// Bytes returns a byte representation of a DataType.
func (d DataType) Bytes() []byte {
	b := make([]byte, binary.MaxVarintLen16)
	binary.LittleEndian.PutUint16(b, uint16(d))
	return b
}

// String returns a string representation of a DataType.
func (d DataType) String() string {
	return fmt.Sprintf("%d", d)
}

// Provider is the interface a result store must implement to persist data for
// the harness. The data is identified by the test case ID and a data type.
type Provider interface {
	// Put sends bytes to the store. Should error if the data already exists.
	Put(id uuid.UUID, dataType DataType, data []byte) error

	// Get fetches data from the store.
	Get(id uuid.UUID, dataType DataType) ([]byte, error)

	// Update is similar to Put but overwrites data previously sent to the
	// store. Should error if the data does not exist.
	Update(id uuid.UUID, dataType DataType, data []byte) error

	// Delete removes data previously sent to the store.
	Delete(id uuid.UUID, dataType DataType) error
}
