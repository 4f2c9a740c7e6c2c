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

package store

import (
	"github.com/gofrs/uuid"
)

// Proxy is a result store that wraps another Provider. By default it forwards
// calls directly to the implementation, but individual functions can be
// replaced to customize the behavior, e.g. to inject failures in tests.
type Proxy struct {
	Implementation Provider
	PutFunc        func(id uuid.UUID, dataType DataType, data []byte) error
	GetFunc        func(id uuid.UUID, dataType DataType) ([]byte, error)
	UpdateFunc     func(id uuid.UUID, dataType DataType, data []byte) error
	DeleteFunc     func(id uuid.UUID, dataType DataType) error
}

// NewProxy returns a Proxy that forwards all calls to the implementation.
func NewProxy(implementation Provider) Proxy {
	return Proxy{
		Implementation: implementation,
		PutFunc:        implementation.Put,
		GetFunc:        implementation.Get,
		UpdateFunc:     implementation.Update,
		DeleteFunc:     implementation.Delete,
	}
}

func (p *Proxy) Put(id uuid.UUID, dataType DataType, data []byte) error {
	return p.PutFunc(id, dataType, data)
}

func (p *Proxy) Get(id uuid.UUID, dataType DataType) ([]byte, error) {
	return p.GetFunc(id, dataType)
}

func (p *Proxy) Update(id uuid.UUID, dataType DataType, data []byte) error {
	return p.UpdateFunc(id, dataType, data)
}

func (p *Proxy) Delete(id uuid.UUID, dataType DataType) error {
	return p.DeleteFunc(id, dataType)
}
