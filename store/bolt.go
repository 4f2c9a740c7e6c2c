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
	"time"

	"github.com/gofrs/uuid"
	bolt "go.etcd.io/bbolt"
)

// Bolt implements a result store backed by the key/value database bolt.
// Results persist across harness runs in a single database file.
type Bolt struct {
	store        *bolt.DB
	resultBucket []byte
}

// NewBolt creates a new result store that keeps its data in the specified file.
func NewBolt(path string) (Bolt, error) {
	store, err := bolt.Open(path, 0600, &bolt.Options{Timeout: 1 * time.Second})
	if err != nil {
		return Bolt{}, err
	}

	resultBucket := []byte("result")

	err = store.Update(func(tx *bolt.Tx) error {
		_, err := tx.CreateBucketIfNotExists(resultBucket)
		return err
	})
	if err != nil {
		return Bolt{}, err
	}

	return Bolt{store, resultBucket}, nil
}

func (b *Bolt) Put(id uuid.UUID, dataType DataType, data []byte) error {
	key := append(id.Bytes(), dataType.Bytes()...)
	return b.store.Update(func(tx *bolt.Tx) error {
		bucket := tx.Bucket(b.resultBucket)
		if bucket.Get(key) != nil {
			return ErrAlreadyExists
		}
		return bucket.Put(key, data)
	})
}

func (b *Bolt) Get(id uuid.UUID, dataType DataType) ([]byte, error) {
	key := append(id.Bytes(), dataType.Bytes()...)
	var out []byte
	err := b.store.View(func(tx *bolt.Tx) error {
		bucket := tx.Bucket(b.resultBucket)
		out = append(out, bucket.Get(key)...)
		return nil
	})
	if err != nil {
		return nil, err
	}
	if out == nil {
		return nil, ErrNotFound
	}
	return out, nil
}

func (b *Bolt) Update(id uuid.UUID, dataType DataType, data []byte) error {
	key := append(id.Bytes(), dataType.Bytes()...)
	return b.store.Update(func(tx *bolt.Tx) error {
		bucket := tx.Bucket(b.resultBucket)
		if bucket.Get(key) == nil {
			return ErrNotFound
		}
		return bucket.Put(key, data)
	})
}

func (b *Bolt) Delete(id uuid.UUID, dataType DataType) error {
	key := append(id.Bytes(), dataType.Bytes()...)
	return b.store.Update(func(tx *bolt.Tx) error {
		return tx.Bucket(b.resultBucket).Delete(key)
	})
}

// Close releases the underlying database file.
func (b *Bolt) Close() error {
	return b.store.Close()
}
