// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package storage

import (
	"encoding/binary"

	"github.com/syndtr/goleveldb/leveldb"

	"github.com/bitmark-inc/logger"
)

// PoolHandle - one prefixed table of the store
type PoolHandle struct {
	prefix byte
	limit  []byte
	store  *Store
}

// Element - a binary data item
type Element struct {
	Key   []byte
	Value []byte
}

// prepend the prefix onto the key
func (p *PoolHandle) prefixKey(key []byte) []byte {
	prefixedKey := make([]byte, 1, len(key)+1)
	prefixedKey[0] = p.prefix
	return append(prefixedKey, key...)
}

// Put - store a key/value bytes pair
//
// writes are batched while a transaction is in flight
func (p *PoolHandle) Put(key []byte, value []byte) {
	s := p.store
	s.Lock()
	defer s.Unlock()
	if nil == s.db {
		logger.Panic("pool.Put nil database")
		return
	}

	prefixedKey := p.prefixKey(key)
	if s.inUse {
		s.cache.Set(dbPut, string(prefixedKey), value)
		s.batch.Put(prefixedKey, value)
		return
	}
	err := s.db.Put(prefixedKey, value, nil)
	logger.PanicIfError("pool.Put", err)
}

// PutN - store an 8 byte big endian value
func (p *PoolHandle) PutN(key []byte, value uint64) {
	buffer := make([]byte, 8)
	binary.BigEndian.PutUint64(buffer, value)
	p.Put(key, buffer)
}

// Delete - remove a key
func (p *PoolHandle) Delete(key []byte) {
	s := p.store
	s.Lock()
	defer s.Unlock()
	if nil == s.db {
		logger.Panic("pool.Delete nil database")
		return
	}

	prefixedKey := p.prefixKey(key)
	if s.inUse {
		s.cache.Set(dbDelete, string(prefixedKey), []byte{})
		s.batch.Delete(prefixedKey)
		return
	}
	err := s.db.Delete(prefixedKey, nil)
	logger.PanicIfError("pool.Delete", err)
}

// Get - read a value for a given key
//
// pending transaction writes are visible; returns nil if the record
// was not found
func (p *PoolHandle) Get(key []byte) []byte {
	s := p.store
	s.RLock()
	defer s.RUnlock()
	if nil == s.db {
		return nil
	}

	prefixedKey := p.prefixKey(key)
	if s.inUse {
		if value, found := s.cache.Get(string(prefixedKey)); found {
			return value
		}
		if s.cache.IsDeleted(string(prefixedKey)) {
			return nil
		}
	}

	value, err := s.db.Get(prefixedKey, nil)
	if leveldb.ErrNotFound == err {
		return nil
	}
	logger.PanicIfError("pool.Get", err)
	return value
}

// GetN - read a record and decode first 8 bytes as big endian uint64
//
// second parameter is false if record was not found
// panics if not 8 (or more) bytes in the record
func (p *PoolHandle) GetN(key []byte) (uint64, bool) {
	buffer := p.Get(key)
	if nil == buffer {
		return 0, false
	}
	if len(buffer) < 8 {
		logger.Panicf("pool.GetN truncated record for: %x: %s", key, buffer)
	}
	n := binary.BigEndian.Uint64(buffer[:8])
	return n, true
}

// Has - check if a key exists
func (p *PoolHandle) Has(key []byte) bool {
	s := p.store
	s.RLock()
	defer s.RUnlock()
	if nil == s.db {
		return false
	}

	prefixedKey := p.prefixKey(key)
	if s.inUse {
		if _, found := s.cache.Get(string(prefixedKey)); found {
			return true
		}
		if s.cache.IsDeleted(string(prefixedKey)) {
			return false
		}
	}

	value, err := s.db.Has(prefixedKey, nil)
	logger.PanicIfError("pool.Has", err)
	return value
}
