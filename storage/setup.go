// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package storage

import (
	"encoding/binary"
	"fmt"
	"reflect"
	"sync"

	"github.com/syndtr/goleveldb/leveldb"
	ldb_opt "github.com/syndtr/goleveldb/leveldb/opt"

	"github.com/bitmark-inc/landd/fault"
)

// exported storage pools
//
// note all must be exported (i.e. initial capital) or initialisation will panic
type pools struct {
	Parcels     *PoolHandle `prefix:"P"`
	Coordinates *PoolHandle `prefix:"C"`
	Tokens      *PoolHandle `prefix:"T"`
	Balances    *PoolHandle `prefix:"B"`
	Settings    *PoolHandle `prefix:"S"`
	TestData    *PoolHandle `prefix:"Z"`
}

// Store - a single database with its pools and transaction state
//
// constructed by New and passed explicitly; no package globals
type Store struct {
	sync.RWMutex
	db    *leveldb.DB
	batch *leveldb.Batch
	cache Cache
	inUse bool

	// Pool - the set of exported pools
	Pool pools
}

// for database version
var versionKey = []byte{0x00, 'V', 'E', 'R', 'S', 'I', 'O', 'N'}

const currentDBVersion = 0x100

// New - open up the database connection
//
// this must be called before any pool is accessed
func New(database string) (*Store, error) {

	db, version, err := getDB(database)
	if nil != err {
		return nil, err
	}

	// ensure no database downgrade
	if version > currentDBVersion {
		db.Close()
		return nil, fmt.Errorf("database version: %d > current version: %d", version, currentDBVersion)
	}

	// database was empty so tag as current version
	if 0 == version {
		if err := putVersion(db, currentDBVersion); nil != err {
			db.Close()
			return nil, err
		}
	}

	store := &Store{
		db:    db,
		batch: new(leveldb.Batch),
		cache: newCache(),
	}

	// this will be a struct type
	poolType := reflect.TypeOf(store.Pool)

	// get write access by using pointer + Elem()
	poolValue := reflect.ValueOf(&store.Pool).Elem()

	// scan each field
	for i := 0; i < poolType.NumField(); i += 1 {

		fieldInfo := poolType.Field(i)

		prefixTag := fieldInfo.Tag.Get("prefix")
		if 1 != len(prefixTag) {
			db.Close()
			return nil, fmt.Errorf("pool: %v has invalid prefix: %q", fieldInfo, prefixTag)
		}

		prefix := prefixTag[0]
		limit := []byte(nil)
		if prefix < 255 {
			limit = []byte{prefix + 1}
		}

		p := &PoolHandle{
			prefix: prefix,
			limit:  limit,
			store:  store,
		}
		poolValue.Field(i).Set(reflect.ValueOf(p))
	}

	return store, nil
}

// Close - close the database connection
func (store *Store) Close() {
	store.Lock()
	defer store.Unlock()

	if nil != store.db {
		store.db.Close()
		store.db = nil
	}
}

// Begin - start a transaction
//
// all pool writes up to Commit or Abort are batched and become
// visible to pool reads through the transaction cache
func (store *Store) Begin() error {
	store.Lock()
	defer store.Unlock()

	if nil == store.db {
		return fault.DatabaseIsNotSet
	}
	if store.inUse {
		return fault.TransactionInProgress
	}

	store.inUse = true
	return nil
}

// Commit - atomically write all batched changes
func (store *Store) Commit() error {
	store.Lock()
	defer store.Unlock()

	if nil == store.db {
		return fault.DatabaseIsNotSet
	}
	if !store.inUse {
		return fault.NotInitialised
	}

	err := store.db.Write(store.batch, nil)
	store.batch.Reset()
	store.cache.Clear()
	store.inUse = false
	return err
}

// Abort - discard all batched changes
func (store *Store) Abort() {
	store.Lock()
	defer store.Unlock()

	store.batch.Reset()
	store.cache.Clear()
	store.inUse = false
}

// InUse - check if a transaction is in flight
func (store *Store) InUse() bool {
	store.RLock()
	defer store.RUnlock()
	return store.inUse
}

// return:
//   database handle
//   version number
func getDB(name string) (*leveldb.DB, int, error) {
	opt := &ldb_opt.Options{
		ErrorIfExist:   false,
		ErrorIfMissing: false,
	}

	db, err := leveldb.OpenFile(name, opt)
	if nil != err {
		return nil, 0, err
	}

	versionValue, err := db.Get(versionKey, nil)
	if leveldb.ErrNotFound == err {
		return db, 0, nil
	} else if nil != err {
		db.Close()
		return nil, 0, err
	}

	if 4 != len(versionValue) {
		db.Close()
		return nil, 0, fmt.Errorf("incompatible database version length: expected: %d  actual: %d", 4, len(versionValue))
	}

	version := int(binary.BigEndian.Uint32(versionValue))
	return db, version, nil
}

func putVersion(db *leveldb.DB, version int) error {
	currentVersion := make([]byte, 4)
	binary.BigEndian.PutUint32(currentVersion, uint32(version))

	return db.Put(versionKey, currentVersion, nil)
}
