// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package ownership - the token ledger mapping parcel ids to owners
//
// this ledger is the source of truth for who owns a parcel; the
// descriptive record carries a copy of the owner that is updated in
// the same transaction as any transfer
package ownership

import (
	"bytes"

	"github.com/bitmark-inc/landd/account"
	"github.com/bitmark-inc/landd/fault"
	"github.com/bitmark-inc/landd/parcel"
	"github.com/bitmark-inc/landd/storage"
)

// Ownership - operations on the token ledger
type Ownership interface {
	OwnerOf(id parcel.ID) (*account.Account, bool)
	Mint(id parcel.ID, to *account.Account) error
	Transfer(id parcel.ID, from *account.Account, to *account.Account) error
	CountOwnedBy(owner *account.Account) uint64
}

// the leveldb backed ledger
type ledger struct {
	pool *storage.PoolHandle
}

// New - create a ledger over the tokens pool
func New(pool *storage.PoolHandle) Ownership {
	return &ledger{
		pool: pool,
	}
}

// OwnerOf - current owner of a token
//
// second return is false if the token was never minted
func (l *ledger) OwnerOf(id parcel.ID) (*account.Account, bool) {
	packed := l.pool.Get(id.Bytes())
	if nil == packed {
		return nil, false
	}
	owner, err := account.AccountFromBytes(packed)
	if nil != err {
		return nil, false
	}
	return owner, true
}

// Mint - create the token for a newly issued parcel
func (l *ledger) Mint(id parcel.ID, to *account.Account) error {
	if !to.IsValid() {
		return fault.InvalidRecipient
	}
	key := id.Bytes()
	if l.pool.Has(key) {
		return fault.TokenAlreadyMinted
	}
	l.pool.Put(key, to.Bytes())
	return nil
}

// Transfer - move a token between accounts
//
// from must match the recorded owner
func (l *ledger) Transfer(id parcel.ID, from *account.Account, to *account.Account) error {
	if !to.IsValid() {
		return fault.InvalidRecipient
	}
	current, ok := l.OwnerOf(id)
	if !ok {
		return fault.TokenNotFound
	}
	if !current.Equal(from) {
		return fault.NotParcelOwner
	}
	l.pool.Put(id.Bytes(), to.Bytes())
	return nil
}

// CountOwnedBy - number of tokens held by one account
func (l *ledger) CountOwnedBy(owner *account.Account) uint64 {
	ownerBytes := owner.Bytes()
	count := uint64(0)

	cursor := l.pool.NewFetchCursor()
	for {
		records, err := cursor.Fetch(100)
		if nil != err || 0 == len(records) {
			return count
		}
		for _, record := range records {
			if bytes.Equal(ownerBytes, record.Value) {
				count += 1
			}
		}
	}
}
