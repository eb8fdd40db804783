// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package registry

import (
	"github.com/bitmark-inc/landd/account"
	"github.com/bitmark-inc/landd/fault"
	"github.com/bitmark-inc/landd/parcel"
)

// Issue - create a new parcel and mint its token
//
// administrator only; ids are sequential from 0 and never reused
func (r *Registry) Issue(caller *account.Account, to *account.Account, x int64, y int64, size uint64, name string) (parcel.ID, error) {

	if err := r.lockGuard(); nil != err {
		return 0, err
	}
	defer r.unlockGuard()

	if !r.admin.Equal(caller) {
		return 0, fault.NotRegistryAdmin
	}
	if 0 == size {
		return 0, fault.InvalidParcelSize
	}
	if "" == name {
		return 0, fault.InvalidParcelName
	}
	if !to.IsValid() {
		return 0, fault.InvalidRecipient
	}

	if err := r.store.Begin(); nil != err {
		return 0, err
	}

	next, _ := r.store.Pool.Settings.GetN(nextIDKey)
	if next >= r.supplyCap {
		r.store.Abort()
		return 0, fault.SupplyCapReached
	}

	coordinateKey := parcel.PackCoordinate(x, y)
	if r.store.Pool.Coordinates.Has(coordinateKey) {
		r.store.Abort()
		return 0, fault.CoordinateOccupied
	}

	id := parcel.ID(next)
	if err := r.tokens.Mint(id, to); nil != err {
		r.store.Abort()
		return 0, err
	}

	p := &parcel.Parcel{
		X:         x,
		Y:         y,
		Size:      size,
		Name:      name,
		Price:     0,
		ForSale:   false,
		Owner:     to,
		CreatedAt: r.clock().Unix(),
	}
	r.store.Pool.Parcels.Put(id.Bytes(), p.Pack())
	r.store.Pool.Coordinates.Put(coordinateKey, id.Bytes())
	r.store.Pool.Settings.PutN(nextIDKey, next+1)

	if err := r.store.Commit(); nil != err {
		return 0, err
	}

	r.issueCounter.Increment()
	r.log.Infof("issued parcel %d at (%d,%d) to %s", id, x, y, to)
	r.emit(Issued{
		ParcelId: id,
		Owner:    to,
		X:        x,
		Y:        y,
		Size:     size,
	})
	return id, nil
}

// Exists - check that a parcel id resolves to an owner
//
// the token ledger is the source of truth; metadata alone is never
// trusted
func (r *Registry) Exists(id parcel.ID) bool {
	_, ok := r.tokens.OwnerOf(id)
	return ok
}
