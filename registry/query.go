// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package registry

import (
	"github.com/bitmark-inc/landd/account"
	"github.com/bitmark-inc/landd/currency"
	"github.com/bitmark-inc/landd/fault"
	"github.com/bitmark-inc/landd/parcel"
)

// scan batch for the full table enumerations
const scanBatchSize = 100

// Listing - one active marketplace entry
type Listing struct {
	ParcelId parcel.ID
	Seller   *account.Account
	Price    currency.Unit
}

// Stats - operation counts since process start
type Stats struct {
	Issued            uint64
	Sold              uint64
	RejectedReentries uint64
}

// Parcel - fetch one parcel record
func (r *Registry) Parcel(id parcel.ID) (*parcel.Parcel, error) {
	if !r.Exists(id) {
		return nil, fault.ParcelNotFound
	}
	packed := r.store.Pool.Parcels.Get(id.Bytes())
	if nil == packed {
		return nil, fault.ParcelNotFound
	}
	return parcel.Unpack(packed)
}

// IsCoordinateFree - check that no parcel occupies a position
func (r *Registry) IsCoordinateFree(x int64, y int64) bool {
	return !r.store.Pool.Coordinates.Has(parcel.PackCoordinate(x, y))
}

// ParcelAtCoordinate - the parcel at a position
//
// the presence flag distinguishes an empty position from parcel id 0
func (r *Registry) ParcelAtCoordinate(x int64, y int64) (parcel.ID, bool) {
	value := r.store.Pool.Coordinates.Get(parcel.PackCoordinate(x, y))
	if nil == value {
		return 0, false
	}
	id, err := parcel.IDFromBytes(value)
	if nil != err {
		return 0, false
	}
	return id, true
}

// TotalIssued - number of parcels ever issued
func (r *Registry) TotalIssued() uint64 {
	total, _ := r.store.Pool.Settings.GetN(nextIDKey)
	return total
}

// ActiveListings - every parcel currently for sale
//
// a full scan; a record flagged for sale whose token no longer
// resolves is stale and is skipped
func (r *Registry) ActiveListings() ([]Listing, error) {
	listings := []Listing{}

	cursor := r.store.Pool.Parcels.NewFetchCursor()
	for {
		records, err := cursor.Fetch(scanBatchSize)
		if nil != err {
			return nil, err
		}
		if 0 == len(records) {
			return listings, nil
		}
		for _, record := range records {
			id, err := parcel.IDFromBytes(record.Key)
			if nil != err {
				return nil, err
			}
			p, err := parcel.Unpack(record.Value)
			if nil != err {
				return nil, err
			}
			if !p.ForSale {
				continue
			}
			owner, ok := r.tokens.OwnerOf(id)
			if !ok {
				continue
			}
			listings = append(listings, Listing{
				ParcelId: id,
				Seller:   owner,
				Price:    p.Price,
			})
		}
	}
}

// OwnedBy - ids of every parcel held by one account
//
// a full scan filtered by the token ledger
func (r *Registry) OwnedBy(owner *account.Account) ([]parcel.ID, error) {
	ids := []parcel.ID{}

	cursor := r.store.Pool.Parcels.NewFetchCursor()
	for {
		records, err := cursor.Fetch(scanBatchSize)
		if nil != err {
			return nil, err
		}
		if 0 == len(records) {
			return ids, nil
		}
		for _, record := range records {
			id, err := parcel.IDFromBytes(record.Key)
			if nil != err {
				return nil, err
			}
			current, ok := r.tokens.OwnerOf(id)
			if ok && current.Equal(owner) {
				ids = append(ids, id)
			}
		}
	}
}

// AccruedFees - marketplace fees retained and not yet withdrawn
func (r *Registry) AccruedFees() currency.Unit {
	accrued, _ := r.store.Pool.Settings.GetN(accruedFeesKey)
	return currency.Unit(accrued)
}

// FeeBasisPoints - the current marketplace fee
func (r *Registry) FeeBasisPoints() uint64 {
	return r.feeBasisPoints()
}

// Statistics - counters since process start
func (r *Registry) Statistics() Stats {
	return Stats{
		Issued:            r.issueCounter.Uint64(),
		Sold:              r.saleCounter.Uint64(),
		RejectedReentries: r.reentrantCounter.Uint64(),
	}
}
