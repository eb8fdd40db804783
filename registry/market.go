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

// read a parcel record inside the current transaction
func (r *Registry) readParcel(id parcel.ID) (*parcel.Parcel, error) {
	packed := r.store.Pool.Parcels.Get(id.Bytes())
	if nil == packed {
		return nil, fault.ParcelNotFound
	}
	return parcel.Unpack(packed)
}

// List - put a parcel up for sale
//
// owner only, checked against the token ledger not the cached field
func (r *Registry) List(caller *account.Account, id parcel.ID, price currency.Unit) error {

	if err := r.lockGuard(); nil != err {
		return err
	}
	defer r.unlockGuard()

	if err := r.store.Begin(); nil != err {
		return err
	}

	owner, ok := r.tokens.OwnerOf(id)
	if !ok {
		r.store.Abort()
		return fault.ParcelNotFound
	}
	p, err := r.readParcel(id)
	if nil != err {
		r.store.Abort()
		return err
	}
	if !owner.Equal(caller) {
		r.store.Abort()
		return fault.NotParcelOwner
	}
	if price < r.minPrice {
		r.store.Abort()
		return fault.PriceTooLow
	}
	if p.ForSale {
		r.store.Abort()
		return fault.ParcelAlreadyListed
	}

	p.ForSale = true
	p.Price = price
	p.Owner = owner // refresh the cached owner
	r.store.Pool.Parcels.Put(id.Bytes(), p.Pack())

	if err := r.store.Commit(); nil != err {
		return err
	}

	r.log.Infof("listed parcel %d at %s by %s", id, price, owner)
	r.emit(Listed{
		ParcelId: id,
		Seller:   owner,
		Price:    price,
	})
	return nil
}

// Delist - withdraw a parcel from sale
func (r *Registry) Delist(caller *account.Account, id parcel.ID) error {

	if err := r.lockGuard(); nil != err {
		return err
	}
	defer r.unlockGuard()

	if err := r.store.Begin(); nil != err {
		return err
	}

	owner, ok := r.tokens.OwnerOf(id)
	if !ok {
		r.store.Abort()
		return fault.ParcelNotFound
	}
	p, err := r.readParcel(id)
	if nil != err {
		r.store.Abort()
		return err
	}
	if !owner.Equal(caller) {
		r.store.Abort()
		return fault.NotParcelOwner
	}
	if !p.ForSale {
		r.store.Abort()
		return fault.ParcelNotListed
	}

	p.ForSale = false
	p.Price = 0
	p.Owner = owner
	r.store.Pool.Parcels.Put(id.Bytes(), p.Pack())

	if err := r.store.Commit(); nil != err {
		return err
	}

	r.log.Infof("delisted parcel %d by %s", id, owner)
	r.emit(Delisted{
		ParcelId: id,
		Owner:    owner,
	})
	return nil
}

// Buy - atomic exchange of a listed parcel for payment
//
// all registry state is mutated before any outward payment call; a
// payout or refund failure aborts the transaction so nothing from any
// step is retained
func (r *Registry) Buy(caller *account.Account, id parcel.ID, paid currency.Unit) error {

	if err := r.lockGuard(); nil != err {
		return err
	}
	defer r.unlockGuard()

	if !caller.IsValid() {
		return fault.InvalidRecipient
	}

	if err := r.store.Begin(); nil != err {
		return err
	}

	seller, ok := r.tokens.OwnerOf(id)
	if !ok {
		r.store.Abort()
		return fault.ParcelNotFound
	}
	p, err := r.readParcel(id)
	if nil != err {
		r.store.Abort()
		return err
	}
	if !p.ForSale {
		r.store.Abort()
		return fault.ParcelNotListed
	}
	if seller.Equal(caller) {
		r.store.Abort()
		return fault.SelfPurchase
	}
	if paid < p.Price {
		r.store.Abort()
		return fault.InsufficientPayment
	}

	price := p.Price
	fee, net, err := currency.SplitFee(price, r.feeBasisPoints())
	if nil != err {
		r.store.Abort()
		return err
	}

	// close the listing before any outward transfer
	p.ForSale = false
	p.Price = 0
	p.Owner = caller

	if err := r.tokens.Transfer(id, seller, caller); nil != err {
		r.store.Abort()
		return err
	}
	r.store.Pool.Parcels.Put(id.Bytes(), p.Pack())

	accrued, _ := r.store.Pool.Settings.GetN(accruedFeesKey)
	total := accrued + uint64(fee)
	if total < accrued {
		r.store.Abort()
		return fault.BalanceOverflow
	}
	r.store.Pool.Settings.PutN(accruedFeesKey, total)

	if err := r.pay.Pay(seller, net); nil != err {
		r.store.Abort()
		r.log.Warnf("payout for parcel %d failed: %s", id, err)
		return fault.PayoutFailed
	}
	if paid > price {
		if err := r.pay.Pay(caller, paid-price); nil != err {
			r.store.Abort()
			r.log.Warnf("refund for parcel %d failed: %s", id, err)
			return fault.RefundFailed
		}
	}

	if err := r.store.Commit(); nil != err {
		return err
	}

	r.saleCounter.Increment()
	r.log.Infof("sold parcel %d for %s from %s to %s", id, price, seller, caller)
	r.emit(Sold{
		ParcelId: id,
		Seller:   seller,
		Buyer:    caller,
		Price:    price,
	})
	return nil
}
