// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package registry - the land parcel registry and marketplace
//
// every mutating operation runs inside one storage transaction and
// under a shared non-reentrant guard; a failure at any step discards
// all effects of the operation
package registry

import (
	"sync/atomic"
	"time"

	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/landd/account"
	"github.com/bitmark-inc/landd/counter"
	"github.com/bitmark-inc/landd/currency"
	"github.com/bitmark-inc/landd/fault"
	"github.com/bitmark-inc/landd/messagebus"
	"github.com/bitmark-inc/landd/ownership"
	"github.com/bitmark-inc/landd/payment"
	"github.com/bitmark-inc/landd/storage"
)

// settings pool keys
var (
	nextIDKey      = []byte("next-id")
	feeBasisKey    = []byte("fee-basis-points")
	accruedFeesKey = []byte("accrued-fees")
)

// Options - fixed parameters of a registry instance
type Options struct {
	Administrator  *account.Account
	SupplyCap      uint64
	MinimumPrice   currency.Unit
	FeeBasisPoints uint64 // initial value, until changed by SetFee
	Bus            *messagebus.Bus  // optional
	Clock          func() time.Time // optional, defaults to time.Now
}

// Registry - one registry over one store
//
// constructed once, passed explicitly; no package globals
type Registry struct {
	log    *logger.L
	store  *storage.Store
	tokens ownership.Ownership
	pay    payment.Method

	admin      *account.Account
	supplyCap  uint64
	minPrice   currency.Unit
	defaultFee uint64
	bus        *messagebus.Bus
	clock      func() time.Time

	// non-reentrant guard shared by all mutating entry points
	busy uint32

	// statistics since process start
	issueCounter     counter.Counter
	saleCounter      counter.Counter
	reentrantCounter counter.Counter
}

// New - create a registry instance
func New(store *storage.Store, tokens ownership.Ownership, pay payment.Method, options Options) (*Registry, error) {
	if nil == store {
		return nil, fault.DatabaseIsNotSet
	}
	if nil == options.Administrator || !options.Administrator.IsValid() {
		return nil, fault.InvalidRecipient
	}
	if 0 == options.SupplyCap {
		return nil, fault.SupplyCapReached
	}
	if 0 == options.MinimumPrice {
		// a zero minimum would let a listing carry price zero,
		// breaking the listed implies price > 0 invariant
		return nil, fault.PriceTooLow
	}
	if options.FeeBasisPoints > currency.MaxBasisPoints {
		return nil, fault.FeeTooHigh
	}

	clock := options.Clock
	if nil == clock {
		clock = time.Now
	}

	return &Registry{
		log:        logger.New("registry"),
		store:      store,
		tokens:     tokens,
		pay:        pay,
		admin:      options.Administrator,
		supplyCap:  options.SupplyCap,
		minPrice:   options.MinimumPrice,
		defaultFee: options.FeeBasisPoints,
		bus:        options.Bus,
		clock:      clock,
	}, nil
}

// acquire the guard; a nested call from a payment callback fails here
func (r *Registry) lockGuard() error {
	if !atomic.CompareAndSwapUint32(&r.busy, 0, 1) {
		r.reentrantCounter.Increment()
		r.log.Warn("re-entrant call rejected")
		return fault.ReentrantCall
	}
	return nil
}

func (r *Registry) unlockGuard() {
	atomic.StoreUint32(&r.busy, 0)
}

// current fee in basis points
//
// persisted value wins; the option default applies until the first
// successful SetFee
func (r *Registry) feeBasisPoints() uint64 {
	if bp, found := r.store.Pool.Settings.GetN(feeBasisKey); found {
		return bp
	}
	return r.defaultFee
}

// send an event if a bus was configured
func (r *Registry) emit(item interface{}) {
	if nil != r.bus {
		r.bus.Send("registry", item)
	}
}
