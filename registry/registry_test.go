// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package registry_test

import (
	"fmt"
	"testing"
	"time"

	"github.com/bitmark-inc/landd/fault"
	"github.com/bitmark-inc/landd/parcel"
	"github.com/bitmark-inc/landd/registry"
)

// constructor must refuse parameters that would break invariants later
func TestNewValidation(t *testing.T) {
	f := setup(t, nil)
	defer teardown(f)

	valid := registry.Options{
		Administrator:  f.admin,
		SupplyCap:      testSupplyCap,
		MinimumPrice:   testMinPrice,
		FeeBasisPoints: testFeeBasis,
	}

	testCases := []struct {
		name     string
		modify   func(o *registry.Options)
		expected error
	}{
		{"nil administrator", func(o *registry.Options) { o.Administrator = nil }, fault.InvalidRecipient},
		{"zero supply cap", func(o *registry.Options) { o.SupplyCap = 0 }, fault.SupplyCapReached},
		{"zero minimum price", func(o *registry.Options) { o.MinimumPrice = 0 }, fault.PriceTooLow},
		{"fee over maximum", func(o *registry.Options) { o.FeeBasisPoints = 1001 }, fault.FeeTooHigh},
	}

	for _, item := range testCases {
		options := valid
		item.modify(&options)
		_, err := registry.New(f.store, f.tokens, f.ledger, options)
		if item.expected != err {
			t.Errorf("%s: error: %v  expected: %v", item.name, err, item.expected)
		}
	}

	_, err := registry.New(nil, f.tokens, f.ledger, valid)
	if fault.DatabaseIsNotSet != err {
		t.Errorf("nil store: error: %v  expected: %v", err, fault.DatabaseIsNotSet)
	}
}

// enumerations must cover every record, not just the first scan batch
func TestEnumerationBeyondOneBatch(t *testing.T) {
	f := setup(t, nil)
	defer teardown(f)

	const issued = 150
	const listed = 120

	// the fixture cap is too small for this population
	big, err := registry.New(f.store, f.tokens, f.ledger, registry.Options{
		Administrator:  f.admin,
		SupplyCap:      issued,
		MinimumPrice:   testMinPrice,
		FeeBasisPoints: testFeeBasis,
		Clock:          func() time.Time { return testTime },
	})
	if nil != err {
		t.Fatalf("registry initialise error: %s", err)
	}

	for i := 0; i < issued; i += 1 {
		_, err := big.Issue(f.admin, f.alice, int64(i), 1000, 1, fmt.Sprintf("plot %d", i))
		if nil != err {
			t.Fatalf("issue %d: error: %s", i, err)
		}
	}

	for i := 0; i < listed; i += 1 {
		err := big.List(f.alice, parcel.ID(i), testMinPrice)
		if nil != err {
			t.Fatalf("list %d: error: %s", i, err)
		}
	}

	listings, err := big.ActiveListings()
	if nil != err {
		t.Fatalf("active listings error: %s", err)
	}
	if listed != len(listings) {
		t.Errorf("active listings: %d  expected: %d", len(listings), listed)
	}

	ids, err := big.OwnedBy(f.alice)
	if nil != err {
		t.Fatalf("owned by error: %s", err)
	}
	if issued != len(ids) {
		t.Errorf("owned by: %d  expected: %d", len(ids), issued)
	}
	for i, id := range ids {
		if parcel.ID(i) != id {
			t.Fatalf("%d: id out of sequence: %d  expected: %d", i, id, i)
		}
	}

	if issued != f.tokens.CountOwnedBy(f.alice) {
		t.Errorf("token count: %d  expected: %d", f.tokens.CountOwnedBy(f.alice), issued)
	}

	if issued != big.TotalIssued() {
		t.Errorf("total issued: %d  expected: %d", big.TotalIssued(), issued)
	}
}
