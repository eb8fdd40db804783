// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package registry_test

import (
	"os"
	"testing"
	"time"

	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/landd/account"
	"github.com/bitmark-inc/landd/currency"
	"github.com/bitmark-inc/landd/messagebus"
	"github.com/bitmark-inc/landd/ownership"
	"github.com/bitmark-inc/landd/payment"
	"github.com/bitmark-inc/landd/registry"
	"github.com/bitmark-inc/landd/storage"
)

const (
	databaseFileName = "test.leveldb"
	testingDirName   = "testing"

	testSupplyCap = 100
	testMinPrice  = currency.Unit(100)
	testFeeBasis  = 250 // 2.5%
)

// deterministic time for issued records
var testTime = time.Unix(1600000000, 0)

type fixture struct {
	store  *storage.Store
	tokens ownership.Ownership
	ledger *payment.Ledger
	bus    *messagebus.Bus
	reg    *registry.Registry

	admin *account.Account
	alice *account.Account
	bob   *account.Account
}

func removeFiles() {
	os.RemoveAll(databaseFileName)
	os.RemoveAll(testingDirName)
}

func makeAccount(t *testing.T) *account.Account {
	a, _, err := account.New(true)
	if nil != err {
		t.Fatalf("account generate error: %s", err)
	}
	return a
}

// build a registry over a fresh database
//
// pay defaults to the internal balance ledger; pass a Method to
// substitute a failing collaborator
func setup(t *testing.T, pay payment.Method) *fixture {
	removeFiles()
	_ = os.Mkdir(testingDirName, 0700)

	logging := logger.Configuration{
		Directory: testingDirName,
		File:      "testing.log",
		Size:      1048576,
		Count:     10,
		Console:   false,
		Levels: map[string]string{
			logger.DefaultTag: "critical",
		},
	}
	_ = logger.Initialise(logging)

	store, err := storage.New(databaseFileName)
	if nil != err {
		t.Fatalf("storage initialise error: %s", err)
	}

	f := &fixture{
		store:  store,
		tokens: ownership.New(store.Pool.Tokens),
		ledger: payment.NewLedger(store.Pool.Balances),
		bus:    messagebus.New(),
		admin:  makeAccount(t),
		alice:  makeAccount(t),
		bob:    makeAccount(t),
	}

	if nil == pay {
		pay = f.ledger
	}

	f.reg, err = registry.New(store, f.tokens, pay, registry.Options{
		Administrator:  f.admin,
		SupplyCap:      testSupplyCap,
		MinimumPrice:   testMinPrice,
		FeeBasisPoints: testFeeBasis,
		Bus:            f.bus,
		Clock:          func() time.Time { return testTime },
	})
	if nil != err {
		t.Fatalf("registry initialise error: %s", err)
	}
	return f
}

func teardown(f *fixture) {
	f.store.Close()
	logger.Finalise()
	removeFiles()
}

// drain every queued event
func drainEvents(f *fixture) []messagebus.Message {
	events := []messagebus.Message{}
	for {
		select {
		case m := <-f.bus.Chan():
			events = append(events, m)
		default:
			return events
		}
	}
}
