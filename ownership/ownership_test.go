// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package ownership_test

import (
	"os"
	"testing"

	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/landd/account"
	"github.com/bitmark-inc/landd/fault"
	"github.com/bitmark-inc/landd/ownership"
	"github.com/bitmark-inc/landd/parcel"
	"github.com/bitmark-inc/landd/storage"
)

const (
	databaseFileName = "test.leveldb"
	testingDirName   = "testing"
)

func removeFiles() {
	os.RemoveAll(databaseFileName)
	os.RemoveAll(testingDirName)
}

func setup(t *testing.T) (*storage.Store, ownership.Ownership) {
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
	return store, ownership.New(store.Pool.Tokens)
}

func teardown(store *storage.Store) {
	store.Close()
	logger.Finalise()
	removeFiles()
}

func makeAccount(t *testing.T) *account.Account {
	a, _, err := account.New(true)
	if nil != err {
		t.Fatalf("account generate error: %s", err)
	}
	return a
}

func TestMintAndOwnerOf(t *testing.T) {
	store, tokens := setup(t)
	defer teardown(store)

	alice := makeAccount(t)

	if _, ok := tokens.OwnerOf(parcel.ID(0)); ok {
		t.Fatalf("owner found for unminted token")
	}

	err := tokens.Mint(parcel.ID(0), alice)
	if nil != err {
		t.Fatalf("mint error: %s", err)
	}

	owner, ok := tokens.OwnerOf(parcel.ID(0))
	if !ok {
		t.Fatalf("minted token has no owner")
	}
	if !owner.Equal(alice) {
		t.Errorf("owner: %s  expected: %s", owner, alice)
	}

	// double mint is rejected
	err = tokens.Mint(parcel.ID(0), alice)
	if fault.TokenAlreadyMinted != err {
		t.Errorf("double mint error: %v  expected: %v", err, fault.TokenAlreadyMinted)
	}
}

func TestTransfer(t *testing.T) {
	store, tokens := setup(t)
	defer teardown(store)

	alice := makeAccount(t)
	bob := makeAccount(t)
	carol := makeAccount(t)

	err := tokens.Mint(parcel.ID(7), alice)
	if nil != err {
		t.Fatalf("mint error: %s", err)
	}

	// transfer by non-owner fails
	err = tokens.Transfer(parcel.ID(7), bob, carol)
	if fault.NotParcelOwner != err {
		t.Errorf("transfer error: %v  expected: %v", err, fault.NotParcelOwner)
	}

	// transfer of missing token fails
	err = tokens.Transfer(parcel.ID(8), alice, bob)
	if fault.TokenNotFound != err {
		t.Errorf("transfer error: %v  expected: %v", err, fault.TokenNotFound)
	}

	err = tokens.Transfer(parcel.ID(7), alice, bob)
	if nil != err {
		t.Fatalf("transfer error: %s", err)
	}

	owner, ok := tokens.OwnerOf(parcel.ID(7))
	if !ok || !owner.Equal(bob) {
		t.Errorf("owner after transfer: %v  expected: %s", owner, bob)
	}
}

func TestTransferInvalidRecipient(t *testing.T) {
	store, tokens := setup(t)
	defer teardown(store)

	alice := makeAccount(t)

	err := tokens.Mint(parcel.ID(1), alice)
	if nil != err {
		t.Fatalf("mint error: %s", err)
	}

	bad := &account.Account{Test: true, PublicKey: []byte{0x01}}
	err = tokens.Transfer(parcel.ID(1), alice, bad)
	if fault.InvalidRecipient != err {
		t.Errorf("transfer error: %v  expected: %v", err, fault.InvalidRecipient)
	}

	err = tokens.Mint(parcel.ID(2), bad)
	if fault.InvalidRecipient != err {
		t.Errorf("mint error: %v  expected: %v", err, fault.InvalidRecipient)
	}
}

func TestCountOwnedBy(t *testing.T) {
	store, tokens := setup(t)
	defer teardown(store)

	alice := makeAccount(t)
	bob := makeAccount(t)

	for i := 0; i < 5; i += 1 {
		err := tokens.Mint(parcel.ID(i), alice)
		if nil != err {
			t.Fatalf("mint error: %s", err)
		}
	}
	err := tokens.Mint(parcel.ID(5), bob)
	if nil != err {
		t.Fatalf("mint error: %s", err)
	}

	if n := tokens.CountOwnedBy(alice); 5 != n {
		t.Errorf("count: %d  expected: 5", n)
	}
	if n := tokens.CountOwnedBy(bob); 1 != n {
		t.Errorf("count: %d  expected: 1", n)
	}

	err = tokens.Transfer(parcel.ID(0), alice, bob)
	if nil != err {
		t.Fatalf("transfer error: %s", err)
	}

	if n := tokens.CountOwnedBy(alice); 4 != n {
		t.Errorf("count after transfer: %d  expected: 4", n)
	}
	if n := tokens.CountOwnedBy(bob); 2 != n {
		t.Errorf("count after transfer: %d  expected: 2", n)
	}
}
