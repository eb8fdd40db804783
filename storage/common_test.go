// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package storage_test

import (
	"os"
	"testing"

	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/landd/storage"
)

// test database file
const (
	databaseFileName = "test.leveldb"
	testingDirName   = "testing"
)

// common test setup routines

// remove all files created by test
func removeFiles() {
	os.RemoveAll(databaseFileName)
	os.RemoveAll(testingDirName)
}

// configure for testing
func setup(t *testing.T) *storage.Store {
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
	return store
}

// post test cleanup
func teardown(t *testing.T, store *storage.Store) {
	store.Close()
	logger.Finalise()
	removeFiles()
}
