// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package fault_test

import (
	"testing"

	"github.com/bitmark-inc/landd/fault"
)

var (
	errAuthOne     = fault.AuthorizationError("auth one")
	errExistsOne   = fault.ExistsError("exists one")
	errInvalidOne  = fault.InvalidError("invalid one")
	errNotFoundOne = fault.NotFoundError("not found one")
	errProcessOne  = fault.ProcessError("process one")
	errStateOne    = fault.StateError("state one")
	errTransferOne = fault.TransferError("transfer one")
)

// test that errors can be classified
func TestClassification(t *testing.T) {
	errorList := []struct {
		err           error
		authorization bool
		exists        bool
		invalid       bool
		notFound      bool
		process       bool
		state         bool
		transfer      bool
	}{
		{errAuthOne, true, false, false, false, false, false, false},
		{errExistsOne, false, true, false, false, false, false, false},
		{errInvalidOne, false, false, true, false, false, false, false},
		{errNotFoundOne, false, false, false, true, false, false, false},
		{errProcessOne, false, false, false, false, true, false, false},
		{errStateOne, false, false, false, false, false, true, false},
		{errTransferOne, false, false, false, false, false, false, true},
		{fault.CoordinateOccupied, false, true, false, false, false, false, false},
		{fault.ParcelNotFound, false, false, false, true, false, false, false},
		{fault.NotParcelOwner, true, false, false, false, false, false, false},
		{fault.ParcelNotListed, false, false, false, false, false, true, false},
		{fault.PayoutFailed, false, false, false, false, false, false, true},
		{fault.ReentrantCall, false, false, false, false, true, false, false},
	}

	for i, e := range errorList {
		err := e.err
		if fault.IsErrAuthorization(err) != e.authorization {
			t.Errorf("%d: expected 'authorization' == %v for err = %v", i, e.authorization, err)
		}
		if fault.IsErrExists(err) != e.exists {
			t.Errorf("%d: expected 'exists' == %v for err = %v", i, e.exists, err)
		}
		if fault.IsErrInvalid(err) != e.invalid {
			t.Errorf("%d: expected 'invalid' == %v for err = %v", i, e.invalid, err)
		}
		if fault.IsErrNotFound(err) != e.notFound {
			t.Errorf("%d: expected 'not found' == %v for err = %v", i, e.notFound, err)
		}
		if fault.IsErrProcess(err) != e.process {
			t.Errorf("%d: expected 'process' == %v for err = %v", i, e.process, err)
		}
		if fault.IsErrState(err) != e.state {
			t.Errorf("%d: expected 'state' == %v for err = %v", i, e.state, err)
		}
		if fault.IsErrTransfer(err) != e.transfer {
			t.Errorf("%d: expected 'transfer' == %v for err = %v", i, e.transfer, err)
		}
	}
}

// errors must compare equal to themselves only
func TestIdentity(t *testing.T) {
	if fault.PayoutFailed == fault.RefundFailed {
		t.Errorf("distinct transfer errors compare equal")
	}
	var err error = fault.ParcelNotFound
	if fault.ParcelNotFound != err {
		t.Errorf("error lost identity through interface: %v", err)
	}
}
