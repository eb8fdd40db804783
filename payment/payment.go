// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package payment - value movement for sales, refunds and withdrawals
package payment

import (
	"github.com/bitmark-inc/landd/account"
	"github.com/bitmark-inc/landd/currency"
)

// Method - destination for outgoing value
//
// Pay must either credit the full amount or return an error leaving
// no partial effect; the registry aborts its transaction on error
type Method interface {
	Pay(to *account.Account, amount currency.Unit) error
}
