// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package registry

import (
	"github.com/bitmark-inc/landd/account"
	"github.com/bitmark-inc/landd/currency"
	"github.com/bitmark-inc/landd/parcel"
)

// events queued on the message bus, only after a successful commit

// Issued - a new parcel was created
type Issued struct {
	ParcelId parcel.ID
	Owner    *account.Account
	X        int64
	Y        int64
	Size     uint64
}

// Listed - a parcel was put up for sale
type Listed struct {
	ParcelId parcel.ID
	Seller   *account.Account
	Price    currency.Unit
}

// Delisted - a parcel was withdrawn from sale
type Delisted struct {
	ParcelId parcel.ID
	Owner    *account.Account
}

// Sold - a purchase completed
type Sold struct {
	ParcelId parcel.ID
	Seller   *account.Account
	Buyer    *account.Account
	Price    currency.Unit
}
