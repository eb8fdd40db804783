// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package currency

import (
	"github.com/bitmark-inc/landd/fault"
)

// fee limits
const (
	MaxBasisPoints    = 1000 // 10%
	basisPointDivisor = 10000
)

// SplitFee - divide a sale price into marketplace fee and seller net
//
// fee is floor(price·bp/10000), computed exactly for the full uint64
// range by splitting price into quotient and remainder of the divisor
// so no intermediate product can overflow
//
// guarantees: fee + net == price
func SplitFee(price Unit, basisPoints uint64) (Unit, Unit, error) {
	if basisPoints > MaxBasisPoints {
		return 0, 0, fault.FeeTooHigh
	}

	q := uint64(price) / basisPointDivisor
	r := uint64(price) % basisPointDivisor

	fee := q*basisPoints + r*basisPoints/basisPointDivisor
	return Unit(fee), price - Unit(fee), nil
}
