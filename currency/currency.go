// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package currency

import (
	"fmt"
)

// Unit - a value in the platform's native unit
//
// stored as an integral number of base units, 8 decimal places
type Unit uint64

// number of base units in one whole coin
const (
	DecimalPlaces      = 8
	OneCoin       Unit = 100000000
)

// FromByteString - convert a decimal string to a Unit value
//
// i.e. "0.00000001" will convert to Unit(1)
//
// Note: Invalid characters are simply ignored and the conversion
//       simply stops after 8 decimal places have been processed.
//       Extra decimal points will also be ignored.
func FromByteString(s []byte) Unit {

	u := uint64(0)
	point := false
	decimals := 0

get_digits:
	for _, b := range s {
		if b >= '0' && b <= '9' {
			u *= 10
			u += uint64(b - '0')
			if point {
				decimals += 1
				if decimals >= DecimalPlaces {
					break get_digits
				}
			}
		} else if '.' == b {
			point = true
		}
	}
	for decimals < DecimalPlaces {
		u *= 10
		decimals += 1
	}

	return Unit(u)
}

// String - display a Unit as a whole coin decimal
func (u Unit) String() string {
	return fmt.Sprintf("%d.%08d", uint64(u)/uint64(OneCoin), uint64(u)%uint64(OneCoin))
}
