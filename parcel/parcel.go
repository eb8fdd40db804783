// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package parcel - the metadata record for one unit of virtual land
//
// a parcel is identified by a sequential id and located by a unique
// signed (x,y) coordinate pair; the packed binary form is stored in
// the Parcels pool keyed by id
package parcel

import (
	"encoding/binary"

	"github.com/bitmark-inc/landd/account"
	"github.com/bitmark-inc/landd/currency"
	"github.com/bitmark-inc/landd/fault"
	"github.com/bitmark-inc/landd/util"
)

// ID - sequential parcel identifier, assigned in issuance order from 0
type ID uint64

// Bytes - 8 byte big endian key form
func (id ID) Bytes() []byte {
	buffer := make([]byte, 8)
	binary.BigEndian.PutUint64(buffer, uint64(id))
	return buffer
}

// IDFromBytes - recover an id from its key form
func IDFromBytes(buffer []byte) (ID, error) {
	if 8 != len(buffer) {
		return 0, fault.InvalidParcelRecord
	}
	return ID(binary.BigEndian.Uint64(buffer)), nil
}

// Parcel - per-asset descriptive attributes
//
// Owner mirrors the token ledger and is refreshed in the same
// transaction as any transfer; the ledger remains the source of truth
type Parcel struct {
	X         int64
	Y         int64
	Size      uint64
	Name      string
	Price     currency.Unit
	ForSale   bool
	Owner     *account.Account
	CreatedAt int64 // unix seconds
}

// Pack - serialise to the stored binary form
//
// zigzag varint x ++ zigzag varint y ++ varint size
// ++ varint name length ++ name
// ++ varint price ++ for-sale byte
// ++ varint owner length ++ owner bytes
// ++ zigzag varint created at
func (parcel *Parcel) Pack() []byte {
	buffer := util.ToVarint64(util.ToZigzag64(parcel.X))
	buffer = append(buffer, util.ToVarint64(util.ToZigzag64(parcel.Y))...)
	buffer = append(buffer, util.ToVarint64(parcel.Size)...)

	name := []byte(parcel.Name)
	buffer = append(buffer, util.ToVarint64(uint64(len(name)))...)
	buffer = append(buffer, name...)

	buffer = append(buffer, util.ToVarint64(uint64(parcel.Price))...)

	forSale := byte(0x00)
	if parcel.ForSale {
		forSale = 0x01
	}
	buffer = append(buffer, forSale)

	owner := parcel.Owner.Bytes()
	buffer = append(buffer, util.ToVarint64(uint64(len(owner)))...)
	buffer = append(buffer, owner...)

	buffer = append(buffer, util.ToVarint64(util.ToZigzag64(parcel.CreatedAt))...)

	return buffer
}

// Unpack - decode the stored binary form
func Unpack(buffer []byte) (*Parcel, error) {

	parcel := &Parcel{}

	x, n := util.FromVarint64(buffer)
	if 0 == n {
		return nil, fault.InvalidParcelRecord
	}
	parcel.X = util.FromZigzag64(x)
	buffer = buffer[n:]

	y, n := util.FromVarint64(buffer)
	if 0 == n {
		return nil, fault.InvalidParcelRecord
	}
	parcel.Y = util.FromZigzag64(y)
	buffer = buffer[n:]

	size, n := util.FromVarint64(buffer)
	if 0 == n {
		return nil, fault.InvalidParcelRecord
	}
	parcel.Size = size
	buffer = buffer[n:]

	nameLength, n := util.FromVarint64(buffer)
	if 0 == n || uint64(len(buffer[n:])) < nameLength {
		return nil, fault.InvalidParcelRecord
	}
	parcel.Name = string(buffer[n : n+int(nameLength)])
	buffer = buffer[n+int(nameLength):]

	price, n := util.FromVarint64(buffer)
	if 0 == n {
		return nil, fault.InvalidParcelRecord
	}
	parcel.Price = currency.Unit(price)
	buffer = buffer[n:]

	if 0 == len(buffer) {
		return nil, fault.InvalidParcelRecord
	}
	switch buffer[0] {
	case 0x00:
		parcel.ForSale = false
	case 0x01:
		parcel.ForSale = true
	default:
		return nil, fault.InvalidParcelRecord
	}
	buffer = buffer[1:]

	ownerLength, n := util.FromVarint64(buffer)
	if 0 == n || uint64(len(buffer[n:])) < ownerLength {
		return nil, fault.InvalidParcelRecord
	}
	owner, err := account.AccountFromBytes(buffer[n : n+int(ownerLength)])
	if nil != err {
		return nil, err
	}
	parcel.Owner = owner
	buffer = buffer[n+int(ownerLength):]

	createdAt, n := util.FromVarint64(buffer)
	if 0 == n {
		return nil, fault.InvalidParcelRecord
	}
	parcel.CreatedAt = util.FromZigzag64(createdAt)

	return parcel, nil
}

// PackCoordinate - the Coordinates pool key for a spatial position
//
// absence of this key in the pool means the coordinate is free; no
// sentinel id value is ever used
func PackCoordinate(x int64, y int64) []byte {
	buffer := util.ToVarint64(util.ToZigzag64(x))
	return append(buffer, util.ToVarint64(util.ToZigzag64(y))...)
}
