// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// maintain the on-disk data store
//
// maintain separate pools of a number of elements in key->value form
//
// This maintains a LevelDB database split into a series of tables.
// Each table is defined by a prefix byte that is obtained from the
// prefix tag in the struct defining the available tables.
//
// Notes:
// 1. each separate pool has a single byte prefix (to spread the keys in LevelDB)
// 2. ++           = concatenation of byte data
// 3. parcel id    = big endian uint64 (8 bytes)
// 4. coordinate   = zigzag varint x ++ zigzag varint y
// 5. owner        = landd account (key variant ++ 32 byte public key)
// 6. amount       = big endian uint64 (8 bytes)
//
// Parcels:
//
//   P ++ parcel id             - parcel metadata
//                                data: packed parcel record
//
// Coordinates:
//
//   C ++ coordinate            - one-to-one spatial index
//                                data: parcel id
//                                key absence means the coordinate is free
//
// Tokens:
//
//   T ++ parcel id             - current token owner, source of truth
//                                data: owner
//
// Balances:
//
//   B ++ owner                 - payment ledger balance
//                                data: amount
//
// Settings:
//
//   S ++ name                  - registry settings and totals
//                                data: amount
//
// Testing:
//
//   Z ++ key                   - testing data
package storage
