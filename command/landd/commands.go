// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"encoding/binary"
	"fmt"
	"strconv"
	"time"

	"github.com/bitmark-inc/landd/account"
	"github.com/bitmark-inc/landd/currency"
	"github.com/bitmark-inc/landd/fault"
	"github.com/bitmark-inc/landd/messagebus"
	"github.com/bitmark-inc/landd/ownership"
	"github.com/bitmark-inc/landd/parcel"
	"github.com/bitmark-inc/landd/payment"
	"github.com/bitmark-inc/landd/registry"
	"github.com/bitmark-inc/landd/storage"
)

// dispatch one subcommand
func runCommand(reg *registry.Registry, ledger *payment.Ledger, store *storage.Store, tokens ownership.Ownership, administrator *account.Account, command string, arguments []string) error {

	switch command {

	case "issue":
		if 5 != len(arguments) {
			return fault.InvalidCount
		}
		to, err := account.AccountFromBase58(arguments[0])
		if nil != err {
			return err
		}
		x, y, err := parseCoordinate(arguments[1], arguments[2])
		if nil != err {
			return err
		}
		size, err := strconv.ParseUint(arguments[3], 10, 64)
		if nil != err {
			return err
		}
		id, err := reg.Issue(administrator, to, x, y, size, arguments[4])
		if nil != err {
			return err
		}
		fmt.Printf("issued: %d\n", id)
		return nil

	case "list":
		if 3 != len(arguments) {
			return fault.InvalidCount
		}
		owner, err := account.AccountFromBase58(arguments[0])
		if nil != err {
			return err
		}
		id, err := parseParcelId(arguments[1])
		if nil != err {
			return err
		}
		return reg.List(owner, id, currency.FromByteString([]byte(arguments[2])))

	case "delist":
		if 2 != len(arguments) {
			return fault.InvalidCount
		}
		owner, err := account.AccountFromBase58(arguments[0])
		if nil != err {
			return err
		}
		id, err := parseParcelId(arguments[1])
		if nil != err {
			return err
		}
		return reg.Delist(owner, id)

	case "buy":
		if 3 != len(arguments) {
			return fault.InvalidCount
		}
		buyer, err := account.AccountFromBase58(arguments[0])
		if nil != err {
			return err
		}
		id, err := parseParcelId(arguments[1])
		if nil != err {
			return err
		}
		return reg.Buy(buyer, id, currency.FromByteString([]byte(arguments[2])))

	case "parcel":
		if 1 != len(arguments) {
			return fault.InvalidCount
		}
		id, err := parseParcelId(arguments[0])
		if nil != err {
			return err
		}
		p, err := reg.Parcel(id)
		if nil != err {
			return err
		}
		printParcel(id, p)
		return nil

	case "listings":
		listings, err := reg.ActiveListings()
		if nil != err {
			return err
		}
		for _, l := range listings {
			fmt.Printf("%d: %s by %s\n", l.ParcelId, l.Price, l.Seller)
		}
		fmt.Printf("total: %d\n", len(listings))
		return nil

	case "owned":
		if 1 != len(arguments) {
			return fault.InvalidCount
		}
		owner, err := account.AccountFromBase58(arguments[0])
		if nil != err {
			return err
		}
		ids, err := reg.OwnedBy(owner)
		if nil != err {
			return err
		}
		for _, id := range ids {
			fmt.Printf("%d\n", id)
		}
		// the token ledger is the source of truth for the count
		fmt.Printf("total: %d\n", tokens.CountOwnedBy(owner))
		return nil

	case "coordinate":
		if 2 != len(arguments) {
			return fault.InvalidCount
		}
		x, y, err := parseCoordinate(arguments[0], arguments[1])
		if nil != err {
			return err
		}
		id, occupied := reg.ParcelAtCoordinate(x, y)
		if !occupied {
			fmt.Printf("(%d,%d): free\n", x, y)
			return nil
		}
		fmt.Printf("(%d,%d): parcel %d\n", x, y, id)
		return nil

	case "set-fee":
		if 1 != len(arguments) {
			return fault.InvalidCount
		}
		basisPoints, err := strconv.ParseUint(arguments[0], 10, 64)
		if nil != err {
			return err
		}
		return reg.SetFee(administrator, basisPoints)

	case "withdraw":
		return reg.WithdrawFees(administrator)

	case "emergency":
		return reg.EmergencyWithdraw(administrator)

	case "deposit":
		if 2 != len(arguments) {
			return fault.InvalidCount
		}
		to, err := account.AccountFromBase58(arguments[0])
		if nil != err {
			return err
		}
		return ledger.Deposit(to, currency.FromByteString([]byte(arguments[1])))

	case "balance":
		if 1 != len(arguments) {
			return fault.InvalidCount
		}
		a, err := account.AccountFromBase58(arguments[0])
		if nil != err {
			return err
		}
		fmt.Printf("%s: %s\n", a, ledger.Balance(a))
		return nil

	case "balances":
		// pure print callback, no pool access inside the scan
		return store.Pool.Balances.NewFetchCursor().Map(func(key []byte, value []byte) error {
			holder, err := account.AccountFromBytes(key)
			if nil != err {
				return err
			}
			if 8 != len(value) {
				return fault.InvalidAmount
			}
			fmt.Printf("%s: %s\n", holder, currency.Unit(binary.BigEndian.Uint64(value)))
			return nil
		})

	case "stats":
		stats := reg.Statistics()
		fmt.Printf("issued this run: %d\n", stats.Issued)
		fmt.Printf("sold this run:   %d\n", stats.Sold)
		fmt.Printf("total issued:    %d\n", reg.TotalIssued())
		fmt.Printf("accrued fees:    %s\n", reg.AccruedFees())
		fmt.Printf("fee:             %d bp\n", reg.FeeBasisPoints())
		return nil

	default:
		return fmt.Errorf("unknown command: %q", command)
	}
}

func parseParcelId(s string) (parcel.ID, error) {
	id, err := strconv.ParseUint(s, 10, 64)
	if nil != err {
		return 0, err
	}
	return parcel.ID(id), nil
}

func parseCoordinate(xs string, ys string) (int64, int64, error) {
	x, err := strconv.ParseInt(xs, 10, 64)
	if nil != err {
		return 0, 0, err
	}
	y, err := strconv.ParseInt(ys, 10, 64)
	if nil != err {
		return 0, 0, err
	}
	return x, y, nil
}

func printParcel(id parcel.ID, p *parcel.Parcel) {
	fmt.Printf("parcel:   %d\n", id)
	fmt.Printf("position: (%d,%d)\n", p.X, p.Y)
	fmt.Printf("size:     %d\n", p.Size)
	fmt.Printf("name:     %q\n", p.Name)
	fmt.Printf("owner:    %s\n", p.Owner)
	if p.ForSale {
		fmt.Printf("for sale: %s\n", p.Price)
	} else {
		fmt.Printf("for sale: no\n")
	}
	fmt.Printf("created:  %s\n", time.Unix(p.CreatedAt, 0).UTC().Format(time.RFC3339))
}

// show queued notifications from the completed operation
func printEvents(bus *messagebus.Bus) {
	for {
		select {
		case m := <-bus.Chan():
			switch e := m.Item.(type) {
			case registry.Issued:
				fmt.Printf("event: issued %d at (%d,%d) size %d to %s\n", e.ParcelId, e.X, e.Y, e.Size, e.Owner)
			case registry.Listed:
				fmt.Printf("event: listed %d at %s by %s\n", e.ParcelId, e.Price, e.Seller)
			case registry.Delisted:
				fmt.Printf("event: delisted %d by %s\n", e.ParcelId, e.Owner)
			case registry.Sold:
				fmt.Printf("event: sold %d for %s from %s to %s\n", e.ParcelId, e.Price, e.Seller, e.Buyer)
			}
		default:
			return
		}
	}
}
