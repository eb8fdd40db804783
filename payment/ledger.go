// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package payment

import (
	"github.com/bitmark-inc/landd/account"
	"github.com/bitmark-inc/landd/currency"
	"github.com/bitmark-inc/landd/fault"
	"github.com/bitmark-inc/landd/storage"
)

// Ledger - internal account balances held in the balances pool
//
// keys are the binary account form, values 8 byte big endian amounts;
// a missing key is a zero balance
type Ledger struct {
	pool *storage.PoolHandle
}

// NewLedger - create a ledger over the balances pool
func NewLedger(pool *storage.PoolHandle) *Ledger {
	return &Ledger{
		pool: pool,
	}
}

// Pay - credit an account
//
// implements Method; zero amounts are accepted and leave the balance
// untouched
func (l *Ledger) Pay(to *account.Account, amount currency.Unit) error {
	if !to.IsValid() {
		return fault.InvalidRecipient
	}
	if 0 == amount {
		return nil
	}

	key := to.Bytes()
	balance, _ := l.pool.GetN(key)
	total := balance + uint64(amount)
	if total < balance {
		return fault.BalanceOverflow
	}
	l.pool.PutN(key, total)
	return nil
}

// Deposit - credit an account from an external source
func (l *Ledger) Deposit(to *account.Account, amount currency.Unit) error {
	if 0 == amount {
		return fault.InvalidAmount
	}
	return l.Pay(to, amount)
}

// Withdraw - debit an account
func (l *Ledger) Withdraw(from *account.Account, amount currency.Unit) error {
	if !from.IsValid() {
		return fault.InvalidRecipient
	}
	if 0 == amount {
		return fault.InvalidAmount
	}

	key := from.Bytes()
	balance, _ := l.pool.GetN(key)
	if balance < uint64(amount) {
		return fault.InsufficientFunds
	}
	remaining := balance - uint64(amount)
	if 0 == remaining {
		l.pool.Delete(key)
	} else {
		l.pool.PutN(key, remaining)
	}
	return nil
}

// Balance - current balance of an account
func (l *Ledger) Balance(a *account.Account) currency.Unit {
	balance, _ := l.pool.GetN(a.Bytes())
	return currency.Unit(balance)
}
