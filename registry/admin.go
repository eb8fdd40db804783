// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package registry

import (
	"github.com/bitmark-inc/landd/account"
	"github.com/bitmark-inc/landd/currency"
	"github.com/bitmark-inc/landd/fault"
)

// SetFee - change the marketplace fee
//
// administrator only; applies to sales from the next operation on
func (r *Registry) SetFee(caller *account.Account, basisPoints uint64) error {

	if err := r.lockGuard(); nil != err {
		return err
	}
	defer r.unlockGuard()

	if !r.admin.Equal(caller) {
		return fault.NotRegistryAdmin
	}
	if basisPoints > currency.MaxBasisPoints {
		return fault.FeeTooHigh
	}

	if err := r.store.Begin(); nil != err {
		return err
	}
	r.store.Pool.Settings.PutN(feeBasisKey, basisPoints)
	return r.store.Commit()
}

// WithdrawFees - sweep accumulated fees to the administrator
func (r *Registry) WithdrawFees(caller *account.Account) error {
	return r.sweepFees(caller, true)
}

// EmergencyWithdraw - sweep without the empty-balance pre-check
func (r *Registry) EmergencyWithdraw(caller *account.Account) error {
	return r.sweepFees(caller, false)
}

func (r *Registry) sweepFees(caller *account.Account, rejectEmpty bool) error {

	if err := r.lockGuard(); nil != err {
		return err
	}
	defer r.unlockGuard()

	if !r.admin.Equal(caller) {
		return fault.NotRegistryAdmin
	}

	if err := r.store.Begin(); nil != err {
		return err
	}

	accrued, _ := r.store.Pool.Settings.GetN(accruedFeesKey)
	if rejectEmpty && 0 == accrued {
		r.store.Abort()
		return fault.NothingToWithdraw
	}

	// zero the balance before the outward payment
	r.store.Pool.Settings.Delete(accruedFeesKey)

	if err := r.pay.Pay(r.admin, currency.Unit(accrued)); nil != err {
		r.store.Abort()
		r.log.Warnf("fee withdrawal failed: %s", err)
		return fault.PayoutFailed
	}

	if err := r.store.Commit(); nil != err {
		return err
	}

	r.log.Infof("withdrew %s in fees to %s", currency.Unit(accrued), r.admin)
	return nil
}
