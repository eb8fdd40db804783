// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package fault

// error base
type GenericError string

// to allow for different classes of errors
type AuthorizationError GenericError
type ExistsError GenericError
type InvalidError GenericError
type NotFoundError GenericError
type ProcessError GenericError
type StateError GenericError
type TransferError GenericError

// common errors - keep in alphabetic order
var (
	AlreadyInitialised    = ExistsError("already initialised")
	BalanceOverflow       = InvalidError("balance overflow")
	ChecksumMismatch      = InvalidError("checksum mismatch")
	CoordinateOccupied    = ExistsError("coordinate already occupied")
	DatabaseIsNotSet      = ProcessError("database is not set")
	FeeTooHigh            = InvalidError("fee exceeds maximum basis points")
	InsufficientFunds     = TransferError("insufficient funds")
	InsufficientPayment   = InvalidError("payment below listed price")
	InvalidAmount         = InvalidError("invalid amount")
	InvalidCount          = InvalidError("invalid count")
	InvalidCursor         = InvalidError("invalid cursor")
	InvalidKeyLength      = InvalidError("invalid key length")
	InvalidParcelName     = InvalidError("parcel name cannot be empty")
	InvalidParcelRecord   = InvalidError("invalid parcel record")
	InvalidParcelSize     = InvalidError("parcel size must be positive")
	InvalidRecipient      = InvalidError("recipient account is invalid")
	InvalidStructPointer  = ProcessError("invalid struct pointer")
	NotInitialised        = ProcessError("not initialised")
	NotParcelOwner        = AuthorizationError("caller is not the parcel owner")
	NotPublicKey          = InvalidError("not a public key")
	NotRegistryAdmin      = AuthorizationError("caller is not the registry administrator")
	NothingToWithdraw     = StateError("no accumulated fees to withdraw")
	ParcelAlreadyListed   = StateError("parcel is already listed")
	ParcelNotFound        = NotFoundError("parcel does not exist")
	ParcelNotListed       = StateError("parcel is not listed")
	PayoutFailed          = TransferError("payout to seller failed")
	PriceTooLow           = InvalidError("price below minimum")
	ReentrantCall         = ProcessError("re-entrant registry call rejected")
	RefundFailed          = TransferError("refund to buyer failed")
	SelfPurchase          = InvalidError("cannot buy own parcel")
	SupplyCapReached      = StateError("parcel supply cap reached")
	TokenAlreadyMinted    = ExistsError("token already minted")
	TokenNotFound         = NotFoundError("token does not exist")
	TransactionInProgress = ProcessError("transaction already in progress")
	WrongNetworkForKey    = InvalidError("wrong network for public key")
)

// the error interface base method
func (e GenericError) Error() string { return string(e) }

// the error interface methods
func (e AuthorizationError) Error() string { return string(e) }
func (e ExistsError) Error() string        { return string(e) }
func (e InvalidError) Error() string       { return string(e) }
func (e NotFoundError) Error() string      { return string(e) }
func (e ProcessError) Error() string       { return string(e) }
func (e StateError) Error() string         { return string(e) }
func (e TransferError) Error() string      { return string(e) }

// determine the class of an error
func IsErrAuthorization(e error) bool { _, ok := e.(AuthorizationError); return ok }
func IsErrExists(e error) bool        { _, ok := e.(ExistsError); return ok }
func IsErrInvalid(e error) bool       { _, ok := e.(InvalidError); return ok }
func IsErrNotFound(e error) bool      { _, ok := e.(NotFoundError); return ok }
func IsErrProcess(e error) bool       { _, ok := e.(ProcessError); return ok }
func IsErrState(e error) bool         { _, ok := e.(StateError); return ok }
func IsErrTransfer(e error) bool      { _, ok := e.(TransferError); return ok }
