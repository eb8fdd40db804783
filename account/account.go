// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package account

import (
	"bytes"
	"crypto/rand"

	"github.com/mr-tron/base58"
	"golang.org/x/crypto/ed25519"
	"golang.org/x/crypto/sha3"

	"github.com/bitmark-inc/landd/fault"
	"github.com/bitmark-inc/landd/util"
)

// supported key algorithms
const (
	ED25519 = 0x01
)

// miscellaneous constants
const (
	checksumLength = 4

	// bits in key code starting from LSB
	publicKeyCode = 0x01
	testKeyCode   = 0x02

	algorithmShift = 4 // shift 4 bits to get algorithm
)

// Account - identity of an owner, recipient or caller
//
// a raw ed25519 public key plus a test network flag; the text form is
// Base58 of: key variant, public key, 4 byte sha3 checksum
type Account struct {
	Test      bool
	PublicKey []byte
}

// New - generate a new account and its signing key
func New(testnet bool) (*Account, ed25519.PrivateKey, error) {
	publicKey, privateKey, err := ed25519.GenerateKey(rand.Reader)
	if nil != err {
		return nil, nil, err
	}
	account := &Account{
		Test:      testnet,
		PublicKey: publicKey,
	}
	return account, privateKey, nil
}

// AccountFromBase58 - convert a Base58 encoded string to an account
func AccountFromBase58(accountBase58Encoded string) (*Account, error) {
	accountDecoded, err := base58.Decode(accountBase58Encoded)
	if nil != err || 0 == len(accountDecoded) {
		return nil, fault.NotPublicKey
	}

	// verify checksum
	if len(accountDecoded) <= checksumLength {
		return nil, fault.InvalidKeyLength
	}
	checksumStart := len(accountDecoded) - checksumLength
	checksum := sha3.Sum256(accountDecoded[:checksumStart])
	if !bytes.Equal(checksum[:checksumLength], accountDecoded[checksumStart:]) {
		return nil, fault.ChecksumMismatch
	}

	return AccountFromBytes(accountDecoded[:checksumStart])
}

// AccountFromBytes - convert a byte encoded buffer to an account
func AccountFromBytes(accountBytes []byte) (*Account, error) {

	keyVariant, keyVariantLength := util.FromVarint64(accountBytes)

	if 0 == keyVariantLength || keyVariant&publicKeyCode != publicKeyCode {
		return nil, fault.NotPublicKey
	}

	keyAlgorithm := keyVariant >> algorithmShift
	if ED25519 != keyAlgorithm {
		return nil, fault.NotPublicKey
	}

	isTest := 0 != keyVariant&testKeyCode

	keyLength := len(accountBytes) - keyVariantLength
	if ed25519.PublicKeySize != keyLength {
		return nil, fault.InvalidKeyLength
	}

	publicKey := make([]byte, ed25519.PublicKeySize)
	copy(publicKey, accountBytes[keyVariantLength:])

	return &Account{
		Test:      isTest,
		PublicKey: publicKey,
	}, nil
}

// Bytes - key variant and public key as a binary buffer
func (account *Account) Bytes() []byte {
	keyVariant := uint64(publicKeyCode | ED25519<<algorithmShift)
	if account.Test {
		keyVariant |= testKeyCode
	}
	return append(util.ToVarint64(keyVariant), account.PublicKey...)
}

// String - Base58 encoded bytes with checksum appended
func (account *Account) String() string {
	buffer := account.Bytes()
	checksum := sha3.Sum256(buffer)
	buffer = append(buffer, checksum[:checksumLength]...)
	return base58.Encode(buffer)
}

// MarshalText - the text form for JSON and configuration use
func (account Account) MarshalText() ([]byte, error) {
	return []byte(account.String()), nil
}

// UnmarshalText - decode the Base58 text form
func (account *Account) UnmarshalText(s []byte) error {
	a, err := AccountFromBase58(string(s))
	if nil != err {
		return err
	}
	account.Test = a.Test
	account.PublicKey = a.PublicKey
	return nil
}

// IsValid - an account is usable as a recipient
func (account *Account) IsValid() bool {
	return nil != account && ed25519.PublicKeySize == len(account.PublicKey)
}

// Equal - compare two accounts for the same identity
func (account *Account) Equal(other *Account) bool {
	if nil == account || nil == other {
		return false
	}
	return account.Test == other.Test &&
		bytes.Equal(account.PublicKey, other.PublicKey)
}
