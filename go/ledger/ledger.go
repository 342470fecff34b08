// Copyright (c) 2024 Fantom Foundation
//
// Use of this software is governed by the Business Source License included
// in the LICENSE file and at fantom.foundation/bsl11.
//
// Change Date: 2028-4-16
//
// On the date above, in accordance with the Business Source License, use of
// this software will be governed by the GNU Lesser General Public License v3.

// Package ledger defines the value types shared by the mock execution ledger:
// addresses, token keys, account records, transaction inputs and the error
// constants used to signal failed ledger operations.
package ledger

// Address represents the 256-bit (32 bytes) address of an account.
type Address [32]byte

// Hash represents a 256-bit (32 bytes) digest, e.g. of a transaction.
type Hash [32]byte

// TokenIdentifier names a token issued on the chain, e.g. "TOKEN-a1b2c3".
type TokenIdentifier string

// NativeToken is the identifier under which the chain's native currency is
// addressed in APIs covering both native and token balances.
const NativeToken TokenIdentifier = "EGLD"

// IsNative reports whether the identifier refers to the native currency.
func (t TokenIdentifier) IsNative() bool {
	return t == NativeToken
}

// TokenKey identifies one token instance held by an account. Fungible tokens
// use nonce 0, each non-fungible edition has its own nonce.
type TokenKey struct {
	Token TokenIdentifier
	Nonce uint64
}

// Data represents the input or output of contract invocations.
type Data []byte

// ReadOnlyWorld is the read access to a committed ledger state required by
// components overlaying it.
type ReadOnlyWorld interface {
	GetAccount(Address) (*Account, bool)
}
