// Copyright (c) 2024 Fantom Foundation
//
// Use of this software is governed by the Business Source License included
// in the LICENSE file and at fantom.foundation/bsl11.
//
// Change Date: 2028-4-16
//
// On the date above, in accordance with the Business Source License, use of
// this software will be governed by the GNU Lesser General Public License v3.

package ledger

// ConstError is an error type that can be used to define immutable
// error constants.
type ConstError string

func (e ConstError) Error() string {
	return string(e)
}

const (
	// ErrInsufficientFunds is returned when a subtraction exceeds the
	// available balance. It is recoverable; the caller decides whether the
	// transaction is aborted.
	ErrInsufficientFunds = ConstError("insufficient funds")

	// ErrUnknownAccount is returned when an address is neither registered in
	// the world nor created by the current transaction. It indicates a broken
	// test setup.
	ErrUnknownAccount = ConstError("unknown account")

	// ErrInvariantViolation is returned when applying updates would break a
	// ledger invariant, e.g. drive a balance negative or apply the same
	// updates twice. The world is left untouched.
	ErrInvariantViolation = ConstError("ledger invariant violation")

	// ErrWorldLeased is returned when the world is accessed for mutation, or
	// a second cache is opened, while a transaction cache is open.
	ErrWorldLeased = ConstError("world is leased by an open transaction cache")

	// ErrCacheClosed is returned by operations on a transaction cache that was
	// already converted into updates or discarded.
	ErrCacheClosed = ConstError("transaction cache is closed")

	// ErrNegativeAmount is returned when a transfer, credit or debit is
	// requested for an amount below zero.
	ErrNegativeAmount = ConstError("negative amount")

	// ErrProtectedKey is returned when contract code tries to write a storage
	// key reserved for the protocol.
	ErrProtectedKey = ConstError("storage key is protected")
)
