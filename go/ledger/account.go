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

import (
	"bytes"
	"fmt"
	"math/big"
	"slices"
)

// Account represents one participant of the ledger, either a user or a
// contract. Zero token balances and empty storage values are equivalent to
// absent entries.
type Account struct {
	Address Address
	Nonce   uint64
	Balance *big.Int
	Tokens  map[TokenKey]*big.Int
	Storage map[string][]byte

	// ContractReference names the deployed contract code, empty for user
	// accounts.
	ContractReference string
	// Owner is the deploying account of a contract, nil for user accounts.
	Owner *Address
}

// NewAccount creates a user account with the given native balance.
func NewAccount(address Address, balance uint64) *Account {
	return &Account{
		Address: address,
		Balance: new(big.Int).SetUint64(balance),
	}
}

// IsContract reports whether code is deployed on this account.
func (a *Account) IsContract() bool {
	return a.ContractReference != ""
}

// GetBalance returns the native balance, never nil.
func (a *Account) GetBalance() *big.Int {
	return CloneAmount(a.Balance)
}

// GetTokenBalance returns the balance of the given token instance, never nil.
func (a *Account) GetTokenBalance(key TokenKey) *big.Int {
	return CloneAmount(a.Tokens[key])
}

// GetStorage returns the value stored under key, empty if absent.
func (a *Account) GetStorage(key []byte) []byte {
	return bytes.Clone(a.Storage[string(key)])
}

// TokenKeys lists the token instances with a non-zero balance in
// deterministic order.
func (a *Account) TokenKeys() []TokenKey {
	res := make([]TokenKey, 0, len(a.Tokens))
	for key, value := range a.Tokens {
		if !IsZeroAmount(value) {
			res = append(res, key)
		}
	}
	slices.SortFunc(res, TokenKey.Compare)
	return res
}

func (a *Account) Clone() *Account {
	res := &Account{
		Address:           a.Address,
		Nonce:             a.Nonce,
		Balance:           CloneAmount(a.Balance),
		ContractReference: a.ContractReference,
	}
	if a.Tokens != nil {
		res.Tokens = make(map[TokenKey]*big.Int, len(a.Tokens))
		for key, value := range a.Tokens {
			res.Tokens[key] = CloneAmount(value)
		}
	}
	if a.Storage != nil {
		res.Storage = make(map[string][]byte, len(a.Storage))
		for key, value := range a.Storage {
			res.Storage[key] = bytes.Clone(value)
		}
	}
	if a.Owner != nil {
		owner := *a.Owner
		res.Owner = &owner
	}
	return res
}

func (a *Account) Equal(other *Account) bool {
	return a.Address == other.Address &&
		a.Nonce == other.Nonce &&
		EqualAmounts(a.Balance, other.Balance) &&
		a.ContractReference == other.ContractReference &&
		equalOwners(a.Owner, other.Owner) &&
		equalMapsIgnoringZero(a.Tokens, other.Tokens, EqualAmounts) &&
		equalMapsIgnoringZero(a.Storage, other.Storage, bytes.Equal)
}

// Diff lists the differences between two accounts in a human readable form,
// each entry prefixed by the given prefix.
func (a *Account) Diff(prefix string, other *Account) []string {
	var res []string
	if a.Address != other.Address {
		res = append(res, fmt.Sprintf("different address: %v != %v", a.Address, other.Address))
	}
	if a.Nonce != other.Nonce {
		res = append(res, fmt.Sprintf("different nonce: %v != %v", a.Nonce, other.Nonce))
	}
	if !EqualAmounts(a.Balance, other.Balance) {
		res = append(res, fmt.Sprintf("different balance: %v != %v", CloneAmount(a.Balance), CloneAmount(other.Balance)))
	}
	if a.ContractReference != other.ContractReference {
		res = append(res, fmt.Sprintf("different contract: %q != %q", a.ContractReference, other.ContractReference))
	}
	if !equalOwners(a.Owner, other.Owner) {
		res = append(res, fmt.Sprintf("different owner: %v != %v", a.Owner, other.Owner))
	}
	res = append(res, diffMaps("Tokens/", a.Tokens, other.Tokens, func(k TokenKey, x, y *big.Int) []string {
		if EqualAmounts(x, y) {
			return nil
		}
		return []string{fmt.Sprintf("different balance for token %v: %v != %v", k, CloneAmount(x), CloneAmount(y))}
	})...)
	res = append(res, diffMaps("Storage/", a.Storage, other.Storage, func(k string, x, y []byte) []string {
		if bytes.Equal(x, y) {
			return nil
		}
		return []string{fmt.Sprintf("different value for key 0x%x: 0x%x != 0x%x", k, x, y)}
	})...)
	for i, diff := range res {
		res[i] = prefix + diff
	}
	slices.Sort(res)
	return res
}

func equalOwners(a, b *Address) bool {
	if a == nil || b == nil {
		return a == b
	}
	return *a == *b
}

// equalMapsIgnoringZero compares two maps, ignoring zero-valued entries.
func equalMapsIgnoringZero[K comparable, V any](a, b map[K]V, equal func(V, V) bool) bool {
	for k, v := range a {
		if !equal(v, b[k]) {
			return false
		}
	}
	for k, v := range b {
		if !equal(v, a[k]) {
			return false
		}
	}
	return true
}

// diffMaps compares two maps and returns a list of differences.
func diffMaps[K comparable, V any](prefix string, a, b map[K]V, diff func(K, V, V) []string) []string {
	var diffs []string
	for k, v := range a {
		diffs = append(diffs, diff(k, v, b[k])...)
	}
	for k, v := range b {
		if _, overlap := a[k]; !overlap {
			diffs = append(diffs, diff(k, a[k], v)...)
		}
	}
	for i, diff := range diffs {
		diffs[i] = prefix + diff
	}
	return diffs
}
