// Copyright (c) 2024 Fantom Foundation
//
// Use of this software is governed by the Business Source License included
// in the LICENSE file and at fantom.foundation/bsl11.
//
// Change Date: 2028-4-16
//
// On the date above, in accordance with the Business Source License, use of
// this software will be governed by the GNU Lesser General Public License v3.

// Package world provides the committed ledger state: the account store, its
// read accessors, and the atomic application of blockchain updates.
package world

import (
	"fmt"
	"math/big"
	"sync/atomic"

	"github.com/Fantom-foundation/Mockchain/go/ledger"
	"github.com/Fantom-foundation/Mockchain/go/updates"
	log "github.com/inconshreveable/log15"
)

var logger = log.New("module", "world")

// worldCounter provides process-wide unique world identities.
var worldCounter atomic.Uint64

// World is the committed state of the ledger. Accounts are registered
// explicitly and afterwards only modified by applying updates. While a
// transaction cache holds the world's lease, the world refuses any
// mutation.
//
// A World is not safe for concurrent use.
type World struct {
	id       uint64
	accounts map[ledger.Address]*ledger.Account
	order    []ledger.Address // registration order

	lease    *Lease
	sequence uint64                      // last sequence number handed out to a lease
	applied  map[updates.Origin]struct{} // origins of all applied tracked updates
}

var _ ledger.ReadOnlyWorld = (*World)(nil)

// New creates an empty world.
func New() *World {
	return &World{
		id:       worldCounter.Add(1),
		accounts: map[ledger.Address]*ledger.Account{},
		applied:  map[updates.Origin]struct{}{},
	}
}

// ID returns the process-wide unique identity of this world.
func (w *World) ID() uint64 {
	return w.id
}

// AddAccount registers the given account, replacing any account previously
// registered under the same address. This is ledger bootstrapping, no
// balance conservation is checked.
func (w *World) AddAccount(account *ledger.Account) error {
	if w.lease != nil {
		return fmt.Errorf("cannot add account %v: %w", account.Address, ledger.ErrWorldLeased)
	}
	if account.Balance != nil && account.Balance.Sign() < 0 {
		return fmt.Errorf("cannot add account %v with balance %v: %w", account.Address, account.Balance, ledger.ErrNegativeAmount)
	}
	for key, value := range account.Tokens {
		if value != nil && value.Sign() < 0 {
			return fmt.Errorf("cannot add account %v with balance %v of %v: %w", account.Address, value, key, ledger.ErrNegativeAmount)
		}
	}
	if _, found := w.accounts[account.Address]; !found {
		w.order = append(w.order, account.Address)
	}
	w.accounts[account.Address] = normalize(account.Clone())
	logger.Debug("Registered account", "address", account.Address, "balance", account.GetBalance())
	return nil
}

// GetAccount returns a copy of the account registered under the given
// address. The second result is false if the address is unknown.
func (w *World) GetAccount(address ledger.Address) (*ledger.Account, bool) {
	account, found := w.accounts[address]
	if !found {
		return nil, false
	}
	return account.Clone(), true
}

// HasAccount reports whether the address is registered.
func (w *World) HasAccount(address ledger.Address) bool {
	_, found := w.accounts[address]
	return found
}

// GetBalance returns the native balance of the given account.
func (w *World) GetBalance(address ledger.Address) (*big.Int, bool) {
	account, found := w.accounts[address]
	if !found {
		return nil, false
	}
	return account.GetBalance(), true
}

// GetTokenBalance returns the balance of a token instance held by the given
// account.
func (w *World) GetTokenBalance(address ledger.Address, key ledger.TokenKey) (*big.Int, bool) {
	account, found := w.accounts[address]
	if !found {
		return nil, false
	}
	return account.GetTokenBalance(key), true
}

// GetStorage returns the value stored by the given account under key.
func (w *World) GetStorage(address ledger.Address, key []byte) ([]byte, bool) {
	account, found := w.accounts[address]
	if !found {
		return nil, false
	}
	return account.GetStorage(key), true
}

// GetNonce returns the nonce of the given account.
func (w *World) GetNonce(address ledger.Address) (uint64, bool) {
	account, found := w.accounts[address]
	if !found {
		return 0, false
	}
	return account.Nonce, true
}

// Len returns the number of registered accounts.
func (w *World) Len() int {
	return len(w.accounts)
}

// Addresses lists all registered accounts in registration order.
func (w *World) Addresses() []ledger.Address {
	return append([]ledger.Address(nil), w.order...)
}

// Accounts returns copies of all accounts in registration order.
func (w *World) Accounts() []*ledger.Account {
	res := make([]*ledger.Account, 0, len(w.order))
	for _, address := range w.order {
		res = append(res, w.accounts[address].Clone())
	}
	return res
}

// TotalSupply sums the native balances of all accounts.
func (w *World) TotalSupply() *big.Int {
	res := new(big.Int)
	for _, account := range w.accounts {
		res.Add(res, account.Balance)
	}
	return res
}

// TotalTokenSupply sums the balances of the given token instance over all
// accounts.
func (w *World) TotalTokenSupply(key ledger.TokenKey) *big.Int {
	res := new(big.Int)
	for _, account := range w.accounts {
		if value, found := account.Tokens[key]; found {
			res.Add(res, value)
		}
	}
	return res
}

// Clone creates an independent, unleased copy of this world with a new
// identity. The record of applied updates is carried over.
func (w *World) Clone() *World {
	res := New()
	for _, address := range w.order {
		res.order = append(res.order, address)
		res.accounts[address] = w.accounts[address].Clone()
	}
	for origin := range w.applied {
		res.applied[origin] = struct{}{}
	}
	return res
}

// Equal reports whether both worlds contain equal accounts.
func (w *World) Equal(other *World) bool {
	if len(w.accounts) != len(other.accounts) {
		return false
	}
	for address, account := range w.accounts {
		otherAccount, found := other.accounts[address]
		if !found || !account.Equal(otherAccount) {
			return false
		}
	}
	return true
}

// Diff lists the differences between the accounts of both worlds.
func (w *World) Diff(other *World) []string {
	var res []string
	for _, address := range w.order {
		account := w.accounts[address]
		otherAccount, found := other.accounts[address]
		if !found {
			res = append(res, fmt.Sprintf("%v: missing account", address))
			continue
		}
		res = append(res, account.Diff(fmt.Sprintf("%v/", address), otherAccount)...)
	}
	for _, address := range other.order {
		if _, found := w.accounts[address]; !found {
			res = append(res, fmt.Sprintf("%v: unexpected account", address))
		}
	}
	return res
}

// normalize drops zero token balances and empty storage values, which are
// equivalent to absent entries.
func normalize(account *ledger.Account) *ledger.Account {
	if account.Balance == nil {
		account.Balance = new(big.Int)
	}
	for key, value := range account.Tokens {
		if ledger.IsZeroAmount(value) {
			delete(account.Tokens, key)
		}
	}
	for key, value := range account.Storage {
		if len(value) == 0 {
			delete(account.Storage, key)
		}
	}
	return account
}
