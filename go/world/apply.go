// Copyright (c) 2024 Fantom Foundation
//
// Use of this software is governed by the Business Source License included
// in the LICENSE file and at fantom.foundation/bsl11.
//
// Change Date: 2028-4-16
//
// On the date above, in accordance with the Business Source License, use of
// this software will be governed by the GNU Lesser General Public License v3.

package world

import (
	"bytes"
	"fmt"
	"math"
	"math/big"

	"github.com/Fantom-foundation/Mockchain/go/ledger"
	"github.com/Fantom-foundation/Mockchain/go/updates"
)

// Apply commits the given updates. Accounts are processed in the order of
// the updates; within an account the native delta comes first, followed by
// token deltas, storage writes and the nonce increment.
//
// Application is all-or-nothing: every effect is first staged on copies of
// the affected accounts, and the world is only modified if no effect
// references an unknown account, drives a balance negative, or overflows a
// nonce. Updates stamped with an origin can be applied once only.
func (w *World) Apply(u *updates.BlockchainUpdates) error {
	if w.lease != nil {
		return fmt.Errorf("cannot apply updates: %w", ledger.ErrWorldLeased)
	}
	if !u.Origin.IsZero() {
		if _, found := w.applied[u.Origin]; found {
			return fmt.Errorf("updates of world %d, sequence %d applied twice: %w",
				u.Origin.World, u.Origin.Sequence, ledger.ErrInvariantViolation)
		}
	}

	// Dry run on copies of the touched accounts.
	staged := make(map[ledger.Address]*ledger.Account, len(u.Accounts))
	var created []ledger.Address
	for i := range u.Accounts {
		update := &u.Accounts[i]
		account, found := staged[update.Address]
		if !found {
			if existing, exists := w.accounts[update.Address]; exists {
				account = existing.Clone()
			} else if update.Create {
				account = &ledger.Account{Address: update.Address, Balance: new(big.Int)}
				created = append(created, update.Address)
			} else {
				return fmt.Errorf("cannot update account %v: %w", update.Address, ledger.ErrUnknownAccount)
			}
			staged[update.Address] = account
		}
		if err := applyToAccount(account, update); err != nil {
			return err
		}
	}

	// Commit, nothing can fail beyond this point.
	for address, account := range staged {
		w.accounts[address] = normalize(account)
	}
	w.order = append(w.order, created...)
	if !u.Origin.IsZero() {
		w.applied[u.Origin] = struct{}{}
	}
	logger.Debug("Applied blockchain updates",
		"world", w.id, "origin", u.Origin.Sequence, "accounts", len(u.Accounts), "created", len(created))
	return nil
}

func applyToAccount(account *ledger.Account, update *updates.AccountUpdate) error {
	if update.NativeDelta != nil {
		balance := new(big.Int).Add(ledger.CloneAmount(account.Balance), update.NativeDelta)
		if balance.Sign() < 0 {
			return fmt.Errorf("native balance of %v would become %v: %w",
				account.Address, balance, ledger.ErrInvariantViolation)
		}
		account.Balance = balance
	}

	for _, delta := range update.TokenDeltas {
		if delta.Delta == nil {
			continue
		}
		balance := new(big.Int).Add(account.GetTokenBalance(delta.Key), delta.Delta)
		if balance.Sign() < 0 {
			return fmt.Errorf("balance of %v held by %v would become %v: %w",
				delta.Key, account.Address, balance, ledger.ErrInvariantViolation)
		}
		if account.Tokens == nil {
			account.Tokens = map[ledger.TokenKey]*big.Int{}
		}
		account.Tokens[delta.Key] = balance
	}

	for _, write := range update.StorageWrites {
		if len(write.Value) == 0 {
			delete(account.Storage, string(write.Key))
			continue
		}
		if account.Storage == nil {
			account.Storage = map[string][]byte{}
		}
		account.Storage[string(write.Key)] = bytes.Clone(write.Value)
	}

	if update.NonceIncrement > math.MaxUint64-account.Nonce {
		return fmt.Errorf("nonce of %v would overflow: %w", account.Address, ledger.ErrInvariantViolation)
	}
	account.Nonce += update.NonceIncrement
	return nil
}
