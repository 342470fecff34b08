// Copyright (c) 2024 Fantom Foundation
//
// Use of this software is governed by the Business Source License included
// in the LICENSE file and at fantom.foundation/bsl11.
//
// Change Date: 2028-4-16
//
// On the date above, in accordance with the Business Source License, use of
// this software will be governed by the GNU Lesser General Public License v3.

// Package updates provides BlockchainUpdates, the ordered net effect of one
// transaction on the ledger. Updates are plain data: they reference no
// world, can be inspected, encoded or dropped, and are committed by applying
// them to a world.
package updates

import (
	"math/big"

	"github.com/Fantom-foundation/Mockchain/go/ledger"
	"github.com/ethereum/go-ethereum/common/hexutil"
)

// BlockchainUpdates lists the per-account effects of a transaction in the
// order the accounts were first touched.
type BlockchainUpdates struct {
	Origin   Origin          `json:"origin"`
	Accounts []AccountUpdate `json:"accounts"`
}

// Origin stamps updates produced by a transaction cache with the identity
// of the world the cache was opened on and a per-world sequence number. A
// world uses it to reject updates applied a second time. Hand-built updates
// carry a zero origin and are not tracked.
type Origin struct {
	World    uint64 `json:"world"`
	Sequence uint64 `json:"sequence"`
}

// IsZero reports whether the updates are untracked.
func (o Origin) IsZero() bool {
	return o == Origin{}
}

// AccountUpdate is the net effect on a single account. When applied, the
// native delta is processed first, followed by the token deltas and the
// storage writes in recorded order, and finally the nonce increment.
type AccountUpdate struct {
	Address        ledger.Address `json:"address"`
	Create         bool           `json:"create,omitempty"` // the account is created by this update
	NativeDelta    *big.Int       `json:"native"`
	TokenDeltas    []TokenDelta   `json:"tokens,omitempty"`
	StorageWrites  []StorageWrite `json:"storage,omitempty"`
	NonceIncrement uint64         `json:"nonce,omitempty"`
}

// TokenDelta is a signed change of the balance of one token instance.
type TokenDelta struct {
	Key   ledger.TokenKey `json:"key"`
	Delta *big.Int        `json:"delta"`
}

// StorageWrite replaces the value stored under Key. An empty value deletes
// the key.
type StorageWrite struct {
	Key   hexutil.Bytes `json:"key"`
	Value hexutil.Bytes `json:"value"`
}

// Len returns the number of updated accounts.
func (u *BlockchainUpdates) Len() int {
	return len(u.Accounts)
}

// IsEmpty reports whether applying the updates has no effect.
func (u *BlockchainUpdates) IsEmpty() bool {
	return len(u.Accounts) == 0
}

// Get returns the update of the given account, if there is one.
func (u *BlockchainUpdates) Get(address ledger.Address) (*AccountUpdate, bool) {
	for i := range u.Accounts {
		if u.Accounts[i].Address == address {
			return &u.Accounts[i], true
		}
	}
	return nil, false
}

// Addresses lists the updated accounts in application order.
func (u *BlockchainUpdates) Addresses() []ledger.Address {
	res := make([]ledger.Address, 0, len(u.Accounts))
	for _, account := range u.Accounts {
		res = append(res, account.Address)
	}
	return res
}

// NativeNet sums all native deltas. It is zero for updates that only move
// native currency between accounts.
func (u *BlockchainUpdates) NativeNet() *big.Int {
	res := new(big.Int)
	for _, account := range u.Accounts {
		if account.NativeDelta != nil {
			res.Add(res, account.NativeDelta)
		}
	}
	return res
}

// TokenNet sums all deltas of the given token instance.
func (u *BlockchainUpdates) TokenNet(key ledger.TokenKey) *big.Int {
	res := new(big.Int)
	for _, account := range u.Accounts {
		for _, delta := range account.TokenDeltas {
			if delta.Key == key && delta.Delta != nil {
				res.Add(res, delta.Delta)
			}
		}
	}
	return res
}

// Clone returns a deep copy of the updates.
func (u *BlockchainUpdates) Clone() *BlockchainUpdates {
	res := &BlockchainUpdates{
		Origin:   u.Origin,
		Accounts: make([]AccountUpdate, len(u.Accounts)),
	}
	for i, account := range u.Accounts {
		clone := account
		clone.NativeDelta = ledger.CloneAmount(account.NativeDelta)
		clone.TokenDeltas = make([]TokenDelta, len(account.TokenDeltas))
		for j, delta := range account.TokenDeltas {
			clone.TokenDeltas[j] = TokenDelta{Key: delta.Key, Delta: ledger.CloneAmount(delta.Delta)}
		}
		clone.StorageWrites = make([]StorageWrite, len(account.StorageWrites))
		for j, write := range account.StorageWrites {
			clone.StorageWrites[j] = StorageWrite{
				Key:   append(hexutil.Bytes(nil), write.Key...),
				Value: append(hexutil.Bytes(nil), write.Value...),
			}
		}
		res.Accounts[i] = clone
	}
	return res
}
