// Copyright (c) 2024 Fantom Foundation
//
// Use of this software is governed by the Business Source License included
// in the LICENSE file and at fantom.foundation/bsl11.
//
// Change Date: 2028-4-16
//
// On the date above, in accordance with the Business Source License, use of
// this software will be governed by the GNU Lesser General Public License v3.

package updates

import (
	"bytes"
	"math/big"

	"github.com/Fantom-foundation/Mockchain/go/ledger"
)

// Builder accumulates account effects and preserves the order in which
// accounts, tokens and storage keys were first recorded. Repeated records
// for the same target are merged.
type Builder struct {
	accounts []*accountEntry
	index    map[ledger.Address]int
}

type accountEntry struct {
	address      ledger.Address
	create       bool
	native       *big.Int
	tokens       map[ledger.TokenKey]*big.Int
	tokenOrder   []ledger.TokenKey
	storage      map[string][]byte
	storageOrder []string
	nonce        uint64
}

func NewBuilder() *Builder {
	return &Builder{index: map[ledger.Address]int{}}
}

func (b *Builder) entry(address ledger.Address) *accountEntry {
	if i, found := b.index[address]; found {
		return b.accounts[i]
	}
	entry := &accountEntry{
		address: address,
		native:  new(big.Int),
		tokens:  map[ledger.TokenKey]*big.Int{},
		storage: map[string][]byte{},
	}
	b.index[address] = len(b.accounts)
	b.accounts = append(b.accounts, entry)
	return entry
}

// Create marks the account as created by the updates.
func (b *Builder) Create(address ledger.Address) *Builder {
	b.entry(address).create = true
	return b
}

// AddNativeDelta records a signed change of the native balance.
func (b *Builder) AddNativeDelta(address ledger.Address, delta *big.Int) *Builder {
	entry := b.entry(address)
	entry.native.Add(entry.native, ledger.CloneAmount(delta))
	return b
}

// AddTokenDelta records a signed change of a token balance.
func (b *Builder) AddTokenDelta(address ledger.Address, key ledger.TokenKey, delta *big.Int) *Builder {
	entry := b.entry(address)
	current, found := entry.tokens[key]
	if !found {
		current = new(big.Int)
		entry.tokens[key] = current
		entry.tokenOrder = append(entry.tokenOrder, key)
	}
	current.Add(current, ledger.CloneAmount(delta))
	return b
}

// WriteStorage records a storage write, replacing earlier writes of the
// same key while keeping the key's original position.
func (b *Builder) WriteStorage(address ledger.Address, key, value []byte) *Builder {
	entry := b.entry(address)
	if _, found := entry.storage[string(key)]; !found {
		entry.storageOrder = append(entry.storageOrder, string(key))
	}
	entry.storage[string(key)] = bytes.Clone(value)
	return b
}

// IncrementNonce records n nonce increments.
func (b *Builder) IncrementNonce(address ledger.Address, n uint64) *Builder {
	b.entry(address).nonce += n
	return b
}

// Build produces the updates recorded so far, stamped with the given
// origin. Token deltas netting to zero are dropped, as are accounts without
// any remaining effect.
func (b *Builder) Build(origin Origin) *BlockchainUpdates {
	res := &BlockchainUpdates{Origin: origin, Accounts: []AccountUpdate{}}
	for _, entry := range b.accounts {
		update := AccountUpdate{
			Address:        entry.address,
			Create:         entry.create,
			NativeDelta:    new(big.Int).Set(entry.native),
			NonceIncrement: entry.nonce,
		}
		for _, key := range entry.tokenOrder {
			if delta := entry.tokens[key]; delta.Sign() != 0 {
				update.TokenDeltas = append(update.TokenDeltas, TokenDelta{Key: key, Delta: new(big.Int).Set(delta)})
			}
		}
		for _, key := range entry.storageOrder {
			update.StorageWrites = append(update.StorageWrites, StorageWrite{
				Key:   []byte(key),
				Value: bytes.Clone(entry.storage[key]),
			})
		}
		if !update.Create &&
			update.NativeDelta.Sign() == 0 &&
			len(update.TokenDeltas) == 0 &&
			len(update.StorageWrites) == 0 &&
			update.NonceIncrement == 0 {
			continue
		}
		res.Accounts = append(res.Accounts, update)
	}
	return res
}
