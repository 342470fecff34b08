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
	"encoding/binary"
	"fmt"
	"math/big"

	"golang.org/x/crypto/sha3"
)

// TransactionInput describes one simulated call. It is treated as an
// immutable value once handed to a transaction cache.
type TransactionInput struct {
	From      Address         // the sender, paying value and transfers
	To        Address         // the receiver, a user or a contract account
	Value     *big.Int        // native currency transferred to the receiver
	Transfers []TokenTransfer // token transfers, executed in order
	Function  string          // the contract endpoint, empty for plain transfers
	Arguments []Data          // the endpoint arguments
	GasLimit  uint64
	GasPrice  uint64
	Hash      Hash // zero if the hash is to be derived, see ComputeHash
}

// TokenTransfer moves Amount units of the token instance (Token, Nonce).
type TokenTransfer struct {
	Token  TokenIdentifier
	Nonce  uint64
	Amount *big.Int
}

func (t TokenTransfer) Key() TokenKey {
	return TokenKey{Token: t.Token, Nonce: t.Nonce}
}

// Validate checks the amount constraints of the transaction.
func (tx *TransactionInput) Validate() error {
	if tx.Value != nil && tx.Value.Sign() < 0 {
		return fmt.Errorf("transaction value %v: %w", tx.Value, ErrNegativeAmount)
	}
	for i, transfer := range tx.Transfers {
		if transfer.Token.IsNative() {
			return fmt.Errorf("transfer %d: native currency must be sent as value", i)
		}
		if transfer.Amount != nil && transfer.Amount.Sign() < 0 {
			return fmt.Errorf("transfer %d of %v: %w", i, transfer.Key(), ErrNegativeAmount)
		}
	}
	return nil
}

// GetValue returns the transferred native value, never nil.
func (tx *TransactionInput) GetValue() *big.Int {
	return CloneAmount(tx.Value)
}

// Clone returns a deep copy of the transaction input.
func (tx *TransactionInput) Clone() TransactionInput {
	res := *tx
	res.Value = CloneAmount(tx.Value)
	res.Transfers = make([]TokenTransfer, len(tx.Transfers))
	for i, transfer := range tx.Transfers {
		transfer.Amount = CloneAmount(transfer.Amount)
		res.Transfers[i] = transfer
	}
	res.Arguments = make([]Data, len(tx.Arguments))
	for i, arg := range tx.Arguments {
		res.Arguments[i] = append(Data(nil), arg...)
	}
	return res
}

// ComputeHash derives a keccak256 digest of the transaction fields. The
// stored Hash is not part of the digest.
func (tx *TransactionInput) ComputeHash() Hash {
	hasher := sha3.NewLegacyKeccak256()
	var buffer [8]byte
	writeUint := func(v uint64) {
		binary.BigEndian.PutUint64(buffer[:], v)
		hasher.Write(buffer[:])
	}
	writeBytes := func(data []byte) {
		writeUint(uint64(len(data)))
		hasher.Write(data)
	}
	hasher.Write(tx.From[:])
	hasher.Write(tx.To[:])
	writeBytes(CloneAmount(tx.Value).Bytes())
	writeUint(uint64(len(tx.Transfers)))
	for _, transfer := range tx.Transfers {
		writeBytes([]byte(transfer.Token))
		writeUint(transfer.Nonce)
		writeBytes(CloneAmount(transfer.Amount).Bytes())
	}
	writeBytes([]byte(tx.Function))
	writeUint(uint64(len(tx.Arguments)))
	for _, arg := range tx.Arguments {
		writeBytes(arg)
	}
	writeUint(tx.GasLimit)
	writeUint(tx.GasPrice)

	var hash Hash
	copy(hash[:], hasher.Sum(nil))
	return hash
}

// BlockInfo summarizes the block a transaction is executed in.
type BlockInfo struct {
	Timestamp  uint64
	Nonce      uint64
	Round      uint64
	Epoch      uint64
	RandomSeed [48]byte

	Previous *BlockInfo // the parent block, nil for the first block

	// FeeCollector receives transaction fees. If zero, no fees are charged.
	FeeCollector Address
}
