// Copyright (c) 2024 Fantom Foundation
//
// Use of this software is governed by the Business Source License included
// in the LICENSE file and at fantom.foundation/bsl11.
//
// Change Date: 2028-4-16
//
// On the date above, in accordance with the Business Source License, use of
// this software will be governed by the GNU Lesser General Public License v3.

// Package vmapi defines the capabilities offered to contract code while it
// is executed within a transaction.
package vmapi

import (
	"math/big"

	"github.com/Fantom-foundation/Mockchain/go/ledger"
	"github.com/holiman/uint256"
)

//go:generate mockgen -source api.go -destination api_mock.go -package vmapi

// BlockchainAPI is the view of the chain available to a contract during a
// call. All effects are recorded in the transaction cache of the call and
// only become visible in the world once the transaction is committed.
type BlockchainAPI interface {
	// GetCaller returns the sender of the transaction.
	GetCaller() ledger.Address
	// GetSCAddress returns the address of the called contract.
	GetSCAddress() ledger.Address
	// GetOwnerAddress returns the owner of the called contract, the zero
	// address if it has none.
	GetOwnerAddress() ledger.Address
	// CheckCallerIsOwner signals an error if the caller is not the owner.
	CheckCallerIsOwner() error
	IsSmartContract(address ledger.Address) bool

	GetBalance(address ledger.Address) (*big.Int, error)
	// GetBalanceWord returns the native balance as a 256-bit word. It fails
	// if the balance does not fit.
	GetBalanceWord(address ledger.Address) (*uint256.Int, error)
	// GetSCBalance returns the contract's balance of the given token, the
	// native balance if token is the native currency.
	GetSCBalance(token ledger.TokenIdentifier, nonce uint64) (*big.Int, error)
	GetTokenBalance(address ledger.Address, token ledger.TokenIdentifier, nonce uint64) (*big.Int, error)
	// GetCurrentTokenNonce returns the highest instance nonce of the token
	// held by the address, 0 if there is none.
	GetCurrentTokenNonce(address ledger.Address, token ledger.TokenIdentifier) uint64

	GetTxHash() ledger.Hash
	GetGasLeft() uint64

	GetBlockTimestamp() uint64
	GetBlockNonce() uint64
	GetBlockRound() uint64
	GetBlockEpoch() uint64
	GetBlockRandomSeed() [48]byte
	GetPrevBlockTimestamp() uint64
	GetPrevBlockNonce() uint64
	GetPrevBlockRound() uint64
	GetPrevBlockEpoch() uint64
	GetPrevBlockRandomSeed() [48]byte

	// GetCumulatedValidatorRewards returns the rewards recorded by the
	// protocol in the contract's storage.
	GetCumulatedValidatorRewards() (*big.Int, error)

	GetCallValue() *big.Int
	GetTokenTransfers() []ledger.TokenTransfer
	GetArguments() []ledger.Data

	// StorageLoad reads a value of the contract's storage.
	StorageLoad(key []byte) ([]byte, error)
	// StorageStore writes a value to the contract's storage. Keys with the
	// protected prefix are rejected with ErrProtectedKey.
	StorageStore(key []byte, value []byte) error

	// DirectSend transfers native currency from the contract to the receiver.
	DirectSend(to ledger.Address, amount *big.Int) error
	// DirectTokenSend transfers tokens from the contract to the receiver.
	DirectTokenSend(to ledger.Address, token ledger.TokenIdentifier, nonce uint64, amount *big.Int) error

	// SignalError aborts the current call with the given message. The
	// result is a *ContractError to be returned by the contract.
	SignalError(message string) error
}
