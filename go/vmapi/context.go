// Copyright (c) 2024 Fantom Foundation
//
// Use of this software is governed by the Business Source License included
// in the LICENSE file and at fantom.foundation/bsl11.
//
// Change Date: 2028-4-16
//
// On the date above, in accordance with the Business Source License, use of
// this software will be governed by the GNU Lesser General Public License v3.

package vmapi

import (
	"fmt"
	"math/big"
	"strings"

	"github.com/Fantom-foundation/Mockchain/go/ledger"
	"github.com/Fantom-foundation/Mockchain/go/txcache"
	"github.com/holiman/uint256"
)

// Context implements the BlockchainAPI on top of a transaction cache. The
// called contract is the receiver of the cache's transaction.
type Context struct {
	cache *txcache.Cache
	input ledger.TransactionInput
	block ledger.BlockInfo
}

// NewContext creates an API instance for a call executed within the given
// cache and block.
func NewContext(cache *txcache.Cache, block ledger.BlockInfo) *Context {
	return &Context{
		cache: cache,
		input: cache.Input(),
		block: block,
	}
}

func (c *Context) GetCaller() ledger.Address {
	return c.input.From
}

func (c *Context) GetSCAddress() ledger.Address {
	return c.input.To
}

func (c *Context) GetOwnerAddress() ledger.Address {
	account, found := c.cache.World().GetAccount(c.input.To)
	if !found || account.Owner == nil {
		return ledger.Address{}
	}
	return *account.Owner
}

func (c *Context) CheckCallerIsOwner() error {
	if c.GetOwnerAddress() != c.GetCaller() {
		return c.SignalError(ownerOnlyMessage)
	}
	return nil
}

// IsSmartContract reports whether the address has the shape of a contract
// address.
func (c *Context) IsSmartContract(address ledger.Address) bool {
	return ledger.IsSmartContractAddress(address)
}

func (c *Context) GetBalance(address ledger.Address) (*big.Int, error) {
	return c.cache.GetBalance(address)
}

func (c *Context) GetBalanceWord(address ledger.Address) (*uint256.Int, error) {
	balance, err := c.cache.GetBalance(address)
	if err != nil {
		return nil, err
	}
	res, overflow := ledger.ToUint256(balance)
	if overflow {
		return nil, fmt.Errorf("balance %v of %v exceeds 256 bits", balance, address)
	}
	return res, nil
}

func (c *Context) GetSCBalance(token ledger.TokenIdentifier, nonce uint64) (*big.Int, error) {
	if token.IsNative() {
		return c.GetBalance(c.input.To)
	}
	return c.GetTokenBalance(c.input.To, token, nonce)
}

func (c *Context) GetTokenBalance(address ledger.Address, token ledger.TokenIdentifier, nonce uint64) (*big.Int, error) {
	return c.cache.GetTokenBalance(address, token, nonce)
}

func (c *Context) GetCurrentTokenNonce(address ledger.Address, token ledger.TokenIdentifier) uint64 {
	account, found := c.cache.World().GetAccount(address)
	if !found {
		return 0
	}
	res := uint64(0)
	for _, key := range account.TokenKeys() {
		if key.Token == token && key.Nonce > res {
			res = key.Nonce
		}
	}
	return res
}

// GetTxHash returns the hash of the transaction, derived from its content
// if none was provided.
func (c *Context) GetTxHash() ledger.Hash {
	if c.input.Hash != (ledger.Hash{}) {
		return c.input.Hash
	}
	return c.input.ComputeHash()
}

// GetGasLeft returns the gas limit of the transaction; calls do not
// consume gas.
func (c *Context) GetGasLeft() uint64 {
	return c.input.GasLimit
}

func (c *Context) GetBlockTimestamp() uint64    { return c.block.Timestamp }
func (c *Context) GetBlockNonce() uint64        { return c.block.Nonce }
func (c *Context) GetBlockRound() uint64        { return c.block.Round }
func (c *Context) GetBlockEpoch() uint64        { return c.block.Epoch }
func (c *Context) GetBlockRandomSeed() [48]byte { return c.block.RandomSeed }

func (c *Context) GetPrevBlockTimestamp() uint64    { return c.previous().Timestamp }
func (c *Context) GetPrevBlockNonce() uint64        { return c.previous().Nonce }
func (c *Context) GetPrevBlockRound() uint64        { return c.previous().Round }
func (c *Context) GetPrevBlockEpoch() uint64        { return c.previous().Epoch }
func (c *Context) GetPrevBlockRandomSeed() [48]byte { return c.previous().RandomSeed }

func (c *Context) previous() ledger.BlockInfo {
	if c.block.Previous == nil {
		return ledger.BlockInfo{}
	}
	return *c.block.Previous
}

func (c *Context) GetCumulatedValidatorRewards() (*big.Int, error) {
	value, err := c.cache.ReadStorage(c.input.To, []byte(RewardKey))
	if err != nil {
		return nil, err
	}
	return new(big.Int).SetBytes(value), nil
}

func (c *Context) GetCallValue() *big.Int {
	return c.input.GetValue()
}

func (c *Context) GetTokenTransfers() []ledger.TokenTransfer {
	return c.cache.Input().Transfers
}

func (c *Context) GetArguments() []ledger.Data {
	return c.cache.Input().Arguments
}

func (c *Context) StorageLoad(key []byte) ([]byte, error) {
	return c.cache.ReadStorage(c.input.To, key)
}

func (c *Context) StorageStore(key []byte, value []byte) error {
	if strings.HasPrefix(string(key), ProtectedKeyPrefix) {
		return fmt.Errorf("storing %q: %w", key, ledger.ErrProtectedKey)
	}
	return c.cache.WriteStorage(c.input.To, key, value)
}

func (c *Context) DirectSend(to ledger.Address, amount *big.Int) error {
	return c.cache.TransferNativeBalance(c.input.To, to, amount)
}

func (c *Context) DirectTokenSend(to ledger.Address, token ledger.TokenIdentifier, nonce uint64, amount *big.Int) error {
	return c.cache.TransferTokenBalance(c.input.To, to, token, nonce, amount)
}

func (c *Context) SignalError(message string) error {
	return NewContractError(message)
}
