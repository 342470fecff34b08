// Copyright (c) 2024 Fantom Foundation
//
// Use of this software is governed by the Business Source License included
// in the LICENSE file and at fantom.foundation/bsl11.
//
// Change Date: 2028-4-16
//
// On the date above, in accordance with the Business Source License, use of
// this software will be governed by the GNU Lesser General Public License v3.

package txcache

import (
	"errors"
	"fmt"
	"math/big"

	"github.com/Fantom-foundation/Mockchain/go/ledger"
)

// GetBalance returns the native balance of the account, i.e. its committed
// balance plus all pending changes.
func (c *Cache) GetBalance(address ledger.Address) (*big.Int, error) {
	if err := c.checkOpen(); err != nil {
		return nil, err
	}
	if err := c.requireAccount(address); err != nil {
		return nil, err
	}
	return c.balance(address), nil
}

func (c *Cache) balance(address ledger.Address) *big.Int {
	res, found := c.world.GetBalance(address)
	if !found {
		res = new(big.Int)
	}
	if pending, found := c.accounts[address]; found {
		res.Add(res, pending.native)
	}
	return res
}

// SubtractNativeBalance reduces the native balance of the account. It fails
// with ErrInsufficientFunds, recording nothing, if the balance is lower
// than the amount.
func (c *Cache) SubtractNativeBalance(address ledger.Address, amount *big.Int) error {
	if err := c.checkOpen(); err != nil {
		return err
	}
	if err := checkAmount(amount); err != nil {
		return err
	}
	if err := c.requireAccount(address); err != nil {
		return err
	}
	amount = ledger.CloneAmount(amount)
	if balance := c.balance(address); balance.Cmp(amount) < 0 {
		return fmt.Errorf("subtracting %v from %v with balance %v: %w", amount, address, balance, ledger.ErrInsufficientFunds)
	}
	c.addNative(address, amount.Neg(amount))
	return nil
}

// AddNativeBalance increases the native balance of the account.
func (c *Cache) AddNativeBalance(address ledger.Address, amount *big.Int) error {
	if err := c.checkOpen(); err != nil {
		return err
	}
	if err := checkAmount(amount); err != nil {
		return err
	}
	if err := c.requireCreditable(address); err != nil {
		return err
	}
	c.addNative(address, ledger.CloneAmount(amount))
	return nil
}

// TransferNativeBalance moves native currency between two accounts. Either
// both sides are recorded or none.
func (c *Cache) TransferNativeBalance(from, to ledger.Address, amount *big.Int) error {
	if err := c.checkOpen(); err != nil {
		return err
	}
	snapshot := c.Snapshot()
	if err := c.requireCreditable(to); err != nil {
		return err
	}
	if err := c.SubtractNativeBalance(from, amount); err != nil {
		if revertErr := c.RevertToSnapshot(snapshot); revertErr != nil {
			return errors.Join(err, revertErr)
		}
		return err
	}
	c.addNative(to, ledger.CloneAmount(amount))
	return nil
}

func (c *Cache) addNative(address ledger.Address, delta *big.Int) {
	if delta.Sign() == 0 {
		return
	}
	pending := c.touch(address)
	previous := pending.native
	pending.native = new(big.Int).Add(previous, delta)
	c.journal = append(c.journal, func() { pending.native = previous })
}

// GetTokenBalance returns the balance of the token instance held by the
// account, including pending changes.
func (c *Cache) GetTokenBalance(address ledger.Address, token ledger.TokenIdentifier, nonce uint64) (*big.Int, error) {
	if err := c.checkOpen(); err != nil {
		return nil, err
	}
	if err := c.requireAccount(address); err != nil {
		return nil, err
	}
	return c.tokenBalance(address, ledger.TokenKey{Token: token, Nonce: nonce}), nil
}

func (c *Cache) tokenBalance(address ledger.Address, key ledger.TokenKey) *big.Int {
	res, found := c.world.GetTokenBalance(address, key)
	if !found {
		res = new(big.Int)
	}
	if pending, found := c.accounts[address]; found {
		if delta, found := pending.tokens[key]; found {
			res.Add(res, delta)
		}
	}
	return res
}

// SubtractTokenBalance reduces the token balance of the account. It fails
// with ErrInsufficientFunds, recording nothing, if the balance is lower
// than the amount.
func (c *Cache) SubtractTokenBalance(address ledger.Address, token ledger.TokenIdentifier, nonce uint64, amount *big.Int) error {
	if err := c.checkOpen(); err != nil {
		return err
	}
	if err := checkAmount(amount); err != nil {
		return err
	}
	if err := c.requireAccount(address); err != nil {
		return err
	}
	key := ledger.TokenKey{Token: token, Nonce: nonce}
	amount = ledger.CloneAmount(amount)
	if balance := c.tokenBalance(address, key); balance.Cmp(amount) < 0 {
		return fmt.Errorf("subtracting %v of %v from %v with balance %v: %w", amount, key, address, balance, ledger.ErrInsufficientFunds)
	}
	c.addToken(address, key, amount.Neg(amount))
	return nil
}

// AddTokenBalance increases the token balance of the account.
func (c *Cache) AddTokenBalance(address ledger.Address, token ledger.TokenIdentifier, nonce uint64, amount *big.Int) error {
	if err := c.checkOpen(); err != nil {
		return err
	}
	if err := checkAmount(amount); err != nil {
		return err
	}
	if err := c.requireCreditable(address); err != nil {
		return err
	}
	c.addToken(address, ledger.TokenKey{Token: token, Nonce: nonce}, ledger.CloneAmount(amount))
	return nil
}

// TransferTokenBalance moves units of a token instance between two
// accounts. If the sender's balance is insufficient, nothing is recorded.
func (c *Cache) TransferTokenBalance(from, to ledger.Address, token ledger.TokenIdentifier, nonce uint64, amount *big.Int) error {
	if err := c.checkOpen(); err != nil {
		return err
	}
	snapshot := c.Snapshot()
	if err := c.requireCreditable(to); err != nil {
		return err
	}
	if err := c.SubtractTokenBalance(from, token, nonce, amount); err != nil {
		if revertErr := c.RevertToSnapshot(snapshot); revertErr != nil {
			return errors.Join(err, revertErr)
		}
		return err
	}
	c.addToken(to, ledger.TokenKey{Token: token, Nonce: nonce}, ledger.CloneAmount(amount))
	return nil
}

func (c *Cache) addToken(address ledger.Address, key ledger.TokenKey, delta *big.Int) {
	if delta.Sign() == 0 {
		return
	}
	pending := c.touch(address)
	previous, found := pending.tokens[key]
	if !found {
		pending.tokens[key] = new(big.Int).Set(delta)
		pending.tokenOrder = append(pending.tokenOrder, key)
		c.journal = append(c.journal, func() {
			delete(pending.tokens, key)
			pending.tokenOrder = pending.tokenOrder[:len(pending.tokenOrder)-1]
		})
		return
	}
	pending.tokens[key] = new(big.Int).Add(previous, delta)
	c.journal = append(c.journal, func() { pending.tokens[key] = previous })
}

// GetNonce returns the nonce of the account including pending increments.
func (c *Cache) GetNonce(address ledger.Address) (uint64, error) {
	if err := c.checkOpen(); err != nil {
		return 0, err
	}
	if err := c.requireAccount(address); err != nil {
		return 0, err
	}
	nonce, _ := c.world.GetNonce(address)
	if pending, found := c.accounts[address]; found {
		nonce += pending.nonce
	}
	return nonce, nil
}

// IncrementNonce records one nonce increment of the account.
func (c *Cache) IncrementNonce(address ledger.Address) error {
	if err := c.checkOpen(); err != nil {
		return err
	}
	if err := c.requireAccount(address); err != nil {
		return err
	}
	pending := c.touch(address)
	pending.nonce++
	c.journal = append(c.journal, func() { pending.nonce-- })
	return nil
}
