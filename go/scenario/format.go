// Copyright (c) 2024 Fantom Foundation
//
// Use of this software is governed by the Business Source License included
// in the LICENSE file and at fantom.foundation/bsl11.
//
// Change Date: 2028-4-16
//
// On the date above, in accordance with the Business Source License, use of
// this software will be governed by the GNU Lesser General Public License v3.

package scenario

import (
	"fmt"
	"math/big"

	"github.com/Fantom-foundation/Mockchain/go/ledger"
	"github.com/Fantom-foundation/Mockchain/go/processor"
)

// The types of this file mirror the JSON layout of scenario files.

type scenarioJSON struct {
	Name     string        `json:"name"`
	Accounts []accountJSON `json:"accounts"`
	Block    *blockJSON    `json:"block,omitempty"`
	Steps    []stepJSON    `json:"steps"`
	After    []accountJSON `json:"after,omitempty"`
}

type accountJSON struct {
	Address Address          `json:"address"`
	Nonce   uint64           `json:"nonce,omitempty"`
	Balance *Amount          `json:"balance,omitempty"`
	Tokens  []tokenJSON      `json:"tokens,omitempty"`
	Storage map[string]Value `json:"storage,omitempty"`
	Code    string           `json:"code,omitempty"`
	Owner   *Address         `json:"owner,omitempty"`
}

type tokenJSON struct {
	Token  ledger.TokenIdentifier `json:"token"`
	Nonce  uint64                 `json:"nonce,omitempty"`
	Amount *Amount                `json:"amount"`
}

type blockJSON struct {
	Timestamp    uint64     `json:"timestamp,omitempty"`
	Nonce        uint64     `json:"nonce,omitempty"`
	Round        uint64     `json:"round,omitempty"`
	Epoch        uint64     `json:"epoch,omitempty"`
	RandomSeed   Value      `json:"randomSeed,omitempty"`
	FeeCollector *Address   `json:"feeCollector,omitempty"`
	Previous     *blockJSON `json:"previous,omitempty"`
}

type stepJSON struct {
	Name   string      `json:"name,omitempty"`
	Block  *blockJSON  `json:"block,omitempty"`
	Tx     txJSON      `json:"tx"`
	Expect *expectJSON `json:"expect,omitempty"`
}

type txJSON struct {
	From      Address     `json:"from"`
	To        Address     `json:"to"`
	Value     *Amount     `json:"value,omitempty"`
	Transfers []tokenJSON `json:"transfers,omitempty"`
	Function  string      `json:"function,omitempty"`
	Arguments []Value     `json:"arguments,omitempty"`
	GasLimit  uint64      `json:"gasLimit,omitempty"`
	GasPrice  uint64      `json:"gasPrice,omitempty"`
	Hash      *Value      `json:"hash,omitempty"`
}

type expectJSON struct {
	Status  *processor.ReturnCode `json:"status,omitempty"`
	Message *string               `json:"message,omitempty"`
	Out     []Value               `json:"out,omitempty"`
}

func (a *accountJSON) toAccount() (*ledger.Account, error) {
	res := &ledger.Account{
		Address:           ledger.Address(a.Address),
		Nonce:             a.Nonce,
		Balance:           a.Balance.toBig(),
		ContractReference: a.Code,
	}
	if len(a.Tokens) > 0 {
		res.Tokens = map[ledger.TokenKey]*big.Int{}
		for _, token := range a.Tokens {
			key := ledger.TokenKey{Token: token.Token, Nonce: token.Nonce}
			if _, found := res.Tokens[key]; found {
				return nil, fmt.Errorf("account %v: duplicate token %v", res.Address, key)
			}
			res.Tokens[key] = token.Amount.toBig()
		}
	}
	if len(a.Storage) > 0 {
		res.Storage = map[string][]byte{}
		for key, value := range a.Storage {
			k, err := parseValue(key)
			if err != nil {
				return nil, fmt.Errorf("account %v: storage key: %w", res.Address, err)
			}
			res.Storage[string(k)] = value
		}
	}
	if a.Owner != nil {
		owner := ledger.Address(*a.Owner)
		res.Owner = &owner
	}
	return res, nil
}

func toAccounts(accounts []accountJSON) ([]*ledger.Account, error) {
	res := make([]*ledger.Account, 0, len(accounts))
	seen := map[ledger.Address]struct{}{}
	for i := range accounts {
		account, err := accounts[i].toAccount()
		if err != nil {
			return nil, err
		}
		if _, found := seen[account.Address]; found {
			return nil, fmt.Errorf("duplicate account %v", account.Address)
		}
		seen[account.Address] = struct{}{}
		res = append(res, account)
	}
	return res, nil
}

func (b *blockJSON) toBlockInfo() (ledger.BlockInfo, error) {
	if b == nil {
		return ledger.BlockInfo{}, nil
	}
	res := ledger.BlockInfo{
		Timestamp: b.Timestamp,
		Nonce:     b.Nonce,
		Round:     b.Round,
		Epoch:     b.Epoch,
	}
	if len(b.RandomSeed) > len(res.RandomSeed) {
		return res, fmt.Errorf("random seed exceeds %d bytes", len(res.RandomSeed))
	}
	copy(res.RandomSeed[:], b.RandomSeed)
	if b.FeeCollector != nil {
		res.FeeCollector = ledger.Address(*b.FeeCollector)
	}
	if b.Previous != nil {
		previous, err := b.Previous.toBlockInfo()
		if err != nil {
			return res, fmt.Errorf("previous block: %w", err)
		}
		res.Previous = &previous
	}
	return res, nil
}

func (t *txJSON) toInput() (ledger.TransactionInput, error) {
	res := ledger.TransactionInput{
		From:     ledger.Address(t.From),
		To:       ledger.Address(t.To),
		Value:    t.Value.toBig(),
		Function: t.Function,
		GasLimit: t.GasLimit,
		GasPrice: t.GasPrice,
	}
	for _, transfer := range t.Transfers {
		res.Transfers = append(res.Transfers, ledger.TokenTransfer{
			Token:  transfer.Token,
			Nonce:  transfer.Nonce,
			Amount: transfer.Amount.toBig(),
		})
	}
	for _, arg := range t.Arguments {
		res.Arguments = append(res.Arguments, ledger.Data(arg))
	}
	if t.Hash != nil {
		if len(*t.Hash) != len(res.Hash) {
			return res, fmt.Errorf("invalid hash length %d", len(*t.Hash))
		}
		copy(res.Hash[:], *t.Hash)
	}
	return res, res.Validate()
}
