// Copyright (c) 2024 Fantom Foundation
//
// Use of this software is governed by the Business Source License included
// in the LICENSE file and at fantom.foundation/bsl11.
//
// Change Date: 2028-4-16
//
// On the date above, in accordance with the Business Source License, use of
// this software will be governed by the GNU Lesser General Public License v3.

package examples

import (
	"github.com/Fantom-foundation/Mockchain/go/contract"
	"github.com/Fantom-foundation/Mockchain/go/ledger"
	"github.com/Fantom-foundation/Mockchain/go/vmapi"
)

// NewVault creates a contract holding funds.
//
//	deposit()                    accepts native and token payments
//	getBalance()                 returns the native balance of the vault
//	getTokenBalance(token, n)    returns the vault's balance of a token instance
//	getCaller()                  returns the caller's address
//	forward(to)                  sends the received payments on to another account
//	withdraw(amount)             sends native currency to the owner, owner only
//	getRewards()                 returns the cumulated validator rewards
func NewVault() contract.Contract {
	return contract.Endpoints{
		"deposit":         vaultDeposit,
		"getBalance":      vaultGetBalance,
		"getTokenBalance": vaultGetTokenBalance,
		"getCaller":       vaultGetCaller,
		"forward":         vaultForward,
		"withdraw":        vaultWithdraw,
		"getRewards":      vaultGetRewards,
	}
}

func vaultDeposit(api vmapi.BlockchainAPI, args []ledger.Data) ([]ledger.Data, error) {
	if api.GetCallValue().Sign() == 0 && len(api.GetTokenTransfers()) == 0 {
		return nil, api.SignalError("payment required")
	}
	return nil, nil
}

func vaultGetBalance(api vmapi.BlockchainAPI, args []ledger.Data) ([]ledger.Data, error) {
	balance, err := api.GetSCBalance(ledger.NativeToken, 0)
	if err != nil {
		return nil, err
	}
	return []ledger.Data{contract.BigResult(balance)}, nil
}

func vaultGetTokenBalance(api vmapi.BlockchainAPI, args []ledger.Data) ([]ledger.Data, error) {
	if err := contract.CheckNumArguments(api, args, 2); err != nil {
		return nil, err
	}
	token := ledger.TokenIdentifier(args[0])
	nonce := contract.BigArgument(args[1])
	if !nonce.IsUint64() {
		return nil, api.SignalError("invalid token nonce")
	}
	balance, err := api.GetSCBalance(token, nonce.Uint64())
	if err != nil {
		return nil, err
	}
	return []ledger.Data{contract.BigResult(balance)}, nil
}

func vaultGetCaller(api vmapi.BlockchainAPI, args []ledger.Data) ([]ledger.Data, error) {
	caller := api.GetCaller()
	return []ledger.Data{caller[:]}, nil
}

func vaultForward(api vmapi.BlockchainAPI, args []ledger.Data) ([]ledger.Data, error) {
	if err := contract.CheckNumArguments(api, args, 1); err != nil {
		return nil, err
	}
	to, err := contract.AddressArgument(api, args[0])
	if err != nil {
		return nil, err
	}
	if value := api.GetCallValue(); value.Sign() > 0 {
		if err := api.DirectSend(to, value); err != nil {
			return nil, err
		}
	}
	for _, transfer := range api.GetTokenTransfers() {
		if err := api.DirectTokenSend(to, transfer.Token, transfer.Nonce, transfer.Amount); err != nil {
			return nil, err
		}
	}
	return nil, nil
}

func vaultWithdraw(api vmapi.BlockchainAPI, args []ledger.Data) ([]ledger.Data, error) {
	if err := api.CheckCallerIsOwner(); err != nil {
		return nil, err
	}
	if err := contract.CheckNumArguments(api, args, 1); err != nil {
		return nil, err
	}
	return nil, api.DirectSend(api.GetOwnerAddress(), contract.BigArgument(args[0]))
}

func vaultGetRewards(api vmapi.BlockchainAPI, args []ledger.Data) ([]ledger.Data, error) {
	rewards, err := api.GetCumulatedValidatorRewards()
	if err != nil {
		return nil, err
	}
	return []ledger.Data{contract.BigResult(rewards)}, nil
}
