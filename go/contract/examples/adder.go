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
	"math/big"

	"github.com/Fantom-foundation/Mockchain/go/contract"
	"github.com/Fantom-foundation/Mockchain/go/ledger"
	"github.com/Fantom-foundation/Mockchain/go/vmapi"
)

var sumKey = []byte("sum")

// NewAdder creates a contract keeping a running sum in its storage.
//
//	add(value)   adds value to the sum
//	getSum()     returns the sum
//	reset()      sets the sum to zero, owner only
func NewAdder() contract.Contract {
	return contract.Endpoints{
		"add":    adderAdd,
		"getSum": adderGetSum,
		"reset":  adderReset,
	}
}

func adderAdd(api vmapi.BlockchainAPI, args []ledger.Data) ([]ledger.Data, error) {
	if err := contract.CheckNumArguments(api, args, 1); err != nil {
		return nil, err
	}
	sum, err := loadSum(api)
	if err != nil {
		return nil, err
	}
	sum.Add(sum, contract.BigArgument(args[0]))
	return nil, api.StorageStore(sumKey, sum.Bytes())
}

func adderGetSum(api vmapi.BlockchainAPI, args []ledger.Data) ([]ledger.Data, error) {
	if err := contract.CheckNumArguments(api, args, 0); err != nil {
		return nil, err
	}
	sum, err := loadSum(api)
	if err != nil {
		return nil, err
	}
	return []ledger.Data{contract.BigResult(sum)}, nil
}

func adderReset(api vmapi.BlockchainAPI, args []ledger.Data) ([]ledger.Data, error) {
	if err := api.CheckCallerIsOwner(); err != nil {
		return nil, err
	}
	return nil, api.StorageStore(sumKey, nil)
}

func loadSum(api vmapi.BlockchainAPI) (*big.Int, error) {
	value, err := api.StorageLoad(sumKey)
	if err != nil {
		return nil, err
	}
	return new(big.Int).SetBytes(value), nil
}
