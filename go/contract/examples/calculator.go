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

// NewCalculator creates a stateless contract.
//
//	sum(a, b)          returns a + b
//	sumChecked(a, b)   returns a + b, signals an error if an operand is zero
//	echo(args...)      returns its arguments
func NewCalculator() contract.Contract {
	return contract.Endpoints{
		"sum":        calculatorSum,
		"sumChecked": calculatorSumChecked,
		"echo":       calculatorEcho,
	}
}

func calculatorSum(api vmapi.BlockchainAPI, args []ledger.Data) ([]ledger.Data, error) {
	if err := contract.CheckNumArguments(api, args, 2); err != nil {
		return nil, err
	}
	a, b := contract.BigArgument(args[0]), contract.BigArgument(args[1])
	return []ledger.Data{contract.BigResult(new(big.Int).Add(a, b))}, nil
}

func calculatorSumChecked(api vmapi.BlockchainAPI, args []ledger.Data) ([]ledger.Data, error) {
	if err := contract.CheckNumArguments(api, args, 2); err != nil {
		return nil, err
	}
	a, b := contract.BigArgument(args[0]), contract.BigArgument(args[1])
	if a.Sign() == 0 || b.Sign() == 0 {
		return nil, api.SignalError("Non-zero required")
	}
	return []ledger.Data{contract.BigResult(new(big.Int).Add(a, b))}, nil
}

func calculatorEcho(api vmapi.BlockchainAPI, args []ledger.Data) ([]ledger.Data, error) {
	return args, nil
}
