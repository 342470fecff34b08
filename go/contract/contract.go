// Copyright (c) 2024 Fantom Foundation
//
// Use of this software is governed by the Business Source License included
// in the LICENSE file and at fantom.foundation/bsl11.
//
// Change Date: 2028-4-16
//
// On the date above, in accordance with the Business Source License, use of
// this software will be governed by the GNU Lesser General Public License v3.

// Package contract defines the interface of contract code executed by the
// processor and a registry through which implementations are resolved from
// the contract reference of an account.
package contract

import (
	"fmt"

	"github.com/Fantom-foundation/Mockchain/go/ledger"
	"github.com/Fantom-foundation/Mockchain/go/vmapi"
)

//go:generate mockgen -source contract.go -destination contract_mock.go -package contract

// Contract is the executable code of a smart contract account. Instances
// may be shared between transactions and must keep all state in the
// storage of their account.
type Contract interface {
	// Call runs the given function on behalf of the current transaction.
	// Effects must only be produced through the provided API. A failing
	// call is reverted by the caller.
	Call(api vmapi.BlockchainAPI, function string, args []ledger.Data) ([]ledger.Data, error)
}

// ErrFunctionNotFound is returned by contracts not offering a requested
// function.
const ErrFunctionNotFound = ledger.ConstError("function not found")

// Endpoint is a single function of a contract.
type Endpoint func(api vmapi.BlockchainAPI, args []ledger.Data) ([]ledger.Data, error)

// Endpoints is a Contract dispatching calls by function name.
type Endpoints map[string]Endpoint

func (e Endpoints) Call(api vmapi.BlockchainAPI, function string, args []ledger.Data) ([]ledger.Data, error) {
	endpoint, found := e[function]
	if !found {
		return nil, fmt.Errorf("%s: %w", function, ErrFunctionNotFound)
	}
	return endpoint(api, args)
}
