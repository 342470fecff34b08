// Copyright (c) 2024 Fantom Foundation
//
// Use of this software is governed by the Business Source License included
// in the LICENSE file and at fantom.foundation/bsl11.
//
// Change Date: 2028-4-16
//
// On the date above, in accordance with the Business Source License, use of
// this software will be governed by the GNU Lesser General Public License v3.

// Package examples provides simple contracts used for testing the ledger
// and the processor. Importing the package registers them in the contract
// registry.
package examples

import (
	"github.com/Fantom-foundation/Mockchain/go/contract"
)

const (
	AdderName      = "adder"
	CalculatorName = "calculator"
	VaultName      = "vault"
)

func init() {
	contract.MustRegister(AdderName, func() (contract.Contract, error) { return NewAdder(), nil })
	contract.MustRegister(CalculatorName, func() (contract.Contract, error) { return NewCalculator(), nil })
	contract.MustRegister(VaultName, func() (contract.Contract, error) { return NewVault(), nil })
}
