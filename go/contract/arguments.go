// Copyright (c) 2024 Fantom Foundation
//
// Use of this software is governed by the Business Source License included
// in the LICENSE file and at fantom.foundation/bsl11.
//
// Change Date: 2028-4-16
//
// On the date above, in accordance with the Business Source License, use of
// this software will be governed by the GNU Lesser General Public License v3.

package contract

import (
	"math/big"

	"github.com/Fantom-foundation/Mockchain/go/ledger"
	"github.com/Fantom-foundation/Mockchain/go/vmapi"
)

// CheckNumArguments signals a contract error if the number of arguments
// does not match.
func CheckNumArguments(api vmapi.BlockchainAPI, args []ledger.Data, want int) error {
	if len(args) != want {
		return api.SignalError("wrong number of arguments")
	}
	return nil
}

// BigArgument interprets an argument as an unsigned big-endian integer.
func BigArgument(arg ledger.Data) *big.Int {
	return new(big.Int).SetBytes(arg)
}

// AddressArgument interprets an argument as an address. Shorter arguments
// are left-padded with zeros.
func AddressArgument(api vmapi.BlockchainAPI, arg ledger.Data) (ledger.Address, error) {
	var res ledger.Address
	if len(arg) > len(res) {
		return res, api.SignalError("argument is not an address")
	}
	copy(res[len(res)-len(arg):], arg)
	return res, nil
}

// BigResult encodes an unsigned integer result in big-endian form.
func BigResult(value *big.Int) ledger.Data {
	return ledger.CloneAmount(value).Bytes()
}
