// Copyright (c) 2024 Fantom Foundation
//
// Use of this software is governed by the Business Source License included
// in the LICENSE file and at fantom.foundation/bsl11.
//
// Change Date: 2028-4-16
//
// On the date above, in accordance with the Business Source License, use of
// this software will be governed by the GNU Lesser General Public License v3.

package processor

import (
	"fmt"
	"math/big"

	"github.com/Fantom-foundation/Mockchain/go/ledger"
	"github.com/Fantom-foundation/Mockchain/go/updates"
)

// Receipt summarizes the result of a processed transaction.
type Receipt struct {
	Success    bool
	ReturnCode ReturnCode
	Message    string        // the failure reason, empty on success
	Output     []ledger.Data // results of the called function
	Fee        *big.Int      // the fee charged to the sender
	Updates    *updates.BlockchainUpdates
}

// ReturnCode classifies the outcome of a transaction.
type ReturnCode int

const (
	Ok ReturnCode = iota
	UserError
	OutOfFunds
	FunctionNotFound
	ContractNotFound
	ContractInvalid
	ExecutionFailed
)

var returnCodeNames = map[ReturnCode]string{
	Ok:               "ok",
	UserError:        "user error",
	OutOfFunds:       "out of funds",
	FunctionNotFound: "function not found",
	ContractNotFound: "contract not found",
	ContractInvalid:  "contract invalid",
	ExecutionFailed:  "execution failed",
}

func (c ReturnCode) String() string {
	if name, found := returnCodeNames[c]; found {
		return name
	}
	return fmt.Sprintf("ReturnCode(%d)", c)
}

func (c ReturnCode) MarshalText() ([]byte, error) {
	if _, found := returnCodeNames[c]; !found {
		return nil, fmt.Errorf("invalid return code %d", c)
	}
	return []byte(c.String()), nil
}

func (c *ReturnCode) UnmarshalText(data []byte) error {
	for code, name := range returnCodeNames {
		if name == string(data) {
			*c = code
			return nil
		}
	}
	return fmt.Errorf("unknown return code %q", data)
}

func GetAllReturnCodes() []ReturnCode {
	return []ReturnCode{
		Ok,
		UserError,
		OutOfFunds,
		FunctionNotFound,
		ContractNotFound,
		ContractInvalid,
		ExecutionFailed,
	}
}
