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

// ContractError is a failure signaled by contract code. It aborts the
// current call and reverts its effects; the message is reported to the
// caller.
type ContractError struct {
	Message string
}

func (e *ContractError) Error() string {
	return "contract error: " + e.Message
}

// NewContractError creates a new error signaling the given message.
func NewContractError(message string) *ContractError {
	return &ContractError{Message: message}
}

const (
	// ProtectedKeyPrefix marks storage keys reserved for the protocol.
	ProtectedKeyPrefix = "ELROND"
	// RewardKey is the protected storage key holding the cumulated
	// validator rewards of a contract.
	RewardKey = ProtectedKeyPrefix + "reward"

	ownerOnlyMessage = "Endpoint can only be called by owner"
)
