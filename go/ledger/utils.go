// Copyright (c) 2024 Fantom Foundation
//
// Use of this software is governed by the Business Source License included
// in the LICENSE file and at fantom.foundation/bsl11.
//
// Change Date: 2028-4-16
//
// On the date above, in accordance with the Business Source License, use of
// this software will be governed by the GNU Lesser General Public License v3.

package ledger

import "encoding/binary"

// numContractAddressZeroBytes is the length of the all-zero prefix of
// smart contract addresses.
const numContractAddressZeroBytes = 8

// IsSmartContractAddress reports whether the address has the shape of a
// smart contract address, i.e. starts with 8 zero bytes.
func IsSmartContractAddress(address Address) bool {
	for i := 0; i < numContractAddressZeroBytes; i++ {
		if address[i] != 0 {
			return false
		}
	}
	return true
}

// NewSmartContractAddress derives a contract shaped address from the
// deploying account and its nonce at deployment time.
func NewSmartContractAddress(creator Address, nonce uint64) Address {
	var res Address
	binary.BigEndian.PutUint64(res[numContractAddressZeroBytes:], nonce)
	copy(res[2*numContractAddressZeroBytes:], creator[2*numContractAddressZeroBytes:])
	return res
}
