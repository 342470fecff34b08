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

import (
	"bytes"
	"encoding/hex"
	"fmt"
	"math/big"
	"strings"

	"github.com/holiman/uint256"
)

func (a Address) String() string {
	return fmt.Sprintf("0x%x", a[:])
}

// Compare orders addresses byte-wise.
func (a Address) Compare(o Address) int {
	return bytes.Compare(a[:], o[:])
}

func (a Address) MarshalText() ([]byte, error) {
	return bytesToText(a[:])
}

func (a *Address) UnmarshalText(data []byte) error {
	return textToBytes(a[:], data)
}

func (h Hash) String() string {
	return fmt.Sprintf("0x%x", h[:])
}

func (h Hash) MarshalText() ([]byte, error) {
	return bytesToText(h[:])
}

func (h *Hash) UnmarshalText(data []byte) error {
	return textToBytes(h[:], data)
}

func (k TokenKey) String() string {
	return fmt.Sprintf("%s/%d", k.Token, k.Nonce)
}

// Compare orders token keys by identifier first and nonce second.
func (k TokenKey) Compare(o TokenKey) int {
	if c := strings.Compare(string(k.Token), string(o.Token)); c != 0 {
		return c
	}
	switch {
	case k.Nonce < o.Nonce:
		return -1
	case k.Nonce > o.Nonce:
		return 1
	}
	return 0
}

// IsZeroAmount reports whether v is nil or zero. A nil amount is treated as
// zero everywhere in the ledger.
func IsZeroAmount(v *big.Int) bool {
	return v == nil || v.Sign() == 0
}

// CloneAmount returns an independent copy of v, mapping nil to zero.
func CloneAmount(v *big.Int) *big.Int {
	if v == nil {
		return new(big.Int)
	}
	return new(big.Int).Set(v)
}

// EqualAmounts compares two amounts, treating nil as zero.
func EqualAmounts(a, b *big.Int) bool {
	return CloneAmount(a).Cmp(CloneAmount(b)) == 0
}

// ParseAmount parses a decimal or 0x-prefixed hexadecimal amount.
func ParseAmount(s string) (*big.Int, error) {
	res, ok := new(big.Int).SetString(s, 0)
	if !ok {
		return nil, fmt.Errorf("invalid amount: %q", s)
	}
	return res, nil
}

// ToUint256 converts an amount into a 256-bit word. The second result is
// true if the amount is negative or does not fit into 256 bits.
func ToUint256(v *big.Int) (*uint256.Int, bool) {
	if v == nil {
		return new(uint256.Int), false
	}
	if v.Sign() < 0 {
		return nil, true
	}
	return uint256.FromBig(v)
}

func bytesToText(data []byte) ([]byte, error) {
	return []byte(fmt.Sprintf("0x%x", data)), nil
}

func textToBytes(trg []byte, data []byte) error {
	s := string(data)
	if !strings.HasPrefix(s, "0x") {
		return fmt.Errorf("invalid format, does not start with 0x: %v", s)
	}
	data, err := hex.DecodeString(s[2:])
	if err != nil {
		return err
	}
	if want, got := len(trg), len(data); want != got {
		return fmt.Errorf("invalid format, wanted %d bytes, got %d", want, got)
	}
	copy(trg[:], data)
	return nil
}
