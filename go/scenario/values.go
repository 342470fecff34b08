// Copyright (c) 2024 Fantom Foundation
//
// Use of this software is governed by the Business Source License included
// in the LICENSE file and at fantom.foundation/bsl11.
//
// Change Date: 2028-4-16
//
// On the date above, in accordance with the Business Source License, use of
// this software will be governed by the GNU Lesser General Public License v3.

package scenario

import (
	"bytes"
	"fmt"
	"math/big"
	"strings"

	"github.com/Fantom-foundation/Mockchain/go/ledger"
	"github.com/ethereum/go-ethereum/common/hexutil"
)

// Values in scenario files are written as strings in one of the following
// forms:
//
//	0x0102            hex encoded bytes
//	str:text          the UTF-8 bytes of text
//	address:name      a user address derived from name
//	sc:name           a smart contract address derived from name
//	123               a big-endian unsigned integer, empty for zero
//
// Addresses may be given in the full 0x-prefixed form or by name.

const (
	addressFiller = '_'
	// contract addresses start with 8 zero bytes
	contractAddressOffset = 8
)

// Value is a byte string in scenario notation.
type Value []byte

func (v *Value) UnmarshalText(data []byte) error {
	res, err := parseValue(string(data))
	if err != nil {
		return err
	}
	*v = res
	return nil
}

func (v Value) MarshalText() ([]byte, error) {
	return []byte(hexutil.Encode(v)), nil
}

// Address is an account address in scenario notation.
type Address ledger.Address

func (a *Address) UnmarshalText(data []byte) error {
	res, err := parseAddress(string(data))
	if err != nil {
		return err
	}
	*a = Address(res)
	return nil
}

func (a Address) MarshalText() ([]byte, error) {
	return ledger.Address(a).MarshalText()
}

// Amount is a non-negative big integer written as a decimal or hex string.
type Amount big.Int

func (a *Amount) UnmarshalText(data []byte) error {
	res, err := ledger.ParseAmount(string(data))
	if err != nil {
		return err
	}
	if res.Sign() < 0 {
		return fmt.Errorf("%v: %w", res, ledger.ErrNegativeAmount)
	}
	*a = Amount(*res)
	return nil
}

// UnmarshalJSON accepts amounts given as JSON strings or numbers.
func (a *Amount) UnmarshalJSON(data []byte) error {
	return a.UnmarshalText(bytes.Trim(data, `"`))
}

func (a *Amount) MarshalText() ([]byte, error) {
	return []byte(a.toBig().String()), nil
}

func (a *Amount) toBig() *big.Int {
	if a == nil {
		return new(big.Int)
	}
	return new(big.Int).Set((*big.Int)(a))
}

func parseValue(s string) ([]byte, error) {
	switch {
	case s == "":
		return []byte{}, nil
	case strings.HasPrefix(s, "0x"):
		return hexutil.Decode(s)
	case strings.HasPrefix(s, "str:"):
		return []byte(strings.TrimPrefix(s, "str:")), nil
	case strings.HasPrefix(s, "address:"), strings.HasPrefix(s, "sc:"):
		address, err := parseAddress(s)
		if err != nil {
			return nil, err
		}
		return address[:], nil
	}
	value, ok := new(big.Int).SetString(s, 10)
	if !ok || value.Sign() < 0 {
		return nil, fmt.Errorf("invalid value %q", s)
	}
	return value.Bytes(), nil
}

func parseAddress(s string) (ledger.Address, error) {
	switch {
	case strings.HasPrefix(s, "address:"):
		return namedAddress(0, strings.TrimPrefix(s, "address:"))
	case strings.HasPrefix(s, "sc:"):
		return namedAddress(contractAddressOffset, strings.TrimPrefix(s, "sc:"))
	}
	var res ledger.Address
	if err := res.UnmarshalText([]byte(s)); err != nil {
		return res, fmt.Errorf("invalid address %q: %w", s, err)
	}
	return res, nil
}

// namedAddress creates an address holding the name at the given offset,
// padded by the filler character. Bytes before the offset are zero.
func namedAddress(offset int, name string) (ledger.Address, error) {
	var res ledger.Address
	if name == "" || len(name) > len(res)-offset {
		return res, fmt.Errorf("invalid address name %q", name)
	}
	copy(res[offset:], name)
	for i := offset + len(name); i < len(res); i++ {
		res[i] = addressFiller
	}
	return res, nil
}
