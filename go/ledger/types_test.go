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
	"encoding/json"
	"math/big"
	"strings"
	"testing"
)

func TestAddress_JSON_Encoding(t *testing.T) {
	zeros := strings.Repeat("00", 31)
	tests := []struct {
		address Address
		json    string
	}{
		{Address{}, "\"0x" + zeros + "00\""},
		{Address{1}, "\"0x01" + zeros + "\""},
		{Address{0xAB}, "\"0xab" + zeros + "\""},
	}

	for _, test := range tests {
		encoded, err := json.Marshal(test.address)
		if err != nil {
			t.Fatalf("failed to encode into JSON: %v", err)
		}
		if want, got := test.json, string(encoded); want != got {
			t.Errorf("unexpected JSON encoding, wanted %v, got %v", want, got)
		}

		var restored Address
		if err := json.Unmarshal(encoded, &restored); err != nil {
			t.Fatalf("failed to restore address: %v", err)
		}
		if test.address != restored {
			t.Errorf("unexpected restored value, wanted %v, got %v", test.address, restored)
		}
	}
}

func TestAddress_JSON_InvalidValueDecodingFails(t *testing.T) {
	tests := map[string]string{
		"empty":             "\"\"",
		"no hex prefix":     "\"" + strings.Repeat("00", 32) + "\"",
		"too short":         "\"0x" + strings.Repeat("00", 31) + "\"",
		"too long":          "\"0x" + strings.Repeat("00", 33) + "\"",
		"invalid hex":       "\"0x0g" + strings.Repeat("00", 31) + "\"",
		"not a JSON string": "0x" + strings.Repeat("00", 32),
	}

	for name, data := range tests {
		t.Run(name, func(t *testing.T) {
			var address Address
			if err := json.Unmarshal([]byte(data), &address); err == nil {
				t.Errorf("expected decoding of %v to fail", data)
			}
		})
	}
}

func TestAddress_CompareIsByteWise(t *testing.T) {
	tests := map[string]struct {
		a, b Address
		want int
	}{
		"equal":          {Address{1, 2}, Address{1, 2}, 0},
		"first_smaller":  {Address{1}, Address{2}, -1},
		"first_larger":   {Address{0, 2}, Address{0, 1}, 1},
		"last_byte_only": {Address{31: 1}, Address{}, 1},
	}
	for name, test := range tests {
		t.Run(name, func(t *testing.T) {
			if got := test.a.Compare(test.b); got != test.want {
				t.Errorf("unexpected comparison result, wanted %d, got %d", test.want, got)
			}
		})
	}
}

func TestTokenKey_CompareOrdersByTokenThenNonce(t *testing.T) {
	a := TokenKey{Token: "A", Nonce: 5}
	b := TokenKey{Token: "B", Nonce: 1}
	c := TokenKey{Token: "B", Nonce: 2}
	if a.Compare(b) >= 0 || b.Compare(c) >= 0 || c.Compare(a) <= 0 {
		t.Errorf("unexpected token key order")
	}
	if a.Compare(a) != 0 {
		t.Errorf("token key must be equal to itself")
	}
}

func TestTokenIdentifier_IsNative(t *testing.T) {
	if !NativeToken.IsNative() {
		t.Errorf("native token not recognized")
	}
	if TokenIdentifier("TOKEN-123456").IsNative() {
		t.Errorf("regular token recognized as native")
	}
}

func TestParseAmount(t *testing.T) {
	tests := map[string]struct {
		input string
		want  int64
	}{
		"decimal": {"1000", 1000},
		"hex":     {"0x10", 16},
		"zero":    {"0", 0},
	}
	for name, test := range tests {
		t.Run(name, func(t *testing.T) {
			got, err := ParseAmount(test.input)
			if err != nil {
				t.Fatalf("failed to parse amount: %v", err)
			}
			if got.Cmp(big.NewInt(test.want)) != 0 {
				t.Errorf("unexpected amount, wanted %d, got %v", test.want, got)
			}
		})
	}

	if _, err := ParseAmount("ten"); err == nil {
		t.Errorf("parsing an invalid amount should fail")
	}
}

func TestToUint256(t *testing.T) {
	value, overflow := ToUint256(big.NewInt(42))
	if overflow || value.Uint64() != 42 {
		t.Errorf("unexpected conversion result %v, overflow %t", value, overflow)
	}

	if _, overflow := ToUint256(big.NewInt(-1)); !overflow {
		t.Errorf("negative amounts must not be convertible")
	}

	huge := new(big.Int).Lsh(big.NewInt(1), 256)
	if _, overflow := ToUint256(huge); !overflow {
		t.Errorf("amounts exceeding 256 bits must not be convertible")
	}

	value, overflow = ToUint256(nil)
	if overflow || !value.IsZero() {
		t.Errorf("nil must be converted to zero")
	}
}

func TestAmounts_NilIsZero(t *testing.T) {
	if !IsZeroAmount(nil) || !IsZeroAmount(new(big.Int)) {
		t.Errorf("nil and zero amounts must be zero")
	}
	if !EqualAmounts(nil, big.NewInt(0)) {
		t.Errorf("nil must equal zero")
	}
	if EqualAmounts(nil, big.NewInt(1)) {
		t.Errorf("nil must not equal one")
	}
	original := big.NewInt(5)
	clone := CloneAmount(original)
	clone.SetInt64(6)
	if original.Int64() != 5 {
		t.Errorf("cloned amount is not independent")
	}
}
