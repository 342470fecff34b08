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
	"strings"
	"testing"

	"github.com/Fantom-foundation/Mockchain/go/ledger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValues_Parse(t *testing.T) {
	tests := map[string]struct {
		input string
		want  []byte
	}{
		"empty":     {input: "", want: []byte{}},
		"hex":       {input: "0x0102", want: []byte{1, 2}},
		"empty hex": {input: "0x", want: []byte{}},
		"string":    {input: "str:abc", want: []byte("abc")},
		"zero":      {input: "0", want: []byte{}},
		"number":    {input: "258", want: []byte{1, 2}},
	}
	for name, test := range tests {
		t.Run(name, func(t *testing.T) {
			got, err := parseValue(test.input)
			require.NoError(t, err)
			assert.Equal(t, test.want, got)
		})
	}
}

func TestValues_InvalidValues(t *testing.T) {
	for _, input := range []string{"0x1", "-1", "abc", "address:", "sc:" + strings.Repeat("x", 25)} {
		_, err := parseValue(input)
		assert.Error(t, err, "input %q", input)
	}
}

func TestValues_NamedAddresses(t *testing.T) {
	user, err := parseAddress("address:alice")
	require.NoError(t, err)
	assert.Equal(t, "alice"+strings.Repeat("_", 27), string(user[:]))
	assert.False(t, ledger.IsSmartContractAddress(user))

	contract, err := parseAddress("sc:adder")
	require.NoError(t, err)
	assert.Equal(t, make([]byte, 8), contract[:8])
	assert.Equal(t, "adder"+strings.Repeat("_", 19), string(contract[8:]))
	assert.True(t, ledger.IsSmartContractAddress(contract))

	full, err := parseAddress(user.String())
	require.NoError(t, err)
	assert.Equal(t, user, full)

	value, err := parseValue("sc:adder")
	require.NoError(t, err)
	assert.Equal(t, contract[:], value)
}

func TestValues_AmountsAcceptStringsAndNumbers(t *testing.T) {
	var a, b Amount
	require.NoError(t, a.UnmarshalJSON([]byte(`"1000"`)))
	require.NoError(t, b.UnmarshalJSON([]byte(`1000`)))
	assert.Equal(t, 0, a.toBig().Cmp(b.toBig()))

	text, err := a.MarshalText()
	require.NoError(t, err)
	assert.Equal(t, "1000", string(text))

	var missing *Amount
	assert.Equal(t, 0, missing.toBig().Sign())
}
