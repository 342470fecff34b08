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
	"errors"
	"math/big"
	"testing"

	"github.com/Fantom-foundation/Mockchain/go/ledger"
	"github.com/Fantom-foundation/Mockchain/go/vmapi"
	gomock "go.uber.org/mock/gomock"
)

func TestEndpoints_CallsAreDispatchedByName(t *testing.T) {
	ctrl := gomock.NewController(t)
	api := vmapi.NewMockBlockchainAPI(ctrl)
	api.EXPECT().GetCallValue().Return(big.NewInt(3))

	contract := Endpoints{
		"value": func(api vmapi.BlockchainAPI, args []ledger.Data) ([]ledger.Data, error) {
			return []ledger.Data{BigResult(api.GetCallValue())}, nil
		},
	}

	out, err := contract.Call(api, "value", nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(out) != 1 || BigArgument(out[0]).Int64() != 3 {
		t.Errorf("unexpected output %v", out)
	}

	if _, err := contract.Call(api, "other", nil); !errors.Is(err, ErrFunctionNotFound) {
		t.Errorf("unexpected error, wanted %v, got %v", ErrFunctionNotFound, err)
	}
}

func TestArguments_NumberIsChecked(t *testing.T) {
	ctrl := gomock.NewController(t)
	api := vmapi.NewMockBlockchainAPI(ctrl)
	signaled := vmapi.NewContractError("wrong number of arguments")
	api.EXPECT().SignalError("wrong number of arguments").Return(signaled)

	if err := CheckNumArguments(api, []ledger.Data{{1}}, 1); err != nil {
		t.Errorf("unexpected error: %v", err)
	}
	if err := CheckNumArguments(api, nil, 1); err != signaled {
		t.Errorf("unexpected error, wanted %v, got %v", signaled, err)
	}
}

func TestArguments_Addresses(t *testing.T) {
	ctrl := gomock.NewController(t)
	api := vmapi.NewMockBlockchainAPI(ctrl)
	api.EXPECT().SignalError(gomock.Any()).Return(vmapi.NewContractError("argument is not an address"))

	got, err := AddressArgument(api, ledger.Data{1, 2})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := ledger.Address{}
	want[30], want[31] = 1, 2
	if want != got {
		t.Errorf("unexpected address, wanted %v, got %v", want, got)
	}

	if _, err := AddressArgument(api, make(ledger.Data, 33)); err == nil {
		t.Errorf("expected error for oversized address")
	}
}

func TestArguments_BigValues(t *testing.T) {
	tests := map[string]struct {
		value *big.Int
		data  ledger.Data
	}{
		"nil":   {value: nil, data: ledger.Data{}},
		"zero":  {value: big.NewInt(0), data: ledger.Data{}},
		"small": {value: big.NewInt(258), data: ledger.Data{1, 2}},
	}
	for name, test := range tests {
		t.Run(name, func(t *testing.T) {
			data := BigResult(test.value)
			if len(data) != len(test.data) {
				t.Fatalf("unexpected encoding, wanted %v, got %v", test.data, data)
			}
			if want, got := ledger.CloneAmount(test.value), BigArgument(data); want.Cmp(got) != 0 {
				t.Errorf("unexpected decoding, wanted %v, got %v", want, got)
			}
		})
	}
}
