// Copyright (c) 2024 Fantom Foundation
//
// Use of this software is governed by the Business Source License included
// in the LICENSE file and at fantom.foundation/bsl11.
//
// Change Date: 2028-4-16
//
// On the date above, in accordance with the Business Source License, use of
// this software will be governed by the GNU Lesser General Public License v3.

package examples

import (
	"errors"
	"math/big"
	"testing"

	"github.com/Fantom-foundation/Mockchain/go/contract"
	"github.com/Fantom-foundation/Mockchain/go/ledger"
	"github.com/Fantom-foundation/Mockchain/go/vmapi"
	gomock "go.uber.org/mock/gomock"
)

func signal(message string) error {
	return vmapi.NewContractError(message)
}

func TestExamples_AreRegistered(t *testing.T) {
	for _, name := range []string{AdderName, CalculatorName, VaultName} {
		if _, err := contract.NewContract(name); err != nil {
			t.Errorf("failed to create %s: %v", name, err)
		}
	}
}

func TestCalculator_Sum(t *testing.T) {
	tests := map[string]struct {
		function string
		a, b     int64
		want     int64
		err      string
	}{
		"sum":               {function: "sum", a: 2, b: 3, want: 5},
		"sum with zero":     {function: "sum", a: 0, b: 3, want: 3},
		"checked":           {function: "sumChecked", a: 2, b: 3, want: 5},
		"checked with zero": {function: "sumChecked", a: 2, b: 0, err: "Non-zero required"},
	}

	for name, test := range tests {
		t.Run(name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			api := vmapi.NewMockBlockchainAPI(ctrl)
			if test.err != "" {
				api.EXPECT().SignalError(test.err).Return(signal(test.err))
			}

			args := []ledger.Data{big.NewInt(test.a).Bytes(), big.NewInt(test.b).Bytes()}
			out, err := NewCalculator().Call(api, test.function, args)
			if test.err != "" {
				var contractErr *vmapi.ContractError
				if !errors.As(err, &contractErr) || contractErr.Message != test.err {
					t.Fatalf("unexpected error, wanted %q, got %v", test.err, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if len(out) != 1 || contract.BigArgument(out[0]).Int64() != test.want {
				t.Errorf("unexpected result, wanted %d, got %v", test.want, out)
			}
		})
	}
}

func TestCalculator_WrongNumberOfArguments(t *testing.T) {
	ctrl := gomock.NewController(t)
	api := vmapi.NewMockBlockchainAPI(ctrl)
	api.EXPECT().SignalError("wrong number of arguments").Return(signal("wrong number of arguments"))

	if _, err := NewCalculator().Call(api, "sum", []ledger.Data{{1}}); err == nil {
		t.Errorf("expected error")
	}
}

func TestAdder_AddsToStoredSum(t *testing.T) {
	ctrl := gomock.NewController(t)
	api := vmapi.NewMockBlockchainAPI(ctrl)
	gomock.InOrder(
		api.EXPECT().StorageLoad(sumKey).Return([]byte{5}, nil),
		api.EXPECT().StorageStore(sumKey, []byte{8}).Return(nil),
	)

	if _, err := NewAdder().Call(api, "add", []ledger.Data{{3}}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestAdder_ResetIsOwnerOnly(t *testing.T) {
	ctrl := gomock.NewController(t)
	api := vmapi.NewMockBlockchainAPI(ctrl)
	failure := signal("Endpoint can only be called by owner")
	api.EXPECT().CheckCallerIsOwner().Return(failure)

	if _, err := NewAdder().Call(api, "reset", nil); err != failure {
		t.Errorf("unexpected error, wanted %v, got %v", failure, err)
	}
}

func TestVault_DepositRequiresPayment(t *testing.T) {
	ctrl := gomock.NewController(t)
	api := vmapi.NewMockBlockchainAPI(ctrl)
	api.EXPECT().GetCallValue().Return(new(big.Int))
	api.EXPECT().GetTokenTransfers().Return(nil)
	api.EXPECT().SignalError("payment required").Return(signal("payment required"))

	if _, err := NewVault().Call(api, "deposit", nil); err == nil {
		t.Errorf("expected error")
	}
}

func TestVault_ForwardSendsAllPayments(t *testing.T) {
	ctrl := gomock.NewController(t)
	api := vmapi.NewMockBlockchainAPI(ctrl)
	to := ledger.Address{31: 7}
	transfers := []ledger.TokenTransfer{
		{Token: "A-1", Amount: big.NewInt(1)},
		{Token: "B-2", Nonce: 3, Amount: big.NewInt(2)},
	}
	api.EXPECT().GetCallValue().Return(big.NewInt(10))
	api.EXPECT().GetTokenTransfers().Return(transfers)
	gomock.InOrder(
		api.EXPECT().DirectSend(to, big.NewInt(10)).Return(nil),
		api.EXPECT().DirectTokenSend(to, ledger.TokenIdentifier("A-1"), uint64(0), big.NewInt(1)).Return(nil),
		api.EXPECT().DirectTokenSend(to, ledger.TokenIdentifier("B-2"), uint64(3), big.NewInt(2)).Return(nil),
	)

	if _, err := NewVault().Call(api, "forward", []ledger.Data{{7}}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestVault_WithdrawPaysOwner(t *testing.T) {
	ctrl := gomock.NewController(t)
	api := vmapi.NewMockBlockchainAPI(ctrl)
	owner := ledger.Address{1}
	api.EXPECT().CheckCallerIsOwner().Return(nil)
	api.EXPECT().GetOwnerAddress().Return(owner)
	api.EXPECT().DirectSend(owner, big.NewInt(300)).Return(ledger.ErrInsufficientFunds)

	_, err := NewVault().Call(api, "withdraw", []ledger.Data{big.NewInt(300).Bytes()})
	if !errors.Is(err, ledger.ErrInsufficientFunds) {
		t.Errorf("unexpected error, wanted %v, got %v", ledger.ErrInsufficientFunds, err)
	}
}

func TestVault_Queries(t *testing.T) {
	ctrl := gomock.NewController(t)
	api := vmapi.NewMockBlockchainAPI(ctrl)
	caller := ledger.Address{9}
	api.EXPECT().GetSCBalance(ledger.NativeToken, uint64(0)).Return(big.NewInt(42), nil)
	api.EXPECT().GetSCBalance(ledger.TokenIdentifier("A-1"), uint64(2)).Return(big.NewInt(5), nil)
	api.EXPECT().GetCaller().Return(caller)
	api.EXPECT().GetCumulatedValidatorRewards().Return(big.NewInt(256), nil)

	vault := NewVault()
	tests := map[string]struct {
		function string
		args     []ledger.Data
		want     ledger.Data
	}{
		"balance":       {function: "getBalance", want: ledger.Data{42}},
		"token balance": {function: "getTokenBalance", args: []ledger.Data{ledger.Data("A-1"), {2}}, want: ledger.Data{5}},
		"caller":        {function: "getCaller", want: caller[:]},
		"rewards":       {function: "getRewards", want: ledger.Data{1, 0}},
	}
	for name, test := range tests {
		t.Run(name, func(t *testing.T) {
			out, err := vault.Call(api, test.function, test.args)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if len(out) != 1 || string(out[0]) != string(test.want) {
				t.Errorf("unexpected result, wanted %v, got %v", test.want, out)
			}
		})
	}
}
