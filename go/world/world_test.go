// Copyright (c) 2024 Fantom Foundation
//
// Use of this software is governed by the Business Source License included
// in the LICENSE file and at fantom.foundation/bsl11.
//
// Change Date: 2028-4-16
//
// On the date above, in accordance with the Business Source License, use of
// this software will be governed by the GNU Lesser General Public License v3.

package world

import (
	"errors"
	"math/big"
	"slices"
	"strings"
	"testing"

	"github.com/Fantom-foundation/Mockchain/go/ledger"
)

var (
	alice = ledger.Address{1}
	bob   = ledger.Address{2}
	carol = ledger.Address{3}
	token = ledger.TokenKey{Token: "X", Nonce: 0}
)

func newTestWorld(t *testing.T, accounts ...*ledger.Account) *World {
	t.Helper()
	w := New()
	for _, account := range accounts {
		if err := w.AddAccount(account); err != nil {
			t.Fatalf("failed to add account: %v", err)
		}
	}
	return w
}

func TestWorld_NewWorldIsEmpty(t *testing.T) {
	w := New()
	if w.Len() != 0 {
		t.Errorf("new world contains %d accounts", w.Len())
	}
	if _, found := w.GetAccount(alice); found {
		t.Errorf("new world knows account %v", alice)
	}
	if w.TotalSupply().Sign() != 0 {
		t.Errorf("new world has non-zero supply")
	}
}

func TestWorld_WorldsHaveDistinctIdentities(t *testing.T) {
	if New().ID() == New().ID() {
		t.Errorf("worlds must have distinct identities")
	}
}

func TestWorld_AddAccountInsertsAndReplaces(t *testing.T) {
	w := newTestWorld(t, ledger.NewAccount(alice, 10), ledger.NewAccount(bob, 20))
	if err := w.AddAccount(ledger.NewAccount(alice, 30)); err != nil {
		t.Fatalf("failed to replace account: %v", err)
	}

	if want, got := 2, w.Len(); want != got {
		t.Errorf("unexpected number of accounts, wanted %d, got %d", want, got)
	}
	balance, found := w.GetBalance(alice)
	if !found || balance.Int64() != 30 {
		t.Errorf("account was not replaced, balance %v", balance)
	}
	if want, got := []ledger.Address{alice, bob}, w.Addresses(); !slices.Equal(want, got) {
		t.Errorf("unexpected registration order, wanted %v, got %v", want, got)
	}
}

func TestWorld_AddAccountRejectsNegativeBalances(t *testing.T) {
	w := New()
	err := w.AddAccount(&ledger.Account{Address: alice, Balance: big.NewInt(-1)})
	if !errors.Is(err, ledger.ErrNegativeAmount) {
		t.Errorf("unexpected error, wanted %v, got %v", ledger.ErrNegativeAmount, err)
	}
	err = w.AddAccount(&ledger.Account{Address: alice, Tokens: map[ledger.TokenKey]*big.Int{token: big.NewInt(-1)}})
	if !errors.Is(err, ledger.ErrNegativeAmount) {
		t.Errorf("unexpected error, wanted %v, got %v", ledger.ErrNegativeAmount, err)
	}
	if w.Len() != 0 {
		t.Errorf("rejected account was registered")
	}
}

func TestWorld_RegisteredAccountIsACopy(t *testing.T) {
	account := ledger.NewAccount(alice, 10)
	w := newTestWorld(t, account)
	account.Balance.SetInt64(99)

	got, _ := w.GetAccount(alice)
	if got.Balance.Int64() != 10 {
		t.Errorf("world shares state with the registered account")
	}
	got.Balance.SetInt64(42)
	if balance, _ := w.GetBalance(alice); balance.Int64() != 10 {
		t.Errorf("world shares state with the returned account")
	}
}

func TestWorld_ReadAccessors(t *testing.T) {
	w := newTestWorld(t, &ledger.Account{
		Address: alice,
		Nonce:   3,
		Balance: big.NewInt(100),
		Tokens:  map[ledger.TokenKey]*big.Int{token: big.NewInt(5)},
		Storage: map[string][]byte{"key": []byte("value")},
	})

	if nonce, found := w.GetNonce(alice); !found || nonce != 3 {
		t.Errorf("unexpected nonce %d", nonce)
	}
	if balance, found := w.GetTokenBalance(alice, token); !found || balance.Int64() != 5 {
		t.Errorf("unexpected token balance %v", balance)
	}
	if value, found := w.GetStorage(alice, []byte("key")); !found || string(value) != "value" {
		t.Errorf("unexpected storage value %q", value)
	}
	if value, found := w.GetStorage(alice, []byte("other")); !found || len(value) != 0 {
		t.Errorf("missing keys must read as empty, got %q", value)
	}
	if _, found := w.GetStorage(bob, []byte("key")); found {
		t.Errorf("storage of unknown account must not be found")
	}
	if !w.HasAccount(alice) || w.HasAccount(bob) {
		t.Errorf("unexpected account presence")
	}
}

func TestWorld_Supply(t *testing.T) {
	w := newTestWorld(t,
		&ledger.Account{Address: alice, Balance: big.NewInt(1000), Tokens: map[ledger.TokenKey]*big.Int{token: big.NewInt(5)}},
		&ledger.Account{Address: bob, Balance: big.NewInt(2000), Tokens: map[ledger.TokenKey]*big.Int{token: big.NewInt(1)}},
	)
	if want, got := int64(3000), w.TotalSupply().Int64(); want != got {
		t.Errorf("unexpected supply, wanted %d, got %d", want, got)
	}
	if want, got := int64(6), w.TotalTokenSupply(token).Int64(); want != got {
		t.Errorf("unexpected token supply, wanted %d, got %d", want, got)
	}
}

func TestWorld_CloneIsIndependent(t *testing.T) {
	w := newTestWorld(t, ledger.NewAccount(alice, 10))
	clone := w.Clone()
	if !w.Equal(clone) {
		t.Fatalf("clone differs from the original: %v", w.Diff(clone))
	}
	if clone.ID() == w.ID() {
		t.Errorf("clone must have its own identity")
	}
	if err := clone.AddAccount(ledger.NewAccount(alice, 11)); err != nil {
		t.Fatalf("failed to modify clone: %v", err)
	}
	if balance, _ := w.GetBalance(alice); balance.Int64() != 10 {
		t.Errorf("modifying the clone changed the original")
	}
}

func TestWorld_Diff(t *testing.T) {
	a := newTestWorld(t, ledger.NewAccount(alice, 10), ledger.NewAccount(bob, 0))
	b := newTestWorld(t, ledger.NewAccount(alice, 20), ledger.NewAccount(carol, 0))

	if a.Equal(b) {
		t.Fatalf("different worlds reported as equal")
	}
	diffs := a.Diff(b)
	want := []string{
		alice.String() + "/different balance: 10 != 20",
		bob.String() + ": missing account",
		carol.String() + ": unexpected account",
	}
	if got := strings.Join(diffs, ","); got != strings.Join(want, ",") {
		t.Errorf("unexpected diffs, wanted %v, got %v", want, diffs)
	}
}

func TestWorld_ZeroEntriesAreNormalized(t *testing.T) {
	w := newTestWorld(t, &ledger.Account{
		Address: alice,
		Tokens:  map[ledger.TokenKey]*big.Int{token: big.NewInt(0)},
		Storage: map[string][]byte{"key": {}},
	})
	account, _ := w.GetAccount(alice)
	if len(account.Tokens) != 0 || len(account.Storage) != 0 {
		t.Errorf("zero entries were kept: %v", account)
	}
	if account.Balance == nil {
		t.Errorf("balance must be initialized")
	}
}
