// Copyright (c) 2024 Fantom Foundation
//
// Use of this software is governed by the Business Source License included
// in the LICENSE file and at fantom.foundation/bsl11.
//
// Change Date: 2028-4-16
//
// On the date above, in accordance with the Business Source License, use of
// this software will be governed by the GNU Lesser General Public License v3.

package updates

import (
	"bytes"
	"encoding/json"
	"math/big"
	"slices"
	"testing"

	"github.com/Fantom-foundation/Mockchain/go/ledger"
)

var (
	alice = ledger.Address{1}
	bob   = ledger.Address{2}
	carol = ledger.Address{3}
	token = ledger.TokenKey{Token: "X", Nonce: 0}
	nft   = ledger.TokenKey{Token: "NFT", Nonce: 7}
)

func transferUpdates() *BlockchainUpdates {
	return NewBuilder().
		AddNativeDelta(alice, big.NewInt(-1000)).
		AddNativeDelta(bob, big.NewInt(1000)).
		AddTokenDelta(alice, token, big.NewInt(-5)).
		AddTokenDelta(bob, token, big.NewInt(5)).
		AddTokenDelta(bob, nft, big.NewInt(1)).
		WriteStorage(bob, []byte("key"), []byte("value")).
		IncrementNonce(alice, 1).
		Build(Origin{World: 1, Sequence: 2})
}

func TestBuilder_KeepsFirstTouchOrder(t *testing.T) {
	updates := NewBuilder().
		AddNativeDelta(carol, big.NewInt(1)).
		AddNativeDelta(alice, big.NewInt(1)).
		AddNativeDelta(carol, big.NewInt(1)).
		AddNativeDelta(bob, big.NewInt(1)).
		Build(Origin{})

	want := []ledger.Address{carol, alice, bob}
	if got := updates.Addresses(); !slices.Equal(want, got) {
		t.Errorf("unexpected account order, wanted %v, got %v", want, got)
	}
	update, found := updates.Get(carol)
	if !found {
		t.Fatalf("update of %v not found", carol)
	}
	if want, got := int64(2), update.NativeDelta.Int64(); want != got {
		t.Errorf("deltas of the same account were not merged, wanted %d, got %d", want, got)
	}
}

func TestBuilder_MergesTokenDeltasAndStorageWrites(t *testing.T) {
	updates := NewBuilder().
		AddTokenDelta(alice, nft, big.NewInt(1)).
		AddTokenDelta(alice, token, big.NewInt(3)).
		AddTokenDelta(alice, nft, big.NewInt(1)).
		WriteStorage(alice, []byte("b"), []byte{1}).
		WriteStorage(alice, []byte("a"), []byte{2}).
		WriteStorage(alice, []byte("b"), []byte{3}).
		Build(Origin{})

	update, _ := updates.Get(alice)
	if want, got := 2, len(update.TokenDeltas); want != got {
		t.Fatalf("unexpected number of token deltas, wanted %d, got %d", want, got)
	}
	if update.TokenDeltas[0].Key != nft || update.TokenDeltas[0].Delta.Int64() != 2 {
		t.Errorf("unexpected first token delta %v", update.TokenDeltas[0])
	}
	if update.TokenDeltas[1].Key != token {
		t.Errorf("unexpected second token delta %v", update.TokenDeltas[1])
	}
	if want, got := 2, len(update.StorageWrites); want != got {
		t.Fatalf("unexpected number of storage writes, wanted %d, got %d", want, got)
	}
	first := update.StorageWrites[0]
	if string(first.Key) != "b" || !bytes.Equal(first.Value, []byte{3}) {
		t.Errorf("later write must replace the earlier one in place, got %v", first)
	}
}

func TestBuilder_DropsEffectlessEntries(t *testing.T) {
	updates := NewBuilder().
		AddNativeDelta(alice, big.NewInt(5)).
		AddNativeDelta(alice, big.NewInt(-5)).
		AddTokenDelta(bob, token, big.NewInt(1)).
		AddTokenDelta(bob, token, big.NewInt(-1)).
		AddNativeDelta(carol, big.NewInt(1)).
		Build(Origin{})

	if want, got := []ledger.Address{carol}, updates.Addresses(); !slices.Equal(want, got) {
		t.Errorf("unexpected accounts, wanted %v, got %v", want, got)
	}
}

func TestBuilder_CreationIsKeptWithoutOtherEffects(t *testing.T) {
	updates := NewBuilder().Create(alice).Build(Origin{})
	update, found := updates.Get(alice)
	if !found || !update.Create {
		t.Errorf("account creation was dropped")
	}
}

func TestBlockchainUpdates_NetAmounts(t *testing.T) {
	updates := transferUpdates()
	if got := updates.NativeNet(); got.Sign() != 0 {
		t.Errorf("transfers must not create native currency, net is %v", got)
	}
	if got := updates.TokenNet(token); got.Sign() != 0 {
		t.Errorf("transfers must not create tokens, net is %v", got)
	}
	if got := updates.TokenNet(nft); got.Int64() != 1 {
		t.Errorf("unexpected net of minted token, got %v", got)
	}
}

func TestBlockchainUpdates_EmptyUpdates(t *testing.T) {
	updates := NewBuilder().Build(Origin{})
	if !updates.IsEmpty() || updates.Len() != 0 {
		t.Errorf("updates of an empty builder must be empty")
	}
	if _, found := updates.Get(alice); found {
		t.Errorf("empty updates must not contain accounts")
	}
}

func TestBlockchainUpdates_CloneIsIndependent(t *testing.T) {
	original := transferUpdates()
	clone := original.Clone()
	clone.Accounts[0].NativeDelta.SetInt64(0)
	clone.Accounts[1].TokenDeltas[0].Delta.SetInt64(0)
	clone.Accounts[1].StorageWrites[0].Value[0] = 'X'

	want, _ := transferUpdates().Digest()
	got, _ := original.Digest()
	if want != got {
		t.Errorf("modifying the clone changed the original")
	}
}

func TestBlockchainUpdates_RLPRoundTrip(t *testing.T) {
	original := transferUpdates()
	encoded, err := Encode(original)
	if err != nil {
		t.Fatalf("failed to encode updates: %v", err)
	}
	restored, err := Decode(encoded)
	if err != nil {
		t.Fatalf("failed to decode updates: %v", err)
	}
	if want, got := original.Origin, restored.Origin; want != got {
		t.Errorf("unexpected origin, wanted %v, got %v", want, got)
	}
	want, _ := original.Digest()
	got, _ := restored.Digest()
	if want != got {
		t.Errorf("restored updates differ from the original")
	}
	if delta := restored.Accounts[0].NativeDelta; delta.Int64() != -1000 {
		t.Errorf("negative delta not restored, got %v", delta)
	}
}

func TestBlockchainUpdates_JSONRoundTrip(t *testing.T) {
	original := transferUpdates()
	encoded, err := json.Marshal(original)
	if err != nil {
		t.Fatalf("failed to encode updates: %v", err)
	}
	var restored BlockchainUpdates
	if err := json.Unmarshal(encoded, &restored); err != nil {
		t.Fatalf("failed to decode updates: %v", err)
	}
	want, _ := original.Digest()
	got, _ := restored.Digest()
	if want != got {
		t.Errorf("restored updates differ from the original: %s", encoded)
	}
}

func TestBlockchainUpdates_DigestIgnoresOrigin(t *testing.T) {
	a := transferUpdates()
	b := transferUpdates()
	b.Origin = Origin{World: 7, Sequence: 9}
	digestA, err := a.Digest()
	if err != nil {
		t.Fatalf("failed to compute digest: %v", err)
	}
	digestB, _ := b.Digest()
	if digestA != digestB {
		t.Errorf("digest must not depend on the origin")
	}

	b.Accounts[0].NativeDelta = big.NewInt(-999)
	if digestC, _ := b.Digest(); digestC == digestA {
		t.Errorf("digest must depend on the deltas")
	}
}
