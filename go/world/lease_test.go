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
	"testing"

	"github.com/Fantom-foundation/Mockchain/go/ledger"
	"github.com/Fantom-foundation/Mockchain/go/updates"
)

func TestLease_OnlyOneLeaseAtATime(t *testing.T) {
	w := New()
	lease, err := w.Acquire()
	if err != nil {
		t.Fatalf("failed to acquire lease: %v", err)
	}
	if !w.IsLeased() {
		t.Errorf("world not reported as leased")
	}
	if _, err := w.Acquire(); !errors.Is(err, ledger.ErrWorldLeased) {
		t.Errorf("unexpected error, wanted %v, got %v", ledger.ErrWorldLeased, err)
	}

	lease.Release()
	if w.IsLeased() || !lease.IsReleased() {
		t.Errorf("lease was not released")
	}
	next, err := w.Acquire()
	if err != nil {
		t.Fatalf("failed to acquire lease after release: %v", err)
	}
	if next.Origin().Sequence <= lease.Origin().Sequence {
		t.Errorf("sequence numbers must increase, got %d after %d", next.Origin().Sequence, lease.Origin().Sequence)
	}
	if next.Origin().World != w.ID() || next.World() != w {
		t.Errorf("lease not bound to its world")
	}
}

func TestLease_ReleasingTwiceKeepsNewerLease(t *testing.T) {
	w := New()
	first, _ := w.Acquire()
	first.Release()
	second, _ := w.Acquire()
	first.Release()
	if !w.IsLeased() || second.IsReleased() {
		t.Errorf("releasing a stale lease must not release the active one")
	}
}

func TestLease_WorldRejectsMutationWhileLeased(t *testing.T) {
	w := New()
	lease, _ := w.Acquire()
	defer lease.Release()

	if err := w.AddAccount(ledger.NewAccount(alice, 1)); !errors.Is(err, ledger.ErrWorldLeased) {
		t.Errorf("unexpected error on registration, wanted %v, got %v", ledger.ErrWorldLeased, err)
	}
	u := updates.NewBuilder().Create(alice).AddNativeDelta(alice, big.NewInt(1)).Build(updates.Origin{})
	if err := w.Apply(u); !errors.Is(err, ledger.ErrWorldLeased) {
		t.Errorf("unexpected error on apply, wanted %v, got %v", ledger.ErrWorldLeased, err)
	}
	if w.Len() != 0 {
		t.Errorf("leased world was modified")
	}
}
