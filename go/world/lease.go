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
	"fmt"

	"github.com/Fantom-foundation/Mockchain/go/ledger"
	"github.com/Fantom-foundation/Mockchain/go/updates"
)

// Lease grants exclusive access for staging changes against a world. At
// most one lease per world is active at any time; while it is, the world
// rejects registrations and applications of updates.
type Lease struct {
	world    *World
	origin   updates.Origin
	released bool
}

// Acquire obtains the lease of the world. It fails with ErrWorldLeased if
// the lease is already held.
func (w *World) Acquire() (*Lease, error) {
	if w.lease != nil {
		return nil, fmt.Errorf("lease of world %d is held by sequence %d: %w",
			w.id, w.lease.origin.Sequence, ledger.ErrWorldLeased)
	}
	w.sequence++
	w.lease = &Lease{
		world:  w,
		origin: updates.Origin{World: w.id, Sequence: w.sequence},
	}
	return w.lease, nil
}

// IsLeased reports whether a lease on the world is active.
func (w *World) IsLeased() bool {
	return w.lease != nil
}

// World returns the leased world.
func (l *Lease) World() *World {
	return l.world
}

// Origin returns the stamp for updates staged under this lease.
func (l *Lease) Origin() updates.Origin {
	return l.origin
}

// IsReleased reports whether Release was called.
func (l *Lease) IsReleased() bool {
	return l.released
}

// Release returns the lease to the world. Releasing twice has no effect.
func (l *Lease) Release() {
	if l.released {
		return
	}
	l.released = true
	if l.world.lease == l {
		l.world.lease = nil
	}
}
