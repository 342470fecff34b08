// Copyright (c) 2024 Fantom Foundation
//
// Use of this software is governed by the Business Source License included
// in the LICENSE file and at fantom.foundation/bsl11.
//
// Change Date: 2028-4-16
//
// On the date above, in accordance with the Business Source License, use of
// this software will be governed by the GNU Lesser General Public License v3.

package txcache

import (
	"github.com/Fantom-foundation/Mockchain/go/ledger"
	"github.com/Fantom-foundation/Mockchain/go/updates"
	"github.com/Fantom-foundation/Mockchain/go/world"
)

// Execute runs fn on a fresh cache over the world. If fn succeeds, the
// recorded effects are returned as updates; otherwise the cache is
// discarded and the error of fn is returned. In both cases the world's
// lease is released when Execute returns.
func Execute(
	w *world.World,
	input ledger.TransactionInput,
	fn func(*Cache) error,
	config ...Config,
) (*updates.BlockchainUpdates, error) {
	cache, err := New(w, input, config...)
	if err != nil {
		return nil, err
	}
	defer cache.Discard()
	if err := fn(cache); err != nil {
		return nil, err
	}
	return cache.IntoBlockchainUpdates()
}

// ExecuteAndApply is like Execute but also applies the resulting updates
// to the world.
func ExecuteAndApply(
	w *world.World,
	input ledger.TransactionInput,
	fn func(*Cache) error,
	config ...Config,
) (*updates.BlockchainUpdates, error) {
	res, err := Execute(w, input, fn, config...)
	if err != nil {
		return nil, err
	}
	if err := w.Apply(res); err != nil {
		return nil, err
	}
	return res, nil
}
