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
	"bytes"

	"github.com/Fantom-foundation/Mockchain/go/ledger"
)

// ReadStorage returns the value stored by the account under key: a pending
// write if there is one, the committed value otherwise. Absent keys read as
// empty values.
func (c *Cache) ReadStorage(address ledger.Address, key []byte) ([]byte, error) {
	if err := c.checkOpen(); err != nil {
		return nil, err
	}
	if err := c.requireAccount(address); err != nil {
		return nil, err
	}
	if pending, found := c.accounts[address]; found {
		if value, found := pending.storage[string(key)]; found {
			return bytes.Clone(value), nil
		}
	}
	value, _ := c.world.GetStorage(address, key)
	return value, nil
}

// WriteStorage records a write shadowing the committed value until the
// cache is committed. Writing an empty value deletes the key.
func (c *Cache) WriteStorage(address ledger.Address, key, value []byte) error {
	if err := c.checkOpen(); err != nil {
		return err
	}
	if err := c.requireAccount(address); err != nil {
		return err
	}
	pending := c.touch(address)
	k := string(key)
	previous, found := pending.storage[k]
	pending.storage[k] = bytes.Clone(value)
	if !found {
		pending.storageOrder = append(pending.storageOrder, k)
		c.journal = append(c.journal, func() {
			delete(pending.storage, k)
			pending.storageOrder = pending.storageOrder[:len(pending.storageOrder)-1]
		})
		return nil
	}
	c.journal = append(c.journal, func() { pending.storage[k] = previous })
	return nil
}
