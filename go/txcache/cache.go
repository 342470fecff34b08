// Copyright (c) 2024 Fantom Foundation
//
// Use of this software is governed by the Business Source License included
// in the LICENSE file and at fantom.foundation/bsl11.
//
// Change Date: 2028-4-16
//
// On the date above, in accordance with the Business Source License, use of
// this software will be governed by the GNU Lesser General Public License v3.

// Package txcache provides the per-transaction overlay over a world. Reads
// fall through to the world, writes are buffered in the cache until it is
// converted into blockchain updates.
package txcache

import (
	"fmt"
	"math/big"
	"sort"

	"github.com/Fantom-foundation/Mockchain/go/ledger"
	"github.com/Fantom-foundation/Mockchain/go/updates"
	"github.com/Fantom-foundation/Mockchain/go/world"
	log "github.com/inconshreveable/log15"
)

var logger = log.New("module", "txcache")

// Config summarizes the policies of a transaction cache.
type Config struct {
	// CreateMissingAccounts allows crediting addresses unknown to the world.
	// Such accounts are created when the resulting updates are applied.
	// Without it, any access to an unknown address fails.
	CreateMissingAccounts bool
}

// Cache buffers the effects of a single transaction on a world. While a
// cache is open it holds the world's lease, so the world cannot be modified
// and no second cache can be opened on it. A cache ends by either being
// converted into updates or being discarded; both release the lease.
//
// Every operation either records its full effect or none at all. A Cache
// is not safe for concurrent use.
type Cache struct {
	world  *world.World
	lease  *world.Lease
	input  ledger.TransactionInput
	config Config

	accounts map[ledger.Address]*pendingAccount
	order    []ledger.Address // first-touch order of accounts
	journal  []func()         // undo operations for snapshots
	closed   bool

	validSnapshots []snapshot // ordered by id
	nextSnapshotID int
}

// snapshot maps a snapshot id to the journal length at the time it was
// taken.
type snapshot struct {
	id           int
	journalIndex int
}

type pendingAccount struct {
	created      bool
	native       *big.Int
	tokens       map[ledger.TokenKey]*big.Int
	tokenOrder   []ledger.TokenKey
	storage      map[string][]byte
	storageOrder []string
	nonce        uint64
}

// New opens a cache for the given transaction on the world. It fails with
// ErrWorldLeased if another cache on the same world is still open. The world
// is not modified.
func New(w *world.World, input ledger.TransactionInput, config ...Config) (*Cache, error) {
	if len(config) > 1 {
		return nil, fmt.Errorf("invalid configuration: too many arguments")
	}
	if err := input.Validate(); err != nil {
		return nil, fmt.Errorf("invalid transaction input: %w", err)
	}
	lease, err := w.Acquire()
	if err != nil {
		return nil, err
	}
	c := &Cache{
		world:    w,
		lease:    lease,
		input:    input.Clone(),
		accounts: map[ledger.Address]*pendingAccount{},
	}
	if len(config) > 0 {
		c.config = config[0]
	}
	logger.Debug("Opened transaction cache", "world", w.ID(), "sequence", lease.Origin().Sequence)
	return c, nil
}

// Input returns a copy of the transaction input the cache was opened for.
func (c *Cache) Input() ledger.TransactionInput {
	return c.input.Clone()
}

// World returns read access to the underlying committed state.
func (c *Cache) World() ledger.ReadOnlyWorld {
	return c.world
}

// IsClosed reports whether the cache was converted or discarded.
func (c *Cache) IsClosed() bool {
	return c.closed
}

// IntoBlockchainUpdates consumes the cache and exports its buffered effects.
// This is the only way effects recorded in a cache can reach a world.
func (c *Cache) IntoBlockchainUpdates() (*updates.BlockchainUpdates, error) {
	if err := c.checkOpen(); err != nil {
		return nil, err
	}
	builder := updates.NewBuilder()
	for _, address := range c.order {
		account := c.accounts[address]
		if account.created {
			builder.Create(address)
		}
		builder.AddNativeDelta(address, account.native)
		for _, key := range account.tokenOrder {
			builder.AddTokenDelta(address, key, account.tokens[key])
		}
		for _, key := range account.storageOrder {
			builder.WriteStorage(address, []byte(key), account.storage[key])
		}
		builder.IncrementNonce(address, account.nonce)
	}
	res := builder.Build(c.lease.Origin())
	c.close()
	logger.Debug("Exported blockchain updates", "world", res.Origin.World, "sequence", res.Origin.Sequence, "accounts", res.Len())
	return res, nil
}

// Discard drops all buffered effects and releases the world. Discarding a
// closed cache has no effect.
func (c *Cache) Discard() {
	if c.closed {
		return
	}
	c.close()
	logger.Debug("Discarded transaction cache", "world", c.world.ID(), "sequence", c.lease.Origin().Sequence)
}

func (c *Cache) close() {
	c.closed = true
	c.journal = nil
	c.validSnapshots = nil
	c.lease.Release()
}

func (c *Cache) checkOpen() error {
	if c.closed {
		return ledger.ErrCacheClosed
	}
	return nil
}

// exists reports whether the account is known to the world or created by
// this cache.
func (c *Cache) exists(address ledger.Address) bool {
	if c.world.HasAccount(address) {
		return true
	}
	pending, found := c.accounts[address]
	return found && pending.created
}

func (c *Cache) requireAccount(address ledger.Address) error {
	if !c.exists(address) {
		return fmt.Errorf("%v: %w", address, ledger.ErrUnknownAccount)
	}
	return nil
}

// requireCreditable checks that the address may receive funds, creating
// it if allowed by the policy.
func (c *Cache) requireCreditable(address ledger.Address) error {
	if c.exists(address) {
		return nil
	}
	if !c.config.CreateMissingAccounts {
		return fmt.Errorf("%v: %w", address, ledger.ErrUnknownAccount)
	}
	c.touch(address).created = true
	return nil
}

// touch returns the pending entry of the address, creating it if needed.
func (c *Cache) touch(address ledger.Address) *pendingAccount {
	if pending, found := c.accounts[address]; found {
		return pending
	}
	pending := &pendingAccount{
		native:  new(big.Int),
		tokens:  map[ledger.TokenKey]*big.Int{},
		storage: map[string][]byte{},
	}
	c.accounts[address] = pending
	c.order = append(c.order, address)
	c.journal = append(c.journal, func() {
		delete(c.accounts, address)
		c.order = c.order[:len(c.order)-1]
	})
	return pending
}

func checkAmount(amount *big.Int) error {
	if amount != nil && amount.Sign() < 0 {
		return fmt.Errorf("amount %v: %w", amount, ledger.ErrNegativeAmount)
	}
	return nil
}

// Snapshot returns an identifier of the current state of the cache, which
// can be restored using RevertToSnapshot.
func (c *Cache) Snapshot() int {
	id := c.nextSnapshotID
	c.nextSnapshotID++
	c.validSnapshots = append(c.validSnapshots, snapshot{id: id, journalIndex: len(c.journal)})
	return id
}

// RevertToSnapshot drops all effects recorded after the given snapshot was
// taken. The snapshot and all snapshots taken after it are invalidated.
func (c *Cache) RevertToSnapshot(id int) error {
	if err := c.checkOpen(); err != nil {
		return err
	}
	idx := sort.Search(len(c.validSnapshots), func(i int) bool {
		return c.validSnapshots[i].id >= id
	})
	if idx == len(c.validSnapshots) || c.validSnapshots[idx].id != id {
		return fmt.Errorf("invalid snapshot %d", id)
	}
	journalIndex := c.validSnapshots[idx].journalIndex
	for len(c.journal) > journalIndex {
		c.journal[len(c.journal)-1]()
		c.journal = c.journal[:len(c.journal)-1]
	}
	c.validSnapshots = c.validSnapshots[:idx]
	return nil
}
