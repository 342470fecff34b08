// Copyright (c) 2024 Fantom Foundation
//
// Use of this software is governed by the Business Source License included
// in the LICENSE file and at fantom.foundation/bsl11.
//
// Change Date: 2028-4-16
//
// On the date above, in accordance with the Business Source License, use of
// this software will be governed by the GNU Lesser General Public License v3.

package main

import (
	"encoding/binary"
	"errors"
	"fmt"
	"math/big"
	"sync"
	"sync/atomic"
	"time"

	"github.com/Fantom-foundation/Mockchain/go/contract/examples"
	"github.com/Fantom-foundation/Mockchain/go/ledger"
	"github.com/Fantom-foundation/Mockchain/go/processor"
	"github.com/Fantom-foundation/Mockchain/go/updates"
	"github.com/Fantom-foundation/Mockchain/go/world"
	"github.com/dsnet/golib/unitconv"
	log "github.com/inconshreveable/log15"
	"github.com/urfave/cli/v2"
	"pgregory.net/rand"
)

var logger = log.New("module", "driver")

var FuzzCmd = cli.Command{
	Action: doFuzz,
	Name:   "fuzz",
	Usage:  "Run random transactions on independent worlds and check ledger invariants",
	Flags: []cli.Flag{
		jobsFlag,
		seedFlag,
		accountsFlag,
		transactionsFlag,
		createMissingFlag,
		contractCacheSizeFlag,
	},
}

// errBrokenInvariant is reported if a ledger invariant does not hold after
// a transaction.
const errBrokenInvariant = ledger.ConstError("broken ledger invariant")

var fuzzTokens = []ledger.TokenKey{
	{Token: "FUZZ-000001", Nonce: 0},
	{Token: "FUZZ-000002", Nonce: 1},
	{Token: "FUZZ-000002", Nonce: 2},
}

type fuzzConfig struct {
	seed         uint64
	jobs         int
	accounts     int
	transactions int
	processor    processor.Config
}

type fuzzStats struct {
	transactions atomic.Int64
	failed       atomic.Int64 // executed but reverted
	rejected     atomic.Int64 // fee could not be paid
}

func doFuzz(context *cli.Context) error {
	v, err := getViper(context)
	if err != nil {
		return err
	}
	config := fuzzConfig{
		seed:         v.GetUint64(seedKey),
		jobs:         v.GetInt(jobsKey),
		accounts:     v.GetInt(accountsKey),
		transactions: v.GetInt(transactionsKey),
		processor:    processorConfig(v),
	}
	out := context.App.Writer
	fmt.Fprintf(out, "Starting fuzzing with seed %d on %d jobs ...\n", config.seed, config.jobs)

	stats := &fuzzStats{}
	done := make(chan struct{})
	printerDone := make(chan struct{})
	go func() {
		defer close(printerDone)
		printProgress(done, 5*time.Second, &stats.transactions, func(relativeTime time.Duration, rate float64, current int64) {
			fmt.Fprintf(out, "[t=%4d:%02d] - Processing ~%s transactions per second, total %d\n",
				int(relativeTime.Seconds())/60, int(relativeTime.Seconds())%60,
				unitconv.FormatPrefix(rate, unitconv.SI, 0), current,
			)
		})
	}()

	err = fuzz(config, stats)
	close(done)
	<-printerDone
	if err != nil {
		return err
	}

	fmt.Fprintf(out, "Processed %d transactions, %d failed, %d rejected, all invariants hold\n",
		stats.transactions.Load(), stats.failed.Load(), stats.rejected.Load())
	return nil
}

// printProgress reports the processing rate of counter periodically until
// done is closed.
func printProgress(done <-chan struct{}, period time.Duration, counter *atomic.Int64, print func(time.Duration, float64, int64)) {
	ticker := time.NewTicker(period)
	defer ticker.Stop()
	startTime := time.Now()
	lastTime := startTime
	lastCounter := int64(0)
	for {
		select {
		case <-done:
			return
		case curTime := <-ticker.C:
			cur := counter.Load()
			rate := float64(cur-lastCounter) / curTime.Sub(lastTime).Seconds()
			lastTime = curTime
			lastCounter = cur
			print(curTime.Sub(startTime), rate, cur)
		}
	}
}

// fuzz runs config.jobs independent worlds in parallel. The first error
// aborts all jobs.
func fuzz(config fuzzConfig, stats *fuzzStats) error {
	if config.jobs <= 0 {
		return fmt.Errorf("invalid number of jobs: %d", config.jobs)
	}
	if config.accounts < 2 {
		return fmt.Errorf("at least 2 accounts are required, got %d", config.accounts)
	}

	var wg sync.WaitGroup
	var abort atomic.Bool
	var errorMutex sync.Mutex
	var errs []error

	wg.Add(config.jobs)
	for i := 0; i < config.jobs; i++ {
		go func(job int) {
			defer wg.Done()
			// Each job is seeded individually to be reproducible.
			rnd := rand.New(config.seed, uint64(job))
			if _, err := fuzzWorld(rnd, config, stats, &abort); err != nil {
				abort.Store(true)
				errorMutex.Lock()
				errs = append(errs, fmt.Errorf("job %d: %w", job, err))
				errorMutex.Unlock()
			}
		}(i)
	}
	wg.Wait()
	return errors.Join(errs...)
}

func fuzzAddress(i int) ledger.Address {
	var res ledger.Address
	res[0] = 0xf0
	binary.BigEndian.PutUint64(res[24:], uint64(i))
	return res
}

func newFuzzWorld(rnd *rand.Rand, config fuzzConfig) (*world.World, []ledger.Address, error) {
	w := world.New()
	users := make([]ledger.Address, config.accounts)
	for i := range users {
		users[i] = fuzzAddress(i + 1)
		account := ledger.NewAccount(users[i], rnd.Uint64n(1_000_000))
		account.Tokens = map[ledger.TokenKey]*big.Int{}
		for _, key := range fuzzTokens {
			account.Tokens[key] = new(big.Int).SetUint64(rnd.Uint64n(1_000))
		}
		if err := w.AddAccount(account); err != nil {
			return nil, nil, err
		}
	}
	contracts := []*ledger.Account{
		ledger.NewAccount(fuzzAddress(0), 0), // fee collector
		{Address: ledger.NewSmartContractAddress(users[0], 0), ContractReference: examples.AdderName, Owner: &users[0]},
		{Address: ledger.NewSmartContractAddress(users[0], 1), ContractReference: examples.VaultName, Owner: &users[0]},
	}
	for _, account := range contracts {
		if err := w.AddAccount(account); err != nil {
			return nil, nil, err
		}
	}
	return w, users, nil
}

func newFuzzInput(rnd *rand.Rand, users []ledger.Address) ledger.TransactionInput {
	res := ledger.TransactionInput{
		From:     users[rnd.Intn(len(users))],
		To:       users[rnd.Intn(len(users))],
		Value:    new(big.Int).SetUint64(rnd.Uint64n(200_000)),
		GasLimit: rnd.Uint64n(1_000),
		GasPrice: rnd.Uint64n(10),
	}
	if rnd.Intn(4) == 0 {
		key := fuzzTokens[rnd.Intn(len(fuzzTokens))]
		res.Transfers = append(res.Transfers, ledger.TokenTransfer{
			Token:  key.Token,
			Nonce:  key.Nonce,
			Amount: new(big.Int).SetUint64(rnd.Uint64n(500)),
		})
	}
	switch rnd.Intn(8) {
	case 0:
		res.To = ledger.NewSmartContractAddress(users[0], 0)
		res.Function = "add"
		res.Arguments = []ledger.Data{{byte(rnd.Intn(256))}}
	case 1:
		res.To = ledger.NewSmartContractAddress(users[0], 1)
		res.Function = "forward"
		res.Arguments = []ledger.Data{users[rnd.Intn(len(users))][:]}
	case 2:
		res.To = ledger.NewSmartContractAddress(users[0], 1)
		res.Function = "withdraw"
		res.Arguments = []ledger.Data{new(big.Int).SetUint64(rnd.Uint64n(1_000)).Bytes()}
	}
	return res
}

// fuzzWorld runs random transactions on a new world and returns the final
// state of the world.
func fuzzWorld(rnd *rand.Rand, config fuzzConfig, stats *fuzzStats, abort *atomic.Bool) (*world.World, error) {
	p, err := processor.New(config.processor)
	if err != nil {
		return nil, err
	}
	w, users, err := newFuzzWorld(rnd, config)
	if err != nil {
		return nil, err
	}
	block := ledger.BlockInfo{FeeCollector: fuzzAddress(0)}

	for i := 0; i < config.transactions && !abort.Load(); i++ {
		block.Nonce = uint64(i)
		input := newFuzzInput(rnd, users)
		if err := runAndCheck(w, p, block, input, stats); err != nil {
			return nil, fmt.Errorf("transaction %d (%v -> %v, %s): %w", i, input.From, input.To, input.Function, err)
		}
	}
	return w, nil
}

// runAndCheck runs a single transaction and verifies that no currency was
// created or destroyed, that the nonce was consumed exactly by committed
// transactions, and that the committed updates can neither be replayed
// nor lose information when encoded.
func runAndCheck(w *world.World, p *processor.Processor, block ledger.BlockInfo, input ledger.TransactionInput, stats *fuzzStats) error {
	supply := w.TotalSupply()
	tokenSupply := make([]*big.Int, len(fuzzTokens))
	for i, key := range fuzzTokens {
		tokenSupply[i] = w.TotalTokenSupply(key)
	}
	nonce, _ := w.GetNonce(input.From)

	receipt, err := p.Run(w, block, input)
	if err != nil {
		return err
	}
	stats.transactions.Add(1)

	if got := w.TotalSupply(); got.Cmp(supply) != 0 {
		return fmt.Errorf("native supply changed from %v to %v: %w", supply, got, errBrokenInvariant)
	}
	for i, key := range fuzzTokens {
		if got := w.TotalTokenSupply(key); got.Cmp(tokenSupply[i]) != 0 {
			return fmt.Errorf("supply of %v changed from %v to %v: %w", key, tokenSupply[i], got, errBrokenInvariant)
		}
	}

	wantNonce := nonce
	if receipt.Updates == nil {
		stats.rejected.Add(1)
	} else {
		wantNonce++
		if !receipt.Success {
			stats.failed.Add(1)
		}
	}
	if got, _ := w.GetNonce(input.From); got != wantNonce {
		return fmt.Errorf("unexpected nonce, wanted %d, got %d: %w", wantNonce, got, errBrokenInvariant)
	}
	if receipt.Updates == nil {
		return nil
	}
	return checkUpdates(w, receipt.Updates)
}

func checkUpdates(w *world.World, u *updates.BlockchainUpdates) error {
	if net := u.NativeNet(); net.Sign() != 0 {
		return fmt.Errorf("native deltas sum up to %v: %w", net, errBrokenInvariant)
	}
	for _, key := range fuzzTokens {
		if net := u.TokenNet(key); net.Sign() != 0 {
			return fmt.Errorf("deltas of %v sum up to %v: %w", key, net, errBrokenInvariant)
		}
	}

	encoded, err := updates.Encode(u)
	if err != nil {
		return err
	}
	decoded, err := updates.Decode(encoded)
	if err != nil {
		return err
	}
	want, err := u.Digest()
	if err != nil {
		return err
	}
	got, err := decoded.Digest()
	if err != nil {
		return err
	}
	if want != got {
		return fmt.Errorf("digest changed by encoding from %v to %v: %w", want, got, errBrokenInvariant)
	}

	if err := w.Apply(u); !errors.Is(err, ledger.ErrInvariantViolation) {
		return fmt.Errorf("replaying updates was not rejected, got %v: %w", err, errBrokenInvariant)
	}
	logger.Debug("Checked updates", "world", w.ID(), "accounts", u.Len(), "digest", want)
	return nil
}
