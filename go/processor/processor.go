// Copyright (c) 2024 Fantom Foundation
//
// Use of this software is governed by the Business Source License included
// in the LICENSE file and at fantom.foundation/bsl11.
//
// Change Date: 2028-4-16
//
// On the date above, in accordance with the Business Source License, use of
// this software will be governed by the GNU Lesser General Public License v3.

// Package processor executes transactions against a world. Each
// transaction runs in its own transaction cache; its effects are committed
// to the world as a single set of blockchain updates.
package processor

import (
	"errors"
	"fmt"
	"math/big"
	"strings"

	"github.com/Fantom-foundation/Mockchain/go/contract"
	"github.com/Fantom-foundation/Mockchain/go/ledger"
	"github.com/Fantom-foundation/Mockchain/go/txcache"
	"github.com/Fantom-foundation/Mockchain/go/vmapi"
	"github.com/Fantom-foundation/Mockchain/go/world"
	lru "github.com/hashicorp/golang-lru/v2"
	"github.com/holiman/uint256"
	log "github.com/inconshreveable/log15"
)

var logger = log.New("module", "processor")

// ErrContractInvalid is reported if the code of a contract can not be
// instantiated.
const ErrContractInvalid = ledger.ConstError("contract invalid")

const defaultContractCacheSize = 128

// Config summarizes the configuration options of a processor.
type Config struct {
	// ContractCacheSize is the number of contract instances kept for reuse.
	// Zero selects a default size.
	ContractCacheSize int
	// Cache is the configuration of the transaction caches used for
	// running transactions.
	Cache txcache.Config
}

// Processor runs transactions. It is not safe for concurrent use; a world
// only admits one transaction at a time anyway.
type Processor struct {
	config    Config
	contracts *lru.Cache[string, contract.Contract]
}

// New creates a processor with the given configuration.
func New(config Config) (*Processor, error) {
	size := config.ContractCacheSize
	if size == 0 {
		size = defaultContractCacheSize
	}
	if size < 0 {
		return nil, fmt.Errorf("invalid contract cache size %d", size)
	}
	contracts, err := lru.New[string, contract.Contract](size)
	if err != nil {
		return nil, err
	}
	return &Processor{
		config:    config,
		contracts: contracts,
	}, nil
}

// Run executes the transaction in the given block and commits its effects
// to the world.
//
// The sender's nonce is incremented and the fee is charged to the block's
// fee collector before the value and token transfers are made and the
// receiver's contract, if any, is called. If a transfer or the call fails,
// its effects are reverted while nonce and fee stay charged, and the
// receipt reports the failure. If the fee can not be paid, nothing is
// committed.
//
// An error is returned for defects of the setup, e.g. unknown accounts or a
// leased world. In that case the world is not modified.
func (p *Processor) Run(w *world.World, block ledger.BlockInfo, input ledger.TransactionInput) (Receipt, error) {
	if err := input.Validate(); err != nil {
		return Receipt{}, err
	}
	cache, err := txcache.New(w, input, p.config.Cache)
	if err != nil {
		return Receipt{}, err
	}
	defer cache.Discard()

	if err := cache.IncrementNonce(input.From); err != nil {
		return Receipt{}, err
	}
	fee, err := chargeFee(cache, block, input)
	if err != nil {
		if errors.Is(err, ledger.ErrInsufficientFunds) {
			logger.Debug("Transaction rejected", "from", input.From, "err", err)
			return Receipt{ReturnCode: OutOfFunds, Message: err.Error(), Fee: new(big.Int)}, nil
		}
		return Receipt{}, err
	}

	receipt := Receipt{Success: true, ReturnCode: Ok, Fee: fee}
	snapshot := cache.Snapshot()
	output, err := p.execute(cache, block, input)
	if err != nil {
		code, ok := toReturnCode(err)
		if !ok {
			return Receipt{}, err
		}
		if err := cache.RevertToSnapshot(snapshot); err != nil {
			return Receipt{}, err
		}
		receipt.Success = false
		receipt.ReturnCode = code
		receipt.Message = toMessage(err)
	} else {
		receipt.Output = output
	}

	res, err := cache.IntoBlockchainUpdates()
	if err != nil {
		return Receipt{}, err
	}
	if err := w.Apply(res); err != nil {
		return Receipt{}, err
	}
	receipt.Updates = res
	logger.Debug("Transaction processed", "from", input.From, "to", input.To, "function", input.Function, "code", receipt.ReturnCode)
	return receipt, nil
}

func chargeFee(cache *txcache.Cache, block ledger.BlockInfo, input ledger.TransactionInput) (*big.Int, error) {
	if block.FeeCollector == (ledger.Address{}) {
		return new(big.Int), nil
	}
	fee, overflow := new(uint256.Int).MulOverflow(uint256.NewInt(input.GasPrice), uint256.NewInt(input.GasLimit))
	if overflow {
		return nil, fmt.Errorf("fee overflow: %d * %d", input.GasPrice, input.GasLimit)
	}
	res := fee.ToBig()
	if err := cache.TransferNativeBalance(input.From, block.FeeCollector, res); err != nil {
		return nil, fmt.Errorf("charging fee: %w", err)
	}
	return res, nil
}

func (p *Processor) execute(cache *txcache.Cache, block ledger.BlockInfo, input ledger.TransactionInput) ([]ledger.Data, error) {
	if err := cache.TransferNativeBalance(input.From, input.To, input.GetValue()); err != nil {
		return nil, err
	}
	for _, transfer := range input.Transfers {
		if err := cache.TransferTokenBalance(input.From, input.To, transfer.Token, transfer.Nonce, transfer.Amount); err != nil {
			return nil, err
		}
	}
	if input.Function == "" {
		return nil, nil
	}

	account, found := cache.World().GetAccount(input.To)
	if !found || !account.IsContract() {
		return nil, fmt.Errorf("%v has no code: %w", input.To, contract.ErrContractNotFound)
	}
	code, err := p.getContract(account.ContractReference)
	if err != nil {
		return nil, err
	}
	return code.Call(vmapi.NewContext(cache, block), input.Function, input.Arguments)
}

func (p *Processor) getContract(reference string) (contract.Contract, error) {
	key := strings.ToLower(reference)
	if res, found := p.contracts.Get(key); found {
		return res, nil
	}
	factory := contract.GetFactory(key)
	if factory == nil {
		return nil, fmt.Errorf("%s: %w", reference, contract.ErrContractNotFound)
	}
	res, err := factory()
	if err != nil {
		return nil, fmt.Errorf("%s: %w: %v", reference, ErrContractInvalid, err)
	}
	if res == nil {
		return nil, fmt.Errorf("%s: %w: nil instance", reference, ErrContractInvalid)
	}
	p.contracts.Add(key, res)
	return res, nil
}

// toReturnCode classifies failures of a transaction. Errors which are not
// the transaction's fault, like unknown accounts, can not be classified.
func toReturnCode(err error) (ReturnCode, bool) {
	var contractErr *vmapi.ContractError
	switch {
	case errors.Is(err, ledger.ErrUnknownAccount),
		errors.Is(err, ledger.ErrWorldLeased),
		errors.Is(err, ledger.ErrCacheClosed),
		errors.Is(err, ledger.ErrInvariantViolation):
		return 0, false
	case errors.As(err, &contractErr):
		return UserError, true
	case errors.Is(err, ledger.ErrInsufficientFunds):
		return OutOfFunds, true
	case errors.Is(err, contract.ErrFunctionNotFound):
		return FunctionNotFound, true
	case errors.Is(err, contract.ErrContractNotFound):
		return ContractNotFound, true
	case errors.Is(err, ErrContractInvalid):
		return ContractInvalid, true
	}
	return ExecutionFailed, true
}

func toMessage(err error) string {
	var contractErr *vmapi.ContractError
	if errors.As(err, &contractErr) {
		return contractErr.Message
	}
	return err.Error()
}
