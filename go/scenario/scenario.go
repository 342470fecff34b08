// Copyright (c) 2024 Fantom Foundation
//
// Use of this software is governed by the Business Source License included
// in the LICENSE file and at fantom.foundation/bsl11.
//
// Change Date: 2028-4-16
//
// On the date above, in accordance with the Business Source License, use of
// this software will be governed by the GNU Lesser General Public License v3.

// Package scenario runs transaction sequences described in JSON files. A
// scenario consists of a world state before the transactions, the
// transactions with their expected results, and optionally the expected
// world state afterwards.
package scenario

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/Fantom-foundation/Mockchain/go/ledger"
	"github.com/Fantom-foundation/Mockchain/go/processor"
	"github.com/Fantom-foundation/Mockchain/go/world"
	log "github.com/inconshreveable/log15"
)

var logger = log.New("module", "scenario")

// ErrExpectationFailed is reported if a scenario does not end as expected.
const ErrExpectationFailed = ledger.ConstError("scenario expectation failed")

// Processor runs individual transactions against a world.
type Processor interface {
	Run(*world.World, ledger.BlockInfo, ledger.TransactionInput) (processor.Receipt, error)
}

// Scenario is a parsed scenario file.
type Scenario struct {
	Name     string
	Path     string
	Accounts []*ledger.Account
	Block    ledger.BlockInfo
	Steps    []Step
	After    []*ledger.Account // nil if the final state is not checked
}

// Step is a single transaction of a scenario.
type Step struct {
	Name   string
	Block  *ledger.BlockInfo // nil if the scenario's block is used
	Input  ledger.TransactionInput
	Expect *Expectation // nil if the result is not checked
}

// Expectation describes the expected receipt of a step. Nil fields are not
// checked.
type Expectation struct {
	Status  *processor.ReturnCode
	Message *string
	Out     []ledger.Data
}

// Parse decodes a scenario from its JSON form.
func Parse(data []byte) (*Scenario, error) {
	var raw scenarioJSON
	decoder := json.NewDecoder(bytes.NewReader(data))
	decoder.DisallowUnknownFields()
	if err := decoder.Decode(&raw); err != nil {
		return nil, err
	}
	return raw.toScenario()
}

// Load reads and parses a scenario file.
func Load(path string) (*Scenario, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	res, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	res.Path = path
	if res.Name == "" {
		res.Name = strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	}
	return res, nil
}

// LoadAll loads the scenario files at the given paths. Directories are
// searched recursively for files with the .json extension; files named
// explicitly are loaded regardless of their extension.
func LoadAll(paths ...string) ([]*Scenario, error) {
	res := []*Scenario{}
	for _, root := range paths {
		err := filepath.WalkDir(root, func(path string, entry fs.DirEntry, err error) error {
			if err != nil {
				return err
			}
			if entry.IsDir() || (path != root && filepath.Ext(path) != ".json") {
				return nil
			}
			scenario, err := Load(path)
			if err != nil {
				return err
			}
			res = append(res, scenario)
			return nil
		})
		if err != nil {
			return nil, err
		}
	}
	return res, nil
}

func (s *scenarioJSON) toScenario() (*Scenario, error) {
	accounts, err := toAccounts(s.Accounts)
	if err != nil {
		return nil, fmt.Errorf("accounts: %w", err)
	}
	block, err := s.Block.toBlockInfo()
	if err != nil {
		return nil, fmt.Errorf("block: %w", err)
	}
	res := &Scenario{
		Name:     s.Name,
		Accounts: accounts,
		Block:    block,
	}
	if s.After != nil {
		if res.After, err = toAccounts(s.After); err != nil {
			return nil, fmt.Errorf("after: %w", err)
		}
	}
	for i, step := range s.Steps {
		input, err := step.Tx.toInput()
		if err != nil {
			return nil, fmt.Errorf("step %d: %w", i, err)
		}
		converted := Step{Name: step.Name, Input: input}
		if step.Block != nil {
			block, err := step.Block.toBlockInfo()
			if err != nil {
				return nil, fmt.Errorf("step %d: block: %w", i, err)
			}
			converted.Block = &block
		}
		if step.Expect != nil {
			converted.Expect = &Expectation{
				Status:  step.Expect.Status,
				Message: step.Expect.Message,
			}
			if step.Expect.Out != nil {
				converted.Expect.Out = make([]ledger.Data, 0, len(step.Expect.Out))
				for _, out := range step.Expect.Out {
					converted.Expect.Out = append(converted.Expect.Out, ledger.Data(out))
				}
			}
		}
		res.Steps = append(res.Steps, converted)
	}
	return res, nil
}

// NewWorld creates a world in the scenario's initial state.
func (s *Scenario) NewWorld() (*world.World, error) {
	res := world.New()
	for _, account := range s.Accounts {
		if err := res.AddAccount(account); err != nil {
			return nil, err
		}
	}
	return res, nil
}

// Run executes all steps of the scenario on a fresh world and checks the
// expectations. Expectation failures are reported as errors wrapping
// ErrExpectationFailed.
func (s *Scenario) Run(p Processor) error {
	w, err := s.NewWorld()
	if err != nil {
		return fmt.Errorf("%s: %w", s.Name, err)
	}
	for i, step := range s.Steps {
		block := s.Block
		if step.Block != nil {
			block = *step.Block
		}
		receipt, err := p.Run(w, block, step.Input)
		if err != nil {
			return fmt.Errorf("%s: step %d (%s): %w", s.Name, i, step.Name, err)
		}
		if err := step.check(receipt); err != nil {
			return fmt.Errorf("%s: step %d (%s): %w", s.Name, i, step.Name, err)
		}
		logger.Debug("Scenario step done", "scenario", s.Name, "step", i, "code", receipt.ReturnCode)
	}
	if s.After == nil {
		return nil
	}
	want := world.New()
	for _, account := range s.After {
		if err := want.AddAccount(account); err != nil {
			return fmt.Errorf("%s: expected state: %w", s.Name, err)
		}
	}
	if !w.Equal(want) {
		return fmt.Errorf("%s: unexpected world state after the transactions:\n\t%s: %w",
			s.Name, strings.Join(w.Diff(want), "\n\t"), ErrExpectationFailed)
	}
	return nil
}

// RunT runs the scenario as part of a test.
func (s *Scenario) RunT(t testing.TB, p Processor) {
	t.Helper()
	if err := s.Run(p); err != nil {
		t.Fatal(err)
	}
}

func (s *Step) check(receipt processor.Receipt) error {
	if s.Expect == nil {
		return nil
	}
	if want, got := s.Expect.Status, receipt.ReturnCode; want != nil && *want != got {
		return fmt.Errorf("unexpected status, wanted %v, got %v (%s): %w", *want, got, receipt.Message, ErrExpectationFailed)
	}
	if want, got := s.Expect.Message, receipt.Message; want != nil && *want != got {
		return fmt.Errorf("unexpected message, wanted %q, got %q: %w", *want, got, ErrExpectationFailed)
	}
	if want, got := s.Expect.Out, receipt.Output; want != nil && !equalOutputs(want, got) {
		return fmt.Errorf("unexpected output, wanted %x, got %x: %w", want, got, ErrExpectationFailed)
	}
	return nil
}

func equalOutputs(a, b []ledger.Data) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if !bytes.Equal(a[i], b[i]) {
			return false
		}
	}
	return true
}
