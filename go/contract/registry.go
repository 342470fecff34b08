// Copyright (c) 2024 Fantom Foundation
//
// Use of this software is governed by the Business Source License included
// in the LICENSE file and at fantom.foundation/bsl11.
//
// Change Date: 2028-4-16
//
// On the date above, in accordance with the Business Source License, use of
// this software will be governed by the GNU Lesser General Public License v3.

package contract

import (
	"fmt"
	"strings"
	"sync"

	"github.com/Fantom-foundation/Mockchain/go/ledger"
	"golang.org/x/exp/maps"
)

// This file provides a registry for contract implementations. Accounts
// refer to their code by name; the processor resolves the name through
// this registry. Implementations typically register themselves as part of
// the init code of their package.

// ErrContractNotFound is returned when no factory is registered for a
// contract reference.
const ErrContractNotFound = ledger.ConstError("contract not found")

// Factory is the type of a function creating a new instance of a contract.
type Factory func() (Contract, error)

// NewContract performs a lookup for the given name (case-insensitive) in
// the registry and creates a new instance of the contract.
func NewContract(name string) (Contract, error) {
	factory := GetFactory(name)
	if factory == nil {
		return nil, fmt.Errorf("%s: %w", name, ErrContractNotFound)
	}
	return factory()
}

// GetFactory performs a lookup for the given name (case-insensitive) in the
// registry. The result is nil if no factory was registered under the name.
func GetFactory(name string) Factory {
	registryLock.Lock()
	defer registryLock.Unlock()
	return registry[strings.ToLower(name)]
}

// GetAllRegisteredFactories obtains all registered implementations.
func GetAllRegisteredFactories() map[string]Factory {
	registryLock.Lock()
	defer registryLock.Unlock()
	return maps.Clone(registry)
}

// RegisterFactory registers a new contract implementation. The name is not
// case-sensitive. An error is returned if a factory was bound to the same
// name before, or the factory is nil.
func RegisterFactory(name string, factory Factory) error {
	key := strings.ToLower(name)
	if factory == nil {
		return fmt.Errorf("invalid initialization: cannot register nil-factory using `%s`", key)
	}
	registryLock.Lock()
	defer registryLock.Unlock()
	if _, found := registry[key]; found {
		return fmt.Errorf("invalid initialization: multiple factories registered for `%s`", key)
	}
	registry[key] = factory
	return nil
}

// MustRegister is like RegisterFactory but panics on failure. It is
// intended for package initialization code.
func MustRegister(name string, factory Factory) {
	if err := RegisterFactory(name, factory); err != nil {
		panic(err)
	}
}

var registry = map[string]Factory{}

var registryLock sync.Mutex
