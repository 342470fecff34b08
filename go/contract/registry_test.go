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
	"errors"
	"slices"
	"testing"

	"golang.org/x/exp/maps"
)

func TestRegistry_CanListContent(t *testing.T) {
	name := "test1"
	if err := RegisterFactory(name, func() (Contract, error) { return Endpoints{}, nil }); err != nil {
		t.Fatalf("failed to register factory: %v", err)
	}

	factories := maps.Keys(GetAllRegisteredFactories())
	if !slices.Contains(factories, name) {
		t.Errorf("%v not found in list of factories, found %v", name, factories)
	}
}

func TestRegistry_LookupIsCaseInsensitive(t *testing.T) {
	counter := 0
	factory := func() (Contract, error) {
		counter++
		return Endpoints{}, nil
	}
	if err := RegisterFactory("Test2", factory); err != nil {
		t.Fatalf("failed to register factory: %v", err)
	}

	if GetFactory("tEsT2") == nil {
		t.Fatalf("expected factory, got nil")
	}
	if _, err := NewContract("TEST2"); err != nil {
		t.Fatalf("failed to create contract: %v", err)
	}
	if counter != 1 {
		t.Errorf("expected factory to be called once, got %d", counter)
	}
}

func TestRegistry_UnknownContractIsReported(t *testing.T) {
	if _, err := NewContract("something odd"); !errors.Is(err, ErrContractNotFound) {
		t.Errorf("unexpected error, wanted %v, got %v", ErrContractNotFound, err)
	}
}

func TestRegistry_FactoryErrorsArePropagated(t *testing.T) {
	injected := errors.New("injected")
	if err := RegisterFactory("test3", func() (Contract, error) { return nil, injected }); err != nil {
		t.Fatalf("failed to register factory: %v", err)
	}
	if _, err := NewContract("test3"); !errors.Is(err, injected) {
		t.Errorf("unexpected error, wanted %v, got %v", injected, err)
	}
}

func TestRegistry_FailToRegisterNilFactory(t *testing.T) {
	if err := RegisterFactory("nil", nil); err == nil {
		t.Errorf("expected error, got nil")
	}
}

func TestRegistry_FailToRegisterSameNameMultipleTimes(t *testing.T) {
	name := "test4"
	factory := func() (Contract, error) { return Endpoints{}, nil }

	// The first time it is fine.
	MustRegister(name, factory)

	// The second time it should panic.
	defer func() {
		if r := recover(); r == nil {
			t.Errorf("expected panic, got nil")
		}
	}()
	MustRegister("TEST4", factory)
}
