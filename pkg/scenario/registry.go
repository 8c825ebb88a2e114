// Copyright (c) 2025, NVIDIA CORPORATION.  All rights reserved.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package scenario

import (
	"fmt"
	"sort"
	"sync"

	apperrors "github.com/majoplot/majoplot/pkg/errors"
)

// Factory is a function that creates a new Scenario instance.
type Factory func() Scenario

// Registry holds scenario factories keyed by name.
type Registry struct {
	factories map[string]Factory
	mu        sync.RWMutex
}

// NewRegistry creates a new empty Registry.
func NewRegistry() *Registry {
	return &Registry{
		factories: make(map[string]Factory),
	}
}

// Register adds a factory under name.
// Returns an error if the name is empty or already registered.
func (r *Registry) Register(name string, factory Factory) error {
	if name == "" {
		return fmt.Errorf("scenario name cannot be empty")
	}
	if factory == nil {
		return fmt.Errorf("scenario %s factory cannot be nil", name)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.factories[name]; exists {
		return fmt.Errorf("scenario %s already registered", name)
	}
	r.factories[name] = factory
	return nil
}

// MustRegister is a convenience function that panics on registration error.
func (r *Registry) MustRegister(name string, factory Factory) {
	if err := r.Register(name, factory); err != nil {
		panic(err)
	}
}

// Get creates the scenario registered under name.
func (r *Registry) Get(name string) (Scenario, error) {
	r.mu.RLock()
	factory, ok := r.factories[name]
	r.mu.RUnlock()

	if !ok {
		return nil, apperrors.NewWithContext(apperrors.ErrCodeNotFound,
			"scenario not registered", map[string]any{
				"scenario":  name,
				"available": r.Names(),
			})
	}
	return factory(), nil
}

// Has reports whether name is registered.
func (r *Registry) Has(name string) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	_, ok := r.factories[name]
	return ok
}

// Names returns the registered scenario names, sorted.
func (r *Registry) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	names := make([]string, 0, len(r.factories))
	for n := range r.factories {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}

// Global registry for scenario factories.
// Scenarios register themselves via init() functions.
var global = NewRegistry()

// Global returns the process-wide registry.
func Global() *Registry {
	return global
}

// Register registers a scenario factory globally.
func Register(name string, factory Factory) error {
	return global.Register(name, factory)
}

// MustRegister registers a scenario factory globally and panics on error.
// Use this in init() functions where registration must succeed.
func MustRegister(name string, factory Factory) {
	global.MustRegister(name, factory)
}

// Get creates the globally registered scenario called name.
func Get(name string) (Scenario, error) {
	return global.Get(name)
}

// Names returns the globally registered scenario names, sorted.
func Names() []string {
	return global.Names()
}
