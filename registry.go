/*
   Copyright 2025 The DIRPX Authors

   Licensed under the Apache License, Version 2.0 (the "License");
   you may not use this file except in compliance with the License.
   You may obtain a copy of the License at

       http://www.apache.org/licenses/LICENSE-2.0

   Unless required by applicable law or agreed to in writing, software
   distributed under the License is distributed on an "AS IS" BASIS,
   WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
   See the License for the specific language governing permissions and
   limitations under the License.
*/

package statuscode

import (
	"errors"
	"fmt"
	"sync"
)

var (
	// ErrUnknownDomain is returned when an ID has no registered domain.
	ErrUnknownDomain = errors.New("statuscode: unknown domain")
	// ErrDuplicateID is returned when two differently named domains claim
	// the same ID.
	ErrDuplicateID = errors.New("statuscode: duplicate domain id")
	// ErrInvalidValue is returned when a raw value does not fit the value
	// type of its domain.
	ErrInvalidValue = errors.New("statuscode: value out of range")
)

// Registry resolves domain IDs to domains, so codes that crossed a process
// boundary as (ID, raw value) can be rebuilt. It always knows GenericDomain.
//
// A Registry is safe for concurrent use.
type Registry struct {
	mu   sync.RWMutex
	byID map[ID]Domain
}

// NewRegistry returns a registry holding GenericDomain and domains.
func NewRegistry(domains ...Domain) (*Registry, error) {
	r := &Registry{byID: map[ID]Domain{GenericID: GenericDomain}}
	for _, d := range domains {
		if err := r.Register(d); err != nil {
			return nil, err
		}
	}
	return r, nil
}

// Register adds d. Registering another instance of an already known domain
// (same ID and name) is a no-op.
func (r *Registry) Register(d Domain) error {
	if d == nil {
		return fmt.Errorf("statuscode: register nil domain")
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	if prev, ok := r.byID[d.ID()]; ok {
		if nameOf(prev) != nameOf(d) {
			return fmt.Errorf("%w: %s is %q, not %q", ErrDuplicateID, d.ID(), nameOf(prev), nameOf(d))
		}
		return nil
	}
	r.byID[d.ID()] = d
	return nil
}

// Lookup returns the domain registered under id.
func (r *Registry) Lookup(id ID) (Domain, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	d, ok := r.byID[id]
	return d, ok
}

// Decode rebuilds the erased code (id, raw). Domains implementing ValueRange
// reject raw values that do not fit their value type with ErrInvalidValue.
func (r *Registry) Decode(id ID, raw uint64) (Erased, error) {
	d, ok := r.Lookup(id)
	if !ok {
		return Erased{}, fmt.Errorf("%w: %s", ErrUnknownDomain, id)
	}
	if vr, ok := d.(ValueRange); ok && !vr.ValidValue(raw) {
		return Erased{}, fmt.Errorf("%w: %d in %s", ErrInvalidValue, raw, nameOf(d))
	}
	return NewErased(d, raw), nil
}
