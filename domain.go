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
	"strconv"
	"strings"

	"dirpx.dev/statuscode/label"
	"dirpx.dev/statuscode/strref"
)

// ID is the opaque identity of a domain. It is unique per domain type and
// stable across processes, which makes it usable on the wire.
type ID uint64

// String renders id as a zero-padded hex literal, e.g. "0x430f120194fc06c7".
func (id ID) String() string {
	return fmt.Sprintf("0x%016x", uint64(id))
}

// ParseID parses the output of ID.String. The "0x" prefix is optional.
func ParseID(s string) (ID, error) {
	s = strings.TrimPrefix(strings.ToLower(strings.TrimSpace(s)), "0x")
	v, err := strconv.ParseUint(s, 16, 64)
	if err != nil {
		return 0, fmt.Errorf("statuscode: invalid domain id %q: %w", s, err)
	}
	return ID(v), nil
}

// ErrForeignCode is the panic value (wrapped) of a domain operation invoked
// with a code that does not belong to the domain.
var ErrForeignCode = errors.New("statuscode: code does not belong to domain")

// Domain is the authority for one code space.
//
// Every operation except ID and Name requires its (first) code argument to
// belong to the receiver; implementations enforce that with CheckOwner.
// Domains must be immutable after construction: they are shared by every
// code of the domain, across goroutines.
type Domain interface {
	// ID returns the identity of the domain.
	ID() ID

	// Name returns the human-readable domain name.
	Name() strref.Ref

	// Failure reports whether c represents an error.
	Failure(c Erased) bool

	// Equivalent reports whether c1 (always of this domain) and c2 (of any
	// domain) denote the same condition. It must compare raw values when c2
	// is of the same domain, may map c2 through its generic classification
	// otherwise, and returns false for anything it does not recognise.
	Equivalent(c1, c2 Erased) bool

	// GenericCode maps c onto the generic classification. An empty result
	// means c has no sensible generic equivalent.
	GenericCode(c Erased) GenericCode

	// Message returns the text for c. The caller owns the returned ref.
	Message(c Erased) strref.Ref

	// Raise panics with an *Error wrapping c.
	Raise(c Erased)
}

// ValueRange is implemented by domains whose value type is narrower than 64
// bits. Registry.Decode rejects raw values for which ValidValue is false.
type ValueRange interface {
	ValidValue(raw uint64) bool
}

// Fits reports whether raw survives a round trip through V, i.e. whether it
// is the erased form of some V.
func Fits[V Value](raw uint64) bool {
	return uint64(V(raw)) == raw
}

// SameDomain reports whether a and b have the same identity. Two nil domains
// are the same; a nil and a non-nil domain are not.
func SameDomain(a, b Domain) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	return a.ID() == b.ID()
}

// CheckOwner panics with ErrForeignCode unless c belongs to d. Empty codes
// belong to no domain.
func CheckOwner(d Domain, c Erased) {
	if d != nil && c.domain != nil && c.domain.ID() == d.ID() {
		return
	}
	panic(fmt.Errorf("%w: domain %s got code of %s", ErrForeignCode, idOf(d), idOf(c.domain)))
}

func idOf(d Domain) string {
	if d == nil {
		return "<empty>"
	}
	return d.ID().String()
}

// nameOf returns the name of d as a plain string, releasing the handle.
func nameOf(d Domain) string {
	if d == nil {
		return ""
	}
	n := d.Name()
	s := n.String()
	n.Release()
	return s
}

// Base carries the identity and label every domain needs. Embed it in a
// domain implementation to get ID, Name, Label and a default Raise.
type Base struct {
	id    ID
	label label.Label
}

// NewBase returns a Base for the given identity. name must be a valid
// label (see package label); NewBase panics otherwise.
func NewBase(id ID, name string) Base {
	return Base{id: id, label: label.MustParse(name)}
}

// ID implements Domain.
func (b Base) ID() ID { return b.id }

// Name implements Domain. The name is a literal: it never allocates.
func (b Base) Name() strref.Ref { return strref.Literal(string(b.label)) }

// Label returns the canonical label of the domain.
func (b Base) Label() label.Label { return b.label }

// Raise implements Domain by panicking with NewError(c).
func (b Base) Raise(c Erased) {
	if c.domain == nil || c.domain.ID() != b.id {
		panic(fmt.Errorf("%w: domain %s got code of %s", ErrForeignCode, b.id, idOf(c.domain)))
	}
	panic(NewError(c))
}
