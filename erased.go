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
	"fmt"

	"dirpx.dev/statuscode/strref"
)

// Erased is a status code of any domain. The raw value is widened to uint64;
// the domain reference is kept, so every operation still dispatches to the
// domain that created the code.
type Erased struct {
	domain Domain
	value  uint64
}

// Erase returns the type-erased form of c.
func Erase[V Value](c StatusCode[V]) Erased { return c.Erase() }

// NewErased builds an erased code from a domain and a raw value. It does not
// check the value; decoders should go through Registry.Decode, which does.
func NewErased(d Domain, raw uint64) Erased {
	return Erased{domain: d, value: raw}
}

// Typed recovers the typed code from e when e belongs to V's domain.
func Typed[V Native](e Erased) (StatusCode[V], bool) {
	var zero V
	return TypedIn[V](e, zero.Domain())
}

// TypedIn recovers a StatusCode[V] from e when e belongs to d and its raw
// value is representable in V.
func TypedIn[V Value](e Erased, d Domain) (StatusCode[V], bool) {
	if e.domain == nil || !SameDomain(e.domain, d) || !Fits[V](e.value) {
		return StatusCode[V]{}, false
	}
	return StatusCode[V]{domain: e.domain, value: V(e.value)}, true
}

// Value returns the widened raw value.
func (e Erased) Value() uint64 { return e.value }

// Domain returns the domain of e, or nil when e is empty.
func (e Erased) Domain() Domain { return e.domain }

// Empty reports whether e has no domain.
func (e Erased) Empty() bool { return e.domain == nil }

// Erase returns e.
func (e Erased) Erase() Erased { return e }

// Success reports whether e is non-empty and not a failure.
func (e Erased) Success() bool {
	return e.domain != nil && !e.domain.Failure(e)
}

// Failure reports whether e is non-empty and a failure.
func (e Erased) Failure() bool {
	return e.domain != nil && e.domain.Failure(e)
}

// Message returns the domain's text for e, or "" when e is empty. The
// handle obtained from the domain is released before returning.
func (e Erased) Message() string {
	r := e.MessageRef()
	s := r.String()
	r.Release()
	return s
}

// MessageRef returns the domain's message handle, owned by the caller.
func (e Erased) MessageRef() strref.Ref {
	if e.domain == nil {
		return strref.Ref{}
	}
	return e.domain.Message(e)
}

// GenericCode returns the generic classification of e, or an empty code.
func (e Erased) GenericCode() GenericCode {
	if e.domain == nil {
		return GenericCode{}
	}
	return e.domain.GenericCode(e)
}

// Equal reports whether e and o denote the same condition (see Equal).
func (e Erased) Equal(o Code) bool { return Equal(e, o) }

// Err returns an *Error for failing codes and nil otherwise.
func (e Erased) Err() error {
	if !e.Failure() {
		return nil
	}
	return NewError(e)
}

// Raise hands e to its domain's Raise, which panics with an *Error.
func (e Erased) Raise() {
	if e.domain == nil {
		panic(fmt.Errorf("%w: raise of an empty code", ErrForeignCode))
	}
	e.domain.Raise(e)
}

// String renders e as "<domain>: <message>", or "<empty>".
func (e Erased) String() string {
	if e.domain == nil {
		return "<empty>"
	}
	return nameOf(e.domain) + ": " + e.Message()
}
