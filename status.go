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

import "dirpx.dev/statuscode/strref"

// Value is the set of raw value types a domain may use. Every member fits
// losslessly into the uint64 carried by Erased; anything else is rejected at
// compile time.
type Value interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 | ~uintptr
}

// Native is a domain-specific enum that knows its own domain. Of binds such
// values without naming the domain at the call site.
type Native interface {
	Value
	Domain() Domain
}

// Code is the behaviour shared by typed and erased status codes.
type Code interface {
	Domain() Domain
	Empty() bool
	Success() bool
	Failure() bool
	Message() string
	Erase() Erased
}

var (
	_ Code = StatusCode[int]{}
	_ Code = Erased{}
)

// StatusCode is a raw value of type V bound to the domain that defines it.
//
// The zero value is empty. StatusCode is a plain value: copies are
// independent and it holds no shared state of its own.
type StatusCode[V Value] struct {
	domain Domain
	value  V
}

// New binds v to d.
func New[V Value](d Domain, v V) StatusCode[V] {
	return StatusCode[V]{domain: d, value: v}
}

// Of binds a native enum value to its own domain.
func Of[V Native](v V) StatusCode[V] {
	return StatusCode[V]{domain: v.Domain(), value: v}
}

// Value returns the raw value. It is the zero value for empty codes.
func (c StatusCode[V]) Value() V { return c.value }

// Domain returns the domain of c, or nil when c is empty.
func (c StatusCode[V]) Domain() Domain { return c.domain }

// Empty reports whether c has no domain.
func (c StatusCode[V]) Empty() bool { return c.domain == nil }

// Erase returns the type-erased form of c.
func (c StatusCode[V]) Erase() Erased {
	return Erased{domain: c.domain, value: uint64(c.value)}
}

// Success reports whether c is non-empty and its domain does not classify it
// as a failure.
func (c StatusCode[V]) Success() bool { return c.Erase().Success() }

// Failure reports whether c is non-empty and its domain classifies it as a
// failure.
func (c StatusCode[V]) Failure() bool { return c.Erase().Failure() }

// Message returns the domain's text for c, or "" when c is empty.
func (c StatusCode[V]) Message() string { return c.Erase().Message() }

// MessageRef returns the domain's message handle. The caller owns it and
// should Release it when done.
func (c StatusCode[V]) MessageRef() strref.Ref { return c.Erase().MessageRef() }

// GenericCode returns the generic classification of c, or an empty code when
// the domain declares no mapping.
func (c StatusCode[V]) GenericCode() GenericCode { return c.Erase().GenericCode() }

// Equal reports whether c and o denote the same condition (see Equal).
func (c StatusCode[V]) Equal(o Code) bool { return Equal(c, o) }

// Err returns an *Error for failing codes and nil otherwise.
func (c StatusCode[V]) Err() error { return c.Erase().Err() }

// Raise panics with an *Error wrapping c. It panics with ErrForeignCode when
// c is empty.
func (c StatusCode[V]) Raise() { c.Erase().Raise() }

// String renders c as "<domain>: <message>".
func (c StatusCode[V]) String() string { return c.Erase().String() }
