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

// Package statuscode implements typed, extensible status codes.
//
// A status code is a small value pairing a raw, domain-specific value with
// the Domain that gives it meaning. There is no universal enumeration of
// errors: every domain owns its own code space and declares, explicitly,
// which of its values are failures, what their messages are, and how they
// relate to the generic POSIX-like classification in package errc.
//
// # Domains
//
// A Domain is identified by a 64-bit ID that is unique per domain type.
// Identity checks compare IDs, never Go types, so two instances of the same
// domain (for example, one per plugin binary) compare equal.
//
// Domains receive codes in their erased form (Erased) and narrow the raw
// value back to their own value type. Passing a code that belongs to another
// domain is a contract violation and panics with ErrForeignCode.
//
// # Status codes
//
// StatusCode[V] is the typed value. Its zero value is empty: it is neither a
// success nor a failure, and it equals only other empty codes. A code can be
// built from a domain and value with New, or from a native enum that knows
// its own domain with Of:
//
//	type Code uint
//
//	func (Code) Domain() statuscode.Domain { return codeDomain }
//
//	c := statuscode.Of(NoSpace)
//	if c.Failure() {
//	    log.Print(c.Message())
//	}
//
// # Equivalence
//
// Two codes are equal when both are empty, or when either domain declares
// them equivalent. Domains usually only know their own values and the
// generic ones, so the generic domain is the hub through which unrelated
// domains interoperate:
//
//	statuscode.Equal(statuscode.Of(NoSpace), statuscode.Generic(errc.NoBufferSpace)) // true
//
// # Erasure
//
// Erased holds a code of any domain behind a single type, keeping the domain
// reference and widening the raw value to uint64. Everything still
// dispatches through the original domain; Typed recovers the typed code.
//
// # Errors and panics
//
// Err converts a failing code into an *Error for ordinary Go error returns.
// Call sites that prefer unwinding use Raise, which panics with *Error, and
// Recover or Catch to turn the panic back into a value.
package statuscode
